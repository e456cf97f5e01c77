package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clothiq/internal/store"
)

func TestSQLiteKV_SetGetDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", store.SQLiteFile)
	kv, err := store.OpenSQLiteKV(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	_, ok, err := kv.Get("access_token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("access_token", "t1"))
	require.NoError(t, kv.Set("access_token", "t2"))
	v, ok, err := kv.Get("access_token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t2", v)

	require.NoError(t, kv.Delete("access_token"))
	require.NoError(t, kv.Delete("access_token"))
	_, ok, err = kv.Get("access_token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.SQLiteFile)
	kv, err := store.OpenSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("profile_image", "file:///tmp/me.jpg"))
	require.NoError(t, kv.Close())

	kv, err = store.OpenSQLiteKV(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	v, ok, err := kv.Get("profile_image")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "file:///tmp/me.jpg", v)
}
