package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"clothiq/internal/app"
	"clothiq/internal/domain"
	"clothiq/internal/state"
	"clothiq/internal/store"
)

func TestNewWire_EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/category/mens-shirts":
			_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Shirt","category":"mens-shirts","price":19.99}]}`))
		case "/products/category/womens-dresses":
			_, _ = w.Write([]byte(`{"products":[{"id":2,"title":"Dress","category":"womens-dresses","price":5.005}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	cfg := app.DefaultConfig(t.TempDir())
	cfg.Catalog.BaseURL = srv.URL
	cfg.HTTP = srv.Client()

	w, err := app.NewWire(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx := context.Background()
	require.NoError(t, w.Auth.Signup(ctx, domain.SignupRequest{
		FirstName: "A", LastName: "B", Mobile: "1", Email: "a@b.c", Password: "p",
	}))
	_, err = w.Auth.Login(ctx, "a@b.c", "p")
	require.NoError(t, err)

	home, err := w.Browse.Home(ctx)
	require.NoError(t, err)
	require.Len(t, home, 2)

	require.NoError(t, w.Session.Dispatch(state.Add{Product: home[0]}))
	require.NoError(t, w.Session.Dispatch(state.Add{Product: home[0]}))
	require.NoError(t, w.Session.Dispatch(state.Add{Product: home[1]}))
	assert.Equal(t, "44.99", w.Session.TotalPrice())

	_, err = os.Stat(filepath.Join(cfg.Home, "storage.json"))
	require.NoError(t, err, "file backend writes storage.json")
}

func TestNewWire_Backends(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		cfg := app.DefaultConfig(t.TempDir())
		cfg.Store.Backend = app.BackendSQLite
		w, err := app.NewWire(cfg, nil)
		require.NoError(t, err)
		_, isSQLite := w.KV.(*store.SQLiteKV)
		assert.True(t, isSQLite)
		require.NoError(t, w.Close())
	})
	t.Run("sealed", func(t *testing.T) {
		cfg := app.DefaultConfig(t.TempDir())
		cfg.Store.Passphrase = "pw"
		w, err := app.NewWire(cfg, nil)
		require.NoError(t, err)
		fkv, ok := w.KV.(*store.FileKV)
		require.True(t, ok)
		assert.Equal(t, "storage.json.enc", filepath.Base(fkv.Path()))
	})
	t.Run("invalid", func(t *testing.T) {
		cfg := app.DefaultConfig(t.TempDir())
		cfg.Store.Backend = "redis"
		_, err := app.NewWire(cfg, nil)
		require.ErrorIs(t, err, app.ErrInvalidConfig)
	})
}

func TestNewLogger_WritesToHomeFile(t *testing.T) {
	cfg := app.DefaultConfig(t.TempDir())
	log, err := app.NewLogger(cfg, true)
	require.NoError(t, err)
	log.Debug("hello")
	_ = log.Sync()

	b, err := os.ReadFile(filepath.Join(cfg.Home, "clothiq.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello")

	cfg.Log.Level = "loud"
	_, err = app.NewLogger(cfg, false)
	require.ErrorIs(t, err, app.ErrInvalidConfig)
}
