package commands

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCatalog(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products/category/mens-shirts", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[
			{"id":1,"title":"Blue Shirt","category":"mens-shirts","price":19.99,"discountPercentage":12.4,"rating":4.5,"stock":3},
			{"id":2,"title":"Grey Tee","category":"mens-shirts","price":5.005,"rating":3.9,"stock":8}]}`))
	})
	mux.HandleFunc("/products/category/womens-dresses", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":[{"id":3,"title":"Red Dress","category":"womens-dresses","price":40}]}`))
	})
	mux.HandleFunc("/products/1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"title":"Blue Shirt","category":"mens-shirts","price":19.99,
			"description":"Cotton.","rating":4.5,"stock":3}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// run executes the CLI with args against a fresh home and returns stdout.
func run(t *testing.T, homeDir, catalog string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", homeDir, "--catalog", catalog}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAccountFlow(t *testing.T) {
	srv := fakeCatalog(t)
	dir := t.TempDir()

	out, err := run(t, dir, srv.URL, "signup",
		"--first", "Ada", "--last", "Lovelace", "--mobile", "0400",
		"--email", " Ada@Example.com ", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Signup successful. Please login.")

	_, err = run(t, dir, srv.URL, "login", "--email", "ada@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incorrect email or password")

	out, err = run(t, dir, srv.URL, "login", "--email", "ADA@example.com", "--password", "pw")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in.")

	out, err = run(t, dir, srv.URL, "profile", "update", "--name", "Ada King Lovelace")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile information updated.")

	out, err = run(t, dir, srv.URL, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:     Ada King Lovelace")
	assert.Contains(t, out, "Email:    ada@example.com")
	assert.Contains(t, out, "Password: **")

	out, err = run(t, dir, srv.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "successfully logged out")
}

func TestSignupMissingFields(t *testing.T) {
	srv := fakeCatalog(t)
	_, err := run(t, t.TempDir(), srv.URL, "signup", "--first", "Ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all fields are required")
}

func TestProductsAndProduct(t *testing.T) {
	srv := fakeCatalog(t)
	dir := t.TempDir()

	out, err := run(t, dir, srv.URL, "products")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "Blue Shirt")
	assert.Contains(t, lines[1], "$19.99")
	assert.Contains(t, lines[2], "$5.01")
	assert.Contains(t, lines[3], "Red Dress")

	out, err = run(t, dir, srv.URL, "products", "womens-dresses")
	require.NoError(t, err)
	assert.NotContains(t, out, "Blue Shirt")
	assert.Contains(t, out, "$40.00")

	out, err = run(t, dir, srv.URL, "product", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "MENS-SHIRTS")
	assert.Contains(t, out, "4.5 / 5")
	assert.Contains(t, out, "Related Products")
	assert.Contains(t, out, "Grey Tee")

	_, err = run(t, dir, srv.URL, "product", "9")
	require.Error(t, err)

	_, err = run(t, dir, srv.URL, "product", "abc")
	require.Error(t, err)
}

func TestSQLiteBackendFlag(t *testing.T) {
	srv := fakeCatalog(t)
	dir := t.TempDir()
	_, err := run(t, dir, srv.URL, "--store", "sqlite", "signup",
		"--first", "A", "--last", "B", "--mobile", "1", "--email", "a@b.c", "--password", "p")
	require.NoError(t, err)
	out, err := run(t, dir, srv.URL, "--store", "sqlite", "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:     A B")

	_, err = run(t, dir, srv.URL, "profile", "show")
	require.Error(t, err, "file backend has no account")

	_, err = run(t, dir, srv.URL, "--store", "redis", "logout")
	require.Error(t, err)
}
