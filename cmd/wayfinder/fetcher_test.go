package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campus.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))

	data, err := newFetcher(time.Second).fetch(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "name: x\n", string(data))
}

func TestFetcher_EmptySource(t *testing.T) {
	data, err := newFetcher(time.Second).fetch(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestFetcher_HTTP(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/campus.yml" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("name: remote\n"))
	}))
	defer ts.Close()

	f := newFetcher(time.Second)
	data, err := f.fetch(context.Background(), ts.URL+"/campus.yml")
	require.NoError(t, err)
	assert.Equal(t, "name: remote\n", string(data))

	_, err = f.fetch(context.Background(), ts.URL+"/missing.yml")
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestFetcher_TooLarge(t *testing.T) {
	orig := maxCatalogBytes
	maxCatalogBytes = 16
	defer func() { maxCatalogBytes = orig }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path[1:] + "\n"))
	}))
	defer ts.Close()

	f := newFetcher(time.Second)
	data, err := f.fetch(context.Background(), ts.URL+"/name-exactly-15")
	require.NoError(t, err)
	assert.Len(t, data, 16)

	_, err = f.fetch(context.Background(), ts.URL+"/name-longer-than")
	assert.ErrorContains(t, err, "exceeds 16 bytes")
}

func TestFetcher_MissingFile(t *testing.T) {
	_, err := newFetcher(time.Second).fetch(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
