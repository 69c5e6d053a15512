package catalog_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog/catalogtest"
)

func TestSnapshot_File(t *testing.T) {
	cat := catalogtest.LoadDefault(t)
	path := filepath.Join(t.TempDir(), "campus.gob")

	require.NoError(t, catalog.SaveSnapshot(cat, path))
	got, err := catalog.LoadSnapshot(path)
	require.NoError(t, err)

	if diff := cmp.Diff(cat, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_KeepsSource(t *testing.T) {
	cat := catalogtest.Fixture()
	cat.Source = "https://campus.test/catalog.yml"
	path := filepath.Join(t.TempDir(), "campus.gob")

	require.NoError(t, catalog.SaveSnapshot(cat, path))
	got, err := catalog.LoadSnapshot(path)
	require.NoError(t, err)
	require.Equal(t, cat.Source, got.Source)
}

func TestSnapshot_WriterReader(t *testing.T) {
	cat := catalogtest.Fixture()
	var buf bytes.Buffer
	require.NoError(t, catalog.SerializeCatalogToWriter(cat, &buf))

	got, err := catalog.DeserializeCatalogFromReader(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(cat, got); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob")
	require.NoError(t, os.WriteFile(path, []byte("not gob"), 0644))

	_, err := catalog.LoadSnapshot(path)
	require.Error(t, err)

	_, err = catalog.LoadSnapshot(filepath.Join(t.TempDir(), "missing.gob"))
	require.Error(t, err)
}

func TestSnapshot_RevalidatesOnLoad(t *testing.T) {
	cat := catalogtest.Fixture()
	cat.Buildings[0].Floors[0].IndoorMapURLBase = "https://maps.test/no-query"
	data, err := catalog.SerializeCatalog(cat)
	require.NoError(t, err)

	_, err = catalog.DeserializeCatalog(data)
	require.Error(t, err)
}
