package catalog

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// SerializeCatalog encodes a validated catalog with gob.
// Useful for disk caching so startup skips YAML decoding and validation.
func SerializeCatalog(cat *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeCatalogToWriter(cat, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeCatalog decodes a catalog previously written by SerializeCatalog.
// The result is validated again; a snapshot from an older binary may be stale.
func DeserializeCatalog(data []byte) (*Catalog, error) {
	return DeserializeCatalogFromReader(bytes.NewReader(data))
}

// SerializeCatalogToWriter writes a gob encoded catalog to w.
func SerializeCatalogToWriter(cat *Catalog, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(cat); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return nil
}

// DeserializeCatalogFromReader reads a gob encoded catalog from r.
func DeserializeCatalogFromReader(r io.Reader) (*Catalog, error) {
	var cat Catalog
	if err := gob.NewDecoder(r).Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// SaveSnapshot writes the catalog to path.
//
// Example:
//
//	cat, _ := catalog.Default()
//	if err := catalog.SaveSnapshot(cat, "/cache/campus.gob"); err != nil {
//	    // handle error
//	}
func SaveSnapshot(cat *Catalog, path string) error {
	data, err := SerializeCatalog(cat)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot reads a catalog written by SaveSnapshot.
//
// Example:
//
//	cat, err := catalog.LoadSnapshot("/cache/campus.gob")
//	if err != nil {
//	    // cache miss or corrupted, parse the YAML source instead
//	    cat, _ = catalog.Default()
//	}
func LoadSnapshot(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return DeserializeCatalog(data)
}
