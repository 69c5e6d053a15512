package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/config"
)

// loadCatalog prefers a snapshot taken from the same source, then the
// configured source, then the embedded campus. A fresh parse refreshes the
// snapshot when one is configured.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (*catalog.Catalog, error) {
	source := sourceName(cfg.Source)
	if cfg.SnapshotPath != "" {
		cat, err := catalog.LoadSnapshot(cfg.SnapshotPath)
		switch {
		case err != nil:
			logger.Debug("snapshot unavailable", zap.Error(err))
		case cat.Source != source:
			logger.Info("snapshot was taken from another source; reloading",
				zap.String("path", cfg.SnapshotPath),
				zap.String("snapshot_source", cat.Source),
				zap.String("source", source))
		default:
			logger.Info("catalog loaded from snapshot", zap.String("path", cfg.SnapshotPath))
			warnMissingEntranceFloors(cat, logger)
			return cat, nil
		}
	}

	var cat *catalog.Catalog
	var err error
	if cfg.Source == "" {
		cat, err = catalog.Default()
	} else {
		timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
		var data []byte
		data, err = newFetcher(timeout).fetch(ctx, cfg.Source)
		if err == nil {
			cat, err = catalog.Parse(data)
		}
	}
	if err != nil {
		return nil, err
	}
	cat.Source = source
	logger.Info("catalog loaded",
		zap.String("name", cat.Name),
		zap.String("source", source),
		zap.Int("buildings", len(cat.Buildings)))
	warnMissingEntranceFloors(cat, logger)

	if cfg.SnapshotPath != "" {
		if err := catalog.SaveSnapshot(cat, cfg.SnapshotPath); err != nil {
			logger.Warn("failed to write catalog snapshot", zap.String("path", cfg.SnapshotPath), zap.Error(err))
		}
	}
	return cat, nil
}

func warnMissingEntranceFloors(cat *catalog.Catalog, logger *zap.Logger) {
	for _, id := range cat.MissingEntranceFloors() {
		logger.Warn("building has no entrance floor; ground floor legs will be skipped", zap.String("building", id))
	}
}

func sourceName(src string) string {
	if src == "" {
		return "embedded"
	}
	return src
}
