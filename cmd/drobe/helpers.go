package main

import (
	"context"
	"fmt"

	"github.com/ainsleyw/drobe/internal/config"
	"github.com/ainsleyw/drobe/internal/detect"
	"github.com/ainsleyw/drobe/internal/images"
	"github.com/ainsleyw/drobe/internal/storage"
)

// initStore opens the closet database and brings the schema up to date.
func initStore(ctx context.Context) (*storage.SQLiteStore, error) {
	store, err := storage.NewSQLiteStore(config.DatabasePath())
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newDetector creates the detection client from configuration.
func newDetector() *detect.Client {
	return detect.NewClient(config.DetectionURL())
}

// newImageStore opens the thumbnail directory.
func newImageStore() (*images.Store, error) {
	return images.NewStore(config.ImagesDir())
}
