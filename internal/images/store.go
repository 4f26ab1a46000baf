// Package images persists extracted garment thumbnails on disk so clothing
// items can reference stable file paths instead of inline data URIs.
package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const dataURIPrefix = "data:image/png;base64,"

// Store writes garment images under a single directory.
type Store struct {
	dir string
}

// NewStore creates an image store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// SavePNG writes raw PNG bytes and returns the file path.
func (s *Store) SavePNG(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image data")
	}

	path := filepath.Join(s.dir, fmt.Sprintf("garment_%s.png", uuid.NewString()[:12]))
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}

// Materialize converts a base64 PNG data URI into a stored file and returns
// its path. URIs that are not data URIs (file paths, http URLs) pass through
// unchanged.
func (s *Store) Materialize(imageURI string) (string, error) {
	if !strings.HasPrefix(imageURI, dataURIPrefix) {
		return imageURI, nil
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(imageURI, dataURIPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decode image data URI: %w", err)
	}
	return s.SavePNG(data)
}
