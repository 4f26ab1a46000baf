// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Defaults applied when the config file and environment provide nothing.
const (
	DefaultDetectionURL = "http://localhost:8000"
	defaultDataDir      = "$HOME/.local/share/drobe"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir returns the expanded directory that holds the closet database and
// extracted garment images.
func DataDir() string {
	dir := viper.GetString("data.dir")
	if dir == "" {
		dir = defaultDataDir
	}
	return ExpandPath(dir)
}

// DatabasePath returns the expanded path to the closet database file.
func DatabasePath() string {
	if p := viper.GetString("database.path"); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(DataDir(), "closet.db")
}

// ImagesDir returns the directory for extracted garment thumbnails.
func ImagesDir() string {
	if p := viper.GetString("images.dir"); p != "" {
		return ExpandPath(p)
	}
	return filepath.Join(DataDir(), "images")
}

// DetectionURL returns the base URL of the clothing detection service.
func DetectionURL() string {
	if u := viper.GetString("detection.url"); u != "" {
		return strings.TrimRight(u, "/")
	}
	return DefaultDetectionURL
}
