// Package cache resolves the nvd cache directory, where fetched native
// libraries live.
//
// Priority order: --cache-dir flag > NVDIALOG_CACHE_DIR env > ~/.nvdialog.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

var global struct {
	cacheDir string
}

// SetCacheDir sets an override for the cache directory, typically from the
// --cache-dir flag.
func SetCacheDir(dir string) {
	global.cacheDir = dir
}

// Root returns the cache root directory.
func Root() (string, error) {
	if global.cacheDir != "" {
		return global.cacheDir, nil
	}
	if envDir := os.Getenv("NVDIALOG_CACHE_DIR"); envDir != "" {
		return envDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".nvdialog"), nil
}

// LibDir returns the directory holding the native library for one release
// and target: <cache_root>/lib/<version>/<os>/<arch>.
func LibDir(version, goos, goarch string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "lib", version, goos, goarch), nil
}

// NormalizeVersion returns a canonical release version ("0.10.0" and
// "v0.10.0" both become "v0.10.0"), or empty if the input is not a valid
// semantic version. Prerelease tags are allowed.
func NormalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	return version
}

// CachedVersions lists release versions present under <cache_root>/lib,
// newest first by semantic-version order.
func CachedVersions() ([]string, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(root, "lib"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var versions []string
	for _, e := range entries {
		if e.IsDir() && semver.IsValid(e.Name()) {
			versions = append(versions, e.Name())
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare(versions[i], versions[j]) > 0
	})
	return versions, nil
}
