// Package config loads the optional nvdialog.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config represents the optional nvdialog.yaml configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Library LibraryConfig `yaml:"library"`
}

// AppConfig contains application metadata shown in native dialogs.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// LibraryConfig pins the native libnvdialog release.
type LibraryConfig struct {
	Version string `yaml:"version,omitempty"`
	// Path points at a locally built library and bypasses the cache
	// entirely when set.
	Path string `yaml:"path,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	AppName        string
	LibraryVersion string
	LibraryPath    string
}

// LoadOptional reads nvdialog.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "nvdialog.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read nvdialog.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse nvdialog.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads nvdialog.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	version := strings.TrimSpace(cfg.Library.Version)
	if version == "" {
		version = "latest"
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath,
		AppName:        appName,
		LibraryVersion: version,
		LibraryPath:    strings.TrimSpace(cfg.Library.Path),
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	modName, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(modName, "/")
		if len(parts) > 0 {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." {
		return "NvDialog Application"
	}
	return base
}
