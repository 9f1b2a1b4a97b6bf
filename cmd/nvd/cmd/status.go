package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/cache"
	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show cached libraries and project config",
		Long: `Show which NvDialog library versions are cached and, when run
inside a Go project, how nvdialog.yaml resolves.

A version is marked "ready" when the cache holds a library for the
current OS and architecture.`,
		Usage: "nvd status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := cache.Root()
	if err != nil {
		return err
	}
	fmt.Printf("Cache: %s\n", root)

	if path := os.Getenv("NVDIALOG_LIBRARY"); path != "" {
		fmt.Printf("Library override: %s (NVDIALOG_LIBRARY)\n", path)
	}
	fmt.Println()

	versions, err := cache.CachedVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("No cached libraries. Run \"nvd fetch\" to download one.")
	} else {
		fmt.Println("Cached versions:")
		for _, v := range versions {
			libDir, err := cache.LibDir(v, runtime.GOOS, runtime.GOARCH)
			if err != nil {
				return err
			}
			state := "missing " + runtime.GOOS + "/" + runtime.GOARCH
			if dirHasFiles(libDir) {
				state = "ready"
			}
			fmt.Printf("  %-12s %s\n", v, state)
		}
	}

	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		// Not inside a Go module. Cache information alone is still useful.
		return nil
	}
	cfg, err := config.Resolve(projectRoot)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Project: %s (%s)\n", cfg.AppName, cfg.ModulePath)
	fmt.Printf("  library version: %s\n", cfg.LibraryVersion)
	if cfg.LibraryPath != "" {
		fmt.Printf("  library path:    %s\n", cfg.LibraryPath)
	}

	return nil
}

func dirHasFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true
		}
		if dirHasFiles(filepath.Join(dir, e.Name())) {
			return true
		}
	}
	return false
}
