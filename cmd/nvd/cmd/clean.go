package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/cache"
)

func init() {
	RegisterCommand(&Command{
		Name:  "clean",
		Short: "Remove cached libraries",
		Long: `Remove cached NvDialog libraries.

Pass a version to remove one release, or --all to empty the cache.`,
		Usage: "nvd clean <VERSION | --all>",
		Run:   runClean,
	})
}

func runClean(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("clean requires a version or --all\n\nUsage: nvd clean <VERSION | --all>")
	}

	root, err := cache.Root()
	if err != nil {
		return err
	}
	libRoot := filepath.Join(root, "lib")

	if args[0] != "--all" {
		version := cache.NormalizeVersion(args[0])
		if version == "" {
			return fmt.Errorf("invalid version %q", args[0])
		}
		dir := filepath.Join(libRoot, version)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("version %s is not cached", version)
		}
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		fmt.Printf("Removed %s\n", dir)
		return nil
	}

	versions, err := cache.CachedVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	for _, v := range versions {
		dir := filepath.Join(libRoot, v)
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove %s: %w", dir, err)
		}
		fmt.Printf("Removed %s\n", dir)
	}
	return nil
}
