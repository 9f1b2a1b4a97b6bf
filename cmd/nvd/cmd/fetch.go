package cmd

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/cache"
	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/config"
	"github.com/go-nvdialog/nvdialog/cmd/nvd/internal/fetch"
)

func init() {
	RegisterCommand(&Command{
		Name:  "fetch",
		Short: "Download a prebuilt NvDialog library",
		Long: `Download a prebuilt NvDialog library from GitHub Releases.

By default the library for the current OS and architecture is fetched.
Use --target to fetch for another platform, for example when preparing
a cross-compiled release.

The version is determined in this order:
  1. --version flag
  2. NVDIALOG_VERSION environment variable
  3. library.version in nvdialog.yaml (when run inside a project)
  4. Latest release from GitHub

Libraries are stored in: ~/.nvdialog/lib/<version>/<os>/<arch>/`,
		Usage: "nvd fetch [--version VERSION] [--target OS/ARCH]",
		Run:   runFetch,
	})
}

// FetchOptions configures which release and targets to fetch.
type FetchOptions struct {
	Version string   // Override version (empty = auto-detect)
	Targets []string // "os/arch" pairs (empty = current platform)
}

func runFetch(args []string) error {
	opts := FetchOptions{}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			if i+1 < len(args) {
				opts.Version = args[i+1]
				i++
			} else {
				return fmt.Errorf("--version requires a value")
			}
		case "--target":
			if i+1 < len(args) {
				opts.Targets = append(opts.Targets, args[i+1])
				i++
			} else {
				return fmt.Errorf("--target requires an OS/ARCH value")
			}
		default:
			switch {
			case strings.HasPrefix(args[i], "--version="):
				opts.Version = strings.TrimPrefix(args[i], "--version=")
			case strings.HasPrefix(args[i], "--target="):
				opts.Targets = append(opts.Targets, strings.TrimPrefix(args[i], "--target="))
			default:
				return fmt.Errorf("unknown flag: %s", args[i])
			}
		}
	}

	if len(opts.Targets) == 0 {
		opts.Targets = []string{runtime.GOOS + "/" + runtime.GOARCH}
	}

	return Fetch(context.Background(), opts)
}

// Fetch downloads prebuilt NvDialog libraries for the given targets.
// It is exported so the demo command can fetch on demand.
func Fetch(ctx context.Context, opts FetchOptions) error {
	d := fetch.DefaultDownloader()

	version, err := resolveVersion(ctx, d, opts.Version)
	if err != nil {
		return err
	}

	fmt.Printf("Fetching NvDialog %s...\n", version)

	fmt.Println("  Downloading manifest...")
	manifest, err := fetch.FetchManifest(ctx, d, version)
	if err != nil {
		return err
	}

	for _, target := range opts.Targets {
		goos, goarch, ok := strings.Cut(target, "/")
		if !ok || goos == "" || goarch == "" {
			return fmt.Errorf("invalid target %q (expected OS/ARCH, e.g. linux/amd64)", target)
		}

		artifact, ok := manifest.Artifact(goos, goarch)
		if !ok {
			return fmt.Errorf("release %s has no prebuilt library for %s", version, target)
		}

		libDir, err := cache.LibDir(version, goos, goarch)
		if err != nil {
			return err
		}

		if err := fetchTarget(ctx, d, version, goos, goarch, artifact.SHA256, libDir); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", target, err)
		}
		fmt.Printf("  %s extracted to %s\n", target, libDir)
	}

	return nil
}

// resolveVersion picks the release version from the flag, environment,
// project config, or the latest GitHub release, in that order. Explicit
// flag values must be valid; the softer sources fall through when empty
// or unparsable.
func resolveVersion(ctx context.Context, d *fetch.Downloader, flagVersion string) (string, error) {
	if flagVersion != "" {
		version := cache.NormalizeVersion(flagVersion)
		if version == "" {
			return "", fmt.Errorf("invalid version %q\n\nUse a release version like v0.10.0 or omit --version to fetch latest", flagVersion)
		}
		return version, nil
	}

	if version := cache.NormalizeVersion(os.Getenv("NVDIALOG_VERSION")); version != "" {
		return version, nil
	}

	if root, err := config.FindProjectRoot(); err == nil {
		if cfg, err := config.Resolve(root); err == nil {
			if version := cache.NormalizeVersion(cfg.LibraryVersion); version != "" {
				return version, nil
			}
		}
	}

	fmt.Println("Fetching latest release version from GitHub...")
	latest, err := fetch.LatestRelease(ctx, d)
	if err != nil {
		return "", fmt.Errorf("failed to determine version: %w\n\nSet NVDIALOG_VERSION or use --version flag", err)
	}
	version := cache.NormalizeVersion(latest)
	if version == "" {
		return "", fmt.Errorf("latest release tag %q is not a valid version", latest)
	}
	return version, nil
}

func fetchTarget(ctx context.Context, d *fetch.Downloader, version, goos, goarch, expectedSHA256, libDir string) error {
	tmpDir, err := os.MkdirTemp("", "nvd-fetch-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	tarballName := fetch.TarballName(version, goos, goarch)
	tarPath := filepath.Join(tmpDir, tarballName)

	fmt.Printf("  Downloading %s...\n", tarballName)
	if err := d.Download(ctx, fetch.TarballURL(version, goos, goarch), tarPath); err != nil {
		return err
	}

	if err := fetch.VerifyChecksum(tarPath, expectedSHA256); err != nil {
		return err
	}

	fmt.Printf("  Extracting %s/%s...\n", goos, goarch)
	if err := extractTarGz(tarPath, libDir); err != nil {
		return fmt.Errorf("failed to extract tarball: %w", err)
	}

	return nil
}

func extractTarGz(tarPath, destDir string) error {
	f, err := os.Open(tarPath)
	if err != nil {
		return err
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		// Validate and clean path to prevent directory traversal
		if !isValidTarPath(header.Name) {
			continue
		}

		cleanName := filepath.Clean(header.Name)
		target := filepath.Join(destDir, cleanName)

		// Final safety check: ensure target is within destDir
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			continue
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(header.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(outFile, tr); err != nil {
				outFile.Close()
				return err
			}
			outFile.Close()
		}
	}

	return nil
}

// isValidTarPath checks if a tar entry path is safe to extract.
func isValidTarPath(name string) bool {
	if name == "" {
		return false
	}
	if filepath.IsAbs(name) {
		return false
	}

	clean := filepath.Clean(name)
	if strings.HasPrefix(clean, ".."+string(os.PathSeparator)) || clean == ".." {
		return false
	}

	return true
}
