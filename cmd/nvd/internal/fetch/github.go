package fetch

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// GitHubRepo is the repository that publishes prebuilt libnvdialog
	// binaries alongside each release.
	GitHubRepo = "go-nvdialog/nvdialog"

	// GitHubAPILatestRelease is the endpoint for fetching the latest release.
	GitHubAPILatestRelease = "https://api.github.com/repos/" + GitHubRepo + "/releases/latest"

	// GitHubReleaseDownloadBase is the base URL for release downloads.
	GitHubReleaseDownloadBase = "https://github.com/" + GitHubRepo + "/releases/download"
)

// Manifest is the manifest.json attached to a release. It maps targets
// ("linux/amd64", "darwin/arm64", ...) to their artifact metadata.
type Manifest struct {
	Targets map[string]Artifact `json:"targets"`
}

// Artifact describes one prebuilt library tarball.
type Artifact struct {
	SHA256 string `json:"sha256"`
}

// Artifact returns the artifact for a GOOS/GOARCH pair, or false if the
// release carries no prebuilt library for that target.
func (m *Manifest) Artifact(goos, goarch string) (Artifact, bool) {
	a, ok := m.Targets[goos+"/"+goarch]
	return a, ok
}

// releaseResponse is the GitHub API response for a release.
type releaseResponse struct {
	TagName string `json:"tag_name"`
}

// LatestRelease fetches the latest release tag from GitHub.
func LatestRelease(ctx context.Context, d *Downloader) (string, error) {
	body, err := d.Get(ctx, GitHubAPILatestRelease)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}

	var resp releaseResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse release response: %w", err)
	}

	if resp.TagName == "" {
		return "", fmt.Errorf("no tag_name in release response")
	}

	return resp.TagName, nil
}

// FetchManifest downloads and parses the manifest.json for a release.
func FetchManifest(ctx context.Context, d *Downloader, version string) (*Manifest, error) {
	body, err := d.Get(ctx, ManifestURL(version))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// ManifestURL returns the URL for the manifest.json of a release.
func ManifestURL(version string) string {
	return fmt.Sprintf("%s/%s/manifest.json", GitHubReleaseDownloadBase, version)
}

// TarballURL returns the download URL for one target's library tarball.
func TarballURL(version, goos, goarch string) string {
	return fmt.Sprintf("%s/%s/nvdialog-%s-%s-%s.tar.gz", GitHubReleaseDownloadBase, version, version, goos, goarch)
}

// TarballName returns the file name of one target's library tarball.
func TarballName(version, goos, goarch string) string {
	return fmt.Sprintf("nvdialog-%s-%s-%s.tar.gz", version, goos, goarch)
}
