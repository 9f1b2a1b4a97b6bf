package fetch

import (
	"encoding/json"
	"testing"
)

func TestManifestArtifact(t *testing.T) {
	raw := `{
		"targets": {
			"linux/amd64":  {"sha256": "aa11"},
			"darwin/arm64": {"sha256": "bb22"}
		}
	}`
	var m Manifest
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatal(err)
	}

	a, ok := m.Artifact("linux", "amd64")
	if !ok || a.SHA256 != "aa11" {
		t.Errorf("Artifact(linux, amd64) = %+v, %v", a, ok)
	}
	if _, ok := m.Artifact("windows", "amd64"); ok {
		t.Error("Artifact reported a target the manifest does not carry")
	}
}

func TestReleaseURLs(t *testing.T) {
	gotManifest := ManifestURL("v0.10.0")
	wantManifest := "https://github.com/go-nvdialog/nvdialog/releases/download/v0.10.0/manifest.json"
	if gotManifest != wantManifest {
		t.Errorf("ManifestURL = %q, want %q", gotManifest, wantManifest)
	}

	gotTarball := TarballURL("v0.10.0", "linux", "arm64")
	wantTarball := "https://github.com/go-nvdialog/nvdialog/releases/download/v0.10.0/nvdialog-v0.10.0-linux-arm64.tar.gz"
	if gotTarball != wantTarball {
		t.Errorf("TarballURL = %q, want %q", gotTarball, wantTarball)
	}

	if got, want := TarballName("v0.10.0", "linux", "arm64"), "nvdialog-v0.10.0-linux-arm64.tar.gz"; got != want {
		t.Errorf("TarballName = %q, want %q", got, want)
	}
}
