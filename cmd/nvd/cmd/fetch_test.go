package cmd

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidTarPath(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"libnvdialog.so", true},
		{"sub/dir/libnvdialog.so", true},
		{"./libnvdialog.so", true},
		{"", false},
		{"/etc/passwd", false},
		{"..", false},
		{"../escape.so", false},
		{"a/../../escape.so", false},
	}
	for _, tt := range tests {
		if got := isValidTarPath(tt.name); got != tt.ok {
			t.Errorf("isValidTarPath(%q) = %v, want %v", tt.name, got, tt.ok)
		}
	}
}

func writeTarGz(t *testing.T, entries map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	gzw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gzw)
	for name, body := range entries {
		hdr := &tar.Header{
			Name: name,
			Mode: 0o644,
			Size: int64(len(body)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := gzw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "artifact.tar.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractTarGz(t *testing.T) {
	tarPath := writeTarGz(t, map[string]string{
		"libnvdialog.so":     "fake shared object",
		"doc/LICENSE":        "license text",
		"../escape.txt":      "must not appear",
		"/abs/escape.txt":    "must not appear",
		"deep/../../bad.txt": "must not appear",
	})

	dest := t.TempDir()
	if err := extractTarGz(tarPath, dest); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dest, "libnvdialog.so"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "fake shared object" {
		t.Errorf("extracted content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(dest, "doc", "LICENSE")); err != nil {
		t.Errorf("nested file not extracted: %v", err)
	}

	for _, escaped := range []string{
		filepath.Join(filepath.Dir(dest), "escape.txt"),
		filepath.Join(dest, "bad.txt"),
	} {
		if _, err := os.Stat(escaped); err == nil {
			t.Errorf("traversal entry was extracted to %s", escaped)
		}
	}
}
