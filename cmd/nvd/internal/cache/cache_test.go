package cache

import (
	"path/filepath"
	"testing"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v0.10.0", "v0.10.0"},
		{"0.10.0", "v0.10.0"},
		{" v0.9.0 ", "v0.9.0"},
		{"v0.10.0-rc1", "v0.10.0-rc1"},
		{"", ""},
		{"latest", ""},
		{"v0.10", "v0.10"},
		{"garbage.version", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVersion(tt.in); got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRootPriority(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NVDIALOG_CACHE_DIR", dir)

	got, err := Root()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("Root() = %q, want env override %q", got, dir)
	}

	override := t.TempDir()
	SetCacheDir(override)
	t.Cleanup(func() { SetCacheDir("") })
	got, err = Root()
	if err != nil {
		t.Fatal(err)
	}
	if got != override {
		t.Errorf("Root() = %q, want flag override %q", got, override)
	}
}

func TestLibDir(t *testing.T) {
	SetCacheDir("/tmp/nvdcache")
	t.Cleanup(func() { SetCacheDir("") })

	got, err := LibDir("v0.10.0", "linux", "amd64")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join("/tmp/nvdcache", "lib", "v0.10.0", "linux", "amd64")
	if got != want {
		t.Errorf("LibDir = %q, want %q", got, want)
	}
}
