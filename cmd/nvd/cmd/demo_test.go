package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

func setupProjectWithConfig(t *testing.T, yaml string) string {
	t.Helper()
	dir := setupProject(t)
	if err := os.WriteFile(filepath.Join(dir, "nvdialog.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestApplyProjectConfigLibraryPath(t *testing.T) {
	setupProjectWithConfig(t, `
app:
  name: Photo Box
library:
  path: /opt/nvdialog/libnvdialog.so
`)
	t.Setenv(ffi.EnvLibrary, "")
	os.Unsetenv(ffi.EnvLibrary)

	appName := applyProjectConfig()
	if appName != "Photo Box" {
		t.Errorf("app name = %q, want Photo Box", appName)
	}
	if got := os.Getenv(ffi.EnvLibrary); got != "/opt/nvdialog/libnvdialog.so" {
		t.Errorf("%s = %q, want the configured library path", ffi.EnvLibrary, got)
	}
}

func TestApplyProjectConfigKeepsEnvOverride(t *testing.T) {
	setupProjectWithConfig(t, `
library:
  path: /opt/nvdialog/libnvdialog.so
`)
	t.Setenv(ffi.EnvLibrary, "/home/me/custom/libnvdialog.so")

	applyProjectConfig()
	if got := os.Getenv(ffi.EnvLibrary); got != "/home/me/custom/libnvdialog.so" {
		t.Errorf("%s = %q, environment override was clobbered", ffi.EnvLibrary, got)
	}
}

func TestApplyProjectConfigOutsideModule(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(ffi.EnvLibrary, "")
	os.Unsetenv(ffi.EnvLibrary)

	if appName := applyProjectConfig(); appName != "nvd demo" {
		t.Errorf("app name = %q, want the fallback", appName)
	}
	if got := os.Getenv(ffi.EnvLibrary); got != "" {
		t.Errorf("%s = %q, want unset", ffi.EnvLibrary, got)
	}
}
