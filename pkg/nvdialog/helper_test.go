package nvdialog

import (
	"testing"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

// newStub installs a fresh native stub and clears the package init gate.
func newStub(t *testing.T) *ffi.Stub {
	t.Helper()
	stub := ffi.NewStub()
	ffi.InstallStub(stub, t.Cleanup)
	initialized.Store(false)
	t.Cleanup(func() { initialized.Store(false) })
	return stub
}

// initStub installs a stub and runs Init through it.
func initStub(t *testing.T) *ffi.Stub {
	t.Helper()
	stub := newStub(t)
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return stub
}
