// Package nvdialog provides Go bindings to the NvDialog native dialog
// library: message boxes, question dialogs, file choosers, desktop
// notifications, input boxes and about dialogs rendered by the operating
// system's own toolkit (GTK, Win32, Cocoa).
//
// Call Init once before constructing any dialog. Every dialog wrapper owns
// exactly one native handle and must be released with Close; Close is safe
// to call more than once and never fails.
//
// NvDialog requires that dialogs are created and used on the same thread
// that performed initialization. The binding does not enforce this —
// cross-thread use is a documented hazard: it may work on Windows, is
// unreliable under GTK and is rejected outright by macOS. Programs that
// want dialogs off the main goroutine should dedicate a locked OS thread to
// all nvdialog calls.
package nvdialog

import (
	"fmt"
	"sync/atomic"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

// defaultAppName is substituted for empty application names; the native
// layer treats empty strings as an error downstream.
const defaultAppName = "NvDialog Application"

var initialized atomic.Bool

// Init loads the native library and initializes it for the current thread.
// It must be called before any dialog is constructed.
//
// NvDialog historically accepted the process argv[0] here and, in some
// versions, performed a sandboxing fork; both variants are gone from the
// supported surface. Init always passes a NULL argument.
//
// A second call after a successful one returns CodeAlreadyInitialized.
func Init() error {
	if initialized.Load() {
		return &Error{Op: "nvdialog.Init", Code: CodeAlreadyInitialized}
	}
	if err := ffi.Load(); err != nil {
		return fmt.Errorf("nvdialog: %w", err)
	}
	if rc := ffi.Funcs().Init(nil); rc != 0 {
		code := codeFromNative(rc)
		if code == CodeOK {
			code = CodeInternal
		}
		return &Error{Op: "nvdialog.Init", Code: code}
	}
	initialized.Store(true)
	return nil
}

// Initialized reports whether Init has completed successfully.
func Initialized() bool {
	return initialized.Load()
}

// SetAppName sets the application name NvDialog uses in notifications and
// desktop integration (e.g. DBus). An empty name is replaced with the
// library's non-empty placeholder. The call is fire-and-forget and is a
// no-op before Init.
func SetAppName(name string) {
	if !initialized.Load() {
		return
	}
	if name == "" {
		name = defaultAppName
	}
	p, err := ffi.CString(name)
	if err != nil {
		return
	}
	ffi.Funcs().SetApplicationName(p)
}

// AppName returns the application name the native layer currently holds.
func AppName() string {
	if !initialized.Load() {
		return ""
	}
	return ffi.GoString(ffi.Funcs().GetApplicationName())
}

// LastError returns the library's sticky error slot as an error, or nil if
// no error is recorded. NvDialog keeps one error until it is overwritten,
// so this reflects the most recent failure, not necessarily the last call.
func LastError() error {
	if !initialized.Load() {
		return &Error{Op: "nvdialog.LastError", Code: CodeNotInitialized}
	}
	code := codeFromNative(ffi.Funcs().GetError())
	if code == CodeOK {
		return nil
	}
	return &Error{Code: code}
}

// notReady returns the guard error for operations attempted before Init.
func notReady(op string) error {
	if initialized.Load() {
		return nil
	}
	return &Error{Op: op, Code: CodeNotInitialized}
}

// cstr converts a caller-supplied string for the native side, attributing
// conversion failures (embedded NUL bytes) to the operation and field.
func cstr(op, field, s string) (*byte, error) {
	p, err := ffi.CString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, field, err)
	}
	return p, nil
}
