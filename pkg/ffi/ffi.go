// Package ffi resolves and exposes the raw libnvdialog entry points.
//
// The package loads the shared library at runtime (no cgo) and registers
// every nvd_* function into a Table. Higher-level wrappers in pkg/nvdialog
// call through the active table; tests install an in-process Stub instead,
// so the whole binding can be exercised without a display server or the
// native library present.
package ffi

import (
	"sync"
)

// Table holds every libnvdialog entry point used by the binding.
//
// Pointer-typed handles from the native side are carried as uintptr: they
// reference library-owned state and are only ever passed back into the
// table, never dereferenced from Go.
type Table struct {
	// Library lifecycle and process-wide state.
	Init               func(argv0 *byte) int32
	SetApplicationName func(name *byte)
	GetApplicationName func() *byte
	GetError           func() int32
	SetError           func(code int32)

	// Message dialog boxes.
	DialogBoxNew           func(title, message *byte, kind int32) uintptr
	ShowDialog             func(dialog uintptr)
	DialogBoxSetAcceptText func(dialog uintptr, label *byte)
	FreeObject             func(object uintptr)

	// Question dialogs.
	DialogQuestionNew func(title, message *byte, buttons int32) uintptr
	GetReply          func(box uintptr) int32

	// File choosers. GetFileLocation writes the chosen path into the
	// caller-supplied slot; a NULL write means nothing was selected.
	OpenFileDialogNew func(title, extensions *byte) uintptr
	SaveFileDialogNew func(title, defaultName *byte) uintptr
	GetFileLocation   func(dialog uintptr, out **byte)

	// Desktop notifications.
	NotificationNew       func(title, message *byte, kind int32) uintptr
	SendNotification      func(notification uintptr)
	DeleteNotification    func(notification uintptr)
	AddNotificationAction func(notification uintptr, action *byte, value int32, out *int32)

	// About dialogs.
	AboutDialogNew  func(name, description, logoPath *byte) uintptr
	ShowAboutDialog func(dialog uintptr)
	DialogSetIcon   func(dialog uintptr, image uintptr)

	// Input boxes.
	InputBoxNew       func(title, prompt *byte) uintptr
	ShowInputBox      func(box uintptr)
	InputBoxGetString func(box uintptr) uintptr

	// Dynamic strings (heap strings owned by the native allocator).
	StringNew       func(data *byte) uintptr
	StringToCStr    func(s uintptr) *byte
	DuplicateString func(s uintptr) uintptr
	DeleteString    func(s uintptr)

	// Images used for dialog icons.
	ImageFromFilename func(path *byte, width, height *int32) *byte
	CreateImage       func(data *byte, width, height int32) uintptr
	DestroyImage      func(image uintptr)
}

var (
	mu     sync.Mutex
	active *Table
)

// Funcs returns the active entry-point table, or nil if no library has been
// loaded and no stub installed.
func Funcs() *Table {
	mu.Lock()
	defer mu.Unlock()
	return active
}

// Loaded reports whether an entry-point table is active.
func Loaded() bool {
	return Funcs() != nil
}

// Install replaces the active table. Intended for tests; production code
// should call Load or LoadFrom instead.
func Install(t *Table) {
	mu.Lock()
	active = t
	mu.Unlock()
}

// Reset drops the active table. After Reset the library must be loaded (or a
// stub installed) again before any native call.
func Reset() {
	Install(nil)
}
