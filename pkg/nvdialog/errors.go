package nvdialog

import (
	"errors"
	"fmt"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

// Code identifies a native NvDialog error condition. The values mirror the
// NvdError enumeration of the C library.
type Code int32

const (
	// CodeOK indicates no error.
	CodeOK Code = 0x0
	// CodeUnknown is the defensive fallback for codes outside the known
	// range. It is not a meaningful library state.
	CodeUnknown Code = -1
)

const (
	// CodeNoDisplay indicates no display server was found.
	CodeNoDisplay Code = 0xff + iota
	// CodeBackendFailure indicates the native backend failed.
	CodeBackendFailure
	// CodeInvalidParam indicates an invalid parameter was passed.
	CodeInvalidParam
	// CodeNotInitialized indicates the library has not been initialized.
	CodeNotInitialized
	// CodeInvalidBackend indicates an invalid backend was chosen.
	CodeInvalidBackend
	// CodeFileInaccessible indicates a file could not be accessed.
	CodeFileInaccessible
	// CodeEmptyString indicates an empty string was passed.
	CodeEmptyString
	// CodeOutOfMemory indicates a native allocation failed.
	CodeOutOfMemory
	// CodeInternal indicates an internal library error.
	CodeInternal
	// CodeAlreadyInitialized indicates a repeated initialization.
	CodeAlreadyInitialized
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "no error"
	case CodeNoDisplay:
		return "no display found"
	case CodeBackendFailure:
		return "backend failure"
	case CodeInvalidParam:
		return "invalid parameter passed"
	case CodeNotInitialized:
		return "library not initialized"
	case CodeInvalidBackend:
		return "invalid backend chosen"
	case CodeFileInaccessible:
		return "inaccessible file"
	case CodeEmptyString:
		return "empty string passed"
	case CodeOutOfMemory:
		return "out of memory"
	case CodeInternal:
		return "internal NvDialog error"
	case CodeAlreadyInitialized:
		return "already initialized"
	default:
		return "unknown error code"
	}
}

// codeFromNative converts a raw integer from the C side, collapsing anything
// outside the known range to CodeUnknown.
func codeFromNative(raw int32) Code {
	c := Code(raw)
	if c == CodeOK || (c >= CodeNoDisplay && c <= CodeAlreadyInitialized) {
		return c
	}
	return CodeUnknown
}

// Error is a native NvDialog failure surfaced through the binding.
type Error struct {
	// Op is the operation that failed (e.g. "nvdialog.NewDialogBox").
	Op string
	// Code categorizes the native condition.
	Code Code
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return e.Code.String()
}

// CodeOf extracts the native error code from err, or CodeUnknown if err does
// not carry one.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// ErrClosed is returned when a dialog handle is used after Close.
var ErrClosed = errors.New("nvdialog: handle already closed")

// newHandleError builds the error for a constructor whose native call
// returned a NULL handle, consulting the library's sticky error slot.
func newHandleError(op string) *Error {
	code := codeFromNative(ffi.Funcs().GetError())
	if code == CodeOK {
		code = CodeInternal
	}
	return &Error{Op: op, Code: code}
}
