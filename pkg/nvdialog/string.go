package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// DynamicString wraps an NvdDynamicString, a heap string owned by the
// native allocator. The text is mirrored on the Go side at construction, so
// reads never cross the FFI boundary. Release with Close.
type DynamicString struct {
	raw    uintptr
	mirror string
}

// NewDynamicString allocates a native dynamic string holding s.
func NewDynamicString(s string) (*DynamicString, error) {
	const op = "nvdialog.NewDynamicString"
	if err := notReady(op); err != nil {
		return nil, err
	}
	data, err := cstr(op, "data", s)
	if err != nil {
		return nil, err
	}
	raw := ffi.Funcs().StringNew(data)
	if raw == 0 {
		return nil, &Error{Op: op, Code: CodeOutOfMemory}
	}
	return &DynamicString{raw: raw, mirror: s}, nil
}

// dynamicStringFromNative adopts a native string handle produced by the
// library, mirroring its contents. Ownership transfers to the wrapper.
func dynamicStringFromNative(raw uintptr) *DynamicString {
	return &DynamicString{
		raw:    raw,
		mirror: ffi.GoString(ffi.Funcs().StringToCStr(raw)),
	}
}

// String returns the mirrored text.
func (s *DynamicString) String() string {
	if s == nil {
		return ""
	}
	return s.mirror
}

// Duplicate deep-copies the native string. The copy is independently owned
// and must be closed separately.
func (s *DynamicString) Duplicate() (*DynamicString, error) {
	const op = "nvdialog.DynamicString.Duplicate"
	if s == nil || s.raw == 0 {
		return nil, ErrClosed
	}
	raw := ffi.Funcs().DuplicateString(s.raw)
	if raw == 0 {
		return nil, &Error{Op: op, Code: CodeOutOfMemory}
	}
	return &DynamicString{raw: raw, mirror: s.mirror}, nil
}

// Close releases the native string. Safe to call repeatedly.
func (s *DynamicString) Close() {
	if s == nil || s.raw == 0 {
		return
	}
	ffi.Funcs().DeleteString(s.raw)
	s.raw = 0
}
