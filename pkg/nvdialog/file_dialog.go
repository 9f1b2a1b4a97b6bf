package nvdialog

import (
	"fmt"
	"strings"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

// defaultSaveName is suggested by save dialogs when the caller provides no
// default filename.
const defaultSaveName = "filename"

// FileDialog is a modal file chooser, either for opening an existing file
// or for picking a save location. It owns one native handle; release it
// with Close.
type FileDialog struct {
	raw      uintptr
	title    string
	location string
	located  bool
	queried  bool
}

// NewOpenFileDialog creates a file chooser for opening a file. The optional
// extensions restrict the selectable files (e.g. "png", "jpg"); an empty
// list allows everything.
func NewOpenFileDialog(title string, extensions []string) (*FileDialog, error) {
	const op = "nvdialog.NewOpenFileDialog"
	if err := notReady(op); err != nil {
		return nil, err
	}
	ctitle, err := cstr(op, "title", title)
	if err != nil {
		return nil, err
	}
	filter, err := joinExtensions(extensions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	raw := ffi.Funcs().OpenFileDialogNew(ctitle, &filter[0])
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &FileDialog{raw: raw, title: title}, nil
}

// NewSaveFileDialog creates a file chooser for picking a save location,
// suggesting defaultName (or "filename" if empty).
func NewSaveFileDialog(title, defaultName string) (*FileDialog, error) {
	const op = "nvdialog.NewSaveFileDialog"
	if err := notReady(op); err != nil {
		return nil, err
	}
	if defaultName == "" {
		defaultName = defaultSaveName
	}
	ctitle, err := cstr(op, "title", title)
	if err != nil {
		return nil, err
	}
	cname, err := cstr(op, "default name", defaultName)
	if err != nil {
		return nil, err
	}

	raw := ffi.Funcs().SaveFileDialogNew(ctitle, cname)
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &FileDialog{raw: raw, title: title}, nil
}

// Filename shows the chooser on first call and returns the selected path.
// The second result is false when the user dismissed the dialog without a
// selection; that is an ordinary outcome, not an error. The selection is
// cached, so repeated calls do not re-present the dialog, and the cached
// result stays readable after Close. A dialog closed before its first
// query reports no selection.
func (d *FileDialog) Filename() (string, bool) {
	if d == nil {
		return "", false
	}
	if d.queried {
		return d.location, d.located
	}
	if d.raw == 0 {
		return "", false
	}
	d.queried = true

	var out *byte
	ffi.Funcs().GetFileLocation(d.raw, &out)
	if out == nil {
		return "", false
	}
	d.location = ffi.GoString(out)
	d.located = true
	return d.location, true
}

// Close releases the native handle. Safe to call repeatedly.
func (d *FileDialog) Close() {
	if d == nil || d.raw == 0 {
		return
	}
	ffi.Funcs().FreeObject(d.raw)
	d.raw = 0
}

// joinExtensions builds the filter NvDialog expects: every extension
// followed by a semicolon and a NUL, the whole list NUL-terminated. The
// result deliberately contains interior NUL bytes, so it is assembled as a
// raw buffer instead of going through CString. Individual extensions must
// not contain NUL or separator characters themselves. The buffer is padded
// to the C-string scan chunk size and is never empty.
func joinExtensions(extensions []string) ([]byte, error) {
	var buf []byte
	for _, ext := range extensions {
		if ext == "" {
			return nil, fmt.Errorf("extension list contains an empty entry")
		}
		if strings.ContainsAny(ext, ";\x00") {
			return nil, fmt.Errorf("extension %q contains a separator byte", ext)
		}
		buf = append(buf, ext...)
		buf = append(buf, ';', 0)
	}
	buf = append(buf, 0)
	for len(buf)%8 != 0 {
		buf = append(buf, 0)
	}
	return buf, nil
}
