package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// DialogType selects the decoration of a message dialog box. The values
// mirror the NVD_DIALOG_* constants.
type DialogType int32

const (
	// DialogSimple is an undecorated informational dialog.
	DialogSimple DialogType = 0xff + iota
	// DialogWarning adds warning colors and iconography.
	DialogWarning
	// DialogError marks the dialog as an error report.
	DialogError
)

// DialogBox is a modal message box. It owns one native handle; release it
// with Close.
type DialogBox struct {
	raw     uintptr
	title   string
	message string
}

// NewDialogBox creates a message dialog with the given title and message.
func NewDialogBox(title, message string, kind DialogType) (*DialogBox, error) {
	const op = "nvdialog.NewDialogBox"
	if err := notReady(op); err != nil {
		return nil, err
	}
	ctitle, err := cstr(op, "title", title)
	if err != nil {
		return nil, err
	}
	cmessage, err := cstr(op, "message", message)
	if err != nil {
		return nil, err
	}

	raw := ffi.Funcs().DialogBoxNew(ctitle, cmessage, int32(kind))
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &DialogBox{raw: raw, title: title, message: message}, nil
}

// Title returns the title the dialog was created with.
func (d *DialogBox) Title() string { return d.title }

// Message returns the message the dialog was created with.
func (d *DialogBox) Message() string { return d.message }

// Show renders the dialog and blocks until the user dismisses it.
func (d *DialogBox) Show() error {
	if d == nil || d.raw == 0 {
		return ErrClosed
	}
	ffi.Funcs().ShowDialog(d.raw)
	return nil
}

// SetAcceptText replaces the label of the dialog's accept button.
func (d *DialogBox) SetAcceptText(label string) error {
	const op = "nvdialog.DialogBox.SetAcceptText"
	if d == nil || d.raw == 0 {
		return ErrClosed
	}
	clabel, err := cstr(op, "label", label)
	if err != nil {
		return err
	}
	ffi.Funcs().DialogBoxSetAcceptText(d.raw, clabel)
	return nil
}

// Close releases the native handle. It is safe to call repeatedly; only the
// first call frees.
func (d *DialogBox) Close() {
	if d == nil || d.raw == 0 {
		return
	}
	ffi.Funcs().FreeObject(d.raw)
	d.raw = 0
}
