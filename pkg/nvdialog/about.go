package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// AboutOptions configures an about dialog. Optional fields may be left
// zero.
type AboutOptions struct {
	// Name is the application name shown in the dialog header. Empty
	// falls back to the configured application name.
	Name string
	// Description is the short text under the name.
	Description string
	// Icon is an optional application icon. The caller keeps ownership
	// and must close it after the dialog is closed.
	Icon *Image
}

// AboutDialog is the traditional Help → About window. It owns one native
// handle; release it with Close.
type AboutDialog struct {
	raw uintptr
}

// NewAboutDialog creates an about dialog from opts.
func NewAboutDialog(opts AboutOptions) (*AboutDialog, error) {
	const op = "nvdialog.NewAboutDialog"
	if err := notReady(op); err != nil {
		return nil, err
	}
	name := opts.Name
	if name == "" {
		name = AppName()
	}
	cname, err := cstr(op, "name", name)
	if err != nil {
		return nil, err
	}
	cdescription, err := cstr(op, "description", opts.Description)
	if err != nil {
		return nil, err
	}

	raw := ffi.Funcs().AboutDialogNew(cname, cdescription, nil)
	if raw == 0 {
		return nil, newHandleError(op)
	}
	d := &AboutDialog{raw: raw}
	if opts.Icon != nil && opts.Icon.raw != 0 {
		ffi.Funcs().DialogSetIcon(d.raw, opts.Icon.raw)
	}
	return d, nil
}

// Show renders the dialog and blocks until the user dismisses it.
func (d *AboutDialog) Show() error {
	if d == nil || d.raw == 0 {
		return ErrClosed
	}
	ffi.Funcs().ShowAboutDialog(d.raw)
	return nil
}

// Close releases the native handle. Safe to call repeatedly.
func (d *AboutDialog) Close() {
	if d == nil || d.raw == 0 {
		return
	}
	ffi.Funcs().FreeObject(d.raw)
	d.raw = 0
}
