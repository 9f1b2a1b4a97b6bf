package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// InputBox is a modal dialog with a single-line text field, for prompts
// like "enter your name". It owns one native handle; release it with
// Close.
type InputBox struct {
	raw   uintptr
	input *DynamicString
}

// NewInputBox creates an input box with the given title and prompt text.
func NewInputBox(title, prompt string) (*InputBox, error) {
	const op = "nvdialog.NewInputBox"
	if err := notReady(op); err != nil {
		return nil, err
	}
	ctitle, err := cstr(op, "title", title)
	if err != nil {
		return nil, err
	}
	cprompt, err := cstr(op, "prompt", prompt)
	if err != nil {
		return nil, err
	}

	raw := ffi.Funcs().InputBoxNew(ctitle, cprompt)
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &InputBox{raw: raw}, nil
}

// Show renders the input box, blocks until the user dismisses it and
// captures whatever was entered. Showing again replaces the captured text.
func (b *InputBox) Show() error {
	if b == nil || b.raw == 0 {
		return ErrClosed
	}
	ffi.Funcs().ShowInputBox(b.raw)

	raw := ffi.Funcs().InputBoxGetString(b.raw)
	if b.input != nil {
		b.input.Close()
		b.input = nil
	}
	if raw != 0 {
		b.input = dynamicStringFromNative(raw)
	}
	return nil
}

// Input returns the text captured by the last Show. The second result is
// false when the user entered nothing; that is an ordinary outcome, not an
// error.
func (b *InputBox) Input() (string, bool) {
	if b == nil || b.input == nil {
		return "", false
	}
	return b.input.String(), true
}

// Close releases the native handle and the captured input. Safe to call
// repeatedly.
func (b *InputBox) Close() {
	if b == nil || b.raw == 0 {
		return
	}
	if b.input != nil {
		b.input.Close()
		b.input = nil
	}
	ffi.Funcs().FreeObject(b.raw)
	b.raw = 0
}
