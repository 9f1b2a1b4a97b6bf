package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// Buttons selects the button combination of a question dialog. The values
// mirror NVD_YES, NVD_YES_NO and NVD_YES_NO_CANCEL.
type Buttons int32

const (
	// ButtonsYes shows a lone confirmation button.
	ButtonsYes Buttons = 0x04 + iota
	// ButtonsYesNo shows yes and no.
	ButtonsYesNo
	// ButtonsYesNoCancel shows yes, no and cancel.
	ButtonsYesNoCancel
)

// Reply is the user's answer to a question dialog.
type Reply int32

const (
	// ReplyAccepted corresponds to NVD_REPLY_OK.
	ReplyAccepted Reply = 0x04 + iota
	// ReplyCancelled corresponds to NVD_REPLY_CANCEL.
	ReplyCancelled
	// ReplyRejected corresponds to NVD_REPLY_NO.
	ReplyRejected
)

func (r Reply) String() string {
	switch r {
	case ReplyAccepted:
		return "accepted"
	case ReplyCancelled:
		return "cancelled"
	case ReplyRejected:
		return "rejected"
	default:
		return "invalid"
	}
}

// replyFromNative maps a raw reply integer, defaulting anything out of
// range to ReplyCancelled so a misbehaving backend reads as a safe "no".
func replyFromNative(raw int32) Reply {
	switch r := Reply(raw); r {
	case ReplyAccepted, ReplyCancelled, ReplyRejected:
		return r
	default:
		return ReplyCancelled
	}
}

// QuestionDialog is a modal yes/no(/cancel) dialog. It owns one native
// handle; release it with Close.
type QuestionDialog struct {
	raw     uintptr
	title   string
	message string
	buttons Buttons
}

// NewQuestionDialog creates a question dialog with the given button
// combination.
func NewQuestionDialog(title, message string, buttons Buttons) (*QuestionDialog, error) {
	const op = "nvdialog.NewQuestionDialog"
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

	raw := ffi.Funcs().DialogQuestionNew(ctitle, cmessage, int32(buttons))
	if raw == 0 {
		return nil, newHandleError(op)
	}
	return &QuestionDialog{raw: raw, title: title, message: message, buttons: buttons}, nil
}

// Buttons returns the button combination the dialog was created with.
func (d *QuestionDialog) Buttons() Buttons { return d.buttons }

// Reply shows the dialog, blocks until the user answers and returns the
// reply.
func (d *QuestionDialog) Reply() (Reply, error) {
	if d == nil || d.raw == 0 {
		return ReplyCancelled, ErrClosed
	}
	return replyFromNative(ffi.Funcs().GetReply(d.raw)), nil
}

// Close releases the native handle. Safe to call repeatedly.
func (d *QuestionDialog) Close() {
	if d == nil || d.raw == 0 {
		return
	}
	ffi.Funcs().FreeObject(d.raw)
	d.raw = 0
}
