package nvdialog

import "github.com/go-nvdialog/nvdialog/pkg/ffi"

// NotificationKind selects the urgency styling of a notification. The
// values mirror the NVD_NOTIFICATION_* constants.
type NotificationKind int32

const (
	// NotificationSimple is a plain informational notification.
	NotificationSimple NotificationKind = iota
	// NotificationWarning marks the notification as a warning.
	NotificationWarning
	// NotificationError marks the notification as an error report.
	NotificationError
)

// Notification is a desktop notification. Unlike dialogs it does not block:
// Send hands it to the desktop notification service and returns. It owns
// one native handle; release it with Close.
type Notification struct {
	raw   uintptr
	title string
	// slots pins the caller-owned action targets for the lifetime of the
	// handle; the native side writes through these pointers when an action
	// fires.
	slots []*int32
}

// NewNotification creates a notification with the given summary and body.
// A NULL native handle here means the allocation failed, which the library
// reports as out of memory.
func NewNotification(title, message string, kind NotificationKind) (*Notification, error) {
	const op = "nvdialog.NewNotification"
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

	raw := ffi.Funcs().NotificationNew(ctitle, cmessage, int32(kind))
	if raw == 0 {
		return nil, &Error{Op: op, Code: CodeOutOfMemory}
	}
	return &Notification{raw: raw, title: title}, nil
}

// AddAction attaches a named action button to the notification. When the
// user activates it, the native layer writes value into the caller-owned
// slot. The slot must stay valid until the notification is closed; the
// wrapper keeps a reference so the memory is not collected underneath the
// native side.
func (n *Notification) AddAction(name string, value int32, slot *int32) error {
	const op = "nvdialog.Notification.AddAction"
	if n == nil || n.raw == 0 {
		return ErrClosed
	}
	if slot == nil {
		return &Error{Op: op, Code: CodeInvalidParam}
	}
	cname, err := cstr(op, "name", name)
	if err != nil {
		return err
	}
	n.slots = append(n.slots, slot)
	ffi.Funcs().AddNotificationAction(n.raw, cname, value, slot)
	return nil
}

// Send delivers the notification to the desktop notification system.
// Sending the same notification again shows it again.
func (n *Notification) Send() error {
	if n == nil || n.raw == 0 {
		return ErrClosed
	}
	ffi.Funcs().SendNotification(n.raw)
	return nil
}

// Close releases the native handle. Safe to call repeatedly.
func (n *Notification) Close() {
	if n == nil || n.raw == 0 {
		return
	}
	ffi.Funcs().DeleteNotification(n.raw)
	n.raw = 0
	n.slots = nil
}
