package nvdialog

import (
	"errors"
	"testing"

	"github.com/go-nvdialog/nvdialog/pkg/ffi"
)

func TestNotificationSend(t *testing.T) {
	stub := initStub(t)

	n, err := NewNotification("Backup finished", "128 files copied.", NotificationSimple)
	if err != nil {
		t.Fatalf("NewNotification failed: %v", err)
	}
	defer n.Close()

	if err := n.Send(); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	// Sending again is allowed and shows the notification again.
	if err := n.Send(); err != nil {
		t.Fatalf("second Send failed: %v", err)
	}
	if stub.SendCalls != 2 {
		t.Errorf("send reached native %d times, want 2", stub.SendCalls)
	}
}

func TestNotificationKinds(t *testing.T) {
	tests := []struct {
		kind NotificationKind
		want int32
	}{
		{NotificationSimple, 0},
		{NotificationWarning, 1},
		{NotificationError, 2},
	}
	for _, tt := range tests {
		stub := initStub(t)
		n, err := NewNotification("t", "m", tt.kind)
		if err != nil {
			t.Fatalf("NewNotification(%v) failed: %v", tt.kind, err)
		}
		_, _, _, variant, _ := stub.Object(n.raw)
		if variant != tt.want {
			t.Errorf("kind %v reached native as %d, want %d", tt.kind, variant, tt.want)
		}
		n.Close()
	}
}

func TestNotificationAction(t *testing.T) {
	stub := initStub(t)

	n, err := NewNotification("Download complete", "archive.tar.gz", NotificationSimple)
	if err != nil {
		t.Fatalf("NewNotification failed: %v", err)
	}
	defer n.Close()

	var choice int32
	if err := n.AddAction("Open folder", 7, &choice); err != nil {
		t.Fatalf("AddAction failed: %v", err)
	}
	if err := n.Send(); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if !stub.FireAction("Open folder") {
		t.Fatal("action never reached the native layer")
	}
	if choice != 7 {
		t.Errorf("fired action wrote %d into the slot, want 7", choice)
	}
}

func TestNotificationAddActionValidation(t *testing.T) {
	initStub(t)

	n, err := NewNotification("t", "m", NotificationSimple)
	if err != nil {
		t.Fatalf("NewNotification failed: %v", err)
	}
	defer n.Close()

	if err := n.AddAction("x", 1, nil); CodeOf(err) != CodeInvalidParam {
		t.Errorf("AddAction(nil slot) = %v, want CodeInvalidParam", err)
	}
	var slot int32
	if err := n.AddAction("bad\x00name", 1, &slot); !errors.Is(err, ffi.ErrEmbeddedNul) {
		t.Errorf("AddAction with NUL = %v, want ErrEmbeddedNul", err)
	}
}

// A NULL handle from the native constructor reads as allocation failure.
func TestNotificationCreateFailure(t *testing.T) {
	stub := initStub(t)
	stub.CreateError = int32(CodeBackendFailure)

	_, err := NewNotification("t", "m", NotificationSimple)
	if CodeOf(err) != CodeOutOfMemory {
		t.Fatalf("NewNotification = %v, want CodeOutOfMemory", err)
	}
}

func TestNotificationCloseExactlyOnce(t *testing.T) {
	stub := initStub(t)

	n, err := NewNotification("t", "m", NotificationError)
	if err != nil {
		t.Fatalf("NewNotification failed: %v", err)
	}
	_ = n.Send()
	n.Close()
	n.Close()

	if stub.Freed() != 1 || stub.BadFrees() != 0 {
		t.Errorf("freed=%d badFrees=%d, want exactly one free", stub.Freed(), stub.BadFrees())
	}
	if err := n.Send(); !errors.Is(err, ErrClosed) {
		t.Errorf("Send after Close = %v, want ErrClosed", err)
	}
}
