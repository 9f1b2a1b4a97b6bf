package nvdialog

import (
	"errors"
	"testing"
)

func TestQuestionDialogReply(t *testing.T) {
	tests := []struct {
		name string
		raw  int32
		want Reply
	}{
		{"accepted", 0x04, ReplyAccepted},
		{"cancelled", 0x05, ReplyCancelled},
		{"rejected", 0x06, ReplyRejected},
		// Anything out of range reads as a safe "no".
		{"zero", 0, ReplyCancelled},
		{"garbage", 0x7fff, ReplyCancelled},
		{"negative", -1, ReplyCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := initStub(t)
			stub.ReplyResult = tt.raw

			d, err := NewQuestionDialog("Delete?", "This cannot be undone.", ButtonsYesNoCancel)
			if err != nil {
				t.Fatalf("NewQuestionDialog failed: %v", err)
			}
			defer d.Close()

			got, err := d.Reply()
			if err != nil {
				t.Fatalf("Reply failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Reply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestQuestionDialogButtonsConstants(t *testing.T) {
	tests := []struct {
		buttons Buttons
		want    int32
	}{
		{ButtonsYes, 0x04},
		{ButtonsYesNo, 0x05},
		{ButtonsYesNoCancel, 0x06},
	}
	for _, tt := range tests {
		stub := initStub(t)
		d, err := NewQuestionDialog("t", "m", tt.buttons)
		if err != nil {
			t.Fatalf("NewQuestionDialog(%v) failed: %v", tt.buttons, err)
		}
		_, _, _, variant, _ := stub.Object(d.raw)
		if variant != tt.want {
			t.Errorf("Buttons %v reached native as %#x, want %#x", tt.buttons, variant, tt.want)
		}
		if d.Buttons() != tt.buttons {
			t.Errorf("Buttons() = %v", d.Buttons())
		}
		d.Close()
	}
}

func TestQuestionDialogClosed(t *testing.T) {
	stub := initStub(t)

	d, err := NewQuestionDialog("t", "m", ButtonsYesNo)
	if err != nil {
		t.Fatalf("NewQuestionDialog failed: %v", err)
	}
	d.Close()
	d.Close()

	if _, err := d.Reply(); !errors.Is(err, ErrClosed) {
		t.Errorf("Reply after Close = %v, want ErrClosed", err)
	}
	if stub.Freed() != 1 || stub.BadFrees() != 0 {
		t.Errorf("freed=%d badFrees=%d", stub.Freed(), stub.BadFrees())
	}
}
