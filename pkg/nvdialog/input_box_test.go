package nvdialog

import (
	"errors"
	"testing"
)

func TestInputBoxCapturesText(t *testing.T) {
	stub := initStub(t)
	stub.HasInput = true
	stub.Input = "héllo"

	b, err := NewInputBox("Your name", "Please enter your name.")
	if err != nil {
		t.Fatalf("NewInputBox failed: %v", err)
	}
	defer b.Close()

	if _, ok := b.Input(); ok {
		t.Fatal("Input reported text before Show")
	}
	if err := b.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	got, ok := b.Input()
	if !ok {
		t.Fatal("Input reported nothing after Show")
	}
	if got != "héllo" {
		t.Errorf("Input = %q, want %q (UTF-8 must survive the round trip)", got, "héllo")
	}
}

func TestInputBoxNoInput(t *testing.T) {
	stub := initStub(t)
	stub.HasInput = false

	b, err := NewInputBox("t", "p")
	if err != nil {
		t.Fatalf("NewInputBox failed: %v", err)
	}
	defer b.Close()

	if err := b.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if got, ok := b.Input(); ok || got != "" {
		t.Errorf("Input = (%q, %v), want (\"\", false)", got, ok)
	}
}

func TestInputBoxCloseReleasesEverything(t *testing.T) {
	stub := initStub(t)
	stub.HasInput = true
	stub.Input = "text"

	b, err := NewInputBox("t", "p")
	if err != nil {
		t.Fatalf("NewInputBox failed: %v", err)
	}
	if err := b.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	b.Close()
	b.Close()
	if stub.Freed() != 1 || stub.BadFrees() != 0 {
		t.Errorf("freed=%d badFrees=%d", stub.Freed(), stub.BadFrees())
	}
	if stub.LiveStrings() != 0 {
		t.Errorf("%d captured strings leaked", stub.LiveStrings())
	}
	if err := b.Show(); !errors.Is(err, ErrClosed) {
		t.Errorf("Show after Close = %v, want ErrClosed", err)
	}
}

// Showing again replaces the captured string without leaking the previous
// one.
func TestInputBoxShowTwice(t *testing.T) {
	stub := initStub(t)
	stub.HasInput = true
	stub.Input = "first"

	b, err := NewInputBox("t", "p")
	if err != nil {
		t.Fatalf("NewInputBox failed: %v", err)
	}
	defer b.Close()

	if err := b.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	stub.Input = "second"
	if err := b.Show(); err != nil {
		t.Fatalf("second Show failed: %v", err)
	}

	got, _ := b.Input()
	if got != "second" {
		t.Errorf("Input = %q after second Show", got)
	}
	if stub.LiveStrings() != 1 {
		t.Errorf("%d native strings alive, want 1", stub.LiveStrings())
	}
}
