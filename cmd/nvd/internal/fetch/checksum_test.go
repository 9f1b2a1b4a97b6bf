package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestVerifyChecksum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.tar.gz")
	data := []byte("not a real tarball, but stable bytes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	sum := sha256.Sum256(data)
	good := hex.EncodeToString(sum[:])

	if err := VerifyChecksum(path, good); err != nil {
		t.Errorf("VerifyChecksum with matching digest: %v", err)
	}

	err := VerifyChecksum(path, "deadbeef")
	if err == nil {
		t.Fatal("VerifyChecksum accepted a wrong digest")
	}
	var cerr *ChecksumError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ChecksumError, got %T", err)
	}
	if cerr.Actual != good {
		t.Errorf("ChecksumError.Actual = %q, want %q", cerr.Actual, good)
	}
}

func TestVerifyChecksumMissingFile(t *testing.T) {
	if err := VerifyChecksum(filepath.Join(t.TempDir(), "absent"), "00"); err == nil {
		t.Error("expected error for missing file")
	}
}
