package ffi

import (
	"errors"
	"unsafe"
)

// ErrEmbeddedNul is returned when a Go string destined for the native side
// contains a NUL byte. Truncating at the NUL would silently change the
// caller's text, so conversion refuses instead.
var ErrEmbeddedNul = errors.New("string contains an embedded NUL byte")

// chunkSize is the word width of the Strlen scan.
const chunkSize = 8

// CString copies s into a fresh NUL-terminated buffer and returns a pointer
// to its first byte. The allocation is padded to a multiple of chunkSize so
// the word reads in Strlen never run past it.
func CString(s string) (*byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, ErrEmbeddedNul
		}
	}
	buf := make([]byte, (len(s)+chunkSize)&^(chunkSize-1))
	copy(buf, s)
	return &buf[0], nil
}

// GoString copies the NUL-terminated string at p into a Go string. A nil
// pointer yields the empty string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	n := Strlen(p)
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice(p, n))
}

// Strlen returns the number of bytes before the NUL terminator at p.
//
// The scan advances byte-wise until the cursor is word aligned, then walks
// chunkSize bytes at a time. A word contains a zero byte exactly when
// (w - 0x01…01) &^ w & 0x80…80 is nonzero, so whole words without a
// terminator are skipped with a single comparison; the word that trips the
// test is finished byte-wise. Aligned word reads never cross an allocation
// boundary that the byte at p itself could not reach.
func Strlen(p *byte) int {
	const (
		lows  = 0x0101010101010101
		highs = 0x8080808080808080
	)
	base := unsafe.Pointer(p)
	n := 0
	for (uintptr(base)+uintptr(n))%chunkSize != 0 {
		if *(*byte)(unsafe.Add(base, n)) == 0 {
			return n
		}
		n++
	}
	for {
		w := *(*uint64)(unsafe.Add(base, n))
		if (w-lows)&^w&highs != 0 {
			break
		}
		n += chunkSize
	}
	for *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return n
}
