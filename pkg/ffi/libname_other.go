//go:build linux || freebsd

package ffi

// libraryName is the soname the system loader resolves when no explicit
// path is configured.
const libraryName = "libnvdialog.so"
