package ffi

import "golang.org/x/sys/windows"

const libraryName = "nvdialog.dll"

// dlopen loads the DLL through the default Windows search order. A bare
// name resolves from the usual DLL directories; an explicit path loads that
// file directly.
func dlopen(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}
