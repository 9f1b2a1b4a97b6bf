package ffi

const libraryName = "libnvdialog.dylib"
