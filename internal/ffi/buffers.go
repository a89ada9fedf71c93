// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package ffi

import "unsafe"

// CString allocates a NUL-terminated copy of s on the Go heap. The result
// can be passed to native code for the duration of one call; use
// runtime.KeepAlive on it after the call to keep the GC away.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// GoString copies a NUL-terminated native buffer into a Go string. It does
// not free the native buffer.
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var n uintptr
	for *(*byte)(unsafe.Pointer(p + n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// CopyBytes copies n bytes out of a native buffer into a fresh Go slice.
// It does not free the native buffer.
func CopyBytes(p, n uintptr) []byte {
	if p == 0 || n == 0 {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}
