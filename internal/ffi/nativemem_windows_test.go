// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package ffi

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// allocNative returns a zeroed buffer of at least one byte carved from
// memory the Go runtime does not manage, so buffers standing in for
// native allocations behave like real ones under the runtime's pointer
// checks.
func allocNative(n int) []byte {
	if n < 1 {
		n = 1
	}
	addr, err := windows.VirtualAlloc(0, uintptr(n),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		panic(err)
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}
