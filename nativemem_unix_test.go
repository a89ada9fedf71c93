// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package voicevoxcore

import "syscall"

// allocNative returns a zeroed buffer of at least one byte carved from
// memory the Go runtime does not manage. Fake native buffers must live
// outside the Go heap: real native pointers have no Go allocation behind
// them, and the runtime's pointer checks reject uintptr round-trips into
// the heap.
func allocNative(n int) []byte {
	if n < 1 {
		n = 1
	}
	b, err := syscall.Mmap(-1, 0, n,
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_ANON|syscall.MAP_PRIVATE)
	if err != nil {
		panic(err)
	}
	return b
}
