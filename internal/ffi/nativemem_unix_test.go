// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package ffi

import "syscall"

// allocNative returns a zeroed buffer of at least one byte carved from
// memory the Go runtime does not manage. Buffers standing in for native
// allocations must live outside the Go heap, or the runtime's pointer
// checks reject the uintptr round-trip.
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
