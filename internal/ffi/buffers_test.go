// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package ffi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// nativeCString copies s into off-heap memory, NUL-terminated, the way a
// native callee hands back an owned string buffer.
func nativeCString(s string) uintptr {
	m := allocNative(len(s) + 1)
	copy(m, s)
	m[len(s)] = 0
	return uintptr(unsafe.Pointer(&m[0]))
}

// nativeBytes copies b into off-heap memory.
func nativeBytes(b []byte) uintptr {
	m := allocNative(len(b))
	copy(m, b)
	return uintptr(unsafe.Pointer(&m[0]))
}

func TestCStringLayout(t *testing.T) {
	for _, s := range []string{"", "a", "こんにちは", "with spaces and 記号!"} {
		p := CString(s)
		b := unsafe.Slice(p, len(s)+1)
		assert.Equal(t, s, string(b[:len(s)]))
		assert.Equal(t, byte(0), b[len(s)])
	}
}

func TestGoStringReadsNativeBuffer(t *testing.T) {
	for _, s := range []string{"", "a", "こんにちは", `{"accent_phrases":[]}`} {
		assert.Equal(t, s, GoString(nativeCString(s)))
	}
}

func TestGoStringNull(t *testing.T) {
	assert.Equal(t, "", GoString(0))
}

func TestCopyBytes(t *testing.T) {
	src := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0xff}
	p := nativeBytes(src)
	got := CopyBytes(p, uintptr(len(src)))
	assert.Equal(t, src, got)

	// The copy is detached from the native buffer.
	*(*byte)(unsafe.Pointer(p)) = 0
	assert.Equal(t, byte(0x52), got[0])

	assert.Empty(t, CopyBytes(0, 4))
	assert.Empty(t, CopyBytes(p, 0))
}
