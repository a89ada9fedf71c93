// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// fakeNative is an in-process double of the core library. Tests populate
// the call table with Go closures and use the recorded calls and free
// counters to check marshaling and lifecycle behavior without loading a
// real shared library.
type fakeNative struct {
	t *ffi.Table

	mu        sync.Mutex
	calls     map[string]int
	jsonFrees []uintptr
	wavFrees  []uintptr
}

func newFakeNative() *fakeNative {
	f := &fakeNative{calls: map[string]int{}}
	f.t = &ffi.Table{
		GetVersion:           func() string { return "0.16.0" },
		ErrorResultToMessage: func(code int32) string { return ResultCode(code).String() },
		MakeDefaultInitializeOptions: func() ffi.InitializeOptions {
			return ffi.InitializeOptions{AccelerationMode: 0, CPUNumThreads: 0}
		},
		MakeDefaultSynthesisOptions: func() ffi.SynthesisOptions {
			return ffi.SynthesisOptions{EnableInterrogativeUpspeak: true}
		},
		MakeDefaultTTSOptions: func() ffi.TTSOptions {
			return ffi.TTSOptions{EnableInterrogativeUpspeak: true}
		},
		JSONFree: func(p uintptr) {
			f.mu.Lock()
			f.jsonFrees = append(f.jsonFrees, p)
			f.mu.Unlock()
		},
		WavFree: func(p uintptr) {
			f.mu.Lock()
			f.wavFrees = append(f.wavFrees, p)
			f.mu.Unlock()
		},
	}
	return f
}

// record counts one invocation of a fake entry point.
func (f *fakeNative) record(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeNative) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeNative) jsonFreeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jsonFrees)
}

func (f *fakeNative) wavFreeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.wavFrees)
}

// cstr hands out a NUL-terminated "native-owned" buffer. The memory
// comes from outside the Go heap, like a real native allocation, so
// converting the address back from uintptr is sound under the runtime's
// pointer checks. The fake never reclaims it.
func (f *fakeNative) cstr(s string) uintptr {
	b := allocNative(len(s) + 1)
	copy(b, s)
	b[len(s)] = 0
	return uintptr(unsafe.Pointer(&b[0]))
}

// bytes hands out a length-delimited "native-owned" buffer backed by the
// same off-heap memory as cstr.
func (f *fakeNative) bytes(src []byte) uintptr {
	b := allocNative(len(src))
	copy(b, src)
	return uintptr(unsafe.Pointer(&b[0]))
}

func newTestLib(t *testing.T, f *fakeNative) *Lib {
	t.Helper()
	exec, err := newExecutor(2)
	require.NoError(t, err)
	t.Cleanup(exec.close)
	return newLib(f.t, exec, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
