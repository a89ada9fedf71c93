// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// OpenJtalk is the text analyzer handle, wrapping one loaded Open JTalk
// dictionary. The handle is exclusively owned by its creator until Close.
type OpenJtalk struct {
	lib       *Lib
	ptr       uintptr
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewOpenJtalk loads the system dictionary under dictDir and returns the
// analyzer handle. Dictionary loading reads from disk and blocks, so the
// call runs on the worker pool.
func (l *Lib) NewOpenJtalk(ctx context.Context, dictDir string) (*OpenJtalk, error) {
	var out uintptr
	err := l.exec.do(ctx, ffi.SymOpenJtalkRcNew, func() error {
		return l.resultErr(l.t.OpenJtalkRcNew(dictDir, &out))
	})
	if err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, &InternalError{Op: ffi.SymOpenJtalkRcNew, Detail: "success code but null analyzer handle"}
	}
	return &OpenJtalk{lib: l, ptr: out}, nil
}

func (o *OpenJtalk) guard() error {
	if o.closed.Load() {
		return &DisposedError{Resource: "OpenJtalk"}
	}
	return nil
}

// UseUserDict applies a user dictionary to the analyzer. Rebuilding the
// analyzer state blocks, so the call runs on the worker pool. The
// dictionary handle stays owned by the caller and may be closed afterward.
func (o *OpenJtalk) UseUserDict(ctx context.Context, dict *UserDict) error {
	if err := o.guard(); err != nil {
		return err
	}
	if err := dict.guard(); err != nil {
		return err
	}
	return o.lib.exec.do(ctx, ffi.SymOpenJtalkRcUseUserDict, func() error {
		return o.lib.resultErr(o.lib.t.OpenJtalkRcUseUserDict(o.ptr, dict.ptr))
	})
}

// Close destroys the analyzer. It is idempotent: the second and later
// calls are no-ops, and every operation after the first Close fails with a
// DisposedError before reaching the native layer.
func (o *OpenJtalk) Close() error {
	o.closeOnce.Do(func() {
		o.closed.Store(true)
		o.lib.t.OpenJtalkRcDelete(o.ptr)
		o.ptr = 0
	})
	return nil
}
