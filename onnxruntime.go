// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// Onnxruntime is the process-wide inference runtime instance. The native
// entry point behind LoadOnnxruntime is an idempotent load-or-get, so
// there is at most one instance per process; it has no Close because the
// native side exposes no teardown. Concurrent reads are safe since the
// instance is never mutated after creation.
type Onnxruntime struct {
	lib *Lib
	ptr uintptr
}

// LoadOnnxruntime loads the ONNX Runtime, or returns the instance already
// loaded by an earlier call. Concurrent callers are coalesced into a
// single native load.
func (l *Lib) LoadOnnxruntime(ctx context.Context, opts ...OnnxruntimeOption) (*Onnxruntime, error) {
	v, err, _ := l.ortGroup.Do("onnxruntime", func() (any, error) {
		if l.ort != nil {
			return l.ort, nil
		}
		resolved := onnxruntimeOptions(opts)
		filename := ffi.CString(resolved.Filename)
		var out uintptr
		err := l.exec.do(ctx, ffi.SymOnnxruntimeLoadOnce, func() error {
			code := l.t.OnnxruntimeLoadOnce(ffi.LoadOnnxruntimeOptions{Filename: filename}, &out)
			runtime.KeepAlive(filename)
			return l.resultErr(code)
		})
		if err != nil {
			return nil, err
		}
		if out == 0 {
			return nil, &InternalError{Op: ffi.SymOnnxruntimeLoadOnce, Detail: "success code but null runtime handle"}
		}
		l.ort = &Onnxruntime{lib: l, ptr: out}
		l.log.Debug("onnxruntime loaded", slog.String("filename", resolved.Filename))
		return l.ort, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Onnxruntime), nil
}

// SupportedDevices reports which inference devices the runtime supports,
// as a JSON object. The backing entry point is only exported by native
// 0.16.0 and newer; against an older library this fails with an
// UnsupportedError without touching the native layer.
func (o *Onnxruntime) SupportedDevices() (json.RawMessage, error) {
	t := o.lib.t
	if t.OnnxruntimeCreateSupportedDevicesJSON == nil {
		return nil, &UnsupportedError{Symbol: ffi.SymOnnxruntimeCreateSupportedDevicesJSON, MinVersion: "0.16.0"}
	}
	var out uintptr
	if err := o.lib.resultErr(t.OnnxruntimeCreateSupportedDevicesJSON(o.ptr, &out)); err != nil {
		return nil, err
	}
	return o.lib.takeJSON(ffi.SymOnnxruntimeCreateSupportedDevicesJSON, out)
}
