// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// Config controls how the core library is opened.
type Config struct {
	// Path is the explicit path to the core shared library. When empty,
	// the platform default filename is looked up under Dir.
	Path string
	// Dir is the directory searched for the platform default filename.
	// Defaults to the current directory.
	Dir string
	// Workers sizes the pool that runs blocking native calls. Zero means
	// one worker per CPU.
	Workers int
	// Logger receives debug breadcrumbs. Nil means slog.Default().
	Logger *slog.Logger
}

// Lib is one loaded core library: its call table plus the worker pool that
// keeps blocking native calls off the caller's goroutine. All handles are
// created through methods on Lib and stay bound to it.
type Lib struct {
	t    *ffi.Table
	exec *executor
	log  *slog.Logger

	ortGroup singleflight.Group
	ort      *Onnxruntime
}

// Open resolves the library path, loads the library and binds its call
// table. Path resolution failures and missing required symbols are
// returned unchanged from the loader.
func Open(cfg Config) (*Lib, error) {
	path, err := resolveLibraryPath(cfg)
	if err != nil {
		return nil, err
	}
	t, err := ffi.Load(path)
	if err != nil {
		return nil, err
	}
	exec, err := newExecutor(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("voicevoxcore: worker pool: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Debug("voicevox core loaded",
		slog.String("path", path),
		slog.String("version", t.GetVersion()),
		slog.Any("missing_optional_symbols", t.MissingOptional()))
	log.Debug("worker pool sized", slog.Int("workers", exec.pool.Cap()))
	return newLib(t, exec, log), nil
}

// newLib wires a Lib from its parts. Tests use it to substitute a fake
// call table for the native library.
func newLib(t *ffi.Table, exec *executor, log *slog.Logger) *Lib {
	return &Lib{t: t, exec: exec, log: log}
}

// Version reports the version string of the loaded core library.
func (l *Lib) Version() string {
	return l.t.GetVersion()
}

// Close releases the worker pool. The native library itself stays mapped:
// the process-wide runtime instance inside it has no supported teardown,
// so unloading the library under it would be unsound. Operations submitted
// after Close fail with a SubmitError.
func (l *Lib) Close() error {
	l.exec.close()
	return nil
}

// resultErr maps a native result code to nil or a ResultError, fetching
// the diagnostic message from the native side on failure.
func (l *Lib) resultErr(code int32) error {
	if code == int32(ResultOk) {
		return nil
	}
	return newResultError(l.t, ResultCode(code))
}

// takeJSON decodes a native-owned, NUL-terminated JSON buffer and frees it
// via voicevox_json_free. The free runs on every exit path; a null pointer
// under a success code is an internal invariant violation, not a domain
// error.
func (l *Lib) takeJSON(op string, p uintptr) ([]byte, error) {
	if p == 0 {
		return nil, &InternalError{Op: op, Detail: "success code but null JSON buffer"}
	}
	defer l.t.JSONFree(p)
	return []byte(ffi.GoString(p)), nil
}

// takeWav copies a native-owned, length-delimited WAV buffer and frees it
// via voicevox_wav_free. The length out-parameter must be read before the
// pointer is freed, which the copy-then-free ordering here guarantees.
func (l *Lib) takeWav(op string, p, n uintptr) ([]byte, error) {
	if p == 0 {
		return nil, &InternalError{Op: op, Detail: "success code but null WAV buffer"}
	}
	defer l.t.WavFree(p)
	return ffi.CopyBytes(p, n), nil
}
