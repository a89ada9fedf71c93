// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"fmt"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// Error is implemented by every error produced by this package that
// carries a native result code.
type Error interface {
	// Error extends the builtin `error` interface.
	error
	// Code returns the native result code.
	Code() ResultCode
}

// ResultError is a native domain error: the core returned a nonzero result
// code. The message comes from the core's own result-code-to-message entry
// point. These are the recoverable errors (unknown style id, malformed
// audio query, ...).
type ResultError struct {
	code ResultCode
	msg  string
}

// Code implements the Error interface.
func (e *ResultError) Code() ResultCode {
	return e.code
}

// Error implements the error interface.
func (e *ResultError) Error() string {
	return fmt.Sprintf("voicevoxcore: %s (%s)", e.msg, e.code)
}

// newResultError builds a ResultError for a nonzero code, asking the
// native side for the diagnostic message. The message entry point itself
// never fails; an empty message falls back to the static code name.
func newResultError(t *ffi.Table, code ResultCode) *ResultError {
	msg := ""
	if t != nil && t.ErrorResultToMessage != nil {
		msg = t.ErrorResultToMessage(int32(code))
	}
	if msg == "" {
		msg = code.String()
	}
	return &ResultError{code: code, msg: msg}
}

// InternalError reports a marshaling invariant violation: the native call
// reported success but handed back a null handle or buffer. It indicates a
// bug in this binding or an ABI mismatch with the loaded library, never a
// recoverable domain failure.
type InternalError struct {
	// Op is the native entry point that misbehaved.
	Op string
	// Detail describes the violated invariant.
	Detail string
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	return fmt.Sprintf("voicevoxcore: internal: %s: %s", e.Op, e.Detail)
}

// DisposedError reports an operation attempted on a handle after its Close
// call. It is raised at the managed layer, before any native call, since
// the core does not protect itself against use-after-free.
type DisposedError struct {
	// Resource names the handle kind, e.g. "Synthesizer".
	Resource string
}

// Error implements the error interface.
func (e *DisposedError) Error() string {
	return fmt.Sprintf("voicevoxcore: use of closed %s handle", e.Resource)
}

// UnsupportedError reports an operation whose backing native entry point
// is absent from the loaded library. Newer operations are probed at load
// time rather than assumed; invoking one against an older core fails with
// this error and never reaches the native layer.
type UnsupportedError struct {
	// Symbol is the missing native entry point.
	Symbol string
	// MinVersion is the first native version that exports it.
	MinVersion string
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("voicevoxcore: %s is not exported by the loaded library (requires VOICEVOX Core >= %s)", e.Symbol, e.MinVersion)
}

// SubmitError reports that the blocking-call adapter could not submit work
// to its pool. This is distinct from a native failure: a nonzero result
// code resolves normally and surfaces as a ResultError instead.
type SubmitError struct {
	// Op is the native entry point that was being submitted.
	Op string
	// Err is the underlying pool error.
	Err error
}

// Error implements the error interface.
func (e *SubmitError) Error() string {
	return fmt.Sprintf("voicevoxcore: %s: submit to worker pool: %v", e.Op, e.Err)
}

// Unwrap exposes the pool error to errors.Is / errors.As.
func (e *SubmitError) Unwrap() error {
	return e.Err
}
