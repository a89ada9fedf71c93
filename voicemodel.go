// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// VoiceModelFile is an opened VVM voice model file. Loading it into a
// Synthesizer copies the model internally, so the file handle may be
// closed as soon as the load returns; the two lifetimes are independent.
type VoiceModelFile struct {
	lib       *Lib
	ptr       uintptr
	id        uuid.UUID
	closed    atomic.Bool
	closeOnce sync.Once
}

// OpenVoiceModelFile opens the VVM file at path. Opening reads from disk
// and blocks, so the call runs on the worker pool.
func (l *Lib) OpenVoiceModelFile(ctx context.Context, path string) (*VoiceModelFile, error) {
	var out uintptr
	err := l.exec.do(ctx, ffi.SymVoiceModelFileOpen, func() error {
		return l.resultErr(l.t.VoiceModelFileOpen(path, &out))
	})
	if err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, &InternalError{Op: ffi.SymVoiceModelFileOpen, Detail: "success code but null model handle"}
	}
	// The id is a fixed 16-byte output written into caller storage; no
	// native allocation, nothing to free.
	var raw [16]byte
	l.t.VoiceModelFileID(out, &raw[0])
	return &VoiceModelFile{lib: l, ptr: out, id: uuid.UUID(raw)}, nil
}

func (m *VoiceModelFile) guard() error {
	if m.closed.Load() {
		return &DisposedError{Resource: "VoiceModelFile"}
	}
	return nil
}

// ID returns the model identifier. It stays valid after Close.
func (m *VoiceModelFile) ID() uuid.UUID {
	return m.id
}

// Metas returns the speaker metadata of the model as raw JSON. Use
// ParseMetas for a typed view.
func (m *VoiceModelFile) Metas() (json.RawMessage, error) {
	if err := m.guard(); err != nil {
		return nil, err
	}
	p := m.lib.t.VoiceModelFileCreateMetasJSON(m.ptr)
	return m.lib.takeJSON(ffi.SymVoiceModelFileCreateMetasJSON, p)
}

// Close closes the model file. It is idempotent: the second and later
// calls are no-ops, and every operation after the first Close fails with a
// DisposedError before reaching the native layer.
func (m *VoiceModelFile) Close() error {
	m.closeOnce.Do(func() {
		m.closed.Store(true)
		m.lib.t.VoiceModelFileClose(m.ptr)
		m.ptr = 0
	})
	return nil
}
