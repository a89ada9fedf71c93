// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"encoding/json"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// WordType classifies a user dictionary word.
type WordType int32

const (
	WordTypeProperNoun WordType = 0
	WordTypeCommonNoun WordType = 1
	WordTypeVerb       WordType = 2
	WordTypeAdjective  WordType = 3
	WordTypeSuffix     WordType = 4
)

// UserDictWord is one pronunciation entry. Build it with NewUserDictWord
// so WordType and Priority start from the core's defaults.
type UserDictWord struct {
	// Surface is the written form.
	Surface string
	// Pronunciation is the katakana reading.
	Pronunciation string
	// AccentType is the index of the mora carrying the accent.
	AccentType uint
	WordType   WordType
	// Priority ranks the word against dictionary entries, 0 to 10.
	Priority uint32
}

// WordOption overrides one field of the native word defaults.
type WordOption func(*UserDictWord)

// WithWordType overrides the word classification.
func WithWordType(t WordType) WordOption {
	return func(w *UserDictWord) { w.WordType = t }
}

// WithPriority overrides the word priority.
func WithPriority(p uint32) WordOption {
	return func(w *UserDictWord) { w.Priority = p }
}

// NewUserDictWord builds a word from the core's defaults, merged field by
// field with the given overrides.
func (l *Lib) NewUserDictWord(surface, pronunciation string, accentType uint, opts ...WordOption) UserDictWord {
	cs := ffi.CString(surface)
	cp := ffi.CString(pronunciation)
	abi := l.t.UserDictWordMake(cs, cp, uintptr(accentType))
	runtime.KeepAlive(cs)
	runtime.KeepAlive(cp)
	w := UserDictWord{
		Surface:       surface,
		Pronunciation: pronunciation,
		AccentType:    accentType,
		WordType:      WordType(abi.WordType),
		Priority:      abi.Priority,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// UserDict is a user pronunciation dictionary handle.
type UserDict struct {
	lib       *Lib
	ptr       uintptr
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewUserDict creates an empty user dictionary.
func (l *Lib) NewUserDict() (*UserDict, error) {
	ptr := l.t.UserDictNew()
	if ptr == 0 {
		return nil, &InternalError{Op: ffi.SymUserDictNew, Detail: "null dictionary handle"}
	}
	return &UserDict{lib: l, ptr: ptr}, nil
}

func (d *UserDict) guard() error {
	if d.closed.Load() {
		return &DisposedError{Resource: "UserDict"}
	}
	return nil
}

// wordABI marshals a managed word for one native call. The returned
// strings must be kept alive until the call has returned.
func wordABI(w UserDictWord) (ffi.UserDictWord, *byte, *byte) {
	cs := ffi.CString(w.Surface)
	cp := ffi.CString(w.Pronunciation)
	return ffi.UserDictWord{
		Surface:       cs,
		Pronunciation: cp,
		AccentType:    uintptr(w.AccentType),
		WordType:      int32(w.WordType),
		Priority:      w.Priority,
	}, cs, cp
}

// Load reads a dictionary file and merges it into this dictionary. File
// I/O blocks, so the call runs on the worker pool.
func (d *UserDict) Load(ctx context.Context, path string) error {
	if err := d.guard(); err != nil {
		return err
	}
	return d.lib.exec.do(ctx, ffi.SymUserDictLoad, func() error {
		return d.lib.resultErr(d.lib.t.UserDictLoad(d.ptr, path))
	})
}

// Save writes the dictionary to a file. File I/O blocks, so the call runs
// on the worker pool.
func (d *UserDict) Save(ctx context.Context, path string) error {
	if err := d.guard(); err != nil {
		return err
	}
	return d.lib.exec.do(ctx, ffi.SymUserDictSave, func() error {
		return d.lib.resultErr(d.lib.t.UserDictSave(d.ptr, path))
	})
}

// AddWord adds a word and returns its identifier. The 16-byte id is a
// fixed-size output written into caller storage; no native allocation is
// involved.
func (d *UserDict) AddWord(word UserDictWord) (uuid.UUID, error) {
	if err := d.guard(); err != nil {
		return uuid.UUID{}, err
	}
	abi, cs, cp := wordABI(word)
	var out [16]byte
	code := d.lib.t.UserDictAddWord(d.ptr, &abi, &out[0])
	runtime.KeepAlive(cs)
	runtime.KeepAlive(cp)
	if err := d.lib.resultErr(code); err != nil {
		return uuid.UUID{}, err
	}
	return uuid.UUID(out), nil
}

// UpdateWord replaces the word with the given identifier.
func (d *UserDict) UpdateWord(id uuid.UUID, word UserDictWord) error {
	if err := d.guard(); err != nil {
		return err
	}
	abi, cs, cp := wordABI(word)
	raw := [16]byte(id)
	code := d.lib.t.UserDictUpdateWord(d.ptr, &raw[0], &abi)
	runtime.KeepAlive(cs)
	runtime.KeepAlive(cp)
	return d.lib.resultErr(code)
}

// RemoveWord deletes the word with the given identifier.
func (d *UserDict) RemoveWord(id uuid.UUID) error {
	if err := d.guard(); err != nil {
		return err
	}
	raw := [16]byte(id)
	return d.lib.resultErr(d.lib.t.UserDictRemoveWord(d.ptr, &raw[0]))
}

// ImportDict merges another dictionary into this one.
func (d *UserDict) ImportDict(other *UserDict) error {
	if err := d.guard(); err != nil {
		return err
	}
	if err := other.guard(); err != nil {
		return err
	}
	return d.lib.resultErr(d.lib.t.UserDictImport(d.ptr, other.ptr))
}

// ToJSON returns the dictionary contents as raw JSON.
func (d *UserDict) ToJSON() (json.RawMessage, error) {
	if err := d.guard(); err != nil {
		return nil, err
	}
	var out uintptr
	if err := d.lib.resultErr(d.lib.t.UserDictToJSON(d.ptr, &out)); err != nil {
		return nil, err
	}
	return d.lib.takeJSON(ffi.SymUserDictToJSON, out)
}

// Close destroys the dictionary. It is idempotent: the second and later
// calls are no-ops, and every operation after the first Close fails with a
// DisposedError before reaching the native layer.
func (d *UserDict) Close() error {
	d.closeOnce.Do(func() {
		d.closed.Store(true)
		d.lib.t.UserDictDelete(d.ptr)
		d.ptr = 0
	})
	return nil
}
