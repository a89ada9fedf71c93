// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build !windows

package ffi

import (
	"github.com/ebitengine/purego"
)

// library holds one dlopen'd shared object. It is never dlclose'd while a
// Table built from it is reachable; the process-wide runtime instance
// inside the core has no supported teardown anyway.
type library struct {
	handle uintptr
}

func openLibrary(path string) (*library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, err
	}
	return &library{handle: handle}, nil
}

func (l *library) hasSymbol(name string) bool {
	addr, err := purego.Dlsym(l.handle, name)
	return err == nil && addr != 0
}

func (l *library) close() {
	if l.handle != 0 {
		_ = purego.Dlclose(l.handle)
		l.handle = 0
	}
}
