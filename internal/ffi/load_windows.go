// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build windows

package ffi

import (
	"golang.org/x/sys/windows"
)

// library holds one loaded DLL. It is never freed while a Table built from
// it is reachable; the process-wide runtime instance inside the core has
// no supported teardown anyway.
type library struct {
	handle uintptr
	dll    windows.Handle
}

func openLibrary(path string) (*library, error) {
	dll, err := windows.LoadLibraryEx(path, 0, windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS|windows.LOAD_LIBRARY_SEARCH_DLL_LOAD_DIR)
	if err != nil {
		return nil, err
	}
	return &library{handle: uintptr(dll), dll: dll}, nil
}

func (l *library) hasSymbol(name string) bool {
	addr, err := windows.GetProcAddress(l.dll, name)
	return err == nil && addr != 0
}

func (l *library) close() {
	if l.dll != 0 {
		_ = windows.FreeLibrary(l.dll)
		l.dll = 0
		l.handle = 0
	}
}
