// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultLibraryName returns the platform filename of the core shared
// library.
func DefaultLibraryName() string {
	switch runtime.GOOS {
	case "windows":
		return "voicevox_core.dll"
	case "darwin":
		return "libvoicevox_core.dylib"
	default:
		return "libvoicevox_core.so"
	}
}

// DefaultOnnxruntimeName returns the platform filename of the bundled ONNX
// Runtime the core links against.
func DefaultOnnxruntimeName() string {
	switch runtime.GOOS {
	case "windows":
		return "voicevox_onnxruntime.dll"
	case "darwin":
		return "libvoicevox_onnxruntime.dylib"
	default:
		return "libvoicevox_onnxruntime.so"
	}
}

// resolveLibraryPath turns a Config into a concrete library path. An
// explicit Path wins; otherwise the platform default filename is looked up
// under Dir and must exist.
func resolveLibraryPath(cfg Config) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, DefaultLibraryName())
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("voicevoxcore: core library not found at %s: %w", path, err)
	}
	return path, nil
}
