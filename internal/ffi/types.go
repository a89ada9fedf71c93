// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package ffi

// The structs in this file cross the C ABI boundary by value or by pointer.
// Field order and integer widths must match the native headers exactly; do
// not reorder fields or change types without updating the native side.

// InitializeOptions mirrors struct VoicevoxInitializeOptions.
type InitializeOptions struct {
	// AccelerationMode is a 4-byte enum: 0 auto, 1 CPU, 2 GPU.
	AccelerationMode int32
	// CPUNumThreads is the inference thread count. 0 lets the native
	// side pick.
	CPUNumThreads uint16
}

// SynthesisOptions mirrors struct VoicevoxSynthesisOptions.
type SynthesisOptions struct {
	EnableInterrogativeUpspeak bool
}

// TTSOptions mirrors struct VoicevoxTtsOptions.
type TTSOptions struct {
	EnableInterrogativeUpspeak bool
}

// LoadOnnxruntimeOptions mirrors struct VoicevoxLoadOnnxruntimeOptions.
// Filename points at a NUL-terminated string owned by the Go side; the
// caller must keep it alive across the native call.
type LoadOnnxruntimeOptions struct {
	Filename *byte
}

// UserDictWord mirrors struct VoicevoxUserDictWord. Surface and
// Pronunciation point at NUL-terminated strings owned by the Go side.
type UserDictWord struct {
	Surface       *byte
	Pronunciation *byte
	AccentType    uintptr
	WordType      int32
	Priority      uint32
}
