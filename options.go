// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

// AccelerationMode selects the inference device.
type AccelerationMode int32

const (
	// AccelerationModeAuto lets the core pick GPU when usable, CPU otherwise.
	AccelerationModeAuto AccelerationMode = 0
	// AccelerationModeCPU forces CPU inference.
	AccelerationModeCPU AccelerationMode = 1
	// AccelerationModeGPU forces GPU inference.
	AccelerationModeGPU AccelerationMode = 2
)

// InitializeOptions configures synthesizer construction. Defaults come
// from the core's make-default entry point and caller overrides are merged
// field by field, never wholesale.
type InitializeOptions struct {
	AccelerationMode AccelerationMode
	CPUNumThreads    uint16
}

// InitializeOption overrides one field of the native defaults.
type InitializeOption func(*InitializeOptions)

// WithAccelerationMode overrides the inference device selection.
func WithAccelerationMode(mode AccelerationMode) InitializeOption {
	return func(o *InitializeOptions) { o.AccelerationMode = mode }
}

// WithCPUNumThreads overrides the inference thread count.
func WithCPUNumThreads(n uint16) InitializeOption {
	return func(o *InitializeOptions) { o.CPUNumThreads = n }
}

// DefaultInitializeOptions returns the core's own defaults.
func (l *Lib) DefaultInitializeOptions() InitializeOptions {
	abi := l.t.MakeDefaultInitializeOptions()
	return InitializeOptions{
		AccelerationMode: AccelerationMode(abi.AccelerationMode),
		CPUNumThreads:    abi.CPUNumThreads,
	}
}

func (l *Lib) initializeOptions(opts []InitializeOption) ffi.InitializeOptions {
	v := l.DefaultInitializeOptions()
	for _, opt := range opts {
		opt(&v)
	}
	return ffi.InitializeOptions{
		AccelerationMode: int32(v.AccelerationMode),
		CPUNumThreads:    v.CPUNumThreads,
	}
}

// SynthesisOptions configures Synthesizer.Synthesis.
type SynthesisOptions struct {
	EnableInterrogativeUpspeak bool
}

// SynthesisOption overrides one field of the native defaults.
type SynthesisOption func(*SynthesisOptions)

// WithInterrogativeUpspeak toggles the rising intonation applied to
// interrogative sentences.
func WithInterrogativeUpspeak(enabled bool) SynthesisOption {
	return func(o *SynthesisOptions) { o.EnableInterrogativeUpspeak = enabled }
}

// DefaultSynthesisOptions returns the core's own defaults.
func (l *Lib) DefaultSynthesisOptions() SynthesisOptions {
	abi := l.t.MakeDefaultSynthesisOptions()
	return SynthesisOptions{EnableInterrogativeUpspeak: abi.EnableInterrogativeUpspeak}
}

func (l *Lib) synthesisOptions(opts []SynthesisOption) ffi.SynthesisOptions {
	v := l.DefaultSynthesisOptions()
	for _, opt := range opts {
		opt(&v)
	}
	return ffi.SynthesisOptions{EnableInterrogativeUpspeak: v.EnableInterrogativeUpspeak}
}

// TTSOptions configures Synthesizer.Tts and Synthesizer.TtsFromKana.
type TTSOptions struct {
	EnableInterrogativeUpspeak bool
}

// TTSOption overrides one field of the native defaults.
type TTSOption func(*TTSOptions)

// WithTTSInterrogativeUpspeak toggles the rising intonation applied to
// interrogative sentences.
func WithTTSInterrogativeUpspeak(enabled bool) TTSOption {
	return func(o *TTSOptions) { o.EnableInterrogativeUpspeak = enabled }
}

// DefaultTTSOptions returns the core's own defaults.
func (l *Lib) DefaultTTSOptions() TTSOptions {
	abi := l.t.MakeDefaultTTSOptions()
	return TTSOptions{EnableInterrogativeUpspeak: abi.EnableInterrogativeUpspeak}
}

func (l *Lib) ttsOptions(opts []TTSOption) ffi.TTSOptions {
	v := l.DefaultTTSOptions()
	for _, opt := range opts {
		opt(&v)
	}
	return ffi.TTSOptions{EnableInterrogativeUpspeak: v.EnableInterrogativeUpspeak}
}

// OnnxruntimeOptions configures loading of the ONNX Runtime.
type OnnxruntimeOptions struct {
	// Filename is the runtime library to load; defaults to the platform
	// filename of the bundled runtime.
	Filename string
}

// OnnxruntimeOption overrides one field of the defaults.
type OnnxruntimeOption func(*OnnxruntimeOptions)

// WithOnnxruntimeFilename overrides the runtime library filename.
func WithOnnxruntimeFilename(name string) OnnxruntimeOption {
	return func(o *OnnxruntimeOptions) { o.Filename = name }
}

func onnxruntimeOptions(opts []OnnxruntimeOption) OnnxruntimeOptions {
	v := OnnxruntimeOptions{Filename: DefaultOnnxruntimeName()}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}
