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

// Synthesizer is the speech synthesis handle. It is constructed from a
// live Onnxruntime and OpenJtalk; the dependency is structural, there is
// no way to build one without both.
//
// The native layer does not guarantee thread safety for concurrent calls
// against the same synthesizer. Callers that share one across goroutines
// must serialize access themselves; calls against different handles may
// run concurrently.
type Synthesizer struct {
	lib       *Lib
	ptr       uintptr
	ownedOjt  *OpenJtalk
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewSynthesizer constructs a synthesizer from the runtime and analyzer.
// Both prerequisites stay owned by the caller; the core takes its own
// references, so closing the analyzer afterward is allowed.
func (l *Lib) NewSynthesizer(ctx context.Context, ort *Onnxruntime, ojt *OpenJtalk, opts ...InitializeOption) (*Synthesizer, error) {
	if err := ojt.guard(); err != nil {
		return nil, err
	}
	abi := l.initializeOptions(opts)
	var out uintptr
	err := l.exec.do(ctx, ffi.SymSynthesizerNew, func() error {
		return l.resultErr(l.t.SynthesizerNew(ort.ptr, ojt.ptr, abi, &out))
	})
	if err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, &InternalError{Op: ffi.SymSynthesizerNew, Detail: "success code but null synthesizer handle"}
	}
	return &Synthesizer{lib: l, ptr: out}, nil
}

// NewSynthesizerWithDict loads the Open JTalk dictionary under dictDir and
// builds a synthesizer on top of it in one step. The analyzer is owned by
// the returned synthesizer and closed with it. If synthesizer construction
// fails, the analyzer created here is destroyed before the error
// propagates; no orphaned handle survives the failure.
func (l *Lib) NewSynthesizerWithDict(ctx context.Context, ort *Onnxruntime, dictDir string, opts ...InitializeOption) (*Synthesizer, error) {
	ojt, err := l.NewOpenJtalk(ctx, dictDir)
	if err != nil {
		return nil, err
	}
	s, err := l.NewSynthesizer(ctx, ort, ojt, opts...)
	if err != nil {
		ojt.Close()
		return nil, err
	}
	s.ownedOjt = ojt
	return s, nil
}

func (s *Synthesizer) guard() error {
	if s.closed.Load() {
		return &DisposedError{Resource: "Synthesizer"}
	}
	return nil
}

// jsonOp runs a blocking native call that yields a native-owned JSON
// buffer, decoding and freeing the buffer on the worker so the free runs
// even when the awaiting caller has given up on the context.
func (s *Synthesizer) jsonOp(ctx context.Context, sym string, call func(out *uintptr) int32) (json.RawMessage, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var res []byte
	err := s.lib.exec.do(ctx, sym, func() error {
		var out uintptr
		if err := s.lib.resultErr(call(&out)); err != nil {
			return err
		}
		b, err := s.lib.takeJSON(sym, out)
		if err != nil {
			return err
		}
		res = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// wavOp is jsonOp's counterpart for length-delimited WAV buffers.
func (s *Synthesizer) wavOp(ctx context.Context, sym string, call func(outLen, outWav *uintptr) int32) ([]byte, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var res []byte
	err := s.lib.exec.do(ctx, sym, func() error {
		var n, out uintptr
		if err := s.lib.resultErr(call(&n, &out)); err != nil {
			return err
		}
		b, err := s.lib.takeWav(sym, out, n)
		if err != nil {
			return err
		}
		res = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// LoadVoiceModel loads an opened voice model file into the synthesizer.
// The synthesizer copies the model data; the file may be closed as soon as
// this returns.
func (s *Synthesizer) LoadVoiceModel(ctx context.Context, model *VoiceModelFile) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := model.guard(); err != nil {
		return err
	}
	return s.lib.exec.do(ctx, ffi.SymSynthesizerLoadVoiceModel, func() error {
		return s.lib.resultErr(s.lib.t.SynthesizerLoadVoiceModel(s.ptr, model.ptr))
	})
}

// UnloadVoiceModel unloads a previously loaded voice model by id.
func (s *Synthesizer) UnloadVoiceModel(id uuid.UUID) error {
	if err := s.guard(); err != nil {
		return err
	}
	raw := [16]byte(id)
	return s.lib.resultErr(s.lib.t.SynthesizerUnloadVoiceModel(s.ptr, &raw[0]))
}

// IsLoadedVoiceModel reports whether the voice model with the given id is
// loaded.
func (s *Synthesizer) IsLoadedVoiceModel(id uuid.UUID) (bool, error) {
	if err := s.guard(); err != nil {
		return false, err
	}
	raw := [16]byte(id)
	return s.lib.t.SynthesizerIsLoadedVoiceModel(s.ptr, &raw[0]), nil
}

// Metas returns the metadata of every loaded speaker as raw JSON. Use
// ParseMetas for a typed view.
func (s *Synthesizer) Metas() (json.RawMessage, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	p := s.lib.t.SynthesizerCreateMetasJSON(s.ptr)
	return s.lib.takeJSON(ffi.SymSynthesizerCreateMetasJSON, p)
}

// CreateAudioQuery runs text analysis and returns the audio query for the
// given style as raw JSON. The query can be edited and fed to Synthesis.
func (s *Synthesizer) CreateAudioQuery(ctx context.Context, text string, styleID uint32) (json.RawMessage, error) {
	return s.jsonOp(ctx, ffi.SymSynthesizerCreateAudioQuery, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerCreateAudioQuery(s.ptr, text, styleID, out)
	})
}

// CreateAudioQueryFromKana builds an audio query from AquesTalk-style kana
// notation. Requires native 0.15.0 or newer.
func (s *Synthesizer) CreateAudioQueryFromKana(ctx context.Context, kana string, styleID uint32) (json.RawMessage, error) {
	if s.lib.t.SynthesizerCreateAudioQueryFromKana == nil {
		return nil, &UnsupportedError{Symbol: ffi.SymSynthesizerCreateAudioQueryFromKana, MinVersion: "0.15.0"}
	}
	return s.jsonOp(ctx, ffi.SymSynthesizerCreateAudioQueryFromKana, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerCreateAudioQueryFromKana(s.ptr, kana, styleID, out)
	})
}

// CreateAccentPhrases runs text analysis and returns the accent phrases
// for the given style as raw JSON.
func (s *Synthesizer) CreateAccentPhrases(ctx context.Context, text string, styleID uint32) (json.RawMessage, error) {
	return s.jsonOp(ctx, ffi.SymSynthesizerCreateAccentPhrases, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerCreateAccentPhrases(s.ptr, text, styleID, out)
	})
}

// CreateAccentPhrasesFromKana builds accent phrases from AquesTalk-style
// kana notation. Requires native 0.15.0 or newer.
func (s *Synthesizer) CreateAccentPhrasesFromKana(ctx context.Context, kana string, styleID uint32) (json.RawMessage, error) {
	if s.lib.t.SynthesizerCreateAccentPhrasesFromKana == nil {
		return nil, &UnsupportedError{Symbol: ffi.SymSynthesizerCreateAccentPhrasesFromKana, MinVersion: "0.15.0"}
	}
	return s.jsonOp(ctx, ffi.SymSynthesizerCreateAccentPhrasesFromKana, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerCreateAccentPhrasesFromKana(s.ptr, kana, styleID, out)
	})
}

// ReplaceMoraData recomputes phoneme lengths and pitches of the given
// accent phrases for the given style.
func (s *Synthesizer) ReplaceMoraData(ctx context.Context, accentPhrasesJSON json.RawMessage, styleID uint32) (json.RawMessage, error) {
	return s.jsonOp(ctx, ffi.SymSynthesizerReplaceMoraData, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerReplaceMoraData(s.ptr, string(accentPhrasesJSON), styleID, out)
	})
}

// ReplacePhonemeLength recomputes phoneme lengths only.
func (s *Synthesizer) ReplacePhonemeLength(ctx context.Context, accentPhrasesJSON json.RawMessage, styleID uint32) (json.RawMessage, error) {
	return s.jsonOp(ctx, ffi.SymSynthesizerReplacePhonemeLength, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerReplacePhonemeLength(s.ptr, string(accentPhrasesJSON), styleID, out)
	})
}

// ReplaceMoraPitch recomputes mora pitches only.
func (s *Synthesizer) ReplaceMoraPitch(ctx context.Context, accentPhrasesJSON json.RawMessage, styleID uint32) (json.RawMessage, error) {
	return s.jsonOp(ctx, ffi.SymSynthesizerReplaceMoraPitch, func(out *uintptr) int32 {
		return s.lib.t.SynthesizerReplaceMoraPitch(s.ptr, string(accentPhrasesJSON), styleID, out)
	})
}

// Synthesis renders an audio query to WAV bytes (16-bit little-endian
// PCM).
func (s *Synthesizer) Synthesis(ctx context.Context, audioQueryJSON json.RawMessage, styleID uint32, opts ...SynthesisOption) ([]byte, error) {
	abi := s.lib.synthesisOptions(opts)
	return s.wavOp(ctx, ffi.SymSynthesizerSynthesis, func(outLen, outWav *uintptr) int32 {
		return s.lib.t.SynthesizerSynthesis(s.ptr, string(audioQueryJSON), styleID, abi, outLen, outWav)
	})
}

// Tts renders text straight to WAV bytes, running analysis and synthesis
// in one native call.
func (s *Synthesizer) Tts(ctx context.Context, text string, styleID uint32, opts ...TTSOption) ([]byte, error) {
	abi := s.lib.ttsOptions(opts)
	return s.wavOp(ctx, ffi.SymSynthesizerTTS, func(outLen, outWav *uintptr) int32 {
		return s.lib.t.SynthesizerTTS(s.ptr, text, styleID, abi, outLen, outWav)
	})
}

// TtsFromKana renders AquesTalk-style kana notation straight to WAV bytes.
// Requires native 0.15.0 or newer.
func (s *Synthesizer) TtsFromKana(ctx context.Context, kana string, styleID uint32, opts ...TTSOption) ([]byte, error) {
	if s.lib.t.SynthesizerTTSFromKana == nil {
		return nil, &UnsupportedError{Symbol: ffi.SymSynthesizerTTSFromKana, MinVersion: "0.15.0"}
	}
	abi := s.lib.ttsOptions(opts)
	return s.wavOp(ctx, ffi.SymSynthesizerTTSFromKana, func(outLen, outWav *uintptr) int32 {
		return s.lib.t.SynthesizerTTSFromKana(s.ptr, kana, styleID, abi, outLen, outWav)
	})
}

// Close destroys the synthesizer, along with the analyzer it owns when it
// was built by NewSynthesizerWithDict. It is idempotent: the second and
// later calls are no-ops, and every operation after the first Close fails
// with a DisposedError before reaching the native layer.
func (s *Synthesizer) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.lib.t.SynthesizerDelete(s.ptr)
		s.ptr = 0
		if s.ownedOjt != nil {
			s.ownedOjt.Close()
			s.ownedOjt = nil
		}
	})
	return nil
}
