// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ffi declares the native call surface of the VOICEVOX core
// library and loads it at runtime. Nothing above this package touches a
// raw symbol or an unowned native buffer directly.
package ffi

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Names of the native entry points. Exported so callers can report which
// symbol an operation depends on.
const (
	SymGetVersion           = "voicevox_get_version"
	SymErrorResultToMessage = "voicevox_error_result_to_message"

	SymMakeDefaultInitializeOptions = "voicevox_make_default_initialize_options"
	SymMakeDefaultSynthesisOptions  = "voicevox_make_default_synthesis_options"
	SymMakeDefaultTTSOptions        = "voicevox_make_default_tts_options"

	SymOnnxruntimeLoadOnce                   = "voicevox_onnxruntime_load_once"
	SymOnnxruntimeCreateSupportedDevicesJSON = "voicevox_onnxruntime_create_supported_devices_json"

	SymOpenJtalkRcNew         = "voicevox_open_jtalk_rc_new"
	SymOpenJtalkRcUseUserDict = "voicevox_open_jtalk_rc_use_user_dict"
	SymOpenJtalkRcDelete      = "voicevox_open_jtalk_rc_delete"

	SymVoiceModelFileOpen            = "voicevox_voice_model_file_open"
	SymVoiceModelFileID              = "voicevox_voice_model_file_id"
	SymVoiceModelFileCreateMetasJSON = "voicevox_voice_model_file_create_metas_json"
	SymVoiceModelFileClose           = "voicevox_voice_model_file_close"

	SymSynthesizerNew                         = "voicevox_synthesizer_new"
	SymSynthesizerDelete                      = "voicevox_synthesizer_delete"
	SymSynthesizerLoadVoiceModel              = "voicevox_synthesizer_load_voice_model"
	SymSynthesizerUnloadVoiceModel            = "voicevox_synthesizer_unload_voice_model"
	SymSynthesizerIsLoadedVoiceModel          = "voicevox_synthesizer_is_loaded_voice_model"
	SymSynthesizerCreateMetasJSON             = "voicevox_synthesizer_create_metas_json"
	SymSynthesizerCreateAudioQuery            = "voicevox_synthesizer_create_audio_query"
	SymSynthesizerCreateAudioQueryFromKana    = "voicevox_synthesizer_create_audio_query_from_kana"
	SymSynthesizerCreateAccentPhrases         = "voicevox_synthesizer_create_accent_phrases"
	SymSynthesizerCreateAccentPhrasesFromKana = "voicevox_synthesizer_create_accent_phrases_from_kana"
	SymSynthesizerReplaceMoraData             = "voicevox_synthesizer_replace_mora_data"
	SymSynthesizerReplacePhonemeLength        = "voicevox_synthesizer_replace_phoneme_length"
	SymSynthesizerReplaceMoraPitch            = "voicevox_synthesizer_replace_mora_pitch"
	SymSynthesizerSynthesis                   = "voicevox_synthesizer_synthesis"
	SymSynthesizerTTS                         = "voicevox_synthesizer_tts"
	SymSynthesizerTTSFromKana                 = "voicevox_synthesizer_tts_from_kana"

	SymUserDictNew        = "voicevox_user_dict_new"
	SymUserDictLoad       = "voicevox_user_dict_load"
	SymUserDictSave       = "voicevox_user_dict_save"
	SymUserDictAddWord    = "voicevox_user_dict_add_word"
	SymUserDictUpdateWord = "voicevox_user_dict_update_word"
	SymUserDictRemoveWord = "voicevox_user_dict_remove_word"
	SymUserDictImport     = "voicevox_user_dict_import"
	SymUserDictToJSON     = "voicevox_user_dict_to_json"
	SymUserDictDelete     = "voicevox_user_dict_delete"
	SymUserDictWordMake   = "voicevox_user_dict_word_make"

	SymJSONFree = "voicevox_json_free"
	SymWavFree  = "voicevox_wav_free"
)

// Table is the typed call table for one loaded core library. Every field
// is a direct binding to the native symbol of the same name. Fields marked
// optional stay nil when the loaded library predates the symbol; callers
// must probe for nil before invoking them.
//
// Handles are carried as uintptr at this layer. The package above wraps
// them in nominal types; raw pointers never cross the public API.
type Table struct {
	lib *library

	GetVersion           func() string
	ErrorResultToMessage func(code int32) string

	MakeDefaultInitializeOptions func() InitializeOptions
	MakeDefaultSynthesisOptions  func() SynthesisOptions
	MakeDefaultTTSOptions        func() TTSOptions

	OnnxruntimeLoadOnce func(options LoadOnnxruntimeOptions, out *uintptr) int32
	// Optional, native >= 0.16.0.
	OnnxruntimeCreateSupportedDevicesJSON func(ort uintptr, out *uintptr) int32

	OpenJtalkRcNew         func(dictDir string, out *uintptr) int32
	OpenJtalkRcUseUserDict func(ojt, dict uintptr) int32
	OpenJtalkRcDelete      func(ojt uintptr)

	VoiceModelFileOpen            func(path string, out *uintptr) int32
	VoiceModelFileID              func(model uintptr, out *byte)
	VoiceModelFileCreateMetasJSON func(model uintptr) uintptr
	VoiceModelFileClose           func(model uintptr)

	SynthesizerNew                func(ort, ojt uintptr, options InitializeOptions, out *uintptr) int32
	SynthesizerDelete             func(s uintptr)
	SynthesizerLoadVoiceModel     func(s, model uintptr) int32
	SynthesizerUnloadVoiceModel   func(s uintptr, modelID *byte) int32
	SynthesizerIsLoadedVoiceModel func(s uintptr, modelID *byte) bool
	SynthesizerCreateMetasJSON    func(s uintptr) uintptr
	SynthesizerCreateAudioQuery   func(s uintptr, text string, styleID uint32, out *uintptr) int32
	// Optional, native >= 0.15.0.
	SynthesizerCreateAudioQueryFromKana func(s uintptr, kana string, styleID uint32, out *uintptr) int32
	SynthesizerCreateAccentPhrases      func(s uintptr, text string, styleID uint32, out *uintptr) int32
	// Optional, native >= 0.15.0.
	SynthesizerCreateAccentPhrasesFromKana func(s uintptr, kana string, styleID uint32, out *uintptr) int32
	SynthesizerReplaceMoraData             func(s uintptr, accentPhrasesJSON string, styleID uint32, out *uintptr) int32
	SynthesizerReplacePhonemeLength        func(s uintptr, accentPhrasesJSON string, styleID uint32, out *uintptr) int32
	SynthesizerReplaceMoraPitch            func(s uintptr, accentPhrasesJSON string, styleID uint32, out *uintptr) int32
	SynthesizerSynthesis                   func(s uintptr, audioQueryJSON string, styleID uint32, options SynthesisOptions, outLen *uintptr, outWav *uintptr) int32
	SynthesizerTTS                         func(s uintptr, text string, styleID uint32, options TTSOptions, outLen *uintptr, outWav *uintptr) int32
	// Optional, native >= 0.15.0.
	SynthesizerTTSFromKana func(s uintptr, kana string, styleID uint32, options TTSOptions, outLen *uintptr, outWav *uintptr) int32

	UserDictNew        func() uintptr
	UserDictLoad       func(d uintptr, path string) int32
	UserDictSave       func(d uintptr, path string) int32
	UserDictAddWord    func(d uintptr, word *UserDictWord, outWordID *byte) int32
	UserDictUpdateWord func(d uintptr, wordID *byte, word *UserDictWord) int32
	UserDictRemoveWord func(d uintptr, wordID *byte) int32
	UserDictImport     func(d, other uintptr) int32
	UserDictToJSON     func(d uintptr, out *uintptr) int32
	UserDictDelete     func(d uintptr)
	UserDictWordMake   func(surface, pronunciation *byte, accentType uintptr) UserDictWord

	JSONFree func(p uintptr)
	WavFree  func(p uintptr)
}

// MissingOptional lists the optional entry points absent from the loaded
// library, for load-time diagnostics.
func (t *Table) MissingOptional() []string {
	var missing []string
	if t.OnnxruntimeCreateSupportedDevicesJSON == nil {
		missing = append(missing, SymOnnxruntimeCreateSupportedDevicesJSON)
	}
	if t.SynthesizerCreateAudioQueryFromKana == nil {
		missing = append(missing, SymSynthesizerCreateAudioQueryFromKana)
	}
	if t.SynthesizerCreateAccentPhrasesFromKana == nil {
		missing = append(missing, SymSynthesizerCreateAccentPhrasesFromKana)
	}
	if t.SynthesizerTTSFromKana == nil {
		missing = append(missing, SymSynthesizerTTSFromKana)
	}
	return missing
}

// Load opens the core library at path and binds every entry point. A
// missing required symbol fails the whole load; optional symbols are
// probed and left nil when absent.
func Load(path string) (*Table, error) {
	lib, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("ffi: load %s: %w", path, err)
	}

	t := &Table{lib: lib}
	var missing []string
	register := func(fptr any, name string) {
		if !lib.hasSymbol(name) {
			missing = append(missing, name)
			return
		}
		purego.RegisterLibFunc(fptr, lib.handle, name)
	}
	registerOptional := func(fptr any, name string) {
		if !lib.hasSymbol(name) {
			return
		}
		purego.RegisterLibFunc(fptr, lib.handle, name)
	}

	register(&t.GetVersion, SymGetVersion)
	register(&t.ErrorResultToMessage, SymErrorResultToMessage)

	register(&t.MakeDefaultInitializeOptions, SymMakeDefaultInitializeOptions)
	register(&t.MakeDefaultSynthesisOptions, SymMakeDefaultSynthesisOptions)
	register(&t.MakeDefaultTTSOptions, SymMakeDefaultTTSOptions)

	register(&t.OnnxruntimeLoadOnce, SymOnnxruntimeLoadOnce)
	registerOptional(&t.OnnxruntimeCreateSupportedDevicesJSON, SymOnnxruntimeCreateSupportedDevicesJSON)

	register(&t.OpenJtalkRcNew, SymOpenJtalkRcNew)
	register(&t.OpenJtalkRcUseUserDict, SymOpenJtalkRcUseUserDict)
	register(&t.OpenJtalkRcDelete, SymOpenJtalkRcDelete)

	register(&t.VoiceModelFileOpen, SymVoiceModelFileOpen)
	register(&t.VoiceModelFileID, SymVoiceModelFileID)
	register(&t.VoiceModelFileCreateMetasJSON, SymVoiceModelFileCreateMetasJSON)
	register(&t.VoiceModelFileClose, SymVoiceModelFileClose)

	register(&t.SynthesizerNew, SymSynthesizerNew)
	register(&t.SynthesizerDelete, SymSynthesizerDelete)
	register(&t.SynthesizerLoadVoiceModel, SymSynthesizerLoadVoiceModel)
	register(&t.SynthesizerUnloadVoiceModel, SymSynthesizerUnloadVoiceModel)
	register(&t.SynthesizerIsLoadedVoiceModel, SymSynthesizerIsLoadedVoiceModel)
	register(&t.SynthesizerCreateMetasJSON, SymSynthesizerCreateMetasJSON)
	register(&t.SynthesizerCreateAudioQuery, SymSynthesizerCreateAudioQuery)
	registerOptional(&t.SynthesizerCreateAudioQueryFromKana, SymSynthesizerCreateAudioQueryFromKana)
	register(&t.SynthesizerCreateAccentPhrases, SymSynthesizerCreateAccentPhrases)
	registerOptional(&t.SynthesizerCreateAccentPhrasesFromKana, SymSynthesizerCreateAccentPhrasesFromKana)
	register(&t.SynthesizerReplaceMoraData, SymSynthesizerReplaceMoraData)
	register(&t.SynthesizerReplacePhonemeLength, SymSynthesizerReplacePhonemeLength)
	register(&t.SynthesizerReplaceMoraPitch, SymSynthesizerReplaceMoraPitch)
	register(&t.SynthesizerSynthesis, SymSynthesizerSynthesis)
	register(&t.SynthesizerTTS, SymSynthesizerTTS)
	registerOptional(&t.SynthesizerTTSFromKana, SymSynthesizerTTSFromKana)

	register(&t.UserDictNew, SymUserDictNew)
	register(&t.UserDictLoad, SymUserDictLoad)
	register(&t.UserDictSave, SymUserDictSave)
	register(&t.UserDictAddWord, SymUserDictAddWord)
	register(&t.UserDictUpdateWord, SymUserDictUpdateWord)
	register(&t.UserDictRemoveWord, SymUserDictRemoveWord)
	register(&t.UserDictImport, SymUserDictImport)
	register(&t.UserDictToJSON, SymUserDictToJSON)
	register(&t.UserDictDelete, SymUserDictDelete)
	register(&t.UserDictWordMake, SymUserDictWordMake)

	register(&t.JSONFree, SymJSONFree)
	register(&t.WavFree, SymWavFree)

	if len(missing) > 0 {
		lib.close()
		return nil, fmt.Errorf("ffi: %s is missing required symbols: %v", path, missing)
	}
	return t, nil
}
