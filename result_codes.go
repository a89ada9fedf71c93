// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import "fmt"

// ResultCode is the core's integer success/failure signal. Zero is
// success; every nonzero value has exactly one meaning across all entry
// points.
type ResultCode int32

const (
	// ResultOk denotes success.
	ResultOk ResultCode = 0
	// ResultNotLoadedOpenJtalkDict: the Open JTalk dictionary has not been loaded.
	ResultNotLoadedOpenJtalkDict ResultCode = 1
	// ResultGetSupportedDevices: enumerating supported devices failed.
	ResultGetSupportedDevices ResultCode = 3
	// ResultGpuSupport: GPU mode is unsupported on this machine.
	ResultGpuSupport ResultCode = 4
	// ResultStyleNotFound: the requested style id is unknown.
	ResultStyleNotFound ResultCode = 6
	// ResultModelNotFound: the requested voice model id is unknown.
	ResultModelNotFound ResultCode = 7
	// ResultRunModel: inference failed.
	ResultRunModel ResultCode = 8
	// ResultAnalyzeText: extracting the full-context label failed.
	ResultAnalyzeText ResultCode = 11
	// ResultInvalidUtf8Input: the input was not valid UTF-8.
	ResultInvalidUtf8Input ResultCode = 12
	// ResultParseKana: the AquesTalk-style kana text is malformed.
	ResultParseKana ResultCode = 13
	// ResultInvalidAudioQuery: the audio query JSON is malformed.
	ResultInvalidAudioQuery ResultCode = 14
	// ResultInvalidAccentPhrase: the accent phrase JSON is malformed.
	ResultInvalidAccentPhrase ResultCode = 15
	// ResultOpenZipFile: the voice model archive could not be opened.
	ResultOpenZipFile ResultCode = 16
	// ResultReadZipEntry: an entry of the voice model archive could not be read.
	ResultReadZipEntry ResultCode = 17
	// ResultModelAlreadyLoaded: the voice model is already loaded.
	ResultModelAlreadyLoaded ResultCode = 18
	// ResultModelNotLoaded: the voice model has not been loaded.
	ResultModelNotLoaded ResultCode = 19
	// ResultLoadUserDict: loading the user dictionary failed.
	ResultLoadUserDict ResultCode = 20
	// ResultSaveUserDict: saving the user dictionary failed.
	ResultSaveUserDict ResultCode = 21
	// ResultWordNotFound: the user dictionary word id is unknown.
	ResultWordNotFound ResultCode = 22
	// ResultUseUserDict: applying the user dictionary failed.
	ResultUseUserDict ResultCode = 23
	// ResultInvalidWord: the user dictionary word is malformed.
	ResultInvalidWord ResultCode = 24
	// ResultInvalidUuid: the 16-byte identifier is malformed.
	ResultInvalidUuid ResultCode = 25
	// ResultStyleAlreadyLoaded: the style is already loaded.
	ResultStyleAlreadyLoaded ResultCode = 26
	// ResultInvalidModelData: the voice model data is corrupt.
	ResultInvalidModelData ResultCode = 27
	// ResultInitInferenceRuntime: initializing the inference runtime failed.
	ResultInitInferenceRuntime ResultCode = 29
)

// resultCodeNames is the static fallback map, used when the native message
// entry point is unavailable or returns nothing.
var resultCodeNames = map[ResultCode]string{
	ResultOk:                     "OK",
	ResultNotLoadedOpenJtalkDict: "Open JTalk dictionary not loaded",
	ResultGetSupportedDevices:    "failed to enumerate supported devices",
	ResultGpuSupport:             "GPU mode unsupported",
	ResultStyleNotFound:          "style not found",
	ResultModelNotFound:          "voice model not found",
	ResultRunModel:               "inference failed",
	ResultAnalyzeText:            "text analysis failed",
	ResultInvalidUtf8Input:       "input is not valid UTF-8",
	ResultParseKana:              "kana parse error",
	ResultInvalidAudioQuery:      "invalid audio query",
	ResultInvalidAccentPhrase:    "invalid accent phrase",
	ResultOpenZipFile:            "failed to open voice model archive",
	ResultReadZipEntry:           "failed to read voice model archive entry",
	ResultModelAlreadyLoaded:     "voice model already loaded",
	ResultModelNotLoaded:         "voice model not loaded",
	ResultLoadUserDict:           "failed to load user dictionary",
	ResultSaveUserDict:           "failed to save user dictionary",
	ResultWordNotFound:           "user dictionary word not found",
	ResultUseUserDict:            "failed to apply user dictionary",
	ResultInvalidWord:            "invalid user dictionary word",
	ResultInvalidUuid:            "invalid UUID",
	ResultStyleAlreadyLoaded:     "style already loaded",
	ResultInvalidModelData:       "invalid voice model data",
	ResultInitInferenceRuntime:   "failed to initialize inference runtime",
}

// String returns the static name of the code.
func (c ResultCode) String() string {
	if name, ok := resultCodeNames[c]; ok {
		return fmt.Sprintf("%s [code %d]", name, int32(c))
	}
	return fmt.Sprintf("unknown result code %d", int32(c))
}
