// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"testing"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelMetasJSON = `[{"name":"四国めたん","styles":[{"name":"ノーマル","id":2}],"speaker_uuid":"7ffcb7ce-00ec-4bdc-82cd-45a8889e43ff","version":"0.1.0"}]`

// wireModelFile sets up the fake voice model surface: open yields handle
// 0x1 for "valid.model", metas yields one speaker, close records.
func wireModelFile(f *fakeNative, id uuid.UUID) {
	f.t.VoiceModelFileOpen = func(path string, out *uintptr) int32 {
		f.record("open")
		if path != "valid.model" {
			return int32(ResultModelNotFound)
		}
		*out = 0x1
		return 0
	}
	f.t.VoiceModelFileID = func(model uintptr, out *byte) {
		raw := [16]byte(id)
		copy(unsafe.Slice(out, 16), raw[:])
	}
	f.t.VoiceModelFileCreateMetasJSON = func(model uintptr) uintptr {
		f.record("metas")
		return f.cstr(modelMetasJSON)
	}
	f.t.VoiceModelFileClose = func(model uintptr) {
		f.record("close")
	}
}

func TestVoiceModelFileOpenMetasClose(t *testing.T) {
	f := newFakeNative()
	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	wireModelFile(f, id)
	lib := newTestLib(t, f)

	model, err := lib.OpenVoiceModelFile(context.Background(), "valid.model")
	require.NoError(t, err)
	assert.Equal(t, id, model.ID())

	raw, err := model.Metas()
	require.NoError(t, err)
	assert.JSONEq(t, modelMetasJSON, string(raw))
	assert.Equal(t, 1, f.jsonFreeCount(), "exactly one voicevox_json_free per metas buffer")

	metas, err := ParseMetas(raw)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "四国めたん", metas[0].Name)
	require.Len(t, metas[0].Styles, 1)
	assert.Equal(t, uint32(2), metas[0].Styles[0].ID)

	require.NoError(t, model.Close())
	require.NoError(t, model.Close(), "second Close is a no-op")
	assert.Equal(t, 1, f.count("close"), "native close runs once")

	// Operations after Close must fail before reaching the native layer.
	_, err = model.Metas()
	var disposed *DisposedError
	require.ErrorAs(t, err, &disposed)
	assert.Equal(t, "VoiceModelFile", disposed.Resource)
	assert.Equal(t, 1, f.count("metas"), "no native call after Close")

	// ID stays readable after Close.
	assert.Equal(t, id, model.ID())
}

func TestVoiceModelFileIDCanonicalText(t *testing.T) {
	f := newFakeNative()
	raw := [16]byte{0x7f, 0xfc, 0xb7, 0xce, 0x00, 0xec, 0x4b, 0xdc, 0x82, 0xcd, 0x45, 0xa8, 0x88, 0x9e, 0x43, 0xff}
	wireModelFile(f, uuid.UUID(raw))
	lib := newTestLib(t, f)

	model, err := lib.OpenVoiceModelFile(context.Background(), "valid.model")
	require.NoError(t, err)
	defer model.Close()

	// The 16 bytes written by the native side render as lowercase
	// hyphenated hex and parse back to the same bytes.
	s := model.ID().String()
	assert.Equal(t, "7ffcb7ce-00ec-4bdc-82cd-45a8889e43ff", s)
	back, err := uuid.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, raw, [16]byte(back))
}

func TestVoiceModelFileOpenFailure(t *testing.T) {
	f := newFakeNative()
	wireModelFile(f, uuid.UUID{})
	lib := newTestLib(t, f)

	_, err := lib.OpenVoiceModelFile(context.Background(), "missing.model")
	var re *ResultError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ResultModelNotFound, re.Code())
}

func TestVoiceModelFileNullHandleOnSuccess(t *testing.T) {
	f := newFakeNative()
	f.t.VoiceModelFileOpen = func(path string, out *uintptr) int32 {
		// Success code, but the out-parameter is left null.
		return 0
	}
	lib := newTestLib(t, f)

	_, err := lib.OpenVoiceModelFile(context.Background(), "valid.model")
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
}

func TestVoiceModelFileNullMetasOnSuccess(t *testing.T) {
	f := newFakeNative()
	id := uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	wireModelFile(f, id)
	f.t.VoiceModelFileCreateMetasJSON = func(model uintptr) uintptr { return 0 }
	lib := newTestLib(t, f)

	model, err := lib.OpenVoiceModelFile(context.Background(), "valid.model")
	require.NoError(t, err)
	defer model.Close()

	_, err = model.Metas()
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, 0, f.jsonFreeCount(), "nothing to free for a null buffer")
}
