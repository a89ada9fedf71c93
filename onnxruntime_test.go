// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotoba-lab/voicevoxcore-go/internal/ffi"
)

func TestLoadOnnxruntimeIsLoadOrGet(t *testing.T) {
	f := newFakeNative()
	wireSynth(f)
	lib := newTestLib(t, f)
	ctx := context.Background()

	first, err := lib.LoadOnnxruntime(ctx)
	require.NoError(t, err)
	second, err := lib.LoadOnnxruntime(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, f.count("ort_load"), "the native load runs once per process")
}

func TestLoadOnnxruntimeConcurrentCallersCoalesce(t *testing.T) {
	f := newFakeNative()
	wireSynth(f)
	lib := newTestLib(t, f)

	var wg sync.WaitGroup
	results := make([]*Onnxruntime, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ort, err := lib.LoadOnnxruntime(context.Background())
			assert.NoError(t, err)
			results[i] = ort
		}(i)
	}
	wg.Wait()
	for _, ort := range results {
		assert.Same(t, results[0], ort)
	}
}

func TestLoadOnnxruntimeLogsBreadcrumb(t *testing.T) {
	f := newFakeNative()
	wireSynth(f)
	var buf bytes.Buffer
	exec, err := newExecutor(2)
	require.NoError(t, err)
	t.Cleanup(exec.close)
	lib := newLib(f.t, exec, slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err = lib.LoadOnnxruntime(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "onnxruntime loaded")
	assert.Contains(t, buf.String(), DefaultOnnxruntimeName())
}

func TestLoadOnnxruntimeNullHandleOnSuccess(t *testing.T) {
	f := newFakeNative()
	f.t.OnnxruntimeLoadOnce = func(opts ffi.LoadOnnxruntimeOptions, out *uintptr) int32 {
		return 0
	}
	lib := newTestLib(t, f)

	_, err := lib.LoadOnnxruntime(context.Background())
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
}

func TestSupportedDevicesUnsupportedOnOldCore(t *testing.T) {
	f := newFakeNative()
	wireSynth(f)
	// OnnxruntimeCreateSupportedDevicesJSON stays nil.
	lib := newTestLib(t, f)

	ort, err := lib.LoadOnnxruntime(context.Background())
	require.NoError(t, err)

	_, err = ort.SupportedDevices()
	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ffi.SymOnnxruntimeCreateSupportedDevicesJSON, unsupported.Symbol)
	assert.Equal(t, "0.16.0", unsupported.MinVersion)
}

func TestSupportedDevicesFreesBuffer(t *testing.T) {
	f := newFakeNative()
	wireSynth(f)
	devices := `{"cpu":true,"cuda":false,"dml":false}`
	f.t.OnnxruntimeCreateSupportedDevicesJSON = func(ort uintptr, out *uintptr) int32 {
		*out = f.cstr(devices)
		return 0
	}
	lib := newTestLib(t, f)

	ort, err := lib.LoadOnnxruntime(context.Background())
	require.NoError(t, err)

	raw, err := ort.SupportedDevices()
	require.NoError(t, err)
	assert.JSONEq(t, devices, string(raw))
	assert.Equal(t, 1, f.jsonFreeCount())
}
