// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

// Package voicevoxcore binds the VOICEVOX core speech-synthesis library.
//
// The library is loaded at runtime with Open, which resolves a platform
// default filename when no explicit path is given and binds the full
// native call table. Handles (Onnxruntime, OpenJtalk, VoiceModelFile,
// Synthesizer, UserDict) are distinct types constructed only by this
// package; raw native pointers never cross the public API.
//
// Calls that may block (library and dictionary loading, model opening,
// synthesis) take a context.Context and run on a worker pool so the
// calling goroutine scheduler is not stalled by the native side. Cheap
// native calls run inline. None of the native calls support cancellation:
// when the context expires first, the method returns ctx.Err() while the
// native call runs to completion on its worker; buffer cleanup still
// happens there.
//
// Every handle's Close is idempotent, and any operation on a closed
// handle fails with a DisposedError before reaching native code. The
// native layer is not known to be thread-safe for concurrent calls
// against one handle; serializing such calls is the caller's job.
package voicevoxcore
