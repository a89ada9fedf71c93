// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

package voicevoxcore

import (
	"context"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kotoba-lab/voicevoxcore-go"

// executor adapts blocking native calls to callers that must not stall:
// the call runs on a pooled worker while the caller waits on a channel.
//
// None of the wrapped native calls support cancellation. When ctx expires
// first, do returns ctx.Err() and the native call runs to completion on
// the worker; the submitted closure owns all buffer marshaling, so
// native-owned buffers are still freed on that path.
type executor struct {
	pool   *ants.Pool
	tracer trace.Tracer
}

func newExecutor(workers int) (*executor, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &executor{
		pool:   pool,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// do submits fn to the pool and waits for its result. A submission failure
// is surfaced as a SubmitError; a native result-code failure resolves
// normally through fn's return value.
func (e *executor) do(ctx context.Context, op string, fn func() error) error {
	ctx, span := e.tracer.Start(ctx, op)
	defer span.End()

	done := make(chan error, 1)
	if err := e.pool.Submit(func() { done <- fn() }); err != nil {
		span.RecordError(err)
		return &SubmitError{Op: op, Err: err}
	}
	select {
	case err := <-done:
		if err != nil {
			span.RecordError(err)
		}
		return err
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return ctx.Err()
	}
}

func (e *executor) close() {
	e.pool.Release()
}
