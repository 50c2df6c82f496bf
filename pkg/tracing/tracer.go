// Copyright 2025 The Sigstore Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tracing wraps operations in spans. The default tracer does
// nothing; SetTracer installs a real one.
package tracing

import (
	"context"
	"sync"
)

// Span is a single timed operation.
type Span interface {
	SetAttribute(key string, value interface{})
	End()
}

// Tracer starts spans.
type Tracer interface {
	// Start returns a context for child operations and a span that the
	// caller must End.
	Start(ctx context.Context, name string) (context.Context, Span)
}

var (
	mu           sync.RWMutex
	globalTracer Tracer = NoopTracer{}
)

// SetTracer installs t as the global tracer. nil restores the no-op tracer.
func SetTracer(t Tracer) {
	mu.Lock()
	defer mu.Unlock()
	if t == nil {
		t = NoopTracer{}
	}
	globalTracer = t
}

// GetTracer returns the global tracer, never nil.
func GetTracer() Tracer {
	mu.RLock()
	defer mu.RUnlock()
	return globalTracer
}

// Enabled reports whether a tracer other than NoopTracer is installed.
func Enabled() bool {
	_, noop := GetTracer().(NoopTracer)
	return !noop
}

// Start starts a span on the global tracer.
func Start(ctx context.Context, name string) (context.Context, Span) {
	return GetTracer().Start(ctx, name)
}

// Run calls fn inside a span named name carrying attrs. Without a real
// tracer fn is called directly.
func Run(ctx context.Context, name string, attrs map[string]interface{}, fn func(context.Context) error) error {
	if !Enabled() {
		return fn(ctx)
	}
	ctx, span := Start(ctx, name)
	defer span.End()
	for k, v := range attrs {
		span.SetAttribute(k, v)
	}
	return fn(ctx)
}

// NoopSpan discards everything.
type NoopSpan struct{}

func (NoopSpan) SetAttribute(string, interface{}) {}
func (NoopSpan) End()                             {}

// NoopTracer returns NoopSpans.
type NoopTracer struct{}

// Start returns ctx unchanged and a NoopSpan.
func (NoopTracer) Start(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, NoopSpan{}
}
