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

package tracing

import (
	"context"
	"errors"
	"testing"
)

type recordingSpan struct {
	attrs map[string]interface{}
	ended bool
}

func (s *recordingSpan) SetAttribute(k string, v interface{}) { s.attrs[k] = v }
func (s *recordingSpan) End()                                 { s.ended = true }

type recordingTracer struct {
	names []string
	spans []*recordingSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string) (context.Context, Span) {
	s := &recordingSpan{attrs: map[string]interface{}{}}
	r.names = append(r.names, name)
	r.spans = append(r.spans, s)
	return ctx, s
}

func TestRun_Noop(t *testing.T) {
	SetTracer(nil)
	if Enabled() {
		t.Fatal("Enabled() = true with the no-op tracer")
	}

	called := false
	err := Run(context.Background(), "op", nil, func(context.Context) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Errorf("Run() = %v, called = %v", err, called)
	}
}

func TestRun_RecordsSpan(t *testing.T) {
	rec := &recordingTracer{}
	SetTracer(rec)
	defer SetTracer(nil)

	wantErr := errors.New("boom")
	err := Run(context.Background(), "digest", map[string]interface{}{"algorithm": "sha1"}, func(context.Context) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
	if len(rec.spans) != 1 || rec.names[0] != "digest" {
		t.Fatalf("spans = %v", rec.names)
	}
	if !rec.spans[0].ended {
		t.Error("span was not ended")
	}
	if rec.spans[0].attrs["algorithm"] != "sha1" {
		t.Errorf("attrs = %v", rec.spans[0].attrs)
	}
}
