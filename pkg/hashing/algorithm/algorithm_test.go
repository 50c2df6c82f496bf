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

package algorithm

import (
	"testing"
)

func TestSize(t *testing.T) {
	tests := []struct {
		alg  Algorithm
		want int
	}{
		{SHA1, 20},
		{SHA256, 32},
		{SHA384, 48},
		{SHA512, 64},
		{Algorithm(0), 0},
		{Algorithm(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			if got := tt.alg.Size(); got != tt.want {
				t.Errorf("%v.Size() = %d, want %d", tt.alg, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Algorithm
		wantErr bool
	}{
		{"canonical sha1", "sha1", SHA1, false},
		{"dashed sha1", "SHA-1", SHA1, false},
		{"canonical sha256", "sha256", SHA256, false},
		{"sha2 prefix", "sha2-256", SHA256, false},
		{"upper sha384", "SHA384", SHA384, false},
		{"padded sha512", "  sha512 ", SHA512, false},
		{"md5", "md5", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, a := range All() {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", a.String(), err)
		}
		if got != a {
			t.Errorf("Parse(%q) = %v, want %v", a.String(), got, a)
		}
	}
}

func TestValid(t *testing.T) {
	for _, a := range All() {
		if !a.Valid() {
			t.Errorf("%v.Valid() = false, want true", a)
		}
	}
	if Algorithm(0).Valid() {
		t.Error("zero Algorithm should not be valid")
	}
	if got := Algorithm(9).String(); got != "Algorithm(9)" {
		t.Errorf("Algorithm(9).String() = %q", got)
	}
}

func TestMultihashCode(t *testing.T) {
	for _, a := range All() {
		got, ok := FromMultihashCode(a.MultihashCode())
		if !ok || got != a {
			t.Errorf("FromMultihashCode(%#x) = %v, %v; want %v", a.MultihashCode(), got, ok, a)
		}
	}
	if _, ok := FromMultihashCode(0x1e); ok {
		t.Error("FromMultihashCode(blake3) should not resolve")
	}
}
