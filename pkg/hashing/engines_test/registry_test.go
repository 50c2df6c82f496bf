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

package engines_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
	hashengines "github.com/sigstore/hashstr/pkg/hashing/engines"
	"github.com/sigstore/hashstr/pkg/hashing/engines/memory"
)

func testFactory() (hashengines.HashEngine, error) {
	return memory.NewEngine(algorithm.SHA256)
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantSize  int
		wantErr   bool
	}{
		{"sha1", "sha1", "sha1", 20, false},
		{"sha256", "sha256", "sha256", 32, false},
		{"sha384", "sha384", "sha384", 48, false},
		{"sha512", "sha512", "sha512", 64, false},
		{"upper case", "SHA256", "sha256", 32, false},
		{"hyphenated alias", "SHA-1", "sha1", 20, false},
		{"sha2 alias", "sha2-512", "sha512", 64, false},
		{"unsupported", "md5", "", 0, true},
		{"empty", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := hashengines.Create(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if engine == nil {
				t.Fatal("Create() returned nil engine without error")
			}
			if engine.DigestName() != tt.wantName {
				t.Errorf("DigestName() = %q, want %q", engine.DigestName(), tt.wantName)
			}
			d, err := engine.Compute(nil)
			if err != nil {
				t.Fatalf("Compute() error = %v", err)
			}
			if d.Size() != tt.wantSize || engine.DigestSize() != tt.wantSize {
				t.Errorf("digest size = %d/%d, want %d", d.Size(), engine.DigestSize(), tt.wantSize)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		factory   hashengines.HashEngineFactory
		wantErr   bool
	}{
		{"valid registration", "test-algo", testFactory, false},
		{"empty algorithm", "", testFactory, true},
		{"nil factory", "test-nil", nil, true},
		{"builtin name", "sha1", testFactory, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hashengines.Register(tt.algorithm, tt.factory)
			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				_ = hashengines.Unregister(tt.algorithm)
			}
		})
	}
}

func TestMustRegister_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()

	hashengines.MustRegister("sha256", testFactory)
}

func TestSupportedAlgorithms(t *testing.T) {
	algorithms := hashengines.SupportedAlgorithms()

	for _, name := range algorithm.Names() {
		found := false
		for _, algo := range algorithms {
			if algo == name {
				found = true
			}
		}
		if !found {
			t.Errorf("SupportedAlgorithms() missing %s", name)
		}
	}

	if !sort.StringsAreSorted(algorithms) {
		t.Errorf("SupportedAlgorithms() = %v is not sorted", algorithms)
	}
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		algorithm string
		want      bool
	}{
		{"sha1", true},
		{"sha384", true},
		{"blake2b", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := hashengines.IsSupported(tt.algorithm); got != tt.want {
			t.Errorf("IsSupported(%q) = %v, want %v", tt.algorithm, got, tt.want)
		}
	}
}

func TestUnregister(t *testing.T) {
	if err := hashengines.Register("unregister-test", testFactory); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if !hashengines.IsSupported("unregister-test") {
		t.Error("algorithm should be registered")
	}
	if err := hashengines.Unregister("unregister-test"); err != nil {
		t.Errorf("Unregister() error = %v", err)
	}
	if hashengines.IsSupported("unregister-test") {
		t.Error("algorithm should not be registered after Unregister")
	}
	if err := hashengines.Unregister("unregister-test"); err == nil {
		t.Error("Unregister() should fail for a missing algorithm")
	}
}

func TestConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = hashengines.SupportedAlgorithms()
			_ = hashengines.IsSupported("sha256")
			_, _ = hashengines.Create("sha256")
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = hashengines.Register("concurrent-test", testFactory)
			_ = hashengines.Unregister("concurrent-test")
		}
	}()

	wg.Wait()
}
