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

package hashengines

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
)

// HashEngineFactory creates a new hash engine.
type HashEngineFactory func() (HashEngine, error)

var (
	registry = make(map[string]HashEngineFactory)
	mu       sync.RWMutex
)

// Register adds a factory under the given algorithm name.
//
// Names are stored verbatim. Registering an empty name, a nil factory or a
// name that is already taken returns an error.
func Register(algorithm string, factory HashEngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}

	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = factory
	return nil
}

// MustRegister is like Register but panics on error. Use it from init.
func MustRegister(algorithm string, factory HashEngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create returns a new engine for the named algorithm.
//
// A name that is not registered verbatim is resolved through
// algorithm.Parse, so "SHA-256" and "sha2-256" reach the "sha256" engine.
func Create(name string) (HashEngine, error) {
	factory, resolved, ok := lookup(name)
	if !ok {
		return nil, fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			name, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", resolved, err)
	}

	return engine, nil
}

func lookup(name string) (HashEngineFactory, string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if factory, ok := registry[name]; ok {
		return factory, name, true
	}
	alg, err := algorithm.Parse(name)
	if err != nil {
		return nil, "", false
	}
	factory, ok := registry[alg.String()]
	return factory, alg.String(), ok
}

// SupportedAlgorithms returns the registered names in sorted order.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported reports whether algorithm has been registered.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

// Unregister removes a registered algorithm. Mostly useful in tests.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; !exists {
		return fmt.Errorf("hash algorithm %q not registered", algorithm)
	}

	delete(registry, algorithm)
	return nil
}
