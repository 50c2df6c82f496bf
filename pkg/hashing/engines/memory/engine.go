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

// Package memory implements digest engines over in-memory byte slices.
//
// The cryptographic transforms come from crypto/sha1, crypto/sha512 and
// github.com/minio/sha256-simd. This package only selects among them.
package memory

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is one of the supported algorithms
	"crypto/sha512"
	"errors"
	"fmt"

	sha256 "github.com/minio/sha256-simd"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
	"github.com/sigstore/hashstr/pkg/hashing/digests"
	hashengines "github.com/sigstore/hashstr/pkg/hashing/engines"
)

// ErrUnknownAlgorithm is returned when an engine is requested for a value
// outside the closed set of algorithms.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

type transform func(data []byte) []byte

var transforms = map[algorithm.Algorithm]transform{
	algorithm.SHA1: func(data []byte) []byte {
		sum := sha1.Sum(data) //nolint:gosec
		return sum[:]
	},
	algorithm.SHA256: func(data []byte) []byte {
		sum := sha256.Sum256(data)
		return sum[:]
	},
	algorithm.SHA384: func(data []byte) []byte {
		sum := sha512.Sum384(data)
		return sum[:]
	},
	algorithm.SHA512: func(data []byte) []byte {
		sum := sha512.Sum512(data)
		return sum[:]
	},
}

func init() {
	for _, alg := range algorithm.All() {
		alg := alg
		hashengines.MustRegister(alg.String(), func() (hashengines.HashEngine, error) {
			return NewEngine(alg)
		})
	}
}

// DigestLength returns the digest size in bytes for alg: 20, 32, 48 or 64.
// It returns 0 for a value outside the supported set.
func DigestLength(alg algorithm.Algorithm) int {
	return alg.Size()
}

// ComputeDigest returns the raw digest of data under alg. The result always
// has DigestLength(alg) bytes. data may be nil or empty and is not retained.
// It returns nil for a value outside the supported set.
func ComputeDigest(alg algorithm.Algorithm, data []byte) []byte {
	t, ok := transforms[alg]
	if !ok {
		return nil
	}
	return t(data)
}

// Ensure Engine implements HashEngine at compile time.
var _ hashengines.HashEngine = Engine{}

// Engine computes digests under one algorithm chosen at construction.
//
// Engine is a small immutable value; copies share nothing mutable and may
// be used from any number of goroutines.
type Engine struct {
	alg algorithm.Algorithm
	fn  transform
}

// NewEngine returns an engine bound to alg.
func NewEngine(alg algorithm.Algorithm) (Engine, error) {
	fn, ok := transforms[alg]
	if !ok {
		return Engine{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
	return Engine{alg: alg, fn: fn}, nil
}

// MustNewEngine is like NewEngine but panics if alg is not supported.
func MustNewEngine(alg algorithm.Algorithm) Engine {
	e, err := NewEngine(alg)
	if err != nil {
		panic(err)
	}
	return e
}

// Algorithm returns the algorithm the engine is bound to.
func (e Engine) Algorithm() algorithm.Algorithm {
	return e.alg
}

// Sum returns the raw digest of data.
func (e Engine) Sum(data []byte) []byte {
	if e.fn == nil {
		return nil
	}
	return e.fn(data)
}

// Compute returns the digest of data as a digests.Digest.
func (e Engine) Compute(data []byte) (digests.Digest, error) {
	if e.fn == nil {
		return digests.Digest{}, ErrUnknownAlgorithm
	}
	return digests.NewDigest(e.alg.String(), e.fn(data)), nil
}

// DigestName returns the canonical algorithm name.
func (e Engine) DigestName() string {
	return e.alg.String()
}

// DigestSize returns the digest length in bytes.
func (e Engine) DigestSize() int {
	return e.alg.Size()
}
