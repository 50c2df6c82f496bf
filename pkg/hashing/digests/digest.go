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

// Package digests provides the value type returned by digest engines and
// the formatters that render it as text.
package digests

import (
	"bytes"
	"fmt"

	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
)

// Digest is a computed digest together with the name of the algorithm that
// produced it.
//
// Fields are unexported and the byte slice is copied on the way in and on
// the way out, so a Digest can be shared between goroutines freely.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the named algorithm. value is copied.
func NewDigest(algorithm string, value []byte) Digest {
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	return Digest{
		algorithm: algorithm,
		value:     valueCopy,
	}
}

// Algorithm returns the canonical algorithm name, e.g. "sha256".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	valueCopy := make([]byte, len(d.value))
	copy(valueCopy, d.value)
	return valueCopy
}

// Size returns the digest length in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// Hex returns the digest as lowercase hexadecimal.
func (d Digest) Hex() string {
	return FormatHex(d.value)
}

// String returns "algorithm:hex", e.g. "sha1:da39a3ee...".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}

// Equal reports whether both digests name the same algorithm and hold the
// same bytes.
func (d Digest) Equal(other Digest) bool {
	return d.algorithm == other.algorithm && bytes.Equal(d.value, other.value)
}

// Multihash returns the self-describing multihash encoding of the digest.
func (d Digest) Multihash() (multihash.Multihash, error) {
	alg, err := algorithm.Parse(d.algorithm)
	if err != nil {
		return nil, fmt.Errorf("no multihash code for digest: %w", err)
	}
	if len(d.value) != alg.Size() {
		return nil, fmt.Errorf("%s digest has %d bytes, want %d", alg, len(d.value), alg.Size())
	}

	mh, err := multihash.Encode(d.value, alg.MultihashCode())
	if err != nil {
		return nil, fmt.Errorf("failed to encode multihash: %w", err)
	}
	return multihash.Multihash(mh), nil
}

// Multibase returns the multihash encoding of the digest rendered with the
// given multibase encoding, prefix character included.
func (d Digest) Multibase(enc multibase.Encoding) (string, error) {
	mh, err := d.Multihash()
	if err != nil {
		return "", err
	}

	s, err := multibase.Encode(enc, mh)
	if err != nil {
		return "", fmt.Errorf("failed to encode multibase: %w", err)
	}
	return s, nil
}

// FromMultihash decodes a multihash produced by Digest.Multihash.
func FromMultihash(mh []byte) (Digest, error) {
	decoded, err := multihash.Decode(mh)
	if err != nil {
		return Digest{}, fmt.Errorf("failed to decode multihash: %w", err)
	}

	alg, ok := algorithm.FromMultihashCode(decoded.Code)
	if !ok {
		return Digest{}, fmt.Errorf("unsupported multihash code %#x", decoded.Code)
	}
	return NewDigest(alg.String(), decoded.Digest), nil
}
