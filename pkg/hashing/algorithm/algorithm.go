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

// Package algorithm defines the closed set of digest algorithms supported
// by hashstr and the static properties of each one.
package algorithm

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the supported SHA digest variants.
//
// The set is closed: only the constants below are valid. The zero value is
// not a valid algorithm.
type Algorithm uint8

const (
	// SHA1 selects SHA-1 (FIPS 180-4 section 6.1), 20-byte digests.
	SHA1 Algorithm = iota + 1
	// SHA256 selects SHA-256 (FIPS 180-4 section 6.2), 32-byte digests.
	SHA256
	// SHA384 selects SHA-384 (FIPS 180-4 section 6.5), 48-byte digests.
	SHA384
	// SHA512 selects SHA-512 (FIPS 180-4 section 6.4), 64-byte digests.
	SHA512
)

// Digest sizes in bytes.
const (
	SHA1Size   = 20
	SHA256Size = 32
	SHA384Size = 48
	SHA512Size = 64
)

// Multihash codes, from the multicodec table.
const (
	SHA1Code   uint64 = 0x11
	SHA256Code uint64 = 0x12
	SHA384Code uint64 = 0x20
	SHA512Code uint64 = 0x13
)

type properties struct {
	name string
	size int
	code uint64
}

var table = map[Algorithm]properties{
	SHA1:   {name: "sha1", size: SHA1Size, code: SHA1Code},
	SHA256: {name: "sha256", size: SHA256Size, code: SHA256Code},
	SHA384: {name: "sha384", size: SHA384Size, code: SHA384Code},
	SHA512: {name: "sha512", size: SHA512Size, code: SHA512Code},
}

// aliases maps accepted spellings to algorithms. Keys are lower case.
var aliases = map[string]Algorithm{
	"sha1":     SHA1,
	"sha-1":    SHA1,
	"sha256":   SHA256,
	"sha-256":  SHA256,
	"sha2-256": SHA256,
	"sha384":   SHA384,
	"sha-384":  SHA384,
	"sha2-384": SHA384,
	"sha512":   SHA512,
	"sha-512":  SHA512,
	"sha2-512": SHA512,
}

// All returns every supported algorithm in ascending digest size.
func All() []Algorithm {
	return []Algorithm{SHA1, SHA256, SHA384, SHA512}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := table[a]
	return ok
}

// String returns the canonical lower-case name, e.g. "sha256".
func (a Algorithm) String() string {
	if p, ok := table[a]; ok {
		return p.name
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

// Size returns the digest length in bytes, or 0 for an invalid algorithm.
func (a Algorithm) Size() int {
	return table[a].size
}

// MultihashCode returns the multicodec code of the algorithm, or 0 for an
// invalid algorithm.
func (a Algorithm) MultihashCode() uint64 {
	return table[a].code
}

// Parse returns the algorithm for name. Matching is case-insensitive and
// accepts "sha256", "sha-256" and "sha2-256" style spellings.
func Parse(name string) (Algorithm, error) {
	a, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unsupported digest algorithm: %q (supported: %v)", name, Names())
	}
	return a, nil
}

// Names returns the canonical names of all supported algorithms.
func Names() []string {
	all := All()
	names := make([]string, 0, len(all))
	for _, a := range all {
		names = append(names, a.String())
	}
	return names
}

// FromMultihashCode returns the algorithm with the given multicodec code.
func FromMultihashCode(code uint64) (Algorithm, bool) {
	for a, p := range table {
		if p.code == code {
			return a, true
		}
	}
	return 0, false
}
