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

// Package hashengines defines the interface implemented by digest engines
// and a registry that creates engines by algorithm name.
package hashengines

import (
	"github.com/sigstore/hashstr/pkg/hashing/digests"
)

// HashEngine computes one-shot digests under a single fixed algorithm.
//
// Implementations hold no mutable state between calls and must be safe
// for concurrent use.
type HashEngine interface {
	// Compute returns the digest of data. data is neither retained nor
	// modified.
	Compute(data []byte) (digests.Digest, error)

	// DigestName returns the canonical algorithm name. It is copied into
	// the Algorithm field of every Digest returned by Compute.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by Compute.
	DigestSize() int
}
