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

// Package hashstr computes SHA digests of text and returns them as
// lowercase hexadecimal strings.
//
//	sum, err := hashstr.SHA256("abc")
//	// sum == "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
//
// Text must be valid UTF-8; anything else is rejected with an error
// matching ErrInvalidEncoding.
package hashstr

import (
	"unicode/utf8"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
	"github.com/sigstore/hashstr/pkg/hashing/digests"
	"github.com/sigstore/hashstr/pkg/hashing/engines/memory"
)

// SHA1 returns the hex-encoded SHA-1 digest of s.
func SHA1(s string) (string, error) { return Sum(algorithm.SHA1, s) }

// SHA256 returns the hex-encoded SHA-256 digest of s.
func SHA256(s string) (string, error) { return Sum(algorithm.SHA256, s) }

// SHA384 returns the hex-encoded SHA-384 digest of s.
func SHA384(s string) (string, error) { return Sum(algorithm.SHA384, s) }

// SHA512 returns the hex-encoded SHA-512 digest of s.
func SHA512(s string) (string, error) { return Sum(algorithm.SHA512, s) }

// Sum returns the hex-encoded digest of the UTF-8 bytes of s under alg.
func Sum(alg algorithm.Algorithm, s string) (string, error) {
	b, err := UTF8Bytes(s)
	if err != nil {
		return "", err
	}
	return SumBytes(alg, b)
}

// SumBytes returns the hex-encoded digest of b under alg. b is hashed as
// is, without any encoding check.
func SumBytes(alg algorithm.Algorithm, b []byte) (string, error) {
	e, err := memory.NewEngine(alg)
	if err != nil {
		return "", unknownAlgorithm(err)
	}
	return digests.FormatHex(e.Sum(b)), nil
}

// UTF8Bytes returns the bytes of s after checking that they form valid
// UTF-8. Go strings are already UTF-8 encoded, so no transcoding happens.
func UTF8Bytes(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, invalidEncoding(firstInvalid(s))
	}
	return []byte(s), nil
}

func firstInvalid(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return -1
}

// MustSHA1 is like SHA1 but panics on invalid input.
func MustSHA1(s string) string { return must(SHA1(s)) }

// MustSHA256 is like SHA256 but panics on invalid input.
func MustSHA256(s string) string { return must(SHA256(s)) }

// MustSHA384 is like SHA384 but panics on invalid input.
func MustSHA384(s string) string { return must(SHA384(s)) }

// MustSHA512 is like SHA512 but panics on invalid input.
func MustSHA512(s string) string { return must(SHA512(s)) }

func must(sum string, err error) string {
	if err != nil {
		panic(err)
	}
	return sum
}
