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

// Package config holds the settings that control how text is digested and
// how the result is rendered.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/multiformats/go-multibase"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
	"github.com/sigstore/hashstr/pkg/hashing/digests"
	hashengines "github.com/sigstore/hashstr/pkg/hashing/engines"
	_ "github.com/sigstore/hashstr/pkg/hashing/engines/memory" // registers the SHA engines
)

// EnvAlgorithm names the environment variable read by FromEnv.
const EnvAlgorithm = "HASHSTR_ALGORITHM"

// Output encodings accepted by SetEncoding.
const (
	EncodingHex       = "hex"
	EncodingMultihash = "multihash"
	EncodingBase32    = "base32"
	EncodingBase58BTC = "base58btc"
	EncodingBase64    = "base64"
)

var multibaseEncodings = map[string]multibase.Encoding{
	EncodingBase32:    multibase.Base32,
	EncodingBase58BTC: multibase.Base58BTC,
	EncodingBase64:    multibase.Base64,
}

// Encodings returns every accepted encoding name, sorted.
func Encodings() []string {
	names := []string{EncodingHex, EncodingMultihash}
	for name := range multibaseEncodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DigestConfig selects a digest algorithm and an output encoding.
type DigestConfig struct {
	// Algorithm name as given by the caller, e.g. "sha256" or "SHA-256".
	algorithm string

	// Output encoding, one of the Encoding* constants.
	encoding string
}

// NewDigestConfig returns a configuration using sha256 and hex output.
func NewDigestConfig() *DigestConfig {
	return &DigestConfig{
		algorithm: algorithm.SHA256.String(),
		encoding:  EncodingHex,
	}
}

// SetAlgorithm sets the digest algorithm by name.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetAlgorithm(name string) *DigestConfig {
	c.algorithm = name
	return c
}

// SetEncoding sets the output encoding.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) SetEncoding(name string) *DigestConfig {
	c.encoding = strings.ToLower(strings.TrimSpace(name))
	return c
}

// FromEnv overrides the algorithm with $HASHSTR_ALGORITHM when it is set.
//
// Returns the DigestConfig for method chaining.
func (c *DigestConfig) FromEnv() *DigestConfig {
	if v, ok := os.LookupEnv(EnvAlgorithm); ok && strings.TrimSpace(v) != "" {
		c.algorithm = v
	}
	return c
}

// Algorithm resolves the configured algorithm name.
func (c *DigestConfig) Algorithm() (algorithm.Algorithm, error) {
	return algorithm.Parse(c.algorithm)
}

// AlgorithmName returns the algorithm name as configured, unparsed.
func (c *DigestConfig) AlgorithmName() string {
	return c.algorithm
}

// Encoding returns the configured output encoding.
func (c *DigestConfig) Encoding() string {
	return c.encoding
}

// Validate checks that both the algorithm and the encoding are supported.
func (c *DigestConfig) Validate() error {
	if _, err := c.Algorithm(); err != nil {
		return err
	}
	switch c.encoding {
	case EncodingHex, EncodingMultihash:
		return nil
	}
	if _, ok := multibaseEncodings[c.encoding]; !ok {
		return fmt.Errorf("unsupported encoding: %q (supported: %v)", c.encoding, Encodings())
	}
	return nil
}

// Digest computes the digest of data with the configured algorithm and
// renders it with the configured encoding.
func (c *DigestConfig) Digest(data []byte) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	alg, _ := c.Algorithm()
	engine, err := hashengines.Create(alg.String())
	if err != nil {
		return "", err
	}

	d, err := engine.Compute(data)
	if err != nil {
		return "", fmt.Errorf("failed to compute %s digest: %w", alg, err)
	}

	return c.Render(d)
}

// Render formats d with the configured encoding.
func (c *DigestConfig) Render(d digests.Digest) (string, error) {
	switch c.encoding {
	case EncodingHex:
		return d.Hex(), nil
	case EncodingMultihash:
		mh, err := d.Multihash()
		if err != nil {
			return "", err
		}
		return mh.B58String(), nil
	}

	enc, ok := multibaseEncodings[c.encoding]
	if !ok {
		return "", fmt.Errorf("unsupported encoding: %q", c.encoding)
	}
	return d.Multibase(enc)
}
