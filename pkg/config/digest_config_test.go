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

package config

import (
	"testing"

	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
)

func TestNewDigestConfig_Defaults(t *testing.T) {
	cfg := NewDigestConfig()

	alg, err := cfg.Algorithm()
	if err != nil {
		t.Fatalf("Algorithm() error = %v", err)
	}
	if alg != algorithm.SHA256 {
		t.Errorf("default algorithm = %v, want sha256", alg)
	}
	if cfg.Encoding() != EncodingHex {
		t.Errorf("default encoding = %q, want %q", cfg.Encoding(), EncodingHex)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDigestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		encoding  string
		wantErr   bool
	}{
		{"sha1 hex", "sha1", "hex", false},
		{"dashed name", "SHA-384", "base32", false},
		{"multihash", "sha512", "multihash", false},
		{"padded encoding", "sha256", " Base64 ", false},
		{"bad algorithm", "md5", "hex", true},
		{"bad encoding", "sha256", "base2", true},
		{"empty encoding", "sha256", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDigestConfig().SetAlgorithm(tt.algorithm).SetEncoding(tt.encoding).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDigestConfig_Digest(t *testing.T) {
	tests := []struct {
		encoding string
		want     string
	}{
		{EncodingHex, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{EncodingMultihash, "QmatYkNGZnELf8cAGdyJpUca2PyY4szai3RHyyWofNY1pY"},
		{EncodingBase58BTC, "zQmatYkNGZnELf8cAGdyJpUca2PyY4szai3RHyyWofNY1pY"},
		{EncodingBase32, "bciqlu6awx6hqdt7kifaubxs5vyrchmadmgrzmf32ts2bb73b6iablli"},
		{EncodingBase64, "mEiC6eBa/jwHP6kFBQN5driIjsANho5YXepy0EP9h8gAVrQ"},
	}

	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			got, err := NewDigestConfig().SetEncoding(tt.encoding).Digest([]byte("abc"))
			if err != nil {
				t.Fatalf("Digest() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Digest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDigestConfig_DigestInvalid(t *testing.T) {
	if _, err := NewDigestConfig().SetAlgorithm("crc32").Digest(nil); err == nil {
		t.Error("Digest() should fail for an unsupported algorithm")
	}
}

func TestDigestConfig_FromEnv(t *testing.T) {
	t.Setenv(EnvAlgorithm, "sha512")

	alg, err := NewDigestConfig().FromEnv().Algorithm()
	if err != nil {
		t.Fatalf("Algorithm() error = %v", err)
	}
	if alg != algorithm.SHA512 {
		t.Errorf("Algorithm() = %v, want sha512", alg)
	}

	t.Setenv(EnvAlgorithm, "")
	alg, _ = NewDigestConfig().SetAlgorithm("sha1").FromEnv().Algorithm()
	if alg != algorithm.SHA1 {
		t.Errorf("empty env should not override, got %v", alg)
	}
}

func TestEncodings(t *testing.T) {
	got := Encodings()
	want := []string{"base32", "base58btc", "base64", "hex", "multihash"}
	if len(got) != len(want) {
		t.Fatalf("Encodings() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Encodings()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
