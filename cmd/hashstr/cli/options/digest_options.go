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

package options

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sigstore/hashstr/pkg/config"
	"github.com/sigstore/hashstr/pkg/hashing/algorithm"
)

// DigestOptions holds the flags of the digest subcommand.
type DigestOptions struct {
	// Algorithm is the digest algorithm name.
	Algorithm string
	// Encoding selects how digests are printed.
	Encoding string
	// Stdin hashes standard input instead of arguments.
	Stdin bool
	// Tag prefixes each digest with "algorithm:".
	Tag bool
}

var _ Interface = (*DigestOptions)(nil)

// DefaultAlgorithm returns $HASHSTR_ALGORITHM, or "sha256" when unset.
func DefaultAlgorithm() string {
	return config.NewDigestConfig().FromEnv().AlgorithmName()
}

// AddFlags adds the digest flags to cmd.
func (o *DigestOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", DefaultAlgorithm(),
		"digest algorithm ("+strings.Join(algorithm.Names(), ", ")+"); defaults to $"+config.EnvAlgorithm)
	_ = cmd.RegisterFlagCompletionFunc("algorithm", cobra.FixedCompletions(algorithm.Names(), cobra.ShellCompDirectiveNoFileComp))

	cmd.Flags().StringVarP(&o.Encoding, "encoding", "e", config.EncodingHex,
		"output encoding ("+strings.Join(config.Encodings(), ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("encoding", cobra.FixedCompletions(config.Encodings(), cobra.ShellCompDirectiveNoFileComp))

	cmd.Flags().BoolVar(&o.Stdin, "stdin", false, "hash standard input instead of arguments")
	cmd.Flags().BoolVar(&o.Tag, "tag", false, "prefix each digest with the algorithm name")
}

// ToConfig converts the flags into a validated DigestConfig.
func (o *DigestOptions) ToConfig() (*config.DigestConfig, error) {
	cfg := config.NewDigestConfig().SetAlgorithm(o.Algorithm).SetEncoding(o.Encoding)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
