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

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/sigstore/hashstr/cmd/hashstr/cli/options"
	"github.com/sigstore/hashstr/pkg/config"
	"github.com/sigstore/hashstr/pkg/hashstr"
	"github.com/sigstore/hashstr/pkg/logging"
	"github.com/sigstore/hashstr/pkg/tracing"
)

type input struct {
	label string
	data  []byte
}

// Digest creates the digest subcommand.
func Digest() *cobra.Command {
	o := &options.DigestOptions{}

	long := `Print the digest of each TEXT argument, one per line.

TEXT must be valid UTF-8. With --stdin, standard input is hashed as raw
bytes instead. When more than one TEXT is given each line also carries the
text it belongs to, in the style of sha256sum.`

	cmd := &cobra.Command{
		Use:   "digest [flags] [TEXT...]",
		Short: "Compute the digest of text.",
		Long:  long,
		Example: `  hashstr digest abc
  hashstr digest -a sha1 --tag hello world
  echo -n abc | hashstr digest --stdin -e base32`,
		Args: func(cmd *cobra.Command, args []string) error {
			if o.Stdin && len(args) > 0 {
				return fmt.Errorf("--stdin cannot be combined with TEXT arguments")
			}
			if !o.Stdin && len(args) == 0 {
				return fmt.Errorf("requires at least one TEXT argument or --stdin")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd.Context(), cmd, o, args)
		},
	}

	o.AddFlags(cmd)
	return cmd
}

func runDigest(ctx context.Context, cmd *cobra.Command, o *options.DigestOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := o.ToConfig()
	if err != nil {
		return err
	}
	alg, _ := cfg.Algorithm()

	logger := ro.NewLogger().WithFields(map[string]interface{}{
		"algorithm": alg.String(),
		"encoding":  cfg.Encoding(),
	})

	inputs, err := collectInputs(cmd.InOrStdin(), o.Stdin, args)
	if err != nil {
		return err
	}

	attrs := map[string]interface{}{
		"hashstr.algorithm": alg.String(),
		"hashstr.encoding":  cfg.Encoding(),
		"hashstr.inputs":    len(inputs),
	}
	prefix := ""
	if o.Tag {
		prefix = alg.String() + ":"
	}
	return tracing.Run(ctx, "Digest", attrs, func(context.Context) error {
		return writeDigests(cmd.OutOrStdout(), logger, cfg, prefix, inputs)
	})
}

func collectInputs(stdin io.Reader, useStdin bool, args []string) ([]input, error) {
	if useStdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return []input{{label: "-", data: data}}, nil
	}

	inputs := make([]input, 0, len(args))
	for i, arg := range args {
		data, err := hashstr.UTF8Bytes(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		inputs = append(inputs, input{label: arg, data: data})
	}
	return inputs, nil
}

// writeDigests prints one digest per input. prefix, when set, is the
// canonical algorithm name followed by a colon.
func writeDigests(w io.Writer, logger logging.Logger, cfg *config.DigestConfig, prefix string, inputs []input) error {
	for _, in := range inputs {
		logger.Debug("hashing %s", humanize.Bytes(uint64(len(in.data))))

		sum, err := cfg.Digest(in.data)
		if err != nil {
			return err
		}
		sum = prefix + sum

		if len(inputs) > 1 {
			_, err = fmt.Fprintf(w, "%s  %s\n", sum, in.label)
		} else {
			_, err = fmt.Fprintln(w, sum)
		}
		if err != nil {
			return fmt.Errorf("failed to write digest: %w", err)
		}
	}
	return nil
}
