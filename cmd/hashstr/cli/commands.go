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

// Package cli implements the hashstr command line.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/sigstore/hashstr/cmd/hashstr/cli/options"
)

var (
	ro = &options.RootOptions{}

	// output is the --output-file handle, open between PersistentPreRunE
	// and closeOutput.
	output *os.File
)

// Execute builds the root command and runs it.
func Execute() error {
	return run(New())
}

// run executes cmd and then releases --output-file. cobra skips
// PersistentPostRun when a command fails, so the file is closed here on
// every path, and removed when the command returned an error.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if cerr := closeOutput(err != nil); cerr != nil && err == nil {
		err = fmt.Errorf("error closing output file: %w", cerr)
	}
	return err
}

func closeOutput(remove bool) error {
	if output == nil {
		return nil
	}
	f := output
	output = nil

	err := f.Close()
	if remove {
		if rerr := os.Remove(f.Name()); rerr != nil && err == nil {
			err = rerr
		}
	}
	return err
}

// New returns the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hashstr",
		Short:             "Compute SHA digests of text.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if ro.OutputFile != "" {
				f, err := os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				output = f
				cmd.SetOut(f)
			}
			return nil
		},
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Digest())
	cmd.AddCommand(Algorithms())
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
