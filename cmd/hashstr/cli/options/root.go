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
	"github.com/spf13/cobra"

	"github.com/sigstore/hashstr/pkg/logging"
)

// EnvPrefix prefixes every environment variable read by the command.
const EnvPrefix = "HASHSTR"

// Interface is implemented by every option group.
type Interface interface {
	AddFlags(cmd *cobra.Command)
}

// RootOptions holds the persistent flags shared by all subcommands.
type RootOptions struct {
	// OutputFile redirects command output to a file instead of stdout.
	OutputFile string
	// LogLevel sets the minimum log level (debug, info, warn, error, silent).
	LogLevel string
	// LogFormat sets the log output format (text, json).
	LogFormat string
}

var ValidLogLevels = []string{"debug", "info", "warn", "error", "silent"}

var ValidLogFormats = []string{"text", "json"}

var _ Interface = (*RootOptions)(nil)

// AddFlags adds the persistent root flags to cmd.
func (o *RootOptions) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.OutputFile, "output-file", "",
		"write output to a file instead of stdout")
	_ = cmd.MarkPersistentFlagFilename("output-file", "txt", "out")

	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "warn",
		"set the minimum log level (debug, info, warn, error, silent)")
	_ = cmd.RegisterFlagCompletionFunc("log-level", cobra.FixedCompletions(ValidLogLevels, cobra.ShellCompDirectiveNoFileComp))

	cmd.PersistentFlags().StringVar(&o.LogFormat, "log-format", "text",
		"set the log output format (text, json)")
	_ = cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions(ValidLogFormats, cobra.ShellCompDirectiveNoFileComp))
}

// GetLogLevel parses the --log-level flag.
func (o *RootOptions) GetLogLevel() logging.LogLevel {
	return logging.ParseLogLevel(o.LogLevel)
}

// GetLogFormat parses the --log-format flag.
func (o *RootOptions) GetLogFormat() logging.LogFormat {
	return logging.ParseLogFormat(o.LogFormat)
}

// NewLogger builds a logger from the flags. Logs go to stderr so they never
// mix with digests on stdout.
func (o *RootOptions) NewLogger() logging.Logger {
	return logging.NewLoggerWithOptions(logging.LoggerOptions{
		Level:     o.GetLogLevel(),
		Format:    o.GetLogFormat(),
		ShowLevel: true,
	})
}
