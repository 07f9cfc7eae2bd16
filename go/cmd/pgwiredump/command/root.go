// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package command implements the pgwiredump CLI.
package command

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pgwirekit/pgwire/go/pgwire/typemap"
)

// Root creates the pgwiredump root command.
func Root() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "pgwiredump",
		Short: "Decode captured PostgreSQL backend wire traffic",
		Long: `pgwiredump reads a capture of the byte stream a PostgreSQL server sent
to a client, frames it into protocol messages, and prints one record per
message. It decodes row descriptions, data rows, command completion tags,
and error responses; other messages are shown with their tag and size.

The capture must start on a message boundary and contain backend traffic
only. pgwiredump opens no sockets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags: %w", err)
			}

			d := &Dumper{
				FS:     afero.NewOsFs(),
				Out:    cmd.OutOrStdout(),
				Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
				Codec:  Lenient(typemap.New()),
				Format: v.GetString("output"),
			}
			return d.Run(v.GetString("input"), v.GetBool("hex"))
		},
	}

	registerFlags(root.Flags())

	v.SetEnvPrefix("PGWIREDUMP")
	v.AutomaticEnv()

	return root
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringP("input", "i", "-", "Capture file to decode, or - for stdin")
	fs.StringP("output", "o", "text", "Output format: text, json, or yaml")
	fs.Bool("hex", false, "Treat the input as hex-encoded (whitespace ignored)")
}
