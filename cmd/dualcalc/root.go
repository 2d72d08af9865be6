// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by the subcommands once flags and environment
// have been read.
type app struct {
	cfg Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var verbose bool

	root := &cobra.Command{
		Use:           "dualcalc",
		Short:         "Evaluate elementary functions with exact derivatives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			log, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = log
			log.Debug("configuration loaded",
				zap.Int("precision", cfg.Precision),
				zap.Bool("check", cfg.Check),
				zap.String("logLevel", cfg.LogLevel))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug diagnostics to stderr")

	root.AddCommand(newEvalCommand(a), newFuncsCommand())
	return root
}

func newFuncsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs",
		Short: "List the function names accepted by eval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range functionNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
