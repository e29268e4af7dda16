// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Command avldemo exercises the avl package: it builds trees from the
// command line, replays scripted operations and runs a randomized insert and
// erase workload.
package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/cobra"
)

const logTag = "avldemo"

func main() {
	var (
		logDir   string
		logLevel string
		console  bool
		log      *logger.L
	)

	rootCmd := &cobra.Command{
		Use:           "avldemo",
		Short:         "Exercise the AVL ordered map",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			log, err = setupLogging(logDir, logLevel, console)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Finalise()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", os.TempDir(), "directory for the log file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error or critical")
	rootCmd.PersistentFlags().BoolVar(&console, "console", false, "echo log messages to the console")

	insertCmd := &cobra.Command{
		Use:   "insert KEY...",
		Short: "Insert integer keys in order and print the resulting tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInsert(cmd.OutOrStdout(), log, args)
		},
	}

	scriptCmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Run the operations listed in a YAML script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScript(args[0])
			if err != nil {
				return err
			}
			return s.run(cmd.OutOrStdout(), log)
		},
	}

	var bench benchConfig
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Insert and erase random keys, verifying the tree afterwards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench.run(cmd.OutOrStdout(), log)
		},
	}
	benchCmd.Flags().IntVar(&bench.n, "n", 100000, "number of keys")
	benchCmd.Flags().Int64Var(&bench.seed, "seed", 1, "random seed")
	benchCmd.Flags().BoolVar(&bench.progress, "progress", true, "show a progress bar")

	rootCmd.AddCommand(insertCmd, scriptCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "avldemo:", err)
		os.Exit(1)
	}
}
