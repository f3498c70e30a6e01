/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lox

import (
	"fmt"
	"os"

	"github.com/dburkart/lox/cmd/lox/common"
	"github.com/dburkart/lox/cmd/lox/prompt"
	"github.com/dburkart/lox/cmd/lox/run"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ExitUsage is returned when lox is invoked with too many arguments.
const ExitUsage = 32

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "lox [script]",
		Short: "Scan and parse lox expressions",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging()
			initLogLevel()
			initConfig(cmd.Root().PersistentFlags().Lookup("config").Value.String())
			initLogLevel()
			traceConfig()
		},
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			switch len(args) {
			case 0:
				prompt.Prompt()
			case 1:
				run.File(args[0])
			default:
				fmt.Fprintln(os.Stderr, "Usage: lox [script]")
				os.Exit(ExitUsage)
			}
		},
		Version: Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the lox config file (default ./config.toml)")

	// Bind viper config to the root flags
	viper.BindPFlag("lox.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("lox.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	// Flags shared by every command that runs source
	common.AddDriverFlags(rootCmd.PersistentFlags())

	rootCmd.SetVersionTemplate(fmt.Sprintf("lox version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	// Bind viper flags to ENV variables
	bindEnv(viper.GetViper())

	// Register commands on the root binary command
	run.Command.Version = rootCmd.Version
	prompt.Command.Version = rootCmd.Version
	rootCmd.AddCommand(run.Command)
	rootCmd.AddCommand(prompt.Command)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
