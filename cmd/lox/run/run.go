/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package run

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/cmd/lox/common"
)

const (
	ExitIO     = 1
	ExitSyntax = 65
)

var Command = &cobra.Command{
	Use:   "run <file>",
	Short: "Scan and parse a lox source file",
	Args:  cobra.ExactArgs(1),

	Run: func(cmd *cobra.Command, args []string) {
		File(args[0])
	},
}

// File runs the file at path, exiting with ExitSyntax when it fails to scan
// or parse.
func File(path string) {
	log := viper.Get("logger").(zerolog.Logger)
	d := common.NewDriver(log)

	err := d.RunFile(path)
	if d.HadError {
		os.Exit(ExitSyntax)
	}
	if err != nil {
		log.Error().Err(err).Msg("unable to run file")
		os.Exit(ExitIO)
	}
}
