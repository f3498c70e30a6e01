/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package common

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/pkg/driver"
	"github.com/dburkart/lox/pkg/repl"
)

// AddDriverFlags registers the flags controlling what a Driver prints, and
// binds them to viper.
func AddDriverFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "text", "Output format of tables ["+strings.Join(repl.Formats, ", ")+"]")
	flags.Bool("tokens", false, "Print the tokens of each source unit")
	flags.Bool("ast", true, "Print the syntax tree of each source unit")
	flags.Int("prom-port", 0, "Serve prometheus metrics on this port (0 disables)")

	viper.BindPFlag("lox.output", flags.Lookup("output"))
	viper.BindPFlag("lox.tokens", flags.Lookup("tokens"))
	viper.BindPFlag("lox.ast", flags.Lookup("ast"))
	viper.BindPFlag("lox.prom-port", flags.Lookup("prom-port"))
}

// NewDriver builds a Driver from the current viper configuration, starting
// the metrics endpoint when one is configured.
func NewDriver(log zerolog.Logger) *driver.Driver {
	output := viper.GetString("lox.output")
	if !validFormat(output) {
		log.Fatal().Str("output", output).Msg("unsupported output format")
	}

	metrics := driver.NewMetricsStore()
	if port := viper.GetInt("lox.prom-port"); port > 0 {
		go func() {
			if err := driver.ServeMetrics(log, metrics, port); err != nil {
				log.Error().Err(err).Msg("metrics endpoint stopped")
			}
		}()
	}

	options := driver.Options{
		ShowTokens: viper.GetBool("lox.tokens"),
		ShowAST:    viper.GetBool("lox.ast"),
	}

	return driver.New(log, metrics, repl.NewOutputWriter(os.Stdout, output), os.Stderr, options)
}

func validFormat(format string) bool {
	for _, f := range repl.Formats {
		if f == format {
			return true
		}
	}
	return false
}
