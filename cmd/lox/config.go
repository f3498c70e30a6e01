/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lox

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// configPaths are searched in order for a config.toml.
var configPaths = []string{
	"config",
	"/etc/lox",
	"/usr/local/etc/lox",
	"$HOME/.lox",
	".",
}

// logLevels is indexed by the -v count.
var logLevels = []zerolog.Level{
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

// bindEnv lets every key be overridden from the environment, with dots and
// dashes turned into underscores: lox.prom-port is read from LOX_PROM_PORT.
func bindEnv(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// readConfig merges the first config file found into v. A missing file is
// not an error.
func readConfig(v *viper.Viper, log zerolog.Logger, configFile string) error {
	v.SetConfigType("toml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using defaults as a base")
		return nil
	} else if err != nil {
		return err
	}

	log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config from file")
	return nil
}

func levelFor(verbose int) zerolog.Level {
	if verbose < 0 {
		verbose = 0
	}
	return logLevels[clamp(len(logLevels)-1, verbose)]
}

// newLogger writes JSON lines to w, or readable lines when local is set.
func newLogger(w io.Writer, local bool) zerolog.Logger {
	if local {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()
}

// initLogging stores the root logger under "logger". Logs go to stderr so
// they never interleave with tables on stdout.
func initLogging() {
	viper.Set("logger", newLogger(os.Stderr, viper.GetBool("lox.local")))
}

func initLogLevel() {
	zerolog.SetGlobalLevel(levelFor(viper.GetInt("lox.verbose")))
}

func initConfig(configFile string) {
	log := viper.Get("logger").(zerolog.Logger)

	if err := readConfig(viper.GetViper(), log, configFile); err != nil {
		log.Error().Err(err).Msg("Error loading config file")
	}
}

func traceConfig() {
	log := viper.Get("logger").(zerolog.Logger)

	for _, v := range viper.AllKeys() {
		if v == "logger" {
			continue
		}
		log.Trace().Msgf("%s=%v", v, viper.Get(v))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
