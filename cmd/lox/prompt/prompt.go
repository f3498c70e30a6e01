/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package prompt

import (
	"strings"

	"github.com/adrg/xdg"
	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dburkart/lox/cmd/lox/common"
	"github.com/dburkart/lox/pkg/driver"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive prompt printing the syntax tree of each line",
	Args:  cobra.NoArgs,

	Run: func(cmd *cobra.Command, args []string) {
		Prompt()
	},
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// Prompt reads lines until exit or EOF, running each one as its own source
// unit. Errors are reported and the prompt carries on.
func Prompt() {
	log := viper.Get("logger").(zerolog.Logger).
		With().
		Str("session", uuid.NewString()).
		Logger()

	d := common.NewDriver(log)

	history, err := xdg.DataFile("lox/history")
	if err != nil {
		log.Warn().Err(err).Msg("unable to locate history file")
		history = ""
	}

	completer := readline.NewPrefixCompleter(
		readline.PcItem("exit"),
		readline.PcItem("nil"),
		readline.PcItem("true"),
		readline.PcItem("false"),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">> ",
		HistoryFile:     history,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("unable to start prompt")
	}
	defer rl.Close()

	log.Debug().Str("history", history).Msg("prompt started")

	loop(rl, d, log)
	rl.Clean()
}

// lineReader is the part of a readline instance the prompt loop needs.
type lineReader interface {
	Line() *readline.Result
}

// loop runs each line read from rl until exit or the end of input.
func loop(rl lineReader, d *driver.Driver, log zerolog.Logger) {
	for {
		ln := rl.Line()
		if ln.CanContinue() {
			continue
		} else if ln.CanBreak() {
			return
		}

		if quit := handleLine(d, log, ln.Line); quit {
			return
		}
	}
}

// handleLine runs one line as its own source unit and reports whether the
// prompt should quit. Blank lines are ignored.
func handleLine(d *driver.Driver, log zerolog.Logger, line string) bool {
	line = strings.TrimSpace(line)

	switch line {
	case "":
		return false
	case "exit":
		return true
	}

	d.HadError = false
	if err := d.Run(line); err != nil {
		log.Trace().Err(err).Msg("line failed")
	}
	return false
}
