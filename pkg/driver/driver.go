/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package driver

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lang/ast"
	"github.com/dburkart/lox/pkg/lang/parser"
	"github.com/dburkart/lox/pkg/lang/scanner"
	"github.com/dburkart/lox/pkg/repl"
)

type Options struct {
	ShowTokens bool
	ShowAST    bool
}

// Driver feeds source units through the scanner and parser, printing the
// results and reporting errors.
type Driver struct {
	log     zerolog.Logger
	metrics MetricsStore
	out     repl.OutputWriter
	diag    io.Writer
	options Options

	// HadError is set once any source unit failed to scan or parse.
	HadError bool
}

func New(log zerolog.Logger, metrics MetricsStore, out repl.OutputWriter, diag io.Writer, options Options) *Driver {
	return &Driver{
		log:     log,
		metrics: metrics,
		out:     out,
		diag:    diag,
		options: options,
	}
}

// Run scans and parses one source unit. Scan and parse errors are reported
// to the diagnostic writer before being returned.
func (d *Driver) Run(source string) error {
	start := time.Now()
	tokens, err := scanner.Scan(source)
	elapsed := time.Since(start)
	d.metrics.ObserveScan(elapsed, len(tokens), err)
	if err != nil {
		d.Report(source, err)
		return err
	}

	d.log.Debug().
		Str("size", humanize.Bytes(uint64(len(source)))).
		Str("tokens", humanize.Comma(int64(len(tokens)))).
		Dur("elapsed", elapsed).
		Msg("scanned source")

	if d.options.ShowTokens {
		if err := d.out.Write(repl.TokenTable(tokens)); err != nil {
			d.log.Error().Err(err).Msg("unable to write tokens")
		}
	}

	start = time.Now()
	tree, err := parser.Parse(tokens)
	elapsed = time.Since(start)
	d.metrics.ObserveParse(elapsed, err)
	if err != nil {
		d.Report(source, err)
		return err
	}

	stats := ast.Measure(tree)
	d.log.Debug().
		Int("nodes", stats.Nodes).
		Int("depth", stats.MaxDepth).
		Dur("elapsed", elapsed).
		Msg("parsed expression")

	if d.options.ShowAST {
		if err := d.out.Write(repl.NewNodeTable(tree)); err != nil {
			d.log.Error().Err(err).Msg("unable to write syntax tree")
		}
	}

	return nil
}

// RunFile runs the contents of the file at path as one source unit.
func (d *Driver) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "unable to read %s", path)
	}

	d.log.Debug().Str("file", path).Str("size", humanize.Bytes(uint64(len(source)))).Msg("running file")

	return d.Run(string(source))
}

// Report writes err to the diagnostic writer as "[line N] Error: message".
func (d *Driver) Report(source string, err error) {
	d.HadError = true

	var syntaxError parse.SyntaxError
	stage := "unknown"

	var scanErr *scanner.ScanError
	var parseErr *parser.ParseError
	switch {
	case errors.As(err, &scanErr):
		syntaxError, stage = scanErr.SyntaxError, "scan"
	case errors.As(err, &parseErr):
		syntaxError, stage = parseErr.SyntaxError, "parse"
	default:
		fmt.Fprintf(d.diag, "Error: %s\n", err)
		return
	}

	fmt.Fprintln(d.diag, syntaxError.Error())

	d.log.Debug().
		Str("stage", stage).
		Int("line", syntaxError.Line).
		Msg(syntaxError.FormatError(source))
}
