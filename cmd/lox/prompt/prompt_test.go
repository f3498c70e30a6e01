/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package prompt

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/dburkart/lox/pkg/driver"
	"github.com/dburkart/lox/pkg/repl"
)

type scriptedReader struct {
	results []*readline.Result
	reads   int
}

func (s *scriptedReader) Line() *readline.Result {
	s.reads++
	if len(s.results) == 0 {
		return &readline.Result{Error: io.EOF}
	}
	r := s.results[0]
	s.results = s.results[1:]
	return r
}

func lines(ls ...string) *scriptedReader {
	s := &scriptedReader{}
	for _, l := range ls {
		s.results = append(s.results, &readline.Result{Line: l})
	}
	return s
}

func newTestDriver() (*driver.Driver, *bytes.Buffer, *bytes.Buffer) {
	var out, diag bytes.Buffer
	d := driver.New(zerolog.Nop(), driver.NewMetricsStore(), repl.NewOutputWriter(&out, "csv"), &diag, driver.Options{ShowAST: true})
	return d, &out, &diag
}

func TestLoopRunsEachLine(t *testing.T) {
	d, out, diag := newTestDriver()

	loop(lines("1 + 2", "  ", "@", "nil"), d, zerolog.Nop())

	if got := strings.Count(out.String(), "node,value,line\n"); got != 2 {
		t.Errorf("expected 2 trees, got %d:\n%s", got, out.String())
	}
	if got := diag.String(); got != "[line 1] Error: unexpected character: @\n" {
		t.Errorf("unexpected diagnostics %q", got)
	}
	if d.HadError {
		t.Errorf("HadError should be reset by the line after the error")
	}
}

func TestLoopStopsAtExit(t *testing.T) {
	d, out, _ := newTestDriver()
	r := lines("exit", "true")

	loop(r, d, zerolog.Nop())

	if out.Len() != 0 {
		t.Errorf("nothing should run after exit, got %q", out.String())
	}
	if r.reads != 1 {
		t.Errorf("expected 1 read, got %d", r.reads)
	}
}

func TestLoopSkipsInterrupts(t *testing.T) {
	d, out, _ := newTestDriver()
	r := &scriptedReader{results: []*readline.Result{
		{Error: readline.ErrInterrupt},
		{Line: "false"},
	}}

	loop(r, d, zerolog.Nop())

	if !strings.Contains(out.String(), "PrimaryNode\",false,1") {
		t.Errorf("expected the line after an interrupt to run, got %q", out.String())
	}
	if r.reads != 3 {
		t.Errorf("expected to read until EOF, got %d reads", r.reads)
	}
}

func TestHandleLine(t *testing.T) {
	d, _, diag := newTestDriver()

	if handleLine(d, zerolog.Nop(), "") {
		t.Errorf("a blank line should not quit")
	}
	if !handleLine(d, zerolog.Nop(), "  exit \n") {
		t.Errorf("exit should quit")
	}

	if handleLine(d, zerolog.Nop(), "(1") {
		t.Errorf("an error should not quit")
	}
	if !d.HadError || diag.Len() == 0 {
		t.Errorf("expected the error to be reported")
	}
}

func TestFilterInputBlocksCtrlZ(t *testing.T) {
	if _, ok := filterInput(readline.CharCtrlZ); ok {
		t.Errorf("Ctrl-Z should be filtered")
	}
	if r, ok := filterInput('a'); !ok || r != 'a' {
		t.Errorf("regular runes should pass through")
	}
}
