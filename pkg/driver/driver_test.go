/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/dburkart/lox/pkg/lang/parser"
	"github.com/dburkart/lox/pkg/lang/scanner"
	"github.com/dburkart/lox/pkg/repl"
)

func newTestDriver(options Options) (*Driver, *metricsStore, *bytes.Buffer, *bytes.Buffer) {
	var out, diag bytes.Buffer
	ms := NewMetricsStore().(*metricsStore)
	d := New(zerolog.Nop(), ms, repl.NewOutputWriter(&out, "csv"), &diag, options)
	return d, ms, &out, &diag
}

func TestRunSuccess(t *testing.T) {
	d, ms, out, diag := newTestDriver(Options{})

	if err := d.Run("1 + 2 * 3"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if d.HadError {
		t.Errorf("HadError should not be set after a clean run")
	}
	if out.Len() != 0 || diag.Len() != 0 {
		t.Errorf("expected no output, got out=%q diag=%q", out.String(), diag.String())
	}

	if v := testutil.ToFloat64(ms.Scans.With(prometheus.Labels{ResultLabel: "ok"})); v != 1 {
		t.Errorf("expected 1 successful scan, got %v", v)
	}
	if v := testutil.ToFloat64(ms.Parses.With(prometheus.Labels{ResultLabel: "ok"})); v != 1 {
		t.Errorf("expected 1 successful parse, got %v", v)
	}
	if v := testutil.ToFloat64(ms.Tokens); v != 5 {
		t.Errorf("expected 5 tokens, got %v", v)
	}
}

func TestRunShowsTokensAndTree(t *testing.T) {
	d, _, out, _ := newTestDriver(Options{ShowTokens: true, ShowAST: true})

	if err := d.Run("!true"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	want := "kind,lexeme,line\n" +
		"TOK_BANG,!,1\n" +
		"TOK_TRUE,true,1\n" +
		"node,value,line\n" +
		"ExpressionNode,,1\n" +
		"\"  UnaryNode\",!,1\n" +
		"\"    PrimaryNode\",true,1\n"
	if out.String() != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, out.String())
	}
}

func TestRunReportsScanError(t *testing.T) {
	d, ms, out, diag := newTestDriver(Options{ShowTokens: true})

	err := d.Run("1 +\n\"open")
	var scanErr *scanner.ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected a scan error, got %v", err)
	}
	if !d.HadError {
		t.Errorf("HadError should be set")
	}
	if got := diag.String(); got != "[line 2] Error: unterminated string\n" {
		t.Errorf("unexpected diagnostic %q", got)
	}
	if out.Len() != 0 {
		t.Errorf("no tokens should be printed on a scan error, got %q", out.String())
	}

	if v := testutil.ToFloat64(ms.Scans.With(prometheus.Labels{ResultLabel: "error"})); v != 1 {
		t.Errorf("expected 1 failed scan, got %v", v)
	}
	if v := testutil.CollectAndCount(ms.Parses); v != 0 {
		t.Errorf("parser should not run after a scan error, got %d series", v)
	}
}

func TestRunReportsParseError(t *testing.T) {
	d, ms, _, diag := newTestDriver(Options{})

	err := d.Run("(1 + 2")
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if got := diag.String(); got != "[line 1] Error: expected ')' after expression\n" {
		t.Errorf("unexpected diagnostic %q", got)
	}
	if v := testutil.ToFloat64(ms.Parses.With(prometheus.Labels{ResultLabel: "error"})); v != 1 {
		t.Errorf("expected 1 failed parse, got %v", v)
	}
}

func TestHadErrorPersists(t *testing.T) {
	d, _, _, _ := newTestDriver(Options{})

	d.Run("@")
	if err := d.Run("nil"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !d.HadError {
		t.Errorf("HadError should stay set until reset by the caller")
	}
}

func TestRunFile(t *testing.T) {
	d, _, out, _ := newTestDriver(Options{ShowAST: true})

	path := filepath.Join(t.TempDir(), "expr.lox")
	if err := os.WriteFile(path, []byte("// comment\n\"a\" == \"b\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := d.RunFile(path); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// csv quotes the indented node names
	if !strings.Contains(out.String(), "\"  EqualityNode\",==,2\n") {
		t.Errorf("expected the equality on line 2, got:\n%s", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	d, _, _, diag := newTestDriver(Options{})

	path := filepath.Join(t.TempDir(), "missing.lox")
	err := d.RunFile(path)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("expected the cause to be a not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected the error to name the file, got %v", err)
	}
	if d.HadError || diag.Len() != 0 {
		t.Errorf("I/O errors are not syntax errors")
	}
}

func TestReportOtherError(t *testing.T) {
	d, _, _, diag := newTestDriver(Options{})

	d.Report("", os.ErrClosed)
	if got := diag.String(); got != "Error: "+os.ErrClosed.Error()+"\n" {
		t.Errorf("unexpected diagnostic %q", got)
	}
	if !d.HadError {
		t.Errorf("HadError should be set")
	}
}
