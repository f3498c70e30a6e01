/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "testing"

func TestSyntaxErrorReport(t *testing.T) {
	err := NewSyntaxError(3, Location{Start: 0, End: 1}, "unexpected token: )")
	if err.Error() != "[line 3] Error: unexpected token: )" {
		t.Errorf("unexpected report %q", err.Error())
	}
}

func TestFormatError(t *testing.T) {
	input := "1 +\n  @ 2"
	err := NewSyntaxError(2, Location{Start: 6, End: 7}, "unexpected character: @")

	want := "Syntax error on line 2:\n  @ 2\n  ^ unexpected character: @\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}

	input = "(1 + 22"
	err = NewSyntaxError(1, Location{Start: 5, End: 7}, "expected ')' after expression")

	want = "Syntax error on line 1:\n(1 + 22\n     ^~ expected ')' after expression\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestFormatErrorClampsToLine(t *testing.T) {
	input := "\"abc\nnext"
	err := NewSyntaxError(1, Location{Start: 0, End: 9}, "unterminated string")

	want := "Syntax error on line 1:\n\"abc\n^~~~ unterminated string\n"
	if got := err.FormatError(input); got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}
