/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

// SyntaxError is the common shape of every front end error: the line it was
// detected on, the span of the offending lexeme, and a message.
type SyntaxError struct {
	Line     int
	Location Location
	Message  string
}

func NewSyntaxError(line int, loc Location, m string) SyntaxError {
	return SyntaxError{Line: line, Location: loc, Message: m}
}

func (s SyntaxError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", s.Line, s.Message)
}

// FormatError renders the source line containing the error with a caret
// underneath the offending lexeme.
func (s SyntaxError) FormatError(input string) string {
	start := s.Location.Start
	if start > len(input) {
		start = len(input)
	}
	if start < 0 {
		start = 0
	}

	lineStart := strings.LastIndexByte(input[:start], '\n') + 1
	lineEnd := strings.IndexByte(input[start:], '\n')
	if lineEnd < 0 {
		lineEnd = len(input)
	} else {
		lineEnd += start
	}

	repeat := s.Location.End - start - 1
	if start+repeat >= lineEnd {
		repeat = lineEnd - start - 1
	}
	if repeat < 0 {
		repeat = 0
	}

	errorString := fmt.Sprintf("Syntax error on line %d:\n", s.Line)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}
