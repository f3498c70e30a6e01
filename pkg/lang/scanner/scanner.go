/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dburkart/lox/pkg/common/parse"
)

// ScanError is returned for malformed lexical input. Scanning stops at the
// first one.
type ScanError struct {
	parse.SyntaxError
}

type Scanner struct {
	Input string
	Start int
	Pos   int
	Line  int
}

func NewScanner(input string) *Scanner {
	return &Scanner{Input: input, Line: 1}
}

// Scan converts input into its full token sequence. On error no tokens are
// returned.
func Scan(input string) ([]Token, error) {
	s := NewScanner(input)
	tokens := []Token{}

	for {
		tok, err := s.Emit()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TOK_EOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

var punctuation = map[rune]TokenKind{
	'(': TOK_PAREN_L,
	')': TOK_PAREN_R,
	'{': TOK_CURLY_L,
	'}': TOK_CURLY_R,
	';': TOK_SEMICOLON,
	',': TOK_COMMA,
	'.': TOK_DOT,
	'+': TOK_PLUS,
	'-': TOK_MINUS,
	'*': TOK_STAR,
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func matchDigits(input string) int {
	i := 0
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	return i
}

// MatchIdentifier returns the length of the next token, assuming it is an
// identifier or keyword.
//
// Grammar:
//
//	identifier      = ( ALPHA / "_" ) *( ALPHA / DIGIT / "_" )
func (s *Scanner) MatchIdentifier() int {
	r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
	if !isAlpha(r) {
		return 0
	}

	size := 0
	for isAlpha(r) || unicode.IsDigit(r) {
		size += width
		r, width = utf8.DecodeRuneInString(s.Input[s.Pos+size:])
	}

	return size
}

// MatchNumber returns the length of the next token, assuming it is a
// number. The fractional part is only taken when a digit follows the dot.
//
// Grammar:
//
//	number          = 1*DIGIT [ "." 1*DIGIT ]
func (s *Scanner) MatchNumber() int {
	size := matchDigits(s.Input[s.Pos:])
	if size == 0 {
		return 0
	}

	if s.Pos+size < len(s.Input) && s.Input[s.Pos+size] == '.' {
		if fraction := matchDigits(s.Input[s.Pos+size+1:]); fraction > 0 {
			size += fraction + 1
		}
	}

	return size
}

// MatchString returns the length of the next token including both quotes,
// or 0 if the string is not terminated on the same line.
//
// Grammar:
//
//	string          = DQUOTE *( %x00-09 / %x0B-21 / %x23-10FFFF ) DQUOTE
func (s *Scanner) MatchString() int {
	if !strings.HasPrefix(s.Input[s.Pos:], "\"") {
		return 0
	}

	end := strings.IndexAny(s.Input[s.Pos+1:], "\"\n")
	if end < 0 || s.Input[s.Pos+1+end] == '\n' {
		return 0
	}

	return end + 2
}

// MatchComment returns the length of a line comment, not including the
// terminating newline.
//
// Grammar:
//
//	comment         = "//" *( %x00-09 / %x0B-10FFFF )
func (s *Scanner) MatchComment() int {
	if !strings.HasPrefix(s.Input[s.Pos:], "//") {
		return 0
	}

	end := strings.IndexByte(s.Input[s.Pos:], '\n')
	if end < 0 {
		return len(s.Input) - s.Pos
	}

	return end
}

func (s *Scanner) fail(loc parse.Location, m string) error {
	return &ScanError{parse.NewSyntaxError(s.Line, loc, m)}
}

// Emit the next Token found on Scanner.Input. Once the input is exhausted a
// TOK_EOF token is returned on every call.
func (s *Scanner) Emit() (Token, error) {
	var t Token

	if s.Line == 0 {
		s.Line = 1
	}

	for {
		s.Start = s.Pos
		if s.Pos >= len(s.Input) {
			return Token{
				Kind:     TOK_EOF,
				Line:     s.Line,
				Location: parse.Location{Start: s.Pos, End: s.Pos},
			}, nil
		}

		r, width := utf8.DecodeRuneInString(s.Input[s.Pos:])
		found := true
		skip := 0

		switch {
		case r == '\n':
			s.Line++
			skip = width
			found = false
		case r == ' ' || r == '\r' || r == '\t':
			skip = width
			found = false
		case r == '/':
			if skip = s.MatchComment(); skip > 0 {
				found = false
				break
			}
			t.Kind = TOK_SLASH
			skip = width
		case r == '!':
			if strings.HasPrefix(s.Input[s.Pos:], "!=") {
				t.Kind = TOK_NOT_EQ
				skip = len("!=")
				break
			}
			t.Kind = TOK_BANG
			skip = width
		case r == '=':
			if strings.HasPrefix(s.Input[s.Pos:], "==") {
				t.Kind = TOK_EQ_EQ
				skip = len("==")
				break
			}
			t.Kind = TOK_EQ
			skip = width
		case r == '>':
			if strings.HasPrefix(s.Input[s.Pos:], ">=") {
				t.Kind = TOK_GREATER_EQ
				skip = len(">=")
				break
			}
			t.Kind = TOK_GREATER
			skip = width
		case r == '<':
			if strings.HasPrefix(s.Input[s.Pos:], "<=") {
				t.Kind = TOK_LESS_EQ
				skip = len("<=")
				break
			}
			t.Kind = TOK_LESS
			skip = width
		case r == '"':
			skip = s.MatchString()
			if skip == 0 {
				end := strings.IndexByte(s.Input[s.Pos:], '\n')
				if end < 0 {
					end = len(s.Input) - s.Pos
				}
				return Token{}, s.fail(parse.Location{Start: s.Pos, End: s.Pos + end}, "unterminated string")
			}
			t.Kind = TOK_STRING
		case r >= '0' && r <= '9':
			t.Kind = TOK_NUMBER
			skip = s.MatchNumber()
		case isAlpha(r):
			skip = s.MatchIdentifier()
			t.Kind = LookupKeyword(s.Input[s.Pos : s.Pos+skip])
		default:
			kind, ok := punctuation[r]
			if !ok {
				return Token{}, s.fail(parse.Location{Start: s.Pos, End: s.Pos + width},
					fmt.Sprintf("unexpected character: %c", r))
			}
			t.Kind = kind
			skip = width
		}

		s.Pos = s.Start + skip
		if found {
			break
		}
	}

	t.Lexeme = s.Input[s.Start:s.Pos]
	if t.Kind == TOK_STRING {
		t.Lexeme = t.Lexeme[1 : len(t.Lexeme)-1]
	}
	t.Line = s.Line
	t.Location = parse.Location{Start: s.Start, End: s.Pos}
	s.Start = s.Pos

	return t, nil
}
