/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"

	"github.com/dburkart/lox/pkg/common/parse"
)

type TokenKind int

const (
	TOK_INVALID TokenKind = iota
	TOK_EOF

	// Punctuation
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_CURLY_L
	TOK_CURLY_R
	TOK_SEMICOLON
	TOK_COMMA
	TOK_DOT
	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_SLASH

	// One or two character operators
	TOK_BANG
	TOK_NOT_EQ
	TOK_EQ
	TOK_EQ_EQ
	TOK_GREATER
	TOK_GREATER_EQ
	TOK_LESS
	TOK_LESS_EQ

	// Literals
	TOK_STRING
	TOK_NUMBER
	TOK_IDENTIFIER

	// Keywords
	TOK_NIL
	TOK_TRUE
	TOK_FALSE
	TOK_AND
	TOK_OR
	TOK_IF
	TOK_ELSE
	TOK_FOR
	TOK_WHILE
	TOK_VAR
	TOK_FUN
	TOK_RETURN
	TOK_CLASS
	TOK_THIS
	TOK_SUPER
	TOK_PRINT
)

var tokenNames = map[TokenKind]string{
	TOK_INVALID:    "TOK_INVALID",
	TOK_EOF:        "TOK_EOF",
	TOK_PAREN_L:    "TOK_PAREN_L",
	TOK_PAREN_R:    "TOK_PAREN_R",
	TOK_CURLY_L:    "TOK_CURLY_L",
	TOK_CURLY_R:    "TOK_CURLY_R",
	TOK_SEMICOLON:  "TOK_SEMICOLON",
	TOK_COMMA:      "TOK_COMMA",
	TOK_DOT:        "TOK_DOT",
	TOK_PLUS:       "TOK_PLUS",
	TOK_MINUS:      "TOK_MINUS",
	TOK_STAR:       "TOK_STAR",
	TOK_SLASH:      "TOK_SLASH",
	TOK_BANG:       "TOK_BANG",
	TOK_NOT_EQ:     "TOK_NOT_EQ",
	TOK_EQ:         "TOK_EQ",
	TOK_EQ_EQ:      "TOK_EQ_EQ",
	TOK_GREATER:    "TOK_GREATER",
	TOK_GREATER_EQ: "TOK_GREATER_EQ",
	TOK_LESS:       "TOK_LESS",
	TOK_LESS_EQ:    "TOK_LESS_EQ",
	TOK_STRING:     "TOK_STRING",
	TOK_NUMBER:     "TOK_NUMBER",
	TOK_IDENTIFIER: "TOK_IDENTIFIER",
	TOK_NIL:        "TOK_NIL",
	TOK_TRUE:       "TOK_TRUE",
	TOK_FALSE:      "TOK_FALSE",
	TOK_AND:        "TOK_AND",
	TOK_OR:         "TOK_OR",
	TOK_IF:         "TOK_IF",
	TOK_ELSE:       "TOK_ELSE",
	TOK_FOR:        "TOK_FOR",
	TOK_WHILE:      "TOK_WHILE",
	TOK_VAR:        "TOK_VAR",
	TOK_FUN:        "TOK_FUN",
	TOK_RETURN:     "TOK_RETURN",
	TOK_CLASS:      "TOK_CLASS",
	TOK_THIS:       "TOK_THIS",
	TOK_SUPER:      "TOK_SUPER",
	TOK_PRINT:      "TOK_PRINT",
}

func (t TokenKind) ToString() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "TOK_UNKNOWN"
}

func (t TokenKind) String() string {
	return t.ToString()
}

var keywords = map[string]TokenKind{
	"nil":    TOK_NIL,
	"true":   TOK_TRUE,
	"false":  TOK_FALSE,
	"and":    TOK_AND,
	"or":     TOK_OR,
	"if":     TOK_IF,
	"else":   TOK_ELSE,
	"for":    TOK_FOR,
	"while":  TOK_WHILE,
	"var":    TOK_VAR,
	"fun":    TOK_FUN,
	"return": TOK_RETURN,
	"class":  TOK_CLASS,
	"this":   TOK_THIS,
	"super":  TOK_SUPER,
	"print":  TOK_PRINT,
}

// LookupKeyword classifies a complete identifier run. Reserved words map to
// their keyword kind, everything else is TOK_IDENTIFIER.
func LookupKeyword(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return TOK_IDENTIFIER
}

// IsKeyword reports whether the kind is one of the reserved words.
func (t TokenKind) IsKeyword() bool {
	return t >= TOK_NIL && t <= TOK_PRINT
}

type Token struct {
	Kind     TokenKind
	Lexeme   string
	Line     int
	Location parse.Location
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q line %d", t.Kind, t.Lexeme, t.Line)
}
