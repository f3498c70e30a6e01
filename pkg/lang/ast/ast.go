/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"errors"
	"strconv"

	"github.com/dburkart/lox/pkg/lang/scanner"
)

// Node is implemented by every variant of the expression tree. Nodes are
// built once by the parser and never modified.
type Node interface {
	Value() string
	Line() int
	Origin() scanner.Token
}

type Visitor interface {
	Visit(Node) Visitor
}

type EqualityOperator int

const (
	OpEqualEqual EqualityOperator = iota
	OpNotEqual
)

func (o EqualityOperator) String() string {
	if o == OpNotEqual {
		return "!="
	}
	return "=="
}

type ComparisonOperator int

const (
	OpGreater ComparisonOperator = iota
	OpGreaterEqual
	OpLess
	OpLessEqual
)

func (o ComparisonOperator) String() string {
	switch o {
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	}
	return "<="
}

type SumOperator int

const (
	OpPlus SumOperator = iota
	OpMinus
)

func (o SumOperator) String() string {
	if o == OpMinus {
		return "-"
	}
	return "+"
}

type ProductOperator int

const (
	OpStar ProductOperator = iota
	OpSlash
)

func (o ProductOperator) String() string {
	if o == OpSlash {
		return "/"
	}
	return "*"
}

type UnaryOperator int

const (
	OpBang UnaryOperator = iota
	OpNegate
)

func (o UnaryOperator) String() string {
	if o == OpNegate {
		return "-"
	}
	return "!"
}

type LiteralKind int

const (
	LitNil LiteralKind = iota
	LitTrue
	LitFalse
	LitNumber
	LitString
)

type Literal interface {
	Kind() LiteralKind
	String() string
}

type (
	NilLiteral    struct{}
	TrueLiteral   struct{}
	FalseLiteral  struct{}
	NumberLiteral float64
	StringLiteral string
)

func (NilLiteral) Kind() LiteralKind    { return LitNil }
func (TrueLiteral) Kind() LiteralKind   { return LitTrue }
func (FalseLiteral) Kind() LiteralKind  { return LitFalse }
func (NumberLiteral) Kind() LiteralKind { return LitNumber }
func (StringLiteral) Kind() LiteralKind { return LitString }

func (NilLiteral) String() string   { return "nil" }
func (TrueLiteral) String() string  { return "true" }
func (FalseLiteral) String() string { return "false" }

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s StringLiteral) String() string {
	return strconv.Quote(string(s))
}

type (
	// BaseNode records the token that introduced a node: the operator for
	// unary and binary nodes, the literal itself for primaries.
	BaseNode struct {
		Token scanner.Token
	}

	ExpressionNode struct {
		BaseNode
		Inner Node
	}

	SeriesNode struct {
		BaseNode
		Left  Node
		Right Node
	}

	EqualityNode struct {
		BaseNode
		Op    EqualityOperator
		Left  Node
		Right Node
	}

	ComparisonNode struct {
		BaseNode
		Op    ComparisonOperator
		Left  Node
		Right Node
	}

	SumNode struct {
		BaseNode
		Op    SumOperator
		Left  Node
		Right Node
	}

	ProductNode struct {
		BaseNode
		Op    ProductOperator
		Left  Node
		Right Node
	}

	UnaryNode struct {
		BaseNode
		Op      UnaryOperator
		Operand Node
	}

	PrimaryNode struct {
		BaseNode
		Literal Literal
	}
)

// -- BaseNode

func (b BaseNode) Value() string {
	return b.Token.Lexeme
}

func (b BaseNode) Line() int {
	return b.Token.Line
}

// Origin returns the token that introduced the node.
func (b BaseNode) Origin() scanner.Token {
	return b.Token
}

//-- ExpressionNode

func (e ExpressionNode) Value() string {
	return ""
}

func (e ExpressionNode) Line() int {
	if e.Inner == nil {
		return e.Token.Line
	}
	return e.Inner.Line()
}

//-- SeriesNode

func (s SeriesNode) Value() string {
	return ","
}

//-- binary nodes

func (e EqualityNode) Value() string   { return e.Op.String() }
func (c ComparisonNode) Value() string { return c.Op.String() }
func (s SumNode) Value() string        { return s.Op.String() }
func (p ProductNode) Value() string    { return p.Op.String() }

//-- UnaryNode

func (u UnaryNode) Value() string {
	return u.Op.String()
}

//-- PrimaryNode

func (p PrimaryNode) Value() string {
	if p.Literal == nil {
		return ""
	}
	return p.Literal.String()
}

// MakePrimaryNode builds a leaf from a literal token. Number lexemes too large
// for a float64 become infinities rather than errors.
func MakePrimaryNode(tok scanner.Token) (*PrimaryNode, error) {
	var lit Literal

	switch tok.Kind {
	case scanner.TOK_NIL:
		lit = NilLiteral{}
	case scanner.TOK_TRUE:
		lit = TrueLiteral{}
	case scanner.TOK_FALSE:
		lit = FalseLiteral{}
	case scanner.TOK_STRING:
		lit = StringLiteral(tok.Lexeme)
	case scanner.TOK_NUMBER:
		f, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, err
		}
		lit = NumberLiteral(f)
	default:
		return nil, strconv.ErrSyntax
	}

	return &PrimaryNode{BaseNode: BaseNode{Token: tok}, Literal: lit}, nil
}
