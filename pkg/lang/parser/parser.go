/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/dburkart/lox/pkg/common/parse"
	"github.com/dburkart/lox/pkg/lang/ast"
	"github.com/dburkart/lox/pkg/lang/scanner"
)

// ParseError is returned for a malformed token sequence. The first one
// aborts the parse.
type ParseError struct {
	parse.SyntaxError
}

type Parser struct {
	Tokens []scanner.Token
	Pos    int
}

// Parse builds the expression tree for a complete token sequence. A trailing
// TOK_EOF token is optional.
func Parse(tokens []scanner.Token) (ast.Node, error) {
	p := Parser{Tokens: tokens}
	return p.Parse()
}

// ParseSource scans and parses input in one step.
func ParseSource(input string) (ast.Node, error) {
	tokens, err := scanner.Scan(input)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) Parse() (tree ast.Node, err error) {
	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(parse.SyntaxError)
			if !ok {
				panic(e)
			}
			tree = nil
			err = &ParseError{syntaxError}
		}
	}()

	p.Pos = 0
	tree = p.expression()

	// Every token must be consumed by a full parse
	if !p.isAtEnd() {
		tok := p.peek()
		panic(p.syntaxError(tok, fmt.Sprintf("unexpected trailing token: %s", tok.Lexeme)))
	}

	return tree, nil
}

func (p *Parser) syntaxError(tok scanner.Token, m string) parse.SyntaxError {
	return parse.NewSyntaxError(tok.Line, tok.Location, m)
}

// isAtEnd reports whether the cursor has passed the last token. A TOK_EOF
// counts as the end only when it closes the sequence.
func (p *Parser) isAtEnd() bool {
	if p.Pos >= len(p.Tokens) {
		return true
	}
	return p.Pos == len(p.Tokens)-1 && p.Tokens[p.Pos].Kind == scanner.TOK_EOF
}

// peek returns the current token, or a TOK_EOF token positioned after the
// last real token once the sequence is exhausted.
func (p *Parser) peek() scanner.Token {
	if !p.isAtEnd() {
		return p.Tokens[p.Pos]
	}
	if p.Pos < len(p.Tokens) {
		return p.Tokens[p.Pos]
	}

	end := scanner.Token{Kind: scanner.TOK_EOF, Line: 1}
	if len(p.Tokens) > 0 {
		last := p.Tokens[len(p.Tokens)-1]
		end.Line = last.Line
		end.Location = parse.Location{Start: last.Location.End, End: last.Location.End}
	}
	return end
}

// previous returns the last consumed token.
func (p *Parser) previous() scanner.Token {
	if p.Pos == 0 {
		return p.peek()
	}
	return p.Tokens[p.Pos-1]
}

// match consumes the current token if it is one of kinds.
func (p *Parser) match(kinds ...scanner.TokenKind) (scanner.Token, bool) {
	if p.isAtEnd() {
		return scanner.Token{}, false
	}

	tok := p.Tokens[p.Pos]
	for _, k := range kinds {
		if tok.Kind == k {
			p.Pos++
			return tok, true
		}
	}

	return scanner.Token{}, false
}

// expression returns an ExpressionNode
//
// Grammar:
//
//	expression      = series
func (p *Parser) expression() ast.Node {
	inner := p.series()
	return &ast.ExpressionNode{BaseNode: ast.BaseNode{Token: inner.Origin()}, Inner: inner}
}

// series returns a SeriesNode, or the result of equality
//
// Grammar:
//
//	series          = equality *( "," equality )
func (p *Parser) series() ast.Node {
	node := p.equality()

	for {
		t, ok := p.match(scanner.TOK_COMMA)
		if !ok {
			return node
		}
		node = &ast.SeriesNode{BaseNode: ast.BaseNode{Token: t}, Left: node, Right: p.equality()}
	}
}

// equality returns an EqualityNode, or the result of comparison
//
// Grammar:
//
//	equality        = comparison *( ( "==" / "!=" ) comparison )
func (p *Parser) equality() ast.Node {
	node := p.comparison()

	for {
		t, ok := p.match(scanner.TOK_EQ_EQ, scanner.TOK_NOT_EQ)
		if !ok {
			return node
		}

		op := ast.OpEqualEqual
		if t.Kind == scanner.TOK_NOT_EQ {
			op = ast.OpNotEqual
		}
		node = &ast.EqualityNode{BaseNode: ast.BaseNode{Token: t}, Op: op, Left: node, Right: p.comparison()}
	}
}

// comparison returns a ComparisonNode, or the result of sum
//
// Grammar:
//
//	comparison      = sum *( ( ">" / ">=" / "<" / "<=" ) sum )
func (p *Parser) comparison() ast.Node {
	node := p.sum()

	for {
		t, ok := p.match(scanner.TOK_GREATER, scanner.TOK_GREATER_EQ, scanner.TOK_LESS, scanner.TOK_LESS_EQ)
		if !ok {
			return node
		}

		var op ast.ComparisonOperator
		switch t.Kind {
		case scanner.TOK_GREATER:
			op = ast.OpGreater
		case scanner.TOK_GREATER_EQ:
			op = ast.OpGreaterEqual
		case scanner.TOK_LESS:
			op = ast.OpLess
		case scanner.TOK_LESS_EQ:
			op = ast.OpLessEqual
		}
		node = &ast.ComparisonNode{BaseNode: ast.BaseNode{Token: t}, Op: op, Left: node, Right: p.sum()}
	}
}

// sum returns a SumNode, or the result of product
//
// Grammar:
//
//	sum             = product *( ( "+" / "-" ) product )
func (p *Parser) sum() ast.Node {
	node := p.product()

	for {
		t, ok := p.match(scanner.TOK_PLUS, scanner.TOK_MINUS)
		if !ok {
			return node
		}

		op := ast.OpPlus
		if t.Kind == scanner.TOK_MINUS {
			op = ast.OpMinus
		}
		node = &ast.SumNode{BaseNode: ast.BaseNode{Token: t}, Op: op, Left: node, Right: p.product()}
	}
}

// product returns a ProductNode, or the result of unary
//
// Grammar:
//
//	product         = unary *( ( "*" / "/" ) unary )
func (p *Parser) product() ast.Node {
	node := p.unary()

	for {
		t, ok := p.match(scanner.TOK_STAR, scanner.TOK_SLASH)
		if !ok {
			return node
		}

		op := ast.OpStar
		if t.Kind == scanner.TOK_SLASH {
			op = ast.OpSlash
		}
		node = &ast.ProductNode{BaseNode: ast.BaseNode{Token: t}, Op: op, Left: node, Right: p.unary()}
	}
}

// unary returns a UnaryNode, or the result of primary
//
// Grammar:
//
//	unary           = ( ( "!" / "-" ) unary ) / primary
func (p *Parser) unary() ast.Node {
	t, ok := p.match(scanner.TOK_BANG, scanner.TOK_MINUS)
	if !ok {
		return p.primary()
	}

	op := ast.OpBang
	if t.Kind == scanner.TOK_MINUS {
		op = ast.OpNegate
	}

	return &ast.UnaryNode{BaseNode: ast.BaseNode{Token: t}, Op: op, Operand: p.unary()}
}

// primary returns a leaf node for an expression, or the inner node of a
// parenthesized group
//
// Grammar:
//
//	primary         = number / string / "true" / "false" / "nil" / "(" expression ")"
func (p *Parser) primary() ast.Node {
	if p.isAtEnd() {
		panic(p.syntaxError(p.peek(), "unexpected end of input"))
	}

	t := p.Tokens[p.Pos]

	switch t.Kind {
	case scanner.TOK_NIL, scanner.TOK_TRUE, scanner.TOK_FALSE, scanner.TOK_STRING, scanner.TOK_NUMBER:
		node, err := ast.MakePrimaryNode(t)
		if err != nil {
			panic(p.syntaxError(t, fmt.Sprintf("failed to parse number: %s", t.Lexeme)))
		}
		p.Pos++
		return node
	case scanner.TOK_PAREN_L:
		p.Pos++

		// Groups are transparent, keep only what the parenthesized
		// expression wraps
		expr := p.expression().(*ast.ExpressionNode)

		if _, ok := p.match(scanner.TOK_PAREN_R); !ok {
			panic(p.syntaxError(p.previous(), "expected ')' after expression"))
		}

		return expr.Inner
	default:
		panic(p.syntaxError(t, fmt.Sprintf("unexpected token: %s", t.Lexeme)))
	}
}
