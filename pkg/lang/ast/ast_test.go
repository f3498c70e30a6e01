/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast_test

import (
	"math"
	"strings"
	"testing"

	"github.com/dburkart/lox/pkg/lang/ast"
	"github.com/dburkart/lox/pkg/lang/parser"
	"github.com/dburkart/lox/pkg/lang/scanner"
)

func TestDump(t *testing.T) {
	tree, err := parser.ParseSource("-1 * (2 + 3)")
	if err != nil {
		t.Fatal(err)
	}

	want := "ExpressionNode[]\n" +
		"    ProductNode[*]\n" +
		"        UnaryNode[-]\n" +
		"            PrimaryNode[1]\n" +
		"        SumNode[+]\n" +
		"            PrimaryNode[2]\n" +
		"            PrimaryNode[3]\n"

	if got := ast.Dump(tree); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestMeasure(t *testing.T) {
	tree, err := parser.ParseSource("1, !2 == 3")
	if err != nil {
		t.Fatal(err)
	}

	stats := ast.Measure(tree)
	if stats.Nodes != 7 {
		t.Errorf("wanted 7 nodes, got %d", stats.Nodes)
	}
	if stats.MaxDepth != 5 {
		t.Errorf("wanted depth 5, got %d", stats.MaxDepth)
	}
}

func TestLiteralStrings(t *testing.T) {
	tests := []struct {
		lit  ast.Literal
		want string
		kind ast.LiteralKind
	}{
		{ast.NilLiteral{}, "nil", ast.LitNil},
		{ast.TrueLiteral{}, "true", ast.LitTrue},
		{ast.FalseLiteral{}, "false", ast.LitFalse},
		{ast.NumberLiteral(3), "3", ast.LitNumber},
		{ast.NumberLiteral(0.25), "0.25", ast.LitNumber},
		{ast.StringLiteral("hi there"), `"hi there"`, ast.LitString},
	}

	for _, tc := range tests {
		if got := tc.lit.String(); got != tc.want {
			t.Errorf("wanted %s, got %s", tc.want, got)
		}
		if tc.lit.Kind() != tc.kind {
			t.Errorf("%s has the wrong kind", tc.want)
		}
	}
}

func TestMakePrimaryNode(t *testing.T) {
	node, err := ast.MakePrimaryNode(scanner.Token{Kind: scanner.TOK_NUMBER, Lexeme: "123.456", Line: 4})
	if err != nil {
		t.Fatal(err)
	}
	if node.Literal != ast.NumberLiteral(123.456) || node.Line() != 4 {
		t.Errorf("unexpected node %+v", node)
	}

	huge := "1" + strings.Repeat("0", 400)
	node, err = ast.MakePrimaryNode(scanner.Token{Kind: scanner.TOK_NUMBER, Lexeme: huge})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(float64(node.Literal.(ast.NumberLiteral)), 1) {
		t.Errorf("wanted +Inf, got %s", node.Literal)
	}

	if _, err := ast.MakePrimaryNode(scanner.Token{Kind: scanner.TOK_IDENTIFIER, Lexeme: "x"}); err == nil {
		t.Error("identifiers are not literals")
	}
}
