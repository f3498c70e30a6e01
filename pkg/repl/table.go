/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/dburkart/lox/pkg/lang/ast"
	"github.com/dburkart/lox/pkg/lang/scanner"
)

type Printable interface {
	Headers() []string
	Values() [][]string
}

// TokenTable prints one row per token.
type TokenTable []scanner.Token

func (t TokenTable) Headers() []string {
	return []string{"kind", "lexeme", "line"}
}

func (t TokenTable) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		rows = append(rows, []string{tok.Kind.ToString(), tok.Lexeme, strconv.Itoa(tok.Line)})
	}
	return rows
}

// NodeTable prints one row per node in depth first order, with the node name
// indented by its depth.
type NodeTable struct {
	rows  [][]string
	depth int
}

func NewNodeTable(tree ast.Node) *NodeTable {
	n := &NodeTable{}
	ast.Walk(n, tree)
	return n
}

func (n *NodeTable) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		n.depth -= 1
		return nil
	}

	name := strings.Repeat("  ", n.depth) + reflect.TypeOf(node).Elem().Name()
	n.rows = append(n.rows, []string{name, node.Value(), strconv.Itoa(node.Line())})
	n.depth += 1

	return n
}

func (n *NodeTable) Headers() []string {
	return []string{"node", "value", "line"}
}

func (n *NodeTable) Values() [][]string {
	return n.rows
}
