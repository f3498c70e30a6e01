/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses the tree depth first, left operand before right. After a
// node's children have been visited, v.Visit(nil) is called.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *ExpressionNode:
		Walk(v, n.Inner)

	case *SeriesNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *EqualityNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ComparisonNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *SumNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *ProductNode:
		Walk(v, n.Left)
		Walk(v, n.Right)

	case *UnaryNode:
		Walk(v, n.Operand)

	case *PrimaryNode:
		// Skip, leaf node

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}
