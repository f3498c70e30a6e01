/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Stats counts the nodes of a tree and tracks its deepest level.
type Stats struct {
	Nodes    int
	MaxDepth int
	depth    int
}

func (s *Stats) Visit(node Node) Visitor {
	if node == nil {
		s.depth -= 1
		return nil
	}

	s.Nodes += 1
	s.depth += 1
	if s.depth > s.MaxDepth {
		s.MaxDepth = s.depth
	}

	return s
}

func Measure(node Node) Stats {
	s := Stats{}
	Walk(&s, node)
	return s
}
