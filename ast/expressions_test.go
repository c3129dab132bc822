// Copyright 2026 The boolq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package ast_test

import (
	"testing"

	"github.com/searchq/boolq/ast"
	"github.com/searchq/boolq/opcode"
	"github.com/stretchr/testify/require"
)

func TestRestore(t *testing.T) {
	tree := &ast.BinaryExpr{
		Op: opcode.LogicOr,
		L:  &ast.Literal{Text: "Kentucky", Mode: ast.Contains},
		R: &ast.BinaryExpr{
			Op: opcode.LogicAnd,
			L:  &ast.Literal{Text: "North Carolina", Mode: ast.Exact},
			R:  &ast.UnaryNotExpr{V: &ast.Literal{Text: "[100 TO 999]", Mode: ast.Range}},
		},
	}
	s, err := ast.ToString(tree)
	require.NoError(t, err)
	require.Equal(t, `(Kentucky OR ("North Carolina" AND NOT [100 TO 999]))`, s)
}

func TestMatchModeString(t *testing.T) {
	require.Equal(t, "contains", ast.Contains.String())
	require.Equal(t, "exact", ast.Exact.String())
	require.Equal(t, "range", ast.Range.String())
}

// literalCollector gathers leaf texts in visit order.
type literalCollector struct {
	texts []string
}

func (v *literalCollector) Enter(n ast.Node) (ast.Node, bool) {
	return n, false
}

func (v *literalCollector) Leave(n ast.Node) (ast.Node, bool) {
	if lit, ok := n.(*ast.Literal); ok {
		v.texts = append(v.texts, lit.Text)
	}
	return n, true
}

func TestAccept(t *testing.T) {
	tree := &ast.BinaryExpr{
		Op: opcode.LogicAnd,
		L:  &ast.UnaryNotExpr{V: &ast.Literal{Text: "a"}},
		R: &ast.BinaryExpr{
			Op: opcode.LogicOr,
			L:  &ast.Literal{Text: "b"},
			R:  &ast.Literal{Text: "c"},
		},
	}
	v := &literalCollector{}
	_, ok := tree.Accept(v)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, v.texts)
}
