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

// Package ast defines the abstract syntax tree of one field clause's
// boolean expression.
package ast

import (
	"strings"

	"github.com/pingcap/errors"
	"github.com/searchq/boolq/format"
)

// Node is the basic element of the AST.
type Node interface {
	// Restore writes the node back as querystring text. The output is
	// fully parenthesized so that re-parsing it yields a structurally
	// equal tree.
	Restore(ctx *format.RestoreCtx) error
	// Accept accepts a Visitor implementing the visitor pattern.
	Accept(v Visitor) (node Node, ok bool)
}

// ExprNode is a node that can be evaluated to a boolean query.
type ExprNode interface {
	Node
	exprNode()
}

// Visitor visits a Node.
type Visitor interface {
	// Enter is called before children nodes are visited. skipChildren
	// returns true means children nodes should be skipped.
	Enter(n Node) (node Node, skipChildren bool)
	// Leave is called after children nodes have been visited. ok
	// returns false to stop visiting.
	Leave(n Node) (node Node, ok bool)
}

// ToString restores a node to its querystring form with default flags.
func ToString(n Node) (string, error) {
	var sb strings.Builder
	if err := n.Restore(format.NewRestoreCtx(format.DefaultRestoreFlags, &sb)); err != nil {
		return "", errors.Trace(err)
	}
	return sb.String(), nil
}
