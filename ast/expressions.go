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

package ast

import (
	"github.com/pingcap/errors"
	"github.com/searchq/boolq/format"
	"github.com/searchq/boolq/opcode"
)

var (
	_ ExprNode = &Literal{}
	_ ExprNode = &UnaryNotExpr{}
	_ ExprNode = &BinaryExpr{}
)

type exprNodeImpl struct{}

func (exprNodeImpl) exprNode() {}

// MatchMode decides how a literal leaf is matched by the backend.
type MatchMode int

// Match modes.
const (
	// Contains is the default tokenized match against an analyzed field.
	Contains MatchMode = iota
	// Exact matches the literal, unanalyzed value of a field. Produced
	// by double-quoting a term.
	Exact
	// Range is a bracketed range literal like [100 TO 999], passed to
	// the backend verbatim under exact-match semantics.
	Range
)

// String implements fmt.Stringer interface.
func (m MatchMode) String() string {
	switch m {
	case Contains:
		return "contains"
	case Exact:
		return "exact"
	case Range:
		return "range"
	}
	return "unknown"
}

// Literal is a leaf term of a boolean expression.
type Literal struct {
	exprNodeImpl

	// Text is the term text, with surrounding quotes already stripped
	// for Exact literals and brackets kept for Range literals.
	Text string
	// Mode decides contains vs. exact vs. range matching.
	Mode MatchMode
	// Offset is the byte offset of the literal within its field clause.
	Offset int
}

// Restore implements Node interface.
func (n *Literal) Restore(ctx *format.RestoreCtx) error {
	switch n.Mode {
	case Exact:
		ctx.WriteString(n.Text)
	default:
		ctx.WritePlain(n.Text)
	}
	return nil
}

// Accept implements Node interface.
func (n *Literal) Accept(v Visitor) (Node, bool) {
	newNode, _ := v.Enter(n)
	return v.Leave(newNode.(*Literal))
}

// UnaryNotExpr is the negation of an expression.
type UnaryNotExpr struct {
	exprNodeImpl

	// V is the negated expression.
	V ExprNode
}

// Restore implements Node interface.
func (n *UnaryNotExpr) Restore(ctx *format.RestoreCtx) error {
	ctx.WriteKeyWord("NOT ")
	if err := n.V.Restore(ctx); err != nil {
		return errors.Annotate(err, "restore UnaryNotExpr.V")
	}
	return nil
}

// Accept implements Node interface.
func (n *UnaryNotExpr) Accept(v Visitor) (Node, bool) {
	newNode, skipChildren := v.Enter(n)
	if skipChildren {
		return v.Leave(newNode)
	}
	n = newNode.(*UnaryNotExpr)
	node, ok := n.V.Accept(v)
	if !ok {
		return n, false
	}
	n.V = node.(ExprNode)
	return v.Leave(n)
}

// BinaryExpr is an AND/OR combination of two expressions. It is always
// binary; a run of same-precedence operators parses into a left-leaning
// chain of BinaryExpr nodes.
type BinaryExpr struct {
	exprNodeImpl

	// Op is the operator code, opcode.LogicAnd or opcode.LogicOr.
	Op opcode.Op
	// L is the left operand.
	L ExprNode
	// R is the right operand.
	R ExprNode
}

// Restore implements Node interface.
func (n *BinaryExpr) Restore(ctx *format.RestoreCtx) error {
	ctx.WritePlain("(")
	if err := n.L.Restore(ctx); err != nil {
		return errors.Annotate(err, "restore BinaryExpr.L")
	}
	ctx.WriteKeyWord(" " + n.Op.String() + " ")
	if err := n.R.Restore(ctx); err != nil {
		return errors.Annotate(err, "restore BinaryExpr.R")
	}
	ctx.WritePlain(")")
	return nil
}

// Accept implements Node interface.
func (n *BinaryExpr) Accept(v Visitor) (Node, bool) {
	newNode, skipChildren := v.Enter(n)
	if skipChildren {
		return v.Leave(newNode)
	}
	n = newNode.(*BinaryExpr)
	node, ok := n.L.Accept(v)
	if !ok {
		return n, false
	}
	n.L = node.(ExprNode)
	node, ok = n.R.Accept(v)
	if !ok {
		return n, false
	}
	n.R = node.(ExprNode)
	return v.Leave(n)
}
