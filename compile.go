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

package boolq

import (
	"github.com/pingcap/errors"
	"github.com/searchq/boolq/ast"
	"github.com/searchq/boolq/opcode"
)

// ExactSuffix is appended to a field name when a leaf must match the
// literal, unanalyzed field value: quoted terms and bracket ranges.
const ExactSuffix = "__exact"

// Builder is the backend's query-combinator surface. Implementations
// must be total and side-effect free: the compiler assumes no call can
// fail and never inspects a produced query.
type Builder[Q any] interface {
	// Leaf constructs a query matching term against field.
	Leaf(field, term string) Q
	// And combines two queries conjunctively.
	And(a, b Q) Q
	// Or combines two queries disjunctively.
	Or(a, b Q) Q
	// Not negates a query.
	Not(a Q) Q
}

// compileExpr folds an expression tree into one backend query for the
// given base field. Compiling the same tree twice yields structurally
// equivalent queries.
func compileExpr[Q any](b Builder[Q], field string, n ast.ExprNode) (Q, error) {
	switch x := n.(type) {
	case *ast.Literal:
		if x.Mode == ast.Contains {
			return b.Leaf(field, x.Text), nil
		}
		return b.Leaf(field+ExactSuffix, x.Text), nil
	case *ast.UnaryNotExpr:
		v, err := compileExpr(b, field, x.V)
		if err != nil {
			var zero Q
			return zero, errors.Trace(err)
		}
		return b.Not(v), nil
	case *ast.BinaryExpr:
		l, err := compileExpr(b, field, x.L)
		if err != nil {
			var zero Q
			return zero, errors.Trace(err)
		}
		r, err := compileExpr(b, field, x.R)
		if err != nil {
			var zero Q
			return zero, errors.Trace(err)
		}
		if x.Op == opcode.LogicAnd {
			return b.And(l, r), nil
		}
		return b.Or(l, r), nil
	}
	var zero Q
	return zero, errors.Errorf("unknown expression node %T", n)
}

// reduceQueries combines the per-field queries pairwise, left to right,
// under the default operator. A single query is returned unchanged.
func reduceQueries[Q any](b Builder[Q], op opcode.Op, queries []Q) Q {
	result := queries[0]
	for _, q := range queries[1:] {
		if op == opcode.LogicOr {
			result = b.Or(result, q)
		} else {
			result = b.And(result, q)
		}
	}
	return result
}
