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

// Package boolq compiles a field-scoped boolean search string, like
//
//	state:(Kentucky OR "North Carolina") title:(Target AND NOT walmart)
//
// into one composed query object through a backend-provided
// query-combinator Builder. Quoted terms match exactly, bracket ranges
// like [100 TO 999] pass through verbatim under exact-match semantics,
// and everything else is a contains match.
package boolq

import (
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/searchq/boolq/ast"
	"github.com/searchq/boolq/opcode"
	"go.uber.org/zap"
)

// DefaultMaxDepth is the default bound on expression nesting depth.
const DefaultMaxDepth = 200

// Options configure one compilation. The zero value means: combine
// field clauses with AND, bound nesting at DefaultMaxDepth, parse each
// clause as a boolean expression.
type Options struct {
	// DefaultOp combines the per-field queries when the querystring has
	// more than one field clause. opcode.LogicAnd when unset.
	DefaultOp opcode.Op
	// MaxDepth bounds expression nesting depth. DefaultMaxDepth when
	// unset.
	MaxDepth int
	// Verbatim disables boolean parsing: each field clause becomes a
	// single leaf query whose term is the clause's raw text.
	Verbatim bool
}

func (o Options) normalize() Options {
	if o.DefaultOp != opcode.LogicOr {
		o.DefaultOp = opcode.LogicAnd
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// FieldClause is one parsed field clause: the base field name and its
// boolean expression tree.
type FieldClause struct {
	Field string
	Expr  ast.ExprNode
}

// Parse splits a querystring into field clauses and parses each
// clause's boolean expression. Parsing fails fast: the first clause
// with a syntax error aborts the whole parse and its error, carrying
// kind, field and offset, is returned. An empty querystring yields nil
// clauses and nil error.
func Parse(qs string, opts Options) ([]FieldClause, error) {
	opts = opts.normalize()
	pairs := SplitFields(qs)
	if len(pairs) == 0 {
		return nil, nil
	}

	clauses := make([]FieldClause, 0, len(pairs))
	for _, pair := range pairs {
		if isReservedField(pair.Field) {
			return nil, syntaxError(ErrInvalidFieldName, pair.Field, 0)
		}
		node, err := parseClause(pair.Field, pair.Term, opts.MaxDepth)
		if err != nil {
			return nil, errors.Trace(err)
		}
		clauses = append(clauses, FieldClause{Field: pair.Field, Expr: node})
	}
	return clauses, nil
}

// Compile compiles a querystring into one query object built through b.
// ok is false when the querystring holds no query at all (empty input);
// that is a distinguished empty result, not an error. Error handling is
// fail-fast per field clause, in clause order.
func Compile[Q any](qs string, b Builder[Q], opts Options) (q Q, ok bool, err error) {
	opts = opts.normalize()
	pairs := SplitFields(qs)
	if len(pairs) == 0 {
		var zero Q
		return zero, false, nil
	}

	queries := make([]Q, 0, len(pairs))
	for _, pair := range pairs {
		if isReservedField(pair.Field) {
			var zero Q
			return zero, false, syntaxError(ErrInvalidFieldName, pair.Field, 0)
		}
		if opts.Verbatim {
			queries = append(queries, b.Leaf(pair.Field, strings.TrimSpace(pair.Term)))
			continue
		}
		node, err := parseClause(pair.Field, pair.Term, opts.MaxDepth)
		if err != nil {
			var zero Q
			return zero, false, errors.Trace(err)
		}
		fq, err := compileExpr(b, pair.Field, node)
		if err != nil {
			var zero Q
			return zero, false, errors.Trace(err)
		}
		queries = append(queries, fq)
	}

	log.Debug("compiled boolean querystring",
		zap.Int("clauses", len(queries)),
		zap.Stringer("defaultOp", opts.DefaultOp),
		zap.Bool("verbatim", opts.Verbatim))
	return reduceQueries(b, opts.DefaultOp, queries), true, nil
}
