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
	"fmt"
	"testing"

	"github.com/searchq/boolq/opcode"
	"github.com/stretchr/testify/require"
)

// sexprBuilder renders combinator calls as s-expressions, making the
// shape of the composed query directly comparable.
type sexprBuilder struct{}

func (sexprBuilder) Leaf(field, term string) string {
	return fmt.Sprintf("leaf(%s,%s)", field, term)
}

func (sexprBuilder) And(a, b string) string { return fmt.Sprintf("and(%s,%s)", a, b) }
func (sexprBuilder) Or(a, b string) string  { return fmt.Sprintf("or(%s,%s)", a, b) }
func (sexprBuilder) Not(a string) string    { return fmt.Sprintf("not(%s)", a) }

func mustCompile(t *testing.T, qs string, opts Options) string {
	q, ok, err := Compile[string](qs, sexprBuilder{}, opts)
	require.NoError(t, err, "input: %q", qs)
	require.True(t, ok, "input: %q", qs)
	return q
}

func TestCompile(t *testing.T) {
	tests := []struct {
		qs   string
		want string
	}{
		{
			"state:Kentucky",
			"leaf(state,Kentucky)",
		},
		{
			"state:Kentucky title:Target",
			"and(leaf(state,Kentucky),leaf(title,Target))",
		},
		{
			`state:(Kentucky OR "North Carolina")`,
			"or(leaf(state,Kentucky),leaf(state__exact,North Carolina))",
		},
		{
			`title:("Best Buy" OR Target) state:Virginia`,
			"and(or(leaf(title__exact,Best Buy),leaf(title,Target)),leaf(state,Virginia))",
		},
		{
			"title:(Target AND NOT walmart)",
			"and(leaf(title,Target),not(leaf(title,walmart)))",
		},
		{
			"price:[100 TO 999]",
			"leaf(price__exact,[100 TO 999])",
		},
		{
			`price:"[100 TO 999]"`,
			"leaf(price__exact,[100 TO 999])",
		},
		{
			"state:NOT Kentucky",
			"not(leaf(state,Kentucky))",
		},
		{
			// Field-less content searches the default field, after the
			// explicit pairs.
			"apple state:Kentucky",
			"and(leaf(state,Kentucky),leaf(text,apple))",
		},
		{
			"apple",
			"leaf(text,apple)",
		},
		{
			"state:(a OR b OR c)",
			"or(or(leaf(state,a),leaf(state,b)),leaf(state,c))",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, mustCompile(t, tt.qs, Options{}), "input: %q", tt.qs)
	}
}

func TestCompileDefaultOperator(t *testing.T) {
	qs := "state:Kentucky title:Target city:Louisville"
	require.Equal(t,
		"and(and(leaf(state,Kentucky),leaf(title,Target)),leaf(city,Louisville))",
		mustCompile(t, qs, Options{DefaultOp: opcode.LogicAnd}))
	require.Equal(t,
		"or(or(leaf(state,Kentucky),leaf(title,Target)),leaf(city,Louisville))",
		mustCompile(t, qs, Options{DefaultOp: opcode.LogicOr}))
}

func TestCompileVerbatim(t *testing.T) {
	q := mustCompile(t, "state:(Kentucky OR Virginia)", Options{Verbatim: true})
	require.Equal(t, "leaf(state,(Kentucky OR Virginia))", q)
}

func TestCompileNoQuery(t *testing.T) {
	q, ok, err := Compile[string]("", sexprBuilder{}, Options{})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "", q)
}

func TestCompileSyntaxErrors(t *testing.T) {
	tests := []struct {
		qs    string
		kind  ErrKind
		field string
	}{
		{"state:(Kentucky OR Virginia", ErrUnbalancedParens, "state"},
		{"state:()", ErrEmptyExpression, "state"},
		{"state:", ErrEmptyExpression, "state"},
		{"title:(Target AND)", ErrDanglingOperator, "title"},
		{"not:Kentucky", ErrInvalidFieldName, "not"},
	}
	for _, tt := range tests {
		_, ok, err := Compile[string](tt.qs, sexprBuilder{}, Options{})
		require.False(t, ok, "input: %q", tt.qs)
		se, isSyntax := AsSyntaxError(err)
		require.True(t, isSyntax, "input: %q", tt.qs)
		require.Equal(t, tt.kind, se.Kind, "input: %q", tt.qs)
		require.Equal(t, tt.field, se.Field, "input: %q", tt.qs)
	}
}

// The first failing clause aborts the compile, in clause order.
func TestCompileFailFast(t *testing.T) {
	_, _, err := Compile[string]("state:( title:(", sexprBuilder{}, Options{})
	se, ok := AsSyntaxError(err)
	require.True(t, ok)
	require.Equal(t, "state", se.Field)
}

// Compiling the same querystring twice yields equal queries.
func TestCompileDeterministic(t *testing.T) {
	qs := `state:(Kentucky OR "North Carolina") title:(Target AND NOT walmart)`
	first := mustCompile(t, qs, Options{})
	second := mustCompile(t, qs, Options{})
	require.Equal(t, first, second)
}

func TestParseClauses(t *testing.T) {
	clauses, err := Parse(`state:(Kentucky OR "North Carolina") title:Target`, Options{})
	require.NoError(t, err)
	require.Len(t, clauses, 2)
	require.Equal(t, "state", clauses[0].Field)
	require.Equal(t, "title", clauses[1].Field)

	s, err := Parse("", Options{})
	require.NoError(t, err)
	require.Nil(t, s)
}
