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

// Package blevequery adapts the compiler's combinator surface onto
// Bleve query objects.
package blevequery

import (
	"regexp"
	"strings"

	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/searchq/boolq"
)

var _ boolq.Builder[query.Query] = Builder{}

// rangeRe matches a Lucene-style inclusive range literal, brackets
// included: [100 TO 999]. A bare "*" bound means unbounded.
var rangeRe = regexp.MustCompile(`(?i)^\[\s*(\S+)\s+TO\s+(\S+)\s*\]$`)

// Builder produces Bleve queries: match queries for contains leaves,
// term queries for exact leaves, term-range queries for bracket range
// literals, and conjunction/disjunction/boolean queries for the
// operators.
type Builder struct{}

// Leaf implements boolq.Builder. A field carrying boolq.ExactSuffix
// selects unanalyzed matching on the base field.
func (Builder) Leaf(field, term string) query.Query {
	base, exact := strings.CutSuffix(field, boolq.ExactSuffix)
	if !exact {
		q := query.NewMatchQuery(term)
		q.SetField(field)
		return q
	}
	if m := rangeRe.FindStringSubmatch(term); m != nil {
		min, max := m[1], m[2]
		if min == "*" {
			min = ""
		}
		if max == "*" {
			max = ""
		}
		inclusive := true
		q := query.NewTermRangeInclusiveQuery(min, max, &inclusive, &inclusive)
		q.SetField(base)
		return q
	}
	q := query.NewTermQuery(term)
	q.SetField(base)
	return q
}

// And implements boolq.Builder.
func (Builder) And(a, b query.Query) query.Query {
	return query.NewConjunctionQuery([]query.Query{a, b})
}

// Or implements boolq.Builder.
func (Builder) Or(a, b query.Query) query.Query {
	return query.NewDisjunctionQuery([]query.Query{a, b})
}

// Not implements boolq.Builder. Bleve has no free-standing negation, so
// the negated query becomes a must-not clause under a match-all must.
func (Builder) Not(a query.Query) query.Query {
	return query.NewBooleanQuery(
		[]query.Query{query.NewMatchAllQuery()},
		nil,
		[]query.Query{a},
	)
}
