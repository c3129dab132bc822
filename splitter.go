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
	"regexp"
	"strings"
)

// DefaultField is the field assigned to querystring content that has no
// "field:" prefix.
const DefaultField = "text"

var fieldRe = regexp.MustCompile(`(\w+):`)

// FieldTerm is one field clause split out of the raw querystring: the
// field name and the raw term text that follows it, up to the next
// "field:" token or end of string.
type FieldTerm struct {
	Field string
	Term  string
	// Offset is the byte offset of Term within the raw querystring.
	Offset int
}

// SplitFields splits a raw querystring into its field clauses. Content
// preceding the first "field:" token is assigned to DefaultField and
// ordered after the explicit pairs. An empty or blank querystring
// yields nil.
func SplitFields(qs string) []FieldTerm {
	locs := fieldRe.FindAllStringSubmatchIndex(qs, -1)

	var pairs []FieldTerm
	for i, m := range locs {
		end := len(qs)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		pairs = append(pairs, FieldTerm{
			Field:  qs[m[2]:m[3]],
			Term:   qs[m[1]:end],
			Offset: m[1],
		})
	}

	leading := qs
	if len(locs) > 0 {
		leading = qs[:locs[0][0]]
	}
	if strings.TrimSpace(leading) != "" {
		pairs = append(pairs, FieldTerm{Field: DefaultField, Term: leading, Offset: 0})
	}
	return pairs
}

// reserved boolean keywords cannot name a field.
func isReservedField(name string) bool {
	switch strings.ToUpper(name) {
	case "AND", "OR", "NOT":
		return true
	}
	return false
}
