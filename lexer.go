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
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/searchq/boolq/ast"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAnd
	tokOr
	tokNot
	tokLiteral
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "EOF"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	case tokAnd:
		return "AND"
	case tokOr:
		return "OR"
	case tokNot:
		return "NOT"
	case tokLiteral:
		return "literal"
	}
	return "invalid"
}

// token is one lexical element of a field clause. For tokLiteral tokens
// lit holds the classified text and mode the match mode.
type token struct {
	kind tokenKind
	lit  string
	mode ast.MatchMode
	// offset is the byte offset of the token within the clause.
	offset int
}

// scanner tokenizes one field clause. Quoted strings and bracket ranges
// are scanned as single literal tokens so embedded spaces survive.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) next() token {
	s.skipWhitespace()
	start := s.pos
	if s.pos >= len(s.src) {
		return token{kind: tokEOF, offset: start}
	}

	switch s.src[s.pos] {
	case '(':
		s.pos++
		return token{kind: tokLParen, offset: start}
	case ')':
		s.pos++
		return token{kind: tokRParen, offset: start}
	case '"':
		return s.scanQuoted()
	case '[':
		if tok, ok := s.scanRange(); ok {
			return tok
		}
	}
	return s.scanBare()
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += size
	}
}

// scanQuoted reads a double-quoted literal. The quotes signal exact
// matching and are stripped; an unterminated quote runs to end of
// input. A quoted bracket range keeps its brackets and stays a range
// literal, matching the unwrapping rule the range syntax requires.
func (s *scanner) scanQuoted() token {
	start := s.pos
	s.pos++ // opening quote
	end := strings.IndexByte(s.src[s.pos:], '"')
	var text string
	if end < 0 {
		text = s.src[s.pos:]
		s.pos = len(s.src)
	} else {
		text = s.src[s.pos : s.pos+end]
		s.pos += end + 1
	}
	return classify(text, true, start)
}

// scanRange reads a bracketed range literal verbatim, brackets
// included. ok is false when no closing bracket exists; the caller then
// rescans the run as a bare literal.
func (s *scanner) scanRange() (token, bool) {
	end := strings.IndexByte(s.src[s.pos:], ']')
	if end < 0 {
		return token{}, false
	}
	start := s.pos
	text := s.src[s.pos : s.pos+end+1]
	s.pos += end + 1
	return token{kind: tokLiteral, lit: text, mode: ast.Range, offset: start}, true
}

// scanBare reads a maximal run of non-structural characters and maps
// the boolean keywords to their operator tokens, case-insensitively.
func (s *scanner) scanBare() token {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c == '(' || c == ')' || c == '"' {
			break
		}
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		if unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	text := s.src[start:s.pos]
	switch strings.ToUpper(text) {
	case "AND":
		return token{kind: tokAnd, offset: start}
	case "OR":
		return token{kind: tokOr, offset: start}
	case "NOT":
		return token{kind: tokNot, offset: start}
	}
	return classify(text, false, start)
}

// classify decides the match mode of a literal token: quoted terms are
// exact, bracket ranges pass through verbatim, everything else is a
// contains match.
func classify(text string, quoted bool, offset int) token {
	mode := ast.Contains
	switch {
	case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]") && len(text) >= 2:
		mode = ast.Range
	case quoted:
		mode = ast.Exact
	}
	return token{kind: tokLiteral, lit: text, mode: mode, offset: offset}
}
