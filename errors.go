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

	"github.com/pingcap/errors"
)

// ErrKind identifies a class of querystring syntax error.
type ErrKind int

// Syntax error kinds.
const (
	// ErrUnbalancedParens reports an unmatched "(" or ")".
	ErrUnbalancedParens ErrKind = iota + 1
	// ErrEmptyExpression reports a field clause with no terms, like
	// "field:()".
	ErrEmptyExpression
	// ErrDanglingOperator reports an operator with a missing operand,
	// like a trailing "AND".
	ErrDanglingOperator
	// ErrTooDeeplyNested reports parenthesis nesting beyond the
	// configured maximum depth.
	ErrTooDeeplyNested
	// ErrInvalidFieldName reports a field name that is a reserved
	// boolean keyword.
	ErrInvalidFieldName
	// ErrUnexpectedToken reports a token the grammar cannot accept at
	// its position, like two adjacent terms with no operator.
	ErrUnexpectedToken
)

var errKindMessages = map[ErrKind]string{
	ErrUnbalancedParens: "unbalanced parenthesis",
	ErrEmptyExpression:  "empty expression",
	ErrDanglingOperator: "dangling operator",
	ErrTooDeeplyNested:  "expression too deeply nested",
	ErrInvalidFieldName: "invalid field name",
	ErrUnexpectedToken:  "unexpected token",
}

// String implements fmt.Stringer interface.
func (k ErrKind) String() string {
	if msg, ok := errKindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// SyntaxError is the structured error returned for a malformed
// querystring. Offset is the byte offset within the failing field's
// clause text, suitable for user display.
type SyntaxError struct {
	Kind   ErrKind
	Field  string
	Offset int
}

// Error implements error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s in field %q near offset %d", e.Kind, e.Field, e.Offset)
}

func syntaxError(kind ErrKind, field string, offset int) error {
	return errors.Trace(&SyntaxError{Kind: kind, Field: field, Offset: offset})
}

// AsSyntaxError unwraps err to the *SyntaxError it carries, if any.
func AsSyntaxError(err error) (*SyntaxError, bool) {
	se, ok := errors.Cause(err).(*SyntaxError)
	return se, ok
}
