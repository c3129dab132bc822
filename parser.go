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

// Grammar, precedence high to low: parentheses, NOT, AND, OR.
//
//	expr     := or_expr
//	or_expr  := and_expr ( "OR" and_expr )*
//	and_expr := not_expr ( "AND" not_expr )*
//	not_expr := "NOT" not_expr | atom
//	atom     := "(" expr ")" | LITERAL
//
// OR and AND chains are left-associative, so "A AND B OR C" parses as
// "(A AND B) OR C" and "NOT A AND B" as "(NOT A) AND B".
type exprParser struct {
	sc    *scanner
	field string
	tok   token
	// afterOp is true when the current token directly follows an
	// operator keyword; it picks the error kind when an operand is
	// missing.
	afterOp  bool
	depth    int
	maxDepth int
}

// parseClause parses one field clause's term text into an expression
// tree.
func parseClause(field, term string, maxDepth int) (ast.ExprNode, error) {
	p := &exprParser{sc: newScanner(term), field: field, maxDepth: maxDepth}
	p.next()
	if p.tok.kind == tokEOF {
		return nil, syntaxError(ErrEmptyExpression, field, p.tok.offset)
	}
	node, err := p.parseOr()
	if err != nil {
		return nil, errors.Trace(err)
	}
	switch p.tok.kind {
	case tokEOF:
		return node, nil
	case tokRParen:
		return nil, syntaxError(ErrUnbalancedParens, field, p.tok.offset)
	default:
		return nil, syntaxError(ErrUnexpectedToken, field, p.tok.offset)
	}
}

func (p *exprParser) next() {
	p.tok = p.sc.next()
}

func (p *exprParser) parseOr() (ast.ExprNode, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, errors.Trace(err)
	}
	for p.tok.kind == tokOr {
		p.next()
		p.afterOp = true
		r, err := p.parseAnd()
		if err != nil {
			return nil, errors.Trace(err)
		}
		node = &ast.BinaryExpr{Op: opcode.LogicOr, L: node, R: r}
	}
	return node, nil
}

func (p *exprParser) parseAnd() (ast.ExprNode, error) {
	node, err := p.parseNot()
	if err != nil {
		return nil, errors.Trace(err)
	}
	for p.tok.kind == tokAnd {
		p.next()
		p.afterOp = true
		r, err := p.parseNot()
		if err != nil {
			return nil, errors.Trace(err)
		}
		node = &ast.BinaryExpr{Op: opcode.LogicAnd, L: node, R: r}
	}
	return node, nil
}

func (p *exprParser) parseNot() (ast.ExprNode, error) {
	if p.tok.kind != tokNot {
		return p.parseAtom()
	}
	if err := p.enter(p.tok.offset); err != nil {
		return nil, errors.Trace(err)
	}
	defer p.leave()
	p.next()
	p.afterOp = true
	node, err := p.parseNot()
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &ast.UnaryNotExpr{V: node}, nil
}

func (p *exprParser) parseAtom() (ast.ExprNode, error) {
	switch p.tok.kind {
	case tokLiteral:
		node := &ast.Literal{Text: p.tok.lit, Mode: p.tok.mode, Offset: p.tok.offset}
		p.afterOp = false
		p.next()
		return node, nil
	case tokLParen:
		return p.parseParen()
	case tokEOF, tokRParen:
		if p.afterOp {
			return nil, syntaxError(ErrDanglingOperator, p.field, p.tok.offset)
		}
		return nil, syntaxError(ErrEmptyExpression, p.field, p.tok.offset)
	default:
		return nil, syntaxError(ErrUnexpectedToken, p.field, p.tok.offset)
	}
}

func (p *exprParser) parseParen() (ast.ExprNode, error) {
	open := p.tok.offset
	if err := p.enter(open); err != nil {
		return nil, errors.Trace(err)
	}
	defer p.leave()
	p.next()
	p.afterOp = false
	node, err := p.parseOr()
	if err != nil {
		return nil, errors.Trace(err)
	}
	if p.tok.kind != tokRParen {
		return nil, syntaxError(ErrUnbalancedParens, p.field, open)
	}
	p.afterOp = false
	p.next()
	return node, nil
}

func (p *exprParser) enter(offset int) error {
	p.depth++
	if p.depth > p.maxDepth {
		return syntaxError(ErrTooDeeplyNested, p.field, offset)
	}
	return nil
}

func (p *exprParser) leave() {
	p.depth--
}
