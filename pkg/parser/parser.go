// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"fmt"
	"regexp"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/util/source"
)

// Variables must begin with a letter; word synonyms of the connectives and
// constants have already been folded away by the tokenizer.
var variableRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Parse a given input string into a boolean expression.  The input may use
// any of the accepted surface syntaxes; the result is the canonical AST.
func Parse(input string) (logic.Expr, *source.SyntaxError) {
	srcfile := source.NewSourceFile("expr", []byte(input))
	// Tokenize
	tokens, err := Tokenize(srcfile)
	//
	if err != nil {
		return nil, err
	}
	// Make precedence explicit
	tokens, err = Parenthesize(srcfile, tokens)
	//
	if err != nil {
		return nil, err
	}
	// Construct the AST
	p := &astParser{srcfile, tokens, 0}
	expr, err := p.parseBiconditional()
	// Check all tokens consumed
	if err == nil && !p.done() {
		return nil, p.syntaxError(p.lookahead(), fmt.Sprintf("unexpected token %q", p.lookahead().Text))
	}
	//
	return expr, err
}

// astParser constructs an AST from a parenthesized token stream by recursive
// descent, layered by precedence.
type astParser struct {
	srcfile *source.File
	tokens  []Token
	// Position within the tokens
	index int
}

// Determine whether or not the parser has consumed all the available
// tokens.
func (p *astParser) done() bool {
	return p.index >= len(p.tokens)
}

// Biconditional is the lowest-precedence (outermost) layer, and associates
// to the right.
func (p *astParser) parseBiconditional() (logic.Expr, *source.SyntaxError) {
	left, err := p.parseImplication()
	//
	if err != nil {
		return nil, err
	}
	//
	if p.match(IFF) {
		right, err := p.parseBiconditional()
		//
		if err != nil {
			return nil, err
		}
		//
		return logic.Iff(left, right), nil
	}
	//
	return left, nil
}

// Implication also associates to the right.
func (p *astParser) parseImplication() (logic.Expr, *source.SyntaxError) {
	left, err := p.parseDisjunction()
	//
	if err != nil {
		return nil, err
	}
	//
	if p.match(IMP) {
		right, err := p.parseImplication()
		//
		if err != nil {
			return nil, err
		}
		//
		return logic.Imp(left, right), nil
	}
	//
	return left, nil
}

// Disjunction associates to the left.
func (p *astParser) parseDisjunction() (logic.Expr, *source.SyntaxError) {
	left, err := p.parseConjunction()
	//
	for err == nil && p.match(OR) {
		var right logic.Expr
		//
		right, err = p.parseConjunction()
		//
		if err == nil {
			left = logic.Or(left, right)
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return left, nil
}

// Conjunction associates to the left.
func (p *astParser) parseConjunction() (logic.Expr, *source.SyntaxError) {
	left, err := p.parseNegation()
	//
	for err == nil && p.match(AND) {
		var right logic.Expr
		//
		right, err = p.parseNegation()
		//
		if err == nil {
			left = logic.And(left, right)
		}
	}
	//
	if err != nil {
		return nil, err
	}
	//
	return left, nil
}

func (p *astParser) parseNegation() (logic.Expr, *source.SyntaxError) {
	if p.match(NOT) {
		child, err := p.parseNegation()
		//
		if err != nil {
			return nil, err
		}
		//
		return logic.Not(child), nil
	}
	//
	return p.parsePrimary()
}

// A primary is a parenthesized expression, a constant, or a variable.
func (p *astParser) parsePrimary() (logic.Expr, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		p.index++
		//
		expr, err := p.parseBiconditional()
		//
		if err != nil {
			return nil, err
		}
		//
		if !p.match(RBRACE) {
			return nil, p.syntaxError(p.lookahead(), "missing closing parenthesis")
		}
		//
		return expr, nil
	case TRUE:
		p.index++
		return logic.True(), nil
	case FALSE:
		p.index++
		return logic.False(), nil
	case IDENTIFIER:
		p.index++
		//
		if !variableRegex.MatchString(token.Text) {
			return nil, p.syntaxError(token, fmt.Sprintf("invalid variable name %q", token.Text))
		}
		//
		return logic.Var(token.Text), nil
	case END_OF:
		return nil, p.syntaxError(token, "missing operand")
	}
	//
	return nil, p.syntaxError(token, fmt.Sprintf("unexpected token %q", token.Text))
}

// Lookahead returns the next token, or a synthetic end-of-input token when
// none remains.
func (p *astParser) lookahead() Token {
	if p.done() {
		end := len(p.srcfile.Contents())
		return Token{END_OF, "", source.NewSpan(end, end)}
	}
	//
	return p.tokens[p.index]
}

func (p *astParser) match(kind uint) bool {
	if !p.done() && p.tokens[p.index].Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *astParser) syntaxError(token Token, msg string) *source.SyntaxError {
	return p.srcfile.SyntaxError(token.Span, msg)
}
