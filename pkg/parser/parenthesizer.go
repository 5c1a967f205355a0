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

	"github.com/matteo-psnt/proof-generator/pkg/util/source"
)

// binaryPrecedence lists the binary connectives from highest to lowest
// precedence, together with their associativity.  Left-associative operators
// are bracketed left-to-right, right-associative ones right-to-left.
var binaryPrecedence = []struct {
	kind      uint
	rightward bool
}{
	{AND, false},
	{OR, false},
	{IMP, true},
	{IFF, true},
}

// Parenthesize a token stream such that precedence is encoded exclusively by
// explicit parentheses.  The stream which results parses identically under a
// naive grouping-only reading and under the precedence-layered constructor.
// A stream which already consists of a single balanced parenthesization is
// returned untouched.
func Parenthesize(srcfile *source.File, tokens []Token) ([]Token, *source.SyntaxError) {
	// An empty stream has nothing to build an expression from.
	if len(tokens) == 0 {
		return nil, srcfile.SyntaxError(source.NewSpan(0, 0), "empty expression")
	}
	// Check parentheses balance up front, so matching closers can be assumed
	// everywhere below.
	if err := checkBalanced(srcfile, tokens); err != nil {
		return nil, err
	}
	// Leave a single outer group untouched.
	if tokens[0].Kind == LBRACE && matchingClose(tokens, 0) == len(tokens)-1 {
		return tokens, nil
	}
	// Wrap every negation in an explicit group.
	tokens, err := wrapNegations(srcfile, tokens)
	//
	if err != nil {
		return nil, err
	}
	// Bracket binary operators in precedence order.
	for _, level := range binaryPrecedence {
		if tokens, err = bracketOperator(srcfile, tokens, level.kind, level.rightward); err != nil {
			return nil, err
		}
	}
	//
	return tokens, nil
}

// Check that every parenthesis has a matching partner.
func checkBalanced(srcfile *source.File, tokens []Token) *source.SyntaxError {
	depth := 0
	//
	for _, t := range tokens {
		switch t.Kind {
		case LBRACE:
			depth++
		case RBRACE:
			if depth == 0 {
				return srcfile.SyntaxError(t.Span, "unbalanced parentheses")
			}
			//
			depth--
		}
	}
	//
	if depth != 0 {
		end := tokens[len(tokens)-1].Span.End()
		return srcfile.SyntaxError(source.NewSpan(end, end), "unbalanced parentheses")
	}
	//
	return nil
}

// Find the index of the closing parenthesis matching an opening parenthesis
// at a given index.  Balance has been established beforehand.
func matchingClose(tokens []Token, index int) int {
	depth := 0
	//
	for i := index; i < len(tokens); i++ {
		switch tokens[i].Kind {
		case LBRACE:
			depth++
		case RBRACE:
			depth--
			//
			if depth == 0 {
				return i
			}
		}
	}
	//
	panic("unreachable")
}

// Find the index of the opening parenthesis matching a closing parenthesis
// at a given index.
func matchingOpen(tokens []Token, index int) int {
	depth := 0
	//
	for i := index; i >= 0; i-- {
		switch tokens[i].Kind {
		case RBRACE:
			depth++
		case LBRACE:
			depth--
			//
			if depth == 0 {
				return i
			}
		}
	}
	//
	panic("unreachable")
}

// Synthetic parenthesis inserted at a given position of the original text.
func synthetic(kind uint, at int) Token {
	return Token{kind, canonicalText[kind], source.NewSpan(at, at)}
}

// Wrap every negation (at any depth) into an explicit group, so that !X
// becomes (!X).  Chains of negations resolve recursively, hence !!a becomes
// (!(!a)).
func wrapNegations(srcfile *source.File, tokens []Token) ([]Token, *source.SyntaxError) {
	var out []Token
	//
	for i := 0; i < len(tokens); {
		t := tokens[i]
		//
		switch t.Kind {
		case NOT:
			wrapped, consumed, err := wrapNegation(srcfile, tokens, i)
			//
			if err != nil {
				return nil, err
			}
			//
			out = append(out, wrapped...)
			i += consumed
		case LBRACE:
			// Recurse into the group's contents.
			close := matchingClose(tokens, i)
			inner, err := wrapNegations(srcfile, tokens[i+1:close])
			//
			if err != nil {
				return nil, err
			}
			//
			out = append(out, tokens[i])
			out = append(out, inner...)
			out = append(out, tokens[close])
			i = close + 1
		default:
			out = append(out, t)
			i++
		}
	}
	//
	return out, nil
}

// Wrap a single negation whose operator sits at a given index, returning the
// wrapped sequence along with the number of original tokens consumed.
func wrapNegation(srcfile *source.File, tokens []Token, index int) ([]Token, int, *source.SyntaxError) {
	var (
		not = tokens[index]
		out []Token
	)
	//
	if index+1 >= len(tokens) {
		return nil, 0, srcfile.SyntaxError(not.Span, "missing operand for '!'")
	}
	//
	operand := tokens[index+1]
	//
	switch {
	case operand.Kind == NOT:
		// Chain of negations, resolved recursively.
		inner, consumed, err := wrapNegation(srcfile, tokens, index+1)
		//
		if err != nil {
			return nil, 0, err
		}
		//
		out = append(out, synthetic(LBRACE, not.Span.Start()), not)
		out = append(out, inner...)
		out = append(out, synthetic(RBRACE, not.Span.End()))
		//
		return out, consumed + 1, nil
	case operand.Kind == LBRACE:
		// Parenthesized group, whose contents still need processing.
		close := matchingClose(tokens, index+1)
		inner, err := wrapNegations(srcfile, tokens[index+2:close])
		//
		if err != nil {
			return nil, 0, err
		}
		//
		out = append(out, synthetic(LBRACE, not.Span.Start()), not, operand)
		out = append(out, inner...)
		out = append(out, tokens[close], synthetic(RBRACE, not.Span.End()))
		//
		return out, close - index + 1, nil
	case operand.Atom():
		out = append(out, synthetic(LBRACE, not.Span.Start()), not, operand, synthetic(RBRACE, operand.Span.End()))
		//
		return out, 2, nil
	}
	//
	return nil, 0, srcfile.SyntaxError(not.Span, "missing operand for '!'")
}

// Bracket every occurrence of a given binary operator which is not already
// inside parentheses.  Each bracketing wraps the minimal "L op R" span, so
// once wrapped the operator no longer sits at depth zero; iteration proceeds
// until no occurrence remains.
func bracketOperator(srcfile *source.File, tokens []Token, kind uint, rightward bool) ([]Token, *source.SyntaxError) {
	for {
		index := findOperator(tokens, kind, rightward)
		//
		if index < 0 {
			return tokens, nil
		}
		//
		start, err := leftOperand(srcfile, tokens, index)
		//
		if err != nil {
			return nil, err
		}
		//
		end, err := rightOperand(srcfile, tokens, index)
		//
		if err != nil {
			return nil, err
		}
		// Rebuild the stream with the span bracketed.
		var out []Token
		//
		out = append(out, tokens[:start]...)
		out = append(out, synthetic(LBRACE, tokens[start].Span.Start()))
		out = append(out, tokens[start:end+1]...)
		out = append(out, synthetic(RBRACE, tokens[end].Span.End()))
		out = append(out, tokens[end+1:]...)
		//
		tokens = out
	}
}

// Find an occurrence of the given operator at parenthesis depth zero, either
// the leftmost (left-associative) or rightmost (right-associative), or -1 if
// none remains.
func findOperator(tokens []Token, kind uint, rightward bool) int {
	var (
		depth = 0
		found = -1
	)
	//
	for i, t := range tokens {
		switch t.Kind {
		case LBRACE:
			depth++
		case RBRACE:
			depth--
		case kind:
			if depth == 0 {
				if !rightward {
					return i
				}
				//
				found = i
			}
		}
	}
	//
	return found
}

// Identify the start of the operand group immediately left of an operator.
func leftOperand(srcfile *source.File, tokens []Token, index int) (int, *source.SyntaxError) {
	op := tokens[index]
	//
	if index == 0 {
		return 0, srcfile.SyntaxError(op.Span, fmt.Sprintf("missing operand for %q", op.Text))
	}
	//
	left := tokens[index-1]
	//
	switch {
	case left.Kind == RBRACE:
		return matchingOpen(tokens, index-1), nil
	case left.Atom():
		return index - 1, nil
	}
	//
	return 0, srcfile.SyntaxError(op.Span, fmt.Sprintf("missing operand for %q", op.Text))
}

// Identify the end of the operand group immediately right of an operator.
func rightOperand(srcfile *source.File, tokens []Token, index int) (int, *source.SyntaxError) {
	op := tokens[index]
	//
	if index+1 >= len(tokens) {
		return 0, srcfile.SyntaxError(op.Span, fmt.Sprintf("missing operand for %q", op.Text))
	}
	//
	right := tokens[index+1]
	//
	switch {
	case right.Kind == LBRACE:
		return matchingClose(tokens, index+1), nil
	case right.Atom():
		return index + 1, nil
	}
	//
	return 0, srcfile.SyntaxError(op.Span, fmt.Sprintf("missing operand for %q", op.Text))
}
