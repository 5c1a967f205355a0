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
	"strings"

	"github.com/matteo-psnt/proof-generator/pkg/util"
	"github.com/matteo-psnt/proof-generator/pkg/util/source"
	"github.com/matteo-psnt/proof-generator/pkg/util/source/lex"
)

// END_OF signals "end of input"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left parenthesis"
const LBRACE uint = 2

// RBRACE signals "right parenthesis"
const RBRACE uint = 3

// NOT represents logical negation
const NOT uint = 4

// AND represents logical conjunction
const AND uint = 5

// OR represents logical disjunction
const OR uint = 6

// IMP represents logical implication
const IMP uint = 7

// IFF represents logical biconditional
const IFF uint = 8

// TRUE represents the constant true
const TRUE uint = 9

// FALSE represents the constant false
const FALSE uint = 10

// IDENTIFIER signals a propositional variable
const IDENTIFIER uint = 11

// Token is a canonicalised lexical unit.  Whatever surface synonym was
// written in the input, Text always holds the canonical spelling for the
// token's kind, whilst Span still points back at the original characters.
type Token struct {
	Kind uint
	Text string
	Span source.Span
}

// Atom determines whether this token is an indivisible operand, i.e. a
// variable or constant.
func (t Token) Atom() bool {
	return t.Kind == IDENTIFIER || t.Kind == TRUE || t.Kind == FALSE
}

// Rule for describing whitespace
var whitespace lex.Scanner = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\n'),
	lex.Unit('\r')))

var identifierStart lex.Scanner = lex.Or(
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner = lex.And(identifierStart, identifierRest)

// Rule for a single character which could continue an identifier.  Digit
// constants must not match when followed by one of these, otherwise they
// would be carved out of larger identifiers.
var identifierChar lex.Scanner = lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

// lexing rules.  Longer operators must precede shorter operators sharing a
// prefix, hence <-> is listed before ->.
var rules []lex.LexRule = []lex.LexRule{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('<', '=', '>'), IFF),
	lex.Rule(lex.Unit('<', '-', '>'), IFF),
	lex.Rule(lex.Unit('↔'), IFF),
	lex.Rule(lex.Unit('=', '>'), IMP),
	lex.Rule(lex.Unit('-', '>'), IMP),
	lex.Rule(lex.Unit('→'), IMP),
	lex.Rule(lex.Unit('&', '&'), AND),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('∧'), AND),
	lex.Rule(lex.Unit('^'), AND),
	lex.Rule(lex.Unit('*'), AND),
	lex.Rule(lex.Unit('|', '|'), OR),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('∨'), OR),
	lex.Rule(lex.Unit('+'), OR),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('¬'), NOT),
	lex.Rule(lex.Unit('~'), NOT),
	lex.Rule(lex.NotFollowedBy(lex.Unit('1'), identifierChar), TRUE),
	lex.Rule(lex.NotFollowedBy(lex.Unit('0'), identifierChar), FALSE),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof(), END_OF),
}

// Word synonyms for operators and constants.  These are matched against the
// lower-cased identifier, making them whole-word and case-insensitive.
var wordSynonyms = map[string]uint{
	"and":     AND,
	"or":      OR,
	"v":       OR,
	"not":     NOT,
	"imp":     IMP,
	"implies": IMP,
	"iff":     IFF,
	"equiv":   IFF,
	"true":    TRUE,
	"t":       TRUE,
	"false":   FALSE,
	"f":       FALSE,
}

// Canonical spelling for each token kind (identifiers keep their own text).
var canonicalText = map[uint]string{
	LBRACE: "(",
	RBRACE: ")",
	NOT:    "!",
	AND:    "&",
	OR:     "|",
	IMP:    "=>",
	IFF:    "<=>",
	TRUE:   "true",
	FALSE:  "false",
}

// Tokenize a source file into a flat stream of canonical tokens.  Empty
// input yields an empty stream rather than an error; that is reported
// further down the pipeline.
func Tokenize(srcfile *source.File) ([]Token, *source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	raw := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		return nil, srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
	}
	// Remove any whitespace
	raw = util.RemoveMatching(raw, func(t lex.Token) bool {
		return t.Kind == WHITESPACE || t.Kind == END_OF
	})
	// Canonicalise the remainder
	tokens := make([]Token, len(raw))
	//
	for i, t := range raw {
		tokens[i] = canonicalise(srcfile, t)
	}
	//
	return tokens, nil
}

// Canonicalise a raw lexical token, folding word synonyms (AND, implies,
// etc) into their operator kinds.
func canonicalise(srcfile *source.File, token lex.Token) Token {
	var (
		kind = token.Kind
		text = lexeme(srcfile, token.Span)
	)
	//
	if kind == IDENTIFIER {
		if op, ok := wordSynonyms[strings.ToLower(text)]; ok {
			kind = op
		}
	}
	//
	if canonical, ok := canonicalText[kind]; ok {
		text = canonical
	}
	//
	return Token{kind, text, token.Span}
}

// Get the text representing the given span as a string.
func lexeme(srcfile *source.File, span source.Span) string {
	return string(srcfile.Contents()[span.Start():span.End()])
}
