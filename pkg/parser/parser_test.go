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
	"testing"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

// To each input, associate its expected canonical form.
var exprToCanonical = map[string]string{
	"a":           "a",
	"(a)":         "a",
	"((a))":       "a",
	"true":        "true",
	"T":           "true",
	"1":           "true",
	"false":       "false",
	"0":           "false",
	"!a":          "!a",
	"!!a":         "!!a",
	"!(a)":        "!a",
	"!T":          "!true",
	"a & b":       "a & b",
	"a AND b":     "a & b",
	"a ∧ b":       "a & b",
	"a | b":       "a | b",
	"a v b":       "a | b",
	"T & F":       "true & false",
	"a => b":      "a => b",
	"a->b":        "a => b",
	"a <=> b":     "a <=> b",
	"a<->b":       "a <=> b",
	"!(a & b)":    "!(a & b)",
	"¬(a∧b)":      "!(a & b)",
	"!a & b":      "!a & b",
	"!a | !b":     "!a | !b",
	"a & b | c":   "(a & b) | c",
	"a | b & c":   "a | (b & c)",
	"a AND b | c": "(a & b) | c",
	"a & b & c":   "(a & b) & c",
	"a | b | c":   "(a | b) | c",
	"a => b => c": "a => (b => c)",
	"a <=> b <=> c": "a <=> (b <=> c)",
	"a & b => c":    "(a & b) => c",
	"a => b <=> c":  "(a => b) <=> c",
	"(a | b) & c":   "(a | b) & c",
	"a & (b | c)":   "a & (b | c)",
	"!(a | b) & !c": "!(a | b) & !c",
	"a=>((!c)|(b=>c))": "a => (!c | (b => c))",
	"x0 | x1":         "x0 | x1",
}

// Inputs which must be rejected with a syntax error.
var malformedExprs = []string{
	"",
	"   ",
	"(",
	")",
	"(a",
	"a)",
	"(a))",
	"!",
	"a &",
	"& a",
	"a b",
	"a & & b",
	"a => => b",
	"a ! b",
	"()",
	"a # b",
}

func Test_Parser_01(t *testing.T) {
	for input, expected := range exprToCanonical {
		expr, err := Parse(input)
		//
		if err != nil {
			t.Errorf("could not parse expression %q: %v", input, err)
		} else if expr.String() != expected {
			t.Errorf("for expression %q, expected %q, got %q", input, expected, expr.String())
		}
	}
}

func Test_Parser_02(t *testing.T) {
	for _, input := range malformedExprs {
		if expr, err := Parse(input); err == nil {
			t.Errorf("parsing %q unexpectedly succeeded as %q", input, expr.String())
		}
	}
}

func Test_Parser_03(t *testing.T) {
	// Canonical output parses back to a structurally identical tree.
	for input := range exprToCanonical {
		expr, err := Parse(input)
		//
		if err != nil {
			t.Errorf("could not parse expression %q: %v", input, err)
			continue
		}
		//
		reparsed, err := Parse(expr.String())
		//
		if err != nil {
			t.Errorf("could not reparse %q: %v", expr.String(), err)
		} else if !logic.Equal(expr, reparsed) {
			t.Errorf("round trip of %q changed %q into %q", input, expr.String(), reparsed.String())
		}
	}
}

func Test_Parser_04(t *testing.T) {
	// Double negation parses to the expected tree shape.
	expr, err := Parse("!!a")
	//
	if err != nil {
		t.Fatalf("could not parse !!a: %v", err)
	}
	//
	outer, ok := expr.(*logic.Negation)
	if !ok {
		t.Fatalf("expected negation, got %q", expr.String())
	}
	//
	inner, ok := outer.Child.(*logic.Negation)
	if !ok {
		t.Fatalf("expected nested negation, got %q", outer.Child.String())
	}
	//
	if v, ok := inner.Child.(*logic.Variable); !ok || v.Name != "a" {
		t.Errorf("expected variable a, got %q", inner.Child.String())
	}
}

func Test_Parser_05(t *testing.T) {
	// Mixed word and symbol syntax evaluates with the intended precedence.
	expr, err := Parse("a AND b | c")
	//
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	//
	value, evalErr := logic.Evaluate(expr, map[string]bool{"a": true, "b": false, "c": true})
	//
	if evalErr != nil {
		t.Fatalf("could not evaluate: %v", evalErr)
	} else if !value {
		t.Errorf("expected true, got false")
	}
}

func Test_Parser_06(t *testing.T) {
	// Implication chains associate rightwards.
	expr, err := Parse("a => b => c")
	//
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	//
	outer, ok := expr.(*logic.Binary)
	if !ok || outer.Op != logic.IMP {
		t.Fatalf("expected implication, got %q", expr.String())
	}
	//
	if _, ok := outer.Left.(*logic.Variable); !ok {
		t.Errorf("expected variable on the left, got %q", outer.Left.String())
	}
	//
	if right, ok := outer.Right.(*logic.Binary); !ok || right.Op != logic.IMP {
		t.Errorf("expected implication on the right, got %q", outer.Right.String())
	}
}

func Test_Parser_07(t *testing.T) {
	// Conjunction chains associate leftwards.
	expr, err := Parse("a & b & c")
	//
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	//
	outer, ok := expr.(*logic.Binary)
	if !ok || outer.Op != logic.AND {
		t.Fatalf("expected conjunction, got %q", expr.String())
	}
	//
	if left, ok := outer.Left.(*logic.Binary); !ok || left.Op != logic.AND {
		t.Errorf("expected conjunction on the left, got %q", outer.Left.String())
	}
}
