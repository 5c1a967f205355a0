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

	"github.com/matteo-psnt/proof-generator/pkg/util/source"
)

func Test_Tokenizer_01(t *testing.T) {
	checkTokens(t, "", nil)
	checkTokens(t, "   ", nil)
}

func Test_Tokenizer_02(t *testing.T) {
	checkTokens(t, "a", []string{"a"})
	checkTokens(t, "(a)", []string{"(", "a", ")"})
	checkTokens(t, "!a", []string{"!", "a"})
}

func Test_Tokenizer_03(t *testing.T) {
	// Every conjunction synonym canonicalises identically.
	for _, input := range []string{"a & b", "a ∧ b", "a ^ b", "a && b", "a * b", "a AND b", "a and b", "a And b"} {
		checkTokens(t, input, []string{"a", "&", "b"})
	}
}

func Test_Tokenizer_04(t *testing.T) {
	// Every disjunction synonym canonicalises identically.
	for _, input := range []string{"a | b", "a ∨ b", "a || b", "a + b", "a v b", "a OR b", "a or b"} {
		checkTokens(t, input, []string{"a", "|", "b"})
	}
}

func Test_Tokenizer_05(t *testing.T) {
	// Every negation synonym canonicalises identically.
	for _, input := range []string{"!a", "¬a", "~a", "NOT a", "not a"} {
		checkTokens(t, input, []string{"!", "a"})
	}
}

func Test_Tokenizer_06(t *testing.T) {
	// Every implication synonym canonicalises identically.
	for _, input := range []string{"a => b", "a -> b", "a → b", "a IMP b", "a implies b"} {
		checkTokens(t, input, []string{"a", "=>", "b"})
	}
}

func Test_Tokenizer_07(t *testing.T) {
	// Every biconditional synonym canonicalises identically.  In particular,
	// <-> must not be half-consumed as ->.
	for _, input := range []string{"a <=> b", "a <-> b", "a ↔ b", "a IFF b", "a iff b", "a equiv b"} {
		checkTokens(t, input, []string{"a", "<=>", "b"})
	}
}

func Test_Tokenizer_08(t *testing.T) {
	// Constant synonyms.
	for _, input := range []string{"true", "TRUE", "True", "T", "t", "1"} {
		checkTokens(t, input, []string{"true"})
	}
	//
	for _, input := range []string{"false", "FALSE", "False", "F", "f", "0"} {
		checkTokens(t, input, []string{"false"})
	}
}

func Test_Tokenizer_09(t *testing.T) {
	// Unicode operators bind correctly with or without whitespace.
	checkTokens(t, "a∧b", []string{"a", "&", "b"})
	checkTokens(t, "¬(a∨b)", []string{"!", "(", "a", "|", "b", ")"})
	checkTokens(t, "a→b↔c", []string{"a", "=>", "b", "<=>", "c"})
}

func Test_Tokenizer_10(t *testing.T) {
	// Single-character constants are recognised at token boundaries only.
	checkTokens(t, "T & F", []string{"true", "&", "false"})
	checkTokens(t, "T&F", []string{"true", "&", "false"})
	checkTokens(t, "(T)", []string{"(", "true", ")"})
	checkTokens(t, "!1", []string{"!", "true"})
	checkTokens(t, "0|a", []string{"false", "|", "a"})
}

func Test_Tokenizer_11(t *testing.T) {
	// Names containing synonym letters or digits stay variables.
	checkTokens(t, "Tx", []string{"Tx"})
	checkTokens(t, "a1", []string{"a1"})
	checkTokens(t, "x0 | x1", []string{"x0", "|", "x1"})
	checkTokens(t, "ANDb", []string{"ANDb"})
	checkTokens(t, "vote", []string{"vote"})
}

func Test_Tokenizer_12(t *testing.T) {
	checkTokenizerFails(t, "#")
	checkTokenizerFails(t, "a $ b")
	// A multi-digit number is not a constant.
	checkTokenizerFails(t, "10")
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkTokens(t *testing.T, input string, expected []string) {
	srcfile := source.NewSourceFile("expr", []byte(input))
	tokens, err := Tokenize(srcfile)
	//
	if err != nil {
		t.Errorf("tokenizing %q failed: %v", input, err)
		return
	}
	//
	texts := make([]string, len(tokens))
	for i, token := range tokens {
		texts[i] = token.Text
	}
	//
	if len(texts) != len(expected) {
		t.Errorf("tokenizing %q: expected %v, got %v", input, expected, texts)
		return
	}
	//
	for i := range texts {
		if texts[i] != expected[i] {
			t.Errorf("tokenizing %q: expected %v, got %v", input, expected, texts)
			return
		}
	}
}

func checkTokenizerFails(t *testing.T, input string) {
	srcfile := source.NewSourceFile("expr", []byte(input))
	//
	if _, err := Tokenize(srcfile); err == nil {
		t.Errorf("tokenizing %q unexpectedly succeeded", input)
	}
}
