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
package truthtable

import (
	"fmt"
	"testing"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

func Test_Table_01(t *testing.T) {
	// The excluded middle is a two-row tautology.
	a := logic.Var("a")
	table, err := New(logic.Or(a, logic.Not(a)))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if table.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Rows())
	}
	//
	for i := uint(0); i < table.Rows(); i++ {
		if !table.Result(i) {
			t.Errorf("row %d unexpectedly false", i)
		}
	}
	//
	analysis := table.Analyze()
	//
	if !analysis.Tautology || analysis.Contradiction || analysis.Contingent {
		t.Errorf("misclassified: %+v", analysis)
	}
}

func Test_Table_02(t *testing.T) {
	// Row order: the first variable in sorted order rides the high bit.
	table, err := New(logic.And(logic.Var("b"), logic.Var("a")))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkRow(t, table, 0, map[string]bool{"a": false, "b": false}, false)
	checkRow(t, table, 1, map[string]bool{"a": false, "b": true}, false)
	checkRow(t, table, 2, map[string]bool{"a": true, "b": false}, false)
	checkRow(t, table, 3, map[string]bool{"a": true, "b": true}, true)
}

func Test_Table_03(t *testing.T) {
	// A variable-free expression has a single row.
	table, err := New(logic.True())
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	if table.Rows() != 1 || !table.Result(0) {
		t.Errorf("unexpected table for a constant")
	}
	//
	if ratio := table.Analyze().SatisfiabilityRatio; ratio != 1.0 {
		t.Errorf("expected ratio 1.0, got %f", ratio)
	}
}

func Test_Table_04(t *testing.T) {
	// The satisfiable count agrees with direct evaluation.
	exprs := []logic.Expr{
		logic.Var("a"),
		logic.And(logic.Var("a"), logic.Var("b")),
		logic.Imp(logic.Var("a"), logic.Var("b")),
		logic.Iff(logic.Var("a"), logic.Var("b")),
		logic.And(logic.Var("a"), logic.Not(logic.Var("a"))),
	}
	//
	for _, e := range exprs {
		table, err := New(e)
		//
		if err != nil {
			t.Fatal(err)
		}
		//
		count := uint(0)
		//
		for i := uint(0); i < table.Rows(); i++ {
			value, err := logic.Evaluate(e, table.Assignment(i))
			//
			if err != nil {
				t.Fatal(err)
			}
			//
			if value {
				count++
			}
			//
			if value != table.Result(i) {
				t.Errorf("row %d of %q disagrees with evaluation", i, e)
			}
		}
		//
		analysis := table.Analyze()
		//
		if analysis.SatisfiableCount != count {
			t.Errorf("expected %d satisfiable rows for %q, got %d", count, e, analysis.SatisfiableCount)
		}
		// Extreme counts coincide exactly with the two-sided classification.
		extreme := analysis.SatisfiableCount == 0 || analysis.SatisfiableCount == analysis.TotalRows
		//
		if extreme != (analysis.Tautology || analysis.Contradiction) {
			t.Errorf("inconsistent classification for %q: %+v", e, analysis)
		}
	}
}

func Test_Table_05(t *testing.T) {
	// The contradiction classifies as such.
	a := logic.Var("a")
	table, err := New(logic.And(a, logic.Not(a)))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	analysis := table.Analyze()
	//
	if !analysis.Contradiction || analysis.SatisfiabilityRatio != 0.0 {
		t.Errorf("misclassified: %+v", analysis)
	}
}

func Test_Table_06(t *testing.T) {
	// Sixteen variables is one too many.
	var e logic.Expr = logic.Var("x00")
	//
	for i := 1; i < 16; i++ {
		e = logic.Or(e, logic.Var(fmt.Sprintf("x%02d", i)))
	}
	//
	if _, err := New(e); err == nil {
		t.Error("expected a size error for 16 variables")
	}
}

func Test_Table_07(t *testing.T) {
	table, err := New(logic.And(logic.Var("a"), logic.Var("b")))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := "a,b,Result\n" +
		"0,0,0\n" +
		"0,1,0\n" +
		"1,0,0\n" +
		"1,1,1\n"
	//
	if actual := table.CSV(); actual != expected {
		t.Errorf("unexpected CSV:\n%q\nvs expected\n%q", actual, expected)
	}
}

func Test_Table_08(t *testing.T) {
	table, err := New(logic.And(logic.Var("a"), logic.Var("b")))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := "a | b | Result\n" +
		"--------------\n" +
		"F | F | F\n" +
		"F | T | F\n" +
		"T | F | F\n" +
		"T | T | T"
	//
	if actual := table.Render(false); actual != expected {
		t.Errorf("unexpected rendering:\n%s\nvs expected\n%s", actual, expected)
	}
}

func Test_Table_09(t *testing.T) {
	table, err := New(logic.Var("a"))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := "a     | Result\n" +
		"--------------\n" +
		"false | false\n" +
		"true  | true"
	//
	if actual := table.Render(true); actual != expected {
		t.Errorf("unexpected rendering:\n%s\nvs expected\n%s", actual, expected)
	}
}

func Test_Equivalent_01(t *testing.T) {
	var (
		a = logic.Var("a")
		b = logic.Var("b")
	)
	//
	checkEquivalent(t, logic.Imp(a, b), logic.Or(logic.Not(a), b), true)
	checkEquivalent(t, logic.Not(logic.And(a, b)), logic.Or(logic.Not(a), logic.Not(b)), true)
	checkEquivalent(t, a, b, false)
	checkEquivalent(t, logic.And(a, b), logic.Or(a, b), false)
	// Disjoint variable sets enumerate over the union.
	checkEquivalent(t, logic.Or(a, logic.Not(a)), logic.Or(b, logic.Not(b)), true)
}

func Test_Equivalent_02(t *testing.T) {
	// The variable bound applies to the combined sets.
	var (
		e1 logic.Expr = logic.Var("x00")
		e2 logic.Expr = logic.Var("y00")
	)
	//
	for i := 1; i < 9; i++ {
		e1 = logic.Or(e1, logic.Var(fmt.Sprintf("x%02d", i)))
		e2 = logic.Or(e2, logic.Var(fmt.Sprintf("y%02d", i)))
	}
	//
	if _, err := Equivalent(e1, e2); err == nil {
		t.Error("expected a size error for 18 combined variables")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRow(t *testing.T, table *Table, row uint, expected map[string]bool, result bool) {
	values := table.Assignment(row)
	//
	for name, value := range expected {
		if values[name] != value {
			t.Errorf("row %d: expected %s=%t, got %t", row, name, value, values[name])
		}
	}
	//
	if table.Result(row) != result {
		t.Errorf("row %d: expected result %t", row, result)
	}
}

func checkEquivalent(t *testing.T, e1 logic.Expr, e2 logic.Expr, expected bool) {
	equivalent, err := Equivalent(e1, e2)
	//
	if err != nil {
		t.Errorf("equivalence of %q and %q failed: %v", e1, e2, err)
	} else if equivalent != expected {
		t.Errorf("expected equivalence %t for %q and %q", expected, e1, e2)
	}
}
