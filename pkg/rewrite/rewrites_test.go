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
package rewrite

import (
	"testing"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
)

var (
	vP = logic.Var("P")
	vQ = logic.Var("Q")
)

func Test_Rewrites_01(t *testing.T) {
	// Applying the double negation at the root is among the rewrites.
	rewrites := All(logic.Not(logic.Not(vP)), rules.All(), 15)
	//
	checkContains(t, rewrites, vP, rules.DoubleNegation)
}

func Test_Rewrites_02(t *testing.T) {
	// A rewrite of the left operand lifts into the enclosing expression
	// whilst the right operand is held fixed.
	e := logic.And(logic.Not(logic.Not(vP)), vQ)
	rewrites := All(e, rules.All(), 15)
	//
	checkContains(t, rewrites, logic.And(vP, vQ), rules.DoubleNegation)
}

func Test_Rewrites_03(t *testing.T) {
	// Likewise for the right operand.
	e := logic.Or(vQ, logic.Imp(vP, vQ))
	rewrites := All(e, rules.All(), 15)
	//
	checkContains(t, rewrites, logic.Or(vQ, logic.Or(logic.Not(vP), vQ)), rules.ImplicationElimination)
}

func Test_Rewrites_04(t *testing.T) {
	// And through a negation.
	e := logic.Not(logic.Imp(vP, vQ))
	rewrites := All(e, rules.All(), 15)
	//
	checkContains(t, rewrites, logic.Not(logic.Or(logic.Not(vP), vQ)), rules.ImplicationElimination)
}

func Test_Rewrites_05(t *testing.T) {
	// A tight length budget suppresses every expansive rewrite: of the
	// conjunction's rewrites, only the commutation fits in three nodes.
	rewrites := All(logic.And(vP, vQ), rules.All(), 3)
	//
	if len(rewrites) != 1 {
		t.Fatalf("expected exactly one rewrite, got %d", len(rewrites))
	}
	//
	checkContains(t, rewrites, logic.And(vQ, vP), rules.CommutativityAND)
}

func Test_Rewrites_06(t *testing.T) {
	// Budgets tighten as the driver descends: a subexpression may only grow
	// into the slack left by its siblings.
	e := logic.And(vP, vQ)
	// Root expansion to size five is allowed, and rewriting either variable
	// in place to size three (total five) exactly fills a budget of five
	// minus the fixed sibling and operator; nothing larger fits.
	for _, rw := range All(e, rules.All(), 5) {
		if rw.Expr.Size() > 5 {
			t.Errorf("rewrite %q exceeds the length budget", rw.Expr)
		}
	}
}

func Test_Rewrites_07(t *testing.T) {
	// Enumeration is deterministic.
	e := logic.Imp(logic.Not(logic.And(vP, vQ)), vQ)
	first := All(e, rules.All(), 15)
	second := All(e, rules.All(), 15)
	//
	if len(first) != len(second) {
		t.Fatalf("enumeration sizes differ: %d vs %d", len(first), len(second))
	}
	//
	for i := range first {
		if !logic.Equal(first[i].Expr, second[i].Expr) || first[i].Rule != second[i].Rule {
			t.Errorf("enumeration differs at position %d: %q vs %q", i, first[i].Expr, second[i].Expr)
		}
	}
}

func Test_Rewrites_08(t *testing.T) {
	// A rule which panics during application is skipped rather than fatal.
	faulty := rules.New("Faulty", "none", "always explodes",
		func(e logic.Expr) bool { return true },
		func(e logic.Expr) logic.Expr { panic("boom") })
	//
	rewrites := All(vP, []*rules.Rule{faulty}, 15)
	//
	if len(rewrites) != 0 {
		t.Errorf("expected no rewrites from the faulty rule, got %d", len(rewrites))
	}
}

func Test_Forms_01(t *testing.T) {
	// One step away from a bare variable sit its four padded forms.
	forms := Forms(vP, rules.All(), 1, 15)
	//
	if len(forms) != 5 {
		t.Fatalf("expected 5 forms, got %d", len(forms))
	}
	//
	if !logic.Equal(forms[0], vP) {
		t.Errorf("expected the start expression first, got %q", forms[0])
	}
	//
	checkForm(t, forms, logic.And(vP, vP))
	checkForm(t, forms, logic.Or(vP, vP))
	checkForm(t, forms, logic.And(vP, logic.True()))
	checkForm(t, forms, logic.Or(vP, logic.False()))
}

func Test_Forms_02(t *testing.T) {
	// The length budget keeps the enumeration finite even though half the
	// catalogue grows every expression it touches.
	forms := Forms(vP, rules.All(), 10, 5)
	//
	for _, form := range forms {
		if form.Size() > 5 {
			t.Errorf("form %q exceeds the length budget", form)
		}
	}
}

func Test_Forms_03(t *testing.T) {
	// No form appears twice.
	var (
		forms = Forms(logic.And(vP, vQ), rules.All(), 2, 7)
		seen  = make(map[string]bool)
	)
	//
	for _, form := range forms {
		if seen[form.Hash()] {
			t.Errorf("form %q enumerated twice", form)
		}
		//
		seen[form.Hash()] = true
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkContains(t *testing.T, rewrites []Rewrite, expected logic.Expr, rule *rules.Rule) {
	for _, rw := range rewrites {
		if logic.Equal(rw.Expr, expected) && rw.Rule == rule {
			return
		}
	}
	//
	t.Errorf("no rewrite produced %q via %s", expected, rule.Name())
}

func checkForm(t *testing.T, forms []logic.Expr, expected logic.Expr) {
	for _, form := range forms {
		if logic.Equal(form, expected) {
			return
		}
	}
	//
	t.Errorf("form %q not enumerated", expected)
}
