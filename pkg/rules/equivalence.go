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
package rules

import "github.com/matteo-psnt/proof-generator/pkg/logic"

// Equivalence unfolds a biconditional into the conjunction of both
// implications.
var Equivalence = &Rule{
	name:        "Equivalence",
	category:    "equiv",
	description: "Equivalence: (P ⟺ Q) ⟺ ((P ⇒ Q) ∧ (Q ⇒ P))",
	canApply: func(e logic.Expr) bool {
		_, ok := binary(e, logic.IFF)
		return ok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.IFF)
		return logic.And(logic.Imp(b.Left, b.Right), logic.Imp(b.Right, b.Left))
	},
}

// EquivalenceReverse folds the conjunction of two converse implications back
// into a biconditional.  The operands must cross-match structurally.
var EquivalenceReverse = &Rule{
	name:        "EquivalenceReverse",
	category:    "equiv",
	description: "Equivalence: ((P ⇒ Q) ∧ (Q ⇒ P)) ⟺ (P ⟺ Q)",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.AND)
		//
		if !ok {
			return false
		}
		//
		l, lok := binary(b.Left, logic.IMP)
		r, rok := binary(b.Right, logic.IMP)
		//
		return lok && rok && logic.Equal(l.Left, r.Right) && logic.Equal(l.Right, r.Left)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		l, _ := binary(b.Left, logic.IMP)
		//
		return logic.Iff(l.Left, l.Right)
	},
}
