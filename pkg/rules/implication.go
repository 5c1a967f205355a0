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

// ImplicationElimination rewrites an implication as a disjunction.
var ImplicationElimination = &Rule{
	name:        "ImplicationElimination",
	category:    "impl",
	description: "Implication Elimination: (P ⇒ Q) ⟺ (¬P ∨ Q)",
	canApply: func(e logic.Expr) bool {
		_, ok := binary(e, logic.IMP)
		return ok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.IMP)
		return logic.Or(logic.Not(b.Left), b.Right)
	},
}

// ImplicationEliminationReverse rewrites a disjunction whose left operand is
// negated back into an implication.
var ImplicationEliminationReverse = &Rule{
	name:        "ImplicationEliminationReverse",
	category:    "impl",
	description: "Implication Elimination: (¬P ∨ Q) ⟺ (P ⇒ Q)",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.OR); ok {
			_, ok = negation(b.Left)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		n, _ := negation(b.Left)
		//
		return logic.Imp(n.Child, b.Right)
	},
}

// Contrapositive swaps and negates the operands of an implication.  It is
// withheld when both operands are already negated, which would otherwise
// oscillate with itself.
var Contrapositive = &Rule{
	name:        "Contrapositive",
	category:    "contrapos",
	description: "Contrapositive: (P ⇒ Q) ⟺ (¬Q ⇒ ¬P)",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.IMP)
		//
		if !ok {
			return false
		}
		//
		_, lok := negation(b.Left)
		_, rok := negation(b.Right)
		//
		return !(lok && rok)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.IMP)
		return logic.Imp(logic.Not(b.Right), logic.Not(b.Left))
	},
}
