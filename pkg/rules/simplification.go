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

// Simplification drops a true conjunct or a false disjunct, either side.
var Simplification = &Rule{
	name:        "Simplification",
	category:    "simp1",
	description: "Simplification: (P ∧ true) ⟺ (P ∨ false) ⟺ P",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.AND); ok {
			return constant(b.Left, true) || constant(b.Right, true)
		}
		//
		if b, ok := binary(e, logic.OR); ok {
			return constant(b.Left, false) || constant(b.Right, false)
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		if b, ok := binary(e, logic.AND); ok {
			if constant(b.Left, true) {
				return b.Right
			}
			//
			return b.Left
		}
		//
		b, _ := binary(e, logic.OR)
		//
		if constant(b.Left, false) {
			return b.Right
		}
		//
		return b.Left
	},
}

// SimplificationTrue collapses a disjunction containing true.
var SimplificationTrue = &Rule{
	name:        "SimplificationTrue",
	category:    "simp1",
	description: "Simplification: (P ∨ true) ⟺ true",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.OR); ok {
			return constant(b.Left, true) || constant(b.Right, true)
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.True()
	},
}

// SimplificationFalse collapses a conjunction containing false.
var SimplificationFalse = &Rule{
	name:        "SimplificationFalse",
	category:    "simp1",
	description: "Simplification: (P ∧ false) ⟺ false",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.AND); ok {
			return constant(b.Left, false) || constant(b.Right, false)
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.False()
	},
}

// SimplificationReverseAND pads an expression with a true conjunct.  Like
// the idempotence reversals, this grows on every application.
var SimplificationReverseAND = &Rule{
	name:        "SimplificationReverseAND",
	category:    "simp1",
	description: "Simplification: P ⟺ (P ∧ true)",
	canApply: func(e logic.Expr) bool {
		// Withheld where the padding is already present.
		if b, ok := binary(e, logic.AND); ok {
			return !constant(b.Left, true) && !constant(b.Right, true)
		}
		//
		return true
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.And(e, logic.True())
	},
}

// SimplificationReverseOR pads an expression with a false disjunct.
var SimplificationReverseOR = &Rule{
	name:        "SimplificationReverseOR",
	category:    "simp1",
	description: "Simplification: P ⟺ (P ∨ false)",
	canApply: func(e logic.Expr) bool {
		// Withheld where the padding is already present.
		if b, ok := binary(e, logic.OR); ok {
			return !constant(b.Left, false) && !constant(b.Right, false)
		}
		//
		return true
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.Or(e, logic.False())
	},
}

// AbsorptionOR collapses a disjunction where one operand is a conjunction
// containing the other, in any arrangement.
var AbsorptionOR = &Rule{
	name:        "AbsorptionOR",
	category:    "simp2",
	description: "Absorption: (P ∨ (P ∧ Q)) ⟺ P",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.OR)
		//
		if !ok {
			return false
		}
		//
		return absorbs(b.Left, b.Right, logic.AND) || absorbs(b.Right, b.Left, logic.AND)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		//
		if absorbs(b.Left, b.Right, logic.AND) {
			return b.Left
		}
		//
		return b.Right
	},
}

// AbsorptionAND collapses a conjunction where one operand is a disjunction
// containing the other, in any arrangement.
var AbsorptionAND = &Rule{
	name:        "AbsorptionAND",
	category:    "simp2",
	description: "Absorption: (P ∧ (P ∨ Q)) ⟺ P",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.AND)
		//
		if !ok {
			return false
		}
		//
		return absorbs(b.Left, b.Right, logic.OR) || absorbs(b.Right, b.Left, logic.OR)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		//
		if absorbs(b.Left, b.Right, logic.OR) {
			return b.Left
		}
		//
		return b.Right
	},
}

// Check whether the absorbed operand contains the keeper as either operand
// of the inner connective.
func absorbs(keeper logic.Expr, absorbed logic.Expr, inner logic.Op) bool {
	if b, ok := binary(absorbed, inner); ok {
		return logic.Equal(keeper, b.Left) || logic.Equal(keeper, b.Right)
	}
	//
	return false
}
