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

// Idempotence collapses a conjunction or disjunction of two structurally
// equal operands.
var Idempotence = &Rule{
	name:        "Idempotence",
	category:    "idemp",
	description: "Idempotence: (P ∧ P) ⟺ (P ∨ P) ⟺ P",
	canApply: func(e logic.Expr) bool {
		if b, ok := e.(*logic.Binary); ok && (b.Op == logic.AND || b.Op == logic.OR) {
			return logic.Equal(b.Left, b.Right)
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b := e.(*logic.Binary)
		return b.Left
	},
}

// IdempotenceReverseAND duplicates an expression into a conjunction with
// itself.  Every application grows the expression, hence the rewrite
// driver's length budget is what keeps this rule finite.
var IdempotenceReverseAND = &Rule{
	name:        "IdempotenceReverseAND",
	category:    "idemp",
	description: "Idempotence: P ⟺ (P ∧ P)",
	canApply: func(e logic.Expr) bool {
		// Withheld on an already-idempotent conjunction.
		if b, ok := binary(e, logic.AND); ok {
			return !logic.Equal(b.Left, b.Right)
		}
		//
		return true
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.And(e, e)
	},
}

// IdempotenceReverseOR duplicates an expression into a disjunction with
// itself.
var IdempotenceReverseOR = &Rule{
	name:        "IdempotenceReverseOR",
	category:    "idemp",
	description: "Idempotence: P ⟺ (P ∨ P)",
	canApply: func(e logic.Expr) bool {
		// Withheld on an already-idempotent disjunction.
		if b, ok := binary(e, logic.OR); ok {
			return !logic.Equal(b.Left, b.Right)
		}
		//
		return true
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.Or(e, e)
	},
}
