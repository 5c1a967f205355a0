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

// DoubleNegation removes a doubled negation.
var DoubleNegation = &Rule{
	name:        "DoubleNegation",
	category:    "neg",
	description: "Double Negation: ¬¬P ⟺ P",
	canApply: func(e logic.Expr) bool {
		if n, ok := negation(e); ok {
			_, ok = negation(n.Child)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		n, _ := negation(e)
		c, _ := negation(n.Child)
		//
		return c.Child
	},
}

// ExcludedMiddle collapses the disjunction of an expression with its own
// negation, in either order, to true.
var ExcludedMiddle = &Rule{
	name:        "ExcludedMiddle",
	category:    "lem",
	description: "Excluded Middle: P ∨ ¬P ⟺ true",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.OR)
		//
		if !ok {
			return false
		}
		//
		if n, ok := negation(b.Right); ok && logic.Equal(b.Left, n.Child) {
			return true
		}
		//
		if n, ok := negation(b.Left); ok && logic.Equal(b.Right, n.Child) {
			return true
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.True()
	},
}

// Contradiction collapses the conjunction of an expression with its own
// negation, in either order, to false.
var Contradiction = &Rule{
	name:        "Contradiction",
	category:    "contr",
	description: "Contradiction: P ∧ ¬P ⟺ false",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.AND)
		//
		if !ok {
			return false
		}
		//
		if n, ok := negation(b.Right); ok && logic.Equal(b.Left, n.Child) {
			return true
		}
		//
		if n, ok := negation(b.Left); ok && logic.Equal(b.Right, n.Child) {
			return true
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		return logic.False()
	},
}
