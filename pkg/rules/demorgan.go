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

// DeMorganAND pushes a negation through a conjunction.
var DeMorganAND = &Rule{
	name:        "DeMorganAND",
	category:    "dm",
	description: "De Morgan's Law for AND: ¬(P ∧ Q) ⟺ (¬P ∨ ¬Q)",
	canApply: func(e logic.Expr) bool {
		if n, ok := negation(e); ok {
			_, ok = binary(n.Child, logic.AND)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		n, _ := negation(e)
		b, _ := binary(n.Child, logic.AND)
		//
		return logic.Or(logic.Not(b.Left), logic.Not(b.Right))
	},
}

// DeMorganOR pushes a negation through a disjunction.
var DeMorganOR = &Rule{
	name:        "DeMorganOR",
	category:    "dm",
	description: "De Morgan's Law for OR: ¬(P ∨ Q) ⟺ (¬P ∧ ¬Q)",
	canApply: func(e logic.Expr) bool {
		if n, ok := negation(e); ok {
			_, ok = binary(n.Child, logic.OR)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		n, _ := negation(e)
		b, _ := binary(n.Child, logic.OR)
		//
		return logic.And(logic.Not(b.Left), logic.Not(b.Right))
	},
}

// DeMorganANDReverse pulls a negation back out of a disjunction of
// negations.
var DeMorganANDReverse = &Rule{
	name:        "DeMorganANDReverse",
	category:    "dm",
	description: "De Morgan's Law for AND: (¬P ∨ ¬Q) ⟺ ¬(P ∧ Q)",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.OR)
		//
		if !ok {
			return false
		}
		//
		_, lok := negation(b.Left)
		_, rok := negation(b.Right)
		//
		return lok && rok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		l, _ := negation(b.Left)
		r, _ := negation(b.Right)
		//
		return logic.Not(logic.And(l.Child, r.Child))
	},
}

// DeMorganORReverse pulls a negation back out of a conjunction of
// negations.
var DeMorganORReverse = &Rule{
	name:        "DeMorganORReverse",
	category:    "dm",
	description: "De Morgan's Law for OR: (¬P ∧ ¬Q) ⟺ ¬(P ∨ Q)",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.AND)
		//
		if !ok {
			return false
		}
		//
		_, lok := negation(b.Left)
		_, rok := negation(b.Right)
		//
		return lok && rok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		l, _ := negation(b.Left)
		r, _ := negation(b.Right)
		//
		return logic.Not(logic.Or(l.Child, r.Child))
	},
}
