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

// DistributivityAND distributes a conjunction over a disjunction.
var DistributivityAND = &Rule{
	name:        "DistributivityAND",
	category:    "distr",
	description: "Distributivity for AND: (P ∧ (Q ∨ R)) ⟺ ((P ∧ Q) ∨ (P ∧ R))",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.AND); ok {
			_, ok = binary(b.Right, logic.OR)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		r, _ := binary(b.Right, logic.OR)
		//
		return logic.Or(logic.And(b.Left, r.Left), logic.And(b.Left, r.Right))
	},
}

// DistributivityOR distributes a disjunction over a conjunction.
var DistributivityOR = &Rule{
	name:        "DistributivityOR",
	category:    "distr",
	description: "Distributivity for OR: (P ∨ (Q ∧ R)) ⟺ ((P ∨ Q) ∧ (P ∨ R))",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.OR); ok {
			_, ok = binary(b.Right, logic.AND)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		r, _ := binary(b.Right, logic.AND)
		//
		return logic.And(logic.Or(b.Left, r.Left), logic.Or(b.Left, r.Right))
	},
}

// DistributivityANDReverse factors a shared left conjunct back out of a
// disjunction.
var DistributivityANDReverse = &Rule{
	name:        "DistributivityANDReverse",
	category:    "distr",
	description: "Distributivity for AND: ((P ∧ Q) ∨ (P ∧ R)) ⟺ (P ∧ (Q ∨ R))",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.OR)
		//
		if !ok {
			return false
		}
		//
		l, lok := binary(b.Left, logic.AND)
		r, rok := binary(b.Right, logic.AND)
		//
		return lok && rok && logic.Equal(l.Left, r.Left)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		l, _ := binary(b.Left, logic.AND)
		r, _ := binary(b.Right, logic.AND)
		//
		return logic.And(l.Left, logic.Or(l.Right, r.Right))
	},
}

// DistributivityORReverse factors a shared left disjunct back out of a
// conjunction.
var DistributivityORReverse = &Rule{
	name:        "DistributivityORReverse",
	category:    "distr",
	description: "Distributivity for OR: ((P ∨ Q) ∧ (P ∨ R)) ⟺ (P ∨ (Q ∧ R))",
	canApply: func(e logic.Expr) bool {
		b, ok := binary(e, logic.AND)
		//
		if !ok {
			return false
		}
		//
		l, lok := binary(b.Left, logic.OR)
		r, rok := binary(b.Right, logic.OR)
		//
		return lok && rok && logic.Equal(l.Left, r.Left)
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		l, _ := binary(b.Left, logic.OR)
		r, _ := binary(b.Right, logic.OR)
		//
		return logic.Or(l.Left, logic.And(l.Right, r.Right))
	},
}
