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

// CommutativityAND swaps the operands of a conjunction.
var CommutativityAND = &Rule{
	name:        "CommutativityAND",
	category:    "comm_assoc",
	description: "Commutativity for AND: (P ∧ Q) ⟺ (Q ∧ P)",
	canApply: func(e logic.Expr) bool {
		_, ok := binary(e, logic.AND)
		return ok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		return logic.And(b.Right, b.Left)
	},
}

// CommutativityOR swaps the operands of a disjunction.
var CommutativityOR = &Rule{
	name:        "CommutativityOR",
	category:    "comm_assoc",
	description: "Commutativity for OR: (P ∨ Q) ⟺ (Q ∨ P)",
	canApply: func(e logic.Expr) bool {
		_, ok := binary(e, logic.OR)
		return ok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		return logic.Or(b.Right, b.Left)
	},
}

// CommutativityIFF swaps the operands of a biconditional.
var CommutativityIFF = &Rule{
	name:        "CommutativityIFF",
	category:    "comm_assoc",
	description: "Commutativity for IFF: (P ⟺ Q) ⟺ (Q ⟺ P)",
	canApply: func(e logic.Expr) bool {
		_, ok := binary(e, logic.IFF)
		return ok
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.IFF)
		return logic.Iff(b.Right, b.Left)
	},
}

// CommutativityANDAND re-associates a nested conjunction whilst swapping the
// two leftmost operands.
var CommutativityANDAND = &Rule{
	name:        "CommutativityANDAND",
	category:    "comm_assoc",
	description: "Commutativity for AND: ((P ∧ Q) ∧ R) ⟺ (Q ∧ (P ∧ R))",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.AND); ok {
			_, ok = binary(b.Left, logic.AND)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.AND)
		l, _ := binary(b.Left, logic.AND)
		//
		return logic.And(l.Right, logic.And(l.Left, b.Right))
	},
}

// CommutativityOROR re-associates a nested disjunction whilst swapping the
// two leftmost operands.
var CommutativityOROR = &Rule{
	name:        "CommutativityOROR",
	category:    "comm_assoc",
	description: "Commutativity for OR: ((P ∨ Q) ∨ R) ⟺ (Q ∨ (P ∨ R))",
	canApply: func(e logic.Expr) bool {
		if b, ok := binary(e, logic.OR); ok {
			_, ok = binary(b.Left, logic.OR)
			return ok
		}
		//
		return false
	},
	apply: func(e logic.Expr) logic.Expr {
		b, _ := binary(e, logic.OR)
		l, _ := binary(b.Left, logic.OR)
		//
		return logic.Or(l.Right, logic.Or(l.Left, b.Right))
	},
}
