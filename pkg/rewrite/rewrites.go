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
	log "github.com/sirupsen/logrus"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
)

// Rewrite couples an expression produced by a single rule application with
// the rule which produced it.
type Rewrite struct {
	Expr logic.Expr
	Rule *rules.Rule
}

// All enumerates every rewrite reachable from a given expression by applying
// exactly one rule at exactly one position, discarding any result whose size
// exceeds the given budget.  Enumeration order is deterministic: rules at
// the root in catalogue order first, then rewrites of the negated child or
// of the left and right operands (in that order), each lifted back into the
// enclosing expression.
func All(e logic.Expr, catalogue []*rules.Rule, maxLen uint) []Rewrite {
	var rewrites []Rewrite
	// Apply every applicable rule at the root.
	for _, rule := range catalogue {
		if !rule.CanApply(e) {
			continue
		}
		//
		if rewritten, ok := apply(rule, e); ok && rewritten.Size() <= maxLen {
			rewrites = append(rewrites, Rewrite{rewritten, rule})
		}
	}
	// Rewrite subexpressions, holding everything else fixed.
	switch t := e.(type) {
	case *logic.Negation:
		if maxLen > 0 {
			for _, rw := range All(t.Child, catalogue, maxLen-1) {
				rewrites = append(rewrites, Rewrite{logic.Not(rw.Expr), rw.Rule})
			}
		}
	case *logic.Binary:
		// The untouched operand and the operator itself both count against
		// the budget handed down to the rewritten side.
		if reserved := t.Right.Size() + 1; maxLen > reserved {
			for _, rw := range All(t.Left, catalogue, maxLen-reserved) {
				rewrites = append(rewrites, Rewrite{logic.NewBinary(t.Op, rw.Expr, t.Right), rw.Rule})
			}
		}
		//
		if reserved := t.Left.Size() + 1; maxLen > reserved {
			for _, rw := range All(t.Right, catalogue, maxLen-reserved) {
				rewrites = append(rewrites, Rewrite{logic.NewBinary(t.Op, t.Left, rw.Expr), rw.Rule})
			}
		}
	}
	//
	return rewrites
}

// Apply a rule, trapping any panic it raises.  Rules in the catalogue are
// supposed to be sound, so a violation here is reported on the warning
// channel and the rewrite skipped rather than aborting the whole search.
func apply(rule *rules.Rule, e logic.Expr) (rewritten logic.Expr, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warnf("skipping rule %s on %q: %v", rule.Name(), e, r)
			//
			rewritten, ok = nil, false
		}
	}()
	//
	return rule.Apply(e), true
}
