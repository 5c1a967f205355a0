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

import (
	"fmt"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

// Rule is a named equivalence-preserving rewrite over boolean expressions.
// Rules act only at the root of the expression handed to them; locating a
// suitable subexpression is the rewrite driver's job.  Apply is a partial
// function whose domain is described by CanApply.
type Rule struct {
	name        string
	category    string
	description string
	canApply    func(logic.Expr) bool
	apply       func(logic.Expr) logic.Expr
}

// New constructs a rule from its applicability predicate and rewrite
// action.  The catalogue rules are struct literals of the same shape; hosts
// may use New to extend the catalogue with rules of their own.
func New(name string, category string, description string,
	canApply func(logic.Expr) bool, apply func(logic.Expr) logic.Expr) *Rule {
	return &Rule{name, category, description, canApply, apply}
}

// Name returns the unique name of this rule.
func (p *Rule) Name() string {
	return p.name
}

// Category returns the grouping tag shared by related rules.
func (p *Rule) Category() string {
	return p.category
}

// Description returns a human-readable statement of the law this rule
// applies.
func (p *Rule) Description() string {
	return p.description
}

// CanApply determines whether this rule applies at the root of the given
// expression.
func (p *Rule) CanApply(e logic.Expr) bool {
	return p.canApply(e)
}

// Apply this rule at the root of the given expression, producing a freshly
// allocated equivalent expression.  Calling Apply where CanApply does not
// hold is a contract violation and panics with a *RuleViolation.
func (p *Rule) Apply(e logic.Expr) logic.Expr {
	if !p.canApply(e) {
		panic(&RuleViolation{p.name, e})
	}
	//
	return p.apply(e)
}

func (p *Rule) String() string {
	return p.name
}

// RuleViolation signals that Apply was invoked on an expression outside the
// rule's domain.
type RuleViolation struct {
	// Rule which was misapplied.
	Rule string
	// Expression outside the rule's domain.
	Expr logic.Expr
}

// Error implements the error interface.
func (p *RuleViolation) Error() string {
	return fmt.Sprintf("rule %s applied to unsupported expression %q", p.Rule, p.Expr)
}

// ============================================================================
// Matching helpers
// ============================================================================

// Match a binary expression with a specific connective.
func binary(e logic.Expr, op logic.Op) (*logic.Binary, bool) {
	if b, ok := e.(*logic.Binary); ok && b.Op == op {
		return b, true
	}
	//
	return nil, false
}

// Match a negation.
func negation(e logic.Expr) (*logic.Negation, bool) {
	n, ok := e.(*logic.Negation)
	return n, ok
}

// Match a specific logical constant.
func constant(e logic.Expr, value bool) bool {
	c, ok := e.(*logic.Constant)
	return ok && c.Value == value
}
