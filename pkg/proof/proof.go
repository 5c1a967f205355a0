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
package proof

import (
	"fmt"
	"strings"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
)

// Step is a single line of a proof: an expression, together with the rule
// whose application produced it from the previous line.  The first step
// restates the start expression and carries no rule.
type Step struct {
	Expr logic.Expr
	Rule *rules.Rule
}

// Proof is a sequence of equivalence-preserving steps carrying the start
// expression into the goal.
type Proof struct {
	Start logic.Expr
	Goal  logic.Expr
	Steps []Step
}

// String renders this proof as readable text: a header stating the claimed
// equivalence, then one numbered line per step.  Every step after the first
// cites its rule's category, aligned three spaces past the longest step.
func (p *Proof) String() string {
	var (
		builder  strings.Builder
		prefixes = make([]string, len(p.Steps))
		width    = 0
	)
	//
	builder.WriteString(fmt.Sprintf("%s  <->  %s\n\n", p.Start, p.Goal))
	//
	for i, step := range p.Steps {
		prefixes[i] = fmt.Sprintf("%d) %s", i+1, step.Expr)
		width = max(width, len(prefixes[i]))
	}
	//
	for i, step := range p.Steps {
		builder.WriteString(prefixes[i])
		//
		if step.Rule != nil {
			padding := width - len(prefixes[i]) + 3
			//
			builder.WriteString(strings.Repeat(" ", padding))
			builder.WriteString("by ")
			builder.WriteString(step.Rule.Category())
		}
		//
		builder.WriteString("\n")
	}
	//
	return builder.String()
}
