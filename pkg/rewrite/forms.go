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
	"github.com/matteo-psnt/proof-generator/pkg/logic"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
	"github.com/matteo-psnt/proof-generator/pkg/util/collection/hash"
)

// Forms enumerates every distinct form reachable from a given expression
// within the given number of rewrite steps, ignoring any intermediate form
// whose size exceeds the length budget.  The start expression is always the
// first form returned; the remainder follow in breadth-first discovery
// order.
func Forms(e logic.Expr, catalogue []*rules.Rule, maxDepth uint, maxLen uint) []logic.Expr {
	type state struct {
		expr  logic.Expr
		depth uint
	}
	//
	var (
		visited = hash.NewSet[hash.StringKey](64)
		forms   = []logic.Expr{e}
		queue   = []state{{e, 0}}
	)
	//
	visited.Insert(hash.NewStringKey(e.Hash()))
	//
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		//
		if next.depth >= maxDepth {
			continue
		}
		//
		for _, rw := range All(next.expr, catalogue, maxLen) {
			if visited.Insert(hash.NewStringKey(rw.Expr.Hash())) {
				// Seen before
				continue
			}
			//
			forms = append(forms, rw.Expr)
			queue = append(queue, state{rw.Expr, next.depth + 1})
		}
	}
	//
	return forms
}
