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
package truthtable

import (
	"fmt"
	"sort"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

// Equivalent checks whether two expressions agree under every assignment of
// the union of their variables.  A failure to evaluate either expression is
// treated as non-equivalence; an error arises only when the combined
// variable count makes exhaustive evaluation infeasible.
func Equivalent(e1 logic.Expr, e2 logic.Expr) (bool, error) {
	variables := unionVars(e1, e2)
	//
	if len(variables) > MaxVariables {
		return false, fmt.Errorf("expressions have %d combined variables, exceeding the maximum of %d",
			len(variables), MaxVariables)
	}
	//
	rows := uint(1) << uint(len(variables))
	//
	for i := uint(0); i < rows; i++ {
		values := assignment(variables, i)
		//
		v1, err := logic.Evaluate(e1, values)
		//
		if err != nil {
			return false, nil
		}
		//
		v2, err := logic.Evaluate(e2, values)
		//
		if err != nil {
			return false, nil
		}
		//
		if v1 != v2 {
			return false, nil
		}
	}
	//
	return true, nil
}

// Compute the sorted union of the variables of two expressions.
func unionVars(e1 logic.Expr, e2 logic.Expr) []string {
	names := make(map[string]bool)
	//
	for _, n := range logic.Vars(e1) {
		names[n] = true
	}
	//
	for _, n := range logic.Vars(e2) {
		names[n] = true
	}
	//
	union := make([]string, 0, len(names))
	for n := range names {
		union = append(union, n)
	}
	//
	sort.Strings(union)
	//
	return union
}
