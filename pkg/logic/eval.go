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
package logic

import "fmt"

// Evaluate an expression under a given variable assignment.  The assignment
// must bind every variable occurring in the expression; a missing binding is
// reported as an error.
func Evaluate(e Expr, assignment map[string]bool) (bool, error) {
	switch t := e.(type) {
	case *Variable:
		value, ok := assignment[t.Name]
		//
		if !ok {
			return false, fmt.Errorf("variable %q missing from assignment", t.Name)
		}
		//
		return value, nil
	case *Constant:
		return t.Value, nil
	case *Negation:
		value, err := Evaluate(t.Child, assignment)
		//
		return !value, err
	case *Binary:
		return evaluateBinary(t, assignment)
	}
	//
	panic("unreachable")
}

func evaluateBinary(e *Binary, assignment map[string]bool) (bool, error) {
	left, err := Evaluate(e.Left, assignment)
	//
	if err != nil {
		return false, err
	}
	//
	right, err := Evaluate(e.Right, assignment)
	//
	if err != nil {
		return false, err
	}
	//
	switch e.Op {
	case AND:
		return left && right, nil
	case OR:
		return left || right, nil
	case IMP:
		return !left || right, nil
	case IFF:
		return (left && right) || (!left && !right), nil
	}
	//
	panic("unreachable")
}
