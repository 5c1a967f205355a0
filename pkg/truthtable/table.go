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

	"github.com/bits-and-blooms/bitset"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

// MaxVariables bounds the number of distinct variables a truth table may
// range over.  Beyond this the 2^k row enumeration stops being something you
// want to wait for.
const MaxVariables = 15

// Table is the complete truth table of a single expression.  Rows are
// indexed 0..2^k-1 in canonical order: bit j of the row index, taken from
// the high bit downwards, gives the value of the j-th variable in sorted
// order.
type Table struct {
	expr logic.Expr
	// Variables in ascending order.
	variables []string
	// One result bit per row.
	results *bitset.BitSet
}

// New evaluates a given expression under every assignment of its variables,
// producing its truth table.
func New(e logic.Expr) (*Table, error) {
	variables := logic.Vars(e)
	//
	if len(variables) > MaxVariables {
		return nil, fmt.Errorf("expression has %d variables, exceeding the maximum of %d",
			len(variables), MaxVariables)
	}
	//
	rows := uint(1) << uint(len(variables))
	results := bitset.New(rows)
	//
	for i := uint(0); i < rows; i++ {
		value, err := logic.Evaluate(e, assignment(variables, i))
		//
		if err != nil {
			return nil, err
		}
		//
		if value {
			results.Set(i)
		}
	}
	//
	return &Table{e, variables, results}, nil
}

// Expr returns the expression this table was generated from.
func (t *Table) Expr() logic.Expr {
	return t.expr
}

// Variables returns the table's variables in ascending order.
func (t *Table) Variables() []string {
	return t.variables
}

// Rows returns the number of rows, i.e. 2^k for k variables.
func (t *Table) Rows() uint {
	return uint(1) << uint(len(t.variables))
}

// Assignment reconstructs the variable assignment of a given row.
func (t *Table) Assignment(row uint) map[string]bool {
	return assignment(t.variables, row)
}

// Result returns the expression's value on a given row.
func (t *Table) Result(row uint) bool {
	return t.results.Test(row)
}

// Build the assignment for a given row index, with the first variable in
// sorted order driven by the highest bit.
func assignment(variables []string, row uint) map[string]bool {
	k := len(variables)
	values := make(map[string]bool, k)
	//
	for j, name := range variables {
		values[name] = (row>>(k-1-j))&1 == 1
	}
	//
	return values
}
