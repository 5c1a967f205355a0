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

// Analysis summarises a completed truth table.
type Analysis struct {
	// Number of rows on which the expression is true.
	SatisfiableCount uint
	// Total number of rows.
	TotalRows uint
	// True on every row.
	Tautology bool
	// False on every row.
	Contradiction bool
	// True on some rows and false on others.
	Contingent bool
	// Fraction of rows on which the expression is true.
	SatisfiabilityRatio float64
}

// Analyze classifies this table as a tautology, contradiction or contingency
// and computes its satisfiability ratio.
func (t *Table) Analyze() Analysis {
	var (
		total = t.Rows()
		count = uint(t.results.Count())
		ratio = 0.0
	)
	//
	if total > 0 {
		ratio = float64(count) / float64(total)
	}
	//
	return Analysis{
		SatisfiableCount:    count,
		TotalRows:           total,
		Tautology:           count == total,
		Contradiction:       count == 0,
		Contingent:          count > 0 && count < total,
		SatisfiabilityRatio: ratio,
	}
}

// Classification renders the three-way classification as a word.
func (a Analysis) Classification() string {
	switch {
	case a.Tautology:
		return "tautology"
	case a.Contradiction:
		return "contradiction"
	}
	//
	return "contingent"
}
