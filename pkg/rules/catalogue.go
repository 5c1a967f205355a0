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

// All returns the full rule catalogue in its canonical order.  The proof
// search relies on this order being fixed: it does not change which goals
// are reachable, but it decides which of several equally short proofs is
// returned.
func All() []*Rule {
	return []*Rule{
		CommutativityAND,
		CommutativityOR,
		CommutativityIFF,
		CommutativityANDAND,
		CommutativityOROR,
		DoubleNegation,
		ExcludedMiddle,
		Contradiction,
		DeMorganAND,
		DeMorganOR,
		DeMorganANDReverse,
		DeMorganORReverse,
		ImplicationElimination,
		ImplicationEliminationReverse,
		Contrapositive,
		DistributivityAND,
		DistributivityOR,
		DistributivityANDReverse,
		DistributivityORReverse,
		Idempotence,
		IdempotenceReverseAND,
		IdempotenceReverseOR,
		Equivalence,
		EquivalenceReverse,
		Simplification,
		SimplificationTrue,
		SimplificationFalse,
		SimplificationReverseAND,
		SimplificationReverseOR,
		AbsorptionOR,
		AbsorptionAND,
	}
}
