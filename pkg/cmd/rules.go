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
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matteo-psnt/proof-generator/pkg/rules"
	"github.com/matteo-psnt/proof-generator/pkg/util/termio"
)

// rulesCmd lists the rule catalogue.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the transformation rules in force.",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			catalogue = rules.All()
			printer   = termio.NewTablePrinter(3, uint(len(catalogue))+1)
		)
		//
		printer.SetRow(0, "NAME", "CATEGORY", "DESCRIPTION")
		//
		for i, rule := range catalogue {
			printer.SetRow(uint(i)+1, rule.Name(), rule.Category(), rule.Description())
		}
		//
		printer.Print()
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
