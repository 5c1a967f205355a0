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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matteo-psnt/proof-generator/pkg/rewrite"
	"github.com/matteo-psnt/proof-generator/pkg/rules"
)

// formsCmd enumerates the distinct forms reachable from an expression.
var formsCmd = &cobra.Command{
	Use:   "forms [expr]",
	Short: "Enumerate the distinct forms an expression can be rewritten into.",
	Long: "Apply the rule catalogue breadth-first and print every distinct form " +
		"reachable from the given expression within the depth and length budgets.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		expr := parseExpression(args[0])
		forms := rewrite.Forms(expr, rules.All(), GetUint(cmd, "max-depth"), GetUint(cmd, "max-length"))
		//
		for _, form := range forms {
			fmt.Println(form)
		}
		//
		fmt.Printf("%d forms\n", len(forms))
	},
}

func init() {
	rootCmd.AddCommand(formsCmd)
	formsCmd.Flags().Uint("max-depth", 3, "maximum number of rewrite steps")
	formsCmd.Flags().Uint("max-length", 15, "maximum size of any reachable form")
}
