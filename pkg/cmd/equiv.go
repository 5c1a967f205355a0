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

	"github.com/matteo-psnt/proof-generator/pkg/truthtable"
)

// equivCmd decides semantic equivalence of two expressions by exhaustive
// evaluation.
var equivCmd = &cobra.Command{
	Use:   "equiv [expr] [expr]",
	Short: "Check whether two expressions are logically equivalent.",
	Long: "Evaluate both expressions under every assignment of their combined " +
		"variables, reporting whether they agree everywhere.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		e1 := parseExpression(args[0])
		e2 := parseExpression(args[1])
		//
		equivalent, err := truthtable.Equivalent(e1, e2)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if !equivalent {
			fmt.Printf("%s  <!>  %s\n", e1, e2)
			os.Exit(1)
		}
		//
		fmt.Printf("%s  <->  %s\n", e1, e2)
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
}
