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
	"time"

	"github.com/spf13/cobra"

	"github.com/matteo-psnt/proof-generator/pkg/proof"
)

// proveCmd searches for a transformational proof between two expressions.
var proveCmd = &cobra.Command{
	Use:   "prove [expr] [expr]",
	Short: "Search for a transformational proof between two expressions.",
	Long: "Search breadth-first for a sequence of equivalence-preserving rewrites " +
		"carrying the first expression into the second, and print it as a " +
		"numbered proof.  The proof found uses the fewest possible rewrite steps " +
		"within the search budgets.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		opts := proof.DefaultOptions()
		opts.MaxDepth = GetUint(cmd, "max-depth")
		opts.MaxStates = GetUint(cmd, "max-states")
		opts.MaxExpressionLength = GetUint(cmd, "max-length")
		// Arrange cancellation when a timeout was requested.
		if timeout := GetDuration(cmd, "timeout"); timeout > 0 {
			cancel := make(chan struct{})
			timer := time.AfterFunc(timeout, func() { close(cancel) })
			//
			defer timer.Stop()
			//
			opts.Cancel = cancel
		}
		//
		start := parseExpression(args[0])
		goal := parseExpression(args[1])
		//
		result := proof.Find(start, goal, opts)
		//
		switch {
		case result.Found:
			fmt.Print(result.Proof)
		case result.Cancelled:
			fmt.Printf("search cancelled after exploring %d states\n", result.TotalStatesExplored)
			os.Exit(1)
		default:
			fmt.Printf("no proof found (explored %d states to depth %d)\n",
				result.TotalStatesExplored, result.SearchDepth)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().Uint("max-depth", 15, "maximum number of rewrite steps")
	proveCmd.Flags().Uint("max-states", 10000, "maximum number of states to explore")
	proveCmd.Flags().Uint("max-length", 15, "maximum size of any intermediate expression")
	proveCmd.Flags().Duration("timeout", 0, "abandon the search after this long")
}
