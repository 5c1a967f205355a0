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
	"strings"

	"github.com/spf13/cobra"

	"github.com/matteo-psnt/proof-generator/pkg/logic"
)

// evalCmd evaluates an expression under an explicit assignment.
var evalCmd = &cobra.Command{
	Use:   "eval [expr] [name=value]...",
	Short: "Evaluate an expression under a variable assignment.",
	Long: "Evaluate an expression with each variable bound by a name=value " +
		"argument, where values are written true/t/1 or false/f/0.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		expr := parseExpression(args[0])
		assignment := make(map[string]bool)
		//
		for _, binding := range args[1:] {
			name, value, err := parseBinding(binding)
			//
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			assignment[name] = value
		}
		//
		value, err := logic.Evaluate(expr, assignment)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(value)
	},
}

// Parse a name=value binding.
func parseBinding(binding string) (string, bool, error) {
	name, value, found := strings.Cut(binding, "=")
	//
	if !found || name == "" {
		return "", false, fmt.Errorf("malformed binding %q (expected name=value)", binding)
	}
	//
	switch strings.ToLower(value) {
	case "true", "t", "1":
		return name, true, nil
	case "false", "f", "0":
		return name, false, nil
	}
	//
	return "", false, fmt.Errorf("malformed boolean %q in binding %q", value, binding)
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
