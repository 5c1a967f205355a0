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
	"github.com/matteo-psnt/proof-generator/pkg/util/termio"
)

// tableCmd prints the truth table of an expression.
var tableCmd = &cobra.Command{
	Use:   "table [expr]",
	Short: "Print the truth table of an expression.",
	Long: "Enumerate every assignment of the expression's variables and print the " +
		"resulting truth table, followed by a tautology/contradiction/contingency " +
		"classification.  With --csv the table is written in CSV form instead.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		configureLogging(cmd)
		//
		expr := parseExpression(args[0])
		table, err := truthtable.New(expr)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		if GetFlag(cmd, "csv") {
			fmt.Print(table.CSV())
			return
		}
		//
		words := GetFlag(cmd, "words")
		//
		if termio.IsTerminal() {
			printInteractive(table, words)
		} else {
			fmt.Println(table.Render(words))
		}
		// Classification footer
		analysis := table.Analyze()
		fmt.Printf("%s (%d/%d rows satisfiable, ratio %.2f)\n", analysis.Classification(),
			analysis.SatisfiableCount, analysis.TotalRows, analysis.SatisfiabilityRatio)
	},
}

// Render the table through the terminal printer, bounding column widths by
// what the attached terminal can show.
func printInteractive(table *truthtable.Table, words bool) {
	var (
		variables = table.Variables()
		columns   = uint(len(variables)) + 1
		printer   = termio.NewTablePrinter(columns, table.Rows()+1)
	)
	//
	printer.SetRow(0, append(append([]string{}, variables...), truthtable.ResultColumn)...)
	//
	for i := uint(0); i < table.Rows(); i++ {
		var (
			values = table.Assignment(i)
			cells  = make([]string, 0, columns)
		)
		//
		for _, name := range variables {
			cells = append(cells, formatBool(values[name], words))
		}
		//
		cells = append(cells, formatBool(table.Result(i), words))
		printer.SetRow(i+1, cells...)
	}
	//
	printer.SetMaxWidths(termio.TerminalWidth() / columns)
	printer.Print()
}

func formatBool(value bool, words bool) string {
	switch {
	case value && words:
		return "true"
	case value:
		return "T"
	case words:
		return "false"
	}
	//
	return "F"
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().Bool("csv", false, "write the table as CSV")
	tableCmd.Flags().Bool("words", false, "write cells as true/false rather than T/F")
}
