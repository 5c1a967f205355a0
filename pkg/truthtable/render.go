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
	"strings"
)

// ResultColumn is the header of the final column in both output formats.
const ResultColumn = "Result"

// CSV renders this table in comma-separated form, with one column per
// variable plus the result, and all values written as 0 or 1.  Lines are
// terminated with a bare line feed.
func (t *Table) CSV() string {
	var builder strings.Builder
	// Header
	for _, name := range t.variables {
		builder.WriteString(name)
		builder.WriteString(",")
	}
	//
	builder.WriteString(ResultColumn)
	builder.WriteString("\n")
	// Body
	for i := uint(0); i < t.Rows(); i++ {
		values := t.Assignment(i)
		//
		for _, name := range t.variables {
			builder.WriteString(bit(values[name]))
			builder.WriteString(",")
		}
		//
		builder.WriteString(bit(t.Result(i)))
		builder.WriteString("\n")
	}
	//
	return builder.String()
}

// Render this table as readable text: a header row of column names, a
// dashed separator, then one row per assignment.  Cells show T/F by
// default, or true/false when words is set.
func (t *Table) Render(words bool) string {
	var (
		builder strings.Builder
		columns = append(append([]string{}, t.variables...), ResultColumn)
		widths  = columnWidths(columns, words)
	)
	// Header
	for j, name := range columns {
		if j != 0 {
			builder.WriteString(" | ")
		}
		//
		builder.WriteString(pad(name, widths[j]))
	}
	//
	header := strings.TrimRight(builder.String(), " ")
	builder.Reset()
	builder.WriteString(header)
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", len(header)))
	// Body
	for i := uint(0); i < t.Rows(); i++ {
		values := t.Assignment(i)
		cells := make([]string, 0, len(columns))
		//
		for _, name := range t.variables {
			cells = append(cells, cell(values[name], words))
		}
		//
		cells = append(cells, cell(t.Result(i), words))
		//
		builder.WriteString("\n")
		//
		line := make([]string, len(cells))
		for j, c := range cells {
			line[j] = pad(c, widths[j])
		}
		//
		builder.WriteString(strings.TrimRight(strings.Join(line, " | "), " "))
	}
	//
	return builder.String()
}

func bit(value bool) string {
	if value {
		return "1"
	}
	//
	return "0"
}

func cell(value bool, words bool) string {
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

// Each column is as wide as its header or its widest cell.
func columnWidths(columns []string, words bool) []uint {
	var (
		widths   = make([]uint, len(columns))
		cellsize = uint(1)
	)
	//
	if words {
		cellsize = uint(len("false"))
	}
	//
	for j, name := range columns {
		widths[j] = max(uint(len(name)), cellsize)
	}
	//
	return widths
}

func pad(value string, width uint) string {
	if uint(len(value)) >= width {
		return value
	}
	//
	return value + strings.Repeat(" ", int(width)-len(value))
}
