// seehuhn.de/go/svgicons - icon sets from SVG fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// printColumns lists the words in columns if out is a terminal, and one
// word per line otherwise.
func printColumns(out *os.File, words []string) {
	width := 0
	if fd := int(out.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}
	writeColumns(out, words, width)
}

// writeColumns arranges the words column by column.  A width of zero or
// less writes one word per line.
func writeColumns(w io.Writer, words []string, width int) {
	colWidth := 0
	for _, word := range words {
		colWidth = max(colWidth, len(word))
	}
	colWidth += 2

	cols := 1
	if width > 0 {
		cols = max(width/colWidth, 1)
	}
	if cols == 1 {
		for _, word := range words {
			fmt.Fprintln(w, word)
		}
		return
	}

	rows := (len(words) + cols - 1) / cols
	line := &strings.Builder{}
	for r := range rows {
		line.Reset()
		for c := range cols {
			i := c*rows + r
			if i >= len(words) {
				break
			}
			word := words[i]
			line.WriteString(word)
			if c < cols-1 && i+rows < len(words) {
				line.WriteString(strings.Repeat(" ", colWidth-len(word)))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}
