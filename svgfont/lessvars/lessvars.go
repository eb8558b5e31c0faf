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

// Package lessvars reads the variable tables shipped with some icon fonts.
//
// Icon fonts which do not set the glyph-name attribute usually come with a
// LESS file which assigns a name to every code point, one per line:
//
//	@ra-sword: "\e946";
//
// [Table.Names] uses such a table to recover the icon names.
package lessvars

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"seehuhn.de/go/svgicons/svgfont"
)

// Table maps code points to names.
type Table map[rune]string

var varLine = regexp.MustCompile(`^@([\w-]+):\s*"\\([0-9a-fA-F]+)";`)

// Parse reads a variable table.  Lines which do not define a code point are
// ignored.  If trimPrefix is not empty, it is removed from the start of
// every variable name.  If a code point is defined more than once, the
// first definition is used.
func Parse(r io.Reader, trimPrefix string) (Table, error) {
	t := Table{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		m := varLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		code, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil || code > 0x10FFFF {
			continue
		}
		name := strings.TrimPrefix(m[1], trimPrefix)
		if name == "" {
			continue
		}
		if _, seen := t[rune(code)]; !seen {
			t[rune(code)] = name
		}
	}
	if err := scanner.Err(); err != nil {
		return t, fmt.Errorf("variable table, line %d: %w", lineNo, err)
	}
	return t, nil
}

// Names returns a [svgfont.NameFunc] which looks up the code point of each
// glyph in t.  Glyphs which are not listed keep their glyph-name.
func (t Table) Names() svgfont.NameFunc {
	return func(g *svgfont.Glyph) string {
		if r, ok := g.Rune(); ok {
			if name, ok := t[r]; ok {
				return name
			}
		}
		return g.Name
	}
}
