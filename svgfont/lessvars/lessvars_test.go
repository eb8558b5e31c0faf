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

package lessvars

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/svgicons/svgfont"
)

const testVars = `// Variables
@gi-font-path: "../fonts";
@gi-prefix: gi;

@gi-ambulance: "\e900";
@gi-anchor:"\e901";
  @gi-indented: "\e902";
@gi-bad: "\zzzz";
@gi-again: "\e900";
@gi-too-big: "\110000";
`

func TestParse(t *testing.T) {
	table, err := Parse(strings.NewReader(testVars), "gi-")
	if err != nil {
		t.Fatal(err)
	}
	want := Table{
		0xe900: "ambulance",
		0xe901: "anchor",
	}
	if d := cmp.Diff(want, table); d != "" {
		t.Errorf("table (-want +got):\n%s", d)
	}
}

func TestParseNoTrim(t *testing.T) {
	table, err := Parse(strings.NewReader(`@ra-sword: "\e946";`), "")
	if err != nil {
		t.Fatal(err)
	}
	if table[0xe946] != "ra-sword" {
		t.Errorf("got %v", table)
	}
}

func TestNames(t *testing.T) {
	table := Table{0xe900: "ambulance"}
	names := table.Names()

	cases := []struct {
		glyph *svgfont.Glyph
		want  string
	}{
		{&svgfont.Glyph{Unicode: "\ue900"}, "ambulance"},
		{&svgfont.Glyph{Name: "uniE900", Unicode: "\ue900"}, "ambulance"},
		{&svgfont.Glyph{Name: "anchor", Unicode: "\ue901"}, "anchor"},
		{&svgfont.Glyph{Unicode: "\ue901"}, ""},
		{&svgfont.Glyph{Name: "lig", Unicode: "ab"}, "lig"},
	}
	for _, c := range cases {
		if got := names(c.glyph); got != c.want {
			t.Errorf("%q: got %q, want %q", c.glyph.Unicode, got, c.want)
		}
	}
}

func TestImportWithTable(t *testing.T) {
	src := `<svg><font horiz-adv-x="1024">
<glyph unicode="&#xe900;" d="M0 0h10v10z"/>
<glyph unicode="&#xe901;" d="M0 0h20v20z"/>
<glyph unicode="&#xe9ff;" d="M0 0h30v30z"/>
</font></svg>`
	f, err := svgfont.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	table, err := Parse(strings.NewReader(testVars), "gi-")
	if err != nil {
		t.Fatal(err)
	}

	var ids []string
	for _, icon := range svgfont.Import(f, "gi", table.Names()) {
		ids = append(ids, icon.ID)
	}
	want := []string{"gi-ambulance", "gi-anchor"}
	if d := cmp.Diff(want, ids); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
}
