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

package svgfont

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
)

// A NameFunc chooses the icon name for a glyph.
// The empty string means that the glyph has no usable name.
type NameFunc func(g *Glyph) string

// GlyphName is the default [NameFunc].  It returns the glyph-name attribute.
func GlyphName(g *Glyph) string {
	return g.Name
}

// Icon is a glyph, converted into an icon definition.
type Icon struct {
	// ID is the prefixed icon name.
	ID string

	// Markup is the SVG content of the icon, for a 100x100 view box.
	Markup string
}

// IconID returns the icon id for the given prefix and name.
func IconID(prefix, name string) string {
	return prefix + "-" + name
}

// Import converts all glyphs of f into icons.  If names is nil, [GlyphName]
// is used.  Glyphs without a name or without path data are skipped.
func Import(f *Font, prefix string, names NameFunc) []Icon {
	if names == nil {
		names = GlyphName
	}
	icons := make([]Icon, 0, len(f.Glyphs))
	for _, g := range f.Glyphs {
		name := names(g)
		if name == "" || strings.TrimSpace(g.PathData) == "" {
			continue
		}
		icons = append(icons, Icon{
			ID:     IconID(prefix, name),
			Markup: Markup(f.Transform(g), g.PathData),
		})
	}
	return icons
}

// Markup returns an SVG <path> element which draws the path data d,
// transformed by M.
func Markup(M matrix.Matrix, d string) string {
	b := &strings.Builder{}
	b.WriteString(`<path transform="matrix(`)
	for i, x := range M {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
	}
	b.WriteString(`)" d="`)
	attrEscaper.WriteString(b, d)
	b.WriteString(`"/>`)
	return b.String()
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`"`, "&quot;",
)
