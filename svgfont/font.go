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
	"unicode/utf8"

	"seehuhn.de/go/geom/matrix"
)

// IconSize is the width and height of the icon coordinate box.
const IconSize = 100

// Metrics holds the font-wide values needed to place glyphs in the icon box.
// All values are in font design units.
type Metrics struct {
	// HorizAdvX is the default advance width of a glyph.
	HorizAdvX float64

	// Ascent is the distance from the baseline to the top of the em box.
	Ascent float64

	// Descent is the (usually negative) distance from the baseline to the
	// bottom of the em box.
	Descent float64
}

// DefaultMetrics gives the values used when a font does not specify its
// metrics.  The defaults match the fonts generated by the common icon font
// tool chains, which use a 1024 unit em square with a descent of 64 units.
var DefaultMetrics = Metrics{
	HorizAdvX: 1024,
	Ascent:    960,
	Descent:   -64,
}

// Fill replaces missing or unusable values in m by the corresponding values
// from def.
func (m Metrics) Fill(def Metrics) Metrics {
	if !(m.HorizAdvX > 0) {
		m.HorizAdvX = def.HorizAdvX
	}
	if !(m.Ascent-m.Descent > 0) {
		m.Ascent = def.Ascent
		m.Descent = def.Descent
	}
	return m
}

// Glyph is one <glyph> element of an SVG font.
type Glyph struct {
	// Name is the value of the glyph-name attribute.
	Name string

	// Unicode is the value of the unicode attribute, after XML character
	// references have been resolved.
	Unicode string

	// PathData is the value of the d attribute.
	PathData string

	// HorizAdvX is the glyph-specific advance width, or 0 if the glyph
	// uses the font default.
	HorizAdvX float64
}

// Rune returns the code point of a glyph which maps to exactly one
// character.
func (g *Glyph) Rune() (rune, bool) {
	r, size := utf8.DecodeRuneInString(g.Unicode)
	if r == utf8.RuneError || size != len(g.Unicode) {
		return 0, false
	}
	return r, true
}

// Font is the glyph table of an SVG font.
type Font struct {
	// ID is the id attribute of the <font> element.
	ID string

	// Metrics holds the font-wide metrics, with defaults filled in.
	Metrics

	Glyphs []*Glyph
}

// Advance returns the advance width used to scale the given glyph.
func (f *Font) Advance(g *Glyph) float64 {
	if g.HorizAdvX > 0 {
		return g.HorizAdvX
	}
	if f.HorizAdvX > 0 {
		return f.HorizAdvX
	}
	return DefaultMetrics.HorizAdvX
}

// Transform returns the matrix which maps the glyph space of g into the icon
// box.  The glyph is scaled uniformly, so that both its advance width and
// the height of the em box fit into [IconSize] units.  The y-axis is
// flipped and the ascent line is moved to the top of the box.
func (f *Font) Transform(g *Glyph) matrix.Matrix {
	height := f.Ascent - f.Descent
	xAspect := IconSize / f.Advance(g)
	yAspect := IconSize / height
	q := min(xAspect, yAspect)
	return matrix.Matrix{q, 0, 0, -q, 0, f.Ascent * IconSize / height}
}
