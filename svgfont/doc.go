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

// Package svgfont reads the glyph table of an SVG font and converts the
// glyphs into stand-alone icons.
//
// An SVG font document contains a <font> element, a <font-face> element
// with the vertical metrics and one <glyph> element per character.  Glyph
// outlines are given in font units with the y-axis pointing up.  Icons use
// a 100x100 box with the y-axis pointing down.  [Font.Transform] computes
// the matrix which maps glyph space to icon space, and [Markup] embeds this
// matrix together with the unmodified path data into an SVG <path> element.
//
// Missing or malformed metrics never cause an error.  Instead the values
// from [DefaultMetrics] are used.
package svgfont
