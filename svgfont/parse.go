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
	"encoding/xml"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// MalformedFontError indicates that an SVG font document could not be
// read.  Glyphs which were read before the problem was detected are still
// returned by [Parse].
type MalformedFontError struct {
	Err  error
	Line int
}

func (err *MalformedFontError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	return "not a valid SVG font" + middle + tail
}

func (err *MalformedFontError) Unwrap() error {
	return err.Err
}

var errNoFont = errors.New("missing <font> element")

// Parse reads the glyph table of an SVG font.
// Missing metrics are taken from [DefaultMetrics].
func Parse(r io.Reader) (*Font, error) {
	return ParseWithDefaults(r, DefaultMetrics)
}

// ParseWithDefaults reads the glyph table of an SVG font, using def for
// missing or malformed metrics.
//
// If an error is returned, the returned font is still non-nil and contains
// the glyphs read before the error occurred.
func ParseWithDefaults(r io.Reader, def Metrics) (*Font, error) {
	def = def.Fill(DefaultMetrics)
	f := &Font{Metrics: def}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	seenFont := false
	seenFace := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			line, _ := dec.InputPos()
			f.Metrics = f.Metrics.Fill(def)
			return f, &MalformedFontError{Err: err, Line: line}
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "font":
			if seenFont {
				// only the first font sets the metrics
				break
			}
			seenFont = true
			f.ID = attr(se, "id")
			f.HorizAdvX = number(se, "horiz-adv-x", def.HorizAdvX)
		case "font-face":
			if seenFace {
				break
			}
			seenFace = true
			f.Ascent = number(se, "ascent", def.Ascent)
			f.Descent = number(se, "descent", def.Descent)
		case "glyph":
			g := &Glyph{
				Name:      attr(se, "glyph-name"),
				Unicode:   attr(se, "unicode"),
				PathData:  attr(se, "d"),
				HorizAdvX: max(number(se, "horiz-adv-x", 0), 0),
			}
			f.Glyphs = append(f.Glyphs, g)
		}
	}
	f.Metrics = f.Metrics.Fill(def)

	if !seenFont {
		return f, &MalformedFontError{Err: errNoFont}
	}
	return f, nil
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// number returns the value of a numeric attribute, or def if the attribute
// is missing or cannot be parsed.
func number(se xml.StartElement, name string, def float64) float64 {
	s := strings.TrimSpace(attr(se, name))
	if s == "" {
		return def
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return def
	}
	return x
}
