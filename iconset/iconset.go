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

// Package iconset adds the glyphs of SVG fonts to an icon registry.
//
// Every icon set has a short prefix.  The icons of a set are registered as
// "prefix-name", which allows to remove all icons of a set again without
// keeping track of the registered names.
package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/svgicons/svgfont"
)

// Registry is the icon table of the host application.
type Registry interface {
	// RegisterIcon adds an icon, replacing any previous icon with the same id.
	RegisterIcon(id, markup string)

	// UnregisterIcon removes an icon.  Unknown ids are ignored.
	UnregisterIcon(id string)

	// IconIDs lists the ids of all registered icons.
	IconIDs() []string
}

// Descriptor describes an icon set.
// Descriptors must not be modified once they are in use.
type Descriptor struct {
	// Name identifies the icon set in the settings.
	Name string

	// Description is shown next to the toggle for the icon set.
	Description string

	// Prefix is prepended to the names of all icons in the set.
	Prefix string

	// Font is the SVG font document.
	Font []byte

	// Names (optional) chooses the icon names.
	// If this is nil, the glyph-name attributes are used.
	Names svgfont.NameFunc

	// Metrics (optional) replaces [svgfont.DefaultMetrics] for values
	// missing from the font.
	Metrics *svgfont.Metrics
}

// Icons parses the font of the icon set and converts all glyphs to icons.
// If the font is malformed, the icons found before the problem are
// returned together with the error.
func (d *Descriptor) Icons() ([]svgfont.Icon, error) {
	def := svgfont.DefaultMetrics
	if d.Metrics != nil {
		def = *d.Metrics
	}
	f, err := svgfont.ParseWithDefaults(bytes.NewReader(d.Font), def)
	icons := svgfont.Import(f, d.Prefix, d.Names)
	if err != nil {
		return icons, fmt.Errorf("icon set %q: %w", d.Name, err)
	}
	return icons, nil
}

// Validate checks that the descriptor can be used.
func (d *Descriptor) Validate() error {
	if d.Name == "" {
		return errors.New("icon set without name")
	}
	if d.Prefix == "" {
		return fmt.Errorf("icon set %q: missing prefix", d.Name)
	}
	if strings.ContainsAny(d.Prefix, " \t\n") {
		return fmt.Errorf("icon set %q: invalid prefix %q", d.Name, d.Prefix)
	}
	return nil
}

// CheckSets validates all descriptors and makes sure that names and
// prefixes are unique.
func CheckSets(sets []*Descriptor) error {
	names := make(map[string]bool, len(sets))
	prefixes := make(map[string]string, len(sets))
	for _, d := range sets {
		if err := d.Validate(); err != nil {
			return err
		}
		if names[d.Name] {
			return fmt.Errorf("duplicate icon set %q", d.Name)
		}
		names[d.Name] = true
		if other, dup := prefixes[d.Prefix]; dup {
			return fmt.Errorf("icon sets %q and %q share the prefix %q",
				other, d.Name, d.Prefix)
		}
		prefixes[d.Prefix] = d.Name
	}
	return nil
}

// HasPrefix reports whether the icon id belongs to the set with the given
// prefix.
func HasPrefix(id, prefix string) bool {
	return strings.HasPrefix(id, prefix+"-")
}
