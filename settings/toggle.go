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

package settings

import (
	"context"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Toggle describes an on/off switch in the settings panel of the host.
// The host decides how the toggle is rendered.
type Toggle struct {
	Label       string
	Description string
	Value       bool

	// OnChange is called when the user flips the switch.
	OnChange func(ctx context.Context, value bool) error
}

// SortToggles orders toggles by label, using the collation rules of the
// given language.
func SortToggles(toggles []Toggle, lang language.Tag) {
	c := collate.New(lang, collate.IgnoreCase)
	slices.SortStableFunc(toggles, func(a, b Toggle) int {
		return c.CompareString(a.Label, b.Label)
	})
}
