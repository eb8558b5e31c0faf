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

// Package settings stores which icon sets are enabled.
package settings

import (
	"context"

	"golang.org/x/exp/maps"
)

// Settings records which icon sets are in use.
type Settings struct {
	// UseIconsets maps icon set names to their enabled state.
	UseIconsets map[string]bool `json:"useIconsets"`
}

// Defaults returns settings where all the named icon sets are enabled.
func Defaults(names ...string) Settings {
	s := Settings{UseIconsets: make(map[string]bool, len(names))}
	for _, name := range names {
		s.UseIconsets[name] = true
	}
	return s
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	res := Settings{UseIconsets: maps.Clone(s.UseIconsets)}
	if res.UseIconsets == nil {
		res.UseIconsets = map[string]bool{}
	}
	return res
}

// Merge combines default settings with persisted settings.  Values from
// persisted override the defaults.  Entries for icon sets which are not
// listed in defaults are dropped.  The persisted settings may be nil.
func Merge(defaults Settings, persisted *Settings) Settings {
	res := defaults.Clone()
	if persisted == nil {
		return res
	}
	for name, on := range persisted.UseIconsets {
		if _, known := res.UseIconsets[name]; known {
			res.UseIconsets[name] = on
		}
	}
	return res
}

// Store persists settings.
type Store interface {
	// Load returns the persisted settings.  If nothing has been persisted
	// yet, Load returns nil and no error.
	Load(ctx context.Context) (*Settings, error)

	// Save persists the settings.
	Save(ctx context.Context, s Settings) error
}
