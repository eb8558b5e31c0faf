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

// Package memory implements an in-memory icon registry.
package memory

import (
	"slices"
	"sync"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/svgicons/iconset"
)

// Registry stores icons in a map.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	icons map[string]string
}

var _ iconset.Registry = (*Registry)(nil)

// New returns an empty registry.
func New() *Registry {
	return &Registry{icons: make(map[string]string)}
}

// RegisterIcon implements the [iconset.Registry] interface.
func (r *Registry) RegisterIcon(id, markup string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.icons[id] = markup
}

// UnregisterIcon implements the [iconset.Registry] interface.
func (r *Registry) UnregisterIcon(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.icons, id)
}

// IconIDs implements the [iconset.Registry] interface.
// The ids are returned in sorted order.
func (r *Registry) IconIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.icons))
	for id := range r.icons {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Icon returns the markup of a registered icon.
func (r *Registry) Icon(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	markup, ok := r.icons[id]
	return markup, ok
}

// Len returns the number of registered icons.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.icons)
}

// Snapshot returns a copy of the registry contents.
func (r *Registry) Snapshot() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.icons)
}
