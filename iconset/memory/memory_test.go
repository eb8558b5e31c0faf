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

package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry(t *testing.T) {
	r := New()
	if ids := r.IconIDs(); len(ids) != 0 {
		t.Errorf("new registry has icons %v", ids)
	}

	r.RegisterIcon("ra-sword", "<path/>")
	r.RegisterIcon("gi-flag", "<path/>")
	r.RegisterIcon("ra-sword", `<path d="M0 0"/>`)
	r.UnregisterIcon("unknown")

	want := []string{"gi-flag", "ra-sword"}
	if d := cmp.Diff(want, r.IconIDs()); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
	if markup, _ := r.Icon("ra-sword"); markup != `<path d="M0 0"/>` {
		t.Errorf("icon was not replaced: %s", markup)
	}

	snap := r.Snapshot()
	r.UnregisterIcon("gi-flag")
	if r.Len() != 1 || len(snap) != 2 {
		t.Errorf("snapshot shares state with the registry")
	}
	if _, ok := r.Icon("gi-flag"); ok {
		t.Error("removed icon still present")
	}
}
