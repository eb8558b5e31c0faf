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

package plugin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"

	"seehuhn.de/go/svgicons/iconset"
	"seehuhn.de/go/svgicons/iconset/memory"
	"seehuhn.de/go/svgicons/settings"
)

var testSets = []*iconset.Descriptor{
	{
		Name:        "RPG Awesome",
		Description: "fantasy icons",
		Prefix:      "ra",
		Font: []byte(`<svg><font><font-face ascent="960" descent="-64"/>
<glyph glyph-name="sword" d="M1 1"/><glyph glyph-name="axe" d="M2 2"/></font></svg>`),
	},
	{
		Name:        "GovIcons",
		Description: "government icons",
		Prefix:      "gi",
		Font: []byte(`<svg><font><font-face ascent="960" descent="-64"/>
<glyph glyph-name="capitol" d="M3 3"/></font></svg>`),
	},
}

func newPlugin(t *testing.T, store settings.Store) (*Plugin, *memory.Registry) {
	t.Helper()
	log, _ := test.NewNullLogger()
	reg := memory.New()
	p, err := New(reg, store, testSets, &Options{Logger: log})
	if err != nil {
		t.Fatal(err)
	}
	return p, reg
}

func TestLoadDefaults(t *testing.T) {
	p, reg := newPlugin(t, &settings.MemoryStore{})
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []string{"gi-capitol", "ra-axe", "ra-sword"}
	if d := cmp.Diff(want, reg.IconIDs()); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
}

func TestLoadPersisted(t *testing.T) {
	ctx := context.Background()
	store := &settings.MemoryStore{}
	err := store.Save(ctx, settings.Settings{UseIconsets: map[string]bool{
		"GovIcons": false,
		"Unknown":  true,
	}})
	if err != nil {
		t.Fatal(err)
	}

	p, reg := newPlugin(t, store)
	if err := p.Load(ctx); err != nil {
		t.Fatal(err)
	}
	want := []string{"ra-axe", "ra-sword"}
	if d := cmp.Diff(want, reg.IconIDs()); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
	if _, found := p.Settings().UseIconsets["Unknown"]; found {
		t.Error("unknown icon set was kept in the settings")
	}
}

type brokenStore struct{}

func (brokenStore) Load(context.Context) (*settings.Settings, error) {
	return nil, errors.New("disk on fire")
}

func (brokenStore) Save(context.Context, settings.Settings) error {
	return errors.New("disk on fire")
}

func TestLoadBrokenStore(t *testing.T) {
	p, reg := newPlugin(t, brokenStore{})
	if err := p.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 3 {
		t.Errorf("expected defaults to be used, got %v", reg.IconIDs())
	}

	err := p.SetEnabled(context.Background(), "GovIcons", false)
	if err == nil {
		t.Error("save error was not reported")
	}
	if !p.Enabled("GovIcons") {
		t.Error("settings changed although saving failed")
	}
	if reg.Len() != 3 {
		t.Errorf("registry changed although saving failed: %v", reg.IconIDs())
	}
}

func TestUnload(t *testing.T) {
	p, reg := newPlugin(t, &settings.MemoryStore{})
	reg.RegisterIcon("lucide-star", "<path/>")

	ctx := context.Background()
	if err := p.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := p.Unload(ctx); err != nil {
		t.Fatal(err)
	}
	want := []string{"lucide-star"}
	if d := cmp.Diff(want, reg.IconIDs()); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
}

func TestSettingsTab(t *testing.T) {
	ctx := context.Background()
	store := &settings.MemoryStore{}
	p, reg := newPlugin(t, store)
	if err := p.Load(ctx); err != nil {
		t.Fatal(err)
	}

	toggles := p.SettingsTab()
	if len(toggles) != 2 {
		t.Fatalf("got %d toggles, want 2", len(toggles))
	}
	if toggles[0].Label != "GovIcons" || toggles[1].Label != "RPG Awesome" {
		t.Errorf("wrong toggle order: %q, %q", toggles[0].Label, toggles[1].Label)
	}
	if !toggles[0].Value || toggles[0].Description != "government icons" {
		t.Errorf("wrong toggle %+v", toggles[0])
	}

	if err := toggles[1].OnChange(ctx, false); err != nil {
		t.Fatal(err)
	}
	want := []string{"gi-capitol"}
	if d := cmp.Diff(want, reg.IconIDs()); d != "" {
		t.Errorf("ids (-want +got):\n%s", d)
	}
	if p.Enabled("RPG Awesome") {
		t.Error("icon set still enabled")
	}

	saved, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	wantSaved := map[string]bool{"RPG Awesome": false, "GovIcons": true}
	if d := cmp.Diff(wantSaved, saved.UseIconsets); d != "" {
		t.Errorf("saved settings (-want +got):\n%s", d)
	}

	if err := toggles[1].OnChange(ctx, true); err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 3 {
		t.Errorf("icon set was not re-activated: %v", reg.IconIDs())
	}
	if store.Saves != 2 {
		t.Errorf("settings saved %d times, want 2", store.Saves)
	}
}

func TestSetEnabledUnknown(t *testing.T) {
	p, _ := newPlugin(t, &settings.MemoryStore{})
	if err := p.SetEnabled(context.Background(), "Font Awesome", true); err == nil {
		t.Error("unknown icon set accepted")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	sets := []*iconset.Descriptor{
		{Name: "A", Prefix: "x"},
		{Name: "B", Prefix: "x"},
	}
	if _, err := New(memory.New(), &settings.MemoryStore{}, sets, nil); err == nil {
		t.Error("duplicate prefixes accepted")
	}
}
