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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestMerge(t *testing.T) {
	defaults := Defaults("RPG Awesome", "GovIcons")

	cases := []struct {
		name      string
		persisted *Settings
		want      map[string]bool
	}{
		{
			name: "nothing persisted",
			want: map[string]bool{"RPG Awesome": true, "GovIcons": true},
		},
		{
			name:      "override",
			persisted: &Settings{UseIconsets: map[string]bool{"GovIcons": false}},
			want:      map[string]bool{"RPG Awesome": true, "GovIcons": false},
		},
		{
			name: "unknown names",
			persisted: &Settings{UseIconsets: map[string]bool{
				"RPG Awesome": false,
				"Font Awesome": true,
			}},
			want: map[string]bool{"RPG Awesome": false, "GovIcons": true},
		},
		{
			name:      "empty map",
			persisted: &Settings{},
			want:      map[string]bool{"RPG Awesome": true, "GovIcons": true},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Merge(defaults, c.persisted)
			if d := cmp.Diff(c.want, got.UseIconsets); d != "" {
				t.Errorf("settings (-want +got):\n%s", d)
			}
		})
	}

	if !defaults.UseIconsets["GovIcons"] {
		t.Error("Merge modified the defaults")
	}
}

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	s, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatalf("new store returned %v", s)
	}

	in := Settings{UseIconsets: map[string]bool{"a": true, "b": false}}
	if err := store.Save(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(&in, out); d != "" {
		t.Errorf("settings (-saved +loaded):\n%s", d)
	}

	in.UseIconsets["a"] = false
	if err := store.Save(ctx, in); err != nil {
		t.Fatal(err)
	}
	out, err = store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if out.UseIconsets["a"] {
		t.Error("second save was lost")
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, &MemoryStore{})
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	testStore(t, &FileStore{Path: path})

	// the temporary file must not be left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected one file, found %d", len(entries))
	}
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := (&FileStore{Path: path}).Load(context.Background())
	if err == nil {
		t.Error("malformed settings file accepted")
	}
}

func TestBoltStore(t *testing.T) {
	store, err := OpenBolt(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	testStore(t, store)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &FileStore{Path: filepath.Join(t.TempDir(), "settings.json")}
	if err := store.Save(ctx, Defaults("a")); err == nil {
		t.Error("save with canceled context succeeded")
	}
}

func TestSortToggles(t *testing.T) {
	toggles := []Toggle{
		{Label: "zodiac"},
		{Label: "Éléments"},
		{Label: "GovIcons"},
		{Label: "elements"},
	}
	SortToggles(toggles, language.English)

	var got []string
	for _, tg := range toggles {
		got = append(got, tg.Label)
	}
	want := []string{"elements", "Éléments", "GovIcons", "zodiac"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("order (-want +got):\n%s", d)
	}
}

func TestClone(t *testing.T) {
	s := Defaults("RPG Awesome")
	c := s.Clone()
	c.UseIconsets["RPG Awesome"] = false
	c.UseIconsets["GovIcons"] = true
	if d := cmp.Diff(map[string]bool{"RPG Awesome": true}, s.UseIconsets); d != "" {
		t.Errorf("original modified (-want +got):\n%s", d)
	}

	empty := Settings{}.Clone()
	if empty.UseIconsets == nil {
		t.Error("clone of empty settings has nil map")
	}
}
