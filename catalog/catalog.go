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

// Package catalog reads the list of icon sets shipped by a host.
//
// A catalog is a TOML file with one table per icon set:
//
//	[[iconset]]
//	name = "RPG Awesome"
//	description = "Use RPG Awesome Icon Set from https://nagoshiashumari.github.io/Rpg-Awesome/"
//	prefix = "ra"
//	font = "rpg-awesome/fonts/rpgawesome-webfont.svg"
//
//	[[iconset]]
//	name = "GovIcons"
//	prefix = "gi"
//	font = "govicons/fonts/govicons-webfont.svg"
//	variables = "govicons/less/variables.less"
//	trim = "gi-"
//
//	[iconset.metrics]
//	ascent = 1792
//	descent = -256
//
// Relative file names are interpreted relative to the catalog file.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/svgicons/iconset"
	"seehuhn.de/go/svgicons/svgfont"
	"seehuhn.de/go/svgicons/svgfont/lessvars"
)

// Entry is one icon set in a catalog file.
type Entry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Prefix      string   `toml:"prefix"`
	Font        string   `toml:"font"`
	Variables   string   `toml:"variables"`
	Trim        string   `toml:"trim"`
	Metrics     *Metrics `toml:"metrics"`
}

// Metrics overrides the default font metrics of an icon set.
// Missing values keep the defaults.
type Metrics struct {
	HorizAdvX *float64 `toml:"horiz-adv-x"`
	Ascent    *float64 `toml:"ascent"`
	Descent   *float64 `toml:"descent"`
}

type file struct {
	IconSet []Entry `toml:"iconset"`
}

// Load reads a catalog file and the font files it references.
func Load(path string) ([]*iconset.Descriptor, error) {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("catalog %s: unknown keys %s",
			path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	sets := make([]*iconset.Descriptor, 0, len(f.IconSet))
	for i := range f.IconSet {
		d, err := f.IconSet[i].descriptor(dir)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		sets = append(sets, d)
	}
	if err := iconset.CheckSets(sets); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return sets, nil
}

func (e *Entry) descriptor(dir string) (*iconset.Descriptor, error) {
	if e.Font == "" {
		return nil, fmt.Errorf("icon set %q: missing font", e.Name)
	}
	font, err := os.ReadFile(resolve(dir, e.Font))
	if err != nil {
		return nil, err
	}

	d := &iconset.Descriptor{
		Name:        e.Name,
		Description: e.Description,
		Prefix:      e.Prefix,
		Font:        font,
	}

	if e.Variables != "" {
		fd, err := os.Open(resolve(dir, e.Variables))
		if err != nil {
			return nil, err
		}
		table, err := lessvars.Parse(fd, e.Trim)
		fd.Close()
		if err != nil {
			return nil, err
		}
		d.Names = table.Names()
	}

	if e.Metrics != nil {
		m := svgfont.DefaultMetrics
		if e.Metrics.HorizAdvX != nil {
			m.HorizAdvX = *e.Metrics.HorizAdvX
		}
		if e.Metrics.Ascent != nil {
			m.Ascent = *e.Metrics.Ascent
		}
		if e.Metrics.Descent != nil {
			m.Descent = *e.Metrics.Descent
		}
		m = m.Fill(svgfont.DefaultMetrics)
		d.Metrics = &m
	}

	return d, nil
}

func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}
