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

// Package plugin connects icon sets, settings and the host registry.
//
// The host calls [Plugin.Load] at startup and [Plugin.Unload] at shutdown.
// In between, the toggles returned by [Plugin.SettingsTab] enable and
// disable individual icon sets.
package plugin

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"seehuhn.de/go/svgicons/iconset"
	"seehuhn.de/go/svgicons/settings"
)

// Options allows to configure a plugin.
type Options struct {
	// Logger (optional) receives log messages.
	// If this is nil, the logrus standard logger is used.
	Logger *logrus.Logger

	// Language (optional) determines the order of the settings toggles.
	Language language.Tag
}

// Plugin manages the icon sets of one host application.
type Plugin struct {
	sets   []*iconset.Descriptor
	byName map[string]*iconset.Descriptor
	bridge *iconset.Bridge
	store  settings.Store
	log    *logrus.Logger
	lang   language.Tag

	defaults settings.Settings
	settings settings.Settings
}

// New creates a new plugin.  The icon sets must have distinct names and
// prefixes.  Opt can be nil.
func New(reg iconset.Registry, store settings.Store, sets []*iconset.Descriptor, opt *Options) (*Plugin, error) {
	if err := iconset.CheckSets(sets); err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &Options{}
	}
	log := opt.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	p := &Plugin{
		sets:   sets,
		byName: make(map[string]*iconset.Descriptor, len(sets)),
		bridge: iconset.NewBridge(reg, log),
		store:  store,
		log:    log,
		lang:   opt.Language,
	}
	names := make([]string, len(sets))
	for i, d := range sets {
		names[i] = d.Name
		p.byName[d.Name] = d
	}
	p.defaults = settings.Defaults(names...)
	p.settings = p.defaults.Clone()
	return p, nil
}

// Load reads the persisted settings and activates all enabled icon sets.
//
// If the persisted settings cannot be read, the problem is logged and the
// defaults are used.
func (p *Plugin) Load(ctx context.Context) error {
	persisted, err := p.store.Load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.log.WithError(err).Warn("cannot load settings, using defaults")
		persisted = nil
	}
	p.settings = settings.Merge(p.defaults, persisted)

	for _, d := range p.sets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if p.settings.UseIconsets[d.Name] {
			p.bridge.Activate(d)
		}
	}
	return nil
}

// Unload removes the icons of all icon sets from the registry.
func (p *Plugin) Unload(ctx context.Context) error {
	for _, d := range p.sets {
		p.bridge.Deactivate(d.Prefix)
	}
	return nil
}

// Settings returns a copy of the current settings.
func (p *Plugin) Settings() settings.Settings {
	return p.settings.Clone()
}

// Enabled reports whether the named icon set is enabled.
func (p *Plugin) Enabled(name string) bool {
	return p.settings.UseIconsets[name]
}

// Sets returns the icon sets managed by the plugin.
func (p *Plugin) Sets() []*iconset.Descriptor {
	return p.sets
}

// SetEnabled enables or disables an icon set.  The new settings are saved
// first, and only then the icons of the set are added to or removed from
// the registry.  If saving fails, neither the settings nor the registry
// are changed.
func (p *Plugin) SetEnabled(ctx context.Context, name string, on bool) error {
	d, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("unknown icon set %q", name)
	}

	next := p.settings.Clone()
	next.UseIconsets[name] = on
	if err := p.store.Save(ctx, next); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	p.settings = next

	if on {
		p.bridge.Activate(d)
	} else {
		p.bridge.Deactivate(d.Prefix)
	}
	return nil
}

// SettingsTab returns one toggle per icon set, for display in the settings
// panel of the host.
func (p *Plugin) SettingsTab() []settings.Toggle {
	toggles := make([]settings.Toggle, 0, len(p.sets))
	for _, d := range p.sets {
		name := d.Name
		toggles = append(toggles, settings.Toggle{
			Label:       d.Name,
			Description: d.Description,
			Value:       p.settings.UseIconsets[name],
			OnChange: func(ctx context.Context, value bool) error {
				p.log.WithField("set", name).Debugf("setting to %t", value)
				return p.SetEnabled(ctx, name, value)
			},
		})
	}
	settings.SortToggles(toggles, p.lang)
	return toggles
}
