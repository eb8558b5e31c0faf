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

package iconset

import (
	"github.com/sirupsen/logrus"
)

// Bridge adds and removes icon sets to and from a registry.
type Bridge struct {
	reg Registry
	log *logrus.Logger
}

// NewBridge returns a bridge for the given registry.
// If log is nil, the logrus standard logger is used.
func NewBridge(reg Registry, log *logrus.Logger) *Bridge {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bridge{reg: reg, log: log}
}

// Activate registers all icons of an icon set and returns the number of
// icons registered.  Icons which are already present are overwritten.
//
// A malformed font does not cause an error.  The problem is logged and
// no icons of the set are registered.
func (b *Bridge) Activate(d *Descriptor) int {
	log := b.log.WithFields(logrus.Fields{
		"set":    d.Name,
		"prefix": d.Prefix,
	})

	icons, err := d.Icons()
	if err != nil {
		log.WithError(err).Warn("cannot read icon font")
		return 0
	}
	for _, icon := range icons {
		b.reg.RegisterIcon(icon.ID, icon.Markup)
		log.Debugf("adding %s", icon.ID)
	}
	log.Infof("activated %d icons", len(icons))
	return len(icons)
}

// Deactivate removes all icons whose id starts with prefix followed by a
// dash, and returns the number of icons removed.  Icons with other
// prefixes are never touched.
func (b *Bridge) Deactivate(prefix string) int {
	n := 0
	for _, id := range b.reg.IconIDs() {
		if HasPrefix(id, prefix) {
			b.reg.UnregisterIcon(id)
			n++
		}
	}
	if n > 0 {
		b.log.WithField("prefix", prefix).Infof("removed %d icons", n)
	}
	return n
}
