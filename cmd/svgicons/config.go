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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"seehuhn.de/go/svgicons/settings"
)

// config holds the defaults for the command line flags.
type config struct {
	Catalog  string `env:"SVGICONS_CATALOG"   envDefault:"catalog.toml"`
	State    string `env:"SVGICONS_STATE"     envDefault:"svgicons.db"`
	LogFile  string `env:"SVGICONS_LOG_FILE"`
	LogLevel string `env:"SVGICONS_LOG_LEVEL" envDefault:"warning"`
}

func loadConfig() (*config, error) {
	cfg := &config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// newLogger sets up a logger which writes to stderr and, if fname is not
// empty, to a rotated log file.
func newLogger(level, fname string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: fname == "",
	})

	var out io.Writer = os.Stderr
	if fname != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   fname,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		})
	}
	log.SetOutput(out)
	return log, nil
}

// openStore chooses the settings store from the file name: names ending in
// ".json" use a plain JSON file, everything else a bbolt database.
func openStore(fname string) (settings.Store, func() error, error) {
	if strings.EqualFold(filepath.Ext(fname), ".json") {
		return &settings.FileStore{Path: fname}, func() error { return nil }, nil
	}
	store, err := settings.OpenBolt(fname)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}
