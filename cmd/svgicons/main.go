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

// Svgicons loads the icon sets listed in a catalog file, remembers which
// sets are enabled, and lists or renders the resulting icons.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/svgicons/catalog"
	"seehuhn.de/go/svgicons/iconset/memory"
	"seehuhn.de/go/svgicons/internal/buildinfo"
	"seehuhn.de/go/svgicons/internal/profile"
	"seehuhn.de/go/svgicons/plugin"
	"seehuhn.de/go/svgicons/render"
)

type options struct {
	catalog    string
	state      string
	logFile    string
	logLevel   string
	enable     string
	disable    string
	list       bool
	sets       bool
	renderDir  string
	sheet      string
	size       int
	columns    int
	cpuprofile string
	memprofile string
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opt := &options{}
	flag.StringVar(&opt.catalog, "catalog", cfg.Catalog, "icon set catalog `file`")
	flag.StringVar(&opt.state, "state", cfg.State, "settings `file` (.json or bbolt database)")
	flag.StringVar(&opt.logFile, "log", cfg.LogFile, "also write log messages to `file`")
	flag.StringVar(&opt.logLevel, "v", cfg.LogLevel, "log `level`")
	flag.StringVar(&opt.enable, "enable", "", "comma-separated `names` of icon sets to enable")
	flag.StringVar(&opt.disable, "disable", "", "comma-separated `names` of icon sets to disable")
	flag.BoolVar(&opt.list, "list", false, "list the ids of all registered icons")
	flag.BoolVar(&opt.sets, "sets", false, "list the icon sets and their state")
	flag.StringVar(&opt.renderDir, "render", "", "write one PNG file per icon into `dir`")
	flag.StringVar(&opt.sheet, "sheet", "", "write a contact sheet of all icons to `file`")
	flag.IntVar(&opt.size, "size", 64, "icon size in pixels")
	flag.IntVar(&opt.columns, "columns", 16, "number of icons per row in the contact sheet")
	flag.StringVar(&opt.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flag.StringVar(&opt.memprofile, "memprofile", "", "write memory profile to `file`")

	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "svgicons \u2014 register icons from SVG fonts\n")
		fmt.Fprintf(w, "%s\n\n", buildinfo.Short("svgicons"))
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  svgicons [options]\n\n")
		fmt.Fprintf(w, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(w, "\nEnvironment:\n")
		fmt.Fprintf(w, "  SVGICONS_CATALOG, SVGICONS_STATE, SVGICONS_LOG_FILE and\n")
		fmt.Fprintf(w, "  SVGICONS_LOG_LEVEL set the defaults for the corresponding options.\n")
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  svgicons -catalog fonts/catalog.toml -list\n")
		fmt.Fprintf(w, "  svgicons -disable GovIcons -sheet icons.png\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opt *options) error {
	if opt.size <= 0 {
		return fmt.Errorf("invalid icon size %d", opt.size)
	}

	log, err := newLogger(opt.logLevel, opt.logFile)
	if err != nil {
		return err
	}

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile, log)
	if err != nil {
		return err
	}
	defer stop()

	sets, err := catalog.Load(opt.catalog)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(opt.state)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	reg := memory.New()
	p, err := plugin.New(reg, store, sets, &plugin.Options{Logger: log})
	if err != nil {
		return err
	}
	if err := p.Load(ctx); err != nil {
		return err
	}
	defer p.Unload(ctx)

	for _, name := range splitNames(opt.enable) {
		if err := p.SetEnabled(ctx, name, true); err != nil {
			return err
		}
	}
	for _, name := range splitNames(opt.disable) {
		if err := p.SetEnabled(ctx, name, false); err != nil {
			return err
		}
	}

	if opt.sets {
		for _, tg := range p.SettingsTab() {
			state := "off"
			if tg.Value {
				state = "on"
			}
			fmt.Printf("%-3s %-20s %s\n", state, tg.Label, tg.Description)
		}
	}

	ids := reg.IconIDs()
	if opt.list {
		printColumns(os.Stdout, ids)
	}

	if opt.renderDir == "" && opt.sheet == "" {
		return nil
	}

	var images []image.Image
	for _, id := range ids {
		markup, _ := reg.Icon(id)
		img, err := render.Icon(markup, opt.size)
		if err != nil {
			log.WithError(err).WithField("icon", id).Warn("cannot render icon")
			continue
		}
		if opt.renderDir != "" {
			err := writeImage(filepath.Join(opt.renderDir, id+".png"), img)
			if err != nil {
				return err
			}
		}
		images = append(images, img)
	}
	if opt.sheet != "" {
		sheet := render.Sheet(images, opt.size, opt.columns)
		if err := writeImage(opt.sheet, sheet); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"file":  opt.sheet,
			"icons": len(images),
		}).Info("contact sheet written")
	}
	return nil
}

func splitNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func writeImage(fname string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = render.WritePNG(out, img)
	if err2 := out.Close(); err == nil {
		err = err2
	}
	return err
}
