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

// Package profile collects CPU and memory profiles for the command line
// tools.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

// Start begins CPU profiling if cpuFile is non-empty.  The returned function
// stops CPU profiling and, if memFile is non-empty, writes an allocation
// profile.  Problems after startup are logged to log.
func Start(cpuFile, memFile string, log *logrus.Logger) (stop func(), err error) {
	var cpu *os.File
	if cpuFile != "" {
		cpu, err = os.Create(cpuFile)
		if err != nil {
			return nil, fmt.Errorf("create CPU profile: %w", err)
		}
		if err = pprof.StartCPUProfile(cpu); err != nil {
			cpu.Close()
			return nil, fmt.Errorf("start CPU profile: %w", err)
		}
	}

	stop = func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if memFile != "" {
			if err := writeAllocs(memFile); err != nil {
				log.WithError(err).Error("memory profile")
			}
		}
	}
	return stop, nil
}

func writeAllocs(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return fmt.Errorf("allocs profile not available")
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	err = allocs.WriteTo(f, 0)
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}
