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

// Package render draws icons into images, for previews and for checking
// the placement of glyphs in the icon box.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"seehuhn.de/go/svgicons/svgfont"
)

// Document wraps icon markup into a stand-alone SVG document with a
// 100x100 view box.
func Document(markup string) string {
	size := strconv.Itoa(svgfont.IconSize)
	return `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 ` +
		size + " " + size + `">` + markup + `</svg>`
}

// Icon draws the icon markup as black shapes on a transparent background.
// The result is a size x size image.
func Icon(markup string, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.New("invalid icon size " + strconv.Itoa(size))
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(Document(markup)), oksvg.StrictErrorMode)
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// Sheet arranges the icons on a grid with the given number of columns,
// using cells of cell x cell pixels on a white background.  Icons of a
// different size are scaled to fit.
func Sheet(icons []image.Image, cell, columns int) *image.NRGBA {
	if columns < 1 {
		columns = 1
	}
	rows := (len(icons) + columns - 1) / columns
	sheet := image.NewNRGBA(image.Rect(0, 0, columns*cell, max(rows, 1)*cell))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, img := range icons {
		x := (i % columns) * cell
		y := (i / columns) * cell
		dst := image.Rect(x, y, x+cell, y+cell)
		if img.Bounds().Dx() == cell && img.Bounds().Dy() == cell {
			draw.Draw(sheet, dst, img, img.Bounds().Min, draw.Over)
		} else {
			draw.CatmullRom.Scale(sheet, dst, img, img.Bounds(), draw.Over, nil)
		}
	}
	return sheet
}

// WritePNG encodes an image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
