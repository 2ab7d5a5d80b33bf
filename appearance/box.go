// seehuhn.de/go/acroform - appearance streams for PDF form fields
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package appearance

import (
	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/graphics"
)

// RGB is a color in the DeviceRGB color space.
// Components outside the range [0, 1] are clamped when drawing.
type RGB struct {
	R, G, B float64
}

// Box paints a background and a border.
type Box struct {
	// Background is the fill color of the box.
	// If this is nil, no background is painted.
	Background *RGB

	// Border is the stroke color of the border.
	// If this is nil, no border is painted.
	Border *RGB

	// BorderWidth is the line width of the border.  The border is drawn
	// inside the box, centered on a line BorderWidth/2 from the edge.
	// Negative values are treated as 0.
	BorderWidth float64
}

var _ Appearance = (*Box)(nil)

// NewBox returns a box with the given colors and a border width of 1.
func NewBox(background, border *RGB) *Box {
	return &Box{
		Background:  background,
		Border:      border,
		BorderWidth: 1,
	}
}

// Build implements the [Appearance] interface.
// A box never uses fonts, so the returned font set is empty.
func (b *Box) Build(_ Resolver, width, height float64) ([]string, FontSet, error) {
	if b == nil {
		return nil, nil, acroform.ErrMissingAppearance
	}

	w := graphics.NewWriter()
	w.PushGraphicsState()
	if c := b.Background; c != nil {
		w.SetFillRGB(c.R, c.G, c.B)
		w.Rectangle(0, 0, width, height)
		w.Fill()
	}
	if c := b.Border; c != nil {
		bw := b.BorderWidth
		if !(bw > 0) {
			bw = 0
		}
		w.SetStrokeRGB(c.R, c.G, c.B)
		w.SetLineWidth(bw)
		w.Rectangle(bw/2, bw/2, width-bw, height-bw)
		w.Stroke()
	}
	w.PopGraphicsState()

	ops, err := w.Ops()
	if err != nil {
		return nil, nil, err
	}
	return ops, FontSet{}, nil
}

// DefaultText implements the [Appearance] interface.
// A box contains no text, so the result is always nil.
func (b *Box) DefaultText() *Text {
	return nil
}

func (b *Box) isAppearance() {}
