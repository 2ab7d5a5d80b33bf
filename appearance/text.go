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
	"fmt"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/graphics"
)

// Text places a single text run.
//
// By default the run starts at ((width-Size)/2, (height-Size)/2), which
// centers a single glyph of roughly square shape.  X and Y override this
// position.  XOffset and YOffset are added in both cases.
type Text struct {
	Text string

	// Font is the font family name.  It is passed to
	// [Resolver.LookupFont], or used as the font resource name if no
	// resolver is available.
	Font string

	Size float64

	// Gray is the DeviceGray level used to fill the glyphs.
	Gray float64

	X, Y *float64

	XOffset, YOffset float64
}

var _ Appearance = (*Text)(nil)

// NewText returns a text appearance with the given text, font family and
// font size, drawn in black.
func NewText(text, font string, size float64) *Text {
	return &Text{
		Text: text,
		Font: font,
		Size: size,
	}
}

// Build implements the [Appearance] interface.
//
// If res is not nil, the font is looked up, registered as a form font, and
// the text is measured.  The text is then shown using the font's own
// encoding.  Otherwise the text is shown as an escaped literal string.
func (t *Text) Build(res Resolver, width, height float64) ([]string, FontSet, error) {
	if t == nil {
		return nil, nil, acroform.ErrMissingAppearance
	}

	var font Font
	fontName := acroform.Name(t.Font)
	if res != nil {
		var err error
		font, err = res.LookupFont(t.Font)
		if err != nil {
			return nil, nil, fmt.Errorf("text appearance: %w", err)
		}
		res.RegisterFormFont(font.FontID())
		fontName = font.ResourceName()
		res.MeasureText(font, t.Text, t.Size)
	}

	x := (width - t.Size) / 2
	if t.X != nil {
		x = *t.X
	}
	y := (height - t.Size) / 2
	if t.Y != nil {
		y = *t.Y
	}
	x += t.XOffset
	y += t.YOffset

	w := graphics.NewWriter()
	w.PushGraphicsState()
	w.TextStart()
	w.TextSetFont(fontName, t.Size)
	w.SetFillGray(t.Gray)
	w.TextFirstLine(x, y)
	if font != nil {
		s, err := font.Encode(t.Text)
		if err != nil {
			return nil, nil, fmt.Errorf("text appearance: %w", err)
		}
		w.TextShowRaw(s)
	} else {
		w.TextShowLiteral(t.Text)
	}
	w.TextEnd()
	w.PopGraphicsState()

	ops, err := w.Ops()
	if err != nil {
		return nil, nil, err
	}

	fonts := FontSet{}
	if font != nil {
		fonts.Add(font.FontID())
	}
	return ops, fonts, nil
}

// DefaultText implements the [Appearance] interface.
// A text appearance is its own default text.
func (t *Text) DefaultText() *Text {
	return t
}

func (t *Text) isAppearance() {}
