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

package field

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
	"seehuhn.de/go/acroform/graphics"
)

// DefaultTextFont is the font family used for text fields if no font is
// specified.
const DefaultTextFont = "Helvetica"

// textPadding is the distance between the widget edge and the clipping
// rectangle around the text.
const textPadding = 2

// TextFieldOptions holds the settings of a text field.
type TextFieldOptions struct {
	// Value is the initial text.  It is used both as value and as default
	// value of the field.
	Value string

	// Font is the font family.  The default is [DefaultTextFont].
	Font string

	// FontSize is the font size.  The default is 12.
	FontSize float64

	// FontColorGray is the DeviceGray level of the text.
	FontColorGray float64

	// Background and Border are the colors of the widget background and
	// border.  If a color is nil, the corresponding part is not drawn.
	Background *appearance.RGB
	Border     *appearance.RGB

	// BorderWidth is the width of the border.  The default is 1.
	BorderWidth float64

	// MaxLength is the maximum length of the field's text, in characters.
	// The value is passed on to PDF viewers in the /MaxLen entry, but is
	// not checked here.  Zero means no limit.
	MaxLength int

	Multiline bool
	Password  bool
	ReadOnly  bool
	Required  bool

	// Resolver is used to look up and register fonts.  If this is nil, font
	// family names are used directly as font resource names.
	Resolver appearance.Resolver
}

// TextField is an interactive text input field.
type TextField struct {
	Base

	Font          string
	FontSize      float64
	FontColorGray float64
	Background    *appearance.RGB
	Border        *appearance.RGB
	MaxLength     int
	Multiline     bool

	text   string
	normal *appearance.FormXObject
}

// NewTextField creates a new text field with the given name and widget
// rectangle.  A nil opt selects default values for all settings.
//
// The default appearance string is computed here.  If a resolver is given,
// the field's font is looked up and registered as a form font.
func NewTextField(name string, x, y, width, height float64, opt *TextFieldOptions) (*TextField, error) {
	if opt == nil {
		opt = &TextFieldOptions{}
	}

	font := opt.Font
	if font == "" {
		font = DefaultTextFont
	}
	fontSize := opt.FontSize
	if fontSize == 0 {
		fontSize = 12
	}
	borderWidth := opt.BorderWidth
	if borderWidth == 0 {
		borderWidth = 1
	}

	f := &TextField{
		Base: Base{
			Type:        TypeText,
			Name:        name,
			X:           x,
			Y:           y,
			Width:       width,
			Height:      height,
			Flags:       TextFlags(opt.Multiline, opt.Password, opt.ReadOnly, opt.Required),
			BorderWidth: borderWidth,
			Resolver:    opt.Resolver,
		},
		Font:          font,
		FontSize:      fontSize,
		FontColorGray: opt.FontColorGray,
		Background:    opt.Background,
		Border:        opt.Border,
		MaxLength:     opt.MaxLength,
		Multiline:     opt.Multiline,
		text:          opt.Value,
	}
	if opt.Value != "" {
		f.Value = acroform.TextString(opt.Value)
		f.DefaultValue = acroform.TextString(opt.Value)
	}

	da, err := defaultAppearance(f.Resolver, font, fontSize, f.FontColorGray)
	if err != nil {
		return nil, fmt.Errorf("text field %q: %w", name, err)
	}
	f.DA = da

	return f, nil
}

// Text returns the current text of the field.
func (f *TextField) Text() string {
	return f.text
}

// GenerateAppearance renders the normal appearance of the text field.
//
// The text is placed 2 units from the left edge.  Single-line fields center
// the text vertically, multiline fields start the text 2 units below the top
// edge.  The text is clipped to the widget rectangle, inset by 2 units.
func (f *TextField) GenerateAppearance(opt *AppearanceOptions) error {
	family := f.Font
	size := f.FontSize
	if opt != nil {
		if opt.Font != "" {
			family = opt.Font
		}
		if opt.FontSize != 0 {
			size = opt.FontSize
		}
	}

	res := f.Resolver
	fontName := acroform.Name(family)
	var fontIDs appearance.FontSet
	if res != nil {
		font, err := res.LookupFont(family)
		if err != nil {
			return fmt.Errorf("text field %q: %w", f.Name, err)
		}
		fontName = font.ResourceName()
		fontIDs = appearance.FontSet{}
		fontIDs.Add(font.FontID())
	}

	width, height := f.Width, f.Height
	bw := f.BorderWidth

	w := graphics.NewWriter()
	w.MarkedContentStart("Tx")
	w.PushGraphicsState()
	if c := f.Background; c != nil {
		w.SetFillRGB(c.R, c.G, c.B)
		w.Rectangle(0, 0, width, height)
		w.Fill()
	}
	if c := f.Border; c != nil {
		w.SetStrokeRGB(c.R, c.G, c.B)
		w.SetLineWidth(bw)
		w.Rectangle(bw/2, bw/2, width-bw, height-bw)
		w.Stroke()
	}
	if f.text != "" {
		w.Rectangle(textPadding, textPadding, width-2*textPadding, height-2*textPadding)
		w.ClipNonZero()
		w.EndPath()

		w.TextStart()
		w.TextSetFont(fontName, size)
		w.SetFillGray(f.FontColorGray)
		w.TextFirstLine(textPadding, f.baseline(size))
		w.TextShowLiteral(f.text)
		w.TextEnd()
	}
	w.PopGraphicsState()
	w.MarkedContentEnd()

	ops, err := w.Ops()
	if err != nil {
		return fmt.Errorf("text field %q: %w", f.Name, err)
	}
	obj, err := appearance.NewFormXObject(ops, width, height, "")
	if err != nil {
		return fmt.Errorf("text field %q: %w", f.Name, err)
	}
	obj.SetFontIDs(fontIDs)
	if res != nil {
		res.RegisterFormXObjectResources(obj)
	}

	f.normal = obj
	return nil
}

// baseline returns the vertical start position of the text.
func (f *TextField) baseline(size float64) float64 {
	if f.Multiline {
		return f.Height - size - textPadding
	}
	return (f.Height-size)/2 + textPadding
}

// Normal returns the normal appearance of the field, or nil if the
// appearance has not been generated.
func (f *TextField) Normal() *appearance.FormXObject {
	return f.normal
}

// AppearanceDict implements the [Field] interface.
func (f *TextField) AppearanceDict() *appearance.Dict {
	if f.normal == nil {
		return nil
	}
	return &appearance.Dict{
		Normal: appearance.Entry{Stream: f.normal},
	}
}

// Entries implements the [Field] interface.
func (f *TextField) Entries(ref appearance.RefFunc) ([]acroform.KeyValue, error) {
	res := f.entries()
	if f.MaxLength > 0 {
		res = append(res, acroform.KeyValue{Key: "MaxLen", Value: strconv.Itoa(f.MaxLength)})
	}
	return appendAP(res, f.AppearanceDict(), ref)
}
