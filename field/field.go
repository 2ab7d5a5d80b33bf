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

// Package field implements interactive form fields: single- and multi-line
// text fields and two-state check boxes.
//
// A field stores its geometry and field semantics (name, value, flags) and
// computes its default appearance string when it is created.  Calling
// GenerateAppearance renders the widget's appearance streams using an
// optional [appearance.Resolver]; afterwards AppearanceDict describes the
// /AP entry of the widget annotation.
//
// Writing the field and widget dictionaries to a PDF file, including
// encryption of the field name and value, is left to the caller.  The
// Entries method lists the dictionary entries populated by this package.
package field

import (
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
)

// Type is the field type, stored in the /FT entry of the field dictionary.
type Type acroform.Name

// These are the field types supported by this package.
const (
	TypeText   Type = "Tx"
	TypeButton Type = "Btn"
)

// Field is an interactive form field together with its widget annotation.
type Field interface {
	// Common returns the attributes shared by all field types.
	Common() *Base

	// GenerateAppearance renders the appearance streams of the widget.
	// A nil opt selects default values.
	GenerateAppearance(opt *AppearanceOptions) error

	// AppearanceDict returns the appearance dictionary of the widget, or
	// nil if GenerateAppearance has not been called.
	AppearanceDict() *appearance.Dict

	// Entries returns the entries of the field dictionary populated by this
	// package.
	Entries(ref appearance.RefFunc) ([]acroform.KeyValue, error)
}

var (
	_ Field = (*TextField)(nil)
	_ Field = (*Checkbox)(nil)
)

// AppearanceOptions can be used to override the font used when rendering the
// appearance of a text field.  Check boxes take all their settings from
// their [appearance.Checkbox] and ignore these options.
type AppearanceOptions struct {
	// Font is the font family name.  If this is empty, the field's font
	// is used.
	Font string

	// FontSize is the font size.  If this is zero, the field's font size is
	// used.
	FontSize float64
}

// Base holds the attributes shared by all field types.
type Base struct {
	Type Type

	// Name is the partial field name (/T).  The PDF writer is expected to
	// encrypt the name, if needed.
	Name string

	// The widget rectangle.
	X, Y, Width, Height float64

	// Value and DefaultValue are the /V and /DV entries.  They are nil
	// if not set.
	Value, DefaultValue acroform.Object

	Flags Flags

	// BorderWidth is the width of the widget border.
	BorderWidth float64

	// Resolver is used to look up and register fonts.  It may be nil.
	Resolver appearance.Resolver

	// DA is the default appearance string, without the enclosing
	// parentheses, for example "/F1 12.00 Tf 0.00 g".
	DA string
}

// Common implements the [Field] interface.
func (b *Base) Common() *Base {
	return b
}

// Rect returns the widget rectangle as used in the /Rect entry of the
// widget annotation.
func (b *Base) Rect() rect.Rect {
	return rect.Rect{
		LLx: b.X,
		LLy: b.Y,
		URx: b.X + b.Width,
		URy: b.Y + b.Height,
	}
}

// DefaultAppearance returns the default appearance string of the field.
func (b *Base) DefaultAppearance() string {
	return b.DA
}

func (b *Base) entries() []acroform.KeyValue {
	res := []acroform.KeyValue{
		{Key: "FT", Value: acroform.Name(b.Type).PDF()},
		{Key: "T", Value: acroform.TextString(b.Name).PDF()},
	}
	if b.Value != nil {
		res = append(res, acroform.KeyValue{Key: "V", Value: b.Value.PDF()})
	}
	if b.DefaultValue != nil {
		res = append(res, acroform.KeyValue{Key: "DV", Value: b.DefaultValue.PDF()})
	}
	if b.Flags != 0 {
		res = append(res, acroform.KeyValue{Key: "Ff", Value: fmt.Sprint(uint32(b.Flags))})
	}
	res = append(res, acroform.KeyValue{Key: "DA", Value: acroform.TextString(b.DA).PDF()})
	return res
}

func appendAP(res []acroform.KeyValue, d *appearance.Dict, ref appearance.RefFunc) ([]acroform.KeyValue, error) {
	if d == nil {
		return res, nil
	}
	ap, err := d.Format(ref)
	if err != nil {
		return nil, err
	}
	return append(res, acroform.KeyValue{Key: "AP", Value: ap}), nil
}

// defaultAppearance computes a default appearance string.  If res is not
// nil, the font is looked up and registered as a form font, and the resource
// name of the font is used.  Otherwise the family name is used directly.
func defaultAppearance(res appearance.Resolver, family string, size, gray float64) (string, error) {
	name := acroform.Name(family)
	if res != nil {
		font, err := res.LookupFont(family)
		if err != nil {
			return "", err
		}
		res.RegisterFormFont(font.FontID())
		name = font.ResourceName()
	}
	return fmt.Sprintf("%s %.2f Tf %.2f g", name.PDF(), size, gray), nil
}
