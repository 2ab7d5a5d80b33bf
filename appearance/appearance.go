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
	"slices"

	"seehuhn.de/go/acroform"
)

// Appearance is a drawing recipe for a widget.
//
// The implementations in this package are [*Box], [*Text] and
// [*Composite].  Other implementations are not possible.
type Appearance interface {
	// Build returns the content stream operators which draw the
	// appearance into a box of the given size, together with the ids of
	// all fonts used.
	//
	// If res is not nil, fonts are looked up and registered using res.
	Build(res Resolver, width, height float64) ([]string, FontSet, error)

	// DefaultText returns the text appearance which determines the font,
	// font size and color of the default appearance string.  If the
	// appearance contains no text, nil is returned.
	DefaultText() *Text

	isAppearance()
}

// Resolver provides fonts and keeps track of the resources used by
// appearance streams.
//
// Rendering calls the methods of a Resolver from a single goroutine.
// Implementations which are shared between goroutines must synchronize
// access themselves.
type Resolver interface {
	// LookupFont returns the font for the given family name.  If the family
	// is not known, an error is returned; the error should wrap an
	// [*acroform.UnknownFontError].
	LookupFont(family string) (Font, error)

	// RegisterFormFont marks the font as used by a form field, so that it
	// is included in the resource dictionary of the interactive form.
	// Registering the same id more than once has no effect.
	RegisterFormFont(id int)

	// RegisterFormXObjectResources records the fonts used by the form
	// XObject, so that they can be added to the document's resources.
	RegisterFormXObjectResources(obj *FormXObject)

	// MeasureText returns the width of the text, in PDF units, when set in
	// the given font and size.  The call makes sure that the font's width
	// information for all characters of the text is available later.
	MeasureText(f Font, text string, size float64) float64
}

// Font is a font obtained from a [Resolver].
type Font interface {
	// FontID returns the id of the font within the resolver.
	FontID() int

	// ResourceName returns the name used to refer to the font from content
	// streams.
	ResourceName() acroform.Name

	// Encode converts text to the character codes of the font.
	Encode(text string) (acroform.String, error)
}

// FontSet is a set of font ids.
type FontSet map[int]struct{}

// Add adds a font id to the set.
func (s FontSet) Add(id int) {
	s[id] = struct{}{}
}

// AddAll adds all elements of other to the set.
func (s FontSet) AddAll(other FontSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Has reports whether the set contains the given font id.
func (s FontSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the elements of the set in increasing order.
func (s FontSet) IDs() []int {
	res := make([]int, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// Render draws the appearance into a new form XObject of the given size.
//
// If res is not nil, the fonts of the appearance are registered with res,
// and the new form XObject is passed to [Resolver.RegisterFormXObjectResources].
func Render(a Appearance, res Resolver, width, height float64) (*FormXObject, error) {
	if a == nil {
		return nil, acroform.ErrMissingAppearance
	}

	ops, fonts, err := a.Build(res, width, height)
	if err != nil {
		return nil, err
	}

	obj, err := NewFormXObject(ops, width, height, "")
	if err != nil {
		return nil, err
	}
	obj.SetFontIDs(fonts)

	if res != nil {
		res.RegisterFormXObjectResources(obj)
	}
	return obj, nil
}
