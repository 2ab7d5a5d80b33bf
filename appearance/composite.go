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

import "seehuhn.de/go/acroform"

// Composite draws a list of appearances on top of each other.
// Later parts are drawn over earlier ones.  A nil part, including a nil
// *Box, *Text or *Composite, makes Build fail with
// [acroform.ErrMissingAppearance].
type Composite struct {
	Parts []Appearance
}

var _ Appearance = (*Composite)(nil)

// NewComposite returns a composite appearance with the given parts.
func NewComposite(parts ...Appearance) *Composite {
	return &Composite{Parts: parts}
}

// Build implements the [Appearance] interface.
//
// The operators of the parts are concatenated in order, and the font sets
// are merged.
func (c *Composite) Build(res Resolver, width, height float64) ([]string, FontSet, error) {
	if c == nil {
		return nil, nil, acroform.ErrMissingAppearance
	}

	var ops []string
	fonts := FontSet{}
	for _, part := range c.Parts {
		if part == nil {
			return nil, nil, acroform.ErrMissingAppearance
		}
		partOps, partFonts, err := part.Build(res, width, height)
		if err != nil {
			return nil, nil, err
		}
		ops = append(ops, partOps...)
		fonts.AddAll(partFonts)
	}
	return ops, fonts, nil
}

// DefaultText implements the [Appearance] interface.
//
// The parts are searched in order, and the first text appearance found is
// returned.
func (c *Composite) DefaultText() *Text {
	if c == nil {
		return nil
	}
	for _, part := range c.Parts {
		if part == nil {
			continue
		}
		if t := part.DefaultText(); t != nil {
			return t
		}
	}
	return nil
}

func (c *Composite) isAppearance() {}
