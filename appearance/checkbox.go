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

// Checkbox holds the appearances of the states of a check box widget.
type Checkbox struct {
	Off Appearance
	On  Appearance

	// RollOverOff and RollOverOn are shown while the pointer is over the
	// widget.  If they are nil, the normal appearance is used.
	RollOverOff Appearance
	RollOverOn  Appearance
}

// CheckboxStates holds the rendered appearances of a check box.
//
// If no rollover appearance was given, RollOverOff (or RollOverOn) is the
// same object as Off (or On).
type CheckboxStates struct {
	Off, On                 *FormXObject
	RollOverOff, RollOverOn *FormXObject
}

// Render draws all states of the check box into square form XObjects of the
// given size.
//
// The states are rendered in the order off, on, rollover off, rollover on,
// so that resources are registered with res in this order.
func (c *Checkbox) Render(res Resolver, size float64) (*CheckboxStates, error) {
	if c.Off == nil || c.On == nil {
		return nil, acroform.ErrMissingAppearance
	}

	off, err := Render(c.Off, res, size, size)
	if err != nil {
		return nil, err
	}
	on, err := Render(c.On, res, size, size)
	if err != nil {
		return nil, err
	}

	states := &CheckboxStates{
		Off:         off,
		On:          on,
		RollOverOff: off,
		RollOverOn:  on,
	}
	if c.RollOverOff != nil {
		states.RollOverOff, err = Render(c.RollOverOff, res, size, size)
		if err != nil {
			return nil, err
		}
	}
	if c.RollOverOn != nil {
		states.RollOverOn, err = Render(c.RollOverOn, res, size, size)
		if err != nil {
			return nil, err
		}
	}
	return states, nil
}

// HasRollOver reports whether at least one of the rollover states uses its
// own form XObject.
func (s *CheckboxStates) HasRollOver() bool {
	return s.RollOverOff != s.Off || s.RollOverOn != s.On
}

// DefaultText returns the text appearance used for the default appearance
// string of the check box.  The "on" appearance takes priority over the
// "off" appearance.
func (c *Checkbox) DefaultText() *Text {
	if c.On != nil {
		if t := c.On.DefaultText(); t != nil {
			return t
		}
	}
	if c.Off != nil {
		return c.Off.DefaultText()
	}
	return nil
}
