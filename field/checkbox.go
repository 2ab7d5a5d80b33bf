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

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
)

// The appearance states of a check box.
const (
	StateOff acroform.Name = "Off"
	StateOn  acroform.Name = "Yes"
)

// The glyph used to draw the check mark in the default appearance.
// In the ZapfDingbats font, the character "4" is a check mark.
const (
	CheckFont = "ZapfDingbats"
	CheckChar = "4"
)

// checkScale is the size of the check mark relative to the check box.
const checkScale = 0.8

// CheckboxOptions holds the settings of a check box.
type CheckboxOptions struct {
	// Size is the width and height of the widget.  The default is 12.
	Size float64

	Checked bool

	// Background and Border are used by the default appearance.
	// If a color is nil, white is used for the background and black for
	// the border.
	Background *appearance.RGB
	Border     *appearance.RGB

	// NoBackground and NoBorder omit the corresponding part of the default
	// appearance.
	NoBackground bool
	NoBorder     bool

	// CheckColorGray is the DeviceGray level of the check mark.
	CheckColorGray float64

	// BorderWidth is the width of the border.  The default is 1.
	BorderWidth float64

	ReadOnly bool
	Required bool

	// Appearance, if not nil, replaces the default appearance, which
	// draws a box and a check mark.
	Appearance *appearance.Checkbox

	// Resolver is used to look up and register fonts.  If this is nil, font
	// family names are used directly as font resource names.
	Resolver appearance.Resolver
}

// DefaultCheckboxOptions returns the settings used if [NewCheckbox] is
// called with nil options: a 12x12 box with white background and black
// border.
func DefaultCheckboxOptions() *CheckboxOptions {
	return &CheckboxOptions{
		Size:        12,
		Background:  &appearance.RGB{R: 1, G: 1, B: 1},
		Border:      &appearance.RGB{R: 0, G: 0, B: 0},
		BorderWidth: 1,
	}
}

// Checkbox is a two-state check box.
type Checkbox struct {
	Base

	Size    float64
	Checked bool

	// AS is the current appearance state of the widget.  It is set from
	// Checked when the check box is created.
	AS acroform.Name

	look   *appearance.Checkbox
	states *appearance.CheckboxStates
}

// NewCheckbox creates a new check box with the given name.  The lower left
// corner of the widget is at (x, y).
func NewCheckbox(name string, x, y float64, opt *CheckboxOptions) (*Checkbox, error) {
	if opt == nil {
		opt = DefaultCheckboxOptions()
	}

	size := opt.Size
	if size == 0 {
		size = 12
	}
	borderWidth := opt.BorderWidth
	if borderWidth == 0 {
		borderWidth = 1
	}

	state := StateOff
	if opt.Checked {
		state = StateOn
	}

	c := &Checkbox{
		Base: Base{
			Type:         TypeButton,
			Name:         name,
			X:            x,
			Y:            y,
			Width:        size,
			Height:       size,
			Value:        state,
			DefaultValue: state,
			Flags:        ButtonFlags(opt.ReadOnly, opt.Required),
			BorderWidth:  borderWidth,
			Resolver:     opt.Resolver,
		},
		Size:    size,
		Checked: opt.Checked,
		AS:      state,
		look:    opt.Appearance,
	}
	if c.look == nil {
		c.look = defaultCheckboxAppearance(opt, size, borderWidth)
	}

	text := c.look.DefaultText()
	if text == nil {
		text = &appearance.Text{
			Text: CheckChar,
			Font: CheckFont,
			Size: size * checkScale,
			Gray: opt.CheckColorGray,
		}
	}
	da, err := defaultAppearance(c.Resolver, text.Font, text.Size, text.Gray)
	if err != nil {
		return nil, fmt.Errorf("check box %q: %w", name, err)
	}
	c.DA = da

	return c, nil
}

func defaultCheckboxAppearance(opt *CheckboxOptions, size, borderWidth float64) *appearance.Checkbox {
	box := &appearance.Box{
		Background:  opt.Background,
		Border:      opt.Border,
		BorderWidth: borderWidth,
	}
	if box.Background == nil {
		box.Background = &appearance.RGB{R: 1, G: 1, B: 1}
	}
	if box.Border == nil {
		box.Border = &appearance.RGB{}
	}
	if opt.NoBackground {
		box.Background = nil
	}
	if opt.NoBorder {
		box.Border = nil
	}
	check := &appearance.Text{
		Text:    CheckChar,
		Font:    CheckFont,
		Size:    size * checkScale,
		Gray:    opt.CheckColorGray,
		YOffset: 1,
	}
	return &appearance.Checkbox{
		Off: box,
		On:  appearance.NewComposite(box, check),
	}
}

// Appearance returns the appearance specification of the check box.
func (c *Checkbox) Appearance() *appearance.Checkbox {
	return c.look
}

// GenerateAppearance renders all states of the check box.
// The options are ignored.
func (c *Checkbox) GenerateAppearance(_ *AppearanceOptions) error {
	states, err := c.look.Render(c.Resolver, c.Size)
	if err != nil {
		return fmt.Errorf("check box %q: %w", c.Name, err)
	}
	c.states = states
	return nil
}

// States returns the rendered appearances, or nil if the appearance has not
// been generated.
func (c *Checkbox) States() *appearance.CheckboxStates {
	return c.states
}

// AppearanceDict implements the [Field] interface.
//
// The normal appearance maps the states "Off" and "Yes" to the rendered
// form XObjects.  A rollover appearance is only included if at least one
// rollover state has its own form XObject.
func (c *Checkbox) AppearanceDict() *appearance.Dict {
	s := c.states
	if s == nil || s.Off == nil || s.On == nil {
		return nil
	}

	d := &appearance.Dict{
		Normal: appearance.Entry{States: map[acroform.Name]*appearance.FormXObject{
			StateOff: s.Off,
			StateOn:  s.On,
		}},
	}
	if s.RollOverOff != nil && s.RollOverOn != nil && s.HasRollOver() {
		d.RollOver = appearance.Entry{States: map[acroform.Name]*appearance.FormXObject{
			StateOff: s.RollOverOff,
			StateOn:  s.RollOverOn,
		}}
	}
	return d
}

// Entries implements the [Field] interface.
func (c *Checkbox) Entries(ref appearance.RefFunc) ([]acroform.KeyValue, error) {
	res := c.entries()
	res = append(res, acroform.KeyValue{Key: "AS", Value: c.AS.PDF()})
	return appendAP(res, c.AppearanceDict(), ref)
}
