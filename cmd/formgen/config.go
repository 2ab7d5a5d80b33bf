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

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/acroform/appearance"
)

// Form is the contents of a form description file.
type Form struct {
	Fonts  []FontConfig  `yaml:"fonts" validate:"dive"`
	Fields []FieldConfig `yaml:"fields" validate:"required,min=1,unique=Name,dive"`
}

// FontConfig makes a TrueType font available under a family name.
// Relative file names are interpreted relative to the form description.
type FontConfig struct {
	Family string `yaml:"family" validate:"required,pdf_name"`
	File   string `yaml:"file" validate:"required"`
}

// FieldConfig describes one form field.
type FieldConfig struct {
	Type string `yaml:"type" validate:"required,oneof=text checkbox"`
	Name string `yaml:"name" validate:"required"`

	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width and Height are used for text fields, Size for check boxes.
	Width  float64 `yaml:"width" validate:"required_if=Type text,gte=0"`
	Height float64 `yaml:"height" validate:"required_if=Type text,gte=0"`
	Size   float64 `yaml:"size" validate:"gte=0"`

	Value   string `yaml:"value"`
	Checked bool   `yaml:"checked"`

	Font      string  `yaml:"font" validate:"omitempty,pdf_name"`
	FontSize  float64 `yaml:"font_size" validate:"gte=0"`
	TextGray  float64 `yaml:"text_gray" validate:"gte=0,lte=1"`
	MaxLength int     `yaml:"max_length" validate:"gte=0"`

	Background  Color   `yaml:"background" validate:"omitempty,len=3,dive,gte=0,lte=1"`
	Border      Color   `yaml:"border" validate:"omitempty,len=3,dive,gte=0,lte=1"`
	BorderWidth float64 `yaml:"border_width" validate:"gte=0"`

	// NoBackground and NoBorder switch off the parts of the default check
	// box appearance.
	NoBackground bool `yaml:"no_background"`
	NoBorder     bool `yaml:"no_border"`

	Multiline bool `yaml:"multiline"`
	Password  bool `yaml:"password"`
	ReadOnly  bool `yaml:"read_only"`
	Required  bool `yaml:"required"`

	Appearance *CheckboxConfig `yaml:"appearance" validate:"omitempty"`
}

// Color is an RGB color with components in the range [0, 1].
type Color []float64

// RGB converts the color for use in an appearance.  A missing color is
// returned as nil.
func (c Color) RGB() *appearance.RGB {
	if len(c) != 3 {
		return nil
	}
	return &appearance.RGB{R: c[0], G: c[1], B: c[2]}
}

// CheckboxConfig is a custom check box appearance.  Each state is drawn
// by a list of parts, which are painted in order.
type CheckboxConfig struct {
	Off         []PartConfig `yaml:"off" validate:"required,min=1,dive"`
	On          []PartConfig `yaml:"on" validate:"required,min=1,dive"`
	RollOverOff []PartConfig `yaml:"rollover_off" validate:"dive"`
	RollOverOn  []PartConfig `yaml:"rollover_on" validate:"dive"`
}

// PartConfig is one part of a custom appearance.  Exactly one of Box and
// Text must be set.
type PartConfig struct {
	Box  *BoxConfig  `yaml:"box" validate:"omitempty"`
	Text *TextConfig `yaml:"text" validate:"omitempty"`
}

// BoxConfig describes a filled and/or stroked rectangle.
type BoxConfig struct {
	Background  Color   `yaml:"background" validate:"omitempty,len=3,dive,gte=0,lte=1"`
	Border      Color   `yaml:"border" validate:"omitempty,len=3,dive,gte=0,lte=1"`
	BorderWidth float64 `yaml:"border_width" validate:"gte=0"`
}

// TextConfig describes a text run.
type TextConfig struct {
	Text    string   `yaml:"text" validate:"required"`
	Font    string   `yaml:"font" validate:"required,pdf_name"`
	Size    float64  `yaml:"size" validate:"gt=0"`
	Gray    float64  `yaml:"gray" validate:"gte=0,lte=1"`
	X       *float64 `yaml:"x"`
	Y       *float64 `yaml:"y"`
	XOffset float64  `yaml:"x_offset"`
	YOffset float64  `yaml:"y_offset"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for form descriptions.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Font family names are written as PDF names when no resolver is
		// used, and must not contain white space.
		_ = v.RegisterValidation("pdf_name", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s != "" && !strings.ContainsAny(s, " \t\r\n\f\x00")
		})

		v.RegisterStructValidation(func(sl validator.StructLevel) {
			p := sl.Current().Interface().(PartConfig)
			if (p.Box == nil) == (p.Text == nil) {
				sl.ReportError(p.Box, "box", "Box", "box_or_text", "")
			}
		}, PartConfig{})

		validateInst = v
	})
	return validateInst
}

// LoadForm reads and validates a form description.
func LoadForm(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseForm(data)
}

// ParseForm decodes and validates a form description.
func ParseForm(data []byte) (*Form, error) {
	var form Form
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if err := validatorInstance().Struct(&form); err != nil {
		return nil, describeValidation(err)
	}
	return &form, nil
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid form: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Namespace() + ": failed " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid form: %s", strings.Join(msgs, "; "))
}
