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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validForm = `
fonts:
  - family: Mono
    file: mono.ttf
fields:
  - type: text
    name: comments
    x: 10
    y: 20
    width: 100
    height: 30
    value: line1
    multiline: true
    border: [0, 0, 0]
  - type: checkbox
    name: agree
    checked: true
    appearance:
      off:
        - box: {border: [0, 0, 1]}
      on:
        - box: {border: [0, 0, 1]}
        - text: {text: X, font: Mono, size: 10, y_offset: 1}
`

func TestParseForm_Valid(t *testing.T) {
	form, err := ParseForm([]byte(validForm))
	require.NoError(t, err)

	require.Len(t, form.Fonts, 1)
	assert.Equal(t, "Mono", form.Fonts[0].Family)

	require.Len(t, form.Fields, 2)
	text := form.Fields[0]
	assert.Equal(t, "text", text.Type)
	assert.True(t, text.Multiline)
	assert.Equal(t, Color{0, 0, 0}, text.Border)
	assert.Nil(t, text.Background.RGB())

	cb := form.Fields[1]
	require.NotNil(t, cb.Appearance)
	require.Len(t, cb.Appearance.On, 2)
	require.NotNil(t, cb.Appearance.On[1].Text)
	assert.Equal(t, 1.0, cb.Appearance.On[1].Text.YOffset)
	assert.Nil(t, cb.Appearance.RollOverOn)
}

func TestParseForm_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "no fields",
			yaml: "fields: []",
			want: "min",
		},
		{
			name: "unknown type",
			yaml: "fields: [{type: radio, name: a}]",
			want: "oneof",
		},
		{
			name: "text without size",
			yaml: "fields: [{type: text, name: a, width: 10}]",
			want: "required_if",
		},
		{
			name: "duplicate names",
			yaml: "fields: [{type: checkbox, name: a}, {type: checkbox, name: a}]",
			want: "unique",
		},
		{
			name: "bad color",
			yaml: "fields: [{type: checkbox, name: a, border: [0, 2, 0]}]",
			want: "lte",
		},
		{
			name: "short color",
			yaml: "fields: [{type: checkbox, name: a, border: [0, 0]}]",
			want: "len",
		},
		{
			name: "font name with space",
			yaml: "fields: [{type: text, name: a, width: 1, height: 1, font: Times New Roman}]",
			want: "pdf_name",
		},
		{
			name: "part with box and text",
			yaml: `
fields:
  - type: checkbox
    name: a
    appearance:
      off: [{box: {}}]
      on: [{box: {}, text: {text: X, font: F, size: 1}}]
`,
			want: "box_or_text",
		},
		{
			name: "missing on state",
			yaml: "fields: [{type: checkbox, name: a, appearance: {off: [{box: {}}]}}]",
			want: "required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseForm([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid form")
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseForm_BadYAML(t *testing.T) {
	_, err := ParseForm([]byte("fields: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode form")
}
