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
	"strconv"

	"seehuhn.de/go/acroform"
)

// testFont encodes text as the UTF-8 bytes.
type testFont struct {
	id int
}

func (f *testFont) FontID() int {
	return f.id
}

func (f *testFont) ResourceName() acroform.Name {
	return acroform.Name("F" + strconv.Itoa(f.id))
}

func (f *testFont) Encode(text string) (acroform.String, error) {
	return acroform.String(text), nil
}

// testResolver records all calls made by the rendering code.
type testResolver struct {
	fonts     map[string]*testFont
	formFonts []int
	xobjects  []*FormXObject
	measured  []string
}

func newTestResolver(families ...string) *testResolver {
	r := &testResolver{
		fonts: make(map[string]*testFont),
	}
	for i, family := range families {
		r.fonts[family] = &testFont{id: i + 1}
	}
	return r
}

func (r *testResolver) LookupFont(family string) (Font, error) {
	f, ok := r.fonts[family]
	if !ok {
		return nil, &acroform.UnknownFontError{Family: family}
	}
	return f, nil
}

func (r *testResolver) RegisterFormFont(id int) {
	r.formFonts = append(r.formFonts, id)
}

func (r *testResolver) RegisterFormXObjectResources(obj *FormXObject) {
	r.xobjects = append(r.xobjects, obj)
}

func (r *testResolver) MeasureText(f Font, text string, size float64) float64 {
	r.measured = append(r.measured, text)
	return float64(len(text)) * size / 2
}
