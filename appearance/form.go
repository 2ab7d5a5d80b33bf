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
	"strings"

	"golang.org/x/text/encoding/charmap"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/internal/float"
)

// FormXObject is a rendered appearance: the content stream and bounding
// box of a form XObject, together with the fonts it uses.
//
// A FormXObject is not modified after it has been returned by [Render] or
// [Checkbox.Render].  The same FormXObject can be used for several
// appearance states.
//
// See section 8.10 of ISO 32000-2:2020 for details.
type FormXObject struct {
	// BBox is the bounding box of the form, in form space.  The lower left
	// corner is always at the origin.
	BBox rect.Rect

	// Content is the content stream, encoded as Latin-1.
	Content []byte

	// Resources, if not empty, is the resource dictionary of the form, in
	// PDF syntax.
	Resources string

	// FontIDs lists the fonts used by the content stream.
	// This is nil if no fonts are used.
	FontIDs FontSet
}

// NewFormXObject creates a form XObject from a list of content stream
// operators.  The operators are joined using newlines.  The width and
// height are rounded to two decimal places.
func NewFormXObject(ops []string, width, height float64, resources string) (*FormXObject, error) {
	content := strings.Join(ops, "\n")
	data, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, &acroform.EncodingError{
			Text:     content,
			Encoding: "Latin-1",
			Err:      err,
		}
	}

	obj := &FormXObject{
		BBox: rect.Rect{
			URx: float.Round(width, 2),
			URy: float.Round(height, 2),
		},
		Content:   data,
		Resources: resources,
	}
	return obj, nil
}

// SetFontIDs records the fonts used by the content stream.
// An empty set is stored as nil.
func (obj *FormXObject) SetFontIDs(ids FontSet) {
	if len(ids) == 0 {
		obj.FontIDs = nil
		return
	}
	obj.FontIDs = make(FontSet, len(ids))
	obj.FontIDs.AddAll(ids)
}

// Entries returns the entries of the stream dictionary, except for the
// stream length and filters, which are set by the PDF writer.
func (obj *FormXObject) Entries() []acroform.KeyValue {
	bbox := "[" + strings.Join([]string{
		float.Format(obj.BBox.LLx, 2),
		float.Format(obj.BBox.LLy, 2),
		float.Format(obj.BBox.URx, 2),
		float.Format(obj.BBox.URy, 2),
	}, " ") + "]"

	res := []acroform.KeyValue{
		{Key: "Type", Value: acroform.Name("XObject").PDF()},
		{Key: "Subtype", Value: acroform.Name("Form").PDF()},
		{Key: "BBox", Value: bbox},
		{Key: "FormType", Value: "1"},
	}
	if obj.Resources != "" {
		res = append(res, acroform.KeyValue{Key: "Resources", Value: obj.Resources})
	}
	return res
}
