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

package graphics

import (
	"errors"

	"seehuhn.de/go/acroform"
)

// This file implements the text operators used in appearance streams.  The
// operators are defined in tables 103, 105, 106 and 107 of ISO
// 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.emit("BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	if !w.endPair("TextEnd", pairTypeBT) {
		return
	}
	w.currentObject = objPage

	w.emit("ET")
}

// TextSetFont sets the font and font size.  The font is identified by its
// name in the font sub-dictionary of the resource dictionary.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name acroform.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if name == "" {
		w.Err = errors.New("TextSetFont: empty font name")
		return
	}

	w.fontSet = true

	w.emit(name.PDF(), level(size), "Tf")
}

// TextFirstLine moves to the start of the next line, offset from the start
// of the current line by (dx, dy).
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.emit(coord(dx), coord(dy), "Td")
}

// TextShowLiteral shows the given text as a literal string.
// The text is escaped, but otherwise used without encoding.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowLiteral(text string) {
	if !w.isValid("TextShowLiteral", objText) {
		return
	}
	if !w.fontSet {
		w.Err = errors.New("TextShowLiteral: no font set")
		return
	}

	w.emit("("+acroform.EscapeString(text)+")", "Tj")
}

// TextShowRaw shows an already encoded text.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s acroform.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}
	if !w.fontSet {
		w.Err = errors.New("TextShowRaw: no font set")
		return
	}

	w.emit(s.PDF(), "Tj")
}
