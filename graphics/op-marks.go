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

// MarkedContentStart begins a marked-content sequence without a property
// list.  The sequence is terminated by a call to [Writer.MarkedContentEnd].
//
// This implements the PDF graphics operator "BMC".
func (w *Writer) MarkedContentStart(tag acroform.Name) {
	if !w.isValid("MarkedContentStart", objPage|objText) {
		return
	}
	if tag == "" {
		w.Err = errors.New("MarkedContentStart: empty tag")
		return
	}

	w.nesting = append(w.nesting, pairTypeBMC)

	w.emit(tag.PDF(), "BMC")
}

// MarkedContentEnd ends a marked-content sequence.
// This must be matched with a preceding call to [Writer.MarkedContentStart].
//
// This implements the PDF graphics operator "EMC".
func (w *Writer) MarkedContentEnd() {
	if !w.isValid("MarkedContentEnd", objPage|objText) {
		return
	}
	if !w.endPair("MarkedContentEnd", pairTypeBMC) {
		return
	}

	w.emit("EMC")
}
