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

// This file implements the DeviceRGB and DeviceGray color operators.
// The operators are defined in table 73 of ISO 32000-2:2020.
// Color components outside the range [0, 1] are clamped.

// SetFillRGB sets the color used for non-stroking operations
// to the given DeviceRGB color.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if !w.isValid("SetFillRGB", objPage|objText) {
		return
	}
	w.emit(component(clamp(r)), component(clamp(g)), component(clamp(b)), "rg")
}

// SetStrokeRGB sets the color used for stroking operations
// to the given DeviceRGB color.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if !w.isValid("SetStrokeRGB", objPage|objText) {
		return
	}
	w.emit(component(clamp(r)), component(clamp(g)), component(clamp(b)), "RG")
}

// SetFillGray sets the color used for non-stroking operations
// to the given DeviceGray level.
//
// This implements the PDF graphics operator "g".
func (w *Writer) SetFillGray(gray float64) {
	if !w.isValid("SetFillGray", objPage|objText) {
		return
	}
	w.emit(level(clamp(gray)), "g")
}

// clamp maps a color component into the range [0, 1].  NaN is mapped to 0.
func clamp(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x >= 0:
		return x
	default:
		return 0
	}
}
