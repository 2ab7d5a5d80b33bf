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

// Package graphics records sequences of PDF content stream operators.
//
// A [Writer] has one method per supported operator.  The writer checks that
// operators are only used where the PDF specification allows them (for
// example, "Tj" only inside a text object) and that "q"/"Q", "BT"/"ET" and
// "BMC"/"EMC" are properly paired.  The first error is kept in [Writer.Err]
// and all later operators are ignored.
//
// Numbers are written with a fixed number of decimal places: three for
// color components, two for coordinates, line widths, font sizes and gray
// levels.
package graphics
