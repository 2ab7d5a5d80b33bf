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

// Package acroform holds the value types shared by the packages which
// generate appearance streams for interactive PDF form fields.
//
// The drawing recipes for widgets live in the [seehuhn.de/go/acroform/appearance]
// package, the field types (text fields and check boxes) live in
// [seehuhn.de/go/acroform/field].  Both packages depend on an external
// resource resolver which looks up fonts and records which resources are
// used; [seehuhn.de/go/acroform/catalog] provides an implementation.
//
// The document object model, object numbering, stream compression and
// encryption are not handled here.  The output of this module (content
// stream bytes, default appearance strings and appearance dictionaries) is
// meant to be handed to a PDF writer.
package acroform
