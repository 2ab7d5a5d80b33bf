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

// Package appearance renders the visual appearance of form field widgets.
//
// An [Appearance] is a drawing recipe.  The package provides three kinds:
// [Box] paints a background and a border, [Text] places a single text run,
// and [Composite] layers other appearances on top of each other.  The
// function [Render] turns an appearance into a [FormXObject], which holds
// the content stream of a form XObject together with the ids of the fonts
// it uses.
//
// A [Checkbox] bundles the appearances for the states of a check box
// widget.  Rollover states which are not given reuse the rendered form
// XObject of the corresponding normal state.
//
// Fonts are obtained from a [Resolver].  If no resolver is given, text is
// written as a literal string and the font family name is used as the font
// resource name.
package appearance
