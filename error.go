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

package acroform

import (
	"errors"
	"strconv"
)

// ErrMissingAppearance is returned when a nil appearance is passed to a
// function which needs to render it.
var ErrMissingAppearance = errors.New("missing appearance")

// UnknownFontError is returned by a resource resolver when no font is
// available for the requested family name.  No replacement font is
// substituted.
type UnknownFontError struct {
	Family string
}

func (err *UnknownFontError) Error() string {
	return "unknown font family " + strconv.Quote(err.Family)
}

// EncodingError indicates that text cannot be represented in the encoding
// required by a content stream or by a font.
type EncodingError struct {
	Text     string
	Encoding string
	Err      error
}

func (err *EncodingError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "cannot encode " + strconv.Quote(err.Text) + " as " + err.Encoding + middle
}

func (err *EncodingError) Unwrap() error {
	return err.Err
}
