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

package field

import (
	"strconv"
	"strings"
)

// Flags is the value of the /Ff entry of a field dictionary.
//
// See tables 227, 229 and 231 of ISO 32000-2:2020.
type Flags uint32

// Flags common to all field types.
const (
	// FlagReadOnly prevents the user from changing the value of the field.
	FlagReadOnly Flags = 1 << 0

	// FlagRequired requires the field to have a value when the form is
	// submitted.
	FlagRequired Flags = 1 << 1

	// FlagNoExport excludes the field from form submission.
	FlagNoExport Flags = 1 << 2
)

// Flags for button fields.
const (
	// FlagNoToggleToOff (radio buttons only) keeps exactly one button
	// selected at all times.
	FlagNoToggleToOff Flags = 1 << 14

	// FlagRadio marks the field as a set of radio buttons.
	FlagRadio Flags = 1 << 15

	// FlagPushbutton marks the field as a push button.
	FlagPushbutton Flags = 1 << 16

	// FlagRadiosInUnison (PDF 1.5) turns radio buttons with the same value
	// on and off together.
	FlagRadiosInUnison Flags = 1 << 25
)

// Flags for text fields.
const (
	// FlagMultiline allows several lines of text.
	FlagMultiline Flags = 1 << 12

	// FlagPassword hides the value of the field while it is typed.
	FlagPassword Flags = 1 << 13

	// FlagFileSelect (PDF 1.4) uses the value as a file name.
	FlagFileSelect Flags = 1 << 20

	// FlagDoNotSpellCheck (PDF 1.4) disables spell checking.
	FlagDoNotSpellCheck Flags = 1 << 22

	// FlagDoNotScroll (PDF 1.4) limits the text to the visible area.
	FlagDoNotScroll Flags = 1 << 23

	// FlagComb (PDF 1.5) divides the field into MaxLen equally spaced
	// positions.
	FlagComb Flags = 1 << 24

	// FlagRichText (PDF 1.5) marks the value as rich text.
	FlagRichText Flags = 1 << 25
)

// TextFlags combines the flags of a text field.
func TextFlags(multiline, password, readOnly, required bool) Flags {
	var f Flags
	if multiline {
		f |= FlagMultiline
	}
	if password {
		f |= FlagPassword
	}
	if readOnly {
		f |= FlagReadOnly
	}
	if required {
		f |= FlagRequired
	}
	return f
}

// ButtonFlags combines the flags of a check box.
func ButtonFlags(readOnly, required bool) Flags {
	var f Flags
	if readOnly {
		f |= FlagReadOnly
	}
	if required {
		f |= FlagRequired
	}
	return f
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagReadOnly, "ReadOnly"},
	{FlagRequired, "Required"},
	{FlagNoExport, "NoExport"},
	{FlagMultiline, "Multiline"},
	{FlagPassword, "Password"},
	{FlagNoToggleToOff, "NoToggleToOff"},
	{FlagRadio, "Radio"},
	{FlagPushbutton, "Pushbutton"},
	{FlagFileSelect, "FileSelect"},
	{FlagDoNotSpellCheck, "DoNotSpellCheck"},
	{FlagDoNotScroll, "DoNotScroll"},
	{FlagComb, "Comb"},
	{FlagRichText, "RichText|RadiosInUnison"},
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}
