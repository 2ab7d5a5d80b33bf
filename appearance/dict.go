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
	"slices"
	"strings"

	"seehuhn.de/go/acroform"
)

// Dict represents an annotation appearance dictionary.
type Dict struct {
	// Normal is the annotation's normal appearance.
	Normal Entry

	// RollOver is the annotation's rollover appearance.
	//
	// A zero value is a shorthand for the same value as Normal, and the
	// entry is omitted from the dictionary.
	RollOver Entry
}

// Entry is one entry of an appearance dictionary.  Either Stream is set, or
// States maps the appearance states of the annotation (for check boxes
// "Off" and "Yes") to form XObjects.
type Entry struct {
	Stream *FormXObject
	States map[acroform.Name]*FormXObject
}

// IsZero reports whether the entry is unset.
func (e Entry) IsZero() bool {
	return e.Stream == nil && len(e.States) == 0
}

// RefFunc returns the reference of a form XObject.
// References are allocated by the PDF writer.
type RefFunc func(obj *FormXObject) (acroform.Reference, error)

// Format returns the dictionary in PDF syntax, using ref to refer to the
// form XObjects.
func (d *Dict) Format(ref RefFunc) (string, error) {
	var parts []string

	n, err := d.Normal.format(ref)
	if err != nil {
		return "", err
	}
	parts = append(parts, "/N "+n)

	if !d.RollOver.IsZero() {
		r, err := d.RollOver.format(ref)
		if err != nil {
			return "", err
		}
		parts = append(parts, "/R "+r)
	}

	return "<<" + strings.Join(parts, " ") + ">>", nil
}

func (e Entry) format(ref RefFunc) (string, error) {
	if e.Stream != nil {
		r, err := ref(e.Stream)
		if err != nil {
			return "", err
		}
		return r.PDF(), nil
	}

	var parts []string
	for _, state := range e.stateNames() {
		r, err := ref(e.States[state])
		if err != nil {
			return "", err
		}
		parts = append(parts, state.PDF()+" "+r.PDF())
	}
	return "<<" + strings.Join(parts, " ") + ">>", nil
}

func (e Entry) stateNames() []acroform.Name {
	names := make([]acroform.Name, 0, len(e.States))
	for name := range e.States {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Objects returns all form XObjects referenced by the dictionary.
// Every object is listed once, even if it is used for several states.
func (d *Dict) Objects() []*FormXObject {
	var res []*FormXObject
	seen := make(map[*FormXObject]bool)
	add := func(obj *FormXObject) {
		if obj == nil || seen[obj] {
			return
		}
		seen[obj] = true
		res = append(res, obj)
	}
	for _, e := range []Entry{d.Normal, d.RollOver} {
		add(e.Stream)
		for _, state := range e.stateNames() {
			add(e.States[state])
		}
	}
	return res
}
