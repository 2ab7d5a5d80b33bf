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
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/acroform"
)

func TestCheckboxAliases(t *testing.T) {
	res := newTestResolver("ZapfDingbats")
	box := NewBox(&RGB{1, 1, 1}, &RGB{0, 0, 0})
	cb := &Checkbox{
		Off: box,
		On:  NewComposite(box, NewText("4", "ZapfDingbats", 8)),
	}

	states, err := cb.Render(res, 10)
	if err != nil {
		t.Fatal(err)
	}
	if states.RollOverOff != states.Off {
		t.Error("rollover off is not the off object")
	}
	if states.RollOverOn != states.On {
		t.Error("rollover on is not the on object")
	}
	if states.Off == states.On {
		t.Error("off and on share an object")
	}
	if states.HasRollOver() {
		t.Error("HasRollOver reports true for aliased states")
	}

	// only two form XObjects are rendered and registered
	if len(res.xobjects) != 2 {
		t.Errorf("%d form XObjects registered, want 2", len(res.xobjects))
	}
	if d := cmp.Diff([]int{1}, states.On.FontIDs.IDs()); d != "" {
		t.Errorf("unexpected fonts (-want +got):\n%s", d)
	}
	if states.Off.FontIDs != nil {
		t.Errorf("off state uses fonts %v", states.Off.FontIDs.IDs())
	}
}

func TestCheckboxRollOver(t *testing.T) {
	res := newTestResolver("ZapfDingbats")
	box := NewBox(&RGB{1, 1, 1}, &RGB{0, 0, 0})
	hover := NewComposite(box, NewText("m", "ZapfDingbats", 8))
	cb := &Checkbox{
		Off:        box,
		On:         NewComposite(box, NewText("4", "ZapfDingbats", 8)),
		RollOverOn: hover,
	}

	states, err := cb.Render(res, 12)
	if err != nil {
		t.Fatal(err)
	}
	if states.RollOverOff != states.Off {
		t.Error("rollover off is not the off object")
	}
	if states.RollOverOn == states.On {
		t.Error("rollover on was not rendered separately")
	}
	if !states.HasRollOver() {
		t.Error("HasRollOver reports false")
	}
	if len(res.xobjects) != 3 {
		t.Errorf("%d form XObjects registered, want 3", len(res.xobjects))
	}

	for _, obj := range []*FormXObject{states.Off, states.On, states.RollOverOn} {
		if obj.BBox.URx != 12 || obj.BBox.URy != 12 {
			t.Errorf("wrong bounding box %v", obj.BBox)
		}
	}
}

func TestCheckboxMissingState(t *testing.T) {
	cb := &Checkbox{On: NewBox(nil, nil)}
	_, err := cb.Render(nil, 10)
	if !errors.Is(err, acroform.ErrMissingAppearance) {
		t.Errorf("expected ErrMissingAppearance, got %v", err)
	}
}

func TestCheckboxDefaultText(t *testing.T) {
	box := NewBox(nil, nil)
	onText := NewText("4", "ZapfDingbats", 8)
	offText := NewText("8", "ZapfDingbats", 9)

	cases := []struct {
		cb   *Checkbox
		want *Text
	}{
		{&Checkbox{Off: box, On: NewComposite(box, onText)}, onText},
		{&Checkbox{Off: offText, On: onText}, onText},
		{&Checkbox{Off: offText, On: box}, offText},
		{&Checkbox{Off: box, On: box}, nil},
	}
	for i, c := range cases {
		if got := c.cb.DefaultText(); got != c.want {
			t.Errorf("%d: got %v, want %v", i, got, c.want)
		}
	}
}

func TestDictFormat(t *testing.T) {
	off := &FormXObject{}
	on := &FormXObject{}
	hover := &FormXObject{}
	refs := map[*FormXObject]acroform.Reference{
		off:   acroform.NewReference(5, 0),
		on:    acroform.NewReference(6, 0),
		hover: acroform.NewReference(7, 0),
	}
	ref := func(obj *FormXObject) (acroform.Reference, error) {
		r, ok := refs[obj]
		if !ok {
			return 0, fmt.Errorf("no reference for %p", obj)
		}
		return r, nil
	}

	cases := []struct {
		dict *Dict
		want string
	}{
		{
			dict: &Dict{Normal: Entry{Stream: off}},
			want: "<</N 5 0 R>>",
		},
		{
			dict: &Dict{Normal: Entry{States: map[acroform.Name]*FormXObject{
				"Yes": on,
				"Off": off,
			}}},
			want: "<</N <</Off 5 0 R /Yes 6 0 R>>>>",
		},
		{
			dict: &Dict{
				Normal: Entry{States: map[acroform.Name]*FormXObject{
					"Off": off, "Yes": on,
				}},
				RollOver: Entry{States: map[acroform.Name]*FormXObject{
					"Off": off, "Yes": hover,
				}},
			},
			want: "<</N <</Off 5 0 R /Yes 6 0 R>> /R <</Off 5 0 R /Yes 7 0 R>>>>",
		},
	}
	for i, c := range cases {
		got, err := c.dict.Format(ref)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("%d: got %q, want %q", i, got, c.want)
		}
	}

	_, err := (&Dict{Normal: Entry{Stream: &FormXObject{}}}).Format(ref)
	if err == nil {
		t.Error("missing reference was not reported")
	}
}

func TestDictObjects(t *testing.T) {
	off := &FormXObject{}
	on := &FormXObject{}
	d := &Dict{
		Normal: Entry{States: map[acroform.Name]*FormXObject{
			"Off": off, "Yes": on,
		}},
		RollOver: Entry{States: map[acroform.Name]*FormXObject{
			"Off": off, "Yes": on,
		}},
	}
	got := d.Objects()
	if len(got) != 2 || got[0] != off || got[1] != on {
		t.Errorf("unexpected objects %v", got)
	}
}
