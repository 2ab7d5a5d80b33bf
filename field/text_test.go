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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
	"seehuhn.de/go/acroform/catalog"
)

// refCounter allocates object numbers in the order in which form XObjects
// are first referenced.
type refCounter struct {
	refs map[*appearance.FormXObject]acroform.Reference
	next uint32
}

func newRefCounter() *refCounter {
	return &refCounter{
		refs: make(map[*appearance.FormXObject]acroform.Reference),
		next: 1,
	}
}

func (c *refCounter) ref(obj *appearance.FormXObject) (acroform.Reference, error) {
	if ref, ok := c.refs[obj]; ok {
		return ref, nil
	}
	ref := acroform.NewReference(c.next, 0)
	c.next++
	c.refs[obj] = ref
	return ref, nil
}

func entryMap(kv []acroform.KeyValue) map[acroform.Name]string {
	res := make(map[acroform.Name]string, len(kv))
	for _, e := range kv {
		res[e.Key] = e.Value
	}
	return res
}

func TestTextFieldDefaults(t *testing.T) {
	f, err := NewTextField("name", 10, 20, 100, 30, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Font != DefaultTextFont || f.FontSize != 12 || f.BorderWidth != 1 {
		t.Errorf("wrong defaults: %q %g %g", f.Font, f.FontSize, f.BorderWidth)
	}
	if f.DA != "/Helvetica 12.00 Tf 0.00 g" {
		t.Errorf("wrong DA %q", f.DA)
	}
	if f.Value != nil || f.DefaultValue != nil {
		t.Error("empty field has a value")
	}
	want := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 50}
	if f.Rect() != want {
		t.Errorf("wrong rectangle %v", f.Rect())
	}
	if f.AppearanceDict() != nil {
		t.Error("appearance dictionary before GenerateAppearance")
	}
}

func TestTextFieldMultiline(t *testing.T) {
	opt := &TextFieldOptions{
		Value:     "line1",
		Multiline: true,
		Border:    &appearance.RGB{},
	}
	f, err := NewTextField("comments", 0, 0, 100, 30, opt)
	if err != nil {
		t.Fatal(err)
	}
	if f.Flags != FlagMultiline {
		t.Errorf("wrong flags %s", f.Flags)
	}

	err = f.GenerateAppearance(nil)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"/Tx BMC",
		"q",
		"0.000 0.000 0.000 RG",
		"1.00 w",
		"0.50 0.50 99.00 29.00 re",
		"S",
		"2.00 2.00 96.00 26.00 re",
		"W",
		"n",
		"BT",
		"/Helvetica 12.00 Tf",
		"0.00 g",
		"2.00 16.00 Td",
		"(line1) Tj",
		"ET",
		"Q",
		"EMC",
	}, "\n")
	if d := cmp.Diff(want, string(f.Normal().Content)); d != "" {
		t.Errorf("wrong content (-want +got):\n%s", d)
	}
	if f.Normal().BBox != (rect.Rect{URx: 100, URy: 30}) {
		t.Errorf("wrong bbox %v", f.Normal().BBox)
	}
}

func TestTextFieldSingleLine(t *testing.T) {
	opt := &TextFieldOptions{
		Value:      "a(b)",
		Background: &appearance.RGB{R: 1, G: 1, B: 1},
	}
	f, err := NewTextField("name", 0, 0, 100, 30, opt)
	if err != nil {
		t.Fatal(err)
	}
	err = f.GenerateAppearance(&AppearanceOptions{Font: "Courier", FontSize: 10})
	if err != nil {
		t.Fatal(err)
	}

	content := string(f.Normal().Content)
	for _, op := range []string{
		"1.000 1.000 1.000 rg\n0 0 100.00 30.00 re\nf",
		"/Courier 10.00 Tf",
		"2.00 12.00 Td",
		`(a\(b\)) Tj`,
	} {
		if !strings.Contains(content, op) {
			t.Errorf("missing %q in\n%s", op, content)
		}
	}
	if strings.Contains(content, " RG") {
		t.Error("border drawn without border color")
	}
	// The options only affect the appearance stream.
	if f.DA != "/Helvetica 12.00 Tf 0.00 g" {
		t.Errorf("wrong DA %q", f.DA)
	}
}

func TestTextFieldEmpty(t *testing.T) {
	f, err := NewTextField("name", 0, 0, 50, 20, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.GenerateAppearance(nil); err != nil {
		t.Fatal(err)
	}
	want := "/Tx BMC\nq\nQ\nEMC"
	if d := cmp.Diff(want, string(f.Normal().Content)); d != "" {
		t.Errorf("wrong content (-want +got):\n%s", d)
	}
}

func TestTextFieldEntries(t *testing.T) {
	opt := &TextFieldOptions{
		Value:     "Jane",
		MaxLength: 20,
		Required:  true,
	}
	f, err := NewTextField("first name", 0, 0, 100, 20, opt)
	if err != nil {
		t.Fatal(err)
	}

	refs := newRefCounter()
	entries, err := f.Entries(refs.ref)
	if err != nil {
		t.Fatal(err)
	}
	want := []acroform.KeyValue{
		{Key: "FT", Value: "/Tx"},
		{Key: "T", Value: "(first name)"},
		{Key: "V", Value: "(Jane)"},
		{Key: "DV", Value: "(Jane)"},
		{Key: "Ff", Value: "2"},
		{Key: "DA", Value: "(/Helvetica 12.00 Tf 0.00 g)"},
		{Key: "MaxLen", Value: "20"},
	}
	if d := cmp.Diff(want, entries); d != "" {
		t.Errorf("wrong entries (-want +got):\n%s", d)
	}

	if err := f.GenerateAppearance(nil); err != nil {
		t.Fatal(err)
	}
	entries, err = f.Entries(refs.ref)
	if err != nil {
		t.Fatal(err)
	}
	if ap := entryMap(entries)["AP"]; ap != "<</N 1 0 R>>" {
		t.Errorf("wrong AP %q", ap)
	}
}

func TestTextFieldResolver(t *testing.T) {
	cat := catalog.New(nil)
	opt := &TextFieldOptions{
		Value:    "Zürich",
		Resolver: cat,
	}
	f, err := NewTextField("city", 0, 0, 100, 20, opt)
	if err != nil {
		t.Fatal(err)
	}
	if f.DA != "/F1 12.00 Tf 0.00 g" {
		t.Errorf("wrong DA %q", f.DA)
	}
	if d := cmp.Diff([]int{1}, cat.FormFonts()); d != "" {
		t.Errorf("wrong form fonts (-want +got):\n%s", d)
	}

	if err := f.GenerateAppearance(nil); err != nil {
		t.Fatal(err)
	}
	obj := f.Normal()
	if d := cmp.Diff([]int{1}, obj.FontIDs.IDs()); d != "" {
		t.Errorf("wrong font ids (-want +got):\n%s", d)
	}
	if !strings.Contains(string(obj.Content), "/F1 12.00 Tf") {
		t.Errorf("resource name not used:\n%s", obj.Content)
	}
	if !strings.Contains(string(obj.Content), "(Z\xfcrich) Tj") {
		t.Errorf("text not Latin-1 encoded:\n%q", obj.Content)
	}
	xobjects := cat.XObjects()
	if len(xobjects) != 1 || xobjects[0] != obj {
		t.Error("appearance not registered with the resolver")
	}
}

func TestTextFieldUnknownFont(t *testing.T) {
	opt := &TextFieldOptions{
		Font:     "NoSuchFont",
		Resolver: catalog.New(nil),
	}
	_, err := NewTextField("name", 0, 0, 100, 20, opt)
	var fontErr *acroform.UnknownFontError
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected UnknownFontError, got %v", err)
	}

	opt.Font = ""
	f, err := NewTextField("name", 0, 0, 100, 20, opt)
	if err != nil {
		t.Fatal(err)
	}
	err = f.GenerateAppearance(&AppearanceOptions{Font: "NoSuchFont"})
	if !errors.As(err, &fontErr) {
		t.Fatalf("expected UnknownFontError, got %v", err)
	}
	if f.Normal() != nil {
		t.Error("appearance set after error")
	}
}

func TestTextFieldNotLatin1(t *testing.T) {
	f, err := NewTextField("name", 0, 0, 100, 20, &TextFieldOptions{Value: "漢字"})
	if err != nil {
		t.Fatal(err)
	}
	err = f.GenerateAppearance(nil)
	var encErr *acroform.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
}
