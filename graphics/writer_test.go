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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoxOperators(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.SetFillRGB(1, 0, 0)
	w.Rectangle(0, 0, 10, 5)
	w.Fill()
	w.SetStrokeRGB(0, 0, 0.5)
	w.SetLineWidth(1)
	w.Rectangle(0.5, 0.5, 9, 4)
	w.Stroke()
	w.PopGraphicsState()

	ops, err := w.Ops()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"q",
		"1.000 0.000 0.000 rg",
		"0 0 10.00 5.00 re",
		"f",
		"0.000 0.000 0.500 RG",
		"1.00 w",
		"0.50 0.50 9.00 4.00 re",
		"S",
		"Q",
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Errorf("unexpected operators (-want +got):\n%s", d)
	}
}

func TestTextOperators(t *testing.T) {
	w := NewWriter()
	w.MarkedContentStart("Tx")
	w.PushGraphicsState()
	w.Rectangle(2, 2, 96, 26)
	w.ClipNonZero()
	w.EndPath()
	w.TextStart()
	w.TextSetFont("F1", 12)
	w.SetFillGray(0)
	w.TextFirstLine(2, 16)
	w.TextShowLiteral(`a(b)\c`)
	w.TextShowRaw([]byte{0, 1})
	w.TextEnd()
	w.PopGraphicsState()
	w.MarkedContentEnd()

	ops, err := w.Ops()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"/Tx BMC",
		"q",
		"2.00 2.00 96.00 26.00 re",
		"W",
		"n",
		"BT",
		"/F1 12.00 Tf",
		"0.00 g",
		"2.00 16.00 Td",
		`(a\(b\)\\c) Tj`,
		"<0001> Tj",
		"ET",
		"Q",
		"EMC",
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Errorf("unexpected operators (-want +got):\n%s", d)
	}
}

func TestOpsReturnsCopy(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.PopGraphicsState()

	ops, err := w.Ops()
	if err != nil {
		t.Fatal(err)
	}
	ops[0] = "changed"

	again, _ := w.Ops()
	if again[0] != "q" {
		t.Errorf("Ops exposes internal storage: %q", again[0])
	}
}

func TestInvalidSequences(t *testing.T) {
	cases := []struct {
		name string
		draw func(w *Writer)
	}{
		{"unbalanced Q", func(w *Writer) { w.PopGraphicsState() }},
		{"open q", func(w *Writer) { w.PushGraphicsState() }},
		{"ET without BT", func(w *Writer) { w.TextEnd() }},
		{"Tj outside text", func(w *Writer) { w.TextShowLiteral("x") }},
		{"Tj without font", func(w *Writer) {
			w.TextStart()
			w.TextShowLiteral("x")
			w.TextEnd()
		}},
		{"fill without path", func(w *Writer) { w.Fill() }},
		{"open path", func(w *Writer) { w.Rectangle(0, 0, 1, 1) }},
		{"crossed pairs", func(w *Writer) {
			w.MarkedContentStart("Tx")
			w.PushGraphicsState()
			w.MarkedContentEnd()
			w.PopGraphicsState()
		}},
		{"empty font name", func(w *Writer) {
			w.TextStart()
			w.TextSetFont("", 12)
			w.TextEnd()
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWriter()
			c.draw(w)
			if _, err := w.Ops(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestValuesClamped(t *testing.T) {
	w := NewWriter()
	w.SetFillRGB(1.2, -0.5, 0.25)
	w.SetStrokeRGB(math.NaN(), 2, 1)
	w.SetFillGray(-0.1)
	w.SetLineWidth(-1)

	ops, err := w.Ops()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"1.000 0.000 0.250 rg",
		"0.000 1.000 1.000 RG",
		"0.00 g",
		"0.00 w",
	}
	if d := cmp.Diff(want, ops); d != "" {
		t.Errorf("unexpected operators (-want +got):\n%s", d)
	}
}

func TestFontStateRestored(t *testing.T) {
	w := NewWriter()
	w.PushGraphicsState()
	w.TextStart()
	w.TextSetFont("F1", 10)
	w.TextEnd()
	w.PopGraphicsState()

	// the font selection was undone by "Q"
	w.TextStart()
	w.TextShowLiteral("x")
	w.TextEnd()

	if _, err := w.Ops(); err == nil {
		t.Error("expected an error after the font state was restored")
	}
}
