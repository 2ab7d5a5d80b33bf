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

package catalog

import (
	"bytes"
	"errors"
	"maps"
	"strconv"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/acroform"
)

// Kind describes how text is encoded for a font.
type Kind int

// These are the supported font kinds.
const (
	// Simple fonts use the WinAnsi encoding.
	Simple Kind = iota

	// Symbolic fonts use their built-in encoding.  Every character must
	// be in the range U+0000 to U+00FF and is used as the character code.
	Symbolic

	// TrueType fonts are composite fonts with two-byte glyph ids as
	// character codes.
	TrueType
)

func (k Kind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Symbolic:
		return "symbolic"
	case TrueType:
		return "TrueType"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// symbolicWidth is the advance width, in PDF glyph space units, used for
// all glyphs of the symbolic fonts.
const symbolicWidth = 1000

type source struct {
	kind Kind
	data []byte
	font *sfnt.Font
}

func standardSources() map[string]*source {
	simple := func(data []byte) *source {
		return &source{kind: Simple, data: data}
	}
	return map[string]*source{
		"Helvetica":             simple(goregular.TTF),
		"Helvetica-Bold":        simple(gobold.TTF),
		"Helvetica-Oblique":     simple(goitalic.TTF),
		"Helvetica-BoldOblique": simple(gobolditalic.TTF),
		"Times-Roman":           simple(goregular.TTF),
		"Times-Bold":            simple(gobold.TTF),
		"Times-Italic":          simple(goitalic.TTF),
		"Times-BoldItalic":      simple(gobolditalic.TTF),
		"Courier":               simple(gomono.TTF),
		"Courier-Bold":          simple(gomonobold.TTF),
		"Courier-Oblique":       simple(gomonoitalic.TTF),
		"Courier-BoldOblique":   simple(gomonobolditalic.TTF),
		"Symbol":                {kind: Symbolic},
		"ZapfDingbats":          {kind: Symbolic},
	}
}

func trueTypeSource(data []byte) (*source, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &source{kind: TrueType, font: f}, nil
}

// Font is a font allocated by a [Catalog].
type Font struct {
	id     int
	family string
	kind   Kind

	// metrics is nil for symbolic fonts, and for simple fonts until the
	// first width is needed.
	metrics *sfnt.Font
	data    []byte
	lookup  func(rune) glyph.ID

	mu     sync.Mutex
	widths map[rune]float64
}

func newFont(id int, family string, src *source) *Font {
	return &Font{
		id:      id,
		family:  family,
		kind:    src.kind,
		metrics: src.font,
		data:    src.data,
		widths:  make(map[rune]float64),
	}
}

// FontID implements the [appearance.Font] interface.
func (f *Font) FontID() int {
	return f.id
}

// ResourceName implements the [appearance.Font] interface.
func (f *Font) ResourceName() acroform.Name {
	return acroform.Name("F" + strconv.Itoa(f.id))
}

// Family returns the family name under which the font was looked up.
func (f *Font) Family() string {
	return f.family
}

// Kind returns the encoding kind of the font.
func (f *Font) Kind() Kind {
	return f.kind
}

// Encode implements the [appearance.Font] interface.
func (f *Font) Encode(text string) (acroform.String, error) {
	switch f.kind {
	case Simple:
		s, err := charmap.Windows1252.NewEncoder().String(text)
		if err != nil {
			return nil, &acroform.EncodingError{Text: text, Encoding: "WinAnsi", Err: err}
		}
		return acroform.String(s), nil

	case Symbolic:
		res := make(acroform.String, 0, len(text))
		for _, r := range text {
			if r > 0xFF {
				return nil, &acroform.EncodingError{Text: text, Encoding: "built-in", Err: errNoGlyph(r)}
			}
			res = append(res, byte(r))
		}
		return res, nil

	default:
		f.mu.Lock()
		defer f.mu.Unlock()

		if err := f.loadMetrics(); err != nil {
			return nil, &acroform.EncodingError{Text: text, Encoding: "Identity-H", Err: err}
		}
		res := make(acroform.String, 0, 2*len(text))
		for _, r := range text {
			gid := f.lookup(r)
			if gid == 0 {
				return nil, &acroform.EncodingError{Text: text, Encoding: "Identity-H", Err: errNoGlyph(r)}
			}
			res = append(res, byte(gid>>8), byte(gid))
		}
		return res, nil
	}
}

// Widths returns the glyph widths, in PDF glyph space units, of all
// characters measured so far.
func (f *Font) Widths() map[rune]float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return maps.Clone(f.widths)
}

// measure returns the width of the text in PDF glyph space units and records
// the widths of all characters.
func (f *Font) measure(text string) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total float64
	for _, r := range text {
		w, ok := f.widths[r]
		if !ok {
			w = f.glyphWidth(r)
			f.widths[r] = w
		}
		total += w
	}
	return total
}

// glyphWidth must be called with f.mu held.
func (f *Font) glyphWidth(r rune) float64 {
	if f.kind == Symbolic {
		return symbolicWidth
	}
	if err := f.loadMetrics(); err != nil {
		return 0
	}
	return f.metrics.GlyphWidthPDF(f.lookup(r))
}

// loadMetrics must be called with f.mu held.
func (f *Font) loadMetrics() error {
	if f.lookup != nil {
		return nil
	}
	if f.metrics == nil {
		if f.data == nil {
			return errNoMetrics
		}
		m, err := sfnt.Read(bytes.NewReader(f.data))
		if err != nil {
			return err
		}
		f.metrics = m
	}
	sub, err := f.metrics.CMapTable.GetBest()
	if err != nil {
		return err
	}
	f.lookup = sub.Lookup
	return nil
}

var errNoMetrics = errors.New("no font metrics available")

type errNoGlyph rune

func (r errNoGlyph) Error() string {
	return "no glyph for " + strconv.QuoteRune(rune(r))
}
