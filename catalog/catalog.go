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

// Package catalog implements an [appearance.Resolver] which keeps track of
// the fonts and form XObjects used by the fields of a document.
//
// The standard 14 PDF fonts are always available.  Their glyph widths are
// taken from the Go fonts (golang.org/x/image/font/gofont), which are
// metric-compatible substitutes for Helvetica, Times and Courier.  Symbol
// and ZapfDingbats use a fixed advance width.  Additional TrueType fonts can
// be added using [Catalog.AddTrueType].
//
// Font ids are allocated in the order in which fonts are first looked up,
// starting at 1.  The resource name of the font with id n is "Fn".
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
)

// Options can be used to configure a [Catalog].
type Options struct {
	// Logger receives debug messages about font allocation.  If this is
	// nil, nothing is logged.
	Logger *zerolog.Logger
}

// Catalog is a font and resource registry for form appearances.
// It is safe for concurrent use.
type Catalog struct {
	log zerolog.Logger

	mu        sync.Mutex
	sources   map[string]*source
	byFamily  map[string]*Font
	fonts     []*Font
	formFonts map[int]bool
	xobjects  []*appearance.FormXObject
	seen      map[*appearance.FormXObject]bool
}

var _ appearance.Resolver = (*Catalog)(nil)

// New creates a catalog which knows the standard 14 fonts.
// A nil opt selects default values.
func New(opt *Options) *Catalog {
	if opt == nil {
		opt = &Options{}
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}

	c := &Catalog{
		log:       log,
		sources:   make(map[string]*source),
		byFamily:  make(map[string]*Font),
		formFonts: make(map[int]bool),
		seen:      make(map[*appearance.FormXObject]bool),
	}
	for family, src := range standardSources() {
		c.sources[family] = src
	}
	return c
}

// AddTrueType makes a TrueType or OpenType font available under the given
// family name.  Text in such fonts is encoded using two-byte glyph ids.
//
// An existing family with the same name is replaced, unless a font of this
// family has already been looked up.
func (c *Catalog) AddTrueType(family string, data []byte) error {
	src, err := trueTypeSource(data)
	if err != nil {
		return fmt.Errorf("font %q: %w", family, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, used := c.byFamily[family]; used {
		return fmt.Errorf("font %q: already in use", family)
	}
	c.sources[family] = src
	c.log.Debug().Str("family", family).Msg("added TrueType font")
	return nil
}

// Families returns the names of all known font families, in sorted order.
func (c *Catalog) Families() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make([]string, 0, len(c.sources))
	for family := range c.sources {
		res = append(res, family)
	}
	slices.Sort(res)
	return res
}

// LookupFont implements the [appearance.Resolver] interface.
//
// The first lookup of a family allocates a new font id.  Later lookups
// return the same font.
func (c *Catalog) LookupFont(family string) (appearance.Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.byFamily[family]; ok {
		return f, nil
	}
	src, ok := c.sources[family]
	if !ok {
		return nil, &acroform.UnknownFontError{Family: family}
	}

	f := newFont(len(c.fonts)+1, family, src)
	c.fonts = append(c.fonts, f)
	c.byFamily[family] = f
	c.log.Debug().Str("family", family).Int("id", f.id).Msg("allocated font")
	return f, nil
}

// Font returns the font with the given id, or nil if there is no such font.
func (c *Catalog) Font(id int) *Font {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id < 1 || id > len(c.fonts) {
		return nil
	}
	return c.fonts[id-1]
}

// Fonts returns all fonts allocated so far, ordered by id.
func (c *Catalog) Fonts() []*Font {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.fonts)
}

// RegisterFormFont implements the [appearance.Resolver] interface.
func (c *Catalog) RegisterFormFont(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.formFonts[id] {
		return
	}
	c.formFonts[id] = true
	c.log.Debug().Int("id", id).Msg("registered form font")
}

// FormFonts returns the ids of the fonts which need to be listed in the
// default resources (/DR) of the interactive form, in increasing order.
func (c *Catalog) FormFonts() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := make([]int, 0, len(c.formFonts))
	for id := range c.formFonts {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// RegisterFormXObjectResources implements the [appearance.Resolver]
// interface.
func (c *Catalog) RegisterFormXObjectResources(obj *appearance.FormXObject) {
	if obj == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen[obj] {
		return
	}
	c.seen[obj] = true
	c.xobjects = append(c.xobjects, obj)
}

// XObjects returns the registered form XObjects, in registration order.
func (c *Catalog) XObjects() []*appearance.FormXObject {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.xobjects)
}

// UsedFonts returns the ids of all fonts which are referenced by the
// registered form XObjects, in increasing order.
func (c *Catalog) UsedFonts() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	all := appearance.FontSet{}
	for _, obj := range c.xobjects {
		all.AddAll(obj.FontIDs)
	}
	return all.IDs()
}

// MeasureText implements the [appearance.Resolver] interface.
//
// Fonts which were not obtained from this catalog are measured with a
// width of half the font size per character.
func (c *Catalog) MeasureText(f appearance.Font, text string, size float64) float64 {
	font, ok := f.(*Font)
	if !ok {
		n := 0
		for range text {
			n++
		}
		return float64(n) * size / 2
	}

	return font.measure(text) * size / 1000
}
