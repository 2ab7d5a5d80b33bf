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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/acroform"
	"seehuhn.de/go/acroform/appearance"
	"seehuhn.de/go/acroform/catalog"
	"seehuhn.de/go/acroform/field"
	"seehuhn.de/go/acroform/internal/float"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE.yaml",
		Short: "Render the fields of a form description and print the PDF objects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd.ErrOrStderr(), flags)
			if err != nil {
				return err
			}

			path := args[0]
			form, err := LoadForm(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Info().Str("file", path).Int("fields", len(form.Fields)).Msg("loaded form")

			return renderForm(cmd.OutOrStdout(), form, filepath.Dir(path), log)
		},
	}
}

// renderForm renders all fields of the form and writes the PDF objects to w.
//
// Object numbers are allocated in output order: first the font
// dictionaries, then for each field the widget annotation followed by its
// appearance streams, and finally the interactive form dictionary.
func renderForm(w io.Writer, form *Form, baseDir string, log zerolog.Logger) error {
	cat := catalog.New(&catalog.Options{Logger: &log})
	for _, fc := range form.Fonts {
		file := fc.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if err := cat.AddTrueType(fc.Family, data); err != nil {
			return err
		}
	}

	fields := make([]field.Field, 0, len(form.Fields))
	for i := range form.Fields {
		f, err := newField(&form.Fields[i], cat)
		if err != nil {
			return err
		}
		if err := f.GenerateAppearance(nil); err != nil {
			return err
		}
		log.Debug().Str("field", f.Common().Name).Str("flags", f.Common().Flags.String()).Msg("rendered field")
		fields = append(fields, f)
	}

	p := &printer{w: w, cat: cat, next: 1, refs: make(map[*appearance.FormXObject]acroform.Reference)}

	fonts := cat.Fonts()
	fontRefs := make(map[int]acroform.Reference, len(fonts))
	for _, font := range fonts {
		fontRefs[font.FontID()] = p.alloc()
	}
	for _, font := range fonts {
		p.object(fontRefs[font.FontID()], fontDict(font))
	}

	var fieldRefs []string
	for _, f := range fields {
		ref := p.alloc()
		fieldRefs = append(fieldRefs, ref.PDF())

		entries, err := f.Entries(p.ref)
		if err != nil {
			return err
		}
		b := f.Common()
		widget := []acroform.KeyValue{
			{Key: "Type", Value: "/Annot"},
			{Key: "Subtype", Value: "/Widget"},
			{Key: "Rect", Value: formatRect(b.Rect())},
			{Key: "F", Value: "4"},
		}
		p.object(ref, append(widget, entries...))

		if d := f.AppearanceDict(); d != nil {
			for _, obj := range d.Objects() {
				p.stream(obj, fontRefs)
			}
		}
	}

	var dr []string
	for _, id := range cat.FormFonts() {
		font := cat.Font(id)
		dr = append(dr, font.ResourceName().PDF()+" "+fontRefs[id].PDF())
	}
	acroForm := []acroform.KeyValue{
		{Key: "Fields", Value: "[" + strings.Join(fieldRefs, " ") + "]"},
		{Key: "DR", Value: "<</Font <<" + strings.Join(dr, " ") + ">>>>"},
	}
	p.object(p.alloc(), acroForm)

	log.Info().Int("objects", int(p.next-1)).Msg("done")
	return p.err
}

func newField(fc *FieldConfig, cat *catalog.Catalog) (field.Field, error) {
	switch fc.Type {
	case "text":
		opt := &field.TextFieldOptions{
			Value:         fc.Value,
			Font:          fc.Font,
			FontSize:      fc.FontSize,
			FontColorGray: fc.TextGray,
			Background:    fc.Background.RGB(),
			Border:        fc.Border.RGB(),
			BorderWidth:   fc.BorderWidth,
			MaxLength:     fc.MaxLength,
			Multiline:     fc.Multiline,
			Password:      fc.Password,
			ReadOnly:      fc.ReadOnly,
			Required:      fc.Required,
			Resolver:      cat,
		}
		return field.NewTextField(fc.Name, fc.X, fc.Y, fc.Width, fc.Height, opt)

	case "checkbox":
		opt := field.DefaultCheckboxOptions()
		if fc.Size != 0 {
			opt.Size = fc.Size
		}
		if fc.Background != nil {
			opt.Background = fc.Background.RGB()
		}
		if fc.Border != nil {
			opt.Border = fc.Border.RGB()
		}
		if fc.BorderWidth != 0 {
			opt.BorderWidth = fc.BorderWidth
		}
		opt.NoBackground = fc.NoBackground
		opt.NoBorder = fc.NoBorder
		opt.Checked = fc.Checked
		opt.CheckColorGray = fc.TextGray
		opt.ReadOnly = fc.ReadOnly
		opt.Required = fc.Required
		opt.Resolver = cat
		if fc.Appearance != nil {
			opt.Appearance = &appearance.Checkbox{
				Off:         buildParts(fc.Appearance.Off),
				On:          buildParts(fc.Appearance.On),
				RollOverOff: buildParts(fc.Appearance.RollOverOff),
				RollOverOn:  buildParts(fc.Appearance.RollOverOn),
			}
		}
		return field.NewCheckbox(fc.Name, fc.X, fc.Y, opt)

	default:
		return nil, fmt.Errorf("field %q: unknown type %q", fc.Name, fc.Type)
	}
}

// buildParts converts a list of parts into an appearance.  An empty list
// gives nil.
func buildParts(parts []PartConfig) appearance.Appearance {
	var res []appearance.Appearance
	for _, part := range parts {
		switch {
		case part.Box != nil:
			box := appearance.NewBox(part.Box.Background.RGB(), part.Box.Border.RGB())
			if part.Box.BorderWidth != 0 {
				box.BorderWidth = part.Box.BorderWidth
			}
			res = append(res, box)
		case part.Text != nil:
			t := part.Text
			res = append(res, &appearance.Text{
				Text:    t.Text,
				Font:    t.Font,
				Size:    t.Size,
				Gray:    t.Gray,
				X:       t.X,
				Y:       t.Y,
				XOffset: t.XOffset,
				YOffset: t.YOffset,
			})
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return appearance.NewComposite(res...)
	}
}

func fontDict(font *catalog.Font) []acroform.KeyValue {
	base := acroform.Name(font.Family()).PDF()
	switch font.Kind() {
	case catalog.Simple:
		return []acroform.KeyValue{
			{Key: "Type", Value: "/Font"},
			{Key: "Subtype", Value: "/Type1"},
			{Key: "BaseFont", Value: base},
			{Key: "Encoding", Value: "/WinAnsiEncoding"},
		}
	case catalog.Symbolic:
		return []acroform.KeyValue{
			{Key: "Type", Value: "/Font"},
			{Key: "Subtype", Value: "/Type1"},
			{Key: "BaseFont", Value: base},
		}
	default:
		return []acroform.KeyValue{
			{Key: "Type", Value: "/Font"},
			{Key: "Subtype", Value: "/Type0"},
			{Key: "BaseFont", Value: base},
			{Key: "Encoding", Value: "/Identity-H"},
		}
	}
}

func formatRect(r rect.Rect) string {
	return "[" + strings.Join([]string{
		float.Format(r.LLx, 2),
		float.Format(r.LLy, 2),
		float.Format(r.URx, 2),
		float.Format(r.URy, 2),
	}, " ") + "]"
}

// printer writes numbered PDF objects.  The first write error is kept
// in err, and later writes are skipped.
type printer struct {
	w    io.Writer
	cat  *catalog.Catalog
	next uint32
	refs map[*appearance.FormXObject]acroform.Reference
	err  error
}

func (p *printer) alloc() acroform.Reference {
	ref := acroform.NewReference(p.next, 0)
	p.next++
	return ref
}

// ref implements [appearance.RefFunc].
func (p *printer) ref(obj *appearance.FormXObject) (acroform.Reference, error) {
	if ref, ok := p.refs[obj]; ok {
		return ref, nil
	}
	ref := p.alloc()
	p.refs[obj] = ref
	return ref, nil
}

func (p *printer) object(ref acroform.Reference, dict []acroform.KeyValue) {
	p.printf("%d %d obj\n%s\nendobj\n", ref.Number(), ref.Generation(), formatDict(dict))
}

func (p *printer) stream(obj *appearance.FormXObject, fontRefs map[int]acroform.Reference) {
	ref, _ := p.ref(obj)
	dict := obj.Entries()
	if obj.Resources == "" && len(obj.FontIDs) > 0 {
		var fonts []string
		for _, id := range obj.FontIDs.IDs() {
			name := p.cat.Font(id).ResourceName()
			fonts = append(fonts, name.PDF()+" "+fontRefs[id].PDF())
		}
		dict = append(dict, acroform.KeyValue{
			Key:   "Resources",
			Value: "<</Font <<" + strings.Join(fonts, " ") + ">>>>",
		})
	}
	dict = append(dict, acroform.KeyValue{Key: "Length", Value: strconv.Itoa(len(obj.Content))})
	p.printf("%d %d obj\n%s\nstream\n%s\nendstream\nendobj\n",
		ref.Number(), ref.Generation(), formatDict(dict), obj.Content)
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func formatDict(dict []acroform.KeyValue) string {
	parts := make([]string, len(dict))
	for i, kv := range dict {
		parts[i] = kv.Key.PDF() + " " + kv.Value
	}
	return "<<" + strings.Join(parts, " ") + ">>"
}
