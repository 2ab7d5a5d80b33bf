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
	"errors"
	"fmt"
	"strconv"
)

// Writer records a sequence of PDF content stream operators.
type Writer struct {
	Err error

	ops []string

	currentObject objectType

	// fontSet records whether a font has been selected using "Tf".
	// The value is part of the graphics state and is saved by "q".
	fontSet bool
	stack   []bool

	nesting []pairType
}

type pairType byte

const (
	pairTypeQ   pairType = iota + 1 // q ... Q
	pairTypeBT                      // BT ... ET
	pairTypeBMC                     // BMC ... EMC
)

func (p pairType) String() string {
	switch p {
	case pairTypeQ:
		return "q/Q"
	case pairTypeBT:
		return "BT/ET"
	case pairTypeBMC:
		return "BMC/EMC"
	default:
		return fmt.Sprintf("pairType(%d)", p)
	}
}

// NewWriter allocates a new Writer object.
func NewWriter() *Writer {
	return &Writer{
		currentObject: objPage,
	}
}

// Ops returns the operators written so far.
//
// An error is returned if any of the operators was invalid, or if a
// "q", "BT" or "BMC" operator is still open.
func (w *Writer) Ops() ([]string, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	if n := len(w.nesting); n > 0 {
		return nil, fmt.Errorf("unterminated %s pair", w.nesting[n-1])
	}
	if w.currentObject != objPage {
		return nil, fmt.Errorf("unfinished %s object", w.currentObject)
	}
	res := make([]string, len(w.ops))
	copy(res, w.ops)
	return res, nil
}

// isValid returns true, if the current graphics object is one of the given types
// and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) emit(args ...string) {
	op := args[0]
	for _, arg := range args[1:] {
		op += " " + arg
	}
	w.ops = append(w.ops, op)
}

func (w *Writer) endPair(cmd string, want pairType) bool {
	n := len(w.nesting)
	if n == 0 || w.nesting[n-1] != want {
		w.Err = errors.New(cmd + ": no matching start operator")
		return false
	}
	w.nesting = w.nesting[:n-1]
	return true
}

// coord formats a coordinate or length.  An exact zero is written as "0".
func coord(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// component formats a color component.
func component(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}

// level formats a gray level or a font size.
func level(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// objectType describes the kind of graphics object which is currently being
// constructed.
type objectType byte

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}
