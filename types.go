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
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Object is a value which can be written into a PDF dictionary.
type Object interface {
	PDF() string
}

// KeyValue is one entry of a PDF dictionary.  The value is given in PDF
// syntax, with indirect objects already replaced by references.
type KeyValue struct {
	Key   Name
	Value string
}

// Name represents a PDF name object.
type Name string

// PDF implements the [Object] interface.
func (x Name) PDF() string {
	l := []byte(x)

	buf := &strings.Builder{}
	buf.WriteByte('/')
	for _, c := range l {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	return buf.String()
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// TextString represents a PDF text string, e.g. the value of a text field.
//
// Text strings are written as literal strings.  Encryption of the string,
// where required, is done by the PDF writer.
type TextString string

// PDF implements the [Object] interface.
func (x TextString) PDF() string {
	return "(" + EscapeString(string(x)) + ")"
}

// String represents a PDF string holding already encoded bytes, for
// example the character codes of a text run.
type String []byte

// PDF implements the [Object] interface.
//
// The string is written in literal form if this is not much longer than the
// original data, and in hexadecimal form otherwise.
func (x String) PDF() string {
	l := []byte(x)

	var funny []int
	for i, c := range l {
		if c < 32 || c > 126 || c == '\\' || c == '(' || c == ')' {
			funny = append(funny, i)
		}
	}
	n := len(l)

	buf := &bytes.Buffer{}
	if 3*len(funny) > n {
		fmt.Fprintf(buf, "<%x>", l)
		return buf.String()
	}

	buf.WriteString("(")
	pos := 0
	for _, i := range funny {
		if pos < i {
			buf.Write(l[pos:i])
		}
		c := l[i]
		switch c {
		case '\r':
			buf.WriteString(`\r`)
		case '\n':
			buf.WriteString(`\n`)
		case '\t':
			buf.WriteString(`\t`)
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			fmt.Fprintf(buf, `\%03o`, c)
		}
		pos = i + 1
	}
	if pos < n {
		buf.Write(l[pos:n])
	}
	buf.WriteString(")")
	return buf.String()
}

// EscapeString escapes the text for use inside a PDF literal string.
//
// Backslashes are doubled first, then parentheses are prefixed with a
// backslash.  Doing this in the opposite order would escape the backslashes
// inserted for the parentheses a second time.
func EscapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}

// Reference identifies an indirect object in a PDF file.
// References are allocated by the PDF writer.
type Reference uint64

// NewReference returns a new reference with the given object number and
// generation number.
func NewReference(number uint32, generation uint16) Reference {
	return Reference(uint64(number) | uint64(generation)<<32)
}

// Number returns the object number of the reference.
func (x Reference) Number() uint32 {
	return uint32(x)
}

// Generation returns the generation number of the reference.
func (x Reference) Generation() uint16 {
	return uint16(x >> 32)
}

func (x Reference) String() string {
	res := []string{
		"obj_",
		strconv.FormatInt(int64(x.Number()), 10),
	}
	gen := x.Generation()
	if gen > 0 {
		res = append(res, "@", strconv.FormatUint(uint64(gen), 10))
	}
	return strings.Join(res, "")
}

// PDF implements the [Object] interface.
func (x Reference) PDF() string {
	return fmt.Sprintf("%d %d R", x.Number(), x.Generation())
}
