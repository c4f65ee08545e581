// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Formatter renders diagnostics as `file:line:col: TypeError (3195): message`.
type Formatter struct {
	Color bool
}

func (f Formatter) style(t Type) *color.Color {
	var c *color.Color
	switch t {
	case DeclarationError, TypeError:
		c = color.New(color.FgRed, color.Bold)
	case Warning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if f.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Format renders a single diagnostic.
func (f Formatter) Format(e Error) string {
	return fmt.Sprintf("%s: %s: %s", e.Location, f.style(e.Type).Sprintf("%s (%d)", e.Type, e.ID), e.Message)
}

// Fprint writes each diagnostic on its own line, followed by a summary of dropped diagnostics.
func (f Formatter) Fprint(w io.Writer, r *Reporter) error {
	for _, e := range r.Sorted() {
		if _, err := fmt.Fprintln(w, f.Format(e)); err != nil {
			return err
		}
	}
	if r.Dropped() > 0 {
		if _, err := fmt.Fprintf(w, "%d further diagnostics omitted\n", r.Dropped()); err != nil {
			return err
		}
	}
	return nil
}
