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

	"github.com/wdamron/polyclass/ast"
)

// ErrorID is a stable numeric code identifying a kind of diagnostic.
type ErrorID uint32

// Type classifies a diagnostic.
type Type uint8

const (
	DeclarationError Type = iota
	TypeError
	Warning
	Info
)

func (t Type) String() string {
	switch t {
	case DeclarationError:
		return "DeclarationError"
	case TypeError:
		return "TypeError"
	case Warning:
		return "Warning"
	case Info:
		return "Info"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// IsError reports whether diagnostics of type t cause an analysis to fail.
func (t Type) IsError() bool { return t == DeclarationError || t == TypeError }

// Error is a single diagnostic record.
type Error struct {
	Type     Type
	ID       ErrorID
	Location ast.Location
	Message  string
	// Fatal diagnostics invalidate the enclosing definition; analysis of unrelated definitions continues.
	Fatal bool
}

func (e Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.ID, e.Message)
}

// IsError reports whether the diagnostic causes an analysis to fail.
func (e Error) IsError() bool { return e.Type.IsError() }
