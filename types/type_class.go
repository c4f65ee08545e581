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

package types

import (
	"strconv"
)

// TypeClass is an opaque handle for a type-class declared within a type-system.
//
// Handles are comparable and stable for the lifetime of the type-system which declared them.
// The zero TypeClass is invalid.
type TypeClass struct {
	index int
}

// NewTypeClassHandle creates the handle for the type-class declared at the given (zero-based) index of a type-system.
func NewTypeClassHandle(index int) TypeClass { return TypeClass{index: index + 1} }

// Index returns the zero-based declaration index of the type-class, or -1 for the zero handle.
func (tc TypeClass) Index() int { return tc.index - 1 }

// Valid reports whether the handle was created by a type-system.
func (tc TypeClass) Valid() bool { return tc.index > 0 }

func (tc TypeClass) String() string {
	if !tc.Valid() {
		return "<invalid-type-class>"
	}
	return "class#" + strconv.Itoa(tc.Index())
}

// TypeClassInfo describes a declared type-class.
type TypeClassInfo struct {
	// Name should be unique within a type-system
	Name string
	// TypeVariable is the quantified parameter which every member signature of the class is written over.
	TypeVariable *Var
	Builtin      bool
}

// String returns the class name followed by its type-variable: `Integer 'a`
func (info TypeClassInfo) String() string { return info.Name + " " + TypeString(info.TypeVariable) }
