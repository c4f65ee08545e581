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

// Type-variable
//
// Type-variables are unification placeholders. They are never linked or solved here;
// a later inference pass substitutes them.
type Var struct {
	sort Sort
	id   uint64
}

// Create a new type-variable with the given id and sort.
//
// Ids must be unique; allocate type-variables through a type-system rather than calling NewVar directly.
func NewVar(id uint64, sort Sort) *Var {
	return &Var{id: id, sort: sort}
}

// Id returns the unique identifier of the type-variable.
func (tv *Var) Id() uint64 { return tv.id }

// Sort returns the type-class constraints the type-variable was allocated with.
func (tv *Var) Sort() Sort { return tv.sort }

// HasConstraint reports whether the type-variable is constrained by the type-class.
func (tv *Var) HasConstraint(tc TypeClass) bool { return tv.sort.Contains(tc) }
