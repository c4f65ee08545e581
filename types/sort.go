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
	"sort"
)

// Sort is a set of type-classes which qualifies a type-variable. A type substituted for the
// variable must eventually be an instance of every class in the sort.
//
// The zero Sort is empty and unconstrained.
type Sort struct {
	classes []TypeClass
}

// Create a sort containing the given type-classes. Duplicates are removed.
func NewSort(classes ...TypeClass) Sort {
	var s Sort
	for _, tc := range classes {
		s = s.With(tc)
	}
	return s
}

// Len returns the number of type-classes in the sort.
func (s Sort) Len() int { return len(s.classes) }

// Empty reports whether the sort places no constraints.
func (s Sort) Empty() bool { return len(s.classes) == 0 }

// Classes returns the type-classes in the sort, ordered by handle.
func (s Sort) Classes() []TypeClass {
	out := make([]TypeClass, len(s.classes))
	copy(out, s.classes)
	return out
}

// Contains reports whether the sort includes tc.
func (s Sort) Contains(tc TypeClass) bool {
	i := sort.Search(len(s.classes), func(i int) bool { return s.classes[i].index >= tc.index })
	return i < len(s.classes) && s.classes[i] == tc
}

// With returns a sort which also includes tc. The receiver is not modified.
func (s Sort) With(tc TypeClass) Sort {
	i := sort.Search(len(s.classes), func(i int) bool { return s.classes[i].index >= tc.index })
	if i < len(s.classes) && s.classes[i] == tc {
		return s
	}
	classes := make([]TypeClass, 0, len(s.classes)+1)
	classes = append(classes, s.classes[:i]...)
	classes = append(classes, tc)
	classes = append(classes, s.classes[i:]...)
	return Sort{classes: classes}
}

// Union returns a sort containing the classes of both sorts.
func (s Sort) Union(other Sort) Sort {
	for _, tc := range other.classes {
		s = s.With(tc)
	}
	return s
}
