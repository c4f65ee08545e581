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
	"github.com/benbjohnson/immutable"
)

var emptyMap = immutable.NewSortedMap(nil)

var EmptyMethodSet = MethodSet{emptyMap}

// MethodSet contains immutable mappings from member names to function-types declared for a type-class.
//
// Entries are sorted by name.
type MethodSet struct {
	m *immutable.SortedMap
}

// Create a MethodSet with a single entry.
func SingletonMethodSet(name string, t Type) MethodSet {
	return MethodSet{emptyMap.Set(name, t)}
}

// Get the number of entries in the set.
func (m MethodSet) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get the function-type for a member name.
func (m MethodSet) Get(name string) (Type, bool) {
	if m.m == nil {
		return nil, false
	}
	t, ok := m.m.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Names returns the member names in sorted order.
func (m MethodSet) Names() []string {
	names := make([]string, 0, m.Len())
	m.Range(func(name string, _ Type) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Iterate over entries in the set, in sorted order.
// If f returns false, iteration will be stopped.
func (m MethodSet) Range(f func(string, Type) bool) {
	if m.m == nil {
		return
	}
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Type)) {
			return
		}
	}
}

// Convert the set to a builder for modification, without mutating the existing set.
func (m MethodSet) Builder() MethodSetBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyMap
	}
	return MethodSetBuilder{immutable.NewSortedMapBuilder(imm)}
}

// MethodSetBuilder enables in-place updates of a method set before finalization.
type MethodSetBuilder struct {
	b *immutable.SortedMapBuilder
}

func NewMethodSetBuilder() MethodSetBuilder {
	return MethodSetBuilder{immutable.NewSortedMapBuilder(emptyMap)}
}

// Get the number of entries in the builder.
func (b MethodSetBuilder) Len() int { return b.b.Len() }

// Get the function-type for a member name in the builder.
func (b MethodSetBuilder) Get(name string) (Type, bool) {
	t, ok := b.b.Get(name)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Add the function-type for a member name, unless the name is already present.
// Returns false (leaving the existing entry unchanged) when the name is already present.
func (b MethodSetBuilder) Add(name string, t Type) bool {
	if _, exists := b.b.Get(name); exists {
		return false
	}
	b.b.Set(name, t)
	return true
}

// Set the function-type for a member name, replacing any existing entry.
func (b MethodSetBuilder) Set(name string, t Type) MethodSetBuilder {
	b.b.Set(name, t)
	return b
}

// Finalize the builder into an immutable set.
func (b MethodSetBuilder) Build() MethodSet {
	if b.b == nil {
		return EmptyMethodSet
	}
	return MethodSet{b.b.Map()}
}
