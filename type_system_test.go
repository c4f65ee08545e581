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

package polyclass

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/wdamron/polyclass/types"
)

func TestFreshTypeVariablesAreUnique(t *testing.T) {
	ts := NewTypeSystem()
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		tv := ts.FreshTypeVariable(types.Sort{})
		if seen[tv.Id()] {
			t.Fatalf("type-variable id %d allocated twice", tv.Id())
		}
		seen[tv.Id()] = true
	}
	if n := len(ts.AllocatedVars()); n != 100 {
		t.Fatalf("expected 100 tracked variables, found %d", n)
	}
}

func TestFreshTypeVariablesAcrossTypeSystems(t *testing.T) {
	first, second := NewTypeSystem(), NewTypeSystem()
	for i := 0; i < 10; i++ {
		first.FreshTypeVariable(types.Sort{})
		second.FreshTypeVariable(types.Sort{})
	}
	ids := make(map[uint64]bool)
	for _, tv := range first.AllocatedVars() {
		ids[tv.Id()] = true
	}
	for _, tv := range second.AllocatedVars() {
		if ids[tv.Id()] {
			t.Fatalf("type-variable id %d allocated by both type-systems", tv.Id())
		}
	}
}

func TestAllocatedVarsOrder(t *testing.T) {
	ts := NewTypeSystem()
	a := ts.FreshTypeVariable(types.Sort{})
	b := ts.FreshTypeVariable(types.Sort{})
	vars := ts.AllocatedVars()
	if len(vars) != 2 || vars[0] != a || vars[1] != b {
		t.Fatalf("expected allocation order")
	}
}

func TestDeclareTypeClass(t *testing.T) {
	ts := NewTypeSystem()

	add, err := ts.DeclareTypeClass("Add", true)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := ts.DeclareTypeClass("Eq", false)
	if err != nil {
		t.Fatal(err)
	}
	if add == eq {
		t.Fatalf("expected distinct handles")
	}

	info, err := ts.TypeClassInfo(add)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name != "Add" || !info.Builtin || !info.TypeVariable.HasConstraint(add) {
		t.Fatalf("unexpected info: %v", info)
	}
	if s := ts.TypeString(info.TypeVariable); s != "Add 'a => 'a" {
		t.Fatalf("type: %s", s)
	}

	if _, err := ts.DeclareTypeClass("Add", false); errors.Cause(err) != ErrTypeClassDeclared {
		t.Fatalf("expected redeclaration error, found %v", err)
	}
	if tc, ok := ts.LookupTypeClass("Eq"); !ok || tc != eq {
		t.Fatalf("lookup failed")
	}
	if classes := ts.TypeClasses(); len(classes) != 2 || classes[0] != add || classes[1] != eq {
		t.Fatalf("unexpected classes: %v", classes)
	}
}

func TestInvalidTypeClass(t *testing.T) {
	ts := NewTypeSystem()
	if _, err := ts.TypeClassInfo(types.TypeClass{}); errors.Cause(err) != ErrInvalidTypeClass {
		t.Fatalf("expected invalid handle error, found %v", err)
	}
	other := NewTypeSystem()
	tc, _ := other.DeclareTypeClass("Foreign", false)
	if _, err := ts.TypeClassInfo(tc); errors.Cause(err) != ErrInvalidTypeClass {
		t.Fatalf("expected invalid handle error, found %v", err)
	}
	if name := ts.TypeClassName(tc); name != "class#0" {
		t.Fatalf("name: %s", name)
	}
}
