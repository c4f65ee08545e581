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
	"github.com/pkg/errors"

	"github.com/wdamron/polyclass/internal/typeutil"
	"github.com/wdamron/polyclass/types"
)

var (
	// ErrInvalidTypeClass is returned when a type-class handle was not declared within a type-system.
	ErrInvalidTypeClass = errors.New("invalid type-class")
	// ErrTypeClassDeclared is returned when a type-class name is declared twice within a type-system.
	ErrTypeClassDeclared = errors.New("type-class is already declared")
)

// TypeSystem is the factory for types within a single analysis run: it applies type constructors,
// allocates fresh type-variables, and declares type-classes.
//
// A type-system cannot be used concurrently. Type-variables allocated by separate type-systems
// are always distinct.
type TypeSystem struct {
	vars        typeutil.VarTracker
	typeClasses []types.TypeClassInfo
	classNames  map[string]types.TypeClass
}

// Create an empty type-system.
func NewTypeSystem() *TypeSystem {
	return &TypeSystem{classNames: make(map[string]types.TypeClass)}
}

// Apply a type constructor to a list of argument types.
func (ts *TypeSystem) Type(ctor types.Constructor, args ...types.Type) types.Type {
	return types.NewApp(ctor, args...)
}

// Apply a primitive type constructor to a list of argument types.
func (ts *TypeSystem) Primitive(p types.PrimitiveType, args ...types.Type) types.Type {
	return types.NewApp(types.Primitive(p), args...)
}

// Allocate a type-variable with a unique id, qualified by the given sort.
func (ts *TypeSystem) FreshTypeVariable(sort types.Sort) *types.Var { return ts.vars.New(sort) }

// AllocatedVars returns every type-variable allocated by the type-system, in allocation order.
func (ts *TypeSystem) AllocatedVars() []*types.Var { return ts.vars.List().Slice() }

// Declare a type-class within the type-system. The class receives its own type-variable,
// constrained by the class itself, over which member signatures are written.
func (ts *TypeSystem) DeclareTypeClass(name string, builtin bool) (types.TypeClass, error) {
	if _, exists := ts.classNames[name]; exists {
		return types.TypeClass{}, errors.Wrapf(ErrTypeClassDeclared, "type-class %s", name)
	}
	tc := types.NewTypeClassHandle(len(ts.typeClasses))
	ts.typeClasses = append(ts.typeClasses, types.TypeClassInfo{
		Name:         name,
		TypeVariable: ts.FreshTypeVariable(types.NewSort(tc)),
		Builtin:      builtin,
	})
	ts.classNames[name] = tc
	return tc, nil
}

// Get the declaration of a type-class.
func (ts *TypeSystem) TypeClassInfo(tc types.TypeClass) (types.TypeClassInfo, error) {
	if !tc.Valid() || tc.Index() >= len(ts.typeClasses) {
		return types.TypeClassInfo{}, errors.Wrapf(ErrInvalidTypeClass, "handle %v", tc)
	}
	return ts.typeClasses[tc.Index()], nil
}

// Lookup a declared type-class by name.
func (ts *TypeSystem) LookupTypeClass(name string) (types.TypeClass, bool) {
	tc, ok := ts.classNames[name]
	return tc, ok
}

// TypeClasses returns the handles of all declared type-classes, in declaration order.
func (ts *TypeSystem) TypeClasses() []types.TypeClass {
	out := make([]types.TypeClass, len(ts.typeClasses))
	for i := range ts.typeClasses {
		out[i] = types.NewTypeClassHandle(i)
	}
	return out
}

// TypeClassName returns the declared name of a type-class, or the printed handle if it was not declared.
func (ts *TypeSystem) TypeClassName(tc types.TypeClass) string {
	info, err := ts.TypeClassInfo(tc)
	if err != nil {
		return tc.String()
	}
	return info.Name
}

// TypeString prints a type, naming constrained type-variables by their declared type-classes.
func (ts *TypeSystem) TypeString(t types.Type) string {
	return types.TypeStringWithNames(t, ts.TypeClassName)
}
