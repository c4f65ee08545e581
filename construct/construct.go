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

package construct

import (
	"github.com/wdamron/polyclass/types"
)

// Factory applies primitive type constructors. *polyclass.TypeSystem implements Factory.
type Factory interface {
	Primitive(p types.PrimitiveType, args ...types.Type) types.Type
}

// Function type: `domain -> codomain`
func Function(f Factory, domain, codomain types.Type) types.Type {
	return f.Primitive(types.Function, domain, codomain)
}

// Tuple type: `(a, b, c)`
//
// Tuples of zero or one element are legal. A tuple of one element is distinct from the element itself.
func Tuple(f Factory, elems ...types.Type) types.Type {
	return f.Primitive(types.Tuple, elems...)
}

// Type constant: `bool`, `integer`, etc
func Const(f Factory, p types.PrimitiveType) types.Type {
	return f.Primitive(p)
}

// Binary function type over a single type: `(a, a) -> ret`
func Binary(f Factory, operand, ret types.Type) types.Type {
	return Function(f, Tuple(f, operand, operand), ret)
}

// Decompositions:

// IsFunction reports whether t is a function type.
func IsFunction(t types.Type) bool {
	app, ok := t.(*types.App)
	return ok && app.Constructor.IsPrimitive(types.Function) && app.Arity() == 2
}

// IsTuple reports whether t is a tuple type.
func IsTuple(t types.Type) bool {
	app, ok := t.(*types.App)
	return ok && app.Constructor.IsPrimitive(types.Tuple)
}

// DestFunction returns the domain and codomain of a function type.
func DestFunction(t types.Type) (domain, codomain types.Type, ok bool) {
	if !IsFunction(t) {
		return nil, nil, false
	}
	app := t.(*types.App)
	return app.Arg(0), app.Arg(1), true
}

// DestTuple returns the ordered element types of a tuple type.
func DestTuple(t types.Type) ([]types.Type, bool) {
	if !IsTuple(t) {
		return nil, false
	}
	return t.(*types.App).Args.Slice(), true
}

// DestBinary returns the operand and result types of a binary function type built by Binary.
func DestBinary(t types.Type) (operand, ret types.Type, ok bool) {
	domain, ret, ok := DestFunction(t)
	if !ok {
		return nil, nil, false
	}
	elems, ok := DestTuple(domain)
	if !ok || len(elems) != 2 || !types.Equal(elems[0], elems[1]) {
		return nil, nil, false
	}
	return elems[0], ret, true
}
