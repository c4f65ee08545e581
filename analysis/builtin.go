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

package analysis

import (
	"strconv"
)

// BuiltinClass enumerates the type-classes predeclared by the type-system.
type BuiltinClass uint8

const (
	// Types constructible from integer literals
	BuiltinInteger BuiltinClass = iota
	BuiltinMul
	BuiltinAdd
	BuiltinEqual
	BuiltinLess
	BuiltinLessOrEqual
	BuiltinGreater
	BuiltinGreaterOrEqual

	numBuiltinClasses = iota
)

var builtinClassNames = [numBuiltinClasses]string{
	BuiltinInteger:        "Integer",
	BuiltinMul:            "*",
	BuiltinAdd:            "+",
	BuiltinEqual:          "==",
	BuiltinLess:           "<",
	BuiltinLessOrEqual:    "<=",
	BuiltinGreater:        ">",
	BuiltinGreaterOrEqual: ">=",
}

var builtinClassIdents = [numBuiltinClasses]string{
	BuiltinInteger:        "Integer",
	BuiltinMul:            "Mul",
	BuiltinAdd:            "Add",
	BuiltinEqual:          "Equal",
	BuiltinLess:           "Less",
	BuiltinLessOrEqual:    "LessOrEqual",
	BuiltinGreater:        "Greater",
	BuiltinGreaterOrEqual: "GreaterOrEqual",
}

// Name returns the name the class is declared with in the type-system.
func (b BuiltinClass) Name() string {
	if b >= numBuiltinClasses {
		return ""
	}
	return builtinClassNames[b]
}

func (b BuiltinClass) String() string {
	if b >= numBuiltinClasses {
		return "BuiltinClass(" + strconv.Itoa(int(b)) + ")"
	}
	return builtinClassIdents[b]
}

// ParseBuiltinClass returns the built-in class declared with the given name.
func ParseBuiltinClass(name string) (BuiltinClass, bool) {
	for b, n := range builtinClassNames {
		if n == name {
			return BuiltinClass(b), true
		}
	}
	return 0, false
}

// BuiltinClasses returns every built-in class, in declaration order.
func BuiltinClasses() []BuiltinClass {
	out := make([]BuiltinClass, numBuiltinClasses)
	for i := range out {
		out[i] = BuiltinClass(i)
	}
	return out
}
