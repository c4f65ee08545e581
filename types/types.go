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

// Type is the base interface for all types.
//
// Types are immutable once constructed and are compared structurally with Equal.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*App)(nil)
)

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return "App" }

// PrimitiveType enumerates the type constructors known to every type-system.
type PrimitiveType uint8

const (
	Void PrimitiveType = iota
	// Function is applied to exactly two arguments: the domain and the codomain.
	Function
	// Tuple is applied to any number of ordered element types.
	Tuple
	Unit
	Bool
	Integer
	Word
)

var primitiveNames = [...]string{
	Void:     "void",
	Function: "fun",
	Tuple:    "tuple",
	Unit:     "unit",
	Bool:     "bool",
	Integer:  "integer",
	Word:     "word",
}

func (p PrimitiveType) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "<invalid-primitive>"
}

// Constructor identifies a type constructor: either a primitive or a constructor declared by the user.
//
// Constructors are comparable and may be used as map keys.
type Constructor struct {
	Primitive PrimitiveType
	// Name is set for user-declared constructors only.
	Name string
}

// Primitive returns the constructor for a primitive type.
func Primitive(p PrimitiveType) Constructor { return Constructor{Primitive: p} }

// Declared returns the constructor for a user-declared type.
func Declared(name string) Constructor { return Constructor{Name: name} }

// IsPrimitive reports whether c is the constructor for primitive p.
func (c Constructor) IsPrimitive(p PrimitiveType) bool { return c.Name == "" && c.Primitive == p }

func (c Constructor) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Primitive.String()
}

// Type application: `fun(integer, 'a)`, `tuple('a, 'a)`, `bool`
type App struct {
	Constructor Constructor
	Args        TypeList
}

// Create a type application. The argument list is copied into an immutable list.
func NewApp(ctor Constructor, args ...Type) *App {
	return &App{Constructor: ctor, Args: NewTypeList(args...)}
}

// Arity returns the number of arguments the constructor is applied to.
func (t *App) Arity() int { return t.Args.Len() }

// Arg returns the argument at index i.
func (t *App) Arg(i int) Type { return t.Args.Get(i) }

// Equal reports whether two types are structurally equal. Type-variables are equal only to themselves.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		bv, ok := b.(*Var)
		return ok && a.Id() == bv.Id()
	case *App:
		bapp, ok := b.(*App)
		if !ok || a.Constructor != bapp.Constructor || a.Arity() != bapp.Arity() {
			return false
		}
		equal := true
		a.Args.Range(func(i int, t Type) bool {
			equal = Equal(t, bapp.Arg(i))
			return equal
		})
		return equal
	case nil:
		return b == nil
	}
	return false
}

// Vars returns the type-variables occurring in t, in order of first occurrence.
func Vars(t Type) []*Var {
	var (
		vars []*Var
		seen = make(map[uint64]bool)
	)
	var visit func(Type)
	visit = func(t Type) {
		switch t := t.(type) {
		case *Var:
			if !seen[t.Id()] {
				seen[t.Id()] = true
				vars = append(vars, t)
			}
		case *App:
			t.Args.Range(func(_ int, arg Type) bool {
				visit(arg)
				return true
			})
		}
	}
	visit(t)
	return vars
}
