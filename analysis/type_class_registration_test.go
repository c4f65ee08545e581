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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/construct"
	"github.com/wdamron/polyclass/diag"
)

func TestBuiltinClassRegistration(t *testing.T) {
	a := New(diag.NewReporter(0))
	NewTypeClassRegistration(a)

	builtins := a.TypeClassRegistrationGlobal().BuiltinClasses
	require.Len(t, builtins, len(BuiltinClasses()))
	for _, b := range BuiltinClasses() {
		tc := builtins[b]
		require.True(t, tc.Valid(), "built-in class %v", b)
		info, err := a.TypeSystem().TypeClassInfo(tc)
		require.NoError(t, err)
		assert.Equal(t, b.Name(), info.Name)
		assert.True(t, info.Builtin)
		assert.True(t, info.TypeVariable.HasConstraint(tc))

		found, ok := a.TypeSystem().LookupTypeClass(b.Name())
		assert.True(t, ok)
		assert.Equal(t, tc, found)
	}
}

func TestUserClassRegistration(t *testing.T) {
	a := New(diag.NewReporter(0))
	tree := ast.NewTree()
	eq := construct.ClassDef(tree, "Eq", "T", construct.FuncDef(tree, "eq", "x", "y"))
	ord := construct.ClassDef(tree, "Ord", "T")
	root := construct.SourceUnit(tree, eq, ord)

	require.True(t, NewTypeClassRegistration(a).Analyze(tree, root))

	for _, id := range []ast.NodeID{eq, ord} {
		tc := a.TypeClassRegistration(id).TypeClass
		require.True(t, tc.Valid())
		info, err := a.TypeSystem().TypeClassInfo(tc)
		require.NoError(t, err)
		assert.Equal(t, tree.Node(id).Name, info.Name)
		assert.False(t, info.Builtin)
	}
	assert.NotEqual(t, a.TypeClassRegistration(eq).TypeClass, a.TypeClassRegistration(ord).TypeClass)
}

func TestClassRedeclared(t *testing.T) {
	a := New(diag.NewReporter(0))
	tree := ast.NewTree()
	at := ast.Location{Source: "test.sol", Line: 7, Column: 1}
	first := construct.ClassDef(tree, "Eq", "T", construct.FuncDef(tree, "eq"))
	second := construct.ClassDefAt(tree, at, "Eq", "U", construct.FuncDef(tree, "eq"), construct.FuncDef(tree, "eq"))
	builtin := construct.ClassDef(tree, "Integer", "T")
	root := construct.SourceUnit(tree, first, second, builtin)

	assert.False(t, Run(a, tree, root))

	errs := a.Reporter().Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, diag.DeclarationError, errs[0].Type)
	assert.Equal(t, diag.ErrorID(4767), errs[0].ID)
	assert.Equal(t, at, errs[0].Location)
	assert.Equal(t, "Type class Eq already declared.", errs[0].Message)
	assert.Equal(t, "Type class Integer already declared.", errs[1].Message)

	assert.True(t, a.TypeClassRegistration(first).TypeClass.Valid())
	assert.False(t, a.TypeClassRegistration(second).TypeClass.Valid())
	assert.False(t, a.TypeClassRegistration(builtin).TypeClass.Valid())

	// member registration does not run after a failed registration
	assert.Empty(t, a.TypeClassMemberRegistrationGlobal().TypeClassFunctions)
}
