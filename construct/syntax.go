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
	"github.com/wdamron/polyclass/ast"
)

// Syntax:

// Source unit containing top-level definitions
func SourceUnit(t *ast.Tree, defs ...ast.NodeID) ast.NodeID {
	return t.Add(ast.Node{Kind: ast.KindSourceUnit, TypeVariable: ast.InvalidNode, Children: defs})
}

// Type-class definition: `class Self: Name { function f(x); ... }`
func ClassDef(t *ast.Tree, name, typeVar string, members ...ast.NodeID) ast.NodeID {
	return ClassDefAt(t, ast.Location{}, name, typeVar, members...)
}

// Type-class definition at a source location
func ClassDefAt(t *ast.Tree, loc ast.Location, name, typeVar string, members ...ast.NodeID) ast.NodeID {
	tv := t.Add(ast.Node{Kind: ast.KindTypeVariableDeclaration, Name: typeVar, Location: loc, TypeVariable: ast.InvalidNode})
	return t.Add(ast.Node{Kind: ast.KindTypeClassDefinition, Name: name, Location: loc, TypeVariable: tv, Children: members})
}

// Function definition: `function f(x, y)`
func FuncDef(t *ast.Tree, name string, params ...string) ast.NodeID {
	return FuncDefAt(t, ast.Location{}, name, params...)
}

// Function definition at a source location
func FuncDefAt(t *ast.Tree, loc ast.Location, name string, params ...string) ast.NodeID {
	var paramIds []ast.NodeID
	for _, param := range params {
		paramIds = append(paramIds, t.Add(ast.Node{Kind: ast.KindParameter, Name: param, Location: loc, TypeVariable: ast.InvalidNode}))
	}
	return t.Add(ast.Node{Kind: ast.KindFunctionDefinition, Name: name, Location: loc, TypeVariable: ast.InvalidNode, Children: paramIds})
}

// Type-class instantiation: `instantiation Name { function f(x); ... }`
func Instantiation(t *ast.Tree, className string, members ...ast.NodeID) ast.NodeID {
	return t.Add(ast.Node{Kind: ast.KindTypeClassInstantiation, Name: className, TypeVariable: ast.InvalidNode, Children: members})
}
