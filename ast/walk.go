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

package ast

// Visitor is called for every node reached by Walk.
//
// Visit is called before the children of a node; if it returns false, the children are skipped.
// EndVisit is always called after the children, whether or not they were visited.
type Visitor interface {
	Visit(t *Tree, id NodeID) bool
	EndVisit(t *Tree, id NodeID)
}

// BaseVisitor visits every node and does nothing. Embed it to implement only the callbacks you need.
type BaseVisitor struct{}

func (BaseVisitor) Visit(*Tree, NodeID) bool { return true }
func (BaseVisitor) EndVisit(*Tree, NodeID)   {}

// Walk traverses the tree rooted at id in depth-first order. The type-variable of a type-class
// definition is visited before its members.
func Walk(t *Tree, id NodeID, v Visitor) {
	if id == InvalidNode {
		return
	}
	n := t.Node(id)
	if v.Visit(t, id) {
		switch n.Kind {
		case KindSourceUnit, KindFunctionDefinition, KindTypeClassInstantiation:
			walkList(t, n.Children, v)

		case KindTypeClassDefinition:
			Walk(t, n.TypeVariable, v)
			walkList(t, n.Children, v)

		case KindTypeVariableDeclaration, KindParameter:

		default:
			panic("unknown node kind: " + n.Kind.String())
		}
	}
	v.EndVisit(t, id)
}

func walkList(t *Tree, ids []NodeID, v Visitor) {
	for _, child := range ids {
		Walk(t, child, v)
	}
}

// WalkNodes calls f for every node of the tree rooted at id, parents before children.
func WalkNodes(t *Tree, id NodeID, f func(NodeID)) {
	Walk(t, id, funcVisitor(f))
}

type funcVisitor func(NodeID)

func (f funcVisitor) Visit(_ *Tree, id NodeID) bool { f(id); return true }
func (f funcVisitor) EndVisit(*Tree, NodeID)        {}
