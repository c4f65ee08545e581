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

import (
	"strconv"
)

// NodeID indexes a node within a Tree.
type NodeID int32

// InvalidNode is the NodeID of an absent node.
const InvalidNode NodeID = -1

// Kind is the syntax-type of a node. The set of kinds is closed.
type Kind uint8

const (
	KindInvalid Kind = iota
	// Source unit: the root of a program
	KindSourceUnit
	// Type-class definition: `class Self: Name { function f(x); ... }`
	KindTypeClassDefinition
	// Type-variable declaration: `Self` in a type-class definition
	KindTypeVariableDeclaration
	// Function definition: `function f(x, y)`
	KindFunctionDefinition
	// Parameter of a function definition
	KindParameter
	// Type-class instantiation: `instantiation T: Name { ... }`
	KindTypeClassInstantiation
)

var kindNames = [...]string{
	KindInvalid:                 "Invalid",
	KindSourceUnit:              "SourceUnit",
	KindTypeClassDefinition:     "TypeClassDefinition",
	KindTypeVariableDeclaration: "TypeVariableDeclaration",
	KindFunctionDefinition:      "FunctionDefinition",
	KindParameter:               "Parameter",
	KindTypeClassInstantiation:  "TypeClassInstantiation",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a tagged variant over all syntax-types. Which fields are meaningful depends on Kind:
//
//   SourceUnit:              Children are top-level definitions
//   TypeClassDefinition:     Name, TypeVariable, Children are member function definitions
//   TypeVariableDeclaration: Name
//   FunctionDefinition:      Name, Children are parameters
//   Parameter:               Name
//   TypeClassInstantiation:  Name (the class), Children are function definitions
type Node struct {
	Kind     Kind
	Name     string
	Location Location
	// TypeVariable is set for type-class definitions only.
	TypeVariable NodeID
	Children     []NodeID
}

// Tree is an arena of nodes. Nodes are addressed by NodeID and are never removed.
//
// A tree cannot be modified concurrently.
type Tree struct {
	nodes []Node
}

// Create an empty tree.
func NewTree() *Tree { return &Tree{} }

// Add a node to the tree and return its id.
func (t *Tree) Add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Get a node. Panics if id does not belong to the tree.
func (t *Tree) Node(id NodeID) *Node {
	if !t.Has(id) {
		panic("ast: invalid node id " + strconv.Itoa(int(id)))
	}
	return &t.nodes[id]
}

// Has reports whether id belongs to the tree.
func (t *Tree) Has(id NodeID) bool { return id >= 0 && int(id) < len(t.nodes) }

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Kind returns the syntax-type of a node.
func (t *Tree) Kind(id NodeID) Kind { return t.Node(id).Kind }
