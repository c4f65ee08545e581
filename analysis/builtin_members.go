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
	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/construct"
	"github.com/wdamron/polyclass/types"
)

// typeEngine is the part of the type-system needed to define built-in members.
type typeEngine interface {
	construct.Factory
	TypeClassInfo(types.TypeClass) (types.TypeClassInfo, error)
}

// MemberDelta is the annotation change produced by defining one built-in member.
type MemberDelta struct {
	TypeClass types.TypeClass
	Name      string
	Signature types.Type
	// Operator is ast.Illegal if the member is not bound to an operator.
	Operator ast.Token
}

type definer func(ts typeEngine, tc types.TypeClass, tok ast.Token, name string) (MemberDelta, error)

// defineSelfResult defines a member whose result is the class's own type-variable 'a.
// Without an operator the member converts an integer literal: `integer -> 'a`.
// With an operator the member is binary: `('a, 'a) -> 'a`.
func defineSelfResult(ts typeEngine, tc types.TypeClass, tok ast.Token, name string) (MemberDelta, error) {
	info, err := ts.TypeClassInfo(tc)
	if err != nil {
		return MemberDelta{}, err
	}
	self := info.TypeVariable
	domain := construct.Const(ts, types.Integer)
	if tok != ast.Illegal {
		domain = construct.Tuple(ts, self, self)
	}
	return MemberDelta{TypeClass: tc, Name: name, Signature: construct.Function(ts, domain, self), Operator: tok}, nil
}

// defineBoolResult defines a binary comparison: `('a, 'a) -> bool`.
func defineBoolResult(ts typeEngine, tc types.TypeClass, tok ast.Token, name string) (MemberDelta, error) {
	info, err := ts.TypeClassInfo(tc)
	if err != nil {
		return MemberDelta{}, err
	}
	signature := construct.Binary(ts, info.TypeVariable, construct.Const(ts, types.Bool))
	return MemberDelta{TypeClass: tc, Name: name, Signature: signature, Operator: tok}, nil
}

type builtinMember struct {
	Class  BuiltinClass
	Token  ast.Token
	Name   string
	define definer
}

// Each built-in class has exactly one member.
var builtinMembers = []builtinMember{
	{BuiltinInteger, ast.Illegal, "fromInteger", defineSelfResult},

	{BuiltinMul, ast.Mul, "mul", defineSelfResult},
	{BuiltinAdd, ast.Add, "add", defineSelfResult},

	{BuiltinEqual, ast.Equal, "eq", defineBoolResult},
	{BuiltinLess, ast.LessThan, "lt", defineBoolResult},
	{BuiltinLessOrEqual, ast.LessThanOrEqual, "leq", defineBoolResult},
	{BuiltinGreater, ast.GreaterThan, "gt", defineBoolResult},
	{BuiltinGreaterOrEqual, ast.GreaterThanOrEqual, "geq", defineBoolResult},
}

// merge applies a delta. The member replaces any existing members of the class; an operator
// may only be bound once.
func (g *TypeClassMemberRegistrationGlobalAnnotation) merge(d MemberDelta) {
	if d.Operator != ast.Illegal {
		existing, bound := g.Operators[d.Operator]
		Assert(!bound, "operator %s is already bound to %v.%s", d.Operator, existing.TypeClass, existing.Name)
		g.Operators[d.Operator] = OperatorBinding{TypeClass: d.TypeClass, Name: d.Name}
	}
	g.TypeClassFunctions[d.TypeClass] = types.SingletonMethodSet(d.Name, d.Signature)
}
