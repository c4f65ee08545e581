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
	"log/slog"

	"github.com/wdamron/polyclass"
	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/construct"
	"github.com/wdamron/polyclass/diag"
	"github.com/wdamron/polyclass/internal/log"
	"github.com/wdamron/polyclass/types"
)

const functionDeclaredMultipleTimesError diag.ErrorID = 3195

// TypeClassMemberRegistration records the member signatures of every type-class and binds
// operator tokens to built-in class members.
//
// Built-in classes receive concrete signatures when the pass is created. User-defined classes
// receive placeholder signatures, built from fresh type-variables, when the pass analyzes a tree.
// TypeClassRegistration must have been created (and must have analyzed the tree) first.
type TypeClassMemberRegistration struct {
	ast.BaseVisitor
	analysis   *Analysis
	typeSystem *polyclass.TypeSystem
	reporter   *diag.Reporter
	logger     *slog.Logger
	analyzed   bool
}

// Create the pass and define the members of every built-in class.
func NewTypeClassMemberRegistration(a *Analysis) *TypeClassMemberRegistration {
	r := &TypeClassMemberRegistration{
		analysis:   a,
		typeSystem: a.TypeSystem(),
		reporter:   a.Reporter(),
		logger:     log.Section(a.Logger(), "analysis.members"),
	}
	builtins := a.TypeClassRegistrationGlobal().BuiltinClasses
	for _, row := range builtinMembers {
		tc, ok := builtins[row.Class]
		Assert(ok, "built-in type-class %v is not registered", row.Class)
		delta, err := row.define(r.typeSystem, tc, row.Token, row.Name)
		if err != nil {
			Fail("defining member %s of built-in type-class %v: %v", row.Name, row.Class, err)
		}
		r.annotation().merge(delta)
		r.logger.Debug("defined built-in member", "class", row.Class.Name(), "member", row.Name,
			"type", r.typeSystem.TypeString(delta.Signature), "operator", row.Token)
	}
	return r
}

func (r *TypeClassMemberRegistration) annotation() *TypeClassMemberRegistrationGlobalAnnotation {
	return r.analysis.TypeClassMemberRegistrationGlobal()
}

// Analyze traverses the tree once and reports whether no errors have been reported.
// Analyze may only be called once.
func (r *TypeClassMemberRegistration) Analyze(t *ast.Tree, root ast.NodeID) bool {
	Assert(!r.analyzed, "type-class member registration has already analyzed a tree")
	r.analyzed = true
	ast.Walk(t, root, r)
	return !r.reporter.HasErrors()
}

// Type-class definitions are handled in EndVisit.
func (r *TypeClassMemberRegistration) Visit(t *ast.Tree, id ast.NodeID) bool {
	return t.Kind(id) != ast.KindTypeClassDefinition
}

func (r *TypeClassMemberRegistration) EndVisit(t *ast.Tree, id ast.NodeID) {
	n := t.Node(id)
	if n.Kind != ast.KindTypeClassDefinition {
		return
	}
	tc := r.analysis.TypeClassRegistration(id).TypeClass
	Assert(tc.Valid(), "type-class definition %s at %v has not been registered", n.Name, n.Location)

	ast.Walk(t, n.TypeVariable, r)

	functions := types.NewMethodSetBuilder()
	for _, member := range n.Children {
		fn := t.Node(member)
		Assert(fn.Kind == ast.KindFunctionDefinition, "unexpected %v in type-class %s", fn.Kind, n.Name)

		// The signature is refined against the declared parameters during inference.
		signature := construct.Function(r.typeSystem,
			r.typeSystem.FreshTypeVariable(types.Sort{}),
			r.typeSystem.FreshTypeVariable(types.Sort{}),
		)
		if !functions.Add(fn.Name, signature) {
			// TODO: add the location of the first declaration as a secondary location
			r.reporter.FatalTypeError(functionDeclaredMultipleTimesError, fn.Location, "Function in type class declared multiple times.")
			continue
		}
		r.logger.Debug("registered member", "class", n.Name, "member", fn.Name, "type", r.typeSystem.TypeString(signature))
	}

	r.annotation().TypeClassFunctions[tc] = functions.Build()
}
