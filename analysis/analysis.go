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
	"github.com/wdamron/polyclass/diag"
	"github.com/wdamron/polyclass/internal/log"
	"github.com/wdamron/polyclass/types"
)

// Analysis is the context shared by the passes of a single analysis run: the type-system,
// the diagnostics reporter, and the annotations each pass writes for later passes.
//
// Node annotations are keyed by NodeID, so an analysis covers exactly one syntax tree.
// An analysis cannot be used concurrently or reused across runs.
type Analysis struct {
	typeSystem *polyclass.TypeSystem
	reporter   *diag.Reporter
	logger     *slog.Logger

	typeClassRegistration             map[ast.NodeID]*TypeClassRegistrationAnnotation
	typeClassRegistrationGlobal       TypeClassRegistrationGlobalAnnotation
	typeClassMemberRegistrationGlobal TypeClassMemberRegistrationGlobalAnnotation
}

// Create an analysis with a fresh type-system, reporting diagnostics to reporter.
func New(reporter *diag.Reporter) *Analysis {
	return &Analysis{
		typeSystem:            polyclass.NewTypeSystem(),
		reporter:              reporter,
		logger:                log.DefaultLogger,
		typeClassRegistration: make(map[ast.NodeID]*TypeClassRegistrationAnnotation),
		typeClassRegistrationGlobal: TypeClassRegistrationGlobalAnnotation{
			BuiltinClasses: make(map[BuiltinClass]types.TypeClass, numBuiltinClasses),
		},
		typeClassMemberRegistrationGlobal: TypeClassMemberRegistrationGlobalAnnotation{
			TypeClassFunctions: make(map[types.TypeClass]types.MethodSet),
			Operators:          make(map[ast.Token]OperatorBinding),
		},
	}
}

// SetLogger replaces the logger used by passes created afterwards.
func (a *Analysis) SetLogger(l *slog.Logger) { a.logger = l }

func (a *Analysis) TypeSystem() *polyclass.TypeSystem { return a.typeSystem }
func (a *Analysis) Reporter() *diag.Reporter          { return a.reporter }
func (a *Analysis) Logger() *slog.Logger              { return a.logger }

// TypeClassRegistrationAnnotation is written by TypeClassRegistration for each type-class definition.
type TypeClassRegistrationAnnotation struct {
	// TypeClass is the zero handle until the definition has been registered.
	TypeClass types.TypeClass
}

// TypeClassRegistrationGlobalAnnotation is written by TypeClassRegistration when it is created.
type TypeClassRegistrationGlobalAnnotation struct {
	BuiltinClasses map[BuiltinClass]types.TypeClass
}

// OperatorBinding names the type-class method an operator token resolves to.
type OperatorBinding struct {
	TypeClass types.TypeClass
	Name      string
}

// TypeClassMemberRegistrationGlobalAnnotation is written by TypeClassMemberRegistration and read by type inference.
type TypeClassMemberRegistrationGlobalAnnotation struct {
	// TypeClassFunctions maps each type-class to the signatures of its members.
	TypeClassFunctions map[types.TypeClass]types.MethodSet
	// Operators maps operator tokens to built-in type-class members.
	Operators map[ast.Token]OperatorBinding
}

// TypeClassRegistration returns the registration annotation of a node, creating an empty annotation if needed.
func (a *Analysis) TypeClassRegistration(id ast.NodeID) *TypeClassRegistrationAnnotation {
	ann, ok := a.typeClassRegistration[id]
	if !ok {
		ann = &TypeClassRegistrationAnnotation{}
		a.typeClassRegistration[id] = ann
	}
	return ann
}

func (a *Analysis) TypeClassRegistrationGlobal() *TypeClassRegistrationGlobalAnnotation {
	return &a.typeClassRegistrationGlobal
}

func (a *Analysis) TypeClassMemberRegistrationGlobal() *TypeClassMemberRegistrationGlobalAnnotation {
	return &a.typeClassMemberRegistrationGlobal
}
