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

	"github.com/pkg/errors"

	"github.com/wdamron/polyclass"
	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/diag"
	"github.com/wdamron/polyclass/internal/log"
)

const typeClassRedeclaredError diag.ErrorID = 4767

// TypeClassRegistration declares built-in and user-defined type-classes in the type-system and
// annotates each type-class definition with its handle.
type TypeClassRegistration struct {
	ast.BaseVisitor
	analysis *Analysis
	logger   *slog.Logger
}

// Create the pass. Every built-in class is declared immediately.
func NewTypeClassRegistration(a *Analysis) *TypeClassRegistration {
	r := &TypeClassRegistration{analysis: a, logger: log.Section(a.Logger(), "analysis.registration")}
	ts, builtins := a.TypeSystem(), a.TypeClassRegistrationGlobal().BuiltinClasses
	for _, b := range BuiltinClasses() {
		tc, err := ts.DeclareTypeClass(b.Name(), true)
		if err != nil {
			Fail("declaring built-in type-class %v: %v", b, err)
		}
		builtins[b] = tc
		r.logger.Debug("declared built-in type-class", "class", b.Name(), "handle", tc)
	}
	return r
}

// Analyze registers every type-class definition in the tree and reports whether no errors were found.
func (r *TypeClassRegistration) Analyze(t *ast.Tree, root ast.NodeID) bool {
	ast.Walk(t, root, r)
	return !r.analysis.Reporter().HasErrors()
}

func (r *TypeClassRegistration) Visit(t *ast.Tree, id ast.NodeID) bool {
	n := t.Node(id)
	if n.Kind != ast.KindTypeClassDefinition {
		return true
	}
	tc, err := r.analysis.TypeSystem().DeclareTypeClass(n.Name, false)
	switch {
	case errors.Cause(err) == polyclass.ErrTypeClassDeclared:
		r.analysis.Reporter().DeclarationError(typeClassRedeclaredError, n.Location, "Type class "+n.Name+" already declared.")
		return false
	case err != nil:
		Fail("declaring type-class %s: %v", n.Name, err)
	}
	r.analysis.TypeClassRegistration(id).TypeClass = tc
	r.logger.Debug("declared type-class", "class", n.Name, "handle", tc, "location", n.Location)
	return true
}
