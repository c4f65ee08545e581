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

// Package fixture loads program descriptions written in YAML and builds syntax trees from them.
//
// A description lists top-level definitions in source order:
//
//	source: arith.sol
//	definitions:
//	  - class: Arith
//	    typeVariable: T
//	    at: "1:1"
//	    functions:
//	      - name: add
//	        params: [x, y]
//	        at: "2:5"
//	  - instantiation: Arith
//	    functions:
//	      - name: add
//	        params: [x, y]
//	  - function: twice
//	    params: [x]
package fixture

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wdamron/polyclass/ast"
	"github.com/wdamron/polyclass/construct"
)

// Program is a program description.
type Program struct {
	// Source names the described source file in locations. Defaults to the fixture's path.
	Source      string       `yaml:"source,omitempty"`
	Definitions []Definition `yaml:"definitions"`
}

// Definition is a top-level definition. Exactly one of Class, Instantiation and Function is set.
type Definition struct {
	Class         string `yaml:"class,omitempty"`
	Instantiation string `yaml:"instantiation,omitempty"`
	Function      string `yaml:"function,omitempty"`

	// TypeVariable is the class's type-variable. Only valid with Class.
	TypeVariable string `yaml:"typeVariable,omitempty"`
	// Params are the parameters of a free function. Only valid with Function.
	Params []string `yaml:"params,omitempty"`
	// Functions are the members of a class or instantiation.
	Functions []Function `yaml:"functions,omitempty"`

	At Position `yaml:"at,omitempty"`
}

// Function is a member function of a class or instantiation.
type Function struct {
	Name   string   `yaml:"name"`
	Params []string `yaml:"params,omitempty"`
	At     Position `yaml:"at,omitempty"`
}

// Position is a 1-based line and column, written "line:column" or "line".
type Position struct {
	Line   int
	Column int
}

func (p *Position) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: position must be a scalar", value.Line)
	}
	line, column, hasColumn := strings.Cut(value.Value, ":")
	var err error
	if p.Line, err = strconv.Atoi(line); err != nil || p.Line < 1 {
		return errors.Errorf("line %d: invalid position %q", value.Line, value.Value)
	}
	p.Column = 1
	if hasColumn {
		if p.Column, err = strconv.Atoi(column); err != nil || p.Column < 1 {
			return errors.Errorf("line %d: invalid position %q", value.Line, value.Value)
		}
	}
	return nil
}

func (p Position) MarshalYAML() (interface{}, error) {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column), nil
}

// Load reads and parses the program description at path.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading fixture")
	}
	prog, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fixture %s", path)
	}
	if prog.Source == "" {
		prog.Source = path
	}
	return prog, nil
}

// Parse parses and validates a program description. Unknown fields are rejected.
// An empty description is an empty program.
func Parse(data []byte) (*Program, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	prog := new(Program)
	if err := dec.Decode(prog); err != nil && err != io.EOF {
		return nil, err
	}
	if err := prog.validate(); err != nil {
		return nil, err
	}
	return prog, nil
}

func (prog *Program) validate() error {
	for i, def := range prog.Definitions {
		set := 0
		for _, name := range []string{def.Class, def.Instantiation, def.Function} {
			if name != "" {
				set++
			}
		}
		if set != 1 {
			return errors.Errorf("definition %d: exactly one of class, instantiation and function must be set", i)
		}
		if def.Class == "" && def.TypeVariable != "" {
			return errors.Errorf("definition %d: typeVariable is only valid for a class", i)
		}
		if def.Function == "" && len(def.Params) != 0 {
			return errors.Errorf("definition %d: params are only valid for a function", i)
		}
		if def.Function != "" && len(def.Functions) != 0 {
			return errors.Errorf("definition %d: a function has no members", i)
		}
		for j, fn := range def.Functions {
			if fn.Name == "" {
				return errors.Errorf("definition %d, function %d: missing name", i, j)
			}
		}
	}
	return nil
}

// Build adds the program to t and returns the id of its source unit.
func (prog *Program) Build(t *ast.Tree) ast.NodeID {
	defs := make([]ast.NodeID, 0, len(prog.Definitions))
	for _, def := range prog.Definitions {
		var id ast.NodeID
		switch {
		case def.Class != "":
			typeVar := def.TypeVariable
			if typeVar == "" {
				typeVar = "Self"
			}
			id = construct.ClassDefAt(t, prog.location(def.At), def.Class, typeVar, prog.functions(t, def.Functions)...)
		case def.Instantiation != "":
			id = construct.Instantiation(t, def.Instantiation, prog.functions(t, def.Functions)...)
		default:
			id = construct.FuncDefAt(t, prog.location(def.At), def.Function, def.Params...)
		}
		defs = append(defs, id)
	}
	return construct.SourceUnit(t, defs...)
}

func (prog *Program) functions(t *ast.Tree, fns []Function) []ast.NodeID {
	ids := make([]ast.NodeID, len(fns))
	for i, fn := range fns {
		ids[i] = construct.FuncDefAt(t, prog.location(fn.At), fn.Name, fn.Params...)
	}
	return ids
}

func (prog *Program) location(p Position) ast.Location {
	return ast.Location{Source: prog.Source, Line: p.Line, Column: p.Column}
}
