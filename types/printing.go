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

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		p := &typePrinter{
			idNames: make(map[uint64]string, 16),
			preds:   make(map[uint64][]string, 16),
		}
		p.order = p._order[:0]
		return p
	},
}

func newTypePrinter(className func(TypeClass) string) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.className = className
	return p
}

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	for k := range p.preds {
		delete(p.preds, k)
	}
	p.order = p._order[:0]
	p.className = nil
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type. Type-classes in sorts are printed by handle.
func TypeString(t Type) string { return TypeStringWithNames(t, nil) }

// TypeStringWithNames returns a string representation of a Type, naming the type-classes
// of constrained type-variables with className.
//
// Type-variables are named in order of first occurrence: `('a, 'a) -> bool`
func TypeStringWithNames(t Type, className func(TypeClass) string) string {
	if className == nil {
		className = TypeClass.String
	}
	p := newTypePrinter(className)
	typeString(p, false, t)
	if len(p.preds) == 0 {
		s := p.sb.String()
		p.Release()
		return s
	}

	order := p.order
	for id := range p.preds {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return p.idNames[order[i]] < p.idNames[order[j]] })
	var sb strings.Builder
	multiplePreds := len(order) > 1 || len(p.preds[order[0]]) > 1
	if multiplePreds {
		sb.WriteByte('(')
	}
	for i, id := range order {
		if i > 0 {
			sb.WriteString(", ")
		}
		idName := p.idNames[id]
		for j, pred := range p.preds[id] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(pred)
			sb.WriteByte(' ')
			sb.WriteString(idName)
		}
	}
	if multiplePreds {
		sb.WriteByte(')')
	}

	sb.WriteString(" => ")
	sb.WriteString(p.sb.String())
	p.Release()
	return sb.String()
}

type typePrinter struct {
	idNames   map[uint64]string
	preds     map[uint64][]string
	order     []uint64
	_order    [16]uint64
	className func(TypeClass) string
	sb        strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(uint(i))
	}
}

func getVarName(i uint) string {
	if i < uint(len(_names)) && _names[i] != "" {
		return _names[i]
	}
	if i >= 26 {
		return "'" + string(rune(97+i%26)) + strconv.Itoa(int(i/26))
	}
	return "'" + string(rune(97+i%26))
}

func (p *typePrinter) nextName() string {
	return getVarName(uint(len(p.idNames)))
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		if name, ok := p.idNames[t.Id()]; ok {
			p.sb.WriteString(name)
			return
		}
		name := p.nextName()
		p.idNames[t.Id()] = name
		p.sb.WriteString(name)
		if t.Sort().Empty() {
			return
		}
		preds := make([]string, 0, t.Sort().Len())
		for _, tc := range t.Sort().Classes() {
			preds = append(preds, p.className(tc))
		}
		p.preds[t.Id()] = preds

	case *App:
		switch {
		case t.Constructor.IsPrimitive(Function) && t.Arity() == 2:
			if simple {
				p.sb.WriteByte('(')
			}
			typeString(p, true, t.Arg(0))
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Arg(1))
			if simple {
				p.sb.WriteByte(')')
			}

		case t.Constructor.IsPrimitive(Tuple):
			p.sb.WriteByte('(')
			t.Args.Range(func(i int, arg Type) bool {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
				return true
			})
			p.sb.WriteByte(')')

		default:
			p.sb.WriteString(t.Constructor.String())
			if t.Arity() == 0 {
				return
			}
			p.sb.WriteByte('(')
			t.Args.Range(func(i int, arg Type) bool {
				if i > 0 {
					p.sb.WriteString(", ")
				}
				typeString(p, false, arg)
				return true
			})
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
