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

package diag

import (
	"sort"

	"github.com/wdamron/polyclass/ast"
)

// DefaultLimit is the number of diagnostics a Reporter records when no limit is given.
const DefaultLimit = 256

// Reporter accumulates diagnostics for a single analysis run.
//
// When the limit is reached further diagnostics are counted but not recorded;
// HasErrors still reflects every reported error.
//
// A reporter cannot be used concurrently.
type Reporter struct {
	records    []Error
	limit      int
	errorCount int
	dropped    int
}

// Create a reporter which records at most limit diagnostics. A limit <= 0 selects DefaultLimit.
func NewReporter(limit int) *Reporter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Reporter{limit: limit}
}

// Report records a diagnostic.
func (r *Reporter) Report(e Error) {
	if e.IsError() {
		r.errorCount++
	}
	if len(r.records) >= r.limit {
		r.dropped++
		return
	}
	r.records = append(r.records, e)
}

func (r *Reporter) DeclarationError(id ErrorID, loc ast.Location, msg string) {
	r.Report(Error{Type: DeclarationError, ID: id, Location: loc, Message: msg})
}

func (r *Reporter) TypeError(id ErrorID, loc ast.Location, msg string) {
	r.Report(Error{Type: TypeError, ID: id, Location: loc, Message: msg})
}

// FatalTypeError records a type error which invalidates the enclosing definition.
// Unlike a panic, it does not interrupt the caller.
func (r *Reporter) FatalTypeError(id ErrorID, loc ast.Location, msg string) {
	r.Report(Error{Type: TypeError, ID: id, Location: loc, Message: msg, Fatal: true})
}

func (r *Reporter) Warning(id ErrorID, loc ast.Location, msg string) {
	r.Report(Error{Type: Warning, ID: id, Location: loc, Message: msg})
}

// HasErrors reports whether any error (not warning) has been reported.
func (r *Reporter) HasErrors() bool { return r.errorCount > 0 }

// ErrorCount returns the number of errors reported, including dropped errors.
func (r *Reporter) ErrorCount() int { return r.errorCount }

// Dropped returns the number of diagnostics reported after the limit was reached.
func (r *Reporter) Dropped() int { return r.dropped }

// Len returns the number of recorded diagnostics.
func (r *Reporter) Len() int { return len(r.records) }

// Errors returns a copy of the recorded diagnostics, in reporting order.
func (r *Reporter) Errors() []Error {
	out := make([]Error, len(r.records))
	copy(out, r.records)
	return out
}

// Sorted returns a copy of the recorded diagnostics ordered by source, position, then code.
func (r *Reporter) Sorted() []Error {
	out := r.Errors()
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := out[i].Location, out[j].Location
		if li.Source != lj.Source {
			return li.Source < lj.Source
		}
		if li.Start != lj.Start {
			return li.Start < lj.Start
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.Column != lj.Column {
			return li.Column < lj.Column
		}
		return out[i].ID < out[j].ID
	})
	return out
}
