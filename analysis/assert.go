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
	"github.com/pkg/errors"
)

// InternalError signals a broken invariant between passes, such as a pass running before the
// pass it depends on. It is raised as a panic and is never reported as a diagnostic.
type InternalError struct {
	err error
}

func (e *InternalError) Error() string { return "internal error: " + e.err.Error() }

// Cause returns the underlying error, which carries the stack trace of the failed assertion.
func (e *InternalError) Cause() error { return e.err }

func (e *InternalError) Unwrap() error { return e.err }

// Fail panics with an *InternalError.
func Fail(format string, args ...interface{}) {
	panic(&InternalError{errors.Errorf(format, args...)})
}

// Assert panics with an *InternalError if cond is false.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		Fail(format, args...)
	}
}

// Recover converts a panic carrying an *InternalError into an error stored in errp.
// Other panics are propagated. Recover must be called directly by a deferred statement.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if ierr, ok := r.(*InternalError); ok {
		*errp = ierr
		return
	}
	panic(r)
}
