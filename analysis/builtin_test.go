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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBuiltinClass(t *testing.T) {
	for _, b := range BuiltinClasses() {
		parsed, ok := ParseBuiltinClass(b.Name())
		assert.True(t, ok, "built-in class %v", b)
		assert.Equal(t, b, parsed)
	}

	_, ok := ParseBuiltinClass("Mul")
	assert.False(t, ok)
	_, ok = ParseBuiltinClass("")
	assert.False(t, ok)
}

func TestBuiltinClassNames(t *testing.T) {
	assert.Equal(t, "Integer", BuiltinInteger.Name())
	assert.Equal(t, "*", BuiltinMul.Name())
	assert.Equal(t, "Mul", BuiltinMul.String())
	assert.Equal(t, ">=", BuiltinGreaterOrEqual.Name())
	assert.Equal(t, "GreaterOrEqual", BuiltinGreaterOrEqual.String())
	assert.Equal(t, "", BuiltinClass(200).Name())
	assert.Equal(t, "BuiltinClass(200)", BuiltinClass(200).String())
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		Assert(1 > 2, "%d is not greater than %d", 1, 2)
	}()
	assert.EqualError(t, err, "internal error: 1 is not greater than 2")

	err = nil
	func() {
		defer Recover(&err)
		Assert(true, "unreachable")
	}()
	assert.NoError(t, err)

	assert.PanicsWithValue(t, "other", func() {
		var err error
		defer Recover(&err)
		panic("other")
	})
}
