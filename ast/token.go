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

// Token is an operator symbol which type-checking may resolve to a type-class method.
type Token uint8

const (
	Illegal Token = iota
	Add
	Sub
	Mul
	Div
	Mod
	Exp
	Equal
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

var tokenStrings = [...]string{
	Illegal:            "ILLEGAL",
	Add:                "+",
	Sub:                "-",
	Mul:                "*",
	Div:                "/",
	Mod:                "%",
	Exp:                "**",
	Equal:              "==",
	NotEqual:           "!=",
	LessThan:           "<",
	LessThanOrEqual:    "<=",
	GreaterThan:        ">",
	GreaterThanOrEqual: ">=",
}

func (tok Token) String() string {
	if int(tok) < len(tokenStrings) {
		return tokenStrings[tok]
	}
	return tokenStrings[Illegal]
}

// ParseToken returns the operator token for a symbol.
func ParseToken(s string) (Token, bool) {
	for tok, sym := range tokenStrings {
		if Token(tok) != Illegal && sym == s {
			return Token(tok), true
		}
	}
	return Illegal, false
}
