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

// polyclass provides the type-class layer of an experimental polymorphic type-system for a
// statically-typed contract language.
//
// The type-system is unification based: type-classes abstract over a single type-variable
// and declare member signatures written over that variable. Operators such as `+` and `==`
// are bound to members of built-in type-classes, so that later inference may resolve them
// like any other class method.
//
//
// Packages:
//
//   * types: type-variables, constructor applications, type-class handles, method sets
//   * construct: function and tuple type builders and their decompositions
//   * ast: arena-indexed syntax trees and post-order traversal
//   * analysis: type-class registration and type-class member registration passes
//   * diag: diagnostics reporting
//
//
// The root package provides TypeSystem, which allocates type-variables and declares type-classes.
// A type-system belongs to a single analysis run; type-variables are never shared between runs.
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Type classes (How to make ad-hoc polymorphism less ad hoc, Wadler and Blott, 1989): https://dl.acm.org/doi/10.1145/75277.75283
package polyclass
