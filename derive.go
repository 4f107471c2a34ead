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

// derive indexes rules tagged with formal type patterns and answers which
// rules could match a concrete type, ordering candidates from most to
// least specific. It is the clause-indexing core of a generic-derivation
// (automatic dispatch) system.
//
// Patterns are first-order terms over type-variables and constructor
// applications (see the types package). A batch of rules is indexed once
// into a lazily-materialized discrimination tree; many queries then filter
// the tree read-only, possibly from multiple goroutines. Unification
// confirms candidates and a specificity partial order ranks them.
//
// Translating a host's native type representation into the term algebra,
// and invoking a selected rule's computation, are deliberately left to the
// host behind the Encoder, Decoder and Invoker interfaces.
//
//
// Links:
//
// Discrimination trees (term indexing): https://en.wikipedia.org/wiki/Term_indexing
//
// Unification: https://en.wikipedia.org/wiki/Unification_(computer_science)
package derive
