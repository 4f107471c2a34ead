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

// Specificity indicates which of two patterns admits fewer, narrower
// matches when both compete for the same query.
type Specificity int

const (
	// The patterns cannot be unified.
	Unmatchable Specificity = iota
	// Each pattern had to specialize to align with the other.
	Incomparable
	// Neither pattern had to specialize.
	Equal
	// The left pattern is strictly more specific.
	Lhs
	// The right pattern is strictly more specific.
	Rhs
)

func (s Specificity) String() string {
	switch s {
	case Unmatchable:
		return "Unmatchable"
	case Incomparable:
		return "Incomparable"
	case Equal:
		return "Equal"
	case Lhs:
		return "Lhs"
	case Rhs:
		return "Rhs"
	}
	return "Invalid"
}

// MoreSpecific compares two patterns by unifying them with a fresh
// substitution, then checking each against its own original form: a
// pattern which required no new bindings to align with the other is the
// more specific one.
func MoreSpecific(lhs, rhs Type) Specificity {
	s, ok := TryMatch(lhs, rhs, Subst{})
	if !ok {
		return Unmatchable
	}
	lSame := AreEqual(Resolve(s, lhs), lhs)
	rSame := AreEqual(Resolve(s, rhs), rhs)
	switch {
	case lSame && rSame:
		return Equal
	case lSame:
		return Lhs
	case rSame:
		return Rhs
	}
	return Incomparable
}
