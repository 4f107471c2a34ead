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
	"github.com/wdamron/derive/internal/util"
)

// ResolveTop follows a chain of variable bindings in s until reaching
// either an unbound type-variable or a type-application. Terminates
// because bindings are occurs-checked when created.
func ResolveTop(s Subst, t Type) Type {
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		next, ok := s.Lookup(tv)
		if !ok {
			return tv
		}
		t = next
	}
}

// Resolve substitutes through the entire term, producing its normal form
// under s.
func Resolve(s Subst, t Type) Type {
	t = ResolveTop(s, t)
	app, ok := t.(*App)
	if !ok {
		return t
	}
	args := make([]Type, len(app.Args))
	for i, arg := range app.Args {
		args[i] = Resolve(s, arg)
	}
	return &App{Con: app.Con, Args: args}
}

// Occurs returns true if tv appears anywhere within t under s.
func Occurs(s Subst, tv *Var, t Type) bool {
	switch t := ResolveTop(s, t).(type) {
	case *Var:
		return t == tv
	case *App:
		for _, arg := range t.Args {
			if Occurs(s, tv, arg) {
				return true
			}
		}
	}
	return false
}

// TryMatch attempts to extend s such that substituting consistently into
// formal reproduces actual. A failed match returns false with no
// substitution; it is a normal outcome, not an error.
//
// A constructor applied with inconsistent arity across occurrences is
// structurally malformed input, and panics.
func TryMatch(formal, actual Type, s Subst) (Subst, bool) {
	a, b := ResolveTop(s, formal), ResolveTop(s, actual)
	av, _ := a.(*Var)
	bv, _ := b.(*Var)
	switch {
	case av != nil && av == bv:
		return s, true
	case av != nil:
		if Occurs(s, av, b) {
			return Subst{}, false
		}
		return s.with(av, b), true
	case bv != nil:
		if Occurs(s, bv, a) {
			return Subst{}, false
		}
		return s.with(bv, a), true
	}
	aa, ba := a.(*App), b.(*App)
	if !aa.Con.Equal(ba.Con) {
		return Subst{}, false
	}
	if len(aa.Args) != len(ba.Args) {
		panic("types: constructor applied with inconsistent arity")
	}
	ok := false
	for i := range aa.Args {
		if s, ok = TryMatch(aa.Args[i], ba.Args[i], s); !ok {
			return Subst{}, false
		}
	}
	return s, true
}

// AreEqual returns true if a and b are identical up to a consistent
// renaming of a's variables: every occurrence of a given variable in a
// must correspond to the same subterm of b.
func AreEqual(a, b Type) bool {
	seen := util.NewRefMap()
	eq := areEqual(seen, a, b)
	seen.Release()
	return eq
}

func areEqual(seen util.RefMap, a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		if prior, ok := seen[a]; ok {
			return identical(prior.(Type), b)
		}
		seen[a] = b
		return true
	case *App:
		bapp, ok := b.(*App)
		if !ok || !a.Con.Equal(bapp.Con) || len(a.Args) != len(bapp.Args) {
			return false
		}
		for i := range a.Args {
			if !areEqual(seen, a.Args[i], bapp.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// identical checks structural identity with no renaming.
func identical(a, b Type) bool {
	switch a := a.(type) {
	case *Var:
		return a == b
	case *App:
		bapp, ok := b.(*App)
		if !ok || !a.Con.Equal(bapp.Con) || len(a.Args) != len(bapp.Args) {
			return false
		}
		for i := range a.Args {
			if !identical(a.Args[i], bapp.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}
