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
	"github.com/wdamron/derive/hasheq"
)

type varHasher struct{}

func (varHasher) Hash(key interface{}) uint32 { return uint32(key.(*Var).id) }
func (varHasher) Equal(a, b interface{}) bool { return a.(*Var) == b.(*Var) }

var emptyVarMap = hasheq.NewMap(varHasher{})

// Subst is an immutable mapping from type-variables to types, built
// incrementally during a single match. The zero Subst is empty. A binding
// is only ever created after an occurs-check, so no binding chain can
// contain a cycle.
type Subst struct {
	m hasheq.Map
}

// Len returns the number of bindings in the substitution.
func (s Subst) Len() int { return s.m.Len() }

// Lookup returns the binding for tv, if one exists.
func (s Subst) Lookup(tv *Var) (Type, bool) {
	v, ok := s.m.TryFind(tv)
	if !ok {
		return nil, false
	}
	return v.(Type), true
}

// Iterate over bindings in the substitution, in unspecified order.
// If f returns false, iteration will be stopped.
func (s Subst) Range(f func(*Var, Type) bool) {
	s.m.Range(func(k, v interface{}) bool { return f(k.(*Var), v.(Type)) })
}

// with returns a substitution extended with a binding for tv, without
// modifying s. Callers must occurs-check tv against t first.
func (s Subst) with(tv *Var, t Type) Subst {
	m := s.m
	if m.Hasher() == nil {
		m = emptyVarMap
	}
	return Subst{m.Add(tv, t)}
}

// FreeVars returns the variables within t which remain unbound under s, in
// order of first appearance.
func FreeVars(s Subst, t Type) []*Var {
	seen := hasheq.NewSet(varHasher{})
	var out []*Var
	var walk func(Type)
	walk = func(t Type) {
		switch t := ResolveTop(s, t).(type) {
		case *Var:
			if !seen.Contains(t) {
				seen = seen.Add(t)
				out = append(out, t)
			}
		case *App:
			for _, arg := range t.Args {
				walk(arg)
			}
		}
	}
	walk(t)
	return out
}
