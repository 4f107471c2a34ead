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

package derive

import (
	"github.com/wdamron/derive/types"
)

// Rule pairs an opaque payload with the formal type pattern it applies to.
// Rules are constructed once when registered and never mutated.
type Rule struct {
	Pattern types.Type
	Value   interface{}
}

// Encoder translates a host's native type representation into the term
// algebra, recording constructor identity and recursively encoded
// arguments.
type Encoder interface {
	EncodeType(native interface{}) (types.Type, error)
}

// Decoder reconstructs a native type representation from a fully resolved,
// variable-free term.
type Decoder interface {
	DecodeType(t types.Type) (interface{}, error)
}

// Invoker runs a selected rule's associated computation. The host
// specializes any rule-local type parameters through the substitution
// which matched the rule, then invokes; the core's responsibility ends at
// selecting and ordering candidates.
type Invoker interface {
	Specialize(rule Rule, s types.Subst) (Rule, error)
	Invoke(rule Rule, args []interface{}) (interface{}, error)
}
