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

// MostSpecificFirst sorts rules in place from most to least specific.
//
// Specificity is a partial order: only a decidable, strictly-more-specific
// verdict displaces the current leader during the selection scan, so
// incomparable or tied entries may end up in either relative order, and
// the result is not guaranteed optimal across non-transitive chains.
func MostSpecificFirst(rules []Rule) {
	for i := 0; i < len(rules); i++ {
		lead := i
		for k := i + 1; k < len(rules); k++ {
			if types.MoreSpecific(rules[lead].Pattern, rules[k].Pattern) == types.Rhs {
				lead = k
			}
		}
		rules[i], rules[lead] = rules[lead], rules[i]
	}
}
