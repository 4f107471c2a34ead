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

// RuleSet accumulates rules before indexing. It is not safe for concurrent
// mutation; the Tree it builds is safe for concurrent filtering.
type RuleSet struct {
	rules []Rule
}

func NewRuleSet() *RuleSet { return &RuleSet{} }

// Add registers a rule with the formal pattern it applies to.
func (rs *RuleSet) Add(pattern types.Type, value interface{}) {
	rs.rules = append(rs.rules, Rule{Pattern: pattern, Value: value})
}

// Len returns the number of registered rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Rules returns a copy of the registered rules.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Build indexes the registered rules.
func (rs *RuleSet) Build() *Tree { return Build(rs.rules) }

// Match pairs a filtered rule with the substitution which aligns its
// pattern with the query.
type Match struct {
	Rule  Rule
	Subst types.Subst
}

// Matches filters the index against t, orders the candidates most specific
// first, and confirms each candidate by matching its pattern against t.
func (tr *Tree) Matches(t types.Type) []Match {
	filtered := tr.Filter(t)
	candidates := make([]Rule, 0, filtered.Len())
	filtered.Range(func(_ int, r Rule) bool {
		candidates = append(candidates, r)
		return true
	})
	MostSpecificFirst(candidates)
	matches := make([]Match, 0, len(candidates))
	for _, r := range candidates {
		if s, ok := types.TryMatch(r.Pattern, t, types.Subst{}); ok {
			matches = append(matches, Match{Rule: r, Subst: s})
		}
	}
	return matches
}
