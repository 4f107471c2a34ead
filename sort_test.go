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
	"testing"

	"github.com/wdamron/derive/types"
)

func TestMostSpecificFirst(t *testing.T) {
	rules := []Rule{
		{Pattern: types.NewVar(0), Value: "any"},
		{Pattern: app("list", app("int")), Value: "listInt"},
		{Pattern: app("list", types.NewVar(1)), Value: "listAny"},
	}
	MostSpecificFirst(rules)

	if rules[0].Value.(string) != "listInt" || rules[1].Value.(string) != "listAny" || rules[2].Value.(string) != "any" {
		t.Fatalf("unexpected order: %v, %v, %v", rules[0].Value, rules[1].Value, rules[2].Value)
	}
	checkSpecificOrder(t, rules)
}

func TestMostSpecificFirstMixed(t *testing.T) {
	rules := []Rule{
		{Pattern: types.NewVar(0), Value: "any"},
		{Pattern: app("pair", types.NewVar(1), app("int")), Value: "sndInt"},
		{Pattern: app("int"), Value: "int"},
		{Pattern: app("pair", app("int"), types.NewVar(2)), Value: "fstInt"},
		{Pattern: app("pair", app("int"), app("int")), Value: "bothInt"},
	}
	MostSpecificFirst(rules)
	checkSpecificOrder(t, rules)

	for i, r := range rules {
		if r.Value.(string) == "any" && i != len(rules)-1 {
			t.Fatalf("expected the fully generic pattern last, found it at %d", i)
		}
	}
}

// No entry may be decidably, strictly more specific than any entry placed
// before it.
func checkSpecificOrder(t *testing.T, rules []Rule) {
	for i := 0; i < len(rules); i++ {
		for k := i + 1; k < len(rules); k++ {
			if types.MoreSpecific(rules[i].Pattern, rules[k].Pattern) == types.Rhs {
				t.Fatalf("entry %d (%v) is more specific than entry %d (%v)",
					k, rules[k].Value, i, rules[i].Value)
			}
		}
	}
}
