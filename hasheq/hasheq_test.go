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

package hasheq

import (
	"testing"
)

type stringHasher struct{}

func (stringHasher) Hash(key interface{}) uint32 {
	h := uint32(2166136261)
	s := key.(string)
	for i := 0; i < len(s); i++ {
		h = (h ^ uint32(s[i])) * 16777619
	}
	return h
}

func (stringHasher) Equal(a, b interface{}) bool { return a.(string) == b.(string) }

// collideHasher forces every key into a single bucket.
type collideHasher struct{}

func (collideHasher) Hash(key interface{}) uint32 { return 1 }
func (collideHasher) Equal(a, b interface{}) bool { return a.(string) == b.(string) }

func TestMapLastWriteWins(t *testing.T) {
	m0 := NewMap(stringHasher{})
	m1 := m0.Add("a", 1)
	m2 := m1.Add("a", 2)

	if v, ok := m2.TryFind("a"); !ok || v.(int) != 2 {
		t.Fatalf("expected 2 for a, found %v (ok=%v)", v, ok)
	}
	if m2.Len() != 1 {
		t.Fatalf("expected a single entry, found %d", m2.Len())
	}
	entries := m2.Entries()
	if len(entries) != 1 || entries[0].Key.(string) != "a" || entries[0].Value.(int) != 2 {
		t.Fatalf("expected a single entry for a, found %v", entries)
	}

	// earlier versions are unmodified:
	if v, ok := m1.TryFind("a"); !ok || v.(int) != 1 {
		t.Fatalf("expected 1 for a in the earlier map, found %v (ok=%v)", v, ok)
	}
	if _, ok := m0.TryFind("a"); ok {
		t.Fatalf("expected no entry for a in the empty map")
	}
}

func TestMapCollidingKeys(t *testing.T) {
	m := NewMap(collideHasher{})
	m = m.Add("a", 1)
	m = m.Add("b", 2)

	if m.Len() != 2 {
		t.Fatalf("expected 2 entries, found %d", m.Len())
	}
	if v, ok := m.TryFind("a"); !ok || v.(int) != 1 {
		t.Fatalf("expected 1 for a, found %v (ok=%v)", v, ok)
	}
	if v, ok := m.TryFind("b"); !ok || v.(int) != 2 {
		t.Fatalf("expected 2 for b, found %v (ok=%v)", v, ok)
	}
	if _, ok := m.TryFind("c"); ok {
		t.Fatalf("expected no entry for c despite the colliding hash")
	}

	m = m.Add("a", 3)
	if m.Len() != 2 {
		t.Fatalf("expected 2 entries after overwrite, found %d", m.Len())
	}
	if v, _ := m.TryFind("a"); v.(int) != 3 {
		t.Fatalf("expected 3 for a after overwrite, found %v", v)
	}
}

func TestMapRange(t *testing.T) {
	m := NewMap(stringHasher{})
	m = m.Add("a", 1).Add("b", 2).Add("c", 3)

	seen := make(map[string]int)
	m.Range(func(k, v interface{}) bool {
		seen[k.(string)] = v.(int)
		return true
	})
	if len(seen) != 3 || seen["a"] != 1 || seen["b"] != 2 || seen["c"] != 3 {
		t.Fatalf("unexpected entries: %v", seen)
	}

	count := 0
	m.Range(func(k, v interface{}) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("expected iteration to stop after 1 entry, saw %d", count)
	}
}

func TestSet(t *testing.T) {
	s := NewSet(stringHasher{})
	s = s.Add("a")
	s = s.Add("a")
	s = s.Add("b")

	if s.Len() != 2 {
		t.Fatalf("expected 2 keys, found %d", s.Len())
	}
	if !s.Contains("a") || !s.Contains("b") {
		t.Fatalf("expected a and b in the set")
	}
	if s.Contains("c") {
		t.Fatalf("expected c to be absent")
	}
	if keys := s.Keys(); len(keys) != 2 {
		t.Fatalf("expected 2 keys, found %v", keys)
	}
}
