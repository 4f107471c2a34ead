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

// hasheq provides persistent maps and sets keyed by arbitrary values,
// with hashing and equality supplied externally through a Hasher.
package hasheq

import (
	"github.com/benbjohnson/immutable"
)

// Hasher hashes keys and checks them for equality. Keys which are equal
// must hash identically.
type Hasher interface {
	// Hash computes a hash for key.
	Hash(key interface{}) uint32
	// Equal returns true if a and b are equal.
	Equal(a, b interface{}) bool
}

// Entry is a single key/value pair within a Map.
type Entry struct {
	Key, Value interface{}
}

// Map is a persistent map from keys to values. Adding an entry never
// modifies the existing map. Keys with equal hashes share a bucket; the
// bucket is scanned with the external equality, so colliding unequal keys
// are never conflated.
type Map struct {
	hasher Hasher
	// buckets maps a uint32 hash to a []Entry, most recently added first.
	buckets *immutable.Map
	size    int
}

type bucketHasher struct{}

func (bucketHasher) Hash(key interface{}) uint32 { return key.(uint32) }
func (bucketHasher) Equal(a, b interface{}) bool { return a.(uint32) == b.(uint32) }

// Create an empty map which hashes and compares keys with hasher.
func NewMap(hasher Hasher) Map {
	return Map{hasher: hasher, buckets: immutable.NewMap(bucketHasher{})}
}

// Hasher returns the hasher the map was constructed with, or nil for the
// zero Map.
func (m Map) Hasher() Hasher { return m.hasher }

// Len returns the number of entries in the map.
func (m Map) Len() int { return m.size }

// Add returns a map containing value for key, without modifying m. Any
// existing entry with an equal key is replaced; the last write for a given
// key wins.
func (m Map) Add(key, value interface{}) Map {
	h := m.hasher.Hash(key)
	var old []Entry
	if b, ok := m.buckets.Get(h); ok {
		old = b.([]Entry)
	}
	next := make([]Entry, 0, len(old)+1)
	next = append(next, Entry{key, value})
	size := m.size + 1
	for _, e := range old {
		if m.hasher.Equal(e.Key, key) {
			size--
			continue
		}
		next = append(next, e)
	}
	return Map{hasher: m.hasher, buckets: m.buckets.Set(h, next), size: size}
}

// TryFind returns the value for key, if an entry with an equal key exists.
func (m Map) TryFind(key interface{}) (interface{}, bool) {
	if m.buckets == nil {
		return nil, false
	}
	b, ok := m.buckets.Get(m.hasher.Hash(key))
	if !ok {
		return nil, false
	}
	for _, e := range b.([]Entry) {
		if m.hasher.Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Iterate over entries in the map. Iteration order is unspecified, though
// entries within a bucket are seen most recently added first.
// If f returns false, iteration will be stopped.
func (m Map) Range(f func(key, value interface{}) bool) {
	if m.buckets == nil {
		return
	}
	iter := m.buckets.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		for _, e := range b.([]Entry) {
			if !f(e.Key, e.Value) {
				return
			}
		}
	}
}

// Entries returns all entries in the map, in unspecified order.
func (m Map) Entries() []Entry {
	out := make([]Entry, 0, m.size)
	m.Range(func(k, v interface{}) bool {
		out = append(out, Entry{k, v})
		return true
	})
	return out
}
