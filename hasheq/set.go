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

// Set is a persistent set of keys, hashed and compared through the Hasher
// the set was constructed with.
type Set struct {
	m Map
}

// Create an empty set which hashes and compares keys with hasher.
func NewSet(hasher Hasher) Set {
	return Set{NewMap(hasher)}
}

// Len returns the number of keys in the set.
func (s Set) Len() int { return s.m.Len() }

// Add returns a set containing key, without modifying s.
func (s Set) Add(key interface{}) Set {
	return Set{s.m.Add(key, nil)}
}

// Contains returns true if an equal key exists in the set.
func (s Set) Contains(key interface{}) bool {
	_, ok := s.m.TryFind(key)
	return ok
}

// Iterate over keys in the set, in unspecified order.
// If f returns false, iteration will be stopped.
func (s Set) Range(f func(key interface{}) bool) {
	s.m.Range(func(k, _ interface{}) bool { return f(k) })
}

// Keys returns all keys in the set, in unspecified order.
func (s Set) Keys() []interface{} {
	out := make([]interface{}, 0, s.Len())
	s.Range(func(k interface{}) bool {
		out = append(out, k)
		return true
	})
	return out
}
