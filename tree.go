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
	"sync"

	"github.com/wdamron/derive/hasheq"
	"github.com/wdamron/derive/types"
)

// cursor is a path of argument indices locating a subterm position,
// walked root-first.
type cursor []int

// lookup returns the subterm of t at the cursor's position. ok is false
// when a type-variable or missing argument position is encountered before
// the end of the path.
func (at cursor) lookup(t types.Type) (types.Type, bool) {
	for _, i := range at {
		app, ok := t.(*types.App)
		if !ok || i >= len(app.Args) {
			return t, false
		}
		t = app.Args[i]
	}
	return t, true
}

// child returns a cursor addressing argument i beneath the cursor's
// position.
func (at cursor) child(i int) cursor {
	next := make(cursor, len(at)+1)
	copy(next, at)
	next[len(at)] = i
	return next
}

type conHasher struct{}

func (conHasher) Hash(key interface{}) uint32 { return key.(types.Con).Hash() }
func (conHasher) Equal(a, b interface{}) bool { return a.(types.Con).Equal(b.(types.Con)) }

// Tree is a discrimination-tree index over a fixed batch of rules. Nodes
// are materialized on first access and cached; a built tree is safe for
// concurrent read-only filtering.
type Tree struct {
	root *treeNode
}

// treeNode defers a subtree's construction until first forced. Forcing is
// compute-once even under concurrent first access.
type treeNode struct {
	once  sync.Once
	build func() treeValue
	v     treeValue
}

func (n *treeNode) force() treeValue {
	n.once.Do(func() {
		n.v = n.build()
		n.build = nil
	})
	return n.v
}

type treeValue interface {
	nodeName() string
}

type emptyNode struct{}

type oneNode struct {
	rule Rule
}

// manyNode is a linear fallback bucket, ordered most specific first.
type manyNode struct {
	rules RuleList
}

// branchNode branches on the constructor found at a cursor position, with
// a fallback subtree for rules whose pattern has a variable there.
type branchNode struct {
	at   cursor
	apps hasheq.Map // types.Con -> *treeNode
	vars *treeNode
}

func (emptyNode) nodeName() string  { return "Empty" }
func (oneNode) nodeName() string    { return "One" }
func (manyNode) nodeName() string   { return "Many" }
func (branchNode) nodeName() string { return "Branch" }

// Build indexes a batch of rules for filtering. The batch is copied; the
// caller's slice is not retained or reordered.
func Build(rules []Rule) *Tree {
	batch := make([]Rule, len(rules))
	copy(batch, rules)
	return &Tree{root: makeNode(batch, []cursor{nil})}
}

func makeNode(rules []Rule, ats []cursor) *treeNode {
	n := &treeNode{}
	n.build = func() treeValue { return buildNode(rules, ats) }
	return n
}

// conBucket accumulates the rules whose pattern has a particular
// constructor at the branching cursor, along with the extended cursor
// worklist for the bucket's subtree.
type conBucket struct {
	rules []Rule
	ats   []cursor
}

func buildNode(rules []Rule, ats []cursor) treeValue {
	switch {
	case len(rules) == 0:
		return emptyNode{}
	case len(rules) == 1:
		return oneNode{rules[0]}
	case len(ats) == 0:
		sorted := make([]Rule, len(rules))
		copy(sorted, rules)
		MostSpecificFirst(sorted)
		b := NewRuleListBuilder()
		for _, r := range sorted {
			b.Append(r)
		}
		return manyNode{b.Build()}
	}

	at, rest := ats[0], ats[1:]
	var vars []Rule
	buckets := hasheq.NewMap(conHasher{})
	for _, r := range rules {
		tm, ok := at.lookup(r.Pattern)
		if !ok {
			panic("derive: cursor does not address a position within the rule pattern")
		}
		switch tm := tm.(type) {
		case *types.Var:
			vars = append(vars, r)
		case *types.App:
			if v, ok := buckets.TryFind(tm.Con); ok {
				b := v.(*conBucket)
				b.rules = append(b.rules, r)
			} else {
				b := &conBucket{rules: []Rule{r}, ats: extendCursors(rest, at, len(tm.Args))}
				buckets = buckets.Add(tm.Con, b)
			}
		}
	}
	if buckets.Len() == 0 {
		return buildNode(vars, rest)
	}
	apps := hasheq.NewMap(conHasher{})
	buckets.Range(func(con, v interface{}) bool {
		b := v.(*conBucket)
		apps = apps.Add(con, makeNode(b.rules, b.ats))
		return true
	})
	return branchNode{at: at, apps: apps, vars: makeNode(vars, rest)}
}

// extendCursors appends a cursor for each argument position beneath at to
// the remaining worklist, so deeper structure becomes indexable.
func extendCursors(rest []cursor, at cursor, arity int) []cursor {
	out := make([]cursor, len(rest), len(rest)+arity)
	copy(out, rest)
	for i := 0; i < arity; i++ {
		out = append(out, at.child(i))
	}
	return out
}

// Filter returns the rules whose pattern could match t.
//
// At a branch, a query which resolves to a concrete constructor descends
// only that constructor's subtree when one exists; the variable-pattern
// subtree is consulted only when no subtree exists for the constructor. A
// query which is itself a variable (or too shallow) at the branching
// position conservatively unions every subtree.
func (tr *Tree) Filter(t types.Type) RuleList {
	b := NewRuleListBuilder()
	filterNode(tr.root, t, b)
	return b.Build()
}

func filterNode(n *treeNode, t types.Type, b RuleListBuilder) {
	switch v := n.force().(type) {
	case emptyNode:
	case oneNode:
		b.Append(v.rule)
	case manyNode:
		v.rules.Range(func(_ int, r Rule) bool {
			b.Append(r)
			return true
		})
	case branchNode:
		tm, ok := v.at.lookup(t)
		app, isApp := tm.(*types.App)
		if !ok || !isApp {
			v.apps.Range(func(_, child interface{}) bool {
				filterNode(child.(*treeNode), t, b)
				return true
			})
			filterNode(v.vars, t, b)
			return
		}
		if child, ok := v.apps.TryFind(app.Con); ok {
			filterNode(child.(*treeNode), t, b)
			return
		}
		filterNode(v.vars, t, b)
	}
}
