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
	"github.com/benbjohnson/immutable"
)

var emptyList = immutable.NewList()

var EmptyRuleList = RuleList{emptyList}

// RuleList is an immutable sequence of rules.
type RuleList struct {
	l *immutable.List
}

func NewRuleList() RuleList { return RuleList{emptyList} }

func SingletonRuleList(r Rule) RuleList {
	return RuleList{emptyList.Append(r)}
}

func (l RuleList) Len() int                      { return l.l.Len() }
func (l RuleList) Get(i int) Rule                { return l.l.Get(i).(Rule) }
func (l RuleList) Slice(start, end int) RuleList { return RuleList{l.l.Slice(start, end)} }

// If f returns false, iteration will be stopped.
func (l RuleList) Range(f func(int, Rule) bool) {
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Rule)) {
			return
		}
	}
}

func (l RuleList) Builder() RuleListBuilder {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return RuleListBuilder{immutable.NewListBuilder(imm)}
}

type RuleListBuilder struct {
	b *immutable.ListBuilder
}

func NewRuleListBuilder() RuleListBuilder {
	return RuleListBuilder{immutable.NewListBuilder(emptyList)}
}

func (b RuleListBuilder) Len() int        { return b.b.Len() }
func (b RuleListBuilder) Append(r Rule)   { b.b.Append(r) }
func (b RuleListBuilder) Build() RuleList { return RuleList{b.b.List()} }
