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
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[*Var]string, 16)}
	},
}

type typePrinter struct {
	names map[*Var]string
	sb    strings.Builder
}

func (p *typePrinter) release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.sb.Reset()
	printerPool.Put(p)
}

// TypeString returns a string representation of a Type. Variables are
// named 'a, 'b, ... in order of first appearance.
func TypeString(t Type) string {
	p := printerPool.Get().(*typePrinter)
	p.typeString(t)
	s := p.sb.String()
	p.release()
	return s
}

func (p *typePrinter) typeString(t Type) {
	switch t := t.(type) {
	case *Var:
		name, ok := p.names[t]
		if !ok {
			name = varName(len(p.names))
			p.names[t] = name
		}
		p.sb.WriteString(name)
	case *App:
		if s, ok := t.Con.(fmt.Stringer); ok {
			p.sb.WriteString(s.String())
		} else {
			fmt.Fprintf(&p.sb, "%v", t.Con)
		}
		if len(t.Args) == 0 {
			return
		}
		p.sb.WriteByte('[')
		for i, arg := range t.Args {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.typeString(arg)
		}
		p.sb.WriteByte(']')
	}
}

func varName(i int) string {
	if i < 26 {
		return "'" + string(rune('a'+i))
	}
	return "'" + string(rune('a'+i%26)) + strconv.Itoa(i/26)
}
