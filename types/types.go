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

// Type is the base interface for all type terms. A term is either a
// type-variable or a type-application, and is immutable once built.
type Type interface {
	TypeName() string
}

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return "App" }

// Type-variable, compared by identity
type Var struct {
	id int32
}

// Create a new type-variable with the given id. The id is used for hashing
// and printing only; two variables with equal ids are still distinct.
func NewVar(id int) *Var {
	return &Var{id: int32(id)}
}

// Id returns the identifier of the type-variable.
func (tv *Var) Id() int { return int(tv.id) }

// Con identifies the head of a type-application. Identity is supplied by
// the host: constructors which are Equal must hash identically, and a
// constructor must be applied with the same number of arguments everywhere
// it occurs.
type Con interface {
	// Hash computes a hash for the constructor identity.
	Hash() uint32
	// Equal returns true if other identifies the same constructor.
	Equal(other Con) bool
}

// Type-application: `list[int]`. A concrete type is an application with no
// arguments.
type App struct {
	Con  Con
	Args []Type
}

// Create a new type-application.
func NewApp(con Con, args ...Type) *App {
	return &App{Con: con, Args: args}
}

// Const is a named constructor identity: `int` or `bool`. It suits hosts
// (and tests) whose constructors are uniquely named.
type Const string

const (
	offset32 = 2166136261
	prime32  = 16777619
)

// Hash computes an FNV-1a hash of the name.
func (c Const) Hash() uint32 {
	h := uint32(offset32)
	for i := 0; i < len(c); i++ {
		h = (h ^ uint32(c[i])) * prime32
	}
	return h
}

// Equal returns true if other is a Const with the same name.
func (c Const) Equal(other Con) bool {
	o, ok := other.(Const)
	return ok && o == c
}

func (c Const) String() string { return string(c) }
