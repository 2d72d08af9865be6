// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dual

// Algebra is the set of operations an expression can use when it is written
// once and evaluated over different scalar types.
//
// S is the scalar type itself and T the underlying float. Dual[T] and
// Plain[T] both implement Algebra, so
//
//	func f[S dual.Algebra[S, T], T dual.Floats](x S) S {
//		return x.Mul(x).Add(x.Lift(3).Mul(x.Sin()))
//	}
//
// computes x²+3·sin(x) when called with a Plain and additionally its
// derivative when called with a Variable.
type Algebra[S any, T Floats] interface {
	Add(S) S
	Sub(S) S
	Mul(S) S
	Div(S) S
	Neg() S
	Sin() S
	Cos() S
	Tan() S
	Exp() S
	Ln() S
	Sqrt() S

	// Lift returns c as a constant of the same algebra.
	Lift(c T) S
	// Real returns the value part.
	Real() T
}

var (
	_ Algebra[Dual[float64], float64]  = Dual[float64]{}
	_ Algebra[Plain[float32], float32] = Plain[float32]{}
)

// Lift returns Constant(c). It makes Dual an Algebra.
func (x Dual[T]) Lift(c T) Dual[T] {
	return Constant(c)
}

// Diff evaluates f at Variable(x) and returns f(x) and f'(x).
func Diff[T Floats](f func(Dual[T]) Dual[T], x T) (value, derivative T) {
	return f(Variable(x)).Parts()
}

// Plain is an ordinary float that implements Algebra. Expressions evaluated
// on Plain compute the value only.
type Plain[T Floats] struct {
	v T
}

// NewPlain returns v as a Plain.
func NewPlain[T Floats](v T) Plain[T] {
	return Plain[T]{v: v}
}

func (p Plain[T]) Add(q Plain[T]) Plain[T] { return Plain[T]{p.v + q.v} }
func (p Plain[T]) Sub(q Plain[T]) Plain[T] { return Plain[T]{p.v - q.v} }
func (p Plain[T]) Mul(q Plain[T]) Plain[T] { return Plain[T]{p.v * q.v} }
func (p Plain[T]) Div(q Plain[T]) Plain[T] { return Plain[T]{p.v / q.v} }
func (p Plain[T]) Neg() Plain[T]           { return Plain[T]{-p.v} }

func (p Plain[T]) Sin() Plain[T] {
	s, _ := sincos(p.v)
	return Plain[T]{s}
}

func (p Plain[T]) Cos() Plain[T] {
	_, c := sincos(p.v)
	return Plain[T]{c}
}

func (p Plain[T]) Tan() Plain[T] {
	s, c := sincos(p.v)
	return Plain[T]{s / c}
}

func (p Plain[T]) Exp() Plain[T]  { return Plain[T]{exp(p.v)} }
func (p Plain[T]) Ln() Plain[T]   { return Plain[T]{log(p.v)} }
func (p Plain[T]) Sqrt() Plain[T] { return Plain[T]{sqrt(p.v)} }

// Lift returns NewPlain(c).
func (p Plain[T]) Lift(c T) Plain[T] { return Plain[T]{c} }

// Real returns the wrapped float.
func (p Plain[T]) Real() T { return p.v }

func (p Plain[T]) String() string {
	return formatFloat(p.v, 'g', -1)
}
