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

// Floats is a constraint for the floating-point types a Dual can be built on.
type Floats interface {
	~float32 | ~float64
}

// Dual is a dual number real+dual·ε with ε² = 0.
//
// real holds the value of a function at the evaluation point and dual holds
// the value of its first derivative with respect to the seeded variable.
// The zero value is the additive identity 0+0ε.
type Dual[T Floats] struct {
	real T
	dual T
}

// Dual32 is a single-precision dual number.
type Dual32 = Dual[float32]

// Dual64 is a double-precision dual number.
type Dual64 = Dual[float64]

// New returns the dual number r+dε.
func New[T Floats](r, d T) Dual[T] {
	return Dual[T]{real: r, dual: d}
}

// Variable returns x seeded as the independent variable: x+1ε.
func Variable[T Floats](x T) Dual[T] {
	return Dual[T]{real: x, dual: 1}
}

// Constant returns c lifted as a constant: c+0ε.
func Constant[T Floats](c T) Dual[T] {
	return Dual[T]{real: c}
}

// Zero returns the additive identity 0+0ε.
func Zero[T Floats]() Dual[T] {
	return Dual[T]{}
}

// One returns 1+1ε.
//
// Note that One is not Constant(1): its derivative component is 1. Use
// Constant(1) for the multiplicative constant in an expression.
func One[T Floats]() Dual[T] {
	return Dual[T]{real: 1, dual: 1}
}

// Real returns the value component.
func (x Dual[T]) Real() T {
	return x.real
}

// Derivative returns the derivative component.
func (x Dual[T]) Derivative() T {
	return x.dual
}

// Parts returns both components.
func (x Dual[T]) Parts() (r, d T) {
	return x.real, x.dual
}

// IsZero reports whether both components are zero.
func (x Dual[T]) IsZero() bool {
	return x.real == 0 && x.dual == 0
}

// IsNaN reports whether either component is NaN.
func (x Dual[T]) IsNaN() bool {
	return isNaN(x.real) || isNaN(x.dual)
}

// IsInf reports whether either component is an infinity.
func (x Dual[T]) IsInf() bool {
	return isInf(x.real) || isInf(x.dual)
}

// Equal reports whether x and y have exactly the same components.
// There is no tolerance: NaN is not equal to itself, and 0 equals -0.
func (x Dual[T]) Equal(y Dual[T]) bool {
	return x.real == y.real && x.dual == y.dual
}
