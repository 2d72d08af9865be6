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

// Add returns x+y.
func (x Dual[T]) Add(y Dual[T]) Dual[T] {
	return Dual[T]{real: x.real + y.real, dual: x.dual + y.dual}
}

// Sub returns x-y.
func (x Dual[T]) Sub(y Dual[T]) Dual[T] {
	return Dual[T]{real: x.real - y.real, dual: x.dual - y.dual}
}

// Neg returns -x.
func (x Dual[T]) Neg() Dual[T] {
	return Dual[T]{real: -x.real, dual: -x.dual}
}

// Mul returns x·y using the product rule for the derivative.
func (x Dual[T]) Mul(y Dual[T]) Dual[T] {
	return Dual[T]{
		real: x.real * y.real,
		dual: x.dual*y.real + x.real*y.dual,
	}
}

// Div returns x/y using the quotient rule for the derivative.
//
// Division is not guarded: when y.Real() is zero (or its square underflows)
// the components are whatever IEEE-754 division produces, infinity or NaN.
func (x Dual[T]) Div(y Dual[T]) Dual[T] {
	return Dual[T]{
		real: x.real / y.real,
		dual: (x.dual*y.real - x.real*y.dual) / (y.real * y.real),
	}
}

// Scale returns c·x, the same as x.Mul(Constant(c)).
func (x Dual[T]) Scale(c T) Dual[T] {
	return Dual[T]{real: c * x.real, dual: c * x.dual}
}
