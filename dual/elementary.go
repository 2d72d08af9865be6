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

// Elementary functions. Each returns f(a) + a'·f'(a)ε for x = a+a'ε.
// None of them validate their domain; out-of-domain inputs propagate NaN
// or infinity like the corresponding math package function.

// Sin returns sin(x).
func (x Dual[T]) Sin() Dual[T] {
	s, c := sincos(x.real)
	return Dual[T]{real: s, dual: x.dual * c}
}

// Cos returns cos(x).
func (x Dual[T]) Cos() Dual[T] {
	s, c := sincos(x.real)
	return Dual[T]{real: c, dual: -x.dual * s}
}

// Tan returns tan(x), computed as x.Sin().Div(x.Cos()).
// Where cos(x) is zero it has the same behavior as Div.
func (x Dual[T]) Tan() Dual[T] {
	return x.Sin().Div(x.Cos())
}

// Exp returns e^x.
func (x Dual[T]) Exp() Dual[T] {
	e := exp(x.real)
	return Dual[T]{real: e, dual: x.dual * e}
}

// Ln returns the natural logarithm of x.
// For x.Real() <= 0 the result follows math.Log: -Inf at zero, NaN below.
func (x Dual[T]) Ln() Dual[T] {
	return Dual[T]{real: log(x.real), dual: x.dual / x.real}
}

// Sqrt returns the square root of x.
// The derivative diverges at x.Real() == 0 and is NaN for negative values.
func (x Dual[T]) Sqrt() Dual[T] {
	s := sqrt(x.real)
	return Dual[T]{real: s, dual: x.dual / (2 * s)}
}
