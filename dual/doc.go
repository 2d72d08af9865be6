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

// Package dual implements forward-mode automatic differentiation with dual
// numbers.
//
// A dual number a+a'ε carries a function value a together with its first
// derivative a'. Substituting a seeded dual number for the independent
// variable of an expression and evaluating it with the methods of this
// package yields the exact derivative alongside the value, with no finite
// difference approximation.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-dual/dual"
//
//	// f(x) = x·sin(x) + 3
//	x := dual.Variable(2.0)
//	y := x.Mul(x.Sin()).Add(dual.Constant(3.0))
//
//	y.Real()       // f(2)
//	y.Derivative() // f'(2) = sin(2) + 2·cos(2)
//
// # Lifting scalars
//
// There are two ways to lift a plain scalar into the algebra and they are
// not interchangeable:
//
//   - Variable(x) seeds the independent variable: derivative 1.
//   - Constant(c) lifts a fixed coefficient: derivative 0.
//
// Using Variable for a coefficient silently corrupts the derivative. Diff
// seeds its argument with Variable, and Algebra.Lift uses Constant.
//
// # Domain errors
//
// Nothing in this package returns an error or panics on out-of-domain input.
// Division by zero, Ln of a non-positive number and Sqrt of a negative number
// produce IEEE-754 NaN or infinity exactly as the equivalent float expression
// would. Use IsNaN and IsInf to check results when it matters.
//
// # Concurrency
//
// Dual is a small immutable value type. All operations take their operands
// by value and return new values, so dual numbers can be shared freely
// between goroutines.
package dual
