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

import "math"

// Scalar helpers for the real part of the elementary functions.
// Both widths go through the float64 math package and are rounded back to T,
// so float32 results are the correctly rounded float64 result.

func sincos[T Floats](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}

func exp[T Floats](x T) T { return T(math.Exp(float64(x))) }

func log[T Floats](x T) T { return T(math.Log(float64(x))) }

func sqrt[T Floats](x T) T { return T(math.Sqrt(float64(x))) }

func isNaN[T Floats](x T) bool { return math.IsNaN(float64(x)) }

func isInf[T Floats](x T) bool { return math.IsInf(float64(x), 0) }
