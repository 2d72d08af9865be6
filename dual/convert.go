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

// Convert returns x with both components converted to U.
// Converting to a narrower type rounds each component independently.
//
//	x64 := dual.New(1.5, 2.0)
//	x32 := dual.Convert[float32](x64)
func Convert[U, T Floats](x Dual[T]) Dual[U] {
	return Dual[U]{real: U(x.real), dual: U(x.dual)}
}
