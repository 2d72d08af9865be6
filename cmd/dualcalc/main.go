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

// Command dualcalc evaluates a composition of elementary functions at a point
// together with its exact derivative, using forward-mode dual numbers.
//
// Usage:
//
//	dualcalc eval --at 0.5 sin                   # sin(0.5) and cos(0.5)
//	dualcalc eval --at 1 sin exp                 # exp(sin(1)) and its derivative
//	dualcalc eval --at 4 --precision 32 sqrt     # single precision
//	dualcalc eval --at 2 --check ln sqrt         # compare with a finite difference
//	dualcalc funcs                               # list function names
//
// Functions are applied left to right to the seeded variable x = at+seed·ε.
// Defaults for --precision and --check can also be set with the
// DUALCALC_PRECISION and DUALCALC_CHECK environment variables, and
// DUALCALC_LOG_LEVEL controls the diagnostics written to stderr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
