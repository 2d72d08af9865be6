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

import (
	"fmt"
	"math"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		x    fmt.Stringer
		want string
	}{
		{"Positive", New(3.0, 4.0), "3+4ε"},
		{"NegativeReal", New(-3.0, 4.0), "-3+4ε"},
		{"NegativeDual", New(3.0, -2.0), "3-2ε"},
		{"BothNegative", New(-3.0, -2.0), "-3-2ε"},
		{"Fraction", New(0.25, 0.0), "0.25+0ε"},
		{"NegativeZeroDual", New(1.0, math.Copysign(0, -1)), "1-0ε"},
		{"Float32Shortest", New[float32](0.1, 0.2), "0.1+0.2ε"},
		{"Exponent", New(1e21, 1.0), "1e+21+1ε"},
		{"NaN", New(math.NaN(), 1.0), "NaN+1ε"},
		{"Infinities", New(math.Inf(1), math.Inf(-1)), "Inf-Infε"},
		{"Plain", NewPlain(2.5), "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		format string
		x      Dual64
		want   string
	}{
		{"Value", "%v", New(3.0, -2.0), "3-2ε"},
		{"String", "%s", New(3.0, 4.0), "3+4ε"},
		{"FixedPrecision", "%.2f", New(1.0, -0.5), "1.00-0.50ε"},
		{"FixedShortest", "%F", New(1.0, 2.0), "1+2ε"},
		{"Exponent", "%.1e", New(1.5, 2.0), "1.5e+00+2.0e+00ε"},
		{"GoSyntax", "%#v", New(3.0, 4.5), "dual.New(3, 4.5)"},
		{"BadVerb", "%d", New(3.0, 4.0), "%!d(dual.Dual=3+4ε)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmt.Sprintf(tt.format, tt.x); got != tt.want {
				t.Errorf("Sprintf(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}
