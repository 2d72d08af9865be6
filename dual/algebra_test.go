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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// rational computes (x² + 3·sin(x)) / sqrt(exp(x) + 1) over any algebra.
func rational[S Algebra[S, T], T Floats](x S) S {
	num := x.Mul(x).Add(x.Lift(3).Mul(x.Sin()))
	den := x.Exp().Add(x.Lift(1)).Sqrt()
	return num.Div(den)
}

func rationalDerivative(a float64) float64 {
	num := a*a + 3*math.Sin(a)
	dnum := 2*a + 3*math.Cos(a)
	den := math.Sqrt(math.Exp(a) + 1)
	dden := math.Exp(a) / (2 * den)
	return (dnum*den - num*dden) / (den * den)
}

func TestAlgebraSameValue(t *testing.T) {
	for _, a := range []float64{-2, -0.5, 0, 0.7, 3} {
		plain := rational[Plain[float64], float64](NewPlain(a)).Real()
		d := rational[Dual64, float64](Variable(a))
		if d.Real() != plain {
			t.Errorf("at %v: dual value %v, plain value %v", a, d.Real(), plain)
		}
		want := rationalDerivative(a)
		if math.Abs(d.Derivative()-want) > 1e-12*math.Max(1, math.Abs(want)) {
			t.Errorf("at %v: derivative %v, want %v", a, d.Derivative(), want)
		}
	}
}

func TestAlgebraFloat32(t *testing.T) {
	got := rational[Dual32, float32](Variable[float32](0.7))
	want := rational[Dual64, float64](Variable(0.7))
	opts := cmp.Options{cmp.AllowUnexported(Dual32{}), cmpopts.EquateApprox(1e-5, 0)}
	if diff := cmp.Diff(Convert[float32](want), got, opts); diff != "" {
		t.Errorf("float32 vs float64 (-want +got):\n%s", diff)
	}
}

func TestPlainOps(t *testing.T) {
	a, b := NewPlain(6.0), NewPlain(1.5)
	tests := []struct {
		name string
		got  Plain[float64]
		want float64
	}{
		{"Add", a.Add(b), 7.5},
		{"Sub", a.Sub(b), 4.5},
		{"Mul", a.Mul(b), 9},
		{"Div", a.Div(b), 4},
		{"Neg", a.Neg(), -6},
		{"Sin", b.Sin(), math.Sin(1.5)},
		{"Cos", b.Cos(), math.Cos(1.5)},
		{"Exp", b.Exp(), math.Exp(1.5)},
		{"Ln", b.Ln(), math.Log(1.5)},
		{"Sqrt", a.Sqrt(), math.Sqrt(6)},
		{"Lift", a.Lift(2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Real() != tt.want {
				t.Errorf("got %v, want %v", tt.got.Real(), tt.want)
			}
		})
	}

	if got, want := b.Tan().Real(), math.Tan(1.5); math.Abs(got-want) > 1e-12*math.Abs(want) {
		t.Errorf("Tan: got %v, want %v", got, want)
	}
}

func TestLiftIsConstant(t *testing.T) {
	x := Variable(2.0)
	if got := x.Lift(5); !got.Equal(Constant(5.0)) {
		t.Errorf("Lift(5) = %v, want %v", got, Constant(5.0))
	}
}

func TestDiff(t *testing.T) {
	value, derivative := Diff(func(x Dual64) Dual64 { return x.Sqrt() }, 4)
	if value != 2 || derivative != 0.25 {
		t.Errorf("Diff(sqrt, 4) = (%v, %v), want (2, 0.25)", value, derivative)
	}

	v32, d32 := Diff(func(x Dual32) Dual32 { return x.Mul(x) }, 3)
	if v32 != 9 || d32 != 6 {
		t.Errorf("Diff(x², 3) = (%v, %v), want (9, 6)", v32, d32)
	}
}

func TestConvert(t *testing.T) {
	x := New(1.5, -2.25)
	x32 := Convert[float32](x)
	if x32.Real() != 1.5 || x32.Derivative() != -2.25 {
		t.Errorf("Convert[float32](%v) = %v", x, x32)
	}
	if back := Convert[float64](x32); !back.Equal(x) {
		t.Errorf("round trip: got %v, want %v", back, x)
	}

	narrowed := Convert[float32](New(0.1, 0.0))
	if narrowed.Real() != float32(0.1) {
		t.Errorf("Convert rounds: got %v, want %v", narrowed.Real(), float32(0.1))
	}
}
