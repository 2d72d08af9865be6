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
	"io"
	"math"
	"strconv"
	"strings"
	"unsafe"
)

// String renders x as "a+bε" or "a-bε".
//
// The sign between the components is the sign of the derivative, so
// New(3, -2) renders as "3-2ε" and New(-3, 2) as "-3+2ε". Components use the
// shortest representation that round-trips at the width of T.
func (x Dual[T]) String() string {
	return x.format('g', -1)
}

// Format implements fmt.Formatter.
//
// %v and %s print String. %e, %E, %f, %F, %g and %G apply the verb and
// precision to both components, e.g. fmt.Sprintf("%.2f", New(1.0, -0.5))
// is "1.00-0.50ε". %#v prints Go syntax.
func (x Dual[T]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "dual.New(%s, %s)", formatFloat(x.real, 'g', -1), formatFloat(x.dual, 'g', -1))
			return
		}
		io.WriteString(f, x.String())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		prec, ok := f.Precision()
		if !ok {
			prec = -1
		}
		if verb == 'F' {
			verb = 'f'
		}
		io.WriteString(f, x.format(byte(verb), prec))
	default:
		fmt.Fprintf(f, "%%!%c(dual.Dual=%s)", verb, x.String())
	}
}

func (x Dual[T]) format(verb byte, prec int) string {
	var sb strings.Builder
	sb.WriteString(formatFloat(x.real, verb, prec))
	if math.Signbit(float64(x.dual)) {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	sb.WriteString(formatFloat(T(math.Abs(float64(x.dual))), verb, prec))
	sb.WriteString("ε")
	return sb.String()
}

// formatFloat formats v at the bit size of T. Positive infinity is written
// without its leading '+'.
func formatFloat[T Floats](v T, verb byte, prec int) string {
	var zero T
	s := strconv.FormatFloat(float64(v), verb, prec, int(unsafe.Sizeof(zero))*8)
	return strings.TrimPrefix(s, "+")
}
