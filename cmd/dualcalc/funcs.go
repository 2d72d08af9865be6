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

package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-dual/dual"
)

type unary[T dual.Floats] func(dual.Dual[T]) dual.Dual[T]

// functions returns the named functions available to eval.
func functions[T dual.Floats]() map[string]unary[T] {
	return map[string]unary[T]{
		"sin":  dual.Dual[T].Sin,
		"cos":  dual.Dual[T].Cos,
		"tan":  dual.Dual[T].Tan,
		"exp":  dual.Dual[T].Exp,
		"ln":   dual.Dual[T].Ln,
		"sqrt": dual.Dual[T].Sqrt,
		"neg":  dual.Dual[T].Neg,
		"square": func(x dual.Dual[T]) dual.Dual[T] {
			return x.Mul(x)
		},
		"recip": func(x dual.Dual[T]) dual.Dual[T] {
			return dual.Constant[T](1).Div(x)
		},
	}
}

// functionNames returns the sorted names accepted by compose.
func functionNames() []string {
	names := lo.Keys(functions[float64]())
	slices.Sort(names)
	return names
}

// compose resolves names and returns the function that applies them in
// order, first name innermost.
func compose[T dual.Floats](names []string) (unary[T], error) {
	if len(names) == 0 {
		return nil, errors.New("no functions given")
	}
	table := functions[T]()
	fns := make([]unary[T], 0, len(names))
	for _, name := range names {
		fn, ok := table[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown function %q (known: %s)", name, strings.Join(functionNames(), ", "))
		}
		fns = append(fns, fn)
	}
	return func(x dual.Dual[T]) dual.Dual[T] {
		return lo.Reduce(fns, func(acc dual.Dual[T], fn unary[T], _ int) dual.Dual[T] {
			return fn(acc)
		}, x)
	}, nil
}
