// SPDX-License-Identifier: MIT
// Package caps: capability predicates for algebraic roles.
// This file declares the Field and Measure constraint sets and the
// construction-time Callable/Verify check. All assembler constructors MUST
// route operation implementations through Verify and tests MUST match the
// sentinel via errors.Is.

package caps

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrNotCallable indicates an operation implementation that is nil, a
// typed-nil function value, or not a function at all. It is the only error
// the capability layer produces; assemblers wrap it with the failing role.
var ErrNotCallable = errors.New("caps: operation implementation is not callable")

// Field is the capability constraint for scalar coefficient types.
//
// A Field type is closed under +, -, * and / (each returning the type
// itself) and comparable with ==. Every integer, floating-point and complex
// kernel type satisfies this, as does any type derived from one (~).
//
// Two obligations stay with the caller:
//   - division by the additive identity is undefined behavior;
//   - integer types divide with truncation, which is a field only in the
//     degenerate sense — acceptable for symbolic or index use, not for
//     analysis.
type Field interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Measure is the capability constraint for distance and norm result types.
//
// A Measure type supports + returning itself and the total order ==, <, <=.
// That is exactly constraints.Ordered: all integer and floating-point
// kernels plus string (string concatenation is +, lexicographic order is
// the total order — useful for symbolic measures).
type Measure interface {
	constraints.Ordered
}

// Callable reports whether fn holds an invocable operation implementation:
// a non-nil value of function kind. A typed-nil func smuggled through the
// any interface is reported as not callable.
//
// Complexity: O(1). Runs once per operation per structure assembly.
func Callable(fn any) bool {
	if fn == nil {
		return false
	}
	v := reflect.ValueOf(fn)

	return v.Kind() == reflect.Func && !v.IsNil()
}

// Verify validates a single operation implementation for the named role.
// Returns nil when fn is callable, otherwise a role-tagged wrap of
// ErrNotCallable (match with errors.Is).
//
// Verify is the construction-time half of capability checking; the
// compile-time half (signature and type-set conformance) is carried by the
// assemblers' typed generic slots and never reaches this function.
func Verify(role string, fn any) error {
	if !Callable(fn) {
		return fmt.Errorf("%s: %w", role, ErrNotCallable)
	}

	return nil
}
