// SPDX-License-Identifier: MIT
// Package vectorspace: assembler and assembled structure.
// New validates the injected bundle through caps.Verify (first failure
// aborts; no partially-valid Space escapes) and returns an immutable Space
// whose methods pass straight through to the injected implementations.

package vectorspace

import (
	"fmt"

	"github.com/katalvlaran/spacekit/caps"
)

// Space is an assembled vector space structure over element type E and
// scalar type S.
//
// A Space is immutable after assembly and holds no state beyond the
// injected operations, so any number of goroutines may call its methods
// concurrently without synchronization (given pure implementations).
// Construct only via New.
type Space[E any, S caps.Field] struct {
	ops Ops[E, S]
}

// New assembles a vector space from the injected operation bundle.
//
// Every slot is verified through the capability checker; the first
// non-callable slot aborts construction with a role-tagged wrap of
// caps.ErrNotCallable, prefixed "vectorspace:". On success the returned
// Space is ready for use and never errors again.
//
// Assembly is idempotent and side-effect-free: calling New twice with the
// same bundle yields two independent, equivalently-behaving spaces.
//
// Complexity: O(1) — five capability checks, no allocation beyond the Space.
func New[E any, S caps.Field](ops Ops[E, S]) (*Space[E, S], error) {
	for _, op := range []struct {
		role string
		fn   any
	}{
		{RoleAddition, ops.Add},
		{RoleScalarAction, ops.Scale},
		{RoleNegation, ops.Neg},
		{RoleZeroSupplier, ops.Zero},
		{RoleEquality, ops.Equal},
	} {
		if err := caps.Verify(op.role, op.fn); err != nil {
			return nil, fmt.Errorf("vectorspace: %w", err)
		}
	}

	return &Space[E, S]{ops: ops}, nil
}

// Add returns the sum of a and b under the injected addition.
func (sp *Space[E, S]) Add(a, b E) E { return sp.ops.Add(a, b) }

// Scale returns the action of scalar s on element v.
func (sp *Space[E, S]) Scale(s S, v E) E { return sp.ops.Scale(s, v) }

// Neg returns the additive inverse of v.
func (sp *Space[E, S]) Neg(v E) E { return sp.ops.Neg(v) }

// Zero returns the additive identity element.
func (sp *Space[E, S]) Zero() E { return sp.ops.Zero() }

// Equal reports whether a and b are equal under the injected equality.
func (sp *Space[E, S]) Equal(a, b E) bool { return sp.ops.Equal(a, b) }

// Diff returns a - b, derived as Add(a, Neg(b)).
//
// Diff is not injectable and is recomputed from the injected Add and Neg on
// every call — no memoization, no reordering. The identity
// Diff(a, b) == Add(a, Neg(b)) therefore holds by construction.
func (sp *Space[E, S]) Diff(a, b E) E { return sp.ops.Add(a, sp.ops.Neg(b)) }
