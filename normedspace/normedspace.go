// SPDX-License-Identifier: MIT
// Package normedspace: assembler and assembled structure.
// New validates the base space and the norm, wires the induced distance as
// norm(base.Diff(a, b)), delegates to metricspace.New for the embedded
// metric structure, and returns an immutable Space that forwards all base
// operations.

package normedspace

import (
	"fmt"

	"github.com/katalvlaran/spacekit/caps"
	"github.com/katalvlaran/spacekit/metricspace"
)

// Space is an assembled normed space structure over element type E, scalar
// type S and measure type M.
//
// A Space wraps its base vector space and embeds the metric space induced
// by the norm; it adds no state of its own. Immutable after assembly and
// safe for unsynchronized concurrent use (given pure implementations).
// Construct only via New.
type Space[E any, S caps.Field, M caps.Measure] struct {
	base   VectorSpace[E, S]
	norm   NormFunc[E, M]
	metric *metricspace.Space[E, M]
}

// New assembles a normed space from an already-assembled base vector space
// and an injected norm implementation.
//
// Validation order: nil base → ErrNilBase; non-callable norm → role-tagged
// wrap of caps.ErrNotCallable, prefixed "normedspace:". On success the
// induced distance
//
//	func(a, b E) M { return norm(base.Diff(a, b)) }
//
// is handed to metricspace.New and the resulting metric space embedded.
// Distance has no other definition anywhere in the package, so
// Distance(a, b) == Norm(Diff(a, b)) holds for every call by construction.
//
// Assembly is idempotent and side-effect-free. Complexity: O(1).
func New[E any, S caps.Field, M caps.Measure](base VectorSpace[E, S], norm NormFunc[E, M]) (*Space[E, S, M], error) {
	if base == nil {
		return nil, ErrNilBase
	}
	if err := caps.Verify(RoleNorm, norm); err != nil {
		return nil, fmt.Errorf("normedspace: %w", err)
	}

	// The induced-metric formula, wired verbatim.
	induced := metricspace.DistanceFunc[E, M](func(a, b E) M {
		return norm(base.Diff(a, b))
	})
	metric, err := metricspace.New(induced)
	if err != nil {
		return nil, fmt.Errorf("normedspace: %w", err)
	}

	return &Space[E, S, M]{base: base, norm: norm, metric: metric}, nil
}

// Add forwards to the base space's addition.
func (sp *Space[E, S, M]) Add(a, b E) E { return sp.base.Add(a, b) }

// Scale forwards to the base space's scalar action.
func (sp *Space[E, S, M]) Scale(s S, v E) E { return sp.base.Scale(s, v) }

// Neg forwards to the base space's negation.
func (sp *Space[E, S, M]) Neg(v E) E { return sp.base.Neg(v) }

// Zero forwards to the base space's zero supplier.
func (sp *Space[E, S, M]) Zero() E { return sp.base.Zero() }

// Equal forwards to the base space's equality.
func (sp *Space[E, S, M]) Equal(a, b E) bool { return sp.base.Equal(a, b) }

// Diff forwards to the base space's derived difference.
func (sp *Space[E, S, M]) Diff(a, b E) E { return sp.base.Diff(a, b) }

// Norm returns the injected norm of v.
func (sp *Space[E, S, M]) Norm(v E) M { return sp.norm(v) }

// Distance returns the induced distance between a and b, forwarding to the
// embedded metric space: Norm(Diff(a, b)).
func (sp *Space[E, S, M]) Distance(a, b E) M { return sp.metric.Distance(a, b) }

// Metric returns the embedded metric space assembled from the induced
// distance. It is a fully usable metricspace.Space sharing this space's
// norm wiring.
func (sp *Space[E, S, M]) Metric() *metricspace.Space[E, M] { return sp.metric }
