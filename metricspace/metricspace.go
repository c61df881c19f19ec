// SPDX-License-Identifier: MIT
// Package metricspace: distance injection and assembled structure.
// New validates the single injected functor through caps.Verify and returns
// an immutable Space; Distance is a direct pass-through with no alternate
// code path.

package metricspace

import (
	"fmt"

	"github.com/katalvlaran/spacekit/caps"
)

// RoleDistance tags capability rejections of the distance slot.
const RoleDistance = "distance"

// DistanceFunc is an injected distance implementation: a pure, repeatable
// mapping from an element pair to a Measure value. The metric axioms are
// the implementer's contract (see package docs).
type DistanceFunc[E any, M caps.Measure] func(a, b E) M

// Space is an assembled metric space structure over element type E with
// measure type M.
//
// A Space is immutable after assembly and stateless, so concurrent use
// needs no synchronization (given a pure distance implementation).
// Construct only via New.
type Space[E any, M caps.Measure] struct {
	dist DistanceFunc[E, M]
}

// New assembles a metric space from the injected distance implementation.
//
// A nil functor is rejected with a role-tagged wrap of caps.ErrNotCallable,
// prefixed "metricspace:"; on success the returned Space never errors again.
// Assembly is idempotent and side-effect-free.
//
// Complexity: O(1).
func New[E any, M caps.Measure](dist DistanceFunc[E, M]) (*Space[E, M], error) {
	if err := caps.Verify(RoleDistance, dist); err != nil {
		return nil, fmt.Errorf("metricspace: %w", err)
	}

	return &Space[E, M]{dist: dist}, nil
}

// Distance returns the injected distance between a and b.
func (sp *Space[E, M]) Distance(a, b E) M { return sp.dist(a, b) }
