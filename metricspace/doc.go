// Package metricspace assembles a metric space structure from one
// caller-injected distance function over an opaque element type.
//
// 🚀 What is a metric space here?
//
//	A set of elements plus a single injected operation:
//	  • Distance — (E, E) → M, where M satisfies caps.Measure
//	New validates the functor once and returns an immutable Space whose
//	Distance method is a direct pass-through. Nothing else exists: no
//	stored elements, no index, no state.
//
// ⚠️ The four metric axioms are the caller's contract:
//
//  1. Non-negativity:               Distance(a, b) >= 0
//  2. Identity of indiscernibles:   Distance(a, b) == 0 iff a == b
//  3. Symmetry:                     Distance(a, b) == Distance(b, a)
//  4. Triangle inequality:          Distance(a, c) <= Distance(a, b) + Distance(b, c)
//
// The assembler verifies the type signature mechanically but cannot verify
// these laws; an implementation that violates them still assembles and
// simply is not mathematically a metric downstream. This boundary is
// deliberate — structural conformance is checked, mathematical law is not.
//
// ⚙️ Usage:
//
//	ms, err := metricspace.New(func(a, b [2]float64) float64 {
//	  dx, dy := a[0]-b[0], a[1]-b[1]
//	  return math.Sqrt(dx*dx + dy*dy)
//	})
//	if err != nil {
//	  // nil distance implementation: caps.ErrNotCallable
//	}
//	d := ms.Distance(p, q)
//
// For a metric derived from a norm over a vector space, see normedspace,
// which delegates to this package for the induced structure.
package metricspace
