// Package normedspace extends an assembled vector space with a norm and
// mechanically derives the induced metric.
//
// 🚀 What is a normed space here?
//
//	A vector space plus one injected operation:
//	  • Norm — (E) → M, where M satisfies caps.Measure
//	From the norm, a distance is derived by the induced-metric formula:
//
//	    Distance(a, b) = Norm(Diff(a, b))
//
//	New wires this literally: it builds an internal distance closure over
//	the base space's Diff, hands it to metricspace.New, and embeds the
//	resulting metric space. Distance forwards to that embedded structure —
//	there is no alternate code path, so the identity above holds for every
//	call by construction, not by assertion.
//
// ✨ Composition, not inheritance:
//
//	The base vector space is an explicit field accepted through the
//	VectorSpace interface, and all six of its operations (Add, Scale, Neg,
//	Zero, Equal, Diff) are forwarded unchanged. The embedded metric space
//	is likewise an explicit field, reachable via Metric(). Nothing is
//	re-implemented; the normed space is pure wiring.
//
// ⚠️ Norm axioms are the caller's contract:
//
//  1. Non-negativity:          Norm(v) >= 0
//  2. Definiteness:            Norm(v) == 0 iff v == Zero()
//  3. Absolute homogeneity:    Norm(Scale(s, v)) == |s| * Norm(v)
//  4. Triangle inequality:     Norm(Add(u, v)) <= Norm(u) + Norm(v)
//
// If these hold, the induced distance satisfies all metric axioms. If they
// do not, the induced structure still assembles and still computes
// Norm(Diff(a, b)) — it simply is not mathematically a metric. Structural
// conformance is checked; law is not.
//
// ⚙️ Usage:
//
//	vs, _ := vectorspace.New(ops)                       // base space
//	ns, err := normedspace.New[E, S, float64](vs, norm) // + norm
//	d := ns.Distance(a, b)                              // = norm(vs.Diff(a, b))
//	m := ns.Metric()                                    // embedded metric space
//
// See the function-space walkthrough under examples/ for a normed space
// over an infinite-dimensional element type.
package normedspace
