// Package spacekit assembles complete mathematical structures — vector
// spaces, metric spaces, and normed spaces with an automatically induced
// metric — from a handful of caller-injected operation implementations.
//
// 🚀 What is spacekit?
//
//	A small, pure-Go composition layer built around operation injection:
//	instead of requiring your element type to expose operators or methods,
//	you hand each structure the operations it needs as plain functions:
//		• vectorspace/ — {Add, Scale, Neg, Zero, Equal} → a vector space
//		  with a derived Diff(a,b) = Add(a, Neg(b))
//		• metricspace/ — one Distance function → a metric space
//		• normedspace/ — a vector space + one Norm function → a normed
//		  space whose Distance(a,b) is wired as Norm(Diff(a,b))
//		• caps/       — the capability predicates gating all of the above
//
// ✨ Why choose spacekit?
//
//   - Opaque elements – any element type works: vectors, functions,
//     symbolic expressions; spacekit never inspects their structure
//   - Checked before use – wrong signatures fail to compile; nil operation
//     implementations are rejected once, at assembly, never mid-call
//   - Pure Go – no cgo, side-effect-free, safe for concurrent callers
//   - Composable – the normed space embeds a real metric space assembled
//     from the induced-distance formula, not a re-implementation
//
// Structural conformance is checked mechanically; mathematical law is not.
// Whether a supplied "norm" truly satisfies the triangle inequality is the
// caller's contract — see the package docs of metricspace and normedspace.
//
// Quick taste:
//
//	vs, _ := vectorspace.New(vectorspace.Ops[float64, float64]{
//		Add:   func(a, b float64) float64 { return a + b },
//		Scale: func(s, v float64) float64 { return s * v },
//		Neg:   func(v float64) float64 { return -v },
//		Zero:  func() float64 { return 0 },
//		Equal: func(a, b float64) bool { return a == b },
//	})
//	ns, _ := normedspace.New[float64, float64, float64](vs, math.Abs)
//	ns.Distance(3, 5) // = math.Abs(3 + (-5)) = 2
//
// Dive into examples/ for a function-space walkthrough, where the elements
// are real-valued functions paired with symbolic identities.
//
//	go get github.com/katalvlaran/spacekit
package spacekit
