// Package vectorspace assembles a vector space structure from five
// caller-injected operations over an opaque element type.
//
// 🚀 What is operation injection?
//
//	Instead of demanding that your element type implement methods or
//	operators, you supply the vector space operations as plain functions:
//	  • Add   — vector addition:        (E, E) → E
//	  • Scale — scalar action:          (S, E) → E
//	  • Neg   — additive inverse:       (E) → E
//	  • Zero  — zero-element supplier:  () → E
//	  • Equal — element equality:       (E, E) → bool
//	New validates the bundle once and returns an immutable Space whose
//	methods are direct, allocation-free pass-throughs. A sixth operation,
//	Diff(a, b) = Add(a, Neg(b)), is derived — always recomputed from the
//	injected Add and Neg, never independently injectable.
//
// ✨ Why this shape?
//
//   - Works with element types you do not control (funcs, foreign structs)
//   - Several distinct vector space structures may coexist over one
//     element type (different zeros, different equalities)
//   - Symbolic and lazy representations need no special casing — the
//     package never inspects an element
//
// The vector space axioms (associativity, commutativity, distributivity,
// zero as identity, Neg as inverse) are the caller's contract: spacekit
// checks structure, not law. Operations must be pure and repeatable; given
// that, a Space is safe for unsynchronized concurrent use.
//
// ⚙️ Usage:
//
//	vs, err := vectorspace.New(vectorspace.Ops[[]float64, float64]{
//	  Add:   addPointwise,
//	  Scale: scalePointwise,
//	  Neg:   negPointwise,
//	  Zero:  func() []float64 { return make([]float64, dim) },
//	  Equal: slices.Equal[[]float64],
//	})
//	if err != nil {
//	  // a nil operation slot: caps.ErrNotCallable, tagged with the role
//	}
//	sum := vs.Add(a, b)
//	d := vs.Diff(a, b) // = vs.Add(a, vs.Neg(b))
//
// See examples in example_test.go and the function-space walkthrough under
// examples/ at the repository root.
package vectorspace
