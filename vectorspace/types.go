// SPDX-License-Identifier: MIT
// Package vectorspace: operation bundle and role names.
// This file declares the Ops injection bundle and the role tags used when a
// capability check fails. The assembler itself lives in vectorspace.go.

package vectorspace

import "github.com/katalvlaran/spacekit/caps"

// Role tags reported by New when an operation slot fails verification.
// Kept as constants so tests and callers can grep rejections precisely.
const (
	RoleAddition     = "addition"
	RoleScalarAction = "scalar action"
	RoleNegation     = "negation"
	RoleZeroSupplier = "zero supplier"
	RoleEquality     = "equality"
)

// Ops bundles the five operation implementations a vector space needs.
//
// Each slot is a typed function: supplying an implementation with the wrong
// arity, argument types or return type fails to compile, which is the
// compile-time half of capability checking. The construction-time half
// (nil slots) is enforced by New.
//
// All implementations must be pure and repeatable: same inputs, same
// outputs, no side effects. They are stored once per Space and shared by
// every call; no per-call allocation or re-lookup happens.
//
// Fields:
//   - Add   — vector addition; must be associative and commutative.
//   - Scale — action of a scalar on an element; must distribute over Add.
//   - Neg   — additive inverse; Add(v, Neg(v)) must equal Zero().
//   - Zero  — supplies the additive identity.
//   - Equal — element equality used by callers to state laws; the
//     assembler itself never invokes it.
type Ops[E any, S caps.Field] struct {
	Add   func(a, b E) E
	Scale func(s S, v E) E
	Neg   func(v E) E
	Zero  func() E
	Equal func(a, b E) bool
}
