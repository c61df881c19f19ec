// SPDX-License-Identifier: MIT
// Package normedspace: base-space contract, norm injection, sentinel set.
// This file declares the VectorSpace interface (the contract a base space
// must satisfy), the NormFunc slot, the role tag and the package sentinels.
// The assembler lives in normedspace.go.

package normedspace

import (
	"errors"

	"github.com/katalvlaran/spacekit/caps"
)

// RoleNorm tags capability rejections of the norm slot.
const RoleNorm = "norm"

// ErrNilBase indicates that no base vector space was supplied.
var ErrNilBase = errors.New("normedspace: base vector space is nil")

// VectorSpace is the contract a base space must satisfy to be extended
// with a norm. It is defined here, on the consumer side, so any structure
// exposing these six operations qualifies; *vectorspace.Space satisfies it.
//
// Diff must equal Add(a, Neg(b)) — the induced metric is derived from Diff
// and inherits this identity.
type VectorSpace[E any, S caps.Field] interface {
	Add(a, b E) E
	Scale(s S, v E) E
	Neg(v E) E
	Zero() E
	Equal(a, b E) bool
	Diff(a, b E) E
}

// NormFunc is an injected norm implementation: a pure, repeatable mapping
// from an element to its Measure-typed length. The norm axioms are the
// implementer's contract (see package docs).
type NormFunc[E any, M caps.Measure] func(v E) M
