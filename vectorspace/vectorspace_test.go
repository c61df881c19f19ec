package vectorspace_test

import (
	"testing"

	"github.com/katalvlaran/spacekit/caps"
	"github.com/katalvlaran/spacekit/vectorspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// realOps builds a conforming bundle over plain float64 elements.
func realOps() vectorspace.Ops[float64, float64] {
	return vectorspace.Ops[float64, float64]{
		Add:   func(a, b float64) float64 { return a + b },
		Scale: func(s, v float64) float64 { return s * v },
		Neg:   func(v float64) float64 { return -v },
		Zero:  func() float64 { return 0 },
		Equal: func(a, b float64) bool { return a == b },
	}
}

// symbolicOps builds a bundle over symbolic string labels, where the
// operations construct expression text instead of computing numbers. This
// exercises a genuinely user-defined, non-numeric element type.
func symbolicOps() vectorspace.Ops[string, int] {
	return vectorspace.Ops[string, int]{
		Add:   func(a, b string) string { return "(" + a + " + " + b + ")" },
		Scale: func(s int, v string) string { return "(scaled " + v + ")" },
		Neg:   func(v string) string { return "(-" + v + ")" },
		Zero:  func() string { return "0" },
		Equal: func(a, b string) bool { return a == b },
	}
}

// TestNew_ValidBundle verifies that a fully-populated bundle assembles.
func TestNew_ValidBundle(t *testing.T) {
	vs, err := vectorspace.New(realOps())
	require.NoError(t, err, "conforming bundle must assemble")
	require.NotNil(t, vs, "assembled space must be usable")

	assert.Equal(t, 5.0, vs.Add(2, 3), "Add must pass through")
	assert.Equal(t, 6.0, vs.Scale(2, 3), "Scale must pass through")
	assert.Equal(t, -3.0, vs.Neg(3), "Neg must pass through")
	assert.Equal(t, 0.0, vs.Zero(), "Zero must pass through")
	assert.True(t, vs.Equal(4, 4), "Equal must pass through")
}

// TestNew_NilOperationRejected zeroes out each role in turn and demands a
// role-tagged capability rejection before any Space exists.
func TestNew_NilOperationRejected(t *testing.T) {
	cases := []struct {
		role string
		drop func(*vectorspace.Ops[float64, float64])
	}{
		{vectorspace.RoleAddition, func(o *vectorspace.Ops[float64, float64]) { o.Add = nil }},
		{vectorspace.RoleScalarAction, func(o *vectorspace.Ops[float64, float64]) { o.Scale = nil }},
		{vectorspace.RoleNegation, func(o *vectorspace.Ops[float64, float64]) { o.Neg = nil }},
		{vectorspace.RoleZeroSupplier, func(o *vectorspace.Ops[float64, float64]) { o.Zero = nil }},
		{vectorspace.RoleEquality, func(o *vectorspace.Ops[float64, float64]) { o.Equal = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			ops := realOps()
			tc.drop(&ops)

			vs, err := vectorspace.New(ops)
			assert.Nil(t, vs, "no partially-valid space may escape")
			assert.ErrorIs(t, err, caps.ErrNotCallable, "nil slot must wrap caps.ErrNotCallable")
			assert.Contains(t, err.Error(), tc.role, "rejection must name the failing role")
		})
	}
}

// TestDiff_DerivesFromAddNeg asserts the structural identity
// Diff(a, b) == Add(a, Neg(b)) over a symbolic element type, where any
// shortcut (e.g. a hand-written subtraction) would produce different text.
func TestDiff_DerivesFromAddNeg(t *testing.T) {
	vs, err := vectorspace.New(symbolicOps())
	require.NoError(t, err)

	got := vs.Diff("sin", "cos")
	assert.Equal(t, "(sin + (-cos))", got, "Diff must be Add(a, Neg(b)) verbatim")
	assert.Equal(t, vs.Add("sin", vs.Neg("cos")), got, "Diff and its definition must agree")
}

// TestZeroIdentity_CallerProperty checks, through the caller's own Equal,
// that the supplied zero behaves as a two-sided additive identity. This is
// the caller's law — the assembler does not enforce it — so the test
// documents the contract rather than the library's behavior.
func TestZeroIdentity_CallerProperty(t *testing.T) {
	vs, err := vectorspace.New(realOps())
	require.NoError(t, err)

	for _, v := range []float64{-2.5, 0, 7} {
		assert.True(t, vs.Equal(vs.Add(v, vs.Zero()), v), "zero must be a right identity")
		assert.True(t, vs.Equal(vs.Add(vs.Zero(), v), v), "zero must be a left identity")
	}
}

// TestNew_Idempotent assembles the same structure twice and verifies the
// two instances behave identically and independently.
func TestNew_Idempotent(t *testing.T) {
	first, err := vectorspace.New(realOps())
	require.NoError(t, err)
	second, err := vectorspace.New(realOps())
	require.NoError(t, err)

	assert.NotSame(t, first, second, "each assembly yields an independent structure")
	assert.Equal(t, first.Diff(9, 4), second.Diff(9, 4), "identical inputs must produce identical outputs")
	assert.Equal(t, first.Scale(3, 2), second.Scale(3, 2), "identical inputs must produce identical outputs")
}
