package register_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qfermion/pauli"
	"github.com/katalvlaran/qfermion/register"
)

// TestNew verifies the all-identity construction.
func TestNew(t *testing.T) {
	r := register.New(4)
	require.Equal(t, 4, r.Len())
	require.Equal(t, "IIII", r.Signature())
	require.Equal(t, complex128(1), r.Coefficient())
	require.Equal(t, 0, r.Weight())
}

// TestFromSignature_Lenient pins the documented leniency policy: unknown
// characters degrade to I silently, never to an error.
func TestFromSignature_Lenient(t *testing.T) {
	r := register.FromSignature("Xq Z?", 2i)
	require.Equal(t, "XIIZI", r.Signature())
	require.Equal(t, complex128(2i), r.Coefficient())
}

// TestAt covers the (I, false) out-of-range policy.
func TestAt(t *testing.T) {
	r := register.FromSignature("XYZ", 1)
	p, ok := r.At(1)
	require.True(t, ok)
	require.Equal(t, pauli.Y, p)

	for _, i := range []int{-1, 3, 100} {
		p, ok = r.At(i)
		require.False(t, ok)
		require.Equal(t, pauli.I, p)
	}
}

// TestWithOperatorAt covers replacement, the out-of-range no-op, and value
// semantics (the receiver is never mutated).
func TestWithOperatorAt(t *testing.T) {
	r := register.New(3)
	s := r.WithOperatorAt(1, pauli.Z)
	require.Equal(t, "IZI", s.Signature())
	require.Equal(t, "III", r.Signature(), "receiver must stay untouched")

	// Out of range: no-op by policy, not an error.
	require.Equal(t, "IZI", s.WithOperatorAt(-1, pauli.X).Signature())
	require.Equal(t, "IZI", s.WithOperatorAt(3, pauli.X).Signature())
}

// TestApplyAt verifies factor composition with exact phase folding:
// applying Z on a position already holding X yields X·Z = −i·Y.
func TestApplyAt(t *testing.T) {
	r := register.New(2).WithOperatorAt(0, pauli.X)
	s := r.ApplyAt(0, pauli.Z)
	require.Equal(t, "YI", s.Signature())
	require.Equal(t, complex128(-1i), s.Coefficient())

	// Applying onto identity is plain placement.
	s = r.ApplyAt(1, pauli.Y)
	require.Equal(t, "XY", s.Signature())
	require.Equal(t, complex128(1), s.Coefficient())

	// Out of range: no-op.
	require.Equal(t, r, r.ApplyAt(5, pauli.Z))
}

// TestMul_SameWidth verifies entrywise products with phase accumulation.
func TestMul_SameWidth(t *testing.T) {
	a := register.FromSignature("XY", 2)
	b := register.FromSignature("YX", 3)
	// X·Y = +i·Z at qubit 0, Y·X = −i·Z at qubit 1: phases cancel exactly.
	c := a.Mul(b)
	require.Equal(t, "ZZ", c.Signature())
	require.Equal(t, complex128(6), c.Coefficient())
}

// TestMul_Padding pins the dimension-mismatch policy: the shorter register
// is zero-padded with I and the result has the larger width.
func TestMul_Padding(t *testing.T) {
	a := register.FromSignature("X", 1)
	b := register.FromSignature("ZYZ", 1)
	c := a.Mul(b)
	require.Equal(t, 3, c.Len())
	require.Equal(t, "YYZ", c.Signature()) // X·Z = −i·Y at qubit 0
	require.Equal(t, complex128(-1i), c.Coefficient())

	// Padding is symmetric in width, not in operator order.
	d := b.Mul(a)
	require.Equal(t, "YYZ", d.Signature()) // Z·X = +i·Y
	require.Equal(t, complex128(1i), d.Coefficient())
}

// TestScaleDaggerWeight covers the small value helpers.
func TestScaleDaggerWeight(t *testing.T) {
	r := register.FromSignature("ZZXI", 0.5i)
	require.Equal(t, 3, r.Weight())
	require.Equal(t, complex128(1i), r.Scale(2).Coefficient())
	require.Equal(t, complex128(-0.5i), r.Dagger().Coefficient())
	require.Equal(t, "ZZXI", r.Dagger().Signature())
}
