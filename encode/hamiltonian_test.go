// Cross-encoder agreement on a fixed molecular-style Hamiltonian: the
// identity coefficient of the encoded operator is encoding-invariant (it
// is Tr(H)/2ⁿ), so all five encoders must produce the same complex128 bit
// for bit. The fixture mimics molecular hydrogen in 4 spin orbitals — 15
// nonzero integral entries — with coefficients rounded to dyadic rationals
// so every intermediate sum is exact and order-insensitive.
package encode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qfermion/encode"
	"github.com/katalvlaran/qfermion/register"
)

// oneBody is an h_pq · a†_p a_q integral entry.
type oneBody struct {
	p, q int
	h    float64
}

// twoBody is an h_pqrs · a†_p a†_q a_r a_s integral entry (already
// normal-ordered; this engine never re-orders).
type twoBody struct {
	p, q, r, s int
	h          float64
}

// molecularFixture returns the 15-entry Hamiltonian used across the suite:
// 4 diagonal one-body terms and 11 two-body terms.
func molecularFixture() ([]oneBody, []twoBody) {
	one := []oneBody{
		{0, 0, -1.25},
		{1, 1, -1.25},
		{2, 2, -0.5},
		{3, 3, -0.5},
	}
	two := []twoBody{
		{0, 1, 1, 0, 0.671875},
		{1, 0, 0, 1, 0.671875},
		{2, 3, 3, 2, 0.6875},
		{3, 2, 2, 3, 0.6875},
		{0, 2, 2, 0, 0.65625},
		{2, 0, 0, 2, 0.65625},
		{1, 3, 3, 1, 0.65625},
		{3, 1, 1, 3, 0.65625},
		{0, 3, 3, 0, 0.65625},
		// The exchange pair has no diagonal part (creation and annihilation
		// mode sets differ) and is its own adjoint as a pair.
		{0, 1, 3, 2, 0.1875},
		{2, 3, 1, 0, 0.1875},
	}
	return one, two
}

// assembleHamiltonian encodes H = Σ h_pq a†_p a_q + ½ Σ h_pqrs a†_p a†_q a_r a_s
// with enc, keeping a fixed term order so cross-encoder comparisons are
// deterministic.
func assembleHamiltonian(t *testing.T, enc encode.Encoder, n int) register.Sequence {
	t.Helper()
	op := func(kind encode.OperatorKind, mode int) register.Sequence {
		seq, err := enc.Encode(kind, mode, n)
		require.NoError(t, err)
		return seq
	}
	one, two := molecularFixture()
	h := register.NewSequence()
	for _, e := range one {
		term := op(encode.Raise, e.p).Mul(op(encode.Lower, e.q)).Scale(complex(e.h, 0))
		h = h.Add(term)
	}
	for _, e := range two {
		term := op(encode.Raise, e.p).
			Mul(op(encode.Raise, e.q)).
			Mul(op(encode.Lower, e.r)).
			Mul(op(encode.Lower, e.s)).
			Scale(complex(e.h/2, 0))
		h = h.Add(term)
	}
	return h.Reduce()
}

// TestHamiltonian_IdentityCoefficientAgreement verifies the invariant
// across all five encoders, bit-identically, and against the analytic
// value: Σ_p h_pp/2 + Σ_(p,q,q,p) h/8 = −1.75 + 0.75 = −1.
func TestHamiltonian_IdentityCoefficientAgreement(t *testing.T) {
	const n = 4
	const want = complex(-1, 0)

	for name, enc := range allEncoders(t, n) {
		t.Run(name, func(t *testing.T) {
			h := assembleHamiltonian(t, enc, n)
			require.Equal(t, want, h.Coefficient(identitySignature(n)))
		})
	}
}

// TestHamiltonian_Hermitian verifies H† = H for every encoder: the fixture
// is real and symmetric, so the encoded sequence must equal its adjoint.
func TestHamiltonian_Hermitian(t *testing.T) {
	const n = 4
	for name, enc := range allEncoders(t, n) {
		t.Run(name, func(t *testing.T) {
			h := assembleHamiltonian(t, enc, n)
			require.True(t, h.Equal(h.Dagger()), "H must be Hermitian:\n%s", h)
		})
	}
}
