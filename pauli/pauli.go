package pauli

import (
	"errors"
	"fmt"
)

// ErrParse indicates a textual token outside the {I, X, Y, Z} alphabet.
// Parsing is strict and case-sensitive; leniency (unknown → I) is a policy
// of the register package, never of this one.
var ErrParse = errors.New("pauli: invalid Pauli literal")

// Phase is an exact element of the cyclic group {+1, +i, −1, −i},
// stored as the exponent k of i^k (k ∈ 0..3).
//
// Phase is a pure value type: all methods return new values, nothing is
// ever mutated, and no floating point enters until Complex() is called.
type Phase uint8

const (
	// PhaseOne is i^0 = +1, the group identity.
	PhaseOne Phase = iota
	// PhaseI is i^1 = +i.
	PhaseI
	// PhaseMinusOne is i^2 = −1.
	PhaseMinusOne
	// PhaseMinusI is i^3 = −i.
	PhaseMinusI
)

// phaseValues maps exponents to their exact complex128 realizations.
// ±1 and ±i are all exactly representable, so the boundary fold is lossless.
var phaseValues = [4]complex128{1, 1i, -1, -1i}

// phaseNames holds the display forms used by String().
var phaseNames = [4]string{"+1", "+i", "-1", "-i"}

// Mul returns the group product p·q, i.e. i^(p+q mod 4).
//
// Total, pure, closed; O(1).
func (p Phase) Mul(q Phase) Phase {
	return (p + q) & 3
}

// Inverse returns the group inverse, i.e. i^(−p mod 4).
func (p Phase) Inverse() Phase {
	return (4 - p) & 3
}

// Complex folds the exact phase into a numeric complex value.
// This is the only place a Phase leaves the finite group.
func (p Phase) Complex() complex128 {
	return phaseValues[p&3]
}

// String renders the phase as one of "+1", "+i", "-1", "-i".
func (p Phase) String() string {
	return phaseNames[p&3]
}

// Pauli is a single-qubit operator: one of I, X, Y, Z.
//
// Pauli is a pure value type; its whole algebra is the 4×4 table below.
type Pauli uint8

const (
	// I is the single-qubit identity, the multiplicative unit of the algebra.
	I Pauli = iota
	// X is the bit-flip operator σₓ.
	X
	// Y is the bit-and-phase-flip operator σᵧ.
	Y
	// Z is the phase-flip operator σ_z.
	Z
)

// pauliNames holds the canonical single-character literals.
var pauliNames = [4]byte{'I', 'X', 'Y', 'Z'}

// mulOp[p][q] is the Pauli part of p·q.
//
// Derivation: I is the identity; p·p = I; the three non-identity operators
// multiply cyclically, X·Y = Z, Y·Z = X, Z·X = Y (and the same Pauli in the
// reversed order, with the opposite phase).
var mulOp = [4][4]Pauli{
	{I, X, Y, Z}, // I·q
	{X, I, Z, Y}, // X·q
	{Y, Z, I, X}, // Y·q
	{Z, Y, X, I}, // Z·q
}

// mulPhase[p][q] is the Phase part of p·q: +i on the forward cycle
// (X·Y, Y·Z, Z·X), −i on the reversed cycle, +1 everywhere else.
var mulPhase = [4][4]Phase{
	{PhaseOne, PhaseOne, PhaseOne, PhaseOne},
	{PhaseOne, PhaseOne, PhaseI, PhaseMinusI},
	{PhaseOne, PhaseMinusI, PhaseOne, PhaseI},
	{PhaseOne, PhaseI, PhaseMinusI, PhaseOne},
}

// Mul returns the operator product p·q as a (Pauli, Phase) pair.
//
// Total, pure, closed; O(1). Order matters: distinct non-identity operands
// anti-commute, so Mul(q, p) returns the same Pauli with the opposite sign.
func (p Pauli) Mul(q Pauli) (Pauli, Phase) {
	return mulOp[p&3][q&3], mulPhase[p&3][q&3]
}

// Commutes reports whether p·q == q·p. True exactly when either operand is
// I or both operands are equal; distinct non-identity Paulis anti-commute.
func (p Pauli) Commutes(q Pauli) bool {
	return p == I || q == I || p == q
}

// Byte returns the canonical single-character literal of p.
func (p Pauli) Byte() byte {
	return pauliNames[p&3]
}

// String renders p as "I", "X", "Y" or "Z".
func (p Pauli) String() string {
	return string(pauliNames[p&3])
}

// ParsePauli converts a single byte into a Pauli.
//
// Strict and case-sensitive: anything outside {'I','X','Y','Z'} fails with
// ErrParse (wrapped with the offending byte).
func ParsePauli(c byte) (Pauli, error) {
	switch c {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return I, fmt.Errorf("%w: %q", ErrParse, c)
	}
}

// ParsePauliString converts a textual signature into a Pauli slice,
// failing on the first byte outside the alphabet.
//
// Complexity: O(len(s)); one allocation for the result.
func ParsePauliString(s string) ([]Pauli, error) {
	ops := make([]Pauli, len(s))
	for i := 0; i < len(s); i++ {
		p, err := ParsePauli(s[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		ops[i] = p
	}
	return ops, nil
}
