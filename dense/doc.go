// Package dense realizes qfermion's symbolic Pauli algebra as explicit
// complex matrices, so small-n properties (anti-commutation, traces,
// Hermiticity) can be cross-checked numerically against the exact symbolic
// results.
//
// Description:
//
//	Every Pauli string of width n becomes a 2ⁿ×2ⁿ gonum mat.CDense via a
//	Kronecker product of the four 2×2 Pauli matrices; a register sequence
//	becomes the coefficient-weighted sum of its terms. Qubit 0 is the
//	leftmost signature character and the MOST significant tensor factor,
//	matching the engine's big-endian signature convention.
//
//	This package exists for verification and fixtures. It is the only
//	place qfermion touches floating-point linear algebra; the encoders
//	themselves never build a matrix. Dimensions grow as 2ⁿ — keep n small.
//
// Complexity:
//
//	RegisterMatrix is O(4ⁿ); SequenceMatrix is O(terms·4ⁿ); the matrix
//	helpers (Mul-based anti-commutator, trace) are O(8ⁿ) and O(2ⁿ).
//
// Errors (sentinel):
//
//	– ErrWidth — a sequence term's width differs from the requested one.
//	– ErrShape — combining matrices of mismatched dimensions.
package dense
