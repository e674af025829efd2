// Package qfermion is an exact symbolic engine for mapping fermionic
// creation/annihilation operators onto sums of qubit Pauli strings while
// preserving the canonical anti-commutation relations bit-for-bit — every
// phase lives in the exact four-element group {+1, −1, +i, −i}, never in a
// rounded float.
//
// 🚀 What is qfermion?
//
//	A correctness-first, pure-value library that brings together:
//		• Exact algebra: the i^k phase group and the closed {I,X,Y,Z} table
//		• Pauli registers: fixed-width Pauli strings with one exact coefficient
//		• Register sequences: signature-keyed sums with like-term collection
//		• Fenwick trees: monoid-parametric prefix/ancestor index machinery
//		• Index-set encoders: Jordan-Wigner, Bravyi-Kitaev, Parity
//		• Tree encoders: arbitrary labelled trees, incl. balanced binary/ternary
//		• Dense realization: gonum-backed matrices for small-n verification
//
// ✨ Why choose qfermion?
//
//   - Exact by construction – phases are group elements, coefficients fold
//     only dyadic factors, anti-commutators cancel to true zero
//   - Uniform encoder surface – every encoder is
//     Encode(kind, mode, modes) → register.Sequence, drop-in substitutable
//   - Pure Go values – no shared mutable state, safe under any parallelism
//
// Under the hood, everything is organized under five subpackages:
//
//	pauli/    — Phase and single-qubit Pauli value types + multiplication tables
//	register/ — Register (Pauli string × coefficient) and Sequence (Σ cₐ·σₐ)
//	fenwick/  — persistent Fenwick tree and the Bravyi-Kitaev index sets
//	encode/   — index-set and tree encoder frameworks behind one Encoder interface
//	dense/    — Kronecker realization on gonum mat.CDense, for verification
//
// Quick example — the raising operator a†₂ on 4 modes under Jordan-Wigner:
//
//	seq, err := encode.JordanWignerTerms(encode.Raise, 2, 4)
//	// seq == 0.5·ZZXI − 0.5i·ZZYI
//
// See each subpackage's doc.go for contracts, complexity and error policy.
//
//	go get github.com/katalvlaran/qfermion
package qfermion
