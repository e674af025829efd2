// Package register implements fixed-width Pauli strings (Register) and
// signature-keyed sums of them (Sequence) — the output representation every
// qfermion encoder produces and every Hamiltonian assembler consumes.
//
// Description:
//
//	A Register is an ordered, fixed-length run of single-qubit Pauli
//	operators plus exactly one complex coefficient. Its textual form, the
//	"signature", is a string of {I,X,Y,Z} characters, big-endian: qubit 0
//	is the leftmost character. Registers are pure values — every operation
//	returns a fresh Register and nothing is mutated in place.
//
//	A Sequence is the sum Σ cₐ·σₐ, stored as a signature-keyed map of
//	Registers. The load-bearing invariant of the whole engine: a Sequence
//	never holds two terms with the same signature. Construction collects
//	like terms eagerly; Reduce additionally drops exactly-zero terms.
//	Internally a Sequence is accumulated into a private scratch map and
//	frozen before it is returned; no observable mutation ever escapes.
//
// Policy decisions (deliberate, documented, tested — not bugs):
//
//   - FromSignature is LENIENT: a character outside {I,X,Y,Z} degrades to
//     I silently. Strict parsing lives in package pauli.
//   - At returns (I, false) outside [0, Len); WithOperatorAt and ApplyAt
//     are no-ops out of range. Encoder internals rely on these being safe
//     to call unconditionally, keeping their loops branch-free.
//   - Mul of two Registers of different widths zero-pads the shorter one
//     with I instead of failing. This is the silent-recovery path for
//     dimension mismatch; callers that care should compare Len first.
//
// Complexity:
//
//	Register ops are O(width); Sequence Add is O(terms), Mul is
//	O(terms(a)·terms(b)·width) with a final O(result) re-collection.
//
// Errors: none — every operation in this package is total by policy.
package register
