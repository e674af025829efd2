// Package pauli implements the two exact finite algebras every other
// qfermion computation depends on: the four-element phase group
// {+1, −1, +i, −i} and the single-qubit Pauli monoid {I, X, Y, Z}.
//
// Description:
//
//	A Phase is a power of the imaginary unit, stored as the exponent k of
//	i^k. Multiplying phases adds exponents modulo 4, so phase arithmetic is
//	closed, exact and drift-free; a Phase converts to a complex128 only at
//	the numeric boundary (Complex).
//
//	A Pauli is one of the four single-qubit operators. Multiplying two
//	Paulis yields a (Pauli, Phase) pair from a fixed 4×4 table:
//	  – I is the multiplicative identity,
//	  – every non-identity Pauli squares to (I, +1),
//	  – any two distinct non-identity Paulis anti-commute: swapping the
//	    operands flips the sign of the resulting phase (X·Y = +i·Z while
//	    Y·X = −i·Z, and cyclically).
//
// Contract:
//
//	Phase.Mul and Pauli.Mul are total, pure and closed over their finite
//	domains; no error condition exists. The only fallible operations are
//	the strict parsers, which reject any byte outside {I, X, Y, Z}
//	(case-sensitive) with ErrParse.
//
// Complexity:
//
//	Every operation is O(1) table lookup; no allocation except in parsers.
//
// Errors (sentinel):
//
//	– ErrParse — input byte/string is not a valid Pauli literal.
package pauli
