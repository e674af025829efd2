// Package encode maps indexed fermionic ladder operators onto exact sums
// of qubit Pauli strings, preserving the canonical anti-commutation
// relations (CAR) {aᵢ, a†ⱼ} = δᵢⱼ bit-for-bit.
//
// Description:
//
//	Two independent, non-interchangeable construction algorithms live here
//	behind the single Encoder interface:
//
//	  – The INDEX-SET (Majorana) framework: a Scheme is three pure
//	    set-valued functions — Update, Parity, Occupation — from which the
//	    two Majorana strings of each mode, and then the ladder operators
//	    a† = ½(c − i·d) and a = ½(c + i·d), are assembled. Built-in
//	    schemes: Jordan-Wigner, Bravyi-Kitaev (derived from the Fenwick
//	    index sets), Parity.
//
//	  – The PATH-BASED tree framework: a rooted labelled Tree whose nodes
//	    own up to three outgoing links tagged X/Y/Z, each an edge to a
//	    child or a terminating leg. Mode u's Majorana strings are the
//	    root-to-leg path products of s_x(u) and s_y(u), the legs reached
//	    through u's X and Y links followed by Z links. A linear chain
//	    reproduces Jordan-Wigner; balanced binary and ternary trees give
//	    O(log₂ n) and O(log₃ n) Pauli weight — the latter being optimal.
//
//	The two frameworks share only their output representation
//	(register.Sequence); their internals are deliberately not unified.
//	Select an encoder by constructing the concrete value, never by
//	inspecting shapes at run time.
//
// Correctness precondition (index-set framework only):
//
//	The Majorana assembly satisfies the CAR only for INDEX-MONOTONIC
//	schemes: every ancestor of mode j in the implicit tree the three set
//	functions describe must have index strictly greater than j. A
//	violating scheme is well typed, builds without error and silently
//	yields {aᵢ, a†ⱼ} ≠ 0 for some i ≠ j. This cannot be checked
//	structurally without re-deriving the proof the construction embodies;
//	it is pinned by the anti-commutation property tests instead. The tree
//	framework carries no such precondition — its correctness rests on path
//	divergence.
//
// Complexity:
//
//	Scheme encoding is O(n) per operator plus the scheme's own set costs
//	(O(log n) for Bravyi-Kitaev). Tree encoding precomputes every mode's
//	two path registers at construction (O(n·depth)) and serves Encode in
//	O(n) per call.
//
// Errors (sentinel):
//
//	– ErrNoModes, ErrModeRange, ErrKind           — Encode argument checks
//	– ErrModesMismatch                            — tree width ≠ totalModes
//	– ErrNilScheme                                — Scheme with nil functions
//	– ErrTreeSize, ErrNodeRange, ErrLabel, ErrLinkTaken,
//	  ErrNotTree, ErrLegCount, ErrLegReuse,
//	  ErrBrokenWalk                               — tree construction/walks
package encode
