package register

import (
	"sort"
	"strings"
)

// Sequence is a sum of Registers keyed by signature: Σ cₐ·σₐ.
//
// Invariant: no two stored terms share a signature. Every constructor and
// operation re-collects like terms before returning, so the invariant holds
// at all times, not only after Reduce.
//
// Sequence is externally immutable. Construction happens in a private
// scratch map (the builder stage) that is frozen into the returned value;
// accessors hand out copies, never the map itself.
type Sequence struct {
	terms map[string]Register
}

// Wrap lifts a single register into a one-term sequence.
func Wrap(r Register) Sequence {
	return Sequence{terms: map[string]Register{r.Signature(): r}}
}

// NewSequence sums the given registers, collecting coefficients of equal
// signatures. Collection keeps the first term's Pauli factors (equal by
// definition of the signature) and adds coefficients exactly.
//
// Complexity: O(Σ Len(regs)).
func NewSequence(regs ...Register) Sequence {
	acc := make(map[string]Register, len(regs))
	for _, r := range regs {
		accumulate(acc, r)
	}
	return Sequence{terms: acc}
}

// accumulate is the builder-stage primitive: add r into the scratch map,
// combining with an existing term of the same signature.
func accumulate(acc map[string]Register, r Register) {
	sig := r.Signature()
	if prev, ok := acc[sig]; ok {
		prev.coeff += r.coeff
		acc[sig] = prev
		return
	}
	acc[sig] = r.clone()
}

// Len returns the number of stored terms (like terms already collected).
func (s Sequence) Len() int {
	return len(s.terms)
}

// Term returns the stored register for sig and true, or a zero Register and
// false when no term with that signature exists.
func (s Sequence) Term(sig string) (Register, bool) {
	r, ok := s.terms[sig]
	if !ok {
		return Register{}, false
	}
	return r.clone(), true
}

// Coefficient returns the coefficient stored under sig, or 0 when absent.
func (s Sequence) Coefficient(sig string) complex128 {
	if r, ok := s.terms[sig]; ok {
		return r.coeff
	}
	return 0
}

// Signatures returns all stored signatures in sorted order, giving callers
// a deterministic iteration order over the underlying map.
func (s Sequence) Signatures() []string {
	sigs := make([]string, 0, len(s.terms))
	for sig := range s.terms {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)
	return sigs
}

// Terms returns copies of all stored registers in signature order.
func (s Sequence) Terms() []Register {
	sigs := s.Signatures()
	out := make([]Register, len(sigs))
	for i, sig := range sigs {
		out[i] = s.terms[sig].clone()
	}
	return out
}

// Add returns the sum s + t, re-collected by signature.
//
// Complexity: O(terms(s) + terms(t)).
func (s Sequence) Add(t Sequence) Sequence {
	acc := make(map[string]Register, len(s.terms)+len(t.terms))
	for _, r := range s.terms {
		accumulate(acc, r)
	}
	for _, r := range t.terms {
		accumulate(acc, r)
	}
	return Sequence{terms: acc}
}

// Scale distributes a single outer scalar into every term ("distribute
// coefficient"), needed before cross-term cancellation.
func (s Sequence) Scale(c complex128) Sequence {
	acc := make(map[string]Register, len(s.terms))
	for sig, r := range s.terms {
		acc[sig] = r.Scale(c)
	}
	return Sequence{terms: acc}
}

// Dagger returns the Hermitian adjoint: every term's coefficient conjugated.
func (s Sequence) Dagger() Sequence {
	acc := make(map[string]Register, len(s.terms))
	for sig, r := range s.terms {
		acc[sig] = r.Dagger()
	}
	return Sequence{terms: acc}
}

// Mul returns the operator product s·t: the Cartesian product of term
// pairs, each pair multiplied entrywise (Register.Mul, phases folded), the
// results re-collected by signature. The single most important invariant —
// unique signatures — is restored by the final collection.
//
// Complexity: O(terms(s)·terms(t)·width).
func (s Sequence) Mul(t Sequence) Sequence {
	acc := make(map[string]Register, len(s.terms)*len(t.terms))
	for _, a := range s.terms {
		for _, b := range t.terms {
			accumulate(acc, a.Mul(b))
		}
	}
	return Sequence{terms: acc}
}

// Reduce returns s without exactly-zero terms. Cancellation in this engine
// is exact (coefficients are dyadic multiples of input scalars), so the
// comparison is against literal 0, not a tolerance.
func (s Sequence) Reduce() Sequence {
	acc := make(map[string]Register, len(s.terms))
	for sig, r := range s.terms {
		if r.coeff != 0 {
			acc[sig] = r.clone()
		}
	}
	return Sequence{terms: acc}
}

// Equal reports exact equality: same signatures, bit-identical coefficients.
// Intended for tests and cross-encoder comparisons; zero terms count, so
// Reduce both sides first when only the sum matters.
func (s Sequence) Equal(t Sequence) bool {
	if len(s.terms) != len(t.terms) {
		return false
	}
	for sig, r := range s.terms {
		o, ok := t.terms[sig]
		if !ok || o.coeff != r.coeff {
			return false
		}
	}
	return true
}

// MaxWeight returns the largest Pauli weight among stored terms, 0 when
// the sequence is empty.
func (s Sequence) MaxWeight() int {
	max := 0
	for _, r := range s.terms {
		if w := r.Weight(); w > max {
			max = w
		}
	}
	return max
}

// String renders the sequence in signature order for diagnostics, e.g.
// "(0.5+0i)·ZZXI + (0-0.5i)·ZZYI".
func (s Sequence) String() string {
	sigs := s.Signatures()
	parts := make([]string, len(sigs))
	for i, sig := range sigs {
		parts[i] = s.terms[sig].String()
	}
	return strings.Join(parts, " + ")
}
