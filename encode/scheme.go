package encode

import (
	"github.com/katalvlaran/qfermion/pauli"
	"github.com/katalvlaran/qfermion/register"
)

// Scheme is one index-set encoding: three pure set-valued functions that
// fully define how each mode's Majorana strings spread over the qubits.
// A Scheme carries no internal state; copies are substitutable.
//
// Functions return 0-indexed qubit positions; both take the total mode
// count n so schemes whose sets depend on the register width (update sets
// do) stay uniform.
//
// CORRECTNESS PRECONDITION: the Majorana assembly below satisfies the CAR
// only when the implicit tree behind the three functions is
// index-monotonic — every ancestor of mode j has index strictly greater
// than j. A violating Scheme still builds and encodes without error; it is
// caught only by anti-commutation tests. See the package documentation.
type Scheme struct {
	// Update returns the qubits that must flip together with mode j.
	Update func(j, n int) []int
	// Parity returns the qubits storing the parity of modes below j.
	Parity func(j, n int) []int
	// Occupation returns the qubits storing the occupation of mode j.
	Occupation func(j, n int) []int
}

// SchemeEncoder realizes the index-set (Majorana) construction for one
// Scheme. It is stateless beyond the scheme value and safe for concurrent
// use.
type SchemeEncoder struct {
	scheme Scheme
}

// NewSchemeEncoder wraps a Scheme, rejecting nil set functions.
func NewSchemeEncoder(s Scheme) (*SchemeEncoder, error) {
	if s.Update == nil || s.Parity == nil || s.Occupation == nil {
		return nil, ErrNilScheme
	}
	return &SchemeEncoder{scheme: s}, nil
}

// EvenMajorana returns the even Majorana string of mode j on n qubits:
//
//	c_j = X over (Update(j,n) ∪ {j}), Z over Parity(j)
//
// Factors are composed with ApplyAt — multiplied, not overwritten — so
// overlapping sets (possible only for invalid schemes) still produce a
// well-defined register whose wrongness the CAR tests can observe.
//
// Complexity: O(n) plus the scheme's set costs.
func (e *SchemeEncoder) EvenMajorana(j, n int) (register.Register, error) {
	if n < 1 {
		return register.Register{}, ErrNoModes
	}
	if j < 0 || j >= n {
		return register.Register{}, ErrModeRange
	}
	r := register.New(n)
	for _, k := range e.scheme.Update(j, n) {
		r = r.ApplyAt(k, pauli.X)
	}
	r = r.ApplyAt(j, pauli.X)
	for _, k := range e.scheme.Parity(j, n) {
		r = r.ApplyAt(k, pauli.Z)
	}
	return r, nil
}

// OddMajorana returns the odd Majorana string of mode j on n qubits:
//
//	d_j = Y at j, X over Update(j,n), Z over (Parity(j) ⊕ Occupation(j)) \ {j}
//
// where ⊕ is the symmetric difference.
//
// Complexity: O(n) plus the scheme's set costs.
func (e *SchemeEncoder) OddMajorana(j, n int) (register.Register, error) {
	if n < 1 {
		return register.Register{}, ErrNoModes
	}
	if j < 0 || j >= n {
		return register.Register{}, ErrModeRange
	}
	r := register.New(n).ApplyAt(j, pauli.Y)
	for _, k := range e.scheme.Update(j, n) {
		r = r.ApplyAt(k, pauli.X)
	}
	for _, k := range symmetricDifference(e.scheme.Parity(j, n), e.scheme.Occupation(j, n)) {
		if k == j {
			continue
		}
		r = r.ApplyAt(k, pauli.Z)
	}
	return r, nil
}

// Encode implements Encoder: the ladder operator of kind at mode on modes
// qubits, as the exact two-term combination of the mode's Majorana pair.
func (e *SchemeEncoder) Encode(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	if err := checkArgs(kind, mode, modes); err != nil {
		return register.Sequence{}, err
	}
	c, err := e.EvenMajorana(mode, modes)
	if err != nil {
		return register.Sequence{}, err
	}
	d, err := e.OddMajorana(mode, modes)
	if err != nil {
		return register.Sequence{}, err
	}
	return ladder(kind, c, d), nil
}

// symmetricDifference returns a ⊕ b in ascending-insertion order of a then
// b; the caller filters any excluded index itself.
func symmetricDifference(a, b []int) []int {
	inA := make(map[int]struct{}, len(a))
	for _, k := range a {
		inA[k] = struct{}{}
	}
	inB := make(map[int]struct{}, len(b))
	for _, k := range b {
		inB[k] = struct{}{}
	}
	var out []int
	for _, k := range a {
		if _, ok := inB[k]; !ok {
			out = append(out, k)
		}
	}
	for _, k := range b {
		if _, ok := inA[k]; !ok {
			out = append(out, k)
		}
	}
	return out
}
