package register

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qfermion/pauli"
)

// Register is a fixed-width tensor product of single-qubit Pauli operators
// with one exact complex coefficient.
//
// The zero value is a zero-width register with coefficient 0; use New or
// FromSignature for anything useful. Register is a pure value: methods
// never mutate the receiver, they return fresh copies.
type Register struct {
	ops   []pauli.Pauli
	coeff complex128
}

// New returns the width-n identity register: all factors I, coefficient 1.
//
// Complexity: O(n).
func New(n int) Register {
	return Register{ops: make([]pauli.Pauli, n), coeff: 1}
}

// FromSignature builds a register of width len(sig) with the given
// coefficient. Parsing is LENIENT by policy: any character outside
// {I,X,Y,Z} degrades to I silently (see package doc). Use
// pauli.ParsePauliString when strictness is required.
//
// Complexity: O(len(sig)).
func FromSignature(sig string, coeff complex128) Register {
	ops := make([]pauli.Pauli, len(sig))
	for i := 0; i < len(sig); i++ {
		if p, err := pauli.ParsePauli(sig[i]); err == nil {
			ops[i] = p
		}
		// Unrecognized characters stay I.
	}
	return Register{ops: ops, coeff: coeff}
}

// Len returns the declared qubit count (signature width).
func (r Register) Len() int {
	return len(r.ops)
}

// Coefficient returns the register's complex coefficient.
func (r Register) Coefficient() complex128 {
	return r.coeff
}

// At returns the Pauli at qubit position i and true, or (I, false) when i
// is outside [0, Len). Never panics; encoders call it unconditionally.
func (r Register) At(i int) (pauli.Pauli, bool) {
	if i < 0 || i >= len(r.ops) {
		return pauli.I, false
	}
	return r.ops[i], true
}

// WithOperatorAt returns a copy of r with the factor at position i replaced
// by p. Out-of-range i is a no-op returning r unchanged — policy, not error.
//
// Complexity: O(Len).
func (r Register) WithOperatorAt(i int, p pauli.Pauli) Register {
	if i < 0 || i >= len(r.ops) {
		return r
	}
	out := r.clone()
	out.ops[i] = p
	return out
}

// ApplyAt returns a copy of r whose factor at position i is the product
// (existing · p), with the resulting exact phase folded into the
// coefficient. This is how encoders assemble Majorana strings: overlapping
// index sets compose by the Pauli algebra instead of overwriting.
// Out-of-range i is a no-op returning r unchanged.
//
// Complexity: O(Len).
func (r Register) ApplyAt(i int, p pauli.Pauli) Register {
	if i < 0 || i >= len(r.ops) {
		return r
	}
	out := r.clone()
	op, ph := out.ops[i].Mul(p)
	out.ops[i] = op
	out.coeff *= ph.Complex()
	return out
}

// Scale returns a copy of r with the coefficient multiplied by c.
func (r Register) Scale(c complex128) Register {
	out := r.clone()
	out.coeff *= c
	return out
}

// Dagger returns the Hermitian adjoint of r. Pauli factors are self-adjoint,
// so only the coefficient is conjugated.
func (r Register) Dagger() Register {
	out := r.clone()
	out.coeff = complex(real(out.coeff), -imag(out.coeff))
	return out
}

// Mul returns the operator product r·s: coefficients multiplied, factors
// multiplied qubit-by-qubit with every exact phase folded into the result's
// coefficient. Widths may differ: the shorter register is zero-padded with
// I, and the result has width max(r.Len, s.Len) — the documented
// silent-recovery policy for dimension mismatch.
//
// Complexity: O(max(Len)).
func (r Register) Mul(s Register) Register {
	n := len(r.ops)
	if len(s.ops) > n {
		n = len(s.ops)
	}
	out := Register{ops: make([]pauli.Pauli, n), coeff: r.coeff * s.coeff}
	for i := 0; i < n; i++ {
		a, _ := r.At(i) // (I, false) past r's width: the zero-padding
		b, _ := s.At(i)
		op, ph := a.Mul(b)
		out.ops[i] = op
		out.coeff *= ph.Complex()
	}
	return out
}

// Weight returns the Pauli weight: the count of non-identity factors.
//
// Complexity: O(Len).
func (r Register) Weight() int {
	w := 0
	for _, p := range r.ops {
		if p != pauli.I {
			w++
		}
	}
	return w
}

// Signature returns the big-endian textual form (qubit 0 leftmost), e.g.
// "ZZXI". Signatures are the only wire format in scope: display, fixtures
// and map keys — never disk or network.
//
// Complexity: O(Len).
func (r Register) Signature() string {
	var b strings.Builder
	b.Grow(len(r.ops))
	for _, p := range r.ops {
		b.WriteByte(p.Byte())
	}
	return b.String()
}

// String renders the register as "coeff·signature" for diagnostics.
func (r Register) String() string {
	return fmt.Sprintf("%v·%s", r.coeff, r.Signature())
}

// clone copies the backing slice so value semantics hold.
func (r Register) clone() Register {
	ops := make([]pauli.Pauli, len(r.ops))
	copy(ops, r.ops)
	return Register{ops: ops, coeff: r.coeff}
}
