package dense

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qfermion/pauli"
	"github.com/katalvlaran/qfermion/register"
)

var (
	// ErrWidth indicates a sequence term whose width differs from the
	// requested qubit count.
	ErrWidth = errors.New("dense: register width differs from requested qubit count")
	// ErrShape indicates matrix operands of mismatched dimensions.
	ErrShape = errors.New("dense: matrix dimensions do not match")
)

// pauliEntries holds the 2×2 matrices of I, X, Y, Z in row-major order.
var pauliEntries = [4][4]complex128{
	{1, 0, 0, 1},    // I
	{0, 1, 1, 0},    // X
	{0, -1i, 1i, 0}, // Y
	{1, 0, 0, -1},   // Z
}

// PauliMatrix returns the 2×2 matrix of a single-qubit operator.
func PauliMatrix(p pauli.Pauli) *mat.CDense {
	e := pauliEntries[p&3]
	return mat.NewCDense(2, 2, []complex128{e[0], e[1], e[2], e[3]})
}

// RegisterMatrix returns the 2ⁿ×2ⁿ realization of a width-n register:
// the Kronecker product of its factors (qubit 0 most significant) scaled
// by the register's coefficient.
//
// Complexity: O(4ⁿ).
func RegisterMatrix(r register.Register) *mat.CDense {
	n := r.Len()
	dim := 1 << n
	out := mat.NewCDense(dim, dim, nil)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			v := r.Coefficient()
			for q := 0; q < n && v != 0; q++ {
				p, _ := r.At(q)
				shift := n - 1 - q // qubit 0 owns the most significant bit
				rb := (row >> shift) & 1
				cb := (col >> shift) & 1
				v *= pauliEntries[p&3][rb*2+cb]
			}
			out.Set(row, col, v)
		}
	}
	return out
}

// SequenceMatrix returns the 2ⁿ×2ⁿ realization of a sequence over n
// qubits: the sum of its terms' matrices. Every stored term must have
// width exactly n (ErrWidth otherwise); an empty sequence yields the zero
// matrix.
//
// Complexity: O(terms·4ⁿ).
func SequenceMatrix(s register.Sequence, n int) (*mat.CDense, error) {
	dim := 1 << n
	out := mat.NewCDense(dim, dim, nil)
	for _, term := range s.Terms() {
		if term.Len() != n {
			return nil, ErrWidth
		}
		m := RegisterMatrix(term)
		for row := 0; row < dim; row++ {
			for col := 0; col < dim; col++ {
				out.Set(row, col, out.At(row, col)+m.At(row, col))
			}
		}
	}
	return out, nil
}

// Mul returns the matrix product a·b.
func Mul(a, b *mat.CDense) (*mat.CDense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, ErrShape
	}
	out := mat.NewCDense(ar, bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < bc; j++ {
			var v complex128
			for k := 0; k < ac; k++ {
				v += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

// AntiCommutator returns {a, b} = a·b + b·a for square matrices of equal
// dimension.
func AntiCommutator(a, b *mat.CDense) (*mat.CDense, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != ac || br != bc || ar != br {
		return nil, ErrShape
	}
	ab, err := Mul(a, b)
	if err != nil {
		return nil, err
	}
	ba, err := Mul(b, a)
	if err != nil {
		return nil, err
	}
	out := mat.NewCDense(ar, ar, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ar; j++ {
			out.Set(i, j, ab.At(i, j)+ba.At(i, j))
		}
	}
	return out, nil
}

// Trace returns Σ m[i][i] for a square matrix.
func Trace(m *mat.CDense) (complex128, error) {
	r, c := m.Dims()
	if r != c {
		return 0, ErrShape
	}
	var tr complex128
	for i := 0; i < r; i++ {
		tr += m.At(i, i)
	}
	return tr, nil
}

// EqualApprox reports whether a and b agree entrywise within tol in
// absolute value. Mismatched dimensions compare unequal.
func EqualApprox(a, b *mat.CDense, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	return mat.CEqualApprox(a, b, tol)
}

// Identity returns the dim×dim identity scaled by c.
func Identity(dim int, c complex128) *mat.CDense {
	out := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		out.Set(i, i, c)
	}
	return out
}

// IsZero reports whether every entry of m is within tol of zero.
func IsZero(m *mat.CDense, tol float64) bool {
	r, c := m.Dims()
	return EqualApprox(m, mat.NewCDense(r, c, nil), tol)
}
