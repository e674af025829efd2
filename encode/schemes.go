package encode

import (
	"github.com/katalvlaran/qfermion/fenwick"
	"github.com/katalvlaran/qfermion/register"
)

// JordanWigner returns the Jordan-Wigner scheme: no update set, parity
// carried by the full Z string below the mode, occupation stored locally.
//
//	Update = ∅, Parity = {0..j−1}, Occupation = {j}
//
// Weight grows linearly: a†_j touches exactly j+1 qubits.
func JordanWigner() Scheme {
	return Scheme{
		Update: func(j, n int) []int { return nil },
		Parity: func(j, n int) []int {
			out := make([]int, j)
			for k := 0; k < j; k++ {
				out[k] = k
			}
			return out
		},
		Occupation: func(j, n int) []int { return []int{j} },
	}
}

// BravyiKitaev returns the Bravyi-Kitaev scheme. Its three sets are
// literally the Fenwick tree index sets — the tree structure never appears
// past this point. Weight grows as O(log₂ n).
func BravyiKitaev() Scheme {
	return Scheme{
		Update:     fenwick.UpdateSet,
		Parity:     func(j, n int) []int { return fenwick.ParitySet(j) },
		Occupation: func(j, n int) []int { return fenwick.OccupationSet(j) },
	}
}

// Parity returns the parity scheme, Jordan-Wigner's mirror image: each
// qubit stores a running parity, so occupation needs two qubits but the
// update set is the full X string above the mode.
//
//	Update = {j+1..n−1}, Parity = {j−1}, Occupation = {j−1, j}
//
// with the obvious boundary at j = 0 (empty parity set, Occupation = {0}).
func Parity() Scheme {
	return Scheme{
		Update: func(j, n int) []int {
			out := make([]int, 0, n-j-1)
			for k := j + 1; k < n; k++ {
				out = append(out, k)
			}
			return out
		},
		Parity: func(j, n int) []int {
			if j == 0 {
				return nil
			}
			return []int{j - 1}
		},
		Occupation: func(j, n int) []int {
			if j == 0 {
				return []int{0}
			}
			return []int{j - 1, j}
		},
	}
}

// JordanWignerTerms encodes one ladder operator under Jordan-Wigner.
func JordanWignerTerms(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	return schemeTerms(JordanWigner(), kind, mode, modes)
}

// BravyiKitaevTerms encodes one ladder operator under Bravyi-Kitaev.
func BravyiKitaevTerms(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	return schemeTerms(BravyiKitaev(), kind, mode, modes)
}

// ParityTerms encodes one ladder operator under the parity scheme.
func ParityTerms(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	return schemeTerms(Parity(), kind, mode, modes)
}

// BalancedBinaryTreeTerms encodes one ladder operator through a balanced
// binary encoding tree over modes qubits. Callers encoding many operators
// on one width should build the tree encoder once instead (see
// NewTreeEncoder): the per-mode walk registers are memoized there.
func BalancedBinaryTreeTerms(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	tree, err := NewBalancedBinary(modes)
	if err != nil {
		return register.Sequence{}, err
	}
	enc, err := NewTreeEncoder(tree)
	if err != nil {
		return register.Sequence{}, err
	}
	return enc.Encode(kind, mode, modes)
}

// BalancedTernaryTreeTerms encodes one ladder operator through a balanced
// ternary encoding tree — the weight-optimal O(log₃ n) construction. The
// same memoization advice as BalancedBinaryTreeTerms applies.
func BalancedTernaryTreeTerms(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	tree, err := NewBalancedTernary(modes)
	if err != nil {
		return register.Sequence{}, err
	}
	enc, err := NewTreeEncoder(tree)
	if err != nil {
		return register.Sequence{}, err
	}
	return enc.Encode(kind, mode, modes)
}

// schemeTerms is the shared convenience path for the built-in schemes.
func schemeTerms(s Scheme, kind OperatorKind, mode, modes int) (register.Sequence, error) {
	enc, err := NewSchemeEncoder(s)
	if err != nil {
		return register.Sequence{}, err
	}
	return enc.Encode(kind, mode, modes)
}
