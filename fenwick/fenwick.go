package fenwick

import "errors"

var (
	// ErrSize indicates a negative element count at construction.
	ErrSize = errors.New("fenwick: size must be non-negative")
	// ErrIndex indicates an index outside the tree's valid 1-indexed range.
	ErrIndex = errors.New("fenwick: index out of range")
)

// Monoid bundles an associative combining operation with its identity
// element. Associativity is the caller's contract; it is what makes the
// range decomposition below well defined.
type Monoid[T any] struct {
	// Identity is the neutral element: Combine(Identity, x) == x.
	Identity T
	// Combine folds two values; must be associative.
	Combine func(a, b T) T
}

// SumMonoid is the additive monoid over int.
func SumMonoid() Monoid[int] {
	return Monoid[int]{Identity: 0, Combine: func(a, b int) int { return a + b }}
}

// XorMonoid is the bitwise-XOR monoid over uint64.
func XorMonoid() Monoid[uint64] {
	return Monoid[uint64]{Identity: 0, Combine: func(a, b uint64) uint64 { return a ^ b }}
}

// UnionMonoid is the set-union monoid over int sets.
func UnionMonoid() Monoid[map[int]struct{}] {
	return Monoid[map[int]struct{}]{
		Identity: nil,
		Combine: func(a, b map[int]struct{}) map[int]struct{} {
			out := make(map[int]struct{}, len(a)+len(b))
			for k := range a {
				out[k] = struct{}{}
			}
			for k := range b {
				out[k] = struct{}{}
			}
			return out
		},
	}
}

// Tree is a persistent Fenwick tree over n elements of type T.
// Internally 1-indexed: data[k] holds the Combine-fold of the half-open
// element range (k − lowbit(k), k].
//
// The zero value is unusable; construct with New.
type Tree[T any] struct {
	n    int
	data []T // 1-indexed; data[0] unused
	m    Monoid[T]
}

// New returns an empty tree over n elements, every position holding the
// monoid identity.
//
// Complexity: O(n).
func New[T any](n int, m Monoid[T]) (*Tree[T], error) {
	if n < 0 {
		return nil, ErrSize
	}
	data := make([]T, n+1)
	for i := range data {
		data[i] = m.Identity
	}
	return &Tree[T]{n: n, data: data, m: m}, nil
}

// Len returns the element count n.
func (t *Tree[T]) Len() int {
	return t.n
}

// Update combines v into element i (1-indexed) and returns the resulting
// tree; the receiver is left untouched. All ancestors of i — every stored
// range containing i — are recombined.
//
// Complexity: O(n) copy + O(log n) Combine calls.
func (t *Tree[T]) Update(i int, v T) (*Tree[T], error) {
	if i < 1 || i > t.n {
		return nil, ErrIndex
	}
	data := make([]T, len(t.data))
	copy(data, t.data)
	for k := i; k <= t.n; k += k & (-k) {
		data[k] = t.m.Combine(data[k], v)
	}
	return &Tree[T]{n: t.n, data: data, m: t.m}, nil
}

// Prefix folds the first i elements (1-indexed; i == 0 yields the
// identity) using the minimal range decomposition.
//
// Complexity: O(log n).
func (t *Tree[T]) Prefix(i int) (T, error) {
	if i < 0 || i > t.n {
		var zero T
		return zero, ErrIndex
	}
	acc := t.m.Identity
	for k := i; k > 0; k -= k & (-k) {
		acc = t.m.Combine(acc, t.data[k])
	}
	return acc, nil
}
