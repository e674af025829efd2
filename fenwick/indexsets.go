package fenwick

// This file exposes the Fenwick tree's implicit index structure as pure
// functions. The Bravyi-Kitaev encoding installs the three derived sets
// below into an encoding scheme and never touches the tree again.
//
// All functions take and return 1-indexed positions; the 0-indexed shift
// for qubit labels is done by the caller.

// Ancestors returns every index whose stored range includes k, in
// increasing order: k + lowbit(k), then onward, bounded by n. k itself is
// excluded.
//
// Complexity: O(log n).
func Ancestors(k, n int) []int {
	var out []int
	for j := k + (k & -k); j <= n; j += j & (-j) {
		out = append(out, j)
	}
	return out
}

// Descendants returns the chain of indices strictly inside k's own stored
// range (k's children in the implicit tree), in decreasing order: starting
// from k−1 and repeatedly subtracting the lowest set bit until the range
// floor k − lowbit(k) is reached. Odd k owns a single-element range and has
// no descendants.
//
// Complexity: O(log k).
func Descendants(k int) []int {
	var out []int
	for j := k - 1; j > k-(k&-k); j -= j & (-j) {
		out = append(out, j)
	}
	return out
}

// PrefixIndices returns the minimal Fenwick decomposition of the prefix
// [1..k], in decreasing order: k, then k − lowbit(k), and onward to zero.
//
// Complexity: O(log k).
func PrefixIndices(k int) []int {
	var out []int
	for j := k; j > 0; j -= j & (-j) {
		out = append(out, j)
	}
	return out
}

// UpdateSet returns the 0-indexed Bravyi-Kitaev update set of mode j on n
// modes: the ancestors of node j+1, shifted down.
func UpdateSet(j, n int) []int {
	return shift(Ancestors(j+1, n))
}

// ParitySet returns the 0-indexed Bravyi-Kitaev parity set of mode j: the
// minimal decomposition of the half-open mode range [0, j), shifted down.
func ParitySet(j int) []int {
	return shift(PrefixIndices(j))
}

// OccupationSet returns the 0-indexed Bravyi-Kitaev occupation set of mode
// j: the mode itself plus the descendants of node j+1, shifted down.
func OccupationSet(j int) []int {
	out := []int{j}
	return append(out, shift(Descendants(j+1))...)
}

// shift converts 1-indexed node labels to 0-indexed qubit labels in place.
func shift(ks []int) []int {
	for i := range ks {
		ks[i]--
	}
	return ks
}
