// Package fenwick implements a persistent, monoid-parametric Fenwick
// (binary indexed) tree plus the pure index-set enumeration the
// Bravyi-Kitaev fermionic encoding is derived from.
//
// Description:
//
//	A Fenwick tree over n elements stores, at 1-indexed position k, the
//	combined value of the half-open range (k − lowbit(k), k], where
//	lowbit(k) is k's lowest set bit. The structure is parametrized over any
//	monoid — an associative Combine with an Identity element — so integer
//	sums, XOR folds and set unions all run on the same machinery.
//
//	Tree values are persistent: Update returns a new tree and never touches
//	the receiver, so trees may be shared freely across goroutines.
//
//	Three pure index functions expose the tree's implicit shape without any
//	stored data. They are what the Bravyi-Kitaev scheme actually consumes —
//	once the three index sets are derived, the tree itself never reappears:
//	  – Ancestors(k, n): every index whose stored range contains k, found
//	    by repeatedly adding lowbit, bounded by n.
//	  – Descendants(k): the child chain strictly inside k's own range,
//	    found by repeatedly subtracting lowbit starting from k−1.
//	  – PrefixIndices(k): the minimal decomposition of the prefix [1..k],
//	    found by repeatedly subtracting lowbit starting from k.
//
// Complexity:
//
//	Prefix and the three index functions are O(log n). Update performs
//	O(log n) Combine calls over a fresh copy of the backing array (the copy
//	is O(n); Go has no O(log n) persistent array, and the encoders only
//	ever query).
//
// Errors (sentinel):
//
//	– ErrSize  — constructing a tree with n < 0.
//	– ErrIndex — Update/Prefix index outside the valid range.
package fenwick
