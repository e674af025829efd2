package encode

import (
	"github.com/katalvlaran/qfermion/pauli"
)

// Label tags one of a node's three outgoing links.
type Label uint8

const (
	// LabelX is the link walked first for a mode's even Majorana string.
	LabelX Label = iota
	// LabelY is the link walked first for a mode's odd Majorana string.
	LabelY
	// LabelZ is the continuation link every walk follows after its first step.
	LabelZ
)

// Pauli returns the single-qubit operator a traversed link contributes.
func (l Label) Pauli() pauli.Pauli {
	switch l {
	case LabelX:
		return pauli.X
	case LabelY:
		return pauli.Y
	default:
		return pauli.Z
	}
}

// String renders the label as "X", "Y" or "Z".
func (l Label) String() string {
	return l.Pauli().String()
}

// Link targets: child index ≥ 0 is an edge; linkLeg terminates a walk
// (a free Majorana endpoint); linkNone marks the one pruned Z slot.
const (
	linkLeg  = -1
	linkNone = -2
)

// Tree is a rooted labelled encoding tree over modes 0..n−1, rooted at
// node 0. Every node owns up to three outgoing links tagged X, Y, Z; a
// link either targets a child (an edge) or terminates (a leg). A finalized
// tree exposes exactly 2n legs — each mode consumes two, one per Majorana
// string; the single surplus slot (the Z leg at the bottom of the root's
// Z chain, which no walk can ever reach) is pruned at Build time.
//
// Tree is immutable after Build and safe to share.
type Tree struct {
	n           int
	links       [][3]int
	parent      []int   // parent[0] == linkLeg (root has none)
	parentLabel []Label // label of the link from parent[u] into u
}

// TreeBuilder accumulates edges for a Tree. Zero value is unusable; use
// NewTreeBuilder.
type TreeBuilder struct {
	n      int
	links  [][3]int
	parent []int
}

// NewTreeBuilder starts a tree over n modes. All 3n link slots begin as
// legs; Link turns individual slots into edges.
func NewTreeBuilder(n int) (*TreeBuilder, error) {
	if n < 1 {
		return nil, ErrTreeSize
	}
	links := make([][3]int, n)
	parent := make([]int, n)
	for u := range links {
		links[u] = [3]int{linkLeg, linkLeg, linkLeg}
		parent[u] = linkLeg
	}
	return &TreeBuilder{n: n, links: links, parent: parent}, nil
}

// Link turns parent's slot under label into an edge targeting child.
//
// Errors:
//   - ErrNodeRange  — parent or child outside [0, n)
//   - ErrLabel      — label outside {X, Y, Z}
//   - ErrLinkTaken  — the slot already holds an edge
//   - ErrNotTree    — child already has a parent, child is the root, or
//     parent == child
func (b *TreeBuilder) Link(parent, child int, label Label) error {
	if parent < 0 || parent >= b.n || child < 0 || child >= b.n {
		return ErrNodeRange
	}
	if label > LabelZ {
		return ErrLabel
	}
	if child == 0 || child == parent || b.parent[child] != linkLeg {
		return ErrNotTree
	}
	if b.links[parent][label] != linkLeg {
		return ErrLinkTaken
	}
	b.links[parent][label] = child
	b.parent[child] = parent
	return nil
}

// Build finalizes the tree: verifies every node is reachable from the
// root, prunes the unreachable Z leg at the bottom of the root's Z chain,
// and checks the 2n-leg invariant.
//
// Complexity: O(n).
func (b *TreeBuilder) Build() (*Tree, error) {
	// Reachability sweep from the root; a cycle or an orphaned subtree
	// leaves nodes unvisited.
	seen := make([]bool, b.n)
	stack := []int{0}
	seen[0] = true
	visited := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		for _, c := range b.links[u] {
			if c >= 0 && !seen[c] {
				seen[c] = true
				stack = append(stack, c)
			}
		}
	}
	if visited != b.n {
		return nil, ErrNotTree
	}

	// The leg at the end of the root's pure-Z chain is claimed by no walk
	// (every walk starts through an X or Y link); prune it so exactly 2n
	// legs remain.
	links := make([][3]int, b.n)
	copy(links, b.links)
	u := 0
	for links[u][LabelZ] >= 0 {
		u = links[u][LabelZ]
	}
	links[u][LabelZ] = linkNone

	legs := 0
	labels := make([]Label, b.n)
	for v := range links {
		for l, c := range links[v] {
			if c == linkLeg {
				legs++
			}
			if c >= 0 {
				labels[c] = Label(l)
			}
		}
	}
	if legs != 2*b.n {
		return nil, ErrLegCount
	}

	parent := make([]int, b.n)
	copy(parent, b.parent)
	return &Tree{n: b.n, links: links, parent: parent, parentLabel: labels}, nil
}

// Modes returns the tree's mode count n.
func (t *Tree) Modes() int {
	return t.n
}

// walk follows node u's link under first, then Z links, until a leg is
// reached, returning the leg's owning node and label.
func (t *Tree) walk(u int, first Label) (int, Label, error) {
	owner, lab := u, first
	for {
		c := t.links[owner][lab]
		switch {
		case c == linkLeg:
			return owner, lab, nil
		case c == linkNone:
			return 0, 0, ErrBrokenWalk
		default:
			owner, lab = c, LabelZ
		}
	}
}

// NewLinearChain returns the degenerate chain tree: node k's Z link leads
// to node k+1, X and Y stay legs. It reproduces Jordan-Wigner exactly,
// O(n) weight.
func NewLinearChain(n int) (*Tree, error) {
	b, err := NewTreeBuilder(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k+1 < n; k++ {
		if err := b.Link(k, k+1, LabelZ); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// NewBalancedBinary returns the balanced binary tree: node k's X and Y
// links lead to nodes 2k+1 and 2k+2, Z links stay legs. O(log₂ n) weight.
func NewBalancedBinary(n int) (*Tree, error) {
	b, err := NewTreeBuilder(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		if c := 2*k + 1; c < n {
			if err := b.Link(k, c, LabelX); err != nil {
				return nil, err
			}
		}
		if c := 2*k + 2; c < n {
			if err := b.Link(k, c, LabelY); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// NewBalancedTernary returns the balanced ternary tree: node k's X, Y, Z
// links lead to nodes 3k+1, 3k+2, 3k+3. O(log₃ n) weight — the proven
// optimum for tree-based encodings.
func NewBalancedTernary(n int) (*Tree, error) {
	b, err := NewTreeBuilder(n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		for l := 0; l < 3; l++ {
			if c := 3*k + 1 + l; c < n {
				if err := b.Link(k, c, Label(l)); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}
