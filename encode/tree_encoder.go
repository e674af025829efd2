package encode

import (
	"github.com/katalvlaran/qfermion/register"
)

// TreeEncoder realizes the path-based construction for one Tree. Both
// Majorana path registers of every mode are computed once at construction
// and served from the frozen slices afterwards, so repeated Encode calls
// never re-walk the tree.
//
// Unlike the index-set framework, this construction carries no
// monotonicity precondition: any two distinct legs' root paths diverge
// with different labels at one shared node, which forces exactly one
// anti-commuting qubit position between their Pauli strings.
type TreeEncoder struct {
	tree *Tree
	even []register.Register // c_u: the X-then-Z leg's path product
	odd  []register.Register // d_u: the Y-then-Z leg's path product
}

// NewTreeEncoder walks every mode's two legs and freezes their path
// registers. Each of the tree's 2n legs must be claimed by exactly one
// walk.
//
// Errors:
//   - ErrBrokenWalk — a Z walk ran into the pruned Z slot
//   - ErrLegReuse   — two walks terminated on one leg
//
// Complexity: O(n·depth).
func NewTreeEncoder(t *Tree) (*TreeEncoder, error) {
	n := t.Modes()
	enc := &TreeEncoder{
		tree: t,
		even: make([]register.Register, n),
		odd:  make([]register.Register, n),
	}
	claimed := make(map[[2]int]struct{}, 2*n)
	for u := 0; u < n; u++ {
		for _, first := range []Label{LabelX, LabelY} {
			owner, lab, err := t.walk(u, first)
			if err != nil {
				return nil, err
			}
			key := [2]int{owner, int(lab)}
			if _, dup := claimed[key]; dup {
				return nil, ErrLegReuse
			}
			claimed[key] = struct{}{}
			r := enc.pathRegister(owner, lab)
			if first == LabelX {
				enc.even[u] = r
			} else {
				enc.odd[u] = r
			}
		}
	}
	return enc, nil
}

// pathRegister builds the Pauli string of one leg: the product, walked
// from the root down to the leg, of every traversed link's label, each
// applied at the node owning the link (the terminal leg label included).
// All owners on a root path are distinct nodes, so the register's
// coefficient stays exactly 1.
//
// Complexity: O(n) for the register plus O(depth) applications.
func (e *TreeEncoder) pathRegister(owner int, lab Label) register.Register {
	r := register.New(e.tree.n).ApplyAt(owner, lab.Pauli())
	for u := owner; e.tree.parent[u] != linkLeg; u = e.tree.parent[u] {
		r = r.ApplyAt(e.tree.parent[u], e.tree.parentLabel[u].Pauli())
	}
	return r
}

// EvenMajorana returns mode u's even Majorana string c_u.
func (e *TreeEncoder) EvenMajorana(u int) (register.Register, error) {
	if u < 0 || u >= e.tree.n {
		return register.Register{}, ErrModeRange
	}
	return e.even[u], nil
}

// OddMajorana returns mode u's odd Majorana string d_u.
func (e *TreeEncoder) OddMajorana(u int) (register.Register, error) {
	if u < 0 || u >= e.tree.n {
		return register.Register{}, ErrModeRange
	}
	return e.odd[u], nil
}

// Encode implements Encoder. The tree fixes the register width, so modes
// must equal the tree's mode count (ErrModesMismatch otherwise); the rest
// of the combination is identical to the index-set framework's:
// a† = ½(c − i·d), a = ½(c + i·d).
func (e *TreeEncoder) Encode(kind OperatorKind, mode, modes int) (register.Sequence, error) {
	if err := checkArgs(kind, mode, modes); err != nil {
		return register.Sequence{}, err
	}
	if modes != e.tree.n {
		return register.Sequence{}, ErrModesMismatch
	}
	return ladder(kind, e.even[mode], e.odd[mode]), nil
}
