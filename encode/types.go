package encode

import (
	"errors"

	"github.com/katalvlaran/qfermion/register"
)

var (
	// ErrNoModes indicates a non-positive total mode count.
	ErrNoModes = errors.New("encode: total mode count must be positive")
	// ErrModeRange indicates a mode index outside [0, totalModes).
	ErrModeRange = errors.New("encode: mode index out of range")
	// ErrKind indicates an operator kind other than Raise or Lower.
	ErrKind = errors.New("encode: unknown operator kind")
	// ErrModesMismatch indicates a tree encoder asked for a totalModes
	// different from the tree's mode count.
	ErrModesMismatch = errors.New("encode: totalModes differs from tree mode count")
	// ErrNilScheme indicates a Scheme with one or more nil set functions.
	ErrNilScheme = errors.New("encode: scheme functions must be non-nil")

	// ErrTreeSize indicates a tree over fewer than one mode.
	ErrTreeSize = errors.New("encode: tree must have at least one mode")
	// ErrNodeRange indicates a node index outside [0, n).
	ErrNodeRange = errors.New("encode: node index out of range")
	// ErrLabel indicates a link label outside {X, Y, Z}.
	ErrLabel = errors.New("encode: link label must be X, Y or Z")
	// ErrLinkTaken indicates a second edge through an already-linked label.
	ErrLinkTaken = errors.New("encode: link already holds an edge")
	// ErrNotTree indicates a child with two parents, a child claiming the
	// root, or nodes unreachable from the root.
	ErrNotTree = errors.New("encode: links do not form a tree rooted at node 0")
	// ErrLegCount indicates a finalized tree whose leg count is not 2n.
	ErrLegCount = errors.New("encode: tree must expose exactly 2n legs")
	// ErrLegReuse indicates two Majorana walks claiming one leg.
	ErrLegReuse = errors.New("encode: leg claimed by two Majorana walks")
	// ErrBrokenWalk indicates a Z-walk reaching a node with no live Z link.
	ErrBrokenWalk = errors.New("encode: walk reached a node with no Z link")
)

// OperatorKind selects between the two fermionic ladder operators.
type OperatorKind uint8

const (
	// Raise is the creation operator a†.
	Raise OperatorKind = iota
	// Lower is the annihilation operator a.
	Lower
)

// String renders the kind for diagnostics.
func (k OperatorKind) String() string {
	switch k {
	case Raise:
		return "raise"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}

// Encoder is the uniform surface of every fermion-to-qubit encoder: given
// an operator kind, a mode index and the total mode count, produce the
// exact Pauli-string sum of that ladder operator. Implementations are
// drop-in substitutable; callers pick one by constructing it, never by
// inspecting it.
type Encoder interface {
	Encode(kind OperatorKind, mode, modes int) (register.Sequence, error)
}

// checkArgs applies the shared Encode validation policy.
func checkArgs(kind OperatorKind, mode, modes int) error {
	if modes < 1 {
		return ErrNoModes
	}
	if mode < 0 || mode >= modes {
		return ErrModeRange
	}
	if kind != Raise && kind != Lower {
		return ErrKind
	}
	return nil
}

// ladder combines the two Majorana strings of one mode into the requested
// ladder operator: a† = ½(c − i·d), a = ½(c + i·d).
func ladder(kind OperatorKind, c, d register.Register) register.Sequence {
	sign := complex128(-0.5i)
	if kind == Lower {
		sign = 0.5i
	}
	return register.NewSequence(c.Scale(0.5), d.Scale(sign))
}
