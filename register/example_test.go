package register_test

import (
	"fmt"

	"github.com/katalvlaran/qfermion/register"
)

// ExampleRegister_Mul shows entrywise multiplication with exact phase
// folding and the zero-padding policy for mismatched widths.
func ExampleRegister_Mul() {
	a := register.FromSignature("XY", 1)
	b := register.FromSignature("Y", 1) // one qubit narrower: padded with I
	fmt.Println(a.Mul(b))
	// Output:
	// (0+1i)·ZY
}

// ExampleSequence_Mul shows the Cartesian product with like-term
// re-collection — no sequence ever stores a duplicate signature.
func ExampleSequence_Mul() {
	a := register.NewSequence(
		register.FromSignature("X", 1),
		register.FromSignature("Y", 1),
	)
	prod := a.Mul(a).Reduce() // (X+Y)² = 2·I: the iZ and −iZ cross terms cancel
	fmt.Println(prod)
	// Output:
	// (2+0i)·I
}
