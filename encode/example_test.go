package encode_test

import (
	"fmt"

	"github.com/katalvlaran/qfermion/encode"
)

// ExampleJordanWignerTerms encodes the raising operator a†₂ on 4 modes.
func ExampleJordanWignerTerms() {
	seq, err := encode.JordanWignerTerms(encode.Raise, 2, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(seq)
	// Output:
	// (0.5+0i)·ZZXI + (0-0.5i)·ZZYI
}

// ExampleNewTreeEncoder builds a balanced ternary encoder once and reuses
// it — the per-mode path registers are computed at construction.
func ExampleNewTreeEncoder() {
	tree, _ := encode.NewBalancedTernary(9)
	enc, _ := encode.NewTreeEncoder(tree)

	seq, _ := enc.Encode(encode.Raise, 4, 9)
	fmt.Println("max weight of a†₄ on 9 modes:", seq.MaxWeight())
	// Output:
	// max weight of a†₄ on 9 modes: 3
}

// ExampleScheme shows that a Scheme is just three pure set functions — the
// whole Jordan-Wigner encoding in six lines.
func ExampleScheme() {
	jw := encode.Scheme{
		Update: func(j, n int) []int { return nil },
		Parity: func(j, n int) []int {
			out := make([]int, j)
			for k := range out {
				out[k] = k
			}
			return out
		},
		Occupation: func(j, n int) []int { return []int{j} },
	}
	enc, _ := encode.NewSchemeEncoder(jw)
	c, _ := enc.EvenMajorana(3, 4)
	fmt.Println(c.Signature())
	// Output:
	// ZZZX
}
