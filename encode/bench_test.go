package encode_test

import (
	"testing"

	"github.com/katalvlaran/qfermion/encode"
)

// benchmarkEncoder encodes every ladder operator once per iteration.
func benchmarkEncoder(b *testing.B, enc encode.Encoder, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < n; j++ {
			if _, err := enc.Encode(encode.Raise, j, n); err != nil {
				b.Fatalf("encode failed: %v", err)
			}
		}
	}
}

// BenchmarkJordanWigner64 measures the linear-weight scheme at 64 modes.
func BenchmarkJordanWigner64(b *testing.B) {
	enc, err := encode.NewSchemeEncoder(encode.JordanWigner())
	if err != nil {
		b.Fatalf("scheme: %v", err)
	}
	benchmarkEncoder(b, enc, 64)
}

// BenchmarkBravyiKitaev64 measures the Fenwick-derived scheme at 64 modes.
func BenchmarkBravyiKitaev64(b *testing.B) {
	enc, err := encode.NewSchemeEncoder(encode.BravyiKitaev())
	if err != nil {
		b.Fatalf("scheme: %v", err)
	}
	benchmarkEncoder(b, enc, 64)
}

// BenchmarkBalancedTernary64 measures the memoized tree encoder at 64
// modes; tree and walks are built once, outside the loop.
func BenchmarkBalancedTernary64(b *testing.B) {
	tree, err := encode.NewBalancedTernary(64)
	if err != nil {
		b.Fatalf("tree: %v", err)
	}
	enc, err := encode.NewTreeEncoder(tree)
	if err != nil {
		b.Fatalf("encoder: %v", err)
	}
	benchmarkEncoder(b, enc, 64)
}

// BenchmarkTreeConstruction measures the one-time walk memoization cost.
func BenchmarkTreeConstruction(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree, err := encode.NewBalancedTernary(256)
		if err != nil {
			b.Fatalf("tree: %v", err)
		}
		if _, err := encode.NewTreeEncoder(tree); err != nil {
			b.Fatalf("encoder: %v", err)
		}
	}
}
