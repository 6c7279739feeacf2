package sorting_test

import (
	"slices"
	"testing"

	"golang.org/x/exp/rand"
)

// BenchmarkSorts measures log generation for every sort on the largest
// array the config accepts.
func BenchmarkSorts(b *testing.B) {
	const N = 100
	r := rand.New(rand.NewSource(1))
	input := make([]int, N)
	for i := range input {
		input[i] = 1 + r.Intn(100)
	}

	for name, fn := range sorts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = fn(slices.Clone(input))
			}
		})
	}
}
