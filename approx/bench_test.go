package approx_test

import (
	"testing"

	"github.com/optigon/stoneflow/approx"
	"github.com/optigon/stoneflow/gen"
	"github.com/optigon/stoneflow/transport"
)

// benchProblem builds a deterministic uniform instance outside the timer.
func benchProblem(b *testing.B, rows, cols int) *transport.Problem {
	b.Helper()
	in, err := gen.Uniform(rows, cols, 1)
	if err != nil {
		b.Fatalf("generate %dx%d: %v", rows, cols, err)
	}
	p, err := in.Problem()
	if err != nil {
		b.Fatalf("problem %dx%d: %v", rows, cols, err)
	}
	return p
}

// BenchmarkVogel_30x40 measures the penalty sweep on a 30x40 instance.
func BenchmarkVogel_30x40(b *testing.B) {
	p := benchProblem(b, 30, 40)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := approx.Vogel(p); err != nil {
			b.Fatalf("Vogel failed: %v", err)
		}
	}
}

// BenchmarkVogel_100x120 measures the penalty sweep on a larger instance.
func BenchmarkVogel_100x120(b *testing.B) {
	p := benchProblem(b, 100, 120)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := approx.Vogel(p); err != nil {
			b.Fatalf("Vogel failed: %v", err)
		}
	}
}

// BenchmarkRussell_30x40 measures the regret sweep on a 30x40 instance.
func BenchmarkRussell_30x40(b *testing.B) {
	p := benchProblem(b, 30, 40)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := approx.Russell(p); err != nil {
			b.Fatalf("Russell failed: %v", err)
		}
	}
}

// BenchmarkRussell_100x120 measures the regret sweep on a larger instance.
func BenchmarkRussell_100x120(b *testing.B) {
	p := benchProblem(b, 100, 120)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := approx.Russell(p); err != nil {
			b.Fatalf("Russell failed: %v", err)
		}
	}
}
