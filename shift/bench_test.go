package shift_test

import (
	"testing"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
	"github.com/katalvlaran/powser/shift"
)

// benchShifted builds the geometric sequence re-centered at 0.2 outside the
// timed loop.
func benchShifted(b *testing.B, workers int) series.Sequence {
	b.Helper()
	p, err := series.New(1, 1, func(n int) (multilinear.Map, error) {
		m, err := multilinear.NewMonomial(n, 1)
		if err != nil {
			return nil, err
		}

		return m, nil
	})
	if err != nil {
		b.Fatalf("sequence: %v", err)
	}

	opts := shift.DefaultOptions()
	opts.Tolerance = 1e-5
	opts.Workers = workers
	q, err := shift.Shift(p, multilinear.Vec{0.2}, opts)
	if err != nil {
		b.Fatalf("shift: %v", err)
	}

	return q
}

func BenchmarkShiftCoefficient(b *testing.B) {
	q := benchShifted(b, 1)
	m, err := q.At(5)
	if err != nil {
		b.Fatalf("coefficient: %v", err)
	}
	z := multilinear.Vec{0.1}
	args := []multilinear.Vec{z, z, z, z, z}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Apply(args...); err != nil {
			b.Fatalf("apply: %v", err)
		}
	}
}

func BenchmarkShiftCoefficient_Parallel(b *testing.B) {
	q := benchShifted(b, 4)
	m, err := q.At(5)
	if err != nil {
		b.Fatalf("coefficient: %v", err)
	}
	z := multilinear.Vec{0.1}
	args := []multilinear.Vec{z, z, z, z, z}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Apply(args...); err != nil {
			b.Fatalf("apply: %v", err)
		}
	}
}

func BenchmarkShiftedSum(b *testing.B) {
	q := benchShifted(b, 1)
	z := multilinear.Vec{0.1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := series.Sum(q, z, series.WithTolerance(1e-6)); err != nil {
			b.Fatalf("sum: %v", err)
		}
	}
}
