package montecarlo_test

import (
	"testing"

	"github.com/katalvlaran/jumpdiff/montecarlo"
	"github.com/katalvlaran/jumpdiff/timegrid"
)

// benchmarkSimulation builds a fresh simulation per iteration and walks
// every path to maturity.
func benchmarkSimulation(b *testing.B, paths, steps int) {
	grid, err := timegrid.NewUniform(0, 1.0, steps)
	if err != nil {
		b.Fatalf("grid: %v", err)
	}
	params := testParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim, err := montecarlo.New(grid, params,
			montecarlo.WithNumberOfPaths(paths), montecarlo.WithSeed(uint64(i)))
		if err != nil {
			b.Fatalf("simulation: %v", err)
		}
		if _, err := sim.AssetValue(steps, 0); err != nil {
			b.Fatalf("asset value: %v", err)
		}
	}
}

// BenchmarkSimulation_10kPaths50Steps is the default working size.
func BenchmarkSimulation_10kPaths50Steps(b *testing.B) { benchmarkSimulation(b, 10_000, 50) }

// BenchmarkSimulation_100kPaths10Steps is the pricing-test size.
func BenchmarkSimulation_100kPaths10Steps(b *testing.B) { benchmarkSimulation(b, 100_000, 10) }
