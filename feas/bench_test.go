package feas_test

import (
	"testing"

	"github.com/katalvlaran/posverify/feas"
	"github.com/katalvlaran/posverify/protocol"
)

// BenchmarkSolve_SingleAttacker measures the bisection + projection path
// on the three-circle instance with one attacker.
func BenchmarkSolve_SingleAttacker(b *testing.B) {
	m, err := protocol.NewModel(scenario2D(1))
	if err != nil {
		b.Fatal(err)
	}
	opts := feas.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = feas.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Coalition measures the partition enumeration path with
// two attackers over three verifiers.
func BenchmarkSolve_Coalition(b *testing.B) {
	m, err := protocol.NewModel(scenario2D(2))
	if err != nil {
		b.Fatal(err)
	}
	opts := feas.DefaultOptions()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = feas.Solve(m, opts); err != nil {
			b.Fatal(err)
		}
	}
}
