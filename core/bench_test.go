package core_test

import (
	"testing"

	"github.com/katalvlaran/foldcolor/core"
)

// BenchmarkAddEdge_Chain measures edge insertion on a growing chain.
func BenchmarkAddEdge_Chain(b *testing.B) {
	const N = 10000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := core.NewGraph(core.WithCapacity(N + 1))
		ids := g.AddVertices(N + 1)
		b.StartTimer()
		for j := 0; j < N; j++ {
			_ = g.AddEdge(ids[j], ids[j+1])
		}
	}
}

// BenchmarkAdjacencyView measures the snapshot cost on a star graph.
func BenchmarkAdjacencyView(b *testing.B) {
	const N = 10000
	g := core.NewGraph(core.WithCapacity(N + 1))
	ids := g.AddVertices(N + 1)
	for j := 1; j <= N; j++ {
		_ = g.AddEdge(ids[0], ids[j])
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AdjacencyView()
	}
}
