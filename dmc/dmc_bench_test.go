package dmc

import (
	"testing"

	"github.com/cwbudde/algo-comm/channel"
)

func BenchmarkFromChannel(b *testing.B) {
	ch, err := channel.NewAWGN[float64, float64](1)
	if err != nil {
		b.Fatalf("NewAWGN: %v", err)
	}

	edges, err := UniformEdges(-8, 8, 64)
	if err != nil {
		b.Fatalf("UniformEdges: %v", err)
	}

	inputs := []float64{-1, 1}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := FromChannel(ch, inputs, edges); err != nil {
			b.Fatalf("FromChannel: %v", err)
		}
	}
}

func BenchmarkLikelihood(b *testing.B) {
	ch, err := channel.NewAWGN[float64, float64](1)
	if err != nil {
		b.Fatalf("NewAWGN: %v", err)
	}

	edges, err := UniformEdges(-8, 8, 64)
	if err != nil {
		b.Fatalf("UniformEdges: %v", err)
	}

	d, err := FromChannel(ch, []float64{-1, 1}, edges)
	if err != nil {
		b.Fatalf("FromChannel: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := range b.N {
		_ = d.Likelihood(i&63, i&1)
	}
}
