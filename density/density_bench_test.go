package density

import (
	"testing"

	"github.com/cwbudde/algo-comm/channel"
)

func BenchmarkConvolve(b *testing.B) {
	ch, err := channel.NewAWGN[float64, float64](0.5)
	if err != nil {
		b.Fatalf("NewAWGN: %v", err)
	}

	ga, err := Sample(ch, 0, -8, 8, 1601)
	if err != nil {
		b.Fatalf("Sample: %v", err)
	}

	gb, err := Sample(ch, 0, -8, 8, 1601)
	if err != nil {
		b.Fatalf("Sample: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := Convolve(ga, gb); err != nil {
			b.Fatalf("Convolve: %v", err)
		}
	}
}

func BenchmarkSample(b *testing.B) {
	ch, err := channel.NewAWGN[float64, float64](0.5)
	if err != nil {
		b.Fatalf("NewAWGN: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		if _, err := Sample(ch, 0, -8, 8, 1601); err != nil {
			b.Fatalf("Sample: %v", err)
		}
	}
}
