package gielis

import (
	"image/color"
	"strconv"
	"testing"
)

// BenchmarkBuildOutline benchmarks outline sampling at various resolutions.
func BenchmarkBuildOutline(b *testing.B) {
	for _, points := range []int{10, 100, 1000, 2000} {
		p := DefaultParams()
		p.Points = points
		b.Run(strconv.Itoa(points), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = BuildOutline(p)
			}
		})
	}
}

// BenchmarkPathString measures serialising a full-resolution outline.
func BenchmarkPathString(b *testing.B) {
	o, _ := BuildOutline(DefaultParams())
	path := o.Path()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = path.String()
	}
}

func BenchmarkBuildCloud(b *testing.B) {
	p := DefaultParams3D()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = BuildCloud(p)
	}
}

// BenchmarkNoiseTile compares generating a tile against a cache hit.
func BenchmarkNoiseTile(b *testing.B) {
	base := color.RGBA{R: 200, G: 80, B: 20, A: 255}
	b.Run("Generate", func(b *testing.B) {
		b.SetBytes(TileSize * TileSize * 4)
		for i := 0; i < b.N; i++ {
			_ = NoiseTile(0.3, 0.4, base)
		}
	})

	reg := NewRegistry()
	s := reg.AddShape(Point{})
	ts := NewTextureStore(reg, 0)
	b.Run("Cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = ts.Tile(s.ID, ChannelFill)
		}
	})
}
