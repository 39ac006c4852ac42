package meshing

import (
	"testing"

	"blockmesh/internal/registry"
)

func BenchmarkMakeCube(b *testing.B) {
	tiles := testTiles()
	c := Cube{Faces: shadedFaces(AllFaces), X: 1, Y: 2, Z: 3, N: 0.5, Block: registry.BlockGrass}
	buf := make([]float32, CubeFloats(AllFaces))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MakeCube(buf, &c, tiles)
	}
}

func BenchmarkMakeRotatedCube(b *testing.B) {
	tiles := testTiles()
	c := Cube{Faces: shadedFaces(AllFaces), X: 1, Y: 2, Z: 3, N: 0.5, Block: registry.BlockGrass}
	r := Rotation{Yaw: 0.5, Pitch: 0.25, Roll: 0.125}
	buf := make([]float32, CubeFloats(AllFaces))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MakeRotatedCube(buf, &c, r, tiles)
	}
}

func BenchmarkMakeSphere(b *testing.B) {
	buf := make([]float32, SphereFloats(4))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MakeSphere(buf, 1, 4)
	}
}
