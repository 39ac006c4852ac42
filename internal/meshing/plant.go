package meshing

import (
	"blockmesh/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// Two perpendicular planes, each emitted twice with opposite normals.
var plantPositions = [4][4][3]float32{
	{{0, -1, -1}, {0, -1, +1}, {0, +1, -1}, {0, +1, +1}},
	{{0, -1, -1}, {0, -1, +1}, {0, +1, -1}, {0, +1, +1}},
	{{-1, -1, 0}, {-1, +1, 0}, {+1, -1, 0}, {+1, +1, 0}},
	{{-1, -1, 0}, {-1, +1, 0}, {+1, -1, 0}, {+1, +1, 0}},
}

var plantNormals = [4][3]float32{
	{-1, 0, 0},
	{+1, 0, 0},
	{0, 0, -1},
	{0, 0, +1},
}

var plantUVs = [4][4][2]uint8{
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	{{1, 0}, {0, 0}, {1, 1}, {0, 1}},
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	{{1, 0}, {1, 1}, {0, 0}, {0, 1}},
}

var plantIndices = [4][6]int{
	{0, 3, 2, 0, 1, 3},
	{0, 3, 1, 0, 2, 3},
	{0, 3, 2, 0, 1, 3},
	{0, 3, 1, 0, 2, 3},
}

// Plant is one foliage cross. It has a single ao/light value and uses the
// block's first tile for every quad. Rotation is a yaw in degrees.
type Plant struct {
	AO, Light float32
	X, Y, Z   float32
	N         float32
	Block     int
	Rotation  float32
}

// MakePlant emits the 24 vertices of p. Plant quads sample the full tile
// with no texel inset.
func MakePlant(dst []float32, p *Plant, tiles *registry.TileTable) (int, error) {
	t, err := blockTiles(tiles, p.Block)
	if err != nil {
		return 0, err
	}
	if len(dst) < PlantFloats {
		return 0, overflow(PlantFloats, len(dst))
	}

	du, dv := tileOrigin(t[0])
	d := dst[:0:PlantFloats]
	for i := range plantPositions {
		nm := plantNormals[i]
		for _, j := range plantIndices[i] {
			pos := plantPositions[i][j]
			uv := plantUVs[i][j]
			d = append(d,
				p.N*pos[0], p.N*pos[1], p.N*pos[2],
				nm[0], nm[1], nm[2],
				du+float32(uv[0])*tileSize, dv+float32(uv[1])*tileSize,
				p.AO, p.Light,
			)
		}
	}

	m := rotation(axisY, mgl32.DegToRad(p.Rotation)).Mul4(mgl32.Ident4())
	applyMatrix(dst, m, 24, 3, Stride)
	m = mgl32.Translate3D(p.X, p.Y, p.Z).Mul4(m)
	applyMatrix(dst, m, 24, 0, Stride)
	return 24, nil
}
