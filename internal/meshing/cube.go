package meshing

import (
	"fmt"

	"blockmesh/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// Unit cube corners per face, before scaling by the half-extent.
var cubePositions = [NumFaces][4][3]float32{
	{{-1, -1, -1}, {-1, -1, +1}, {-1, +1, -1}, {-1, +1, +1}},
	{{+1, -1, -1}, {+1, -1, +1}, {+1, +1, -1}, {+1, +1, +1}},
	{{-1, +1, -1}, {-1, +1, +1}, {+1, +1, -1}, {+1, +1, +1}},
	{{-1, -1, -1}, {-1, -1, +1}, {+1, -1, -1}, {+1, -1, +1}},
	{{-1, -1, -1}, {-1, +1, -1}, {+1, -1, -1}, {+1, +1, -1}},
	{{-1, -1, +1}, {-1, +1, +1}, {+1, -1, +1}, {+1, +1, +1}},
}

var cubeNormals = [NumFaces][3]float32{
	{-1, 0, 0},
	{+1, 0, 0},
	{0, +1, 0},
	{0, -1, 0},
	{0, 0, -1},
	{0, 0, +1},
}

// Per-corner uv flags: 0 selects the low inset edge of the tile, 1 the high.
var cubeUVs = [NumFaces][4][2]uint8{
	{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	{{1, 0}, {0, 0}, {1, 1}, {0, 1}},
	{{0, 1}, {0, 0}, {1, 1}, {1, 0}},
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	{{1, 0}, {1, 1}, {0, 0}, {0, 1}},
}

// Corner order of the two triangles, split along the 0-3 diagonal.
var cubeIndices = [NumFaces][6]int{
	{0, 3, 2, 0, 1, 3},
	{0, 3, 1, 0, 2, 3},
	{0, 3, 2, 0, 1, 3},
	{0, 3, 1, 0, 2, 3},
	{0, 3, 2, 0, 1, 3},
	{0, 3, 1, 0, 2, 3},
}

// Corner order split along the 1-2 diagonal.
var cubeFlipped = [NumFaces][6]int{
	{0, 1, 2, 1, 3, 2},
	{0, 2, 1, 2, 3, 1},
	{0, 1, 2, 1, 3, 2},
	{0, 2, 1, 2, 3, 1},
	{0, 1, 2, 1, 3, 2},
	{0, 2, 1, 2, 3, 1},
}

// Faces describes which faces of a cube are visible and how each corner is
// shaded. AO and Light are indexed [face][corner].
type Faces struct {
	Visible FaceSet
	AO      [NumFaces][4]float32
	Light   [NumFaces][4]float32
}

// Cube is one cube instance. N is the half-extent; Block indexes the tile table.
type Cube struct {
	Faces
	X, Y, Z float32
	N       float32
	Block   int
}

// Rotation holds yaw (about Y), pitch (about X) and roll (about Z) in radians.
type Rotation struct {
	Yaw, Pitch, Roll float32
}

// tileOrigin returns the lower-left corner of tile in atlas space.
func tileOrigin(tile int) (du, dv float32) {
	return float32(tile%atlasColumns) * tileSize, float32(tile/atlasColumns) * tileSize
}

// flipped reports whether a face should be split along its 1-2 diagonal,
// i.e. when the 0-3 corners are brighter than the 1-2 corners.
func flipped(ao [4]float32) bool {
	return ao[0]+ao[3] > ao[1]+ao[2]
}

// EmitFaces writes the visible faces of an origin-centred cube with
// half-extent n into dst. tiles holds one atlas tile per face. Faces that are
// not visible take no space. It returns the number of vertices written.
func EmitFaces(dst []float32, f *Faces, tiles [NumFaces]int, n float32) (int, error) {
	need := CubeFloats(f.Visible)
	if len(dst) < need {
		return 0, overflow(need, len(dst))
	}

	d := dst[:0:need]
	for i := 0; i < NumFaces; i++ {
		if !f.Visible.Has(Face(i)) {
			continue
		}
		du, dv := tileOrigin(tiles[i])
		order := &cubeIndices[i]
		if flipped(f.AO[i]) {
			order = &cubeFlipped[i]
		}
		nm := cubeNormals[i]
		for _, j := range order {
			p := cubePositions[i][j]
			uv := cubeUVs[i][j]
			d = append(d,
				n*p[0], n*p[1], n*p[2],
				nm[0], nm[1], nm[2],
				du+inset(uv[0]), dv+inset(uv[1]),
				f.AO[i][j], f.Light[i][j],
			)
		}
	}
	return len(d) / Stride, nil
}

func inset(flag uint8) float32 {
	if flag != 0 {
		return texelInsetHi
	}
	return texelInsetLo
}

// blockTiles resolves the six face tiles of a block.
func blockTiles(tiles *registry.TileTable, block int) ([NumFaces]int, error) {
	if tiles == nil {
		return [NumFaces]int{}, ErrNilTileTable
	}
	if block < 0 || block >= len(tiles) {
		return [NumFaces]int{}, fmt.Errorf("%w: %d", ErrBlockOutOfRange, block)
	}
	return tiles[block], nil
}

// MakeCube emits the visible faces of c translated to (X, Y, Z).
// It returns the number of vertices written.
func MakeCube(dst []float32, c *Cube, tiles *registry.TileTable) (int, error) {
	t, err := blockTiles(tiles, c.Block)
	if err != nil {
		return 0, err
	}
	count, err := EmitFaces(dst, &c.Faces, t, c.N)
	if err != nil {
		return 0, err
	}

	m := mgl32.Translate3D(c.X, c.Y, c.Z).Mul4(mgl32.Ident4())
	applyMatrix(dst, m, count, 0, Stride)
	return count, nil
}

// MakeRotatedCube emits c rotated about its centre and then translated to
// (X, Y, Z). Yaw is applied first, then pitch, then roll; existing content
// relies on that order. Normals are rotated but never translated.
func MakeRotatedCube(dst []float32, c *Cube, r Rotation, tiles *registry.TileTable) (int, error) {
	t, err := blockTiles(tiles, c.Block)
	if err != nil {
		return 0, err
	}
	count, err := EmitFaces(dst, &c.Faces, t, c.N)
	if err != nil {
		return 0, err
	}

	m := mgl32.Ident4()
	m = rotation(axisY, r.Yaw).Mul4(m)
	m = rotation(axisX, r.Pitch).Mul4(m)
	m = rotation(axisZ, r.Roll).Mul4(m)
	applyMatrix(dst, m, count, 3, Stride)

	m = mgl32.Translate3D(c.X, c.Y, c.Z).Mul4(m)
	applyMatrix(dst, m, count, 0, Stride)
	return count, nil
}
