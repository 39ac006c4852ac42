package meshing

import "blockmesh/internal/registry"

// Job is one primitive to emit as part of a batch. Floats must report the
// exact size Emit writes so the batch can lay jobs out back to back.
type Job interface {
	Floats() int
	Stride() int
	// Emit writes the primitive into dst and returns the vertices written.
	Emit(dst []float32) (int, error)
}

// CubeJob emits an axis-aligned cube.
type CubeJob struct {
	Cube  Cube
	Tiles *registry.TileTable
}

func (j *CubeJob) Floats() int { return CubeFloats(j.Cube.Visible) }
func (j *CubeJob) Stride() int { return Stride }
func (j *CubeJob) Emit(dst []float32) (int, error) {
	return MakeCube(dst, &j.Cube, j.Tiles)
}

// RotatedCubeJob emits a cube with yaw, pitch and roll.
type RotatedCubeJob struct {
	Cube     Cube
	Rotation Rotation
	Tiles    *registry.TileTable
}

func (j *RotatedCubeJob) Floats() int { return CubeFloats(j.Cube.Visible) }
func (j *RotatedCubeJob) Stride() int { return Stride }
func (j *RotatedCubeJob) Emit(dst []float32) (int, error) {
	return MakeRotatedCube(dst, &j.Cube, j.Rotation, j.Tiles)
}

// PlantJob emits a plant cross.
type PlantJob struct {
	Plant Plant
	Tiles *registry.TileTable
}

func (j *PlantJob) Floats() int { return PlantFloats }
func (j *PlantJob) Stride() int { return Stride }
func (j *PlantJob) Emit(dst []float32) (int, error) {
	return MakePlant(dst, &j.Plant, j.Tiles)
}

// SphereJob emits a subdivided sphere. Its region uses SphereStride.
type SphereJob struct {
	Radius float32
	Detail int
}

func (j *SphereJob) Floats() int { return SphereFloats(j.Detail) }
func (j *SphereJob) Stride() int { return SphereStride }
func (j *SphereJob) Emit(dst []float32) (int, error) {
	n, err := MakeSphere(dst, j.Radius, j.Detail)
	return n * 3, err
}

// TextJob emits a line of glyph quads.
type TextJob struct {
	Align   Align
	X, Y, Z float32
	N       float32
	Text    string
}

func (j *TextJob) Floats() int { return TextFloats(j.Text) }
func (j *TextJob) Stride() int { return Stride }
func (j *TextJob) Emit(dst []float32) (int, error) {
	return MakeText(dst, j.Align, j.X, j.Y, j.Z, j.N, j.Text)
}
