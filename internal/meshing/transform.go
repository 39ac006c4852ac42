package meshing

import "github.com/go-gl/mathgl/mgl32"

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// rotation returns a rotation of angle radians about axis in the block
// renderer's convention: positive angles turn clockwise when looking down
// the axis toward the origin.
func rotation(axis mgl32.Vec3, angle float32) mgl32.Mat4 {
	return mgl32.HomogRotate3D(-angle, axis)
}

// applyMatrix transforms count xyz triples in place. Triple i starts at
// data[offset+i*stride] and is treated as a point (w = 1).
func applyMatrix(data []float32, m mgl32.Mat4, count, offset, stride int) {
	for i := 0; i < count; i++ {
		d := data[offset+i*stride : offset+i*stride+3]
		v := m.Mul4x1(mgl32.Vec4{d[0], d[1], d[2], 1})
		d[0], d[1], d[2] = v[0], v[1], v[2]
	}
}
