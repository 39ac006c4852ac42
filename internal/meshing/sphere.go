package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxSphereDetail bounds the subdivision depth. Detail 10 is already
// 8,388,608 triangles; anything deeper overflows sane buffer sizes.
const MaxSphereDetail = 10

var octahedronPositions = [6]mgl32.Vec3{
	{0, 0, -1}, {1, 0, 0},
	{0, -1, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, 0, 1},
}

var octahedronUVs = [6]mgl32.Vec2{
	{0, 0.5}, {0, 0.5},
	{0, 0}, {0, 0.5},
	{0, 1}, {0, 0.5},
}

var octahedronTriangles = [8][3]int{
	{4, 3, 0}, {1, 4, 0},
	{3, 4, 5}, {4, 1, 5},
	{0, 3, 2}, {0, 2, 1},
	{5, 2, 3}, {5, 1, 2},
}

// SphereTriangles returns the triangle count of a sphere at detail.
//
//	detail  triangles  floats
//	0       8          192
//	1       32         768
//	2       128        3072
//	3       512        12288
//	7       131072     3145728
func SphereTriangles(detail int) int {
	if detail < 0 || detail > MaxSphereDetail {
		return 0
	}
	return 8 << (2 * detail)
}

// SphereFloats returns the floats a sphere at detail needs.
func SphereFloats(detail int) int {
	return SphereTriangles(detail) * 3 * SphereStride
}

// MakeSphere emits a sphere of radius r by subdividing an octahedron detail
// times and projecting every new vertex onto the unit sphere. Vertices use
// SphereStride. It returns the number of triangles written, 8*4^detail.
func MakeSphere(dst []float32, r float32, detail int) (int, error) {
	if detail < 0 || detail > MaxSphereDetail {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDetail, detail)
	}
	need := SphereFloats(detail)
	if len(dst) < need {
		return 0, overflow(need, len(dst))
	}

	total := 0
	for _, tri := range octahedronTriangles {
		a, b, c := tri[0], tri[1], tri[2]
		total += subdivide(dst[total*3*SphereStride:], r, detail,
			octahedronPositions[a], octahedronPositions[b], octahedronPositions[c],
			octahedronUVs[a], octahedronUVs[b], octahedronUVs[c])
	}
	return total, nil
}

// subdivide emits the triangle (a, b, c) refined detail times and returns
// how many triangles it wrote. Children are emitted corner a, b, c first and
// the centre triangle last.
func subdivide(dst []float32, r float32, detail int, a, b, c mgl32.Vec3, ta, tb, tc mgl32.Vec2) int {
	if detail == 0 {
		d := dst[:0:3*SphereStride]
		for _, v := range [3]struct {
			p  mgl32.Vec3
			uv mgl32.Vec2
		}{{a, ta}, {b, tb}, {c, tc}} {
			d = append(d,
				v.p[0]*r, v.p[1]*r, v.p[2]*r,
				v.p[0], v.p[1], v.p[2],
				v.uv[0], v.uv[1],
			)
		}
		return 1
	}

	ab := midpoint(a, b)
	ac := midpoint(a, c)
	bc := midpoint(b, c)
	tab, tac, tbc := latitudeUV(ab), latitudeUV(ac), latitudeUV(bc)

	total := 0
	total += subdivide(dst[total*3*SphereStride:], r, detail-1, a, ab, ac, ta, tab, tac)
	total += subdivide(dst[total*3*SphereStride:], r, detail-1, b, bc, ab, tb, tbc, tab)
	total += subdivide(dst[total*3*SphereStride:], r, detail-1, c, ac, bc, tc, tac, tbc)
	total += subdivide(dst[total*3*SphereStride:], r, detail-1, ab, bc, ac, tab, tbc, tac)
	return total
}

// midpoint returns the middle of a and b pushed back onto the unit sphere.
func midpoint(a, b mgl32.Vec3) mgl32.Vec3 {
	m := a.Add(b).Mul(0.5)
	l := m.Len()
	return mgl32.Vec3{m[0] / l, m[1] / l, m[2] / l}
}

// latitudeUV maps a unit vector to (0, v) with v running 0 at the south pole
// to 1 at the north pole. The u coordinate is always 0.
func latitudeUV(p mgl32.Vec3) mgl32.Vec2 {
	y := float64(mgl32.Clamp(p[1], -1, 1))
	return mgl32.Vec2{0, 1 - float32(math.Acos(y)/math.Pi)}
}
