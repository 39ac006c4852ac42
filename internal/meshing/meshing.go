// Package meshing emits interleaved float32 vertex streams for block-world
// primitives: cubes, plant crosses, subdivided spheres and font glyph quads.
//
// Every emitter writes into a caller-owned slice and never allocates. Cube,
// plant and character vertices are Stride floats wide
// (pos.xyz, normal.xyz, uv, ao, light); sphere vertices are SphereStride
// floats wide (pos.xyz, normal.xyz, uv). The field order is what the block
// shaders bind, so it must not change.
package meshing

import (
	"errors"
	"fmt"
	"math/bits"
)

// Stride is number of float32 per cube, plant or character vertex.
const Stride = 10

// SphereStride is number of float32 per sphere vertex (no ao/light channel).
const SphereStride = 8

// Atlas addressing: a 16x16 grid of tiles, sampled with a half-texel inset
// on cube faces so neighbouring tiles never bleed into each other.
const (
	atlasColumns = 16
	tileSize     = float32(1.0 / 16)
	texelInsetLo = float32(1.0 / 2048)
	texelInsetHi = float32(1.0/16 - 1.0/2048)
)

var (
	// ErrOverflow is returned when the output slice cannot hold the primitive.
	// Nothing is written in that case.
	ErrOverflow = errors.New("meshing: output buffer overflow")
	// ErrInvalidDetail is returned for a sphere detail outside [0, MaxSphereDetail].
	ErrInvalidDetail = errors.New("meshing: invalid sphere detail")
	// ErrBlockOutOfRange is returned for a block id the tile table cannot index.
	ErrBlockOutOfRange = errors.New("meshing: block id out of range")
	// ErrNilTileTable is returned when a builder needs tiles and got none.
	ErrNilTileTable = errors.New("meshing: nil tile table")
)

func overflow(need, have int) error {
	return fmt.Errorf("%w: need %d floats, have %d", ErrOverflow, need, have)
}

// Face identifies one side of a cube. The order is the emission order.
type Face int

const (
	FaceLeft Face = iota
	FaceRight
	FaceTop
	FaceBottom
	FaceFront
	FaceBack
)

// NumFaces is the number of cube faces.
const NumFaces = 6

var faceNames = [NumFaces]string{"left", "right", "top", "bottom", "front", "back"}

func (f Face) String() string {
	if f < 0 || f >= NumFaces {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// ParseFace returns the face with the given lower-case name.
func ParseFace(name string) (Face, bool) {
	for i, n := range faceNames {
		if n == name {
			return Face(i), true
		}
	}
	return 0, false
}

// FaceSet is a set of visible cube faces.
type FaceSet uint8

// AllFaces has every face visible.
const AllFaces FaceSet = 1<<NumFaces - 1

// NewFaceSet returns a set holding faces.
func NewFaceSet(faces ...Face) FaceSet {
	var s FaceSet
	for _, f := range faces {
		s = s.With(f)
	}
	return s
}

// FaceSetFromFlags builds a set from per-face visibility flags.
func FaceSetFromFlags(left, right, top, bottom, front, back bool) FaceSet {
	var s FaceSet
	for i, v := range [NumFaces]bool{left, right, top, bottom, front, back} {
		if v {
			s |= 1 << i
		}
	}
	return s
}

func (s FaceSet) Has(f Face) bool { return s&(1<<f) != 0 }

func (s FaceSet) With(f Face) FaceSet { return s | 1<<f }

func (s FaceSet) Without(f Face) FaceSet { return s &^ (1 << f) }

// Count returns the number of visible faces.
func (s FaceSet) Count() int { return bits.OnesCount8(uint8(s & AllFaces)) }

// Sizing helpers. Callers size their buffers with these before emitting.

// CubeFloats returns the floats a cube with the given visible faces needs.
func CubeFloats(faces FaceSet) int { return faces.Count() * 6 * Stride }

// PlantFloats is the size of one plant cross.
const PlantFloats = 24 * Stride

// CharacterFloats is the size of one glyph quad.
const CharacterFloats = 6 * Stride

// TextFloats returns the floats needed to lay out text.
func TextFloats(text string) int { return len(text) * CharacterFloats }
