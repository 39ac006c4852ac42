package meshing

// Font atlas: 16 glyph columns starting at ' ', each glyph twice as tall as
// it is wide. Atlas rows run top-down while v runs bottom-up.
const (
	glyphWidth  = float32(1.0 / 16)
	glyphHeight = 2 * glyphWidth
	firstGlyph  = 32
)

// Character is a single glyph quad centred on (X, Y, Z) with half-width N
// and half-height M.
type Character struct {
	X, Y, Z float32
	N, M    float32
	Char    byte
}

// glyphOrigin returns the lower-left atlas corner of c. Codes below ' ' are
// not rejected; they land outside the atlas like any other bad code.
func glyphOrigin(c byte) (du, dv float32) {
	w := int(c) - firstGlyph
	du = float32(w%atlasColumns) * glyphWidth
	dv = 1 - float32(w/atlasColumns)*glyphHeight - glyphHeight
	return du, dv
}

// MakeCharacter emits one glyph quad in the plane z = Z. The normal channel
// holds (0, 1, 0) and ao/light are zero. Positions are written directly; no
// transform is applied.
func MakeCharacter(dst []float32, ch *Character) (int, error) {
	if len(dst) < CharacterFloats {
		return 0, overflow(CharacterFloats, len(dst))
	}
	du, dv := glyphOrigin(ch.Char)
	x0, x1 := ch.X-ch.N, ch.X+ch.N
	y0, y1 := ch.Y-ch.M, ch.Y+ch.M
	u0, u1 := du, du+glyphWidth
	v0, v1 := dv, dv+glyphHeight

	d := dst[:0:CharacterFloats]
	d = appendGlyphVertex(d, x0, y0, ch.Z, u0, v0)
	d = appendGlyphVertex(d, x1, y0, ch.Z, u1, v0)
	d = appendGlyphVertex(d, x1, y1, ch.Z, u1, v1)
	d = appendGlyphVertex(d, x0, y0, ch.Z, u0, v0)
	d = appendGlyphVertex(d, x1, y1, ch.Z, u1, v1)
	_ = appendGlyphVertex(d, x0, y1, ch.Z, u0, v1)
	return 6, nil
}

func appendGlyphVertex(d []float32, x, y, z, u, v float32) []float32 {
	return append(d, x, y, z, 0, 1, 0, u, v, 0, 0)
}

// Align positions a line of text relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// MakeText lays text out as a row of glyphs of height 2n and advance n,
// anchored at (x, y). It returns the number of vertices written.
func MakeText(dst []float32, align Align, x, y, z, n float32, text string) (int, error) {
	need := TextFloats(text)
	if len(dst) < need {
		return 0, overflow(need, len(dst))
	}
	x -= n * float32(align) * float32(len(text)-1) / 2
	ch := Character{Y: y, Z: z, N: n / 2, M: n}
	for i := 0; i < len(text); i++ {
		ch.X = x
		ch.Char = text[i]
		if _, err := MakeCharacter(dst[i*CharacterFloats:], &ch); err != nil {
			return 0, err
		}
		x += n
	}
	return len(text) * 6, nil
}
