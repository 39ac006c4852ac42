package export

import (
	"image"
	"testing"

	"blockmesh/internal/meshing"
)

func cellInk(img *image.Alpha, r image.Rectangle) int {
	ink := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	return ink
}

func TestBakeFontAtlas(t *testing.T) {
	const cell = 16
	atlas, err := BakeFontAtlas(nil, cell)
	if err != nil {
		t.Fatal(err)
	}
	if got := atlas.Bounds(); got != image.Rect(0, 0, 16*cell, 16*cell) {
		t.Fatalf("atlas bounds %v", got)
	}
	if cellInk(atlas, GlyphCell(' ', cell)) != 0 {
		t.Error("space cell has ink")
	}
	for _, c := range []byte("A0z~") {
		if cellInk(atlas, GlyphCell(c, cell)) == 0 {
			t.Errorf("%q cell is empty", c)
		}
	}
	// Nothing is drawn below the last printable row.
	if cellInk(atlas, image.Rect(0, 12*cell, 16*cell, 16*cell)) != 0 {
		t.Error("ink below the glyph rows")
	}
}

func TestGlyphCellMatchesCharacterUVs(t *testing.T) {
	const cell = 8
	size := float32(16 * cell)
	buf := make([]float32, meshing.CharacterFloats)
	for _, c := range []byte(" A~") {
		if _, err := meshing.MakeCharacter(buf, &meshing.Character{N: 1, M: 2, Char: c}); err != nil {
			t.Fatal(err)
		}
		// Vertex 0 is bottom-left and vertex 2 top-right.
		u0, v0 := buf[6], buf[7]
		u1, v1 := buf[2*meshing.Stride+6], buf[2*meshing.Stride+7]
		want := image.Rect(int(u0*size+0.5), int((1-v1)*size+0.5), int(u1*size+0.5), int((1-v0)*size+0.5))
		if got := GlyphCell(c, cell); got != want {
			t.Errorf("%q: cell %v, uv rect %v", c, got, want)
		}
	}
}

func TestBakeFontAtlasErrors(t *testing.T) {
	if _, err := BakeFontAtlas(nil, 1); err == nil {
		t.Error("expected an error for a tiny cell")
	}
	if _, err := BakeFontAtlas([]byte("not a font"), 8); err == nil {
		t.Error("expected a parse error")
	}
}
