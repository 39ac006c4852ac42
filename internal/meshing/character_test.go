package meshing

import (
	"errors"
	"testing"
)

func TestMakeCharacterAtlas(t *testing.T) {
	ch := Character{X: 10, Y: 20, Z: -1, N: 2, M: 4, Char: 'A'}
	buf := make([]float32, CharacterFloats)
	n, err := MakeCharacter(buf, &ch)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Fatalf("got %d vertices, want 6", n)
	}

	const du, dv, a, b = 0.0625, 0.625, 0.0625, 0.125
	want := [6][10]float32{
		{8, 16, -1, 0, 1, 0, du, dv, 0, 0},
		{12, 16, -1, 0, 1, 0, du + a, dv, 0, 0},
		{12, 24, -1, 0, 1, 0, du + a, dv + b, 0, 0},
		{8, 16, -1, 0, 1, 0, du, dv, 0, 0},
		{12, 24, -1, 0, 1, 0, du + a, dv + b, 0, 0},
		{8, 24, -1, 0, 1, 0, du, dv + b, 0, 0},
	}
	for k, w := range want {
		got := vertex(buf, k)
		for f := range w {
			if got[f] != w[f] {
				t.Fatalf("vertex %d: got %v, want %v", k, got, w)
			}
		}
	}
}

func TestMakeCharacterOutOfAtlas(t *testing.T) {
	buf := make([]float32, CharacterFloats)

	// Control codes sit left of the atlas; high bytes sit below it.
	ch := Character{N: 1, M: 1, Char: '\n'}
	if _, err := MakeCharacter(buf, &ch); err != nil {
		t.Fatalf("newline: %v", err)
	}
	if buf[6] >= 0 {
		t.Errorf("newline u=%v, want negative", buf[6])
	}

	ch.Char = 0xff
	if _, err := MakeCharacter(buf, &ch); err != nil {
		t.Fatalf("0xff: %v", err)
	}
	if buf[7] >= 0 {
		t.Errorf("0xff v=%v, want negative", buf[7])
	}
}

func TestMakeText(t *testing.T) {
	tests := []struct {
		align  Align
		first  float32
		second float32
	}{
		{AlignLeft, 10, 12},
		{AlignCenter, 9, 11},
		{AlignRight, 8, 10},
	}
	for _, tt := range tests {
		buf := make([]float32, TextFloats("ab"))
		n, err := MakeText(buf, tt.align, 10, 0, 0, 2, "ab")
		if err != nil {
			t.Fatal(err)
		}
		if n != 12 {
			t.Fatalf("align %d: got %d vertices, want 12", tt.align, n)
		}
		// Vertex 0 of each glyph is its bottom-left corner, half-width n/2.
		if got := buf[0]; got != tt.first-1 {
			t.Errorf("align %d: first glyph left edge %v, want %v", tt.align, got, tt.first-1)
		}
		if got := buf[CharacterFloats]; got != tt.second-1 {
			t.Errorf("align %d: second glyph left edge %v, want %v", tt.align, got, tt.second-1)
		}
		if got := buf[1]; got != -2 {
			t.Errorf("align %d: bottom edge %v, want -2", tt.align, got)
		}
	}

	if n, err := MakeText(nil, AlignCenter, 0, 0, 0, 1, ""); n != 0 || err != nil {
		t.Errorf("empty text: got %d, %v", n, err)
	}
	if _, err := MakeText(make([]float32, CharacterFloats), AlignLeft, 0, 0, 0, 1, "ab"); !errors.Is(err, ErrOverflow) {
		t.Errorf("short buffer: got %v, want ErrOverflow", err)
	}
	if _, err := MakeCharacter(make([]float32, CharacterFloats-1), &Character{Char: 'x'}); !errors.Is(err, ErrOverflow) {
		t.Errorf("short glyph buffer: got %v, want ErrOverflow", err)
	}
}
