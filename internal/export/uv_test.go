package export

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"blockmesh/internal/meshing"
	"blockmesh/internal/registry"
)

var fill = color.RGBA{255, 0, 0, 255}

func TestRenderUVCoversTile(t *testing.T) {
	const size = 256
	c := meshing.Cube{
		Faces: meshing.Faces{Visible: meshing.NewFaceSet(meshing.FaceFront)},
		N:     0.5,
		Block: registry.BlockBrick,
	}
	buf := make([]float32, meshing.CubeFloats(c.Visible))
	if _, err := meshing.MakeCube(buf, &c, registry.Default().Tiles()); err != nil {
		t.Fatal(err)
	}

	img := NewUVCanvas(size)
	drawn, err := RenderUV(img, buf, meshing.Stride, fill)
	if err != nil {
		t.Fatal(err)
	}
	if drawn != 2 {
		t.Fatalf("drew %d triangles, want 2", drawn)
	}

	// Brick is tile 3: column 3 of the bottom row, which is the last image row.
	cell := size / AtlasTiles
	inside := image.Pt(3*cell+cell/2, size-cell/2)
	if got := img.RGBAAt(inside.X, inside.Y); got != fill {
		t.Errorf("tile centre %v: got %v, want fill", inside, got)
	}
	outside := image.Pt(5*cell+cell/2, size-cell/2)
	if got := img.RGBAAt(outside.X, outside.Y); got != uvBackground {
		t.Errorf("neighbour tile %v: got %v, want background", outside, got)
	}
}

func TestRenderUVSkipsTrianglesOutsideAtlas(t *testing.T) {
	c := meshing.Character{N: 1, M: 1, Char: 0xff}
	buf := make([]float32, meshing.CharacterFloats)
	if _, err := meshing.MakeCharacter(buf, &c); err != nil {
		t.Fatal(err)
	}
	img := NewUVCanvas(64)
	drawn, err := RenderUV(img, buf, meshing.Stride, fill)
	if err != nil {
		t.Fatal(err)
	}
	if drawn != 0 {
		t.Fatalf("drew %d triangles outside the atlas", drawn)
	}
}

func TestRenderUVErrors(t *testing.T) {
	img := NewUVCanvas(16)
	if _, err := RenderUV(img, make([]float32, 21), 7, fill); !errors.Is(err, ErrStride) {
		t.Errorf("got %v, want ErrStride", err)
	}
	if _, err := RenderUV(img, make([]float32, 20), 10, fill); !errors.Is(err, ErrPartialTri) {
		t.Errorf("got %v, want ErrPartialTri", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uv.png")
	if err := SavePNG(path, NewUVCanvas(32)); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "uv.png"), NewUVCanvas(8)); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
