package export

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font atlas grid: 16 columns of glyph cells one unit wide and two tall,
// starting at ' ' in the top-left cell. The atlas is square, so the 95
// printable codes fill the top six of eight rows.
const (
	fontColumns = 16
	firstGlyph  = 32
	lastGlyph   = 126
)

// GlyphCell returns the pixel rectangle of character c in an atlas whose
// cells are cell pixels wide.
func GlyphCell(c byte, cell int) image.Rectangle {
	w := int(c) - firstGlyph
	col, row := w%fontColumns, w/fontColumns
	return image.Rect(col*cell, row*2*cell, (col+1)*cell, (row+1)*2*cell)
}

// BakeFontAtlas renders the printable ASCII range of a TrueType font into
// the glyph grid MakeCharacter addresses. Nil ttf uses Go Regular. The
// returned atlas is 16*cell pixels square.
func BakeFontAtlas(ttf []byte, cell int) (*image.Alpha, error) {
	if cell < 2 {
		return nil, fmt.Errorf("font cell must be at least 2 pixels, got %d", cell)
	}
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    1.5 * float64(cell),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	size := fontColumns * cell
	atlas := image.NewAlpha(image.Rect(0, 0, size, size))

	// Centre the line box vertically in the cell.
	m := face.Metrics()
	lineH := (m.Ascent + m.Descent).Ceil()
	top := (2*cell - lineH) / 2

	for c := firstGlyph; c <= lastGlyph; c++ {
		box := GlyphCell(byte(c), cell)
		adv, ok := face.GlyphAdvance(rune(c))
		if !ok {
			continue
		}
		x := box.Min.X + (cell-adv.Round())/2
		dot := fixed.P(x, box.Min.Y+top+m.Ascent.Ceil())
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(c))
		if !ok || mask == nil {
			continue
		}
		// Clip to the cell so wide glyphs never bleed into a neighbour.
		clipped := dr.Intersect(box)
		if clipped.Empty() {
			continue
		}
		draw.Draw(atlas, clipped, mask, maskp.Add(clipped.Min.Sub(dr.Min)), draw.Over)
	}
	return atlas, nil
}
