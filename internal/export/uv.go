package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"
)

// AtlasTiles is the number of tiles along each side of the block atlas.
const AtlasTiles = 16

var (
	uvBackground = color.RGBA{24, 24, 28, 255}
	uvGrid       = color.RGBA{60, 60, 70, 255}
)

// NewUVCanvas returns a size x size preview of the atlas with the tile grid
// drawn in.
func NewUVCanvas(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(uvBackground), image.Point{}, draw.Src)
	for t := 0; t < AtlasTiles; t++ {
		p := t * size / AtlasTiles
		for i := 0; i < size; i++ {
			img.SetRGBA(p, i, uvGrid)
			img.SetRGBA(i, p, uvGrid)
		}
	}
	return img
}

// RenderUV fills every triangle of a vertex stream into img in atlas space.
// v runs bottom-up, image rows run top-down. Triangles are drawn one at a
// time so overlapping faces add up instead of cancelling by winding.
// It returns the number of triangles whose bounds overlap img.
func RenderUV(img *image.RGBA, data []float32, stride int, c color.Color) (int, error) {
	if stride < minStride {
		return 0, fmt.Errorf("%w: got %d", ErrStride, stride)
	}
	if len(data)%(3*stride) != 0 {
		return 0, fmt.Errorf("%w: %d floats at stride %d", ErrPartialTri, len(data), stride)
	}

	bounds := img.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	src := image.NewUniform(c)
	z := vector.NewRasterizer(0, 0)
	drawn := 0

	for t := 0; t+3*stride <= len(data); t += 3 * stride {
		var pts [3][2]float32
		for k := range pts {
			uv := data[t+k*stride+uvOffset:]
			pts[k] = [2]float32{uv[0] * w, (1 - uv[1]) * h}
		}
		box := triangleBounds(pts).Add(bounds.Min).Intersect(bounds)
		if box.Empty() {
			continue
		}
		ox := float32(box.Min.X - bounds.Min.X)
		oy := float32(box.Min.Y - bounds.Min.Y)

		z.Reset(box.Dx(), box.Dy())
		z.MoveTo(pts[0][0]-ox, pts[0][1]-oy)
		z.LineTo(pts[1][0]-ox, pts[1][1]-oy)
		z.LineTo(pts[2][0]-ox, pts[2][1]-oy)
		z.ClosePath()
		z.Draw(img, box, src, image.Point{})
		drawn++
	}
	return drawn, nil
}

func triangleBounds(pts [3][2]float32) image.Rectangle {
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p[0])
		maxX = max(maxX, p[0])
		minY = min(minY, p[1])
		maxY = max(maxY, p[1])
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

// SavePNG encodes img to path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
