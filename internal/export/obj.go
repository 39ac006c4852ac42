// Package export writes emitted vertex streams to files a person can look
// at: Wavefront OBJ meshes, atlas UV previews and baked font atlases.
package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Vertex layout shared by both strides: position, normal, then uv. The
// stride-10 ao and light channels have no OBJ counterpart and are dropped.
const (
	posOffset    = 0
	normalOffset = 3
	uvOffset     = 6
	minStride    = 8
)

var (
	ErrStride        = errors.New("export: stride must be at least 8")
	ErrPartialVertex = errors.New("export: data is not a whole number of vertices")
	ErrPartialTri    = errors.New("export: vertex count is not a multiple of 3")
)

// OBJWriter streams triangle lists as Wavefront OBJ objects. Indices are
// global, so every group appended to one writer lands in one file.
type OBJWriter struct {
	w        *bufio.Writer
	next     int
	groups   int
	err      error
	scratch  []byte
	triangle [3]int
}

func NewOBJWriter(w io.Writer) *OBJWriter {
	ow := &OBJWriter{w: bufio.NewWriter(w), next: 1}
	ow.printf("# blockmesh\n")
	return ow
}

// Group writes data as a named object of stride-sized vertex records read
// as a triangle list.
func (ow *OBJWriter) Group(name string, data []float32, stride int) error {
	if ow.err != nil {
		return ow.err
	}
	if stride < minStride {
		return fmt.Errorf("%w: got %d", ErrStride, stride)
	}
	if len(data)%stride != 0 {
		return fmt.Errorf("%w: %d floats at stride %d", ErrPartialVertex, len(data), stride)
	}
	count := len(data) / stride
	if count%3 != 0 {
		return fmt.Errorf("%w: %d vertices", ErrPartialTri, count)
	}

	ow.printf("o %s\n", name)
	for i := 0; i < count; i++ {
		ow.floats("v", data[i*stride+posOffset:i*stride+posOffset+3])
	}
	for i := 0; i < count; i++ {
		ow.floats("vt", data[i*stride+uvOffset:i*stride+uvOffset+2])
	}
	for i := 0; i < count; i++ {
		ow.floats("vn", data[i*stride+normalOffset:i*stride+normalOffset+3])
	}
	for i := 0; i < count; i += 3 {
		ow.triangle = [3]int{ow.next + i, ow.next + i + 1, ow.next + i + 2}
		ow.face()
	}
	ow.next += count
	ow.groups++
	return ow.err
}

// Vertices returns how many vertices have been written so far.
func (ow *OBJWriter) Vertices() int { return ow.next - 1 }

// Groups returns how many objects have been written so far.
func (ow *OBJWriter) Groups() int { return ow.groups }

// Flush writes any buffered data and reports the first error seen.
func (ow *OBJWriter) Flush() error {
	if ow.err != nil {
		return ow.err
	}
	ow.err = ow.w.Flush()
	return ow.err
}

func (ow *OBJWriter) printf(format string, args ...any) {
	if ow.err != nil {
		return
	}
	_, ow.err = fmt.Fprintf(ow.w, format, args...)
}

func (ow *OBJWriter) floats(tag string, vs []float32) {
	if ow.err != nil {
		return
	}
	b := append(ow.scratch[:0], tag...)
	for _, v := range vs {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, float64(v), 'f', -1, 32)
	}
	b = append(b, '\n')
	ow.scratch = b
	_, ow.err = ow.w.Write(b)
}

func (ow *OBJWriter) face() {
	if ow.err != nil {
		return
	}
	b := append(ow.scratch[:0], 'f')
	for _, idx := range ow.triangle {
		b = append(b, ' ')
		for k := 0; k < 3; k++ {
			if k > 0 {
				b = append(b, '/')
			}
			b = strconv.AppendInt(b, int64(idx), 10)
		}
	}
	b = append(b, '\n')
	ow.scratch = b
	_, ow.err = ow.w.Write(b)
}
