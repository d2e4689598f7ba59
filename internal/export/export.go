// Package export writes road meshes to interchange formats.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/roadsmith/pkg/math"
	"github.com/Faultbox/roadsmith/pkg/road"
)

var (
	ErrUnknownFormat = errors.New("unknown export format")
	ErrEmptyMesh     = errors.New("mesh has no triangles")
)

// Supported formats.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// ZUp maps the road's Y-up frame to the Z-up frame STL tools expect. It is
// a +90 degree turn about X, so triangle winding is preserved.
var ZUp = math.RotateX(90)

// Options controls how a mesh is written.
type Options struct {
	Format string  // "obj" or "stl"; empty picks by extension
	Scale  float32 // Output units per road unit; zero means 1
}

// Transform returns the matrix applied to every vertex for format.
func (o Options) Transform(format string) math.Mat4 {
	s := o.Scale
	if s <= 0 {
		s = 1
	}
	m := math.Scale(s, s, s)
	if strings.ToLower(format) == FormatSTL {
		m = ZUp.Mul(m)
	}
	return m
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case FormatOBJ, FormatSTL:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Save writes mesh to path.
func Save(path string, mesh *road.Mesh, opts Options) error {
	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}
	if mesh.TriangleCount() == 0 {
		return ErrEmptyMesh
	}

	xf := opts.Transform(format)
	switch strings.ToLower(format) {
	case FormatOBJ:
		return SaveOBJ(path, mesh, xf)
	case FormatSTL:
		return SaveSTL(path, mesh, xf)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
