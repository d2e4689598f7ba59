package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/roadsmith/pkg/math"
	"github.com/Faultbox/roadsmith/pkg/road"
)

func vec(v math.Vec3) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Triangles converts mesh to sdfx triangles transformed by xf. Zero-area
// triangles, such as those of an unshrunk transition, are dropped.
func Triangles(mesh *road.Mesh, xf math.Mat4) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, mesh.TriangleCount())
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a := mesh.Vertices[mesh.Indices[i]]
		b := mesh.Vertices[mesh.Indices[i+1]]
		c := mesh.Vertices[mesh.Indices[i+2]]
		if b.Sub(a).Cross(c.Sub(a)).Length() < math.Epsilon {
			continue
		}
		tris = append(tris, &sdf.Triangle3{
			vec(xf.TransformPoint(a)),
			vec(xf.TransformPoint(b)),
			vec(xf.TransformPoint(c)),
		})
	}
	return tris
}

// SaveSTL writes mesh as a binary STL file, creating parent directories.
func SaveSTL(path string, mesh *road.Mesh, xf math.Mat4) error {
	tris := Triangles(mesh, xf)
	if len(tris) == 0 {
		return ErrEmptyMesh
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := render.SaveSTL(path, tris); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
