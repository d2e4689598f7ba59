package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/roadsmith/pkg/math"
	"github.com/Faultbox/roadsmith/pkg/road"
)

// WriteOBJ writes mesh as a Wavefront OBJ object named "road", with one
// vertex normal per vertex, after applying xf.
func WriteOBJ(w io.Writer, mesh *road.Mesh, xf math.Mat4) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# roadsmith: %d vertices, %d triangles\n", mesh.VertexCount(), mesh.TriangleCount())
	fmt.Fprintln(bw, "o road")
	for _, v := range mesh.Vertices {
		v = xf.TransformPoint(v)
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, n := range mesh.Normals() {
		n = xf.TransformDirection(n).Normalize()
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	// OBJ indices are 1-based.
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i]+1, mesh.Indices[i+1]+1, mesh.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}

	return bw.Flush()
}

// SaveOBJ writes mesh to an OBJ file, creating parent directories.
func SaveOBJ(path string, mesh *road.Mesh, xf math.Mat4) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, mesh, xf); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
