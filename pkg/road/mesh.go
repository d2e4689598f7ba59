package road

import "github.com/Faultbox/roadsmith/pkg/math"

// MinSubdivision is the smallest subdivision BuildMesh uses.
const MinSubdivision = 2

// Mesh is a triangle list: Indices holds three vertex indices per triangle.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Append adds other's vertices and indices. other's indices must already
// be offset by the current vertex count.
func (m *Mesh) Append(other *Mesh) {
	m.Vertices = append(m.Vertices, other.Vertices...)
	m.Indices = append(m.Indices, other.Indices...)
}

// Bounds returns the bounding box of all vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = math.Min(b.Min, v)
		b.Max = math.Max(b.Max, v)
	}
	return b
}

// Normals returns area-weighted vertex normals.
func (m *Mesh) Normals() []math.Vec3 {
	normals := make([]math.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		edge1 := m.Vertices[b].Sub(m.Vertices[a])
		edge2 := m.Vertices[c].Sub(m.Vertices[a])
		n := edge1.Cross(edge2)
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// BuildMesh tessellates the whole road depth-first from the root, children
// in slot order. subdivision is raised to MinSubdivision if lower.
func BuildMesh(t *Tree, subdivision int) *Mesh {
	if subdivision < MinSubdivision {
		subdivision = MinSubdivision
	}
	mesh := &Mesh{}
	t.Walk(func(_ NodeID, seg Segment) bool {
		mesh.Append(seg.GenerateMesh(subdivision, len(mesh.Vertices)))
		return true
	})
	return mesh
}
