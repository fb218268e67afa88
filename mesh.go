package gosiegl

import (
	"image/color"
	"math"
)

// Mesh is an indexed triangle list. Every three entries of Indices form one
// triangle, wound counter-clockwise when seen from the front.
type Mesh struct {
	Vertices []Vector3
	Indices  []int
	Color    color.RGBA

	vertexIndex map[Vector3]int
}

func NewMesh(col color.RGBA) *Mesh {
	return &Mesh{
		Color:       col,
		vertexIndex: make(map[Vector3]int),
	}
}

// AddVertex returns the index of p, adding it only if an identical point is
// not stored yet.
func (m *Mesh) AddVertex(p Vector3) int {
	if m.vertexIndex == nil {
		m.vertexIndex = make(map[Vector3]int, len(m.Vertices))
		for i, v := range m.Vertices {
			m.vertexIndex[v] = i
		}
	}
	if index, found := m.vertexIndex[p]; found {
		return index
	}
	m.Vertices = append(m.Vertices, p)
	index := len(m.Vertices) - 1
	m.vertexIndex[p] = index
	return index
}

func (m *Mesh) AddTriangle(a, b, c Vector3) {
	m.Indices = append(m.Indices, m.AddVertex(a), m.AddVertex(b), m.AddVertex(c))
}

// AddQuad adds a, b, c, d as the triangles abc and acd.
func (m *Mesh) AddQuad(a, b, c, d Vector3) {
	m.AddTriangle(a, b, c)
	m.AddTriangle(a, c, d)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) (Vector3, Vector3, Vector3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// FaceNormal is the unit normal of triangle i. Degenerate triangles give
// (0, 0, 0).
func (m *Mesh) FaceNormal(i int) Vector3 {
	a, b, c := m.Triangle(i)
	n := Cross(Sub(b, a), Sub(c, a))
	if Length(n) == 0 {
		return Vector3{}
	}
	return Normalize(n)
}

// Bounds returns the minimum and maximum corner of the axis aligned box
// around all vertices.
func (m *Mesh) Bounds() (Vector3, Vector3) {
	if len(m.Vertices) == 0 {
		return Vector3{}, Vector3{}
	}
	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], p[i])
			hi[i] = math.Max(hi[i], p[i])
		}
	}
	return lo, hi
}

// Centre moves every vertex so the middle of the bounding box is at the
// origin.
func (m *Mesh) Centre() {
	lo, hi := m.Bounds()
	mid := ScalarProduct(0.5, Add(lo, hi))
	for i := range m.Vertices {
		m.Vertices[i] = Sub(m.Vertices[i], mid)
	}
	m.vertexIndex = nil
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]Vector3, len(m.Vertices)),
		Indices:  make([]int, len(m.Indices)),
		Color:    m.Color,
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Indices, m.Indices)
	return c
}

// NewCube builds a cube with edges of length size centred on the origin.
// The faces follow the usual front, back, top, bottom, right, left layout.
func NewCube(size float64, col color.RGBA) *Mesh {
	h := size / 2
	m := NewMesh(col)
	v := func(x, y, z float64) Vector3 { return NewVector3(x*h, y*h, z*h) }

	m.AddQuad(v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1))
	m.AddQuad(v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1), v(1, -1, -1))
	m.AddQuad(v(-1, 1, -1), v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1))
	m.AddQuad(v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1))
	m.AddQuad(v(1, -1, -1), v(1, 1, -1), v(1, 1, 1), v(1, -1, 1))
	m.AddQuad(v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1))

	return m
}
