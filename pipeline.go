package gosiegl

import (
	"image/color"
	"math"
	"sort"
)

// Polygon is a projected, shaded face in screen pixels, ready to fill.
type Polygon struct {
	X, Y  []float32
	Depth float64
	Color color.RGBA
}

// Pipeline projects meshes onto a Width x Height screen.
type Pipeline struct {
	Width, Height int
	Ambient       float64
	// DrawBackfaces turns off culling of faces wound clockwise on screen.
	DrawBackfaces bool
}

func NewPipeline(width, height int) *Pipeline {
	return &Pipeline{Width: width, Height: height, Ambient: 0.2}
}

// clipVertex is a point in homogeneous clip space.
type clipVertex [4]float64

func toClip(m *Matrix4, p Vector3) clipVertex {
	x, y, z := p[0], p[1], p[2]
	return clipVertex{
		m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15],
	}
}

// nearDistance is positive in front of the near plane (z > -w).
func nearDistance(v clipVertex) float64 {
	return v[2] + v[3]
}

// clipNear cuts the polygon at the near plane, keeping the part in front.
// The result is empty when the whole polygon is behind it.
func clipNear(in []clipVertex) []clipVertex {
	if len(in) == 0 {
		return nil
	}
	out := make([]clipVertex, 0, len(in)+1)
	for i := range in {
		a := in[i]
		b := in[(i+1)%len(in)]
		da, db := nearDistance(a), nearDistance(b)

		if da >= 0 {
			out = append(out, a)
		}
		if (da >= 0) != (db >= 0) {
			t := da / (da - db)
			var p clipVertex
			for k := range p {
				p[k] = a[k] + (b[k]-a[k])*t
			}
			out = append(out, p)
		}
	}
	return out
}

// Project transforms every triangle of mesh by model and the camera, clips
// it at the near plane, culls back faces and shades it with the lights.
// Polygons are appended to dst in mesh order; see SortByDepth.
func (p *Pipeline) Project(dst []Polygon, mesh *Mesh, model Matrix4, camera *Camera, lights []*PointLight) []Polygon {
	mvp := Multiply(camera.ViewProjection(), model)

	normalMatrix := Inverse(model)
	normalMatrix.Transpose()

	for i := 0; i < mesh.TriangleCount(); i++ {
		a, b, c := mesh.Triangle(i)
		clipped := clipNear([]clipVertex{toClip(&mvp, a), toClip(&mvp, b), toClip(&mvp, c)})
		if len(clipped) < 3 {
			continue
		}

		ndcX := make([]float64, len(clipped))
		ndcY := make([]float64, len(clipped))
		depth := 0.0
		for k, v := range clipped {
			ndcX[k] = v[0] / v[3]
			ndcY[k] = v[1] / v[3]
			depth += v[2] / v[3]
		}
		depth /= float64(len(clipped))

		if !p.DrawBackfaces && signedArea(ndcX, ndcY) <= 0 {
			continue
		}

		poly := Polygon{
			X:     make([]float32, len(clipped)),
			Y:     make([]float32, len(clipped)),
			Depth: depth,
		}
		for k := range clipped {
			poly.X[k] = float32((ndcX[k] + 1) / 2 * float64(p.Width))
			poly.Y[k] = float32((1 - ndcY[k]) / 2 * float64(p.Height))
		}

		normal := mesh.FaceNormal(i)
		normal.TransformDirection(normalMatrix)
		if Length(normal) > 0 {
			normal.Normalize()
		}
		centroid := ScalarProduct(1.0/3, Add(Add(a, b), c))
		centroid.ApplyMatrix(model)

		poly.Color = p.shade(mesh.Color, centroid, normal, lights)
		dst = append(dst, poly)
	}
	return dst
}

func (p *Pipeline) shade(base color.RGBA, point, normal Vector3, lights []*PointLight) color.RGBA {
	light := [3]float64{p.Ambient, p.Ambient, p.Ambient}
	for _, l := range lights {
		irr := l.Irradiance(point, normal)
		for k := range light {
			light[k] += irr * l.Color[k]
		}
	}
	channel := func(c uint8, f float64) uint8 {
		return uint8(math.Min(255, float64(c)*f))
	}
	return color.RGBA{
		R: channel(base.R, light[0]),
		G: channel(base.G, light[1]),
		B: channel(base.B, light[2]),
		A: base.A,
	}
}

// signedArea is positive for counter-clockwise polygons.
func signedArea(x, y []float64) float64 {
	area := 0.0
	for i := range x {
		j := (i + 1) % len(x)
		area += x[i]*y[j] - x[j]*y[i]
	}
	return area / 2
}

// SortByDepth orders polygons far to near, the order to paint them in.
func SortByDepth(polys []Polygon) {
	sort.SliceStable(polys, func(i, j int) bool {
		return polys[i].Depth > polys[j].Depth
	})
}

// ProjectPoint maps a world point to screen pixels. ok is false for points
// behind the near plane.
func (p *Pipeline) ProjectPoint(point Vector3, viewProjection Matrix4) (x, y float64, ok bool) {
	v := toClip(&viewProjection, point)
	if nearDistance(v) < 0 || v[3] <= 0 {
		return 0, 0, false
	}
	x = (v[0]/v[3] + 1) / 2 * float64(p.Width)
	y = (1 - v[1]/v[3]) / 2 * float64(p.Height)
	return x, y, true
}
