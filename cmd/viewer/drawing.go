package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// ebiten indexes vertices with uint16
const maxBatchVertices = 1<<16 - 1

// PolygonBatcher collects filled convex polygons and outlines and draws them
// with as few DrawTriangles calls as possible, in the order they were added.
type PolygonBatcher struct {
	vertices []ebiten.Vertex
	indices  []uint16
	screen   *ebiten.Image
}

func NewPolygonBatcher(screen *ebiten.Image) *PolygonBatcher {
	return &PolygonBatcher{screen: screen}
}

func colorVertex(x, y float32, clr color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255.0,
		ColorG: float32(clr.G) / 255.0,
		ColorB: float32(clr.B) / 255.0,
		ColorA: float32(clr.A) / 255.0,
	}
}

// AddPolygon fans a convex polygon into triangles.
func (b *PolygonBatcher) AddPolygon(xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}
	if len(b.vertices)+len(xp) > maxBatchVertices {
		b.Flush()
	}

	base := uint16(len(b.vertices))
	for i := range xp {
		b.vertices = append(b.vertices, colorVertex(xp[i], yp[i], clr))
	}
	for i := 2; i < len(xp); i++ {
		b.indices = append(b.indices, base, base+uint16(i-1), base+uint16(i))
	}
}

// AddPolygonAndOutline fills the polygon and strokes its edges on top.
func (b *PolygonBatcher) AddPolygonAndOutline(xp, yp []float32, fillClr, strokeClr color.RGBA, strokeWidth float32) {
	b.AddPolygon(xp, yp, fillClr)

	if len(xp) < 2 {
		return
	}
	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: strokeWidth})
	if len(b.vertices)+len(vs) > maxBatchVertices {
		b.Flush()
	}

	base := uint16(len(b.vertices))
	for i := range vs {
		b.vertices = append(b.vertices, colorVertex(vs[i].DstX, vs[i].DstY, strokeClr))
	}
	for _, idx := range is {
		b.indices = append(b.indices, base+idx)
	}
}

func (b *PolygonBatcher) Flush() {
	if len(b.indices) > 0 {
		op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
		b.screen.DrawTriangles(b.vertices, b.indices, whiteSub, op)
	}
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
