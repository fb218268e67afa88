package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/gosiegl"
)

const (
	orbitSpeed = 0.005
	zoomStep   = 0.9
	moveStep   = 1.0
	scaleStep  = 1.02
	spinStep   = 0.01

	// light path speed, per tick at 60 TPS
	lightTimeStep = 0.25 / 60
)

var outlineColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}

type Game struct {
	scene    *gosiegl.Scene
	pipeline *gosiegl.Pipeline

	outlines     bool
	animateLight bool
	spin         bool
	lightTime    float64

	dragging     bool
	lastX, lastY int
}

func NewGame(scene *gosiegl.Scene, pipeline *gosiegl.Pipeline, outlines, animateLight bool) *Game {
	scene.Camera.SetAspect(pipeline.Width, pipeline.Height)
	return &Game{
		scene:        scene,
		pipeline:     pipeline,
		outlines:     outlines,
		animateLight: animateLight,
	}
}

// selected is the entity the keyboard moves, the first one in the scene.
func (g *Game) selected() *gosiegl.Entity {
	if len(g.scene.Entities) == 0 {
		return nil
	}
	return g.scene.Entities[0]
}

func (g *Game) Update() error {
	g.updateCamera()
	g.updateEntity()

	if g.animateLight && len(g.scene.Lights) > 0 {
		g.lightTime += lightTimeStep
		t := g.lightTime
		g.scene.Lights[0].Position = gosiegl.NewVector3(
			math.Sin(t*6)*100,
			math.Cos(t*4)*150,
			math.Cos(t*2)*100,
		)
	}
	return nil
}

func (g *Game) updateCamera() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.dragging {
		x, y := ebiten.CursorPosition()
		g.scene.Camera.Orbit(-float64(x-g.lastX)*orbitSpeed, -float64(y-g.lastY)*orbitSpeed)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.dragging = false
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scene.Camera.Zoom(math.Pow(zoomStep, wy))
	}
}

func (g *Game) updateEntity() {
	e := g.selected()
	if e == nil {
		return
	}
	t := &e.Transform

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		t.Translation[0] -= moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		t.Translation[0] += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		t.Translation[2] -= moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		t.Translation[2] += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		t.Translation[1] += moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		t.Translation[1] -= moveStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) {
		t.Scale.Scalar(scaleStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) {
		t.Scale.Scalar(1 / scaleStep)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.spin = !g.spin
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.outlines = !g.outlines
	}
	if g.spin {
		t.Rotate(spinStep)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	batcher := NewPolygonBatcher(screen)
	for _, p := range g.scene.Render(g.pipeline) {
		if g.outlines {
			batcher.AddPolygonAndOutline(p.X, p.Y, p.Color, outlineColor, 1)
		} else {
			batcher.AddPolygon(p.X, p.Y, p.Color)
		}
	}
	g.drawLights(batcher)
	batcher.Flush()

	msg := fmt.Sprintf("FPS: %0.2f\ndrag: orbit  wheel: zoom  wasd/qe: move  +/-: scale  r: spin  o: outlines", ebiten.ActualFPS())
	if e := g.selected(); e != nil {
		msg += fmt.Sprintf("\n%s at %v scale %v", e.Name, e.Transform.Translation, e.Transform.Scale)
	}
	ebitenutil.DebugPrint(screen, msg)
}

// drawLights marks each light with a small square.
func (g *Game) drawLights(batcher *PolygonBatcher) {
	vp := g.scene.Camera.ViewProjection()
	for _, l := range g.scene.Lights {
		x, y, ok := g.pipeline.ProjectPoint(l.Position, vp)
		if !ok {
			continue
		}
		fx, fy := float32(x), float32(y)
		batcher.AddPolygon(
			[]float32{fx - 3, fx + 3, fx + 3, fx - 3},
			[]float32{fy - 3, fy - 3, fy + 3, fy + 3},
			color.RGBA{R: 255, G: 255, B: 200, A: 255},
		)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.pipeline.Width, g.pipeline.Height
}
