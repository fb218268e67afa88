package gosiegl

import (
	"fmt"
	"image/color"

	"github.com/aquilax/go-perlin"
)

// TerrainOptions configure NewTerrain. Zero noise parameters fall back to
// alpha 2, beta 2, 3 octaves and a frequency of 4.
type TerrainOptions struct {
	Width, Depth float64
	Cells        int
	Height       float64

	Frequency float64
	Alpha     float64
	Beta      float64
	Octaves   int32
	Seed      int64

	Color color.RGBA
}

func (o *TerrainOptions) applyDefaults() {
	if o.Alpha == 0 {
		o.Alpha = 2
	}
	if o.Beta == 0 {
		o.Beta = 2
	}
	if o.Octaves == 0 {
		o.Octaves = 3
	}
	if o.Frequency == 0 {
		o.Frequency = 4
	}
}

// NewTerrain builds a Cells x Cells heightfield on the xz plane centred on
// the origin, with heights from perlin noise scaled by Height. Faces point
// up (+y).
func NewTerrain(opts TerrainOptions) (*Mesh, error) {
	if opts.Cells < 1 || opts.Width <= 0 || opts.Depth <= 0 {
		return nil, fmt.Errorf("terrain of %d cells over %.2f by %.2f: %w", opts.Cells, opts.Width, opts.Depth, ErrInvalidTerrain)
	}
	opts.applyDefaults()

	noise := perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed)

	n := opts.Cells
	grid := make([]Vector3, (n+1)*(n+1))
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			u := float64(i) / float64(n)
			v := float64(j) / float64(n)
			y := opts.Height * noise.Noise2D(u*opts.Frequency, v*opts.Frequency)
			grid[j*(n+1)+i] = NewVector3((u-0.5)*opts.Width, y, (v-0.5)*opts.Depth)
		}
	}

	m := NewMesh(opts.Color)
	at := func(i, j int) Vector3 { return grid[j*(n+1)+i] }
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			m.AddQuad(at(i, j), at(i, j+1), at(i+1, j+1), at(i+1, j))
		}
	}
	return m, nil
}
