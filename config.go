package gosiegl

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneEnv names the environment variable LoadConfig falls back to when no
// path is given.
const SceneEnv = "GOSIEGL_SCENE"

// Mesh kinds a config can ask for.
const (
	MeshCube    = "cube"
	MeshTerrain = "terrain"
)

// Config is the YAML scene descriptor.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Ambient  float64        `yaml:"ambient"`
	Lights   []LightConfig  `yaml:"lights"`
	Entities []EntityConfig `yaml:"entities"`
}

type CameraConfig struct {
	Position Vector3 `yaml:"position"`
	Target   Vector3 `yaml:"target"`
	Fov      float64 `yaml:"fov"`
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
}

type LightConfig struct {
	Position   Vector3    `yaml:"position"`
	FocalPoint Vector3    `yaml:"focal_point"`
	Color      [3]float64 `yaml:"color"`
	Intensity  float64    `yaml:"intensity"`
}

type EntityConfig struct {
	Name      string          `yaml:"name"`
	Mesh      MeshConfig      `yaml:"mesh"`
	Transform TransformConfig `yaml:"transform"`
}

type MeshConfig struct {
	Kind  string   `yaml:"kind"`
	Color [3]uint8 `yaml:"color"`

	// cube
	Size float64 `yaml:"size"`

	// terrain
	Width  float64 `yaml:"width"`
	Depth  float64 `yaml:"depth"`
	Cells  int     `yaml:"cells"`
	Height float64 `yaml:"height"`
	Seed   int64   `yaml:"seed"`
}

type TransformConfig struct {
	Translation   Vector3  `yaml:"translation"`
	Scale         *Vector3 `yaml:"scale"`
	RotationAxis  *Vector3 `yaml:"rotation_axis"`
	RotationAngle float64  `yaml:"rotation_angle"`
}

// DefaultConfig is the demo scene: a cube over a terrain, lit by one light.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			Position: NewVector3(-20, 180, 250),
			Target:   NewVector3(0, 1, 0),
			Fov:      defaultFov,
			Near:     defaultNear,
			Far:      defaultFar,
		},
		Ambient: 0.2,
		Lights: []LightConfig{
			{Position: NewVector3(0, 100, 200), Color: [3]float64{1, 1, 1}, Intensity: 40000},
		},
		Entities: []EntityConfig{
			{
				Name: "cube",
				Mesh: MeshConfig{Kind: MeshCube, Size: 2, Color: [3]uint8{220, 80, 60}},
				Transform: TransformConfig{
					Translation: NewVector3(0, 40, 0),
					Scale:       &Vector3{26, 26, 26},
				},
			},
			{
				Name: "ground",
				Mesh: MeshConfig{Kind: MeshTerrain, Width: 400, Depth: 400, Cells: 20, Height: 30, Seed: 7, Color: [3]uint8{70, 160, 80}},
			},
		},
	}
}

// LoadConfig reads the YAML scene at path. An empty path falls back to
// $GOSIEGL_SCENE and then to DefaultConfig. Fields missing from the file
// keep their zero value except the camera projection, which is defaulted.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(SceneEnv)
		if path == "" {
			log.Println("No scene file given, using the default scene")
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read scene %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing scene %s: %w", path, err)
	}

	log.Printf("Loaded scene %s: %d entities, %d lights", path, len(cfg.Entities), len(cfg.Lights))
	return cfg, nil
}

// ParseConfig decodes and validates a YAML scene.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Camera.Fov == 0 {
		c.Camera.Fov = defaultFov
	}
	if c.Camera.Near == 0 {
		c.Camera.Near = defaultNear
	}
	if c.Camera.Far == 0 {
		c.Camera.Far = defaultFar
	}
}

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var errs []error

	cam := c.Camera
	if cam.Position == cam.Target {
		errs = append(errs, errors.New("camera position and target are the same point"))
	}
	if cam.Fov <= 0 || cam.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %.2f is outside (0, 180)", cam.Fov))
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		errs = append(errs, fmt.Errorf("camera clip range %.3f..%.3f is invalid", cam.Near, cam.Far))
	}

	for i, l := range c.Lights {
		if l.Intensity < 0 {
			errs = append(errs, fmt.Errorf("light %d has negative intensity", i))
		}
	}

	for i, e := range c.Entities {
		switch e.Mesh.Kind {
		case MeshCube:
			if e.Mesh.Size <= 0 {
				errs = append(errs, fmt.Errorf("entity %d (%s): cube size must be positive", i, e.Name))
			}
		case MeshTerrain:
		default:
			errs = append(errs, fmt.Errorf("entity %d (%s) mesh %q: %w", i, e.Name, e.Mesh.Kind, ErrUnknownMesh))
		}
		if err := e.Transform.transform().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", i, e.Name, err))
		}
	}

	return errors.Join(errs...)
}

func (t TransformConfig) transform() Transform {
	tr := NewTransform()
	tr.Translation = t.Translation
	if t.Scale != nil {
		tr.Scale = *t.Scale
	}
	if t.RotationAxis != nil {
		tr.RotationAxis = *t.RotationAxis
	}
	tr.RotationAngle = t.RotationAngle
	return tr
}

func (m MeshConfig) build() (*Mesh, error) {
	col := color.RGBA{R: m.Color[0], G: m.Color[1], B: m.Color[2], A: 255}
	switch m.Kind {
	case MeshCube:
		return NewCube(m.Size, col), nil
	case MeshTerrain:
		return NewTerrain(TerrainOptions{
			Width:  m.Width,
			Depth:  m.Depth,
			Cells:  m.Cells,
			Height: m.Height,
			Seed:   m.Seed,
			Color:  col,
		})
	}
	return nil, fmt.Errorf("mesh %q: %w", m.Kind, ErrUnknownMesh)
}

// Build creates the scene the config describes.
func (c *Config) Build() (*Scene, error) {
	log.Println("Building scene...")

	cam := NewCamera(c.Camera.Position, c.Camera.Target)
	cam.Fov = c.Camera.Fov
	cam.Near = c.Camera.Near
	cam.Far = c.Camera.Far
	s := NewScene(cam)

	for _, lc := range c.Lights {
		l := NewPointLight(lc.Position, lc.Intensity)
		l.FocalPoint = lc.FocalPoint
		if lc.Color != ([3]float64{}) {
			l.Color = lc.Color
		}
		s.AddLight(l)
	}

	for _, ec := range c.Entities {
		mesh, err := ec.Mesh.build()
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", ec.Name, err)
		}
		s.AddEntity(ec.Name, mesh, ec.Transform.transform())
	}

	log.Println("Scene built.")
	return s, nil
}
