package gosiegl

import (
	"log"

	"github.com/google/uuid"
)

// Entity is a mesh placed in the scene.
type Entity struct {
	ID        uuid.UUID
	Name      string
	Mesh      *Mesh
	Transform Transform
}

// Scene holds what a frame is drawn from: one camera, the entities and the
// point lights.
type Scene struct {
	Camera   *Camera
	Entities []*Entity
	Lights   []*PointLight
}

func NewScene(camera *Camera) *Scene {
	return &Scene{Camera: camera}
}

// AddEntity places mesh with transform t and returns the new entity.
func (s *Scene) AddEntity(name string, mesh *Mesh, t Transform) *Entity {
	e := &Entity{
		ID:        uuid.New(),
		Name:      name,
		Mesh:      mesh,
		Transform: t,
	}
	s.Entities = append(s.Entities, e)
	log.Printf("Added entity %s (%s), %d triangles", name, e.ID, mesh.TriangleCount())
	return e
}

func (s *Scene) AddLight(l *PointLight) {
	s.Lights = append(s.Lights, l)
}

// Entity finds an entity by id, nil if there is none.
func (s *Scene) Entity(id uuid.UUID) *Entity {
	for _, e := range s.Entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Render projects every entity through p and returns the polygons in
// painting order.
func (s *Scene) Render(p *Pipeline) []Polygon {
	var polys []Polygon
	for _, e := range s.Entities {
		polys = p.Project(polys, e.Mesh, e.Transform.ModelMatrix(), s.Camera, s.Lights)
	}
	SortByDepth(polys)
	return polys
}

// LightMVPs returns the light space transform of every entity for l's
// shadow pass, keyed by entity id.
func (s *Scene) LightMVPs(l *PointLight) map[uuid.UUID]Matrix4 {
	mvps := make(map[uuid.UUID]Matrix4, len(s.Entities))
	for _, e := range s.Entities {
		mvps[e.ID] = l.MVP(e.Transform.ModelMatrix())
	}
	return mvps
}
