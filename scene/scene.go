// Package scene keeps the lights of a scene and packs the visible ones into the
// block array uploaded to the GPU every frame.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/lumen/light"
)

// DefaultCapacity is the number of light blocks the lighting shader reads.
const DefaultCapacity = 32

type LightId string

func makeLightId() LightId {
	return LightId(uuid.NewString())
}

type entry struct {
	id    LightId
	name  string
	light light.Light
}

// Scene is an ordered set of lights. It is not safe for concurrent use.
type Scene struct {
	entries []entry
	index   map[LightId]int
}

func New() *Scene {
	return &Scene{index: make(map[LightId]int)}
}

// Add appends l and returns its id.
func (s *Scene) Add(l light.Light) LightId {
	return s.AddNamed("", l)
}

// AddNamed appends l under name. Names are not required to be unique.
func (s *Scene) AddNamed(name string, l light.Light) LightId {
	id := makeLightId()
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, entry{id: id, name: name, light: l})
	return id
}

// Remove deletes the light with id, keeping the order of the others.
func (s *Scene) Remove(id LightId) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].id] = j
	}
	return true
}

func (s *Scene) Get(id LightId) (light.Light, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.entries[i].light, true
}

// Find returns the first light added under name.
func (s *Scene) Find(name string) (light.Light, bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e.light, true
		}
	}
	return nil, false
}

// Name returns the name the light with id was added under.
func (s *Scene) Name(id LightId) string {
	if i, ok := s.index[id]; ok {
		return s.entries[i].name
	}
	return ""
}

// Ids returns the light ids in insertion order.
func (s *Scene) Ids() []LightId {
	ids := make([]LightId, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	return ids
}

// Lights returns the lights in insertion order.
func (s *Scene) Lights() []light.Light {
	lights := make([]light.Light, len(s.entries))
	for i, e := range s.entries {
		lights[i] = e.light
	}
	return lights
}

func (s *Scene) Len() int { return len(s.entries) }

// SortedByType returns the lights grouped by type, insertion order within a type.
func (s *Scene) SortedByType() []light.Light {
	lights := s.Lights()
	light.SortByType(lights)
	return lights
}

type PackOptions struct {
	// Capacity caps the number of packed lights. Zero means DefaultCapacity.
	Capacity int
	// SortByType groups the packed lights by type.
	SortByType bool
}

// Pack returns the data blocks of the visible lights, in view space when view is
// the camera's view matrix. Lights beyond the capacity are dropped.
func (s *Scene) Pack(time float64, view mgl32.Mat4, opts PackOptions) []light.Data {
	capacity := opts.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	lights := s.Lights()
	if opts.SortByType {
		light.SortByType(lights)
	}

	data := make([]light.Data, 0, min(capacity, len(lights)))
	for _, l := range lights {
		if len(data) == capacity {
			break
		}
		if !l.AsLightBase().Visible() {
			continue
		}
		data = append(data, l.Data(time, view))
	}
	return data
}
