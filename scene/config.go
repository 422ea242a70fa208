package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gekko3d/lumen/light"
)

var (
	ErrUnknownType = errors.New("unknown light type")
	ErrBadVector   = errors.New("bad vector")
	ErrUnsupported = errors.New("field not supported by light type")
	ErrBadCalc     = errors.New("calc must be range or intensity")
	ErrNoSolution  = errors.New("no finite solution without attenuation")
)

// Config is the YAML description of a scene.
type Config struct {
	Capacity int           `yaml:"capacity"`
	Camera   CameraConfig  `yaml:"camera"`
	Lights   []LightConfig `yaml:"lights"`
}

type CameraConfig struct {
	Eye    []float32 `yaml:"eye"`
	Target []float32 `yaml:"target"`
	Up     []float32 `yaml:"up"`
}

// LightConfig describes one light. Unset fields keep the light's defaults.
type LightConfig struct {
	Name      string    `yaml:"name"`
	Type      string    `yaml:"type"`
	Visible   *bool     `yaml:"visible"`
	Color     []float32 `yaml:"color"`
	Intensity *float32  `yaml:"intensity"`

	Position  []float32 `yaml:"position"`
	Direction []float32 `yaml:"direction"`
	PointAt   []float32 `yaml:"pointAt"`

	// From and To span capsule and wedge lights.
	From   []float32 `yaml:"from"`
	To     []float32 `yaml:"to"`
	Length *float32  `yaml:"length"`
	Axis   []float32 `yaml:"axis"`

	Range        *float32  `yaml:"range"`
	Attenuation  []float32 `yaml:"attenuation"`
	SpotRatio    *float32  `yaml:"spotRatio"`
	HotspotRatio *float32  `yaml:"hotspotRatio"`

	Shadows          bool                    `yaml:"shadows"`
	ShadowIndex      int32                   `yaml:"shadowIndex"`
	Modulation       bool                    `yaml:"modulation"`
	ModulationIndex  int32                   `yaml:"modulationIndex"`
	ModulationParams *light.ModulationParams `yaml:"modulationParams"`

	// Calc derives "range" or "intensity" once everything else is applied.
	Calc      string   `yaml:"calc"`
	Threshold *float32 `yaml:"threshold"`
}

// Parse decodes a scene description. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Build creates the lights described by the config.
func (c *Config) Build() (*Scene, error) {
	s := New()
	for i := range c.Lights {
		l, err := c.Lights[i].Build()
		if err != nil {
			return nil, fmt.Errorf("scene: light %d: %w", i, err)
		}
		s.AddNamed(c.Lights[i].Name, l)
	}
	return s, nil
}

// PackCapacity returns the configured capacity or DefaultCapacity.
func (c *Config) PackCapacity() int {
	if c.Capacity > 0 {
		return c.Capacity
	}
	return DefaultCapacity
}

// EyeTarget returns the camera position and the point it looks at, (0, 10, 25)
// and the origin unless configured.
func (c CameraConfig) EyeTarget() (eye, target mgl32.Vec3, err error) {
	if eye, err = vec3Or("camera eye", c.Eye, mgl32.Vec3{0, 10, 25}); err != nil {
		return eye, target, err
	}
	target, err = vec3Or("camera target", c.Target, mgl32.Vec3{})
	return eye, target, err
}

// View returns the camera view matrix.
func (c CameraConfig) View() (mgl32.Mat4, error) {
	eye, target, err := c.EyeTarget()
	if err != nil {
		return mgl32.Mat4{}, err
	}
	up, err := vec3Or("camera up", c.Up, mgl32.Vec3{0, 1, 0})
	if err != nil {
		return mgl32.Mat4{}, err
	}
	return mgl32.LookAtV(eye, target, up), nil
}

func newLight(t string) (light.Light, error) {
	switch strings.ToLower(t) {
	case "directional":
		return light.NewDirectional(), nil
	case "point":
		return light.NewPoint(), nil
	case "capsule":
		return light.NewCapsule(), nil
	case "spot":
		return light.NewSpot(), nil
	case "wedge":
		return light.NewWedge(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, t)
}

type shadowCaster interface {
	EnableShadows(enabled bool)
	SetShadowIndex(index int32)
}

// coned is implemented by spot and wedge lights.
type coned interface {
	SetSpotRatio(ratio float32)
	SetHotspotRatio(ratio float32)
	PointAt(point mgl32.Vec3)
	EnableModulation(enabled bool)
	SetModulationIndex(index int32)
	SetModulationParams(params light.ModulationParams)
}

// Build creates the light and applies every set field to it.
func (lc *LightConfig) Build() (light.Light, error) {
	l, err := newLight(lc.Type)
	if err != nil {
		return nil, err
	}
	base := l.AsLightBase()
	unsupported := func(field string) error {
		return fmt.Errorf("%w: %s on %s", ErrUnsupported, field, l.Type())
	}

	if lc.Color != nil {
		c, err := vec3("color", lc.Color)
		if err != nil {
			return nil, err
		}
		base.SetColor(c)
	}
	if lc.Intensity != nil {
		base.SetIntensity(*lc.Intensity)
	}
	if lc.Visible != nil {
		base.SetVisible(*lc.Visible)
	}

	if lc.Position != nil {
		p, ok := l.(light.Positioned)
		if !ok {
			return nil, unsupported("position")
		}
		v, err := vec3("position", lc.Position)
		if err != nil {
			return nil, err
		}
		p.SetPosition(v)
	}

	if lc.Length != nil || lc.Axis != nil || lc.From != nil || lc.To != nil {
		s, ok := l.(light.Segmented)
		if !ok {
			return nil, unsupported("length")
		}
		if err := lc.applySegment(s); err != nil {
			return nil, err
		}
	}

	if lc.Direction != nil {
		d, ok := l.(light.Directed)
		if !ok {
			return nil, unsupported("direction")
		}
		v, err := vec3("direction", lc.Direction)
		if err != nil {
			return nil, err
		}
		d.SetDirection(v)
	}

	cone, isCone := l.(coned)
	if lc.PointAt != nil {
		if !isCone {
			return nil, unsupported("pointAt")
		}
		v, err := vec3("pointAt", lc.PointAt)
		if err != nil {
			return nil, err
		}
		cone.PointAt(v)
	}

	if lc.Range != nil {
		r, ok := l.(light.Ranged)
		if !ok {
			return nil, unsupported("range")
		}
		r.SetRange(*lc.Range)
	}
	if lc.Attenuation != nil {
		a, ok := l.(light.Attenuated)
		if !ok {
			return nil, unsupported("attenuation")
		}
		if len(lc.Attenuation) != 2 {
			return nil, fmt.Errorf("%w: attenuation needs 2 components, got %d", ErrBadVector, len(lc.Attenuation))
		}
		a.SetAttenuation(lc.Attenuation[0], lc.Attenuation[1])
	}

	if lc.SpotRatio != nil || lc.HotspotRatio != nil || lc.Modulation || lc.ModulationParams != nil {
		if !isCone {
			return nil, unsupported("cone")
		}
		if lc.SpotRatio != nil {
			cone.SetSpotRatio(*lc.SpotRatio)
		}
		if lc.HotspotRatio != nil {
			cone.SetHotspotRatio(*lc.HotspotRatio)
		}
		if lc.ModulationParams != nil {
			cone.SetModulationParams(*lc.ModulationParams)
		}
		cone.EnableModulation(lc.Modulation)
		cone.SetModulationIndex(lc.ModulationIndex)
	}

	if lc.Shadows {
		sc, ok := l.(shadowCaster)
		if !ok {
			return nil, unsupported("shadows")
		}
		sc.EnableShadows(true)
		sc.SetShadowIndex(lc.ShadowIndex)
	}

	if lc.Calc != "" {
		if err := lc.applyCalc(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (lc *LightConfig) applySegment(s light.Segmented) error {
	if lc.From != nil || lc.To != nil {
		a, err := vec3("from", lc.From)
		if err != nil {
			return err
		}
		b, err := vec3("to", lc.To)
		if err != nil {
			return err
		}
		s.SetLengthAndAxis(a, b)
	}
	if lc.Axis != nil {
		v, err := vec3("axis", lc.Axis)
		if err != nil {
			return err
		}
		s.SetAxis(v)
	}
	if lc.Length != nil {
		s.SetLength(*lc.Length)
	}
	return nil
}

func (lc *LightConfig) applyCalc(l light.Light) error {
	r, ok := l.(light.Ranged)
	if !ok {
		return fmt.Errorf("%w: calc on %s", ErrUnsupported, l.Type())
	}
	threshold := light.DefaultThreshold
	if lc.Threshold != nil {
		threshold = *lc.Threshold
	}

	switch lc.Calc {
	case "range":
		ok = r.CalcRange(threshold)
	case "intensity":
		ok = r.CalcIntensity(threshold)
	default:
		return fmt.Errorf("%w, got %q", ErrBadCalc, lc.Calc)
	}
	if !ok {
		return fmt.Errorf("calc %s: %w", lc.Calc, ErrNoSolution)
	}
	return nil
}

func vec3(field string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrBadVector, field, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

func vec3Or(field string, v []float32, fallback mgl32.Vec3) (mgl32.Vec3, error) {
	if v == nil {
		return fallback, nil
	}
	return vec3(field, v)
}
