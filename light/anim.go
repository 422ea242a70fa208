package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AnimParam is a scalar animated over time as an offset, a linear ramp and a sine.
type AnimParam struct {
	Offset    float32 `yaml:"offset"`
	Linear    float32 `yaml:"linear"`
	Amplitude float32 `yaml:"amplitude"`
	Frequency float32 `yaml:"frequency"`
}

func (p AnimParam) Evaluate(t float32) float32 {
	return p.Offset + t*p.Linear + p.Amplitude*math32.Sin(t*p.Frequency)
}

// ModulationParams animates the texture transform of a spot light's modulation map.
type ModulationParams struct {
	TranslateX AnimParam `yaml:"translateX"`
	TranslateY AnimParam `yaml:"translateY"`
	RotateZ    AnimParam `yaml:"rotateZ"`
	Scale      AnimParam `yaml:"scale"`
}

// NewModulationParams returns parameters that leave the projected map unscaled.
func NewModulationParams() ModulationParams {
	return ModulationParams{Scale: AnimParam{Offset: 1}}
}

// Mat4 returns translate(x+0.5, y+0.5, 0.5) * scale(0.5*s) * rotateZ(z) at time t.
func (p ModulationParams) Mat4(t float32) mgl32.Mat4 {
	x := p.TranslateX.Evaluate(t)
	y := p.TranslateY.Evaluate(t)
	z := p.RotateZ.Evaluate(t)
	s := p.Scale.Evaluate(t)

	return mgl32.Translate3D(x+0.5, y+0.5, 0.5).
		Mul4(mgl32.Scale3D(0.5*s, 0.5*s, 0.5*s)).
		Mul4(mgl32.HomogRotate3DZ(z))
}
