package light

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultThreshold is the fraction of full intensity treated as no light at all.
const DefaultThreshold float32 = 2.0 / 255.0

// CalcRange returns the distance at which a light of the given intensity and
// attenuation falls below threshold. It fails when both coefficients are zero.
func CalcRange(intensity float32, attenuation mgl32.Vec2, threshold float32) (float32, bool) {
	l, q, t := solverTerms(attenuation, threshold)

	switch {
	case q > 0:
		return (math32.Sqrt(t*(t*(l*l)+4*intensity*q)) - l*t) / (2 * q * t), true
	case l > 0:
		return intensity / (l * t), true
	}
	return 0, false
}

// CalcIntensity returns the intensity that makes the light fall below threshold
// exactly at rng. It fails when both coefficients are zero.
func CalcIntensity(rng float32, attenuation mgl32.Vec2, threshold float32) (float32, bool) {
	l, q, t := solverTerms(attenuation, threshold)

	if q > 0 || l > 0 {
		return t * rng * (rng*q + l), true
	}
	return 0, false
}

func solverTerms(attenuation mgl32.Vec2, threshold float32) (l, q, t float32) {
	l = math32.Max(0, attenuation[0])
	q = math32.Max(0, attenuation[1])
	t = mgl32.Clamp(threshold, 0.001, 1)
	return l, q, t
}
