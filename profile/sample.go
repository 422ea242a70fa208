package profile

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
)

// TextureSize is the resolution profiles are baked at.
const TextureSize = 256

// Candela returns the value stored for the horizontal and vertical angle indices,
// clamped to the table.
func (p *Profile) Candela(h, v int) float32 {
	h = clampIndex(h, 0, len(p.HorizontalAngles)-1)
	v = clampIndex(v, 0, len(p.VerticalAngles)-1)

	i := h*len(p.VerticalAngles) + v
	if i < len(p.Candelas) {
		return p.Candelas[i]
	}
	return 0
}

// NearestCandela returns the stored value at or below the given angles, in degrees.
func (p *Profile) NearestCandela(horizontal, vertical float32) float32 {
	horizontal = p.wrap(horizontal)
	return p.Candela(lowerIndex(p.HorizontalAngles, horizontal), lowerIndex(p.VerticalAngles, vertical))
}

// InterpolatedCandela samples the table with bicubic Catmull-Rom interpolation.
func (p *Profile) InterpolatedCandela(horizontal, vertical float32) float32 {
	horizontal = p.wrap(horizontal)

	hi := lowerIndex(p.HorizontalAngles, horizontal)
	vi := lowerIndex(p.VerticalAngles, vertical)
	ht := fraction(p.HorizontalAngles, hi, horizontal)
	vt := fraction(p.VerticalAngles, vi, vertical)

	var c [4]float32
	for i := range c {
		c[i] = interpolate(p.column(hi-1+i, vi), vt)
	}
	return interpolate(c, ht)
}

// Intensity returns the interpolated candela relative to the brightest value of
// the profile, in [0, 1].
func (p *Profile) Intensity(horizontal, vertical float32) float32 {
	if p.MaxCandela <= 0 {
		return 0
	}
	return mgl32.Clamp(p.InterpolatedCandela(horizontal, vertical)/p.MaxCandela, 0, 1)
}

// Image bakes the profile into a square texture. Columns span 0-360 degrees
// horizontally; row j samples the vertical angle acos(2j/size - 1). Sizes other
// than TextureSize are resampled from the baked texture.
func (p *Profile) Image(size int) *image.Gray16 {
	baked := image.NewGray16(image.Rect(0, 0, TextureSize, TextureSize))
	for j := range TextureSize {
		vertical := mgl32.RadToDeg(math32.Acos(2*float32(j)/TextureSize - 1))
		for i := range TextureSize {
			horizontal := float32(i) * 360 / TextureSize
			v := p.Intensity(horizontal, vertical)
			baked.SetGray16(i, j, color.Gray16{Y: uint16(v*0xffff + 0.5)})
		}
	}
	if size <= 0 || size == TextureSize {
		return baked
	}

	dst := image.NewGray16(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), baked, baked.Bounds(), draw.Src, nil)
	return dst
}

// column returns the four vertical samples around v for horizontal index h,
// extrapolating linearly past either end.
func (p *Profile) column(h, v int) [4]float32 {
	h = clampIndex(h, 0, len(p.HorizontalAngles)-1)
	v = clampIndex(v, 0, len(p.VerticalAngles)-1)

	var c [4]float32
	c[1] = p.Candela(h, v)
	c[2] = p.Candela(h, v+1)
	if v == 0 {
		c[0] = 2*c[1] - c[2]
	} else {
		c[0] = p.Candela(h, v-1)
	}
	if v >= len(p.VerticalAngles)-2 {
		c[3] = 2*c[2] - c[1]
	} else {
		c[3] = p.Candela(h, v+2)
	}
	return c
}

// wrap folds a horizontal angle into the range the profile covers.
func (p *Profile) wrap(h float32) float32 {
	switch p.Symmetry {
	case Lateral:
	case Quadrant:
		h = wrap(h, 0, 180)
		if h >= 90 {
			h = 180 - h
		}
	case Hemisphere:
		h = wrap(h, 0, 360)
		if h >= 180 {
			h = 360 - h
		}
	default:
		h = wrap(h, 0, 360)
	}
	return h
}

func wrap(x, lo, hi float32) float32 {
	return mod(x-lo, hi-lo) + lo
}

func mod(x, y float32) float32 {
	if y == 0 {
		return x
	}
	return x - y*math32.Floor(x/y)
}

// lowerIndex returns the index of the largest angle not above a, or 0.
func lowerIndex(angles []float32, a float32) int {
	for i := len(angles) - 1; i >= 0; i-- {
		if angles[i] <= a {
			return i
		}
	}
	return 0
}

func fraction(angles []float32, i int, a float32) float32 {
	n := min(i+1, len(angles)-1)
	if n == i {
		return 0
	}
	return (a - angles[i]) / (angles[n] - angles[i])
}

// interpolate is a Catmull-Rom spline through p[1] and p[2] at t in [0, 1].
func interpolate(p [4]float32, t float32) float32 {
	return p[1] + 0.5*t*(p[2]-p[0]+t*(2*p[0]-5*p[1]+4*p[2]-p[3]+t*(3*(p[1]-p[2])+p[3]-p[0])))
}

func clampIndex(i, lo, hi int) int {
	return max(lo, min(i, hi))
}
