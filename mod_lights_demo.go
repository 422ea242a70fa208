package lumen

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/lumen/light"
	"github.com/gekko3d/lumen/scene"
)

// LightsDemoModule drives the lights sample from the keyboard. It needs the
// Input, Time and Lighting resources.
//
//	1-4  toggle the first four lights
//	A    toggle animation
//	C/W  colored / white lights
//	M/S  spot modulation / shadows
//	H    spot hotspot on and off
//	D    spot distance attenuation on and off
//	Esc  quit
type LightsDemoModule struct {
	Animated bool
}

type LightsDemo struct {
	Animated bool
}

var (
	demoToggleKeys = [4]int{Key1, Key2, Key3, Key4}
	demoColors     = [4]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}}
)

func (m LightsDemoModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&LightsDemo{Animated: m.Animated})
	app.UseSystem(
		System(LightsDemoKeySystem).
			InStage(Update).
			RunAlways(),
	)
	app.UseSystem(
		System(LightsDemoAnimationSystem).
			InStage(PostUpdate).
			RunAlways(),
	)
}

// demoLights returns the first four lights of the scene.
func demoLights(s *scene.Scene) []light.Light {
	lights := s.Lights()
	return lights[:min(len(lights), len(demoToggleKeys))]
}

func firstOf[T light.Light](s *scene.Scene) (T, bool) {
	for _, l := range s.Lights() {
		if t, ok := l.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func LightsDemoKeySystem(input *Input, lighting *Lighting, demo *LightsDemo, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Quit()
		return
	}

	lights := demoLights(lighting.Scene)
	for i, l := range lights {
		if input.JustPressed[demoToggleKeys[i]] {
			base := l.AsLightBase()
			base.SetVisible(!base.Visible())
		}
	}
	if input.JustPressed[KeyA] {
		demo.Animated = !demo.Animated
		cmd.Logger().Debugf("animation: %v", demo.Animated)
	}
	if input.JustPressed[KeyC] {
		for i, l := range lights {
			l.AsLightBase().SetColor(demoColors[i])
		}
	}
	if input.JustPressed[KeyW] {
		for _, l := range lights {
			l.AsLightBase().SetColor(mgl32.Vec3{1, 1, 1})
		}
	}

	spot, ok := firstOf[*light.SpotLight](lighting.Scene)
	if !ok {
		return
	}
	if input.JustPressed[KeyM] {
		spot.EnableModulation(!spot.HasModulation())
	}
	if input.JustPressed[KeyS] {
		spot.EnableShadows(!spot.HasShadows())
	}
	if input.JustPressed[KeyH] {
		if spot.HotspotRatio() > 0 {
			spot.SetHotspotRatio(0)
		} else {
			spot.SetHotspotRatio(spot.SpotRatio())
		}
	}
	if input.JustPressed[KeyD] {
		if spot.Attenuation()[1] > 0 {
			spot.SetAttenuation(0, 0)
			spot.SetRange(50)
		} else {
			spot.SetAttenuation(0, 0.04)
			spot.CalcRange(light.DefaultThreshold)
		}
		cmd.Logger().Debugf("spot attenuation %v, range %.2f", spot.Attenuation(), spot.Range())
	}
}

func LightsDemoAnimationSystem(t *Time, lighting *Lighting, demo *LightsDemo) {
	if demo.Animated {
		AnimateLights(lighting.Scene, t.Elapsed)
	}
}

// AnimateLights sweeps the spot and the wedge across the floor and swings the
// capsule around (5, 1, 0).
func AnimateLights(s *scene.Scene, elapsed float64) {
	t := float32(0.25 * elapsed)

	target := mgl32.Vec3{10 * math32.Cos(3.5*t), 0, 10 * math32.Sin(t)}
	if spot, ok := firstOf[*light.SpotLight](s); ok {
		spot.PointAt(target)
	}
	if wedge, ok := firstOf[*light.WedgeLight](s); ok {
		wedge.PointAt(target)
	}

	x := 5 * math32.Cos(t)
	z := 5 * math32.Sin(t)
	if capsule, ok := firstOf[*light.CapsuleLight](s); ok {
		capsule.SetLengthAndAxis(mgl32.Vec3{5 + x, 1, z}, mgl32.Vec3{5 - x, 1, -z})
	}
}
