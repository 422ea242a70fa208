package lumen

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minOrbitDistance = 0.5
	maxOrbitPitch    = 89.0
)

// CameraModule installs an OrbitCamera looking from Eye at Target, and the system
// that drives it from the mouse: left drag orbits, right drag dollies.
type CameraModule struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
}

func (m CameraModule) Install(app *App, cmd *Commands) {
	eye := m.Eye
	if eye == (mgl32.Vec3{}) {
		eye = mgl32.Vec3{0, 10, 25}
	}
	cmd.AddResources(NewOrbitCamera(eye, m.Target))
	app.UseSystem(
		System(OrbitCameraSystem).
			InStage(Update).
			RunAlways(),
	)
}

// OrbitCamera circles Target at Distance. Yaw and Pitch are in degrees; zero yaw
// looks down -Z.
type OrbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32
	Pitch    float32

	Fov    float32
	Near   float32
	Far    float32
	Aspect float32

	Sensitivity float32
	DollySpeed  float32
}

func NewOrbitCamera(eye, target mgl32.Vec3) *OrbitCamera {
	cam := &OrbitCamera{
		Target:      target,
		Fov:         60,
		Near:        0.1,
		Far:         1000,
		Aspect:      16.0 / 9.0,
		Sensitivity: 0.25,
		DollySpeed:  0.01,
	}
	offset := eye.Sub(target)
	cam.Distance = offset.Len()
	if cam.Distance < minOrbitDistance {
		cam.Distance = minOrbitDistance
		return cam
	}
	cam.Pitch = mgl32.Clamp(mgl32.RadToDeg(math32.Asin(offset[1]/cam.Distance)), -maxOrbitPitch, maxOrbitPitch)
	cam.Yaw = mgl32.RadToDeg(math32.Atan2(offset[0], offset[2]))
	return cam
}

func (c *OrbitCamera) Eye() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	offset := mgl32.Vec3{
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Cos(yaw),
	}
	return c.Target.Add(offset.Mul(c.Distance))
}

func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Orbit turns the camera by a mouse movement in pixels.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.Sensitivity, -maxOrbitPitch, maxOrbitPitch)
}

// Dolly moves the camera towards the target for negative d and away for positive d.
func (c *OrbitCamera) Dolly(d float32) {
	c.Distance = math32.Max(minOrbitDistance, c.Distance*(1+d*c.DollySpeed))
}

func OrbitCameraSystem(input *Input, cam *OrbitCamera) {
	if aspect := input.Aspect(); aspect > 0 {
		cam.Aspect = aspect
	}

	dx, dy := float32(input.MouseDeltaX), float32(input.MouseDeltaY)
	if dx == 0 && dy == 0 {
		return
	}
	if input.Pressed[MouseButtonLeft] {
		cam.Orbit(dx, dy)
	}
	if input.Pressed[MouseButtonRight] {
		cam.Dolly(dy)
	}
}
