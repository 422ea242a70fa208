package lumen

import (
	"time"
)

// Time is the frame clock. Elapsed drives light animation and is measured from
// the first frame.
type Time struct {
	Start   time.Time
	Time    time.Time
	Dt      time.Duration
	Elapsed float64
	Frame   uint64

	now func() time.Time
}

func NewTime(now func() time.Time) *Time {
	if now == nil {
		now = time.Now
	}
	start := now()
	return &Time{Start: start, Time: start, now: now}
}

// TimeModule installs the Time resource. Clock replaces time.Now, for tests and
// offline rendering.
type TimeModule struct {
	Clock func() time.Time
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewTime(mod.Clock))
	cmd.UseSystem(System(timeSystem).InStage(Prelude).RunAlways())
}

func timeSystem(timeResource *Time) {
	if timeResource.now == nil {
		timeResource.now = time.Now
	}
	now := timeResource.now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Elapsed = now.Sub(timeResource.Start).Seconds()
	timeResource.Frame++
}
