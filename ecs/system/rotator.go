package system

import (
	"time"

	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"github.com/milk9111/turntable/rotation"
)

// AxisRotatorSystem advances the yaw of every enabled AxisRotator once per
// update by Rate * delta degrees.
type AxisRotatorSystem struct {
	delta   func() float64
	scripts *RateScripts
}

// NewAxisRotatorSystem creates the system. delta reports the seconds elapsed
// since the previous update; scripts may be nil.
func NewAxisRotatorSystem(delta func() float64, scripts *RateScripts) *AxisRotatorSystem {
	return &AxisRotatorSystem{delta: delta, scripts: scripts}
}

// FixedDelta returns a delta source that always reports seconds.
func FixedDelta(seconds float64) func() float64 {
	return func() float64 { return seconds }
}

// FrameDelta returns a delta source for a host running at tps updates per
// second. When tps is not positive (the host syncs updates to the display)
// the wall-clock time since the previous call is used instead; the first
// such call reports 0. The result is never negative.
func FrameDelta(tps func() int, now func() time.Time) func() float64 {
	var last time.Time
	return func() float64 {
		t := now()
		prev := last
		last = t
		if n := tps(); n > 0 {
			return 1 / float64(n)
		}
		if prev.IsZero() {
			return 0
		}
		if d := t.Sub(prev).Seconds(); d > 0 {
			return d
		}
		return 0
	}
}

// Update advances every enabled rotator by one tick.
func (s *AxisRotatorSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.delta == nil {
		return
	}

	dt := s.delta()
	if s.scripts != nil {
		s.scripts.prune(w)
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.AxisRotatorComponent.Kind(), func(e ecs.Entity, t *component.Transform, r *component.AxisRotator) {
		if !r.Enabled {
			return
		}
		rate := r.Rate
		if r.Script != "" && s.scripts != nil {
			rate = s.scripts.Rate(e, r.Script, rate, dt, t.Rotation.Y)
		}
		t.Rotation = rotation.Step(t.Rotation, dt, rate, r.Wrap)
	})
}
