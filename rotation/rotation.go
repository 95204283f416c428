// Package rotation advances object orientations around the vertical axis.
package rotation

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultRate is the rotation rate, in degrees per second, used when none is configured.
const DefaultRate = 5.0

// Euler is an orientation expressed as Euler angles in degrees.
// X is pitch, Y is yaw (around the up axis) and Z is roll.
type Euler struct {
	X float64
	Y float64
	Z float64
}

// Yaw returns the rotation around the vertical axis.
func (e Euler) Yaw() float64 {
	return e.Y
}

// Quat converts the orientation to a quaternion, applying roll, then pitch,
// then yaw.
func (e Euler) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(
		mgl64.DegToRad(e.Y),
		mgl64.DegToRad(e.X),
		mgl64.DegToRad(e.Z),
		mgl64.YXZ,
	)
}

// Forward returns the object's local +Z axis in world space.
func (e Euler) Forward() mgl64.Vec3 {
	return e.Quat().Rotate(mgl64.Vec3{0, 0, 1})
}

// Tick adds rate*elapsed degrees to the yaw and leaves pitch and roll alone.
// Non-finite inputs are not rejected.
func Tick(o Euler, elapsed, rate float64) Euler {
	o.Y += rate * elapsed
	return o
}

// Step is Tick followed by the wrap mode's normalization of the yaw.
func Step(o Euler, elapsed, rate float64, mode WrapMode) Euler {
	o = Tick(o, elapsed, rate)
	o.Y = mode.Apply(o.Y)
	return o
}

// WrapMode controls what happens to the yaw after it is advanced.
type WrapMode int

const (
	// WrapNone lets the yaw accumulate without bound.
	WrapNone WrapMode = iota
	// Wrap360 keeps the yaw in [0, 360).
	Wrap360
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case Wrap360:
		return "360"
	default:
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
}

// Apply normalizes deg according to the mode.
func (m WrapMode) Apply(deg float64) float64 {
	if m != Wrap360 {
		return deg
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360 in float64
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ParseWrapMode accepts "none" (or empty) and "360".
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "unbounded":
		return WrapNone, nil
	case "360", "wrap":
		return Wrap360, nil
	default:
		return WrapNone, fmt.Errorf("rotation: unknown wrap mode %q", s)
	}
}
