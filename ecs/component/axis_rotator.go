package component

import "github.com/milk9111/turntable/rotation"

// AxisRotator spins its entity's Transform around the vertical axis at Rate
// degrees per second.
type AxisRotator struct {
	Rate    float64
	Wrap    rotation.WrapMode
	Enabled bool
	// Script optionally names a tengo script under prefabs/scripts that can
	// override Rate each tick.
	Script string
}

var AxisRotatorComponent = NewComponent[AxisRotator]()
