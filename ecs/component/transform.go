package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/turntable/rotation"
)

// Transform places an entity in the world. Rotation is in degrees.
type Transform struct {
	Position mgl64.Vec3
	Rotation rotation.Euler
	Scale    mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()
