package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws markers top-down: world X to the right, world Z up the
// screen, with a line showing each entity's forward axis.
type RenderSystem struct {
	Zoom  float64
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Zoom: 1, Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	zoom := r.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	vector.StrokeLine(screen, 0, float32(cy), float32(bounds.Dx()), float32(cy), 1, colornames.Darkslategray, false)
	vector.StrokeLine(screen, float32(cx), 0, float32(cx), float32(bounds.Dy()), 1, colornames.Darkslategray, false)

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.MarkerComponent.Kind(), func(e ecs.Entity, t *component.Transform, m *component.Marker) {
		x, y := project(t.Position, cx, cy, zoom)
		radius := m.Radius * zoom

		fill := m.Color
		if fill == nil {
			fill = colornames.White
		}
		if rot, ok := ecs.Get(w, e, component.AxisRotatorComponent.Kind()); !ok || !rot.Enabled {
			fill = colornames.Dimgray
		}

		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), fill, true)

		hx, hy := headingEnd(t.Rotation.Forward(), x, y, radius*1.6)
		vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), 2, colornames.Whitesmoke, true)

		if r.Debug {
			label := m.Label
			if label == "" {
				label = e.String()
			}
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s yaw=%.1f", label, t.Rotation.Y), int(x+radius)+4, int(y)-8)
		}
	})
}

// project maps a world position onto the screen plane.
func project(pos mgl64.Vec3, cx, cy, zoom float64) (float64, float64) {
	return cx + pos.X()*zoom, cy - pos.Z()*zoom
}

func headingEnd(forward mgl64.Vec3, x, y, length float64) (float64, float64) {
	flat := mgl64.Vec2{forward.X(), forward.Z()}
	if flat.Len() == 0 {
		return x, y
	}
	flat = flat.Normalize()
	return x + flat.X()*length, y - flat.Y()*length
}
