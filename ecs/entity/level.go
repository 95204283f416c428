package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"github.com/milk9111/turntable/levels"
)

// LoadLevelToWorld builds every prefab instance listed in the level, placing
// it at the level's position and yaw and applying its props. Coordinates the
// level omits keep the prefab's transform values.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) ([]ecs.Entity, error) {
	if w == nil || lvl == nil {
		return nil, fmt.Errorf("load level: nil world or level")
	}

	out := make([]ecs.Entity, 0, len(lvl.Entities))
	for i, placed := range lvl.Entities {
		e, err := BuildEntity(w, placed.Prefab)
		if err != nil {
			return out, fmt.Errorf("load level %q: entity %d: %w", lvl.Name, i, err)
		}
		if err := placeEntity(w, e, placed); err != nil {
			ecs.DestroyEntity(w, e)
			return out, fmt.Errorf("load level %q: entity %d: %w", lvl.Name, i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func placeEntity(w *ecs.World, e ecs.Entity, placed levels.Entity) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t = &component.Transform{Scale: mgl64.Vec3{1, 1, 1}}
	}
	setIf(&t.Position[0], placed.X)
	setIf(&t.Position[1], placed.Y)
	setIf(&t.Position[2], placed.Z)
	setIf(&t.Rotation.Y, placed.Yaw)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), t); err != nil {
		return err
	}

	if len(placed.Props) > 0 {
		return applyInstanceProps(w, e, placed.Props)
	}
	return nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func applyInstanceProps(w *ecs.World, e ecs.Entity, props map[string]any) error {
	r, ok := ecs.Get(w, e, component.AxisRotatorComponent.Kind())
	if !ok {
		return fmt.Errorf("props set but prefab has no axis_rotator")
	}
	if err := applyOverrides(r, props); err != nil {
		return err
	}
	if ref, ok := ecs.Get(w, e, component.PrefabRefComponent.Kind()); ok {
		ref.Overrides = props
	}
	return nil
}
