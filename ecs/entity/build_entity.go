package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"github.com/milk9111/turntable/prefabs"
	"github.com/milk9111/turntable/rotation"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":    addTransform,
	"axis_rotator": addAxisRotator,
	"marker":       addMarker,
}

var componentBuildOrder = []string{
	"transform",
	"axis_rotator",
	"marker",
}

// BuildEntity creates an entity from the components declared in a prefab.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	if err := ecs.Add(w, e, component.PrefabRefComponent.Kind(), &component.PrefabRef{Path: prefabPath}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: %w", prefabPath, err)
	}

	return e, nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	if spec.ScaleZ == 0 {
		spec.ScaleZ = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: mgl64.Vec3{spec.X, spec.Y, spec.Z},
		Rotation: rotation.Euler{X: spec.Pitch, Y: spec.Yaw, Z: spec.Roll},
		Scale:    mgl64.Vec3{spec.ScaleX, spec.ScaleY, spec.ScaleZ},
	})
}

type axisRotatorSpec = prefabs.AxisRotatorComponentSpec

func addAxisRotator(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[axisRotatorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode axis rotator spec: %w", err)
	}
	r := component.AxisRotator{Rate: rotation.DefaultRate, Enabled: true}
	if err := applyAxisRotatorSpec(&r, spec); err != nil {
		return err
	}
	return ecs.Add(w, e, component.AxisRotatorComponent.Kind(), &r)
}

// applyAxisRotatorSpec copies the fields set in spec onto r.
func applyAxisRotatorSpec(r *component.AxisRotator, spec axisRotatorSpec) error {
	if spec.RotationRate != nil {
		r.Rate = *spec.RotationRate
	}
	if spec.Wrap != "" {
		mode, err := rotation.ParseWrapMode(spec.Wrap)
		if err != nil {
			return err
		}
		r.Wrap = mode
	}
	if spec.Enabled != nil {
		r.Enabled = *spec.Enabled
	}
	if spec.RateScript != "" {
		r.Script = spec.RateScript
	}
	return nil
}

type markerSpec = prefabs.MarkerComponentSpec

func addMarker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[markerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode marker spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = 16
	}
	c := color.Color(color.White)
	if spec.Color != "" {
		parsed, err := parseHexColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse marker color: %w", err)
		}
		c = parsed
	}
	return ecs.Add(w, e, component.MarkerComponent.Kind(), &component.Marker{
		Radius: spec.Radius,
		Color:  c,
		Label:  spec.Label,
	})
}

// ReapplyPrefab re-reads the entity's prefab and instance overrides and
// updates its rotator settings. The transform is left untouched so the
// entity keeps spinning from where it is.
func ReapplyPrefab(w *ecs.World, e ecs.Entity) error {
	ref, ok := ecs.Get(w, e, component.PrefabRefComponent.Kind())
	if !ok {
		return fmt.Errorf("reapply prefab: entity %v has no prefab reference", e)
	}
	spec, err := prefabs.LoadEntityBuildSpec(ref.Path)
	if err != nil {
		return fmt.Errorf("reapply prefab: %w", err)
	}
	// An empty file is usually an editor mid-save; keep the current settings.
	if len(spec.Components) == 0 {
		return fmt.Errorf("reapply prefab: %q does not define components", ref.Path)
	}

	raw, ok := spec.Components["axis_rotator"]
	if !ok {
		ecs.Remove(w, e, component.AxisRotatorComponent.Kind())
		return nil
	}
	rotSpec, err := prefabs.DecodeComponentSpec[axisRotatorSpec](raw)
	if err != nil {
		return fmt.Errorf("reapply prefab: %q: decode axis rotator spec: %w", ref.Path, err)
	}

	r := component.AxisRotator{Rate: rotation.DefaultRate, Enabled: true}
	if err := applyAxisRotatorSpec(&r, rotSpec); err != nil {
		return fmt.Errorf("reapply prefab: %q: %w", ref.Path, err)
	}
	if err := applyOverrides(&r, ref.Overrides); err != nil {
		return fmt.Errorf("reapply prefab: %q: %w", ref.Path, err)
	}

	if cur, ok := ecs.Get(w, e, component.AxisRotatorComponent.Kind()); ok {
		*cur = r
		return nil
	}
	return ecs.Add(w, e, component.AxisRotatorComponent.Kind(), &r)
}

func applyOverrides(r *component.AxisRotator, props map[string]any) error {
	if len(props) == 0 {
		return nil
	}
	spec, err := prefabs.DecodeComponentSpec[axisRotatorSpec](props)
	if err != nil {
		return fmt.Errorf("decode overrides: %w", err)
	}
	return applyAxisRotatorSpec(r, spec)
}

func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %q", v)
	}
	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}
	r, err := parse(0)
	if err != nil {
		return nil, fmt.Errorf("parse red component: %w", err)
	}
	g, err := parse(2)
	if err != nil {
		return nil, fmt.Errorf("parse green component: %w", err)
	}
	b, err := parse(4)
	if err != nil {
		return nil, fmt.Errorf("parse blue component: %w", err)
	}
	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component: %w", err)
		}
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
