package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is a prefab: a named set of component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a loosely typed component block into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Z      float64 `yaml:"z"`
	Pitch  float64 `yaml:"pitch"`
	Yaw    float64 `yaml:"yaw"`
	Roll   float64 `yaml:"roll"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
	ScaleZ float64 `yaml:"scale_z"`
}

// AxisRotatorComponentSpec configures a rotator. Pointer fields distinguish
// "omitted" from an explicit zero.
type AxisRotatorComponentSpec struct {
	RotationRate *float64 `yaml:"rotation_rate"`
	Wrap         string   `yaml:"wrap"`
	Enabled      *bool    `yaml:"enabled"`
	RateScript   string   `yaml:"rate_script"`
}

type MarkerComponentSpec struct {
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
	Label  string  `yaml:"label"`
}
