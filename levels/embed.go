package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level lists the prefab instances placed in a scene.
type Level struct {
	Name     string   `json:"name"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity places one prefab. Omitted coordinates keep the prefab's value.
// Props override component settings for this instance only (rotation_rate,
// wrap, enabled).
type Entity struct {
	Prefab string                 `json:"prefab"`
	X      *float64               `json:"x,omitempty"`
	Y      *float64               `json:"y,omitempty"`
	Z      *float64               `json:"z,omitempty"`
	Yaw    *float64               `json:"yaw,omitempty"`
	Props  map[string]interface{} `json:"props,omitempty"`
}

// LoadLevelFromFS reads an embedded level. The .json extension is optional.
func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	return &lvl, nil
}
