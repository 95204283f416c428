package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// DiskDir is checked before the embedded copies so prefabs can be edited
// without rebuilding.
var DiskDir = "prefabs"

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// ModTime reports the on-disk modification time of a prefab or script.
func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	if isScriptFile(clean) {
		clean = cleanScriptPath(name)
	}
	info, err := os.Stat(diskPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Name converts a watcher path or prefab reference into the name used by Load.
func Name(path string) string {
	clean := cleanPrefabPath(path)
	if isScriptFile(clean) {
		return cleanScriptPath(path)
	}
	return filepath.ToSlash(filepath.Base(clean))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if dir := filepath.ToSlash(DiskDir); dir != "" {
		if after, ok := strings.CutPrefix(s, dir+"/"); ok {
			return after
		}
	}
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := cleanPrefabPath(path)
	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}
	return "scripts/" + filepath.ToSlash(filepath.Base(s))
}

func diskPath(clean string) string {
	return filepath.Join(DiskDir, filepath.FromSlash(clean))
}
