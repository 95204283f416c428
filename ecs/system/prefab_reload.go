package system

import (
	"log"
	"strings"
	"time"

	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/ecs/component"
	"github.com/milk9111/turntable/ecs/entity"
	"github.com/milk9111/turntable/prefabs"
)

// PrefabReloadSystem applies prefab and script file changes to live
// entities. It never blocks: pending change notifications are drained each
// update and the loop moves on. A file whose modification time has not
// advanced since it was last applied is skipped.
type PrefabReloadSystem struct {
	changes <-chan string
	scripts *RateScripts
	applied map[string]time.Time
}

func NewPrefabReloadSystem(changes <-chan string, scripts *RateScripts) *PrefabReloadSystem {
	return &PrefabReloadSystem{changes: changes, scripts: scripts, applied: map[string]time.Time{}}
}

// Update applies every change queued since the previous update.
func (s *PrefabReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.changes == nil {
		return
	}

	for {
		select {
		case path, ok := <-s.changes:
			if !ok {
				s.changes = nil
				return
			}
			s.apply(w, path)
		default:
			return
		}
	}
}

func (s *PrefabReloadSystem) apply(w *ecs.World, path string) {
	name := prefabs.Name(path)
	modTime, onDisk := prefabs.ModTime(name)
	if last, ok := s.applied[name]; ok && onDisk && !modTime.After(last) {
		return
	}

	if strings.HasPrefix(name, "scripts/") {
		s.scripts.Invalidate(name)
		s.markApplied(name, modTime, onDisk)
		log.Printf("reload: script %s", name)
		return
	}

	reloaded, failed := 0, 0
	ecs.ForEach(w, component.PrefabRefComponent.Kind(), func(e ecs.Entity, ref *component.PrefabRef) {
		if prefabs.Name(ref.Path) != name {
			return
		}
		if err := entity.ReapplyPrefab(w, e); err != nil {
			log.Printf("reload: %s: entity=%v: %v", name, e, err)
			failed++
			return
		}
		reloaded++
	})
	if failed == 0 {
		s.markApplied(name, modTime, onDisk)
	}
	if reloaded > 0 {
		log.Printf("reload: prefab %s applied to %d entities", name, reloaded)
	}
}

func (s *PrefabReloadSystem) markApplied(name string, modTime time.Time, onDisk bool) {
	if !onDisk {
		return
	}
	if s.applied == nil {
		s.applied = map[string]time.Time{}
	}
	s.applied[name] = modTime
}
