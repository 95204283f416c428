package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/turntable/ecs"
	"github.com/milk9111/turntable/prefabs"
)

// RateScripts runs per-entity tengo scripts that may rewrite a rotator's
// rate each tick. Scripts see the globals rate, elapsed, yaw and time and
// reassign rate.
type RateScripts struct {
	cache map[ecs.Entity]*rateScriptRuntime
}

type rateScriptRuntime struct {
	path     string
	compiled *tengo.Compiled
	time     float64
	// broken runtimes keep the configured rate until the script is invalidated.
	broken bool
}

func NewRateScripts() *RateScripts {
	return &RateScripts{cache: map[ecs.Entity]*rateScriptRuntime{}}
}

// Rate returns the rate the script computes for this tick, or rate itself
// when the script cannot be loaded or run.
func (s *RateScripts) Rate(e ecs.Entity, path string, rate, elapsed, yaw float64) float64 {
	rt := s.runtime(e, path)
	if rt.broken {
		return rate
	}

	rt.time += elapsed
	out, err := rt.run(rate, elapsed, yaw)
	if err != nil {
		log.Printf("rate script: entity=%v %s: %v", e, path, err)
		rt.broken = true
		return rate
	}
	return out
}

// Invalidate drops compiled copies of a script so the next tick reloads it.
func (s *RateScripts) Invalidate(path string) {
	if s == nil {
		return
	}
	name := prefabs.Name(path)
	for e, rt := range s.cache {
		if prefabs.Name(rt.path) == name {
			delete(s.cache, e)
		}
	}
}

func (s *RateScripts) prune(w *ecs.World) {
	for e := range s.cache {
		if !ecs.IsAlive(w, e) {
			delete(s.cache, e)
		}
	}
}

func (s *RateScripts) runtime(e ecs.Entity, path string) *rateScriptRuntime {
	if s.cache == nil {
		s.cache = map[ecs.Entity]*rateScriptRuntime{}
	}
	if rt, ok := s.cache[e]; ok && rt.path == path {
		return rt
	}

	rt := &rateScriptRuntime{path: path}
	compiled, err := compileRateScript(path)
	if err != nil {
		log.Printf("rate script: entity=%v load %s: %v", e, path, err)
		rt.broken = true
	}
	rt.compiled = compiled
	s.cache[e] = rt
	return rt
}

func compileRateScript(path string) (*tengo.Compiled, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(src)
	for _, name := range []string{"rate", "elapsed", "yaw", "time"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, err
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	return script.Compile()
}

func (rt *rateScriptRuntime) run(rate, elapsed, yaw float64) (float64, error) {
	globals := map[string]float64{
		"rate":    rate,
		"elapsed": elapsed,
		"yaw":     yaw,
		"time":    rt.time,
	}
	for name, v := range globals {
		if err := rt.compiled.Set(name, v); err != nil {
			return 0, err
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}

	out, ok := tengo.ToFloat64(rt.compiled.Get("rate").Object())
	if !ok {
		return 0, fmt.Errorf("rate must be a number, got %s", rt.compiled.Get("rate").ValueType())
	}
	return out, nil
}
