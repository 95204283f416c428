package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/turntable/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	h := component.NewComponent[int]()
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity must not equal the stale handle")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity inherited a component")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func float64Ptr(f float64) *float64 {
	return &f
}

func TestWorldComponentsAndQueries(t *testing.T) {
	w := NewWorld()

	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()
	h3 := component.NewComponent[float64]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "add_int_to_e1",
			setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, h1.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
			},
			teardown: func() bool { return Remove(w, e1, h1.Kind()) },
		},
		{
			name: "add_str_to_e1_and_e2",
			setup: func() error {
				if err := Add(w, e1, h2.Kind(), stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, h2.Kind(), stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, h2.Kind()) || !Has(w, e2, h2.Kind()) {
					t.Fatalf("expected both entities to have string component")
				}
				if got := Query(w, h2.Kind()); len(got) != 2 || got[0] != e1 || got[1] != e2 {
					t.Fatalf("expected [e1 e2], got %v", got)
				}
			},
			teardown: func() bool { return Remove(w, e1, h2.Kind()) },
		},
		{
			name:  "add_float_and_remove",
			setup: func() error { return Add(w, e1, h3.Kind(), float64Ptr(1.23)) },
			check: func(t *testing.T) {
				if _, ok := Get(w, e1, h3.Kind()); !ok {
					t.Fatalf("expected float present")
				}
			},
			teardown: func() bool { return Remove(w, e1, h3.Kind()) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)

	if err := Add(w, e, h.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e, component.ComponentKind[int]{}, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var ents []Entity
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		ents = append(ents, e)
		*v *= 10
	})

	if len(ents) != 2 || ents[0] != e1 || ents[1] != e3 {
		t.Fatalf("expected [e1 e3], got %v (e2=%v)", ents, e2)
	}
	if v, _ := Get(w, e3, h.Kind()); *v != 30 {
		t.Fatalf("expected in-place update to 30, got %d", *v)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 4; i++ {
		if err := Add(w, CreateEntity(w), h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected all entities destroyed, got %v", Entities(w))
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, ka, intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, kb, stringPtr("two")); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach2(w, ka, kb, func(e Entity, n *int, s *string) {
		if *n != 2 || *s != "two" {
			t.Fatalf("unexpected values %d %q", *n, *s)
		}
		res = append(res, e)
	})
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e1, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}
				for _, k := range []component.ComponentKind[int]{ka, kb, kc} {
					if err := Add(w, e2, k, intPtr(2)); err != nil {
						t.Fatal(err)
					}
				}
				if err := Add(w, e3, kb, intPtr(4)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0].id() != e2.id() {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nothing",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)

				ka := component.NewComponentKind[int]()
				kb := component.NewComponentKind[int]()
				kc := component.NewComponentKind[int]()

				if err := Add(w, e, ka, intPtr(1)); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	if _, ok := First(w, h.Kind()); ok {
		t.Fatalf("expected no entity")
	}
	CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	if err := Add(w, e3, h.Kind(), intPtr(3)); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e2, h.Kind(), intPtr(2)); err != nil {
		t.Fatal(err)
	}
	if got, ok := First(w, h.Kind()); !ok || got != e2 {
		t.Fatalf("expected e2, got %v ok=%v", got, ok)
	}
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "a") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "b") }),
	)
	s.Add(SystemFunc(func(*World) { order = append(order, "c") }))

	s.Update(NewWorld())
	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("unexpected order %v", order)
	}
	if len(s.Systems()) != 3 {
		t.Fatalf("expected 3 systems, got %d", len(s.Systems()))
	}
}
