package component

// PrefabRef records the prefab an entity was built from and any per-instance
// overrides, so the prefab can be re-applied when its file changes.
type PrefabRef struct {
	Path      string
	Overrides map[string]any
}

var PrefabRefComponent = NewComponent[PrefabRef]()
