package ecs

// intersectIDs returns ids present in every set, iterating the smallest.
func intersectIDs(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}
	out := make([]entityID, 0, smallest.Len())
	for _, id := range smallest.ids() {
		matched := true
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, id)
		}
	}
	return out
}
