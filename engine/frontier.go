package engine

// Frontier is the active set one operator application iterates over: either
// the full dense range [0, universe) or an explicit sparse list of element
// ids drawn from that range.
//
// A Frontier is immutable once built; operators return a fresh Frontier
// holding the elements the strategy admitted.
type Frontier struct {
	universe int
	sparse   bool
	ids      []int
}

// Full returns the dense frontier covering every element of [0, universe).
func Full(universe int) Frontier {
	if universe < 0 {
		universe = 0
	}

	return Frontier{universe: universe}
}

// Sparse returns a frontier holding exactly the given element ids.
// The caller must not mutate ids afterwards.
func Sparse(universe int, ids []int) Frontier {
	if universe < 0 {
		universe = 0
	}

	return Frontier{universe: universe, sparse: true, ids: ids}
}

// Universe is the size of the element range this frontier draws from.
func (f Frontier) Universe() int { return f.universe }

// Len is the number of active elements.
func (f Frontier) Len() int {
	if f.sparse {
		return len(f.ids)
	}

	return f.universe
}

// Empty reports whether no elements are active.
func (f Frontier) Empty() bool { return f.Len() == 0 }

// IDs returns the active element ids in iteration order.
// For a dense frontier it materializes the full range.
func (f Frontier) IDs() []int {
	if f.sparse {
		return f.ids
	}
	ids := make([]int, f.universe)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

// element maps an iteration position to its element id without materializing
// a dense frontier.
func (f Frontier) element(i int) int {
	if f.sparse {
		return f.ids[i]
	}

	return i
}
