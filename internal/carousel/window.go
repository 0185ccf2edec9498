package carousel

import "slices"

// WindowSize returns how many items render at full fidelity for a
// collection of n items.
func WindowSize(n int) int {
	switch {
	case n <= 6:
		return 3
	case n <= 10:
		return 5
	case n <= 14:
		return 5
	default:
		return 7
	}
}

// VisibleSet is the set of indices rendered at full fidelity. The active
// index comes first, followed by its right then left neighbors.
type VisibleSet []int

// Contains reports whether index is in the set.
func (v VisibleSet) Contains(index int) bool {
	return slices.Contains(v, index)
}

// Sorted returns the indices in ascending order.
func (v VisibleSet) Sorted() []int {
	out := slices.Clone([]int(v))
	slices.Sort(out)
	return out
}

// VisibleIndices computes the visibility window around active. In show-all
// mode (windowed == false) every index is returned.
func VisibleIndices(active, n, windowSize int, windowed bool) VisibleSet {
	if n <= 0 {
		return nil
	}
	if !windowed || windowSize >= n {
		all := make(VisibleSet, 0, n)
		all = append(all, mod(active, n))
		for i := 1; i < n; i++ {
			all = append(all, mod(active+i, n))
		}
		if !windowed {
			slices.Sort(all)
		}
		return all
	}
	if windowSize < 1 {
		windowSize = 1
	}

	active = mod(active, n)
	set := make(VisibleSet, 0, windowSize)
	set = append(set, active)
	half := (windowSize - 1) / 2
	for i := 1; i <= half; i++ {
		set = appendUnique(set, mod(active+i, n))
	}
	for i := 1; i <= half; i++ {
		set = appendUnique(set, mod(active-i, n))
	}
	// Even windows get the spare slot on the right.
	if windowSize%2 == 0 {
		set = appendUnique(set, mod(active+half+1, n))
	}
	return set
}

func appendUnique(set VisibleSet, index int) VisibleSet {
	if set.Contains(index) {
		return set
	}
	return append(set, index)
}
