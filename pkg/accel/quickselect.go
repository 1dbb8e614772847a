package accel

// quickSelect partitions items in place so that items[k] holds the
// value it would hold if items were fully sorted by key, with every
// element before k having key <= items[k].key and every element after
// k having key >= items[k].key (the nth_element postcondition). It
// does not fully sort — expected O(n), not O(n log n).
func quickSelect(items []buildItem, k int, key func(buildItem) float64) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		pivotIdx := partition(items, lo, hi, key)
		switch {
		case k < pivotIdx:
			hi = pivotIdx - 1
		case k > pivotIdx:
			lo = pivotIdx + 1
		default:
			return
		}
	}
}

// partition runs a Lomuto partition around items[hi] as
// pivot, returning the pivot's final index.
func partition(items []buildItem, lo, hi int, key func(buildItem) float64) int {
	pivot := key(items[hi])
	i := lo
	for j := lo; j < hi; j++ {
		if key(items[j]) <= pivot {
			items[i], items[j] = items[j], items[i]
			i++
		}
	}
	items[i], items[hi] = items[hi], items[i]
	return i
}
