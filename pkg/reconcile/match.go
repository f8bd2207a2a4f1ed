package reconcile

// pair couples one element from each side of a match.
type pair[T any] struct {
	x T
	y T
}

// match greedily pairs elements of xs and ys that share a key. Both slices
// must already be in their canonical order. A FIFO queue per key is populated
// from ys; each x then consumes the front of its key's queue, if any. Every
// matched element is used in exactly one pair and leftovers keep their order.
//
// The result is maximal for the given key, but when a key groups more than two
// elements the specific pairing is decided purely by canonical order. That
// tie-break is deterministic and reproducible, nothing more; it must not be
// read as a semantically "best" assignment.
func match[T any, K comparable](keyOf func(T) K, xs, ys []T) (pairs []pair[T], unmatchedXs, unmatchedYs []T) {
	queues := make(map[K][]T)
	for _, y := range ys {
		k := keyOf(y)
		queues[k] = append(queues[k], y)
	}

	matched := make(map[K]int)
	for _, x := range xs {
		k := keyOf(x)
		if q := queues[k]; len(q) > 0 {
			pairs = append(pairs, pair[T]{x: x, y: q[0]})
			queues[k] = q[1:]
			matched[k]++
		} else {
			unmatchedXs = append(unmatchedXs, x)
		}
	}

	// FIFO consumption means the matched ys for a key are exactly its first
	// matched[k] occurrences; skipping those keeps the leftovers in their
	// canonical order.
	skipped := make(map[K]int)
	for _, y := range ys {
		k := keyOf(y)
		if skipped[k] < matched[k] {
			skipped[k]++
			continue
		}
		unmatchedYs = append(unmatchedYs, y)
	}

	return pairs, unmatchedXs, unmatchedYs
}
