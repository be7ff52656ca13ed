package hashindex

// Iterate returns the key and value of the next live bucket at or after
// cursor, in physical index order, along with the cursor to pass on the
// following call. Seed cursor with 0 to start. The final call (no more
// live buckets) returns ok=false.
//
// Iteration order depends only on (key set, insertion history, current
// capacity) and is undefined if the Index is mutated between calls.
func (idx *Index) Iterate(cursor int) (key, value []byte, next int, ok bool) {
	store := idx.store
	n := store.numBuckets()
	for i := cursor; i < n; i++ {
		if store.isLive(i) {
			return store.key(i), store.value(i), i + 1, true
		}
	}
	return nil, nil, n, false
}

// All returns an iterator function usable in a range-over-func loop,
// yielding every live key/value pair in physical index order.
func (idx *Index) All() func(yield func(key, value []byte) bool) {
	return func(yield func(key, value []byte) bool) {
		cursor := 0
		for {
			k, v, next, ok := idx.Iterate(cursor)
			if !ok {
				return
			}
			if !yield(k, v) {
				return
			}
			cursor = next
		}
	}
}
