package hashindex

import "github.com/pkg/errors"

// grow reallocates the Index at the next size table entry and
// re-inserts every live entry in physical index order. The source
// table is left untouched if the new table cannot be allocated.
func (idx *Index) grow() error {
	return idx.resizeTo(growSize(idx.store.numBuckets()))
}

// shrink reallocates the Index at the previous size table entry.
func (idx *Index) shrink() error {
	return idx.resizeTo(shrinkSize(idx.store.numBuckets()))
}

// resizeTo rebuilds the table at newNumBuckets by inserting every live
// entry of the current table into a fresh one, then swapping the fresh
// table's storage and thresholds into idx. Tombstones are never carried
// over: a resized table contains only EMPTY and LIVE buckets.
func (idx *Index) resizeTo(newNumBuckets int) error {
	fresh := &Index{
		store:     newBucketStore(newNumBuckets, idx.keySize, idx.valueSize),
		keySize:   idx.keySize,
		valueSize: idx.valueSize,
	}
	fresh.refreshLimits()

	store := idx.store
	n := store.numBuckets()
	for i := 0; i < n; i++ {
		if !store.isLive(i) {
			continue
		}
		if err := fresh.Set(store.key(i), store.value(i)); err != nil {
			// Can only happen on a bug in capacity math: the fresh
			// table is sized to hold every live entry without
			// triggering a nested grow. Free the partial table and
			// fail without touching the source.
			warnf("resize: re-insert during resize: %v", err)
			return errors.Wrap(ErrAlloc, "resize: re-insert failed")
		}
	}

	idx.store = fresh.store
	idx.numEntries = fresh.numEntries
	idx.refreshLimits()
	return nil
}
