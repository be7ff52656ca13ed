package hashindex

import (
	"bytes"
	"encoding/binary"
)

// hashStart computes a key's ideal bucket: the key's first 4 bytes read
// as a little-endian uint32, modulo numBuckets. No further mixing is
// applied — callers are expected to supply keys already derived from a
// strong hash (e.g. a cryptographic digest), so the prefix is already
// well distributed.
func hashStart(key []byte, numBuckets int) int {
	h := binary.LittleEndian.Uint32(key[:4])
	return int(h % uint32(numBuckets))
}

// probeDistance is the wrap-around offset from the ideal index to the
// current index.
func probeDistance(numBuckets, current, ideal int) int {
	d := current - ideal
	if d < 0 {
		d += numBuckets
	}
	return d
}

// lookup scans forward from key's ideal bucket. It returns the bucket
// index and true if key is live somewhere on the probe chain. On a miss
// it returns false and offset, the probe distance at which the search
// terminated — callers doing a subsequent insert resume probing from
// there instead of restarting at the ideal index.
//
// A live match found after passing a tombstone is opportunistically
// moved into the tombstone's slot (shortening that key's future probe
// chain), and the tombstone's original slot is marked deleted.
func (idx *Index) lookup(key []byte) (pos int, found bool, offset int) {
	store := idx.store
	numBuckets := store.numBuckets()
	start := hashStart(key, numBuckets)
	tombstone := -1
	i := start

	for offset = 0; ; offset++ {
		if store.isEmpty(i) {
			return i, false, offset
		}
		if store.isDeleted(i) {
			if tombstone == -1 {
				tombstone = i
			}
		} else {
			occupantStart := hashStart(store.key(i), numBuckets)
			occupantDist := probeDistance(numBuckets, i, occupantStart)
			if offset > occupantDist {
				// By invariant 6, key cannot lie beyond this point on
				// the probe chain: its probe distance here already
				// exceeds the occupant's, so robin-hood insertion would
				// have displaced this occupant and placed key here.
				return i, false, offset
			}
			if bytes.Equal(store.key(i), key) {
				if tombstone != -1 {
					store.copyBucket(tombstone, i)
					store.markDeleted(i)
					return tombstone, true, offset
				}
				return i, true, offset
			}
		}
		i++
		if i == numBuckets {
			i = 0
		}
		if i == start {
			return i, false, offset
		}
	}
}

// Get returns the value bytes for key, or ok=false if key is absent.
// The returned slice aliases the Index's internal storage and must not
// be retained past the next mutating call.
func (idx *Index) Get(key []byte) (value []byte, ok bool) {
	pos, found, _ := idx.lookup(key)
	if !found {
		return nil, false
	}
	return idx.store.value(pos), true
}

// Set inserts or overwrites key with value. It returns an error only if
// a resize triggered by this insertion fails to allocate.
func (idx *Index) Set(key, value []byte) error {
	pos, found, offset := idx.lookup(key)
	if found {
		copy(idx.store.value(pos), value)
		return nil
	}

	if idx.numEntries > idx.upper {
		if err := idx.grow(); err != nil {
			return err
		}
		offset = 0
	}

	store := idx.store
	numBuckets := store.numBuckets()
	start := hashStart(key, numBuckets)

	entry := make([]byte, store.bucket)
	copy(entry[:idx.keySize], key)
	copy(entry[idx.keySize:], value)

	i := (start + offset) % numBuckets
	for store.isLive(i) {
		occupantStart := hashStart(store.key(i), numBuckets)
		occupantDist := probeDistance(numBuckets, i, occupantStart)
		if occupantDist < offset {
			// Robin-hood displacement: the richer occupant (lower
			// probe distance) gives way to the poorer newcomer.
			store.swapEntry(i, entry)
			offset = occupantDist
		}
		offset++
		i++
		if i == numBuckets {
			i = 0
		}
	}
	store.put(i, entry[:idx.keySize], entry[idx.keySize:])
	idx.numEntries++
	return nil
}

// Delete removes key if present. It is idempotent: deleting an absent
// key succeeds without effect. It returns an error only if a shrink
// triggered by this deletion fails to allocate; in that case the
// tombstone remains in place and a later Delete that removes a key
// retries the shrink.
func (idx *Index) Delete(key []byte) error {
	pos, found, _ := idx.lookup(key)
	if !found {
		return nil
	}
	idx.store.markDeleted(pos)
	idx.numEntries--
	if idx.numEntries < idx.lower {
		return idx.shrink()
	}
	return nil
}
