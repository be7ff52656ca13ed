package hashindex

// Index is an open-addressed hash table mapping fixed-width binary keys
// to fixed-width binary values. It is exclusively owned by its caller:
// no two operations on the same Index may run concurrently, though two
// distinct Index values are fully independent.
type Index struct {
	store      *bucketStore
	numEntries int
	keySize    int
	valueSize  int
	lower      int
	upper      int
}

// Init allocates a fresh, empty Index sized to fit at least capacity
// entries. keySize must be in [1,127] and valueSize must be in [4,127]
// (the first 4 value bytes double as the bucket state tag).
func Init(capacity, keySize, valueSize int) (*Index, error) {
	if keySize < 1 || keySize > 127 || valueSize < 4 || valueSize > 127 {
		return nil, ErrInvalidSizes
	}
	if capacity < 0 {
		capacity = 0
	}
	numBuckets := fitSize(capacity)
	store := newBucketStore(numBuckets, keySize, valueSize)
	idx := &Index{
		store:     store,
		keySize:   keySize,
		valueSize: valueSize,
	}
	idx.refreshLimits()
	return idx, nil
}

func (idx *Index) refreshLimits() {
	n := idx.store.numBuckets()
	idx.lower = lowerLimit(n)
	idx.upper = upperLimit(n)
}

// Len returns the number of live entries.
func (idx *Index) Len() int {
	return idx.numEntries
}

// NumBuckets returns the current capacity. It is always a size table
// entry.
func (idx *Index) NumBuckets() int {
	return idx.store.numBuckets()
}

// KeySize and ValueSize return the fixed widths fixed at construction.
func (idx *Index) KeySize() int   { return idx.keySize }
func (idx *Index) ValueSize() int { return idx.valueSize }

// ByteSize returns the size in bytes the Index would occupy if written
// to disk right now: 18 + num_buckets*(key_size+value_size).
func (idx *Index) ByteSize() int {
	return headerSize + idx.store.numBuckets()*idx.store.bucket
}

// Free releases the Index's backing storage. The Index must not be used
// afterward.
func (idx *Index) Free() {
	idx.store = nil
}
