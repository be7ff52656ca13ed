package hashindex

// sizeTable is the fixed, monotonically increasing sequence of
// permissible bucket counts. Near-prime, growing roughly 2x near the
// low end and decaying to roughly 1.1x near the high end. Carried over
// verbatim from the reference implementation's hash_sizes table rather
// than re-derived.
var sizeTable = [...]int{
	1031, 2053, 4099, 8209, 16411, 32771, 65537, 131101, 262147, 445649,
	757607, 1287917, 2189459, 3065243, 4291319, 6007867, 8410991,
	11775359, 16485527, 23079703, 27695653, 33234787, 39881729, 47858071,
	57429683, 68915617, 82698751, 99238507, 119086189, 144378011, 157223263,
	173476439, 190253911, 209915011, 230493629, 253169431, 278728861,
	306647623, 337318939, 370742809, 408229973, 449387209, 493428073,
	543105119, 596976533, 657794869, 722676499, 795815791, 874066969,
	962279771, 1057701643, 1164002657, 1280003147, 1407800297, 1548442699,
	1703765389, 1873768367, 2062383853,
}

// sizeIdx returns the sizeTable index of the smallest entry >= size,
// clamped to the last index if size exceeds every entry.
func sizeIdx(size int) int {
	for i, entry := range sizeTable {
		if entry >= size {
			return i
		}
	}
	return len(sizeTable) - 1
}

// fitSize returns the smallest sizeTable entry >= n, saturating at the
// largest entry.
func fitSize(n int) int {
	return sizeTable[sizeIdx(n)]
}

// growSize returns the sizeTable entry after fitSize(current),
// saturating at the largest entry.
func growSize(current int) int {
	i := sizeIdx(current) + 1
	if i >= len(sizeTable) {
		return sizeTable[len(sizeTable)-1]
	}
	return sizeTable[i]
}

// shrinkSize returns the sizeTable entry before fitSize(current),
// saturating at the smallest entry.
func shrinkSize(current int) int {
	i := sizeIdx(current) - 1
	if i < 0 {
		return sizeTable[0]
	}
	return sizeTable[i]
}

// lowerLimit computes the minimum num_entries a table of numBuckets may
// hold before a shrink is triggered. The minimum-sized table never
// shrinks.
func lowerLimit(numBuckets int) int {
	if numBuckets <= sizeTable[0] {
		return 0
	}
	return int(float64(numBuckets) * minLoadFactor)
}

// upperLimit computes the grow threshold for a table of numBuckets: an
// insert of an absent key into a table already holding more than this
// many entries grows it first, so the table can hold one entry over the
// limit. The maximum-sized table never grows.
func upperLimit(numBuckets int) int {
	if numBuckets >= sizeTable[len(sizeTable)-1] {
		return numBuckets
	}
	return int(float64(numBuckets) * maxLoadFactor)
}

const (
	minLoadFactor = 0.25
	// maxLoadFactor is the build-time load factor L, in (0.5, 0.98].
	maxLoadFactor = 0.93
)
