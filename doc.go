/*
Package hashindex implements an on-disk-persistable, open-addressed hash
table mapping fixed-width binary keys to fixed-width binary values.

It is the lookup substrate for archival backup systems that need to hold
tens to hundreds of millions of short binary entries — chunk hashes,
manifest pointers, segment metadata — in one memory-resident table that
loads from and flushes to a single compact file.

Basic usage:

	idx, err := hashindex.Init(0, 32, 12)
	if err != nil {
		log.Fatal(err)
	}
	defer idx.Free()

	key := make([]byte, 32)
	value := make([]byte, 12)
	idx.Set(key, value)

	got, ok := idx.Get(key)
	if ok {
		fmt.Println(got)
	}

	if err := hashindex.Write(idx, "chunks.idx"); err != nil {
		log.Fatal(err)
	}

Implementation details:

  - Capacity always sits on an entry of the size table (sizetable.go):
    a fixed, near-prime sequence of 58 values growing roughly 2x near the
    low end and decaying to roughly 1.1x near the high end.
  - Collisions resolve with robin-hood linear probing. Deletions leave a
    tombstone (a reserved value-region sentinel) rather than shifting
    entries, so lookups can still traverse the probe chain of later keys.
  - Growing and shrinking are eager and synchronous: every live entry is
    re-inserted into a freshly allocated table of the new size, and the
    old table is discarded only once the new one is fully populated.
  - The persisted format is a fixed 18-byte header followed by the raw
    bucket array, little-endian throughout. See codec.go.

An Index is not safe for concurrent use. Two distinct Index values are
fully independent and may be used from separate goroutines.
*/
package hashindex
