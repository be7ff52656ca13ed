// Package recordkit shows a realistic caller of the hashindex engine: a
// chunk reference table keyed by a 32-byte content hash, with a fixed
// refcount/size/compressed-size record as the value. It owns no engine
// internals — it only calls Init/Get/Set/Delete/Iterate/Read/Write —
// and exists so the benchmarks in this repository have a realistic
// record shape to exercise instead of bare byte slices.
package recordkit

import (
	"encoding/binary"

	"github.com/archivekit/hashindex"
)

// KeySize is the width of a chunk's content hash.
const KeySize = 32

// recordSize is refcount + size + csize, each a little-endian uint32.
const recordSize = 12

// ChunkRecord mirrors the refcount/size/compressed-size triple the
// archival backup system's chunk table stores per content hash.
type ChunkRecord struct {
	RefCount uint32
	Size     uint32
	CSize    uint32
}

func (r ChunkRecord) encode() []byte {
	buf := make([]byte, recordSize)
	binary.LittleEndian.PutUint32(buf[0:4], r.RefCount)
	binary.LittleEndian.PutUint32(buf[4:8], r.Size)
	binary.LittleEndian.PutUint32(buf[8:12], r.CSize)
	return buf
}

func decodeChunkRecord(buf []byte) ChunkRecord {
	return ChunkRecord{
		RefCount: binary.LittleEndian.Uint32(buf[0:4]),
		Size:     binary.LittleEndian.Uint32(buf[4:8]),
		CSize:    binary.LittleEndian.Uint32(buf[8:12]),
	}
}

// ChunkIndex maps 32-byte content hashes to ChunkRecords on top of a
// plain hashindex.Index.
type ChunkIndex struct {
	idx *hashindex.Index
}

// NewChunkIndex allocates a ChunkIndex sized to fit at least capacity
// entries.
func NewChunkIndex(capacity int) (*ChunkIndex, error) {
	idx, err := hashindex.Init(capacity, KeySize, recordSize)
	if err != nil {
		return nil, err
	}
	return &ChunkIndex{idx: idx}, nil
}

// OpenChunkIndex reads a persisted ChunkIndex from path.
func OpenChunkIndex(path string) (*ChunkIndex, error) {
	idx, err := hashindex.Read(path)
	if err != nil {
		return nil, err
	}
	return &ChunkIndex{idx: idx}, nil
}

// Save persists the ChunkIndex to path.
func (c *ChunkIndex) Save(path string) error {
	return hashindex.Write(c.idx, path)
}

// Get returns the record for hash, if present.
func (c *ChunkIndex) Get(hash []byte) (ChunkRecord, bool) {
	v, ok := c.idx.Get(hash)
	if !ok {
		return ChunkRecord{}, false
	}
	return decodeChunkRecord(v), true
}

// Set stores rec under hash, overwriting any existing record.
func (c *ChunkIndex) Set(hash []byte, rec ChunkRecord) error {
	return c.idx.Set(hash, rec.encode())
}

// Delete removes hash's record, if present.
func (c *ChunkIndex) Delete(hash []byte) error {
	return c.idx.Delete(hash)
}

// Len returns the number of chunk records currently live.
func (c *ChunkIndex) Len() int {
	return c.idx.Len()
}

// ByteSize returns the persisted size of the underlying index.
func (c *ChunkIndex) ByteSize() int {
	return c.idx.ByteSize()
}

// Merge folds other's records into c: refcounts add, and size/csize are
// taken from other for any hash absent from c. This mirrors how two
// archives' chunk usage tallies combine when pruning a repository.
func (c *ChunkIndex) Merge(other *ChunkIndex) error {
	cursor := 0
	for {
		key, value, next, ok := other.idx.Iterate(cursor)
		if !ok {
			return nil
		}
		rec := decodeChunkRecord(value)
		if existing, found := c.Get(key); found {
			existing.RefCount += rec.RefCount
			rec = existing
		}
		if err := c.Set(key, rec); err != nil {
			return err
		}
		cursor = next
	}
}

// Each calls fn for every live hash/record pair in physical index order.
func (c *ChunkIndex) Each(fn func(hash []byte, rec ChunkRecord)) {
	cursor := 0
	for {
		key, value, next, ok := c.idx.Iterate(cursor)
		if !ok {
			return
		}
		fn(key, decodeChunkRecord(value))
		cursor = next
	}
}
