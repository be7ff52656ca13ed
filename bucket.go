package hashindex

import "encoding/binary"

// Bucket state tags, stored little-endian in the first 4 bytes of a
// bucket's value region. Any other bit pattern in those 4 bytes means
// the bucket is live and its key/value bytes are meaningful.
const (
	stateEmpty   uint32 = 0xFFFFFFFF
	stateDeleted uint32 = 0xFFFFFFFE
)

// bucketStore holds buckets in AoS layout: [k0 v0 k1 v1 ...], each
// bucket keySize+valueSize bytes wide. This is the mandatory on-disk
// layout (codec.go writes it byte-for-byte) and is also used as the
// in-memory layout, so no re-serialization step is needed on Write.
type bucketStore struct {
	data      []byte
	keySize   int
	valueSize int
	bucket    int // keySize + valueSize
}

func newBucketStore(numBuckets, keySize, valueSize int) *bucketStore {
	bs := &bucketStore{
		keySize:   keySize,
		valueSize: valueSize,
		bucket:    keySize + valueSize,
		data:      make([]byte, numBuckets*(keySize+valueSize)),
	}
	for i := 0; i < numBuckets; i++ {
		bs.markEmpty(i)
	}
	return bs
}

func (bs *bucketStore) numBuckets() int {
	return len(bs.data) / bs.bucket
}

func (bs *bucketStore) offset(i int) int {
	return i * bs.bucket
}

func (bs *bucketStore) key(i int) []byte {
	off := bs.offset(i)
	return bs.data[off : off+bs.keySize]
}

func (bs *bucketStore) value(i int) []byte {
	off := bs.offset(i) + bs.keySize
	return bs.data[off : off+bs.valueSize]
}

func (bs *bucketStore) tag(i int) uint32 {
	off := bs.offset(i) + bs.keySize
	return binary.LittleEndian.Uint32(bs.data[off : off+4])
}

func (bs *bucketStore) setTag(i int, tag uint32) {
	off := bs.offset(i) + bs.keySize
	binary.LittleEndian.PutUint32(bs.data[off:off+4], tag)
}

func (bs *bucketStore) isEmpty(i int) bool   { return bs.tag(i) == stateEmpty }
func (bs *bucketStore) isDeleted(i int) bool { return bs.tag(i) == stateDeleted }
func (bs *bucketStore) isLive(i int) bool {
	t := bs.tag(i)
	return t != stateEmpty && t != stateDeleted
}

func (bs *bucketStore) markEmpty(i int)   { bs.setTag(i, stateEmpty) }
func (bs *bucketStore) markDeleted(i int) { bs.setTag(i, stateDeleted) }

// put writes key and value into bucket i, marking it live. value's
// first 4 bytes become the new state tag, so value must not begin with
// the little-endian encoding of stateEmpty or stateDeleted.
func (bs *bucketStore) put(i int, key, value []byte) {
	copy(bs.key(i), key)
	copy(bs.value(i), value)
}

// copyBucket copies the entire bucket cell (key, value, tag) from src
// to dst within the same store.
func (bs *bucketStore) copyBucket(dst, src int) {
	copy(bs.data[bs.offset(dst):bs.offset(dst)+bs.bucket], bs.data[bs.offset(src):bs.offset(src)+bs.bucket])
}

// swapEntry exchanges the bucket at i with a standalone entry buffer of
// length bs.bucket (key||value laid out the same way as a live bucket).
func (bs *bucketStore) swapEntry(i int, entry []byte) {
	off := bs.offset(i)
	for j := 0; j < bs.bucket; j++ {
		bs.data[off+j], entry[j] = entry[j], bs.data[off+j]
	}
}
