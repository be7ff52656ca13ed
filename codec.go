package hashindex

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	magic      = "BORG_IDX"
	headerSize = 18 // 8 magic + 4 num_entries + 4 num_buckets + 1 key_size + 1 value_size
)

// Read decodes an Index from path. Any format mismatch — bad magic,
// short read, or a length that doesn't match
// 18 + num_buckets*(key_size+value_size) — fails the read and leaves no
// partial Index observable.
func Read(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		warnf("read %s: open: %v", path, err)
		return nil, errors.Wrapf(err, "hashindex: open %s", path)
	}
	defer f.Close()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(f, header); err != nil {
		warnf("read %s: header: %v", path, err)
		return nil, errors.Wrapf(ErrShortRead, "%s: header (%v)", path, err)
	}
	if string(header[0:8]) != magic {
		warnf("read %s: bad magic", path)
		return nil, errors.Wrapf(ErrBadMagic, "%s", path)
	}

	numEntries := int(int32(binary.LittleEndian.Uint32(header[8:12])))
	numBuckets := int(int32(binary.LittleEndian.Uint32(header[12:16])))
	keySize := int(int8(header[16]))
	valueSize := int(int8(header[17]))

	if keySize < 1 || keySize > 127 || valueSize < 4 || valueSize > 127 || numBuckets <= 0 {
		warnf("read %s: invalid sizes key=%d value=%d buckets=%d", path, keySize, valueSize, numBuckets)
		return nil, errors.Wrapf(ErrInvalidSizes, "%s", path)
	}

	fi, err := f.Stat()
	if err != nil {
		warnf("read %s: stat: %v", path, err)
		return nil, errors.Wrapf(err, "hashindex: stat %s", path)
	}

	bucketSize := keySize + valueSize
	bucketsLength := int64(numBuckets) * int64(bucketSize)
	wantLength := int64(headerSize) + bucketsLength
	if fi.Size() != wantLength {
		warnf("read %s: length mismatch want=%d got=%d", path, wantLength, fi.Size())
		return nil, errors.Wrapf(ErrLengthMismatch, "%s: want %d got %d", path, wantLength, fi.Size())
	}

	data := make([]byte, bucketsLength)
	if _, err := io.ReadFull(f, data); err != nil {
		warnf("read %s: buckets: %v", path, err)
		return nil, errors.Wrapf(ErrShortRead, "%s: buckets (%v)", path, err)
	}

	store := &bucketStore{
		data:      data,
		keySize:   keySize,
		valueSize: valueSize,
		bucket:    bucketSize,
	}
	idx := &Index{
		store:      store,
		numEntries: numEntries,
		keySize:    keySize,
		valueSize:  valueSize,
	}
	idx.refreshLimits()
	return idx, nil
}

// Write encodes idx to path, overwriting any existing file. Neither
// tombstones nor empty slots are compacted: the bucket region is
// persisted verbatim so a subsequent Read reproduces the exact same
// probe chains.
func Write(idx *Index, path string) error {
	f, err := os.Create(path)
	if err != nil {
		warnf("write %s: create: %v", path, err)
		return errors.Wrapf(err, "hashindex: create %s", path)
	}

	header := make([]byte, headerSize)
	copy(header[0:8], magic)
	binary.LittleEndian.PutUint32(header[8:12], uint32(idx.numEntries))
	binary.LittleEndian.PutUint32(header[12:16], uint32(idx.store.numBuckets()))
	header[16] = byte(int8(idx.keySize))
	header[17] = byte(int8(idx.valueSize))

	if _, err := f.Write(header); err != nil {
		warnf("write %s: header: %v", path, err)
		f.Close()
		return errors.Wrapf(err, "hashindex: write header %s", path)
	}
	if _, err := f.Write(idx.store.data); err != nil {
		warnf("write %s: buckets: %v", path, err)
		f.Close()
		return errors.Wrapf(err, "hashindex: write buckets %s", path)
	}
	if err := f.Close(); err != nil {
		warnf("write %s: close: %v", path, err)
		return errors.Wrapf(err, "hashindex: close %s", path)
	}
	return nil
}
