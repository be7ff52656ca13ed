package hashindex_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/archivekit/hashindex"
	"github.com/stretchr/testify/require"
)

// k32 builds the 32-byte key spec.md §8 uses for its end-to-end
// scenarios: first 4 bytes are i little-endian, the rest zero.
func k32(i uint32) []byte {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint32(key[:4], i)
	return key
}

// v12 builds the matching 12-byte value: three little-endian uint32s
// (i, 0, 0).
func v12(i uint32) []byte {
	value := make([]byte, 12)
	binary.LittleEndian.PutUint32(value[0:4], i)
	return value
}

func TestEmptyRoundTrip(t *testing.T) {
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	defer idx.Free()

	require.Equal(t, 0, idx.Len())
	require.Equal(t, 1031, idx.NumBuckets())
	require.Equal(t, 18+1031*44, idx.ByteSize())

	path := tempPath(t, "empty.idx")
	require.NoError(t, hashindex.Write(idx, path))

	reloaded, err := hashindex.Read(path)
	require.NoError(t, err)
	defer reloaded.Free()

	require.Equal(t, 0, reloaded.Len())
	require.Equal(t, 1031, reloaded.NumBuckets())
	require.Equal(t, 18+1031*44, reloaded.ByteSize())
}

func TestSingleInsertAndOverwrite(t *testing.T) {
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	defer idx.Free()

	require.NoError(t, idx.Set(k32(7), v12(7)))
	require.Equal(t, 1, idx.Len())
	got, ok := idx.Get(k32(7))
	require.True(t, ok)
	require.Equal(t, v12(7), got)

	require.NoError(t, idx.Set(k32(7), v12(8)))
	require.Equal(t, 1, idx.Len())
	got, ok = idx.Get(k32(7))
	require.True(t, ok)
	require.Equal(t, v12(8), got)
}

func TestGetAbsentKey(t *testing.T) {
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	defer idx.Free()

	_, ok := idx.Get(k32(42))
	require.False(t, ok)
}

func TestDeleteIsIdempotent(t *testing.T) {
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	defer idx.Free()

	require.NoError(t, idx.Set(k32(1), v12(1)))
	require.NoError(t, idx.Delete(k32(1)))
	require.Equal(t, 0, idx.Len())

	// deleting an absent key a second time must not error or change len
	require.NoError(t, idx.Delete(k32(1)))
	require.Equal(t, 0, idx.Len())

	_, ok := idx.Get(k32(1))
	require.False(t, ok)
}

func TestManyKeysRetrievable(t *testing.T) {
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	defer idx.Free()

	const n = 500
	for i := uint32(0); i < n; i++ {
		require.NoError(t, idx.Set(k32(i), v12(i)))
	}
	require.Equal(t, n, idx.Len())
	for i := uint32(0); i < n; i++ {
		got, ok := idx.Get(k32(i))
		require.True(t, ok, "key %d missing", i)
		require.Equal(t, v12(i), got)
	}
}

func TestInvalidSizesRejected(t *testing.T) {
	_, err := hashindex.Init(0, 0, 12)
	require.Error(t, err)

	_, err = hashindex.Init(0, 32, 3)
	require.Error(t, err)

	_, err = hashindex.Init(0, 128, 12)
	require.Error(t, err)
}

func tempPath(t *testing.T, name string) string {
	t.Helper()
	path := t.TempDir() + string(os.PathSeparator) + name
	return path
}
