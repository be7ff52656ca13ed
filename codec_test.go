package hashindex_test

import (
	"os"
	"testing"

	"github.com/archivekit/hashindex"
	"github.com/stretchr/testify/require"
)

func buildSample(t *testing.T) (*hashindex.Index, string) {
	t.Helper()
	idx, err := hashindex.Init(0, 32, 12)
	require.NoError(t, err)
	for i := uint32(0); i < 50; i++ {
		require.NoError(t, idx.Set(k32(i), v12(i)))
	}
	// leave a tombstone behind so persistence round-trips verbatim
	require.NoError(t, idx.Delete(k32(3)))
	path := tempPath(t, "sample.idx")
	require.NoError(t, hashindex.Write(idx, path))
	return idx, path
}

func TestRoundTripStructurallyEqual(t *testing.T) {
	idx, path := buildSample(t)
	defer idx.Free()

	reloaded, err := hashindex.Read(path)
	require.NoError(t, err)
	defer reloaded.Free()

	require.Equal(t, idx.Len(), reloaded.Len())
	require.Equal(t, idx.NumBuckets(), reloaded.NumBuckets())
	require.Equal(t, idx.KeySize(), reloaded.KeySize())
	require.Equal(t, idx.ValueSize(), reloaded.ValueSize())

	for i := uint32(0); i < 50; i++ {
		wantValue, wantOk := idx.Get(k32(i))
		gotValue, gotOk := reloaded.Get(k32(i))
		require.Equal(t, wantOk, gotOk, "key %d", i)
		require.Equal(t, wantValue, gotValue, "key %d", i)
	}
}

func TestPersistedFileLength(t *testing.T) {
	idx, path := buildSample(t)
	defer idx.Free()

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(idx.ByteSize()), fi.Size())
}

func TestReadDetectsTruncation(t *testing.T) {
	_, path := buildSample(t)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Truncate(path, fi.Size()-1))

	_, err = hashindex.Read(path)
	require.Error(t, err)
}

func TestReadDetectsBadMagic(t *testing.T) {
	_, path := buildSample(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = hashindex.Read(path)
	require.ErrorIs(t, err, hashindex.ErrBadMagic)
}

func TestReadDetectsLengthMismatch(t *testing.T) {
	_, path := buildSample(t)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	// corrupt num_buckets without adjusting file length
	data[12] ^= 0x01
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = hashindex.Read(path)
	require.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := hashindex.Read(tempPath(t, "does-not-exist.idx"))
	require.Error(t, err)
}
