package bt

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/globalforge/BTree/pkg/kverrors"

	"github.com/stretchr/testify/require"
)

func TestTrivialInsertAndRetrieve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trivial.dat")
	opts := Options{KeySize: 32, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)

	require.NoError(t, InsertValue(e, "apple", int64(111)))
	require.NoError(t, InsertValue(e, "banana", int64(222)))
	require.NoError(t, InsertValue(e, "cherry", int64(333)))
	require.NoError(t, e.Close())

	e, err = Open(path, ModeRead, opts)
	require.NoError(t, err)
	defer e.Close()

	v, found, err := RetrieveValue[int64](e, "banana")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(222), v)

	_, found, err = RetrieveValue[int64](e, "durian")
	require.NoError(t, err)
	require.False(t, found)

	require.Equal(t, int64(3), e.Size())
}

func TestReverseOrderInsertionsCauseSplits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reverse.dat")
	opts := Options{KeySize: 16, ValueSize: 8, NodeSize: 256}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)

	for i := 99; i >= 0; i-- {
		key := fmt.Sprintf("key%05d", i)
		require.NoError(t, InsertValue(e, key, int64(i)))
	}
	require.NoError(t, e.Close())

	e, err = Open(path, ModeRead, opts)
	require.NoError(t, err)
	defer e.Close()

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("key%05d", i)
		v, found, err := RetrieveValue[int64](e, key)
		require.NoError(t, err)
		require.True(t, found, "missing key %s", key)
		require.Equal(t, int64(i), v)
	}

	require.Equal(t, int64(100), e.Size())
}

func TestDuplicateKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.dat")
	opts := Options{KeySize: 32, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)

	require.NoError(t, InsertValue(e, "key", int64(100)))
	err = InsertValue(e, "key", int64(200))
	require.ErrorIs(t, err, kverrors.ErrDuplicateKey)
	require.Equal(t, int64(1), e.Size())
	require.NoError(t, e.Close())

	e, err = Open(path, ModeRead, opts)
	require.NoError(t, err)
	defer e.Close()

	v, found, err := RetrieveValue[int64](e, "key")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(100), v)
	require.Equal(t, int64(1), e.Size())
}

func TestReadModeRejectsInsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gate.dat")
	opts := Options{KeySize: 32, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)
	require.NoError(t, InsertValue(e, "a", int64(1)))
	require.NoError(t, e.Close())

	e, err = Open(path, ModeRead, opts)
	require.NoError(t, err)
	defer e.Close()

	err = InsertValue(e, "b", int64(2))
	require.ErrorIs(t, err, kverrors.ErrInvalidMode)
}

func TestKeyTruncationIsSilentAndIndistinguishable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trunc.dat")
	opts := Options{KeySize: 8, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)
	require.NoError(t, InsertValue(e, "abcdefghXXXX", int64(42)))
	require.NoError(t, e.Close())

	e, err = Open(path, ModeRead, opts)
	require.NoError(t, err)
	defer e.Close()

	v1, found1, err := RetrieveValue[int64](e, "abcdefghXXXX")
	require.NoError(t, err)
	v2, found2, err := RetrieveValue[int64](e, "abcdefg")
	require.NoError(t, err)

	require.True(t, found1)
	require.True(t, found2)
	require.Equal(t, v1, v2)
}

func TestEmptyTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dat")
	opts := Options{KeySize: 32, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)
	defer e.Close()

	_, found, err := e.Retrieve("anything")
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, int64(0), e.Size())
	require.True(t, e.Empty())
}

func TestDoubleCloseIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doubleclose.dat")
	opts := Options{KeySize: 32, ValueSize: 8, NodeSize: 4096}

	e, err := Open(path, ModeWrite, opts)
	require.NoError(t, err)
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
	require.False(t, e.IsOpen())
}
