package bs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func opts() Options {
	return Options{KeySize: 32, ValueSize: 8}
}

func TestBuildIndexEmptyBufferFails(t *testing.T) {
	b := NewBuilder(opts())
	_, err := b.BuildIndex(filepath.Join(t.TempDir(), "empty.dat"))
	require.Error(t, err)
}

func TestBuildThenRead(t *testing.T) {
	b := NewBuilder(opts())
	b.AddRecord("apple", le64(111))
	b.AddRecord("cherry", le64(333))
	b.AddRecord("banana", le64(222))

	path := filepath.Join(t.TempDir(), "p.dat")
	r, err := b.BuildIndex(path)
	require.NoError(t, err)
	require.Equal(t, uint64(3), r.RecordCount())

	v, found, err := r.Lookup("banana")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(222), decode64(v))

	_, found, err = r.Lookup("durian")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, r.CloseIndex())
	require.Equal(t, uint64(0), r.RecordCount())

	// re-open in a fresh instance
	r2, err := OpenIndex(path, opts())
	require.NoError(t, err)
	defer r2.CloseIndex()

	v2, found, err := r2.Lookup("banana")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(222), decode64(v2))
}

func TestScale(t *testing.T) {
	b := NewBuilder(Options{KeySize: 16, ValueSize: 8})
	for i := 0; i < 10000; i++ {
		b.AddRecord(idKey(i), le64(int64(i)*100))
	}

	r, err := b.BuildIndex(filepath.Join(t.TempDir(), "scale.dat"))
	require.NoError(t, err)
	require.Equal(t, uint64(10000), r.RecordCount())

	v, found, err := r.Lookup(idKey(5000))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(500000), decode64(v))

	_, found, err = r.Lookup(idKey(10000))
	require.NoError(t, err)
	require.False(t, found)
}

func idKey(i int) string {
	return sprintfID(i)
}

func sprintfID(i int) string {
	const digits = "0123456789"
	s := make([]byte, 8)
	for p := 7; p >= 0; p-- {
		s[p] = digits[i%10]
		i /= 10
	}
	return "ID" + string(s)
}

func le64(v int64) []byte {
	buf := make([]byte, 8)
	u := uint64(v)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	return buf
}

func decode64(b []byte) int64 {
	var u uint64
	for i := 0; i < 8 && i < len(b); i++ {
		u |= uint64(b[i]) << (8 * i)
	}
	return int64(u)
}
