package bt

import (
	"testing"

	"github.com/globalforge/BTree/pkg/record"

	"github.com/stretchr/testify/require"
)

func testLayout() Layout {
	return computeLayout(Options{KeySize: 16, ValueSize: 8, NodeSize: 256})
}

func TestSearchNodeEmpty(t *testing.T) {
	l := testLayout()
	nd := newNode(l)

	found, loc := searchNode(nd, record.SearchKey(l.KeySize, "anything"))
	require.False(t, found)
	require.Equal(t, -1, loc)
}

func TestSearchNodeWalksLeft(t *testing.T) {
	l := testLayout()
	nd := newNode(l)
	letters := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, s := range letters {
		nd.records[i] = record.New(l.KeySize, l.ValueSize, s, nil)
	}
	nd.count = int32(len(letters))

	found, loc := searchNode(nd, record.SearchKey(l.KeySize, "D"))
	require.True(t, found)
	require.Equal(t, 3, loc)

	found, loc = searchNode(nd, record.SearchKey(l.KeySize, "A"))
	require.True(t, found)
	require.Equal(t, 0, loc)

	found, loc = searchNode(nd, record.SearchKey(l.KeySize, "G"))
	require.True(t, found)
	require.Equal(t, 6, loc)

	found, loc = searchNode(nd, record.SearchKey(l.KeySize, "X"))
	require.False(t, found)
	require.Equal(t, 6, loc)

	found, loc = searchNode(nd, record.SearchKey(l.KeySize, "0"))
	require.False(t, found)
	require.Equal(t, -1, loc)
}

func TestNodeMarshalRoundTrip(t *testing.T) {
	l := testLayout()
	nd := newNode(l)
	nd.count = 2
	nd.records[0] = record.New(l.KeySize, l.ValueSize, "hello", []byte("v1"))
	nd.records[1] = record.New(l.KeySize, l.ValueSize, "world", []byte("v2"))
	nd.branches[0] = 3
	nd.branches[1] = 7
	nd.branches[2] = 9

	buf := make([]byte, l.NodeBytes)
	nd.marshal(buf, l)

	got := newNode(l)
	got.unmarshal(buf, l)

	require.Equal(t, nd.count, got.count)
	require.Equal(t, nd.records[0].Key, got.records[0].Key)
	require.Equal(t, nd.records[0].Value, got.records[0].Value)
	require.Equal(t, nd.branches, got.branches)
}
