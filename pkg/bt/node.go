package bt

import (
	"encoding/binary"

	"github.com/globalforge/BTree/pkg/record"
)

var bin = binary.LittleEndian

// nilBranch is the sentinel child pointer meaning "no subtree / leaf
// position".
const nilBranch int64 = -1

// node is a single fixed-size B-tree node: count live records, a full
// MaxKeys-width record array and a full Order-width branch array. Record
// slots at index >= count and branch slots beyond count+1 hold stale data
// from a previous write and must never be read.
//
// There is no single working buffer threaded through the recursion:
// readNode returns the *node cached for that node number (decoding a new
// one on a cache miss). Each frame of the insert recursion holds a
// different node number, and deeper frames only read and write their own
// nodes and newly allocated ones, so a node held across a recursive call
// is never mutated out from under its holder.
type node struct {
	count    int32
	records  []record.Record
	branches []int64
}

func newNode(l Layout) *node {
	records := make([]record.Record, l.MaxKeys)
	for i := range records {
		records[i] = record.Zero(l.KeySize, l.ValueSize)
	}
	branches := make([]int64, l.Order)
	for i := range branches {
		branches[i] = nilBranch
	}
	return &node{records: records, branches: branches}
}

// marshal writes the node's packed representation into buf, which must be
// at least l.NodeBytes long:
//
//	offset 0            : int32    count
//	offset 4            : Record[MaxKeys]
//	offset 4+MK*(K+V)   : int64[Order] branches
func (n *node) marshal(buf []byte, l Layout) {
	bin.PutUint32(buf[0:4], uint32(n.count))

	offset := 4
	for i := 0; i < l.MaxKeys; i++ {
		n.records[i].MarshalTo(buf[offset : offset+l.RecordSize])
		offset += l.RecordSize
	}

	for i := 0; i < l.Order; i++ {
		bin.PutUint64(buf[offset:offset+8], uint64(n.branches[i]))
		offset += 8
	}
}

func (n *node) unmarshal(buf []byte, l Layout) {
	n.count = int32(bin.Uint32(buf[0:4]))

	offset := 4
	for i := 0; i < l.MaxKeys; i++ {
		n.records[i] = record.Unmarshal(buf[offset:offset+l.RecordSize], l.KeySize, l.ValueSize)
		offset += l.RecordSize
	}

	for i := 0; i < l.Order; i++ {
		n.branches[i] = int64(bin.Uint64(buf[offset : offset+8]))
		offset += 8
	}
}

// insertAt shifts records [loc, count) and branches [loc+1, count+1) right
// by one slot and writes rec/rightBranch into the opened gap. Shared by
// plain insertion and split.
func (n *node) insertAt(loc int, rec record.Record, rightBranch int64) {
	for j := int(n.count); j > loc; j-- {
		n.records[j] = n.records[j-1]
		n.branches[j+1] = n.branches[j]
	}
	n.records[loc] = rec
	n.branches[loc+1] = rightBranch
	n.count++
}
