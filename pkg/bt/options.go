package bt

import "github.com/globalforge/BTree/internal/helpers"

// defaultNodeSize is the on-disk node size target used when Options.NodeSize
// is left zero; it's a design target, not a hard post-layout constraint —
// Order is derived so the struct fits near this size.
const defaultNodeSize = 4096

// Options configures the fixed-width sizing of a B-tree index. KeySize and
// ValueSize are per-tree constants; NodeSize is a target, not a hard
// constraint. All three are computed once at Open time into a Layout.
type Options struct {
	// KeySize is the on-disk width of a key, including the reserved
	// trailing NUL sentinel byte.
	KeySize int

	// ValueSize is the on-disk width of a value, opaque to the engine.
	ValueSize int

	// NodeSize is the target node size in bytes. Defaults to 4096.
	NodeSize int
}

// Layout is the set of derived constants governing a tree's on-disk
// shape: RecordSize, Order, MaxKeys and MinKeys, plus the actual byte size
// of a serialized node.
type Layout struct {
	KeySize    int
	ValueSize  int
	NodeSize   int
	RecordSize int
	Order      int
	MaxKeys    int
	MinKeys    int
	NodeBytes  int
}

// computeLayout derives Order from the target node size:
//
//	RecordSize = K + V
//	OrderCalc  = (S - 4 + RecordSize + 8) / (RecordSize + 8)
//	Order      = max(3, OrderCalc)
//	MaxKeys    = Order - 1
//	MinKeys    = (Order - 1) / 2
//
// Rationale: each slot beyond the first branch costs RecordSize+8 bytes;
// add one record slot and subtract the leading count field to solve for
// the number of key slots that fit.
func computeLayout(opts Options) Layout {
	nodeSize := opts.NodeSize
	if nodeSize == 0 {
		nodeSize = defaultNodeSize
	}

	recordSize := opts.KeySize + opts.ValueSize
	orderCalc := (nodeSize - 4 + recordSize + 8) / (recordSize + 8)
	order := helpers.Max(3, orderCalc)
	maxKeys := order - 1
	minKeys := (order - 1) / 2

	return Layout{
		KeySize:    opts.KeySize,
		ValueSize:  opts.ValueSize,
		NodeSize:   nodeSize,
		RecordSize: recordSize,
		Order:      order,
		MaxKeys:    maxKeys,
		MinKeys:    minKeys,
		NodeBytes:  4 + maxKeys*recordSize + 8*order,
	}
}
