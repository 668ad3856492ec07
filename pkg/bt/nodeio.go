package bt

import (
	"github.com/globalforge/BTree/pkg/kverrors"

	"github.com/pkg/errors"
)

// readNode seeks to n*NodeBytes and reads exactly NodeBytes bytes, serving
// from the node cache when possible. Node 0 is the metadata node and is a
// regular node on disk, but its fields are interpreted specially by the
// caller.
func (e *Engine) readNode(n int64) (*node, error) {
	if cached, ok := e.cache.get(n); ok {
		return cached, nil
	}

	buf := make([]byte, e.layout.NodeBytes)
	if _, err := e.file.ReadAt(buf, n*int64(e.layout.NodeBytes)); err != nil {
		return nil, errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}

	nd := newNode(e.layout)
	nd.unmarshal(buf, e.layout)
	e.cache.put(n, nd)
	return nd, nil
}

// writeNode seeks to n*NodeBytes and writes exactly NodeBytes bytes,
// updating the node cache in place.
func (e *Engine) writeNode(n int64, nd *node) error {
	buf := make([]byte, e.layout.NodeBytes)
	nd.marshal(buf, e.layout)

	if _, err := e.file.WriteAt(buf, n*int64(e.layout.NodeBytes)); err != nil {
		return errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}

	e.cache.put(n, nd)
	return nil
}

// writeMetadata encodes (numItems, numNodes, root) into branches[0..2] of
// a fresh node (zeroed records, all other branches nilBranch) and writes
// it to node 0. count is left zero — unlike
// the C++ source, whose Node default constructor leaves it implicitly
// unset; readers must ignore it either way.
func (e *Engine) writeMetadata() error {
	meta := newNode(e.layout)
	meta.branches[0] = e.numItems
	meta.branches[1] = e.numNodes
	meta.branches[2] = e.root
	return e.writeNode(0, meta)
}

// allocNode reserves the next node number, growing the file by one node.
// There is no free list: this tree never deletes, so node numbers are
// always contiguous 1..numNodes and nothing is ever freed.
func (e *Engine) allocNode() int64 {
	e.numNodes++
	return e.numNodes
}
