package bt

import (
	"github.com/globalforge/BTree/internal/logger"
	"github.com/globalforge/BTree/pkg/kverrors"
	"github.com/globalforge/BTree/pkg/record"
)

// Insert adds key/value to the tree. Fails with ErrInvalidMode if the
// engine is not open for writing and ErrDuplicateKey if the key already
// exists — the tree is left unchanged on a duplicate, since the error
// surfaces after the recursion has touched its (per-frame) working buffer
// but before numItems is incremented. key is truncated to KeySize-1 bytes;
// truncation is silent.
func (e *Engine) Insert(key string, value []byte) error {
	if e.file == nil || e.mode != ModeWrite {
		return kverrors.ErrInvalidMode
	}

	rec := record.New(e.layout.KeySize, e.layout.ValueSize, key, value)

	moveUp, promoted, right, err := e.pushDown(rec, e.root)
	if err != nil {
		return err
	}

	if moveUp {
		newRoot := newNode(e.layout)
		newRoot.count = 1
		newRoot.records[0] = promoted
		newRoot.branches[0] = e.root
		newRoot.branches[1] = right

		e.root = e.allocNode()
		if err := e.writeNode(e.root, newRoot); err != nil {
			return err
		}
		logger.L.WithField("root", e.root).Debug("bt: new root promoted")
	}

	e.numItems++
	return nil
}

// pushDown implements the recursive push-down insert:
//
//  1. currentRoot == NIL (leaf position reached): signal promotion of rec
//     itself, no right child.
//  2. Otherwise load the node, search it; a found match is a duplicate
//     key.
//  3. Recurse into branches[loc+1]. If the child didn't promote, we're
//     done.
//  4. If this node still has room, shift the promoted record/child in and
//     stop promoting; otherwise split, which produces a new promoted
//     record/child to keep propagating up.
func (e *Engine) pushDown(rec record.Record, currentRoot int64) (moveUp bool, promoted record.Record, right int64, err error) {
	if currentRoot == nilBranch {
		return true, rec, nilBranch, nil
	}

	nd, err := e.readNode(currentRoot)
	if err != nil {
		return false, record.Record{}, nilBranch, err
	}

	found, loc := searchNode(nd, rec.Key)
	if found {
		return false, record.Record{}, nilBranch, kverrors.ErrDuplicateKey
	}

	childMovedUp, childRec, childRight, err := e.pushDown(rec, nd.branches[loc+1])
	if err != nil {
		return false, record.Record{}, nilBranch, err
	}
	if !childMovedUp {
		return false, record.Record{}, nilBranch, nil
	}

	// nd is a per-frame buffer (see node.go) untouched by the recursive
	// call above, so no reload is needed before inserting into it.
	if int(nd.count) < e.layout.MaxKeys {
		nd.insertAt(loc+1, childRec, childRight)
		if err := e.writeNode(currentRoot, nd); err != nil {
			return false, record.Record{}, nilBranch, err
		}
		return false, record.Record{}, nilBranch, nil
	}

	promoted, right, err = e.split(currentRoot, nd, childRec, childRight, loc)
	if err != nil {
		return false, record.Record{}, nilBranch, err
	}
	return true, promoted, right, nil
}

// split breaks a full node into two, returning the record that must be
// promoted to the parent and the new right sibling's node number. median
// is biased by where the incoming record lands so both halves end up with
// at least MinKeys records once the insertion is assigned to one side.
func (e *Engine) split(currentRoot int64, left *node, cur record.Record, curRight int64, loc int) (record.Record, int64, error) {
	l := e.layout
	median := l.MinKeys
	if loc >= l.MinKeys {
		median = l.MinKeys + 1
	}

	right := newNode(l)
	for j := median; j < l.MaxKeys; j++ {
		right.records[j-median] = left.records[j]
		right.branches[j-median+1] = left.branches[j+1]
	}
	right.count = int32(l.MaxKeys - median)
	left.count = int32(median)

	if loc < l.MinKeys {
		left.insertAt(loc+1, cur, curRight)
	} else {
		right.insertAt(loc-median+1, cur, curRight)
	}

	promoted := left.records[left.count-1]
	right.branches[0] = left.branches[left.count]
	left.count--

	if err := e.writeNode(currentRoot, left); err != nil {
		return record.Record{}, nilBranch, err
	}

	rightNum := e.allocNode()
	if err := e.writeNode(rightNum, right); err != nil {
		return record.Record{}, nilBranch, err
	}

	logger.L.WithField("left", currentRoot).WithField("right", rightNum).Debug("bt: node split")
	return promoted, rightNum, nil
}
