// Package bt implements the incrementally-insertable, disk-backed B-tree
// index engine: fixed-width keys and values, order derived from a target
// node size, split-propagating insertion, iterative lookup.
package bt

import (
	"os"

	"github.com/globalforge/BTree/internal/logger"
	"github.com/globalforge/BTree/pkg/kverrors"

	"github.com/pkg/errors"
)

// Mode selects whether Open creates a fresh tree for writing or opens an
// existing one read-only.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// defaultCacheNodes bounds the node cache; a handful of levels of a wide
// tree comfortably fit, which is all a single linear insert/lookup chain
// needs to avoid re-reading the same node twice.
const defaultCacheNodes = 256

// Engine is an open B-tree index file. It owns exclusive access to the
// file for its lifetime — callers must ensure no other process or thread
// opens the same file concurrently.
type Engine struct {
	path   string
	mode   Mode
	file   *os.File
	layout Layout
	cache  *nodeCache

	root     int64
	numItems int64
	numNodes int64
}

// Open opens path as a B-tree index. In Write mode it truncates any
// existing file and initializes the metadata node; in Read mode it
// requires the file to have been previously created and closed in write
// mode. On failure the returned error wraps ErrIoFailure and no Engine is
// returned.
func Open(path string, mode Mode, opts Options) (*Engine, error) {
	layout := computeLayout(opts)

	var file *os.File
	var err error
	if mode == ModeWrite {
		file, err = os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	} else {
		file, err = os.OpenFile(path, os.O_RDONLY, 0644)
	}
	if err != nil {
		return nil, errors.Wrap(kverrors.ErrIoFailure, err.Error())
	}

	e := &Engine{
		path:   path,
		mode:   mode,
		file:   file,
		layout: layout,
		cache:  newNodeCache(defaultCacheNodes),
		root:   nilBranch,
	}

	if mode == ModeWrite {
		if err := e.writeMetadata(); err != nil {
			file.Close()
			return nil, err
		}
	} else {
		meta, err := e.readNode(0)
		if err != nil {
			file.Close()
			return nil, err
		}
		e.numItems = meta.branches[0]
		e.numNodes = meta.branches[1]
		e.root = meta.branches[2]
		e.cache.invalidate(0)
	}

	logger.L.WithField("path", path).WithField("mode", mode).Debug("bt: open")
	return e, nil
}

// Close is idempotent: in write mode it rewrites the metadata node with
// the current (numItems, numNodes, root) before closing; in read mode it
// just closes. Safe to call twice.
func (e *Engine) Close() error {
	if e.file == nil {
		return nil
	}

	var metaErr error
	if e.mode == ModeWrite {
		metaErr = e.writeMetadata()
	}

	closeErr := e.file.Close()
	e.file = nil
	e.cache.clear()

	if metaErr != nil {
		return metaErr
	}
	if closeErr != nil {
		return errors.Wrap(kverrors.ErrIoFailure, closeErr.Error())
	}
	return nil
}

// Size returns the number of items in the tree.
func (e *Engine) Size() int64 { return e.numItems }

// Empty reports whether the tree has no root yet.
func (e *Engine) Empty() bool { return e.root == nilBranch }

// IsOpen reports whether the engine currently owns an open file handle.
func (e *Engine) IsOpen() bool { return e.file != nil }

// Layout returns the derived sizing constants (Order, MaxKeys, MinKeys,
// RecordSize, NodeBytes) this engine was opened with.
func (e *Engine) Layout() Layout { return e.layout }
