package bt

import (
	"github.com/globalforge/BTree/pkg/kverrors"
	"github.com/globalforge/BTree/pkg/record"
)

// Retrieve starts at the root and descends using searchNode until the key
// is found or a nil branch is reached. Tree height bounds the number of
// disk reads to roughly log base Order/2 of the item count. A read error
// collapses the search to not-found rather than surfacing, matching the
// same I/O-failure handling as the bs engine's Lookup.
func (e *Engine) Retrieve(key string) ([]byte, bool, error) {
	if e.file == nil {
		return nil, false, kverrors.ErrNotOpen
	}

	target := record.SearchKey(e.layout.KeySize, key)

	current := e.root
	for current != nilBranch {
		nd, err := e.readNode(current)
		if err != nil {
			return nil, false, nil
		}

		found, loc := searchNode(nd, target)
		if found {
			value := make([]byte, e.layout.ValueSize)
			copy(value, nd.records[loc].Value)
			return value, true, nil
		}

		current = nd.branches[loc+1]
	}

	return nil, false, nil
}

// Contains is Retrieve with the value discarded.
func (e *Engine) Contains(key string) (bool, error) {
	_, found, err := e.Retrieve(key)
	return found, err
}
