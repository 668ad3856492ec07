package bt

import "github.com/globalforge/BTree/pkg/record"

// searchNode looks up target within an already-loaded node and returns
// (found, loc):
//
//   - node.count == 0            -> loc = -1, found = false
//   - target < records[0].key    -> loc = -1, found = false
//   - otherwise walk left from count-1 while target < records[loc].key
//
// When found is false, the caller descends into branches[loc+1].
func searchNode(nd *node, target []byte) (found bool, loc int) {
	if nd.count == 0 {
		return false, -1
	}

	if record.Compare(target, nd.records[0].Key) < 0 {
		return false, -1
	}

	loc = int(nd.count) - 1
	for loc > 0 && record.Compare(target, nd.records[loc].Key) < 0 {
		loc--
	}

	return record.Compare(target, nd.records[loc].Key) == 0, loc
}
