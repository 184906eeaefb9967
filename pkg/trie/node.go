package trie

// nodeIndex addresses a node inside the arena. Indices are stable for the
// lifetime of the trie: nodes are never moved, reused or deleted.
type nodeIndex = uint32

const rootIndex nodeIndex = 0

// node is one position in the trie. It does not know its own prefix; that
// is implicit in the path from the root.
type node struct {
	children    childTable
	suggestions suggestionList
}

// getOrCreateChild resolves the edge labeled r out of parent, appending a
// fresh node to the arena when the edge does not exist yet.
func (t *Trie) getOrCreateChild(parent nodeIndex, r rune) nodeIndex {
	if idx, ok := t.nodes[parent].children.get(r); ok {
		return idx
	}
	idx := nodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, node{})
	t.nodes[parent].children.set(r, idx)
	return idx
}
