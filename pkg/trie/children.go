package trie

// inlineChildCap is the fan-out a node tolerates before its child table
// trades the inline array for a map. Branching in real vocabularies is
// heavily skewed: almost every node has a couple of children, while the
// root and its immediate descendants can have dozens.
const inlineChildCap = 4

type childEntry struct {
	r   rune
	idx nodeIndex
}

// childTable maps the next character to a child node index. It starts as an
// unordered inline array searched linearly and promotes, once and
// irreversibly, to a map when an insert would push it past inlineChildCap.
// There is no demotion path since the trie never removes nodes.
type childTable struct {
	small [inlineChildCap]childEntry
	n     uint8
	large map[rune]nodeIndex
}

func (c *childTable) get(r rune) (nodeIndex, bool) {
	if c.large != nil {
		idx, ok := c.large[r]
		return idx, ok
	}
	for i := uint8(0); i < c.n; i++ {
		if c.small[i].r == r {
			return c.small[i].idx, true
		}
	}
	return 0, false
}

// set maps r to idx, overwriting any existing mapping for r.
func (c *childTable) set(r rune, idx nodeIndex) {
	if c.large != nil {
		c.large[r] = idx
		return
	}
	for i := uint8(0); i < c.n; i++ {
		if c.small[i].r == r {
			c.small[i].idx = idx
			return
		}
	}
	if c.n < inlineChildCap {
		c.small[c.n] = childEntry{r: r, idx: idx}
		c.n++
		return
	}
	c.promote(r, idx)
}

// promote drains the inline entries into a map and adds the entry that
// overflowed. Cold: most nodes never get here.
func (c *childTable) promote(r rune, idx nodeIndex) {
	m := make(map[rune]nodeIndex, inlineChildCap*2)
	for i := uint8(0); i < c.n; i++ {
		m[c.small[i].r] = c.small[i].idx
	}
	m[r] = idx
	c.large = m
	c.n = 0
}

// len reports the number of distinct children.
func (c *childTable) len() int {
	if c.large != nil {
		return len(c.large)
	}
	return int(c.n)
}

// isLarge reports whether the table has promoted to the map form.
func (c *childTable) isLarge() bool { return c.large != nil }
