package trie

import "unsafe"

// MemoryStats is a point-in-time estimate of the trie's memory footprint,
// broken down by component. All byte figures are estimates derived from
// struct sizes and container capacities; map overhead is approximated per
// entry. Collecting stats never mutates the trie.
type MemoryStats struct {
	NodeCount       int
	NodeCapacity    int
	NodeStructBytes int

	WordCount         int
	WordStorageBytes  int
	WordCapacityBytes int
	WordMapBytes      int

	SuggestionCount     int
	SuggestionHeapBytes int

	ChildSmallCount int
	ChildLargeCount int
	ChildHeapBytes  int

	TotalBytes int
}

const (
	nodeSize       = int(unsafe.Sizeof(node{}))
	suggestionSize = int(unsafe.Sizeof(packedSuggestion(0)))
	stringHeader   = int(unsafe.Sizeof(""))

	// Per-entry estimate for a map bucket slot: key + value + control byte
	// overhead, mirroring how capacity-based accounting treats open
	// addressing tables.
	mapSlotOverhead = 8
)

// MemoryStats walks the arena once and reports the current footprint.
func (t *Trie) MemoryStats() MemoryStats {
	var s MemoryStats

	s.NodeCount = len(t.nodes)
	s.NodeCapacity = cap(t.nodes)
	s.NodeStructBytes = s.NodeCount * nodeSize

	s.WordCount = t.store.count()
	for _, w := range t.store.words {
		s.WordStorageBytes += len(w)
	}
	s.WordCapacityBytes = cap(t.store.words)*stringHeader + s.WordStorageBytes
	s.WordMapBytes = len(t.store.ids) * (stringHeader + 4 + mapSlotOverhead)

	for i := range t.nodes {
		n := &t.nodes[i]
		s.SuggestionCount += len(n.suggestions)
		s.SuggestionHeapBytes += cap(n.suggestions) * suggestionSize

		if n.children.isLarge() {
			s.ChildLargeCount++
			s.ChildHeapBytes += len(n.children.large) * (4 + 4 + mapSlotOverhead)
		} else {
			s.ChildSmallCount++
		}
	}

	s.TotalBytes = s.NodeCapacity*nodeSize +
		s.WordCapacityBytes +
		s.WordMapBytes +
		s.SuggestionHeapBytes +
		s.ChildHeapBytes

	return s
}
