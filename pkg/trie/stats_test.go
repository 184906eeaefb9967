package trie

import "testing"

func TestMemoryStatsCounts(t *testing.T) {
	tr := New()
	tr.Insert("ab", 2)
	tr.Insert("ac", 1)

	s := tr.MemoryStats()

	// root, a, b, c
	if s.NodeCount != 4 {
		t.Errorf("NodeCount = %d, want 4", s.NodeCount)
	}
	if s.WordCount != 2 {
		t.Errorf("WordCount = %d, want 2", s.WordCount)
	}
	// node a holds both words; b and c hold one each
	if s.SuggestionCount != 4 {
		t.Errorf("SuggestionCount = %d, want 4", s.SuggestionCount)
	}
	if s.ChildSmallCount != 4 || s.ChildLargeCount != 0 {
		t.Errorf("child split = (%d small, %d large), want (4, 0)",
			s.ChildSmallCount, s.ChildLargeCount)
	}
	if s.WordStorageBytes != 4 {
		t.Errorf("WordStorageBytes = %d, want 4", s.WordStorageBytes)
	}
	if s.TotalBytes <= 0 {
		t.Errorf("TotalBytes = %d, want > 0", s.TotalBytes)
	}
}

func TestMemoryStatsLargeTables(t *testing.T) {
	tr := New()
	for i, w := range []string{"a", "b", "c", "d", "e", "f"} {
		tr.Insert(w, uint32(i))
	}

	s := tr.MemoryStats()
	if s.ChildLargeCount != 1 {
		t.Errorf("ChildLargeCount = %d, want 1 (the root)", s.ChildLargeCount)
	}
	if s.ChildHeapBytes == 0 {
		t.Error("ChildHeapBytes = 0 despite a promoted table")
	}
}

func TestMemoryStatsIsReadOnly(t *testing.T) {
	tr := New()
	tr.Insert("stable", 3)
	tr.Insert("stack", 8)

	before := tr.Search("sta")
	first := tr.MemoryStats()
	second := tr.MemoryStats()
	after := tr.Search("sta")

	if first != second {
		t.Errorf("consecutive stats differ: %+v vs %+v", first, second)
	}
	if len(before) != len(after) || before[0] != after[0] {
		t.Errorf("stats collection changed search results: %v -> %v", before, after)
	}
}

func TestBuildReleasesSlack(t *testing.T) {
	pairs := []WeightedWord{{Word: "go", Weight: 1}, {Word: "gopher", Weight: 2}}
	tr := Build(pairs)

	s := tr.MemoryStats()
	if s.NodeCapacity != s.NodeCount {
		t.Errorf("NodeCapacity = %d, want %d after build shrink", s.NodeCapacity, s.NodeCount)
	}
}
