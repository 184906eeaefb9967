package trie

import "testing"

func TestPackRoundTrip(t *testing.T) {
	cases := []struct {
		weight uint32
		id     wordID
	}{
		{0, 0},
		{1, 2},
		{^uint32(0), ^uint32(0)},
		{500, 123456},
	}
	for _, c := range cases {
		p := packSuggestion(c.weight, c.id)
		if p.weight() != c.weight || p.wordID() != c.id {
			t.Errorf("pack(%d, %d) unpacked to (%d, %d)", c.weight, c.id, p.weight(), p.wordID())
		}
	}
}

func TestUpdateKeepsDescendingOrder(t *testing.T) {
	var l suggestionList
	l.update(packSuggestion(5, 0), 10)
	l.update(packSuggestion(9, 1), 10)
	l.update(packSuggestion(1, 2), 10)
	l.update(packSuggestion(7, 3), 10)

	wantIDs := []wordID{1, 3, 0, 2}
	if len(l) != len(wantIDs) {
		t.Fatalf("len = %d, want %d", len(l), len(wantIDs))
	}
	for i, id := range wantIDs {
		if l[i].wordID() != id {
			t.Errorf("entry %d has id %d, want %d", i, l[i].wordID(), id)
		}
	}
}

func TestUpdateEqualWeightsKeepInsertionOrder(t *testing.T) {
	var l suggestionList
	l.update(packSuggestion(5, 0), 10)
	l.update(packSuggestion(5, 1), 10)
	l.update(packSuggestion(5, 2), 10)

	for i, want := range []wordID{0, 1, 2} {
		if l[i].wordID() != want {
			t.Errorf("entry %d has id %d, want %d", i, l[i].wordID(), want)
		}
	}
}

func TestUpdateDeduplicates(t *testing.T) {
	var l suggestionList
	l.update(packSuggestion(5, 7), 10)
	l.update(packSuggestion(3, 7), 10) // lower: no-op
	l.update(packSuggestion(5, 7), 10) // equal: no-op

	if len(l) != 1 || l[0].weight() != 5 {
		t.Fatalf("list = %v, want single entry with weight 5", l)
	}

	l.update(packSuggestion(8, 7), 10) // higher: replaces
	if len(l) != 1 || l[0].weight() != 8 {
		t.Fatalf("list = %v, want single entry with weight 8", l)
	}
}

func TestUpdateTruncatesTail(t *testing.T) {
	var l suggestionList
	for i := 0; i < 6; i++ {
		l.update(packSuggestion(uint32(i), wordID(i)), 3)
	}

	if len(l) != 3 {
		t.Fatalf("len = %d, want 3", len(l))
	}
	// The three heaviest survive, heaviest first.
	for i, want := range []uint32{5, 4, 3} {
		if l[i].weight() != want {
			t.Errorf("entry %d has weight %d, want %d", i, l[i].weight(), want)
		}
	}
}

func TestUpdateNeverDropsHeavierForLighter(t *testing.T) {
	var l suggestionList
	for i := 0; i < 3; i++ {
		l.update(packSuggestion(100+uint32(i), wordID(i)), 3)
	}
	l.update(packSuggestion(1, 50), 3)

	for _, s := range l {
		if s.weight() < 100 {
			t.Fatalf("light entry displaced a heavy one: %v", l)
		}
	}
}
