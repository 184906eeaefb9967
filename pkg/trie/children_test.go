package trie

import "testing"

func TestChildTableInlineLookup(t *testing.T) {
	var c childTable
	for i, r := range []rune{'a', 'b', 'c', 'd'} {
		c.set(r, nodeIndex(i+1))
	}

	if c.isLarge() {
		t.Fatal("table promoted below the inline capacity")
	}
	if c.len() != 4 {
		t.Fatalf("len = %d, want 4", c.len())
	}
	for i, r := range []rune{'a', 'b', 'c', 'd'} {
		idx, ok := c.get(r)
		if !ok || idx != nodeIndex(i+1) {
			t.Errorf("get(%q) = (%d, %v), want (%d, true)", r, idx, ok, i+1)
		}
	}
	if _, ok := c.get('z'); ok {
		t.Error("get of absent child succeeded")
	}
}

func TestChildTablePromotion(t *testing.T) {
	var c childTable
	runes := []rune{'a', 'b', 'c', 'd', 'e', 'f'}
	for i, r := range runes {
		c.set(r, nodeIndex(i+1))
	}

	if !c.isLarge() {
		t.Fatal("table did not promote past the inline capacity")
	}
	if c.len() != len(runes) {
		t.Fatalf("len = %d, want %d", c.len(), len(runes))
	}
	// Every entry present before and after the promotion must survive it.
	for i, r := range runes {
		idx, ok := c.get(r)
		if !ok || idx != nodeIndex(i+1) {
			t.Errorf("get(%q) = (%d, %v), want (%d, true)", r, idx, ok, i+1)
		}
	}
}

func TestChildTableOverwrite(t *testing.T) {
	var c childTable
	c.set('x', 1)
	c.set('x', 2)

	if c.len() != 1 {
		t.Fatalf("len = %d, want 1 after overwrite", c.len())
	}
	if idx, _ := c.get('x'); idx != 2 {
		t.Errorf("get(x) = %d, want 2", idx)
	}

	for i, r := range []rune{'a', 'b', 'c', 'd', 'e'} {
		c.set(r, nodeIndex(10+i))
	}
	c.set('a', 99)
	if idx, _ := c.get('a'); idx != 99 {
		t.Errorf("get(a) = %d, want 99 after overwrite in map form", idx)
	}
}

func TestHighFanOutNode(t *testing.T) {
	tr := New()
	words := []string{"an", "be", "cot", "dip", "elm", "fog", "gut", "hex"}
	for i, w := range words {
		tr.Insert(w, uint32(len(words)-i))
	}

	// The root has promoted; every word must still resolve through it.
	for _, w := range words {
		got := tr.Search(w[:1])
		if len(got) != 1 || got[0] != w {
			t.Errorf("Search(%q) = %v, want [%s]", w[:1], got, w)
		}
	}
}
