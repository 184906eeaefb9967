package trie

import "testing"

func TestWordStoreInternReusesIDs(t *testing.T) {
	s := newWordStore(0)
	a := s.intern("hello")
	b := s.intern("world")
	c := s.intern("hello")

	if a == b {
		t.Fatalf("distinct words share id %d", a)
	}
	if a != c {
		t.Fatalf("same word got ids %d and %d", a, c)
	}
	if s.count() != 2 {
		t.Fatalf("count = %d, want 2", s.count())
	}
}

func TestWordStoreResolve(t *testing.T) {
	s := newWordStore(4)
	words := []string{"ace", "bay", "cod", ""}
	for i, w := range words {
		if id := s.intern(w); id != wordID(i) {
			t.Fatalf("intern(%q) = %d, want dense id %d", w, id, i)
		}
	}
	for i, w := range words {
		if got := s.resolve(wordID(i)); got != w {
			t.Errorf("resolve(%d) = %q, want %q", i, got, w)
		}
	}
}

func TestWordStoreShrinkKeepsContents(t *testing.T) {
	s := newWordStore(1000)
	s.intern("one")
	s.intern("two")
	s.shrink()

	if cap(s.words) != 2 {
		t.Errorf("cap = %d, want 2 after shrink", cap(s.words))
	}
	if s.resolve(0) != "one" || s.resolve(1) != "two" {
		t.Error("shrink lost stored words")
	}
	if s.intern("one") != 0 {
		t.Error("shrink lost the id mapping")
	}
}
