package trie

// wordID is the dense identity assigned to each distinct inserted word.
type wordID = uint32

// wordStore interns inserted words: one canonical copy per distinct string,
// addressed by a sequential id. Ids are never recycled, so resolve is a
// plain indexed read. Weights are not stored here; they live in the
// per-node suggestion entries.
type wordStore struct {
	words []string
	ids   map[string]wordID
}

func newWordStore(sizeHint int) wordStore {
	return wordStore{
		words: make([]string, 0, sizeHint),
		ids:   make(map[string]wordID, sizeHint),
	}
}

// intern returns the id for word, assigning the next sequential id on first
// sight.
func (s *wordStore) intern(word string) wordID {
	if id, ok := s.ids[word]; ok {
		return id
	}
	id := wordID(len(s.words))
	s.words = append(s.words, word)
	s.ids[word] = id
	return id
}

// resolve returns the canonical string for a previously issued id.
func (s *wordStore) resolve(id wordID) string {
	return s.words[id]
}

func (s *wordStore) count() int { return len(s.words) }

// shrink reallocates the backing storage to exactly the live size.
func (s *wordStore) shrink() {
	words := make([]string, len(s.words))
	copy(words, s.words)
	s.words = words

	ids := make(map[string]wordID, len(s.ids))
	for w, id := range s.ids {
		ids[w] = id
	}
	s.ids = ids
}
