package trie

import "sort"

// packedSuggestion is one ranked entry: weight in the high 32 bits, word id
// in the low 32. Packing makes the descending-weight order a plain numeric
// comparison and keeps a node's list a flat slice of machine words.
type packedSuggestion uint64

func packSuggestion(weight uint32, id wordID) packedSuggestion {
	return packedSuggestion(uint64(weight)<<32 | uint64(id))
}

func (p packedSuggestion) weight() uint32 { return uint32(p >> 32) }
func (p packedSuggestion) wordID() wordID { return wordID(p) }

// suggestionList is a node's ranked suggestions: sorted by strictly
// descending weight, at most one entry per word id, at most maxSuggestions
// entries. Equal weights keep insertion order.
type suggestionList []packedSuggestion

// update folds entry into the list, preserving the invariants above.
// A re-insert with a weight not greater than the stored one is a no-op; a
// greater weight replaces the stale entry at its new position. The list is
// truncated from the tail when it grows past maxSuggestions.
func (l *suggestionList) update(entry packedSuggestion, maxSuggestions int) {
	list := *l
	id := entry.wordID()
	weight := entry.weight()

	for i, s := range list {
		if s.wordID() != id {
			continue
		}
		if weight <= s.weight() {
			return
		}
		list = append(list[:i], list[i+1:]...)
		break
	}

	pos := sort.Search(len(list), func(i int) bool {
		return list[i].weight() < weight
	})

	list = append(list, 0)
	copy(list[pos+1:], list[pos:])
	list[pos] = entry

	if len(list) > maxSuggestions {
		list = list[:maxSuggestions]
	}
	*l = list
}
