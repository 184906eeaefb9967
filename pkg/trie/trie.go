/*
Package trie implements a weighted prefix trie for autocomplete.

Every inserted word carries an unsigned weight, and every node keeps a small
ranked list of the heaviest words passing through it. A prefix lookup is a
plain walk followed by one read of that list; the subtree below the prefix is
never visited and nothing is sorted at query time. The structure is tuned for
the read-heavy completion workload where a dictionary is built once (or
extended occasionally) and queried constantly.

Nodes live in a single growable arena and refer to each other by index, not
by pointer. Child lookup adapts per node: a tiny inline array scanned
linearly until a node collects more than a handful of children, then a map.
Words are interned once and referenced by a dense uint32 id; each ranked
entry packs (weight, id) into one uint64 so a node's suggestion list is a
flat, cache-friendly slice.

A Trie has exactly one owner. No internal locking is performed; callers that
need concurrent access must serialize externally.
*/
package trie

// Defaults applied by New and Build.
const (
	DefaultMaxWordLength  = 100
	DefaultMaxSuggestions = 10
)

// WeightedWord pairs a word with its weight for bulk construction.
type WeightedWord struct {
	Word   string
	Weight uint32
}

// Trie is a weighted prefix tree. The zero value is not usable; construct
// with New, NewWithConfig, Build or BuildWithConfig.
type Trie struct {
	nodes          []node
	store          wordStore
	maxWordLength  int
	maxSuggestions int
}

// New returns an empty trie with default limits.
func New() *Trie {
	return NewWithConfig(DefaultMaxWordLength, DefaultMaxSuggestions)
}

// NewWithConfig returns an empty trie with the given limits. maxWordLength
// bounds the byte length of accepted words; maxSuggestions bounds the ranked
// list kept at every node (and therefore the length of Search results).
// Both are fixed for the lifetime of the trie.
func NewWithConfig(maxWordLength, maxSuggestions int) *Trie {
	return &Trie{
		nodes:          []node{{}},
		store:          newWordStore(0),
		maxWordLength:  maxWordLength,
		maxSuggestions: maxSuggestions,
	}
}

// Build constructs a trie from a vocabulary with default limits.
func Build(pairs []WeightedWord) *Trie {
	return BuildWithConfig(pairs, DefaultMaxWordLength, DefaultMaxSuggestions)
}

// BuildWithConfig constructs a trie from a vocabulary. The result is
// logically identical to inserting each pair in order into an empty trie,
// but the arena and word store are pre-sized from the input size, and any
// growth slack is released once construction finishes.
func BuildWithConfig(pairs []WeightedWord, maxWordLength, maxSuggestions int) *Trie {
	count := len(pairs)
	nodeCap := count * 2
	if nodeCap < 1000 {
		nodeCap = 1000
	}
	t := &Trie{
		nodes:          make([]node, 1, nodeCap),
		store:          newWordStore(count),
		maxWordLength:  maxWordLength,
		maxSuggestions: maxSuggestions,
	}
	for _, p := range pairs {
		t.Insert(p.Word, p.Weight)
	}
	t.shrink()
	return t
}

// Insert adds word with the given weight and reports whether it was
// accepted. Words longer than the configured maximum byte length are
// rejected with no change to the trie. Re-inserting a known word with a
// higher weight re-ranks it everywhere it appears; a lower or equal weight
// leaves all rankings untouched.
//
// The empty string is accepted but has no visible effect: insertion ranks a
// word at each of its non-empty prefixes, of which it has none.
func (t *Trie) Insert(word string, weight uint32) bool {
	if len(word) > t.maxWordLength {
		return false
	}

	id := t.store.intern(word)
	entry := packSuggestion(weight, id)

	idx := rootIndex
	for _, r := range word {
		idx = t.getOrCreateChild(idx, r)
		t.nodes[idx].suggestions.update(entry, t.maxSuggestions)
	}
	return true
}

// Search returns up to maxSuggestions words starting with prefix, heaviest
// first. An unknown prefix yields an empty result. The returned slice is
// owned by the caller.
func (t *Trie) Search(prefix string) []string {
	idx := rootIndex
	for _, r := range prefix {
		child, ok := t.nodes[idx].children.get(r)
		if !ok {
			return nil
		}
		idx = child
	}

	list := t.nodes[idx].suggestions
	words := make([]string, len(list))
	for i, entry := range list {
		words[i] = t.store.resolve(entry.wordID())
	}
	return words
}

// MaxWordLength reports the configured word length limit in bytes.
func (t *Trie) MaxWordLength() int { return t.maxWordLength }

// MaxSuggestions reports the configured per-node ranking bound.
func (t *Trie) MaxSuggestions() int { return t.maxSuggestions }

// WordCount reports the number of distinct words interned so far.
func (t *Trie) WordCount() int { return t.store.count() }

// shrink copies the arena and word store into exactly-sized allocations,
// dropping the growth slack left over from bulk construction.
func (t *Trie) shrink() {
	nodes := make([]node, len(t.nodes))
	copy(nodes, t.nodes)
	t.nodes = nodes
	t.store.shrink()
}
