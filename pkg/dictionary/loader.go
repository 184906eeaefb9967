/*
Package dictionary loads weighted vocabularies for the trie.

The on-disk format is plain text, one entry per line, word and weight
separated by whitespace (tab in the shipped corpora):

	pizza	10
	pie	5

The loader is a harness concern: the trie itself never touches a file.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/prefixserve/prefixserve/pkg/trie"
)

// LoadFile reads up to maxWords weighted entries from a text vocabulary.
// maxWords <= 0 means no limit. Malformed lines are skipped with a warning
// rather than failing the whole load.
func LoadFile(path string, maxWords int) ([]trie.WeightedWord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary %s: %w", path, err)
	}
	defer file.Close()

	var pairs []trie.WeightedWord
	if maxWords > 0 {
		pairs = make([]trie.WeightedWord, 0, maxWords)
	}

	skipped := 0
	scanner := bufio.NewScanner(file)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if maxWords > 0 && len(pairs) >= maxWords {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		pair, err := ParseLine(line)
		if err != nil {
			skipped++
			log.Warnf("Skipping line %d of %s: %v", lineNo, path, err)
			continue
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	log.Debugf("Loaded %d entries from %s (%d skipped)", len(pairs), path, skipped)
	return pairs, nil
}

// ParseLine parses one "word<ws>weight" vocabulary line.
func ParseLine(line string) (trie.WeightedWord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return trie.WeightedWord{}, fmt.Errorf("expected 'word weight', got %d fields", len(fields))
	}
	weight, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return trie.WeightedWord{}, fmt.Errorf("bad weight %q: %w", fields[1], err)
	}
	return trie.WeightedWord{Word: fields[0], Weight: uint32(weight)}, nil
}

// BuildFromFile loads a vocabulary and bulk-builds a trie with the given
// limits in one step.
func BuildFromFile(path string, maxWords, maxWordLength, maxSuggestions int) (*trie.Trie, error) {
	pairs, err := LoadFile(path, maxWords)
	if err != nil {
		return nil, err
	}
	return trie.BuildWithConfig(pairs, maxWordLength, maxSuggestions), nil
}
