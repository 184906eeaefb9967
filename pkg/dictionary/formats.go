package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// minVocabularySize is the smallest file that can hold one entry.
const minVocabularySize = 3

// ValidateVocabularyFile checks that a path looks like a loadable text
// vocabulary before a full read is attempted.
func ValidateVocabularyFile(filename string) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	if fileInfo.Size() < minVocabularySize {
		return fmt.Errorf("file %s is too small (%d bytes) to hold a vocabulary entry",
			filename, fileInfo.Size())
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".txt" && ext != ".tsv" {
		return fmt.Errorf("file %s has extension %s, expected .txt or .tsv", filename, ext)
	}

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	// The first non-empty line has to parse; a wrong-format file fails
	// here instead of producing thousands of skip warnings later.
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := ParseLine(line); err != nil {
			return fmt.Errorf("file %s does not look like a vocabulary: %w", filename, err)
		}
		log.Debugf("Vocabulary file %s validated", filename)
		return nil
	}
	return fmt.Errorf("file %s contains no vocabulary entries", filename)
}
