// Package cli handles cmd line input and suggestions for debugging and testing.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prefixserve/prefixserve/internal/logger"
	"github.com/prefixserve/prefixserve/pkg/trie"
)

// InputHandler processes user input from stdin, providing ranked
// suggestions for each entered prefix.
type InputHandler struct {
	trie            *trie.Trie
	log             *log.Logger
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters.
func NewInputHandler(t *trie.Trie, minLength, maxLength, limit int) *InputHandler {
	return &InputHandler{
		trie:            t,
		log:             logger.New("cli"),
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
	}
}

// Start begins the interface loop. It continuously prompts for input,
// reads a line from stdin, and passes the trimmed prefix to handleInput.
// The loop terminates when stdin is closed.
func (h *InputHandler) Start() error {
	h.log.Print("prefixserve CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a prefix and press Enter to see the suggestions (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		prefix, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		h.handleInput(prefix)
	}
}

// handleInput runs a single timed lookup and prints the ranked results.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) < h.minPrefixLength {
		h.log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		h.log.Errorf("Prefix too long: %s", prefix)
		return
	}

	start := time.Now()
	words := h.trie.Search(prefix)
	elapsed := time.Since(start)

	h.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(words) == 0 {
		h.log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	if len(words) > h.suggestLimit && h.suggestLimit > 0 {
		words = words[:h.suggestLimit]
	}

	h.log.Printf("Found %d suggestions for prefix '%s':", len(words), prefix)
	for i, w := range words {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		h.log.Printf("%2d. %s", i+1, clWord)
	}
}
