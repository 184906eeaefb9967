/*
Package main implements the prefixserve completion server and CLI.

prefixserve provides fast prefix completion over a weighted vocabulary. The
engine is an arena-backed trie that keeps a bounded ranked suggestion list
at every node, so lookups cost one walk of the prefix regardless of
vocabulary size. The binary can run as a msgpack IPC server for editor
integration, as an interactive CLI for testing, or as a one-shot memory
report over a built vocabulary.

# Usage

Start the server over a vocabulary file:

	prefixserve -data /path/to/words.txt

Run in CLI mode for interactive testing:

	prefixserve -data words.txt -c -limit 10

Print the memory footprint of the built trie and exit:

	prefixserve -data words.txt -mem

The vocabulary is plain text with one "word<TAB>weight" entry per line.

# Configuration

Runtime configuration is a TOML file covering the trie limits, vocabulary
loading and server parameters:

	[trie]
	max_word_length = 100
	max_suggestions = 10

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60

The config file is created with defaults if it doesn't exist.

# IPC Protocol

Server mode speaks msgpack over stdin/stdout. A completion request:

	{"id": "req1", "op": "complete", "p": "piz", "l": 10}

is answered with ranked suggestions and timing in microseconds:

	{"id": "req1", "s": [{"w": "pizza", "r": 1}], "c": 1, "t": 12}

"insert", "stats" and "health" ops are also supported; see pkg/server.
*/
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/prefixserve/prefixserve/internal/cli"
	"github.com/prefixserve/prefixserve/internal/logger"
	"github.com/prefixserve/prefixserve/pkg/config"
	"github.com/prefixserve/prefixserve/pkg/dictionary"
	"github.com/prefixserve/prefixserve/pkg/server"
	"github.com/prefixserve/prefixserve/pkg/trie"
)

// Version is set at build time via -ldflags.
var Version = "dev"

const gh = "https://github.com/prefixserve/prefixserve"

func main() {
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("v", false, "Show version information")
	debugMode := flag.Bool("d", false, "Enable debug logging")
	cliMode := flag.Bool("c", false, "Run in interactive CLI mode instead of IPC server")
	memReport := flag.Bool("mem", false, "Build the trie, print a memory report and exit")
	dataPath := flag.String("data", "", "Path to a vocabulary file (word<TAB>weight lines)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Maximum suggestions shown in CLI mode")
	minPrefix := flag.Int("prmin", defaultConfig.Server.MinPrefix, "Minimum prefix length for suggestions")
	maxPrefix := flag.Int("prmax", defaultConfig.Server.MaxPrefix, "Maximum prefix length for suggestions")
	wordLimit := flag.Int("words", 0, "Maximum number of words to load (0 uses the config value)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	vocabPath := *dataPath
	if vocabPath == "" {
		vocabPath = cfg.Dict.Path
	}
	maxWords := *wordLimit
	if maxWords == 0 {
		maxWords = cfg.Dict.MaxWords
	}

	var t *trie.Trie
	if vocabPath != "" {
		if err := dictionary.ValidateVocabularyFile(vocabPath); err != nil {
			log.Fatalf("Vocabulary validation failed: %v", err)
		}
		log.Debugf("Building trie: path=[%s], maxWords=[%d]", vocabPath, maxWords)
		t, err = dictionary.BuildFromFile(vocabPath, maxWords, cfg.Trie.MaxWordLength, cfg.Trie.MaxSuggestions)
		if err != nil {
			log.Fatalf("Failed to build trie: %v", err)
		}
	} else {
		log.Warn("No vocabulary specified, starting with an empty trie...")
		t = trie.NewWithConfig(cfg.Trie.MaxWordLength, cfg.Trie.MaxSuggestions)
	}

	if *memReport {
		printMemoryReport(t)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit)

		inputHandler := cli.NewInputHandler(t, *minPrefix, *maxPrefix, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	showStartupInfo(vocabPath, t)

	srv := server.NewServer(t, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ prefixserve ] Weighted prefix completion, served fast.")
	l.Print("", "version", Version)
	l.Print("Github Repo", "gh", gh)
	l.Print("")
	l.Print("use -h to see available options")
}

// printMemoryReport dumps the per-component footprint of a built trie.
func printMemoryReport(t *trie.Trie) {
	s := t.MemoryStats()

	log.SetLevel(log.InfoLevel)
	log.Printf("%-28s %12s", "Component", "Bytes")
	log.Printf("%-28s %12d", "Nodes (structs)", s.NodeStructBytes)
	log.Printf("%-28s %12d", "Word storage", s.WordStorageBytes)
	log.Printf("%-28s %12d", "Word store total", s.WordCapacityBytes+s.WordMapBytes)
	log.Printf("%-28s %12d", "Suggestion lists", s.SuggestionHeapBytes)
	log.Printf("%-28s %12d", "Child tables (maps)", s.ChildHeapBytes)
	log.Printf("%-28s %12d", "Total estimate", s.TotalBytes)
	log.Print("")
	log.Printf("nodes: %d (capacity %d)", s.NodeCount, s.NodeCapacity)
	log.Printf("words: %d", s.WordCount)
	log.Printf("suggestion entries: %d", s.SuggestionCount)
	log.Printf("child tables: %d inline, %d promoted", s.ChildSmallCount, s.ChildLargeCount)
}

// showStartupInfo displays basic info before the IPC loop takes stdin.
func showStartupInfo(vocabPath string, t *trie.Trie) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	if vocabPath != "" {
		log.Infof("vocabulary: ( %s )", vocabPath)
	}
	log.Infof("words loaded: %d", t.WordCount())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
