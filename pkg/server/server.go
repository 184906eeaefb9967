package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/prefixserve/prefixserve/pkg/config"
	"github.com/prefixserve/prefixserve/pkg/trie"
)

// Server handles the IPC for prefix completions.
type Server struct {
	trie *trie.Trie
	cfg  *config.Config
	dec  *msgpack.Decoder
	enc  *msgpack.Encoder
}

// NewServer creates a completion server using stdin/stdout for IPC.
func NewServer(t *trie.Trie, cfg *config.Config) *Server {
	return NewServerWithIO(t, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on explicit streams, used by tests.
func NewServerWithIO(t *trie.Trie, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		trie: t,
		cfg:  cfg,
		dec:  msgpack.NewDecoder(r),
		enc:  msgpack.NewEncoder(w),
	}
}

// Start begins the synchronous request loop. It returns nil when the
// client closes its end of the pipe.
func (s *Server) Start() error {
	log.Debug("Starting IPC server")

	s.send(StatusResponse{Status: "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Client disconnected (EOF)")
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	switch req.Op {
	case "complete":
		s.handleComplete(req)
	case "insert":
		s.handleInsert(req)
	case "stats":
		s.handleStats(req)
	case "health":
		s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleComplete(req Request) {
	prefix := req.Prefix

	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		log.Debug("Prefix too short in request")
		return
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(req.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		log.Debug("Prefix too long in request")
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.CLI.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	words := s.trie.Search(prefix)
	elapsed := time.Since(start)

	if len(words) > limit {
		words = words[:limit]
	}

	suggestions := make([]Suggestion, len(words))
	for i, w := range words {
		suggestions[i] = Suggestion{Word: w, Rank: uint16(i + 1)}
	}

	s.send(CompleteResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleInsert(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'w' parameter", 400)
		return
	}

	accepted := s.trie.Insert(req.Word, req.Weight)
	if !accepted {
		log.Debugf("Rejected over-length word (%d bytes)", len(req.Word))
	}

	s.send(InsertResponse{
		ID:        req.ID,
		Accepted:  accepted,
		WordCount: s.trie.WordCount(),
	})
}

func (s *Server) handleStats(req Request) {
	stats := s.trie.MemoryStats()
	s.send(StatsResponse{
		ID:                  req.ID,
		NodeCount:           stats.NodeCount,
		NodeCapacity:        stats.NodeCapacity,
		WordCount:           stats.WordCount,
		WordStorageBytes:    stats.WordStorageBytes,
		SuggestionCount:     stats.SuggestionCount,
		SuggestionHeapBytes: stats.SuggestionHeapBytes,
		ChildSmallCount:     stats.ChildSmallCount,
		ChildLargeCount:     stats.ChildLargeCount,
		TotalBytes:          stats.TotalBytes,
	})
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
