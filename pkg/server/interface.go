/*
Package server implements msgpack IPC for prefix completion.

The server speaks binary msgpack over stdin/stdout on a strict
request/response model: the client writes one encoded Request, the server
answers with exactly one encoded response. Requests carry an ID that is
echoed back so clients can pipeline.

A completion request:

	{"id": "req_001", "op": "complete", "p": "piz", "l": 10}

is answered with ranked suggestions and the lookup time in microseconds:

	{"id": "req_001", "s": [{"w": "pizza", "r": 1}], "c": 1, "t": 12}

Supported ops are "complete", "insert" (add or re-weigh one word),
"stats" (memory footprint of the trie) and "health". The trie has no
internal locking; the synchronous request loop is what serializes access.
*/
package server

// Request is the single message type clients send.
type Request struct {
	ID     string `msgpack:"id"`
	Op     string `msgpack:"op"`
	Prefix string `msgpack:"p,omitempty"`
	Word   string `msgpack:"w,omitempty"`
	Weight uint32 `msgpack:"wt,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// Suggestion is one ranked completion in a response.
type Suggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompleteResponse answers a "complete" request.
type CompleteResponse struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// InsertResponse answers an "insert" request. Accepted is false only for
// words over the trie's length limit.
type InsertResponse struct {
	ID        string `msgpack:"id"`
	Accepted  bool   `msgpack:"ok"`
	WordCount int    `msgpack:"n"`
}

// StatsResponse answers a "stats" request with the trie's estimated
// memory footprint.
type StatsResponse struct {
	ID                  string `msgpack:"id"`
	NodeCount           int    `msgpack:"nodes"`
	NodeCapacity        int    `msgpack:"node_cap"`
	WordCount           int    `msgpack:"words"`
	WordStorageBytes    int    `msgpack:"word_bytes"`
	SuggestionCount     int    `msgpack:"suggs"`
	SuggestionHeapBytes int    `msgpack:"sugg_bytes"`
	ChildSmallCount     int    `msgpack:"small_tables"`
	ChildLargeCount     int    `msgpack:"large_tables"`
	TotalBytes          int    `msgpack:"total_bytes"`
}

// StatusResponse reports server lifecycle and health.
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	ID    string `msgpack:"id,omitempty"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
