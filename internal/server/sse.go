package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// SSEWriter helps write Server-Sent Events. The pipeline emits progress
// events from multiple scoring goroutines at once, so writes are serialized
// with a mutex; one event is always one uninterrupted frame on the wire.
type SSEWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent("error", map[string]string{"error": message}) //nolint:errcheck
}

// WriteComplete signals the end of a screening stream. The final ranked
// result has already been sent as its own event; this only carries the run id.
func (s *SSEWriter) WriteComplete(runID string) {
	s.WriteEvent("complete", map[string]string{"run_id": runID}) //nolint:errcheck
}
