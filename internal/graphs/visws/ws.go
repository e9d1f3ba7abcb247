package visws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/psidex/dlgraph/internal/graphs"
	. "github.com/psidex/dlgraph/internal/lib"
)

// JSONWriter is the part of lib.ThreadSafeWebSocket the streamer needs.
type JSONWriter interface {
	WriteJSON(v interface{}) error
}

// Streamer defines a Renderer that sends every node and edge over a WebSocket to the
// live page as soon as it is added. SaveGraph sends the final "done" message; the
// path is only used as the graph name shown by the page.
type Streamer struct {
	ctx       context.Context
	logger    *slog.Logger
	mu        *sync.Mutex
	ws        JSONWriter
	delay     time.Duration
	seenNodes Set[int]
	nodeCount int
	edgeCount int
	// First write error, after which nothing else is sent.
	err error
}

var _ graphs.Renderer = (*Streamer)(nil)

// NewStreamer returns a Streamer that waits delay after every item. Cancelling ctx
// stops the stream.
func NewStreamer(ctx context.Context, logger *slog.Logger, ws JSONWriter, delay time.Duration) *Streamer {
	return &Streamer{
		ctx:       ctx,
		logger:    logger,
		mu:        &sync.Mutex{},
		ws:        ws,
		delay:     delay,
		seenNodes: NewSet[int](),
	}
}

// send must be called with s.mu held.
func (s *Streamer) send(msg message) bool {
	if s.err != nil {
		return false
	}
	if err := s.ctx.Err(); err != nil {
		s.err = err
		return false
	}
	if err := s.ws.WriteJSON(msg); err != nil {
		s.logger.Error("ws write failed", "type", msg.Type, "error", err)
		s.err = err
		return false
	}
	return true
}

// pause must be called with s.mu held.
func (s *Streamer) pause() {
	if s.delay <= 0 {
		return
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-s.ctx.Done():
	}
}

func (s *Streamer) AddNode(id int, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seenNodes.Contains(id) {
		return
	}
	if s.send(nodeMessage(id, label)) {
		s.seenNodes.Add(id)
		s.nodeCount++
		s.pause()
	}
}

func (s *Streamer) AddEdge(from, to int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.send(edgeMessage(from, to)) {
		s.edgeCount++
		s.pause()
	}
}

func (s *Streamer) SetOptions(opts graphs.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send(optionsMessage(opts))
}

func (s *Streamer) SaveGraph(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.send(doneMessage(name, s.nodeCount, s.edgeCount)) {
		s.logger.Debug("stream done", "nodes", s.nodeCount, "edges", s.edgeCount)
	}
	return s.err
}
