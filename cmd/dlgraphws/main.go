package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/websocket"

	"github.com/psidex/dlgraph/internal/dlgraph"
	"github.com/psidex/dlgraph/internal/graphs"
	"github.com/psidex/dlgraph/internal/graphs/visws"
	"github.com/psidex/dlgraph/internal/lib"
	"github.com/psidex/dlgraph/internal/webserver"
)

var (
	upgrader = websocket.Upgrader{}
)

type server struct {
	logger *slog.Logger
	input  string
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	input := flag.String("i", "sample.dl", "the edge list to stream")
	address := flag.String("b", "127.0.0.1:8080", "the ip:port to bind the webserver to")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")

	flag.Parse()

	level, err := lib.ParseSLogLevel(*logLevel)
	if err != nil {
		log.Fatalf("invalid log level: %s", *logLevel)
	}

	s := &server{
		logger: lib.NewLogger(os.Stderr, level, false),
		input:  *input,
	}

	http.HandleFunc("/", visws.ServePage)
	http.HandleFunc("/ws", s.session)

	s.logger.Info("Listening", "address", *address, "input", s.input)
	log.Fatal(http.ListenAndServe(*address, nil))
}

// session builds a fresh graph from the input for every connection and streams it.
func (s *server) session(w http.ResponseWriter, r *http.Request) {
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("ws upgrade failed", "error", err)
		return
	}

	ws := lib.NewThreadSafeWebSocket(c)
	defer ws.Close()

	logger := s.logger.With("remote", r.RemoteAddr)

	_, msg, err := ws.ReadMessage()
	if err != nil {
		logger.Error("ws cfg read failed", "error", err)
		return
	}

	cfg, err := webserver.ParseSessionConfig(msg)
	if err != nil {
		logger.Error("ws cfg invalid", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		// Client can send anything and it will cancel the session.
		// Warning: As this is the thread-safe version, this will block any other reads.
		_, _, _ = ws.ReadMessage()
		// If we never read a message, the outer function call will return, closing the
		// WS and causing ReadMessage to return an error, which will end this goroutine.
		cancel()
	}()

	g, err := dlgraph.BuildFile(logger, s.input)
	if err != nil {
		logger.Error("Failed to build graph", "error", err)
		return
	}

	streamer := visws.NewStreamer(ctx, logger, ws, cfg.ReplayDelay.Duration)
	if err := dlgraph.Render(g, streamer, graphs.DefaultOptions(), s.input); err != nil {
		logger.Error("Failed to stream graph", "error", err)
		return
	}

	logger.Info("Streamed graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())
}
