package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/application"
	"github.com/paulkoehlerdev/VenueMap/pkg/venuemap/domain/entities"
)

const (
	sendBufferSize = 256
	maxEventSize   = 1 << 20
	writeWait      = 10 * time.Second
)

// sessionRoute upgrades /session to a websocket and runs one application
// session per connection. Commands are written by a single goroutine.
type sessionRoute struct {
	shutdown context.Context
	app      application.Application
	logger   *slog.Logger
	upgrader websocket.Upgrader

	// mu orders admissions against wait so no wg.Add follows wg.Wait.
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func newSessionRoute(shutdown context.Context, app application.Application, logger *slog.Logger) *sessionRoute {
	return &sessionRoute{
		shutdown: shutdown,
		app:      app,
		logger:   logger,
	}
}

// begin admits one connection, false once shutdown started.
func (r *sessionRoute) begin() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.shutdown.Err() != nil {
		return false
	}
	r.wg.Add(1)
	return true
}

func (r *sessionRoute) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !r.begin() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}
	defer r.wg.Done()

	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Warn("failed to upgrade session connection", "error", err, "ip", req.RemoteAddr)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxEventSize)

	ctx, cancel := context.WithCancel(r.shutdown)
	out := make(chan entities.Command, sendBufferSize)
	sink := func(cmd entities.Command) {
		select {
		case out <- cmd:
		case <-ctx.Done():
		}
	}

	writerDone := make(chan struct{})
	go r.writeLoop(ctx, cancel, conn, out, writerDone)
	defer func() {
		cancel()
		<-writerDone
	}()

	session, err := r.app.OpenSession(ctx, sink)
	if err != nil {
		r.logger.Error("failed to open session", "error", err)
		sink(entities.Command{Op: entities.OpError, Message: err.Error()})
		return
	}
	defer session.Close()

	logger := r.logger.With("session", session.ID)

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("session connection closed unexpectedly", "error", err)
			}
			return
		}

		var event entities.Event
		if err := json.Unmarshal(msg, &event); err != nil {
			logger.Warn("failed to decode session event", "error", err)
			sink(entities.Command{Op: entities.OpError, Message: "malformed event"})
			continue
		}

		if err := session.Handle(event); err != nil {
			logger.Warn("failed to handle session event", "type", event.Type, "error", err)
			sink(entities.Command{Op: entities.OpError, Message: err.Error()})
		}
	}
}

func (r *sessionRoute) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out <-chan entities.Command, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case cmd := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(cmd); err != nil {
				r.logger.Debug("failed to write session command", "op", cmd.Op, "error", err)
				cancel()
				return
			}
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			// unblocks the read loop
			_ = conn.Close()
			return
		}
	}
}

// wait refuses new connections and blocks until every admitted one has returned.
func (r *sessionRoute) wait() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.wg.Wait()
}
