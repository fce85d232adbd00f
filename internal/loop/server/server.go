// Package server hosts many independent games at once, one per connection,
// and shuts them down together.
package server

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/sound"
)

// ErrShuttingDown is returned by Register once Shutdown has started.
var ErrShuttingDown = errors.New("server is shutting down")

// Server tracks running game sessions. Every session owns its own
// loop.State, so games never share entities or scores.
type Server struct {
	mu           sync.Mutex
	sessions     map[int]*Session
	nextClientID int
	closed       bool
	seed         int64
	logger       *log.Logger
}

// Options configures the server.
type Options struct {
	Seed   int64       // RNG seed for every session, 0 picks one per session
	Logger *log.Logger // Discarded when nil
}

// Session is one registered game.
type Session struct {
	ID    int
	State *loop.State

	ctx    context.Context
	cancel context.CancelFunc
}

// Context is cancelled when the session is unregistered or the server shuts down.
func (s *Session) Context() context.Context {
	return s.ctx
}

// NewServer creates an empty server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		sessions:     make(map[int]*Session),
		nextClientID: 1,
		seed:         opts.Seed,
		logger:       logger,
	}
}

// Register starts a new game on the title screen. The session context
// derives from parent. audio receives the game's sound effects.
func (s *Server) Register(parent context.Context, username string, audio sound.Sink) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrShuttingDown
	}

	id := s.nextClientID
	s.nextClientID++

	ctx, cancel := context.WithCancel(parent)
	sess := &Session{
		ID: id,
		State: loop.NewState(loop.Options{
			Rand:   loop.NewRand(s.seed),
			Audio:  audio,
			Logger: s.logger.With("session", id, "user", username),
		}),
		ctx:    ctx,
		cancel: cancel,
	}
	s.sessions[id] = sess

	s.logger.Debug("session registered", "session", id, "user", username, "active", len(s.sessions))
	return sess, nil
}

// Unregister removes a session and cancels its context.
func (s *Server) Unregister(sess *Session) {
	s.mu.Lock()
	delete(s.sessions, sess.ID)
	remaining := len(s.sessions)
	s.mu.Unlock()

	sess.cancel()
	s.logger.Debug("session unregistered", "session", sess.ID, "active", remaining)
}

// Active returns the number of registered sessions.
func (s *Server) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown stops accepting sessions, cancels every running one and waits for
// them to unregister, up to the given timeout. Returns true if all sessions
// ended in time.
func (s *Server) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	s.closed = true
	for _, sess := range s.sessions {
		sess.cancel()
	}
	s.mu.Unlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Active() == 0 {
			return true
		}
		select {
		case <-deadline:
			s.logger.Warn("sessions still running after shutdown timeout", "active", s.Active())
			return false
		case <-ticker.C:
		}
	}
}
