package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomz197/shmup/internal/loop"
	"github.com/tomz197/shmup/internal/object"
	"github.com/tomz197/shmup/internal/sound"
)

func TestRegisterCreatesIndependentGames(t *testing.T) {
	srv := NewServer(Options{Seed: 1})

	a, err := srv.Register(context.Background(), "alice", sound.Mute{})
	if err != nil {
		t.Fatalf("register a: %v", err)
	}
	b, err := srv.Register(context.Background(), "bob", sound.Mute{})
	if err != nil {
		t.Fatalf("register b: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("session ids should differ, both %d", a.ID)
	}
	if a.State == b.State {
		t.Fatal("sessions should not share state")
	}
	if got := srv.Active(); got != 2 {
		t.Fatalf("Active() = %d, want 2", got)
	}

	a.State.Update(object.Input{Confirm: true})
	if a.State.GameState != loop.GameStatePlaying {
		t.Fatalf("a should be playing, got %v", a.State.GameState)
	}
	if b.State.GameState != loop.GameStateTitle {
		t.Fatalf("b should still be on title, got %v", b.State.GameState)
	}
}

func TestUnregisterCancelsSession(t *testing.T) {
	srv := NewServer(Options{})
	sess, err := srv.Register(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	srv.Unregister(sess)

	if got := srv.Active(); got != 0 {
		t.Fatalf("Active() = %d, want 0", got)
	}
	select {
	case <-sess.Context().Done():
	default:
		t.Fatal("session context should be cancelled")
	}
}

func TestSessionFollowsParentContext(t *testing.T) {
	srv := NewServer(Options{})
	parent, cancel := context.WithCancel(context.Background())
	sess, err := srv.Register(parent, "alice", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	cancel()

	select {
	case <-sess.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("session context should follow its parent")
	}
}

func TestShutdownWaitsForSessions(t *testing.T) {
	srv := NewServer(Options{})
	sess, err := srv.Register(context.Background(), "alice", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	go func() {
		<-sess.Context().Done()
		srv.Unregister(sess)
	}()

	if !srv.Shutdown(time.Second) {
		t.Fatal("Shutdown should finish once the session unregisters")
	}
	if got := srv.Active(); got != 0 {
		t.Fatalf("Active() = %d, want 0", got)
	}
}

func TestShutdownTimeout(t *testing.T) {
	srv := NewServer(Options{})
	if _, err := srv.Register(context.Background(), "stuck", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	if srv.Shutdown(50 * time.Millisecond) {
		t.Fatal("Shutdown should report sessions that never unregistered")
	}
}

func TestRegisterAfterShutdown(t *testing.T) {
	srv := NewServer(Options{})
	if !srv.Shutdown(time.Second) {
		t.Fatal("empty server should shut down immediately")
	}

	_, err := srv.Register(context.Background(), "late", nil)
	if !errors.Is(err, ErrShuttingDown) {
		t.Fatalf("err = %v, want ErrShuttingDown", err)
	}
}
