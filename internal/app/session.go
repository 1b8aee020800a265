package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"forest-guardians/internal/defs"
	"forest-guardians/internal/types"
	"forest-guardians/pkg/board"
	"forest-guardians/pkg/logger"
)

// ErrSessionClosed is returned by commands sent after Run has returned.
var ErrSessionClosed = errors.New("session closed")

type command struct {
	fn       func(*Game)
	finished chan struct{}
}

// Session owns a Game in a single goroutine. Commands from other goroutines are queued
// and executed strictly between ticks; readers get the snapshot taken after the last
// tick or command.
type Session struct {
	game     *Game
	interval time.Duration
	commands chan command
	done     chan struct{}

	mu       sync.RWMutex
	snapshot Snapshot
}

func NewSession(game *Game, tickInterval time.Duration) *Session {
	return &Session{
		game:     game,
		interval: tickInterval,
		commands: make(chan command),
		done:     make(chan struct{}),
		snapshot: game.Snapshot(),
	}
}

// Run ticks the simulation until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log := logger.WithComponent("session")
	log.WithField("interval", s.interval).Info("session started")
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			log.Info("session stopped")
			return ctx.Err()
		case cmd := <-s.commands:
			cmd.fn(s.game)
			s.publish()
			close(cmd.finished)
		case now := <-ticker.C:
			s.game.Update(now.Sub(last).Seconds())
			last = now
			s.publish()
		}
	}
}

func (s *Session) publish() {
	snap := s.game.Snapshot()
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
}

// Snapshot returns the latest published state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// exec runs fn on the session goroutine and waits until its effect is published.
func (s *Session) exec(ctx context.Context, fn func(*Game)) error {
	cmd := command{fn: fn, finished: make(chan struct{})}
	select {
	case s.commands <- cmd:
	case <-s.done:
		return ErrSessionClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cmd.finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) BuildTower(ctx context.Context, tileID board.TileID, element defs.Element) (types.EntityID, error) {
	var (
		id  types.EntityID
		err error
	)
	if execErr := s.exec(ctx, func(g *Game) { id, err = g.BuildTower(tileID, element) }); execErr != nil {
		return 0, execErr
	}
	return id, err
}

func (s *Session) UpgradeTower(ctx context.Context, id types.EntityID) error {
	var err error
	if execErr := s.exec(ctx, func(g *Game) { err = g.UpgradeTower(id) }); execErr != nil {
		return execErr
	}
	return err
}

func (s *Session) FuseTowers(ctx context.Context, a, b types.EntityID) (types.EntityID, error) {
	var (
		id  types.EntityID
		err error
	)
	if execErr := s.exec(ctx, func(g *Game) { id, err = g.FuseTowers(a, b) }); execErr != nil {
		return 0, execErr
	}
	return id, err
}

func (s *Session) StartWave(ctx context.Context) error {
	var err error
	if execErr := s.exec(ctx, func(g *Game) { err = g.StartWave() }); execErr != nil {
		return execErr
	}
	return err
}

func (s *Session) Reset(ctx context.Context) error {
	var err error
	if execErr := s.exec(ctx, func(g *Game) { err = g.Reset() }); execErr != nil {
		return execErr
	}
	return err
}
