// internal/service/sessions.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
	"github.com/remaimber-it/vocabdrill/internal/store"
)

var ErrSessionNotFound = errors.New("session not found")

// WordStore is the slice of the store the session service needs.
type WordStore interface {
	ListWords(ctx context.Context) ([]vocabulary.Item, error)
	ListWordsByIDs(ctx context.Context, ids []string) ([]vocabulary.Item, error)
	SaveSessionResult(ctx context.Context, r store.SessionResult) error
}

// StartRequest describes a session to open.
type StartRequest struct {
	Mode        quiz.Mode
	TotalRounds int      // 0 = configured default
	WordIDs     []string // empty = the whole collection
}

type liveSession struct {
	session   *quiz.Session
	startedAt time.Time
	lastSeen  atomic.Int64 // unix nanoseconds of the last lookup
}

func (l *liveSession) touch() { l.lastSeen.Store(time.Now().UnixNano()) }

// SessionService keeps the live quiz sessions. Each session is forgotten
// once it finishes or is abandoned, after its outcome has been saved.
// Sessions nobody looks at are abandoned by ExpireIdle.
type SessionService struct {
	store    WordStore
	speaker  quiz.Speaker
	defaults quiz.Config
	logger   *slog.Logger
	opts     []quiz.Option

	mu       sync.RWMutex
	sessions map[string]*liveSession // sessionID → session
}

// NewSessionService creates a SessionService. opts are applied to every
// session it opens.
func NewSessionService(s WordStore, speaker quiz.Speaker, defaults quiz.Config, logger *slog.Logger, opts ...quiz.Option) *SessionService {
	return &SessionService{
		store:    s,
		speaker:  speaker,
		defaults: defaults,
		logger:   logger,
		opts:     opts,
		sessions: make(map[string]*liveSession),
	}
}

// Start loads the pool, opens a session and deals its first round.
// A pool below the mode's minimum returns quiz.ErrInsufficientPool.
func (ss *SessionService) Start(ctx context.Context, req StartRequest) (*quiz.Session, error) {
	pool, err := ss.loadPool(ctx, req.WordIDs)
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}

	cfg := ss.defaults
	cfg.Mode = req.Mode
	if req.TotalRounds > 0 {
		cfg.TotalRounds = req.TotalRounds
	}

	id := uuid.NewString()
	opts := append([]quiz.Option{
		quiz.WithID(id),
		quiz.WithSpeaker(ss.speaker),
		quiz.WithLogger(ss.logger),
		quiz.OnFinish(func() { ss.finish(id) }),
	}, ss.opts...)

	session, err := quiz.New(pool, cfg, opts...)
	if err != nil {
		return nil, err
	}

	live := &liveSession{session: session, startedAt: time.Now()}
	live.touch()
	ss.mu.Lock()
	ss.sessions[id] = live
	ss.mu.Unlock()

	session.Start()
	ss.logger.Info("session started",
		"session_id", id,
		"mode", cfg.Mode.String(),
		"rounds", cfg.TotalRounds,
		"pool", len(pool),
	)
	return session, nil
}

// Get returns a live session.
func (ss *SessionService) Get(id string) (*quiz.Session, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	live, ok := ss.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	live.touch()
	return live.session, nil
}

// Abandon exits a live session early.
func (ss *SessionService) Abandon(id string) error {
	session, err := ss.Get(id)
	if err != nil {
		return err
	}
	session.Abandon()
	return nil
}

// ExpireIdle abandons every session not looked up since cutoff and returns
// how many it abandoned. Their outcomes are saved as abandoned.
func (ss *SessionService) ExpireIdle(cutoff time.Time) int {
	ss.mu.RLock()
	var idle []*quiz.Session
	for _, live := range ss.sessions {
		if live.lastSeen.Load() < cutoff.UnixNano() {
			idle = append(idle, live.session)
		}
	}
	ss.mu.RUnlock()

	n := 0
	for _, s := range idle {
		if s.Abandon() {
			n++
		}
	}
	if n > 0 {
		ss.logger.Info("idle sessions expired", "count", n)
	}
	return n
}

// SweepIdle runs ExpireIdle every interval until ctx is cancelled.
func (ss *SessionService) SweepIdle(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			ss.ExpireIdle(now.Add(-idle))
		}
	}
}

// Count returns the number of live sessions.
func (ss *SessionService) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}

func (ss *SessionService) loadPool(ctx context.Context, ids []string) ([]vocabulary.Item, error) {
	if len(ids) > 0 {
		return ss.store.ListWordsByIDs(ctx, ids)
	}
	return ss.store.ListWords(ctx)
}

// finish persists the outcome of a session that just ended.
// It uses context.Background because it runs from the session's exit
// notification, which may fire on a timer goroutine.
func (ss *SessionService) finish(id string) {
	ss.mu.Lock()
	live, ok := ss.sessions[id]
	delete(ss.sessions, id)
	ss.mu.Unlock()
	if !ok {
		return
	}

	outcome := store.OutcomeFinished
	if live.session.Phase() == quiz.PhaseAbandoned {
		outcome = store.OutcomeAbandoned
	}
	result := store.SessionResult{
		SessionID:       id,
		Mode:            live.session.Config().Mode.String(),
		Outcome:         outcome,
		RoundsCompleted: live.session.Index(),
		TotalRounds:     live.session.TotalRounds(),
		StartedAt:       live.startedAt,
		EndedAt:         time.Now(),
	}
	if err := ss.store.SaveSessionResult(context.Background(), result); err != nil {
		ss.logger.Error("failed to save session result",
			"session_id", id,
			"error", err,
		)
		return
	}
	ss.logger.Info("session ended",
		"session_id", id,
		"outcome", outcome,
		"rounds_completed", result.RoundsCompleted,
	)
}
