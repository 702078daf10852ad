package speech

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/worker"
)

// Synthesizer turns text into audio somewhere outside this process.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) error
}

// SynthesisError wraps a failed synthesis so callers can tell an unreachable
// service from a rejected request.
type SynthesisError struct {
	Reason  string
	Wrapped error
}

func (e *SynthesisError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("speech: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("speech: %s", e.Reason)
}

func (e *SynthesisError) Unwrap() error {
	return e.Wrapped
}

// LogSynthesizer only records what would have been spoken.
type LogSynthesizer struct {
	logger *slog.Logger
}

func NewLogSynthesizer(logger *slog.Logger) *LogSynthesizer {
	return &LogSynthesizer{logger: logger}
}

func (l *LogSynthesizer) Synthesize(_ context.Context, text string) error {
	l.logger.Info("speak", "text", text)
	return nil
}

// Announcer hands text to a Synthesizer on a worker pool and returns at once.
type Announcer struct {
	pool    *worker.Pool
	synth   Synthesizer
	logger  *slog.Logger
	timeout time.Duration
}

// Compile-time check: *Announcer satisfies quiz.Speaker.
var _ quiz.Speaker = (*Announcer)(nil)

func NewAnnouncer(pool *worker.Pool, synth Synthesizer, logger *slog.Logger) *Announcer {
	return &Announcer{
		pool:    pool,
		synth:   synth,
		logger:  logger,
		timeout: 10 * time.Second,
	}
}

// Speak queues text for synthesis. Failures are logged and dropped.
func (a *Announcer) Speak(text string) {
	err := a.pool.Submit("speak", func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		if err := a.synth.Synthesize(ctx, text); err != nil {
			a.logger.Warn("speech synthesis failed", "text", text, "error", err)
		}
	})
	if err != nil {
		a.logger.Warn("speech dropped", "text", text, "error", err)
	}
}
