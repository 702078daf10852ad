package quiz

import (
	"fmt"
	"strings"
	"time"
)

// Mode decides which variants a session draws and how rounds advance.
type Mode int

const (
	// ModeQuiz mixes all four variants and advances on its own after each
	// solved round.
	ModeQuiz Mode = iota
	// ModeReview runs matching rounds only and waits for Advance.
	ModeReview
)

func (m Mode) String() string {
	if m == ModeReview {
		return "review"
	}
	return "quiz"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseMode accepts "quiz" or "review". An empty string means quiz.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quiz":
		return ModeQuiz, nil
	case "review":
		return ModeReview, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Config holds the constants of a session.
type Config struct {
	Mode          Mode
	TotalRounds   int
	AdvanceDelay  time.Duration // wait before an automatic advance
	MatchingPairs int           // pairs in a quiz matching round
	ReviewPairs   int           // pairs in a review round
}

// DefaultConfig returns a ten-round mixed quiz.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeQuiz,
		TotalRounds:   10,
		AdvanceDelay:  1500 * time.Millisecond,
		MatchingPairs: 4,
		ReviewPairs:   5,
	}
}

// MinPool is the smallest pool a session of this mode accepts.
func (c Config) MinPool() int {
	if c.Mode == ModeReview {
		return 1
	}
	return listeningDistractors + 1
}

// AutoAdvance reports whether solved rounds advance without an explicit
// signal.
func (c Config) AutoAdvance() bool {
	return c.Mode == ModeQuiz
}

func (c Config) pairs() int {
	if c.Mode == ModeReview {
		return c.ReviewPairs
	}
	return c.MatchingPairs
}

// Validate reports settings no session can run with.
func (c Config) Validate() error {
	if c.Mode != ModeQuiz && c.Mode != ModeReview {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(c.Mode))
	}
	if c.TotalRounds <= 0 {
		return fmt.Errorf("%w: total rounds %d must be positive", ErrInvalidConfig, c.TotalRounds)
	}
	if c.AdvanceDelay < 0 {
		return fmt.Errorf("%w: advance delay %s is negative", ErrInvalidConfig, c.AdvanceDelay)
	}
	if c.MatchingPairs <= 0 || c.ReviewPairs <= 0 {
		return fmt.Errorf("%w: pair counts %d/%d must be positive", ErrInvalidConfig, c.MatchingPairs, c.ReviewPairs)
	}
	return nil
}
