package store

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("not found")
)

// Session outcomes.
const (
	OutcomeFinished  = "finished"
	OutcomeAbandoned = "abandoned"
)

// SessionResult is what the application keeps once a session has ended.
type SessionResult struct {
	SessionID       string
	Mode            string
	Outcome         string // OutcomeFinished or OutcomeAbandoned
	RoundsCompleted int
	TotalRounds     int
	StartedAt       time.Time
	EndedAt         time.Time
}
