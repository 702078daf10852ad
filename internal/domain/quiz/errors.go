package quiz

import "errors"

// Sentinel errors for the quiz package.
// Use errors.Is to check: errors.Is(err, quiz.ErrInsufficientPool)
var (
	ErrInsufficientPool = errors.New("quiz: insufficient vocabulary pool")
	ErrInvalidConfig    = errors.New("quiz: invalid session config")
)
