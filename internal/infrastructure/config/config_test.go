package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "vocabdrill.db", cfg.DatabasePath)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.SpeechURL)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, time.Minute, cfg.SessionSweep)

	q := cfg.Quiz()
	assert.Equal(t, 10, q.TotalRounds)
	assert.Equal(t, 1500*time.Millisecond, q.AdvanceDelay)
	assert.Equal(t, 4, q.MatchingPairs)
	assert.Equal(t, 5, q.ReviewPairs)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")
	t.Setenv("QUIZ_TOTAL_ROUNDS", "3")
	t.Setenv("QUIZ_ADVANCE_DELAY", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SPEECH_URL", "http://tts.local/speak")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Quiz().TotalRounds)
	assert.Equal(t, 250*time.Millisecond, cfg.Quiz().AdvanceDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "http://tts.local/speak", cfg.SpeechURL)
}

func TestParse_MissingAddress(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "")
	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_InvalidQuizSettings(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("QUIZ_TOTAL_ROUNDS", "0")
	_, err := Parse()
	assert.ErrorContains(t, err, "quiz settings")
}

func TestParse_InvalidWorkers(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SPEECH_WORKERS", "0")
	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_InvalidIdleTimeout(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("SESSION_IDLE_TIMEOUT", "0s")
	_, err := Parse()
	assert.Error(t, err)
}
