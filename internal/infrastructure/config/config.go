package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
)

type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS,required,notEmpty"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	DatabasePath    string        `env:"DATABASE_PATH"    envDefault:"vocabdrill.db"`

	// Quiz sessions
	TotalRounds   int           `env:"QUIZ_TOTAL_ROUNDS"   envDefault:"10"`
	AdvanceDelay  time.Duration `env:"QUIZ_ADVANCE_DELAY"  envDefault:"1500ms"`
	MatchingPairs int           `env:"QUIZ_MATCHING_PAIRS" envDefault:"4"`
	ReviewPairs   int           `env:"QUIZ_REVIEW_PAIRS"   envDefault:"5"`

	// Live sessions untouched for SessionIdleTimeout are abandoned.
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m"`
	SessionSweep       time.Duration `env:"SESSION_SWEEP"        envDefault:"1m"`

	// Speech synthesis. An empty URL logs instead of speaking.
	SpeechURL     string `env:"SPEECH_URL"`
	SpeechWorkers int    `env:"SPEECH_WORKERS" envDefault:"2"`
	SpeechQueue   int    `env:"SPEECH_QUEUE"   envDefault:"16"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

// Parse reads the configuration from the environment, after loading a
// .env file if one exists.
func Parse() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionIdleTimeout <= 0 || cfg.SessionSweep <= 0 {
		return nil, fmt.Errorf("SESSION_IDLE_TIMEOUT and SESSION_SWEEP must be positive")
	}
	if cfg.SpeechWorkers < 1 {
		return nil, fmt.Errorf("SPEECH_WORKERS must be at least 1, got %d", cfg.SpeechWorkers)
	}
	if err := cfg.Quiz().Validate(); err != nil {
		return nil, fmt.Errorf("quiz settings: %w", err)
	}
	return &cfg, nil
}

// Load is Parse that exits the process on error.
func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// Quiz returns the session defaults. The mode is chosen per session.
func (c *Config) Quiz() quiz.Config {
	q := quiz.DefaultConfig()
	q.TotalRounds = c.TotalRounds
	q.AdvanceDelay = c.AdvanceDelay
	q.MatchingPairs = c.MatchingPairs
	q.ReviewPairs = c.ReviewPairs
	return q
}
