package quiz

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// Phase is the lifecycle stage of a session.
type Phase int

const (
	PhaseSetup         Phase = iota // created, no round dealt yet
	PhaseInRound                    // the current round accepts input
	PhaseRoundComplete              // solved, waiting for the advance
	PhaseFinished                   // every round played
	PhaseAbandoned                  // exited early by the caller
)

var phaseNames = [...]string{
	PhaseSetup:         "setup",
	PhaseInRound:       "in_round",
	PhaseRoundComplete: "round_complete",
	PhaseFinished:      "finished",
	PhaseAbandoned:     "abandoned",
}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Terminal reports whether no further rounds can run.
func (p Phase) Terminal() bool {
	return p == PhaseFinished || p == PhaseAbandoned
}

// Session drives a fixed number of rounds over an in-memory pool.
//
// All methods are safe to call from any goroutine. Scheduled advances are
// tagged with a generation number; a callback whose generation is no longer
// current does nothing.
type Session struct {
	mu sync.Mutex

	id       string
	cfg      Config
	pool     []vocabulary.Item
	rng      *rand.Rand
	sampler  *Sampler
	clock    Clock
	speaker  Speaker
	logger   *slog.Logger
	onFinish func()

	phase      Phase
	index      int
	round      Round
	generation uint64
	timer      Timer
}

// Option customises a Session.
type Option func(*Session)

func WithID(id string) Option          { return func(s *Session) { s.id = id } }
func WithRand(rng *rand.Rand) Option   { return func(s *Session) { s.rng = rng } }
func WithClock(c Clock) Option         { return func(s *Session) { s.clock = c } }
func WithSpeaker(sp Speaker) Option    { return func(s *Session) { s.speaker = sp } }
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.logger = l } }

// OnFinish registers the exit notification. It runs once, when the session
// finishes or is abandoned, outside the session lock.
func OnFinish(f func()) Option { return func(s *Session) { s.onFinish = f } }

// New validates the pool against the mode's minimum and returns a session in
// PhaseSetup. A pool that is too small yields ErrInsufficientPool and no
// session.
func New(pool []vocabulary.Item, cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := vocabulary.ValidatePool(pool); err != nil {
		return nil, fmt.Errorf("quiz: %w", err)
	}
	if len(pool) < cfg.MinPool() {
		return nil, fmt.Errorf("%w: %s session needs %d items, have %d",
			ErrInsufficientPool, cfg.Mode, cfg.MinPool(), len(pool))
	}

	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		pool:    append([]vocabulary.Item(nil), pool...),
		clock:   realClock{},
		speaker: silentSpeaker{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(newSeed()))
	}
	s.sampler = NewSampler(s.rng)
	s.logger = s.logger.With("session_id", s.id, "mode", cfg.Mode.String())
	return s, nil
}

func (s *Session) ID() string     { return s.id }
func (s *Session) Config() Config { return s.cfg }

// Start deals the first round. It returns false if the session already
// started.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseSetup {
		return false
	}
	s.setupRound()
	return true
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Index is the 0-based current round. It equals TotalRounds once finished.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

func (s *Session) TotalRounds() int { return s.cfg.TotalRounds }

// Kind returns the variant of the live round.
func (s *Session) Kind() (Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return 0, false
	}
	return s.round.Kind(), true
}

// Feedback returns the live round's verdict.
func (s *Session) Feedback() Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.round == nil {
		return FeedbackNone
	}
	return s.round.Feedback()
}

// ── Round input ─────────────────────────────────────────────────────────────
// Input that does not fit the live round or arrives outside PhaseInRound is
// ignored.

func (s *Session) SelectLeft(slot int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := live[*MatchingRound](s)
	if !ok {
		return false
	}
	return m.SelectLeft(slot)
}

func (s *Session) SelectRight(slot int) Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := live[*MatchingRound](s)
	if !ok {
		return FeedbackNone
	}
	fb := m.SelectRight(slot)
	s.logger.Debug("matching pair", "round", s.index, "slot", slot, "feedback", fb.String())
	s.settle()
	return fb
}

func (s *Session) SubmitTyping(response string) Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := live[*TypingRound](s)
	if !ok {
		return FeedbackNone
	}
	fb := t.Submit(response)
	s.logger.Debug("typing answer", "round", s.index, "feedback", fb.String(), "attempts", t.Attempts())
	s.settle()
	return fb
}

func (s *Session) PlaceFragment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := live[*SentenceRound](s)
	if !ok {
		return false
	}
	return st.Place(id)
}

func (s *Session) RemoveFragment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := live[*SentenceRound](s)
	if !ok {
		return false
	}
	return st.Remove(id)
}

func (s *Session) CheckSentence() Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := live[*SentenceRound](s)
	if !ok {
		return FeedbackNone
	}
	fb := st.Check()
	s.logger.Debug("sentence check", "round", s.index, "feedback", fb.String())
	s.settle()
	return fb
}

func (s *Session) ChooseOption(itemID string) Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := live[*ListeningRound](s)
	if !ok {
		return FeedbackNone
	}
	fb := l.Choose(itemID)
	s.logger.Debug("listening choice", "round", s.index, "feedback", fb.String())
	s.settle()
	return fb
}

// ReplayAudio speaks the listening target again.
func (s *Session) ReplayAudio() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := live[*ListeningRound](s)
	if !ok {
		return false
	}
	s.speaker.Speak(l.Spoken())
	return true
}

// ── Transitions ─────────────────────────────────────────────────────────────

// Advance moves past a solved round. It also accepts a solved round whose
// automatic advance is still pending; that timer is then discarded.
func (s *Session) Advance() bool {
	s.mu.Lock()
	if s.phase != PhaseRoundComplete {
		s.mu.Unlock()
		return false
	}
	finished := s.advance()
	s.mu.Unlock()

	if finished {
		s.notify()
	}
	return true
}

// Abandon ends the session early and cancels any pending advance.
func (s *Session) Abandon() bool {
	s.mu.Lock()
	if s.phase.Terminal() {
		s.mu.Unlock()
		return false
	}
	s.cancelTimer()
	s.phase = PhaseAbandoned
	s.round = nil
	s.logger.Info("session abandoned", "round", s.index)
	s.mu.Unlock()

	s.notify()
	return true
}

// live returns the current round as T when it accepts input.
func live[T Round](s *Session) (T, bool) {
	var zero T
	if s.phase != PhaseInRound {
		return zero, false
	}
	r, ok := s.round.(T)
	return r, ok
}

func (s *Session) setupRound() {
	kind := KindMatching
	if s.cfg.Mode == ModeQuiz {
		kind = SelectKind(s.rng)
	}
	s.round = s.deal(kind)
	s.phase = PhaseInRound
	s.logger.Debug("round started", "round", s.index, "kind", s.round.Kind().String())

	if l, ok := s.round.(*ListeningRound); ok {
		s.speaker.Speak(l.Spoken())
	}
}

func (s *Session) deal(kind Kind) Round {
	switch kind {
	case KindTyping:
		return NewTypingRound(s.sampler.SampleOne(s.pool))
	case KindSentence:
		item := s.sampler.SampleOne(s.pool)
		if StripReadings(item.ExampleSentence) == "" {
			s.logger.Debug("no example sentence, dealing typing", "item_id", item.ID)
			return NewTypingRound(item)
		}
		return NewSentenceRound(item, s.rng)
	case KindListening:
		target, distractors, err := s.sampler.SampleListening(s.pool)
		if err != nil {
			s.logger.Warn("listening round unavailable", "error", err)
			return NewTypingRound(s.sampler.SampleOne(s.pool))
		}
		return NewListeningRound(target, distractors, s.rng)
	default:
		items := s.sampler.Sample(s.pool, s.cfg.pairs())
		return NewMatchingRound(items, MatchTarget(s.rng.Intn(2)), s.rng)
	}
}

// settle marks a solved round complete and schedules its advance.
func (s *Session) settle() {
	if s.phase != PhaseInRound || !s.round.Complete() {
		return
	}
	s.phase = PhaseRoundComplete
	s.logger.Debug("round complete", "round", s.index, "kind", s.round.Kind().String())
	if !s.cfg.AutoAdvance() {
		return
	}
	gen := s.generation
	s.timer = s.clock.AfterFunc(s.cfg.AdvanceDelay, func() { s.fire(gen) })
}

func (s *Session) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.phase != PhaseRoundComplete {
		s.mu.Unlock()
		s.logger.Debug("stale advance ignored", "generation", gen)
		return
	}
	s.timer = nil
	finished := s.advance()
	s.mu.Unlock()

	if finished {
		s.notify()
	}
}

// advance leaves the current round. It reports whether the session finished.
func (s *Session) advance() bool {
	s.cancelTimer()
	s.index++
	if s.index < s.cfg.TotalRounds {
		s.setupRound()
		return false
	}
	s.phase = PhaseFinished
	s.round = nil
	s.logger.Info("session finished", "rounds", s.index)
	return true
}

func (s *Session) cancelTimer() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) notify() {
	if s.onFinish != nil {
		s.onFinish()
	}
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
