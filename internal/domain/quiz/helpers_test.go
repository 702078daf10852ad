package quiz_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

func newPool(n int) []vocabulary.Item {
	items := make([]vocabulary.Item, n)
	for i := range items {
		items[i] = vocabulary.Item{
			ID:              fmt.Sprintf("w%d", i+1),
			Word:            fmt.Sprintf("語%d", i+1),
			Reading:         fmt.Sprintf("よみ%d", i+1),
			Meanings:        []string{fmt.Sprintf("meaning %d", i+1)},
			Level:           1,
			ExampleSentence: "私(わたし)は学生(がくせい)です。",
			ExampleMeaning:  "I am a student.",
		}
	}
	return items
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fakeClock records timers and fires them on demand.
type fakeClock struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) quiz.Timer {
	t := &fakeTimer{delay: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) pending() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs every pending timer once.
func (c *fakeClock) fire() int {
	pending := c.pending()
	for _, t := range pending {
		t.fired = true
		t.f()
	}
	return len(pending)
}

// solve completes the live round through the public session API.
func solve(t *testing.T, s *quiz.Session) {
	t.Helper()
	v := s.View()
	require.Equal(t, quiz.PhaseInRound, v.Phase)

	switch {
	case v.Matching != nil:
		for _, l := range v.Matching.Left {
			right := s.View().Matching.Right
			for _, r := range right {
				if r.ItemID == l.ItemID && !r.Matched {
					require.True(t, s.SelectLeft(l.Slot))
					require.Equal(t, quiz.FeedbackCorrect, s.SelectRight(r.Slot))
					break
				}
			}
		}
	case v.Typing != nil:
		require.Equal(t, quiz.FeedbackWrong, s.SubmitTyping("?"))
		reading := s.View().Typing.Revealed
		require.NotEmpty(t, reading)
		require.Equal(t, quiz.FeedbackCorrect, s.SubmitTyping(reading))
	case v.Sentence != nil:
		pool := append([]quiz.Fragment(nil), v.Sentence.Pool...)
		sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
		for _, f := range pool {
			require.True(t, s.PlaceFragment(f.ID))
		}
		require.Equal(t, quiz.FeedbackCorrect, s.CheckSentence())
	case v.Listening != nil:
		for _, o := range v.Listening.Options {
			if s.ChooseOption(o.ItemID) == quiz.FeedbackCorrect {
				break
			}
		}
	default:
		t.Fatalf("no live round in view: %+v", v)
	}
	require.Equal(t, quiz.PhaseRoundComplete, s.Phase())
}
