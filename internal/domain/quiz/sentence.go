package quiz

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

const (
	minFragmentRunes = 2
	maxFragmentRunes = 4
)

// reReading matches a bracketed reading such as "(がくせい)", "（がくせい）"
// or "[がくせい]".
var reReading = regexp.MustCompile(`\([^()]*\)|（[^（）]*）|\[[^\[\]]*\]`)

// StripReadings removes every bracketed reading so "学生(がくせい)です" becomes
// "学生です". Text without annotations is returned unchanged.
func StripReadings(s string) string {
	return reReading.ReplaceAllString(s, "")
}

// HasReadings reports whether s carries at least one bracketed reading.
func HasReadings(s string) bool {
	return reReading.MatchString(s)
}

// Fragment is a slice of the target sentence. ID is its position in the
// original sentence.
type Fragment struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Fragmentize cuts s into consecutive pieces of 2 to 4 characters. The last
// piece holds whatever is left. Boundaries ignore word structure.
func Fragmentize(s string, rng *rand.Rand) []Fragment {
	runes := []rune(s)
	var out []Fragment
	for i := 0; i < len(runes); {
		n := minFragmentRunes + rng.Intn(maxFragmentRunes-minFragmentRunes+1)
		if i+n > len(runes) {
			n = len(runes) - i
		}
		out = append(out, Fragment{ID: len(out), Text: string(runes[i : i+n])})
		i += n
	}
	return out
}

// SentenceRound asks the learner to rebuild the example sentence from
// shuffled fragments. Every fragment is always in exactly one of the pool or
// the answer.
type SentenceRound struct {
	item      vocabulary.Item
	target    string
	fragments []Fragment
	pool      []int
	answer    []int
	feedback  Feedback
}

func NewSentenceRound(item vocabulary.Item, rng *rand.Rand) *SentenceRound {
	target := StripReadings(item.ExampleSentence)
	frags := Fragmentize(target, rng)

	pool := make([]int, len(frags))
	for i := range pool {
		pool[i] = i
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return &SentenceRound{
		item:      item,
		target:    target,
		fragments: frags,
		pool:      pool,
	}
}

func (s *SentenceRound) Kind() Kind         { return KindSentence }
func (s *SentenceRound) Feedback() Feedback { return s.feedback }
func (s *SentenceRound) Complete() bool     { return s.feedback == FeedbackCorrect }
func (s *SentenceRound) round()             {}

func (s *SentenceRound) ItemID() string      { return s.item.ID }
func (s *SentenceRound) Target() string      { return s.target }
func (s *SentenceRound) Translation() string { return s.item.ExampleMeaning }

// Fragments returns every fragment in original order.
func (s *SentenceRound) Fragments() []Fragment {
	return append([]Fragment(nil), s.fragments...)
}

func (s *SentenceRound) Pool() []Fragment   { return s.resolve(s.pool) }
func (s *SentenceRound) Answer() []Fragment { return s.resolve(s.answer) }

// Place moves a fragment from the pool to the end of the answer.
func (s *SentenceRound) Place(id int) bool {
	return s.move(id, &s.pool, &s.answer)
}

// Remove returns a fragment from the answer to the pool.
func (s *SentenceRound) Remove(id int) bool {
	return s.move(id, &s.answer, &s.pool)
}

// Check compares the assembled answer with the stripped sentence.
func (s *SentenceRound) Check() Feedback {
	if s.feedback == FeedbackCorrect {
		return s.feedback
	}
	var b strings.Builder
	for _, id := range s.answer {
		b.WriteString(s.fragments[id].Text)
	}
	if b.String() == s.target {
		s.feedback = FeedbackCorrect
	} else {
		s.feedback = FeedbackWrong
	}
	return s.feedback
}

func (s *SentenceRound) move(id int, from, to *[]int) bool {
	if s.feedback == FeedbackCorrect {
		return false
	}
	for i, fid := range *from {
		if fid != id {
			continue
		}
		*from = append((*from)[:i], (*from)[i+1:]...)
		*to = append(*to, id)
		s.feedback = FeedbackNone
		return true
	}
	return false
}

func (s *SentenceRound) resolve(ids []int) []Fragment {
	out := make([]Fragment, len(ids))
	for i, id := range ids {
		out[i] = s.fragments[id]
	}
	return out
}
