package quiz

import (
	"strings"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// TypingRound asks for the reading of a word. Wrong answers may be retried
// without limit.
type TypingRound struct {
	item     vocabulary.Item
	feedback Feedback
	attempts int
}

func NewTypingRound(item vocabulary.Item) *TypingRound {
	return &TypingRound{item: item}
}

func (t *TypingRound) Kind() Kind         { return KindTyping }
func (t *TypingRound) Feedback() Feedback { return t.feedback }
func (t *TypingRound) Complete() bool     { return t.feedback == FeedbackCorrect }
func (t *TypingRound) round()             {}

func (t *TypingRound) ItemID() string { return t.item.ID }
func (t *TypingRound) Attempts() int  { return t.attempts }

// Prompt is the text shown to the learner.
func (t *TypingRound) Prompt() string {
	if t.item.Word != "" {
		return t.item.Word
	}
	return t.item.PrimaryMeaning()
}

// Revealed returns the canonical reading after a wrong answer.
func (t *TypingRound) Revealed() string {
	if t.feedback != FeedbackWrong {
		return ""
	}
	return t.item.Reading
}

// Submit compares the trimmed response with the reading. Scripts are not
// folded: katakana never matches a hiragana reading.
func (t *TypingRound) Submit(response string) Feedback {
	if t.feedback == FeedbackCorrect {
		return t.feedback
	}
	t.attempts++
	if strings.TrimSpace(response) == t.item.Reading {
		t.feedback = FeedbackCorrect
	} else {
		t.feedback = FeedbackWrong
	}
	return t.feedback
}
