package quiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

func watashi() vocabulary.Item {
	return vocabulary.Item{ID: "w", Word: "私", Reading: "わたし", Meanings: []string{"I"}}
}

func TestTyping_TrimmedResponseMatches(t *testing.T) {
	r := quiz.NewTypingRound(watashi())
	assert.Equal(t, quiz.FeedbackCorrect, r.Submit(" わたし "))
	assert.True(t, r.Complete())
	assert.Empty(t, r.Revealed())
}

func TestTyping_OtherScriptDoesNotMatch(t *testing.T) {
	r := quiz.NewTypingRound(watashi())
	assert.Equal(t, quiz.FeedbackWrong, r.Submit("ワタシ"))
	assert.False(t, r.Complete())
	assert.Equal(t, "わたし", r.Revealed())
}

func TestTyping_UnlimitedRetries(t *testing.T) {
	r := quiz.NewTypingRound(watashi())
	for i := 0; i < 20; i++ {
		assert.Equal(t, quiz.FeedbackWrong, r.Submit("あなた"))
	}
	assert.Equal(t, quiz.FeedbackCorrect, r.Submit("わたし"))
	assert.Equal(t, 21, r.Attempts())
}

func TestTyping_LockedAfterCorrect(t *testing.T) {
	r := quiz.NewTypingRound(watashi())
	r.Submit("わたし")
	assert.Equal(t, quiz.FeedbackCorrect, r.Submit("wrong"))
	assert.Equal(t, 1, r.Attempts())
}

func TestTyping_Prompt(t *testing.T) {
	assert.Equal(t, "私", quiz.NewTypingRound(watashi()).Prompt())

	kanaOnly := vocabulary.Item{ID: "k", Reading: "これ", Meanings: []string{"this"}}
	assert.Equal(t, "this", quiz.NewTypingRound(kanaOnly).Prompt())
}
