package quiz

import (
	"math/rand"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// Choice is one multiple-choice answer of a listening round.
type Choice struct {
	ItemID string `json:"item_id"`
	Text   string `json:"text"`
}

// ListeningRound plays a word and asks which meaning it has. The learner may
// keep choosing until the right option is picked.
type ListeningRound struct {
	target   vocabulary.Item
	options  []Choice
	selected string
	feedback Feedback
}

func NewListeningRound(target vocabulary.Item, distractors []vocabulary.Item, rng *rand.Rand) *ListeningRound {
	options := make([]Choice, 0, len(distractors)+1)
	options = append(options, Choice{ItemID: target.ID, Text: target.PrimaryMeaning()})
	for _, d := range distractors {
		options = append(options, Choice{ItemID: d.ID, Text: d.PrimaryMeaning()})
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return &ListeningRound{target: target, options: options}
}

func (l *ListeningRound) Kind() Kind         { return KindListening }
func (l *ListeningRound) Feedback() Feedback { return l.feedback }
func (l *ListeningRound) Complete() bool     { return l.feedback == FeedbackCorrect }
func (l *ListeningRound) round()             {}

func (l *ListeningRound) TargetID() string  { return l.target.ID }
func (l *ListeningRound) Spoken() string    { return l.target.Spoken() }
func (l *ListeningRound) Selected() string  { return l.selected }
func (l *ListeningRound) Options() []Choice { return append([]Choice(nil), l.options...) }

// Choose selects an option. Ids that are not on offer are ignored, and
// nothing changes once the round is solved.
func (l *ListeningRound) Choose(itemID string) Feedback {
	if l.feedback == FeedbackCorrect || !l.offers(itemID) {
		return l.feedback
	}
	l.selected = itemID
	if itemID == l.target.ID {
		l.feedback = FeedbackCorrect
	} else {
		l.feedback = FeedbackWrong
	}
	return l.feedback
}

func (l *ListeningRound) offers(itemID string) bool {
	for _, o := range l.options {
		if o.ItemID == itemID {
			return true
		}
	}
	return false
}
