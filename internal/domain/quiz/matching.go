package quiz

import (
	"math/rand"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// MatchTarget selects what the right-hand column shows.
type MatchTarget int

const (
	MatchReading MatchTarget = iota
	MatchMeaning
)

func (t MatchTarget) String() string {
	if t == MatchMeaning {
		return "meaning"
	}
	return "reading"
}

func (t MatchTarget) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Card is one entry of either column. Slot is the pair it was dealt from.
type Card struct {
	Slot    int    `json:"slot"`
	ItemID  string `json:"item_id"`
	Text    string `json:"text"`
	Matched bool   `json:"matched"`
}

// MatchingRound pairs logographic forms on the left with readings or
// meanings on the right. Two cards match when they carry the same item id,
// so a round dealt with repeated items can still be completed.
type MatchingRound struct {
	target   MatchTarget
	left     []Card
	right    []Card
	selected int
	matched  int
}

func NewMatchingRound(items []vocabulary.Item, target MatchTarget, rng *rand.Rand) *MatchingRound {
	m := &MatchingRound{
		target:   target,
		left:     make([]Card, len(items)),
		right:    make([]Card, len(items)),
		selected: -1,
	}
	for i, it := range items {
		m.left[i] = Card{Slot: i, ItemID: it.ID, Text: leftText(it, target)}
		text := it.Reading
		if target == MatchMeaning {
			text = it.PrimaryMeaning()
		}
		m.right[i] = Card{Slot: i, ItemID: it.ID, Text: text}
	}
	rng.Shuffle(len(m.right), func(i, j int) {
		m.right[i], m.right[j] = m.right[j], m.right[i]
	})
	return m
}

// leftText is the word's written form. Words stored with only a reading
// show whichever of reading and meaning the right column does not.
func leftText(it vocabulary.Item, target MatchTarget) string {
	if it.Word != "" {
		return it.Word
	}
	if target == MatchMeaning {
		return it.Reading
	}
	return it.PrimaryMeaning()
}

func (m *MatchingRound) Kind() Kind { return KindMatching }
func (m *MatchingRound) round()     {}

// Feedback reports CORRECT once every pair is matched. Wrong pairings are
// returned by SelectRight and not retained.
func (m *MatchingRound) Feedback() Feedback {
	if m.Complete() {
		return FeedbackCorrect
	}
	return FeedbackNone
}

func (m *MatchingRound) Complete() bool { return m.matched == len(m.left) }

func (m *MatchingRound) Target() MatchTarget { return m.target }
func (m *MatchingRound) Pairs() int          { return len(m.left) }
func (m *MatchingRound) Matched() int        { return m.matched }

// Selected returns the active left slot, if any.
func (m *MatchingRound) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

func (m *MatchingRound) Left() []Card  { return append([]Card(nil), m.left...) }
func (m *MatchingRound) Right() []Card { return append([]Card(nil), m.right...) }

// SelectLeft makes slot the active selection, replacing any previous one.
// Matched or unknown slots are ignored.
func (m *MatchingRound) SelectLeft(slot int) bool {
	if slot < 0 || slot >= len(m.left) || m.left[slot].Matched {
		return false
	}
	m.selected = slot
	return true
}

// SelectRight resolves the active selection against the right card dealt
// from slot. It returns FeedbackNone when nothing happened.
func (m *MatchingRound) SelectRight(slot int) Feedback {
	if m.selected < 0 {
		return FeedbackNone
	}
	idx := m.rightIndex(slot)
	if idx < 0 || m.right[idx].Matched {
		return FeedbackNone
	}

	left := &m.left[m.selected]
	m.selected = -1
	if m.right[idx].ItemID != left.ItemID {
		return FeedbackWrong
	}
	left.Matched = true
	m.right[idx].Matched = true
	m.matched++
	return FeedbackCorrect
}

func (m *MatchingRound) rightIndex(slot int) int {
	for i, c := range m.right {
		if c.Slot == slot {
			return i
		}
	}
	return -1
}
