package vocabulary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidItem = errors.New("vocabulary: invalid item")
	ErrDuplicateID = errors.New("vocabulary: duplicate item id")
)

// Item is one learned word. The quiz engine only ever reads it.
type Item struct {
	ID              string
	Word            string   // logographic form, e.g. "学生"
	Reading         string   // phonetic reading, e.g. "がくせい"
	Romaji          string   // romanized form, e.g. "gakusei"
	Meanings        []string // ordered target-language meanings
	Level           int      // proficiency level, 1 = beginner, 0 = not assessed
	ExampleSentence string   // every kanji run followed by its reading in brackets
	ExampleMeaning  string
	ImageURL        *string    // optional illustration
	LearnedAt       *time.Time // optional acquisition timestamp
}

// New creates an item with a fresh identifier.
func New(word, reading string, meanings ...string) *Item {
	return &Item{
		ID:       uuid.NewString(),
		Word:     word,
		Reading:  reading,
		Meanings: meanings,
		Level:    1,
	}
}

// PrimaryMeaning returns the first meaning, or "" when there is none.
func (it Item) PrimaryMeaning() string {
	if len(it.Meanings) == 0 {
		return ""
	}
	return it.Meanings[0]
}

// Spoken returns the text handed to speech synthesis.
func (it Item) Spoken() string {
	if it.Word != "" {
		return it.Word
	}
	return it.Reading
}

// Validate checks the fields the quiz relies on. A zero Level means the
// word was never assessed; New and every stored word start at 1.
func (it Item) Validate() error {
	if strings.TrimSpace(it.ID) == "" {
		return fmt.Errorf("%w: id is empty", ErrInvalidItem)
	}
	if strings.TrimSpace(it.Reading) == "" {
		return fmt.Errorf("%w: reading is empty for %s", ErrInvalidItem, it.ID)
	}
	if it.Level < 0 {
		return fmt.Errorf("%w: level %d is negative for %s", ErrInvalidItem, it.Level, it.ID)
	}
	return nil
}

// ValidatePool checks every item and that identifiers are unique.
func ValidatePool(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return err
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}
