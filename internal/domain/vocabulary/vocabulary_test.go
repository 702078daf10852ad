package vocabulary_test

import (
	"errors"
	"testing"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

func TestNew(t *testing.T) {
	item := vocabulary.New("学生", "がくせい", "student", "pupil")

	if item.ID == "" {
		t.Fatal("expected generated id")
	}
	if item.PrimaryMeaning() != "student" {
		t.Errorf("expected primary meaning %q, got %q", "student", item.PrimaryMeaning())
	}
	if item.Level != 1 {
		t.Errorf("expected level 1, got %d", item.Level)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := vocabulary.New("猫", "ねこ")
	b := vocabulary.New("猫", "ねこ")
	if a.ID == b.ID {
		t.Error("expected distinct ids")
	}
}

func TestPrimaryMeaning_Empty(t *testing.T) {
	item := vocabulary.Item{ID: "x", Reading: "え"}
	if item.PrimaryMeaning() != "" {
		t.Errorf("expected empty meaning, got %q", item.PrimaryMeaning())
	}
}

func TestSpoken_FallsBackToReading(t *testing.T) {
	item := vocabulary.Item{ID: "x", Reading: "ありがとう"}
	if item.Spoken() != "ありがとう" {
		t.Errorf("expected reading fallback, got %q", item.Spoken())
	}

	item.Word = "有難う"
	if item.Spoken() != "有難う" {
		t.Errorf("expected word, got %q", item.Spoken())
	}
}

func TestValidate_EmptyReading(t *testing.T) {
	item := vocabulary.Item{ID: "x", Word: "猫"}
	if err := item.Validate(); !errors.Is(err, vocabulary.ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}

func TestValidatePool_Duplicate(t *testing.T) {
	items := []vocabulary.Item{
		{ID: "a", Reading: "あ"},
		{ID: "b", Reading: "い"},
		{ID: "a", Reading: "う"},
	}
	if err := vocabulary.ValidatePool(items); !errors.Is(err, vocabulary.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestValidatePool_OK(t *testing.T) {
	items := []vocabulary.Item{
		{ID: "a", Reading: "あ"},
		{ID: "b", Reading: "い"},
	}
	if err := vocabulary.ValidatePool(items); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_Level(t *testing.T) {
	item := vocabulary.Item{ID: "w1", Reading: "よみ"}
	if err := item.Validate(); err != nil {
		t.Errorf("unassessed level should validate, got %v", err)
	}

	item.Level = -1
	if err := item.Validate(); !errors.Is(err, vocabulary.ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem for negative level, got %v", err)
	}
}
