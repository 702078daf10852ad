// Package reading derives hiragana readings for Japanese text with the
// kagome morphological analyzer.
package reading

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
)

// Index of the katakana reading in kagome IPA features.
const featureReading = 7

// HasAnnotations reports whether s already carries bracketed readings.
func HasAnnotations(s string) bool {
	return quiz.HasReadings(s)
}

// Annotator fills in readings using the IPA dictionary.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// New loads the tokenizer. The dictionary is embedded, so this only fails on
// a corrupt build.
func New() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("reading: load tokenizer: %w", err)
	}
	return &Annotator{t: t}, nil
}

// Reading returns the hiragana reading of text. Tokens the dictionary does
// not know are kept as written.
func (a *Annotator) Reading(text string) string {
	var b strings.Builder
	for _, tok := range a.tokens(text) {
		if tok.reading == "" {
			b.WriteString(ToHiragana(tok.surface))
			continue
		}
		b.WriteString(tok.reading)
	}
	return b.String()
}

// Annotate writes the reading in brackets after every kanji run, e.g.
// "私は学生です" becomes "私(わたし)は学生(がくせい)です". Trailing kana shared
// by surface and reading stay outside the brackets: "食(た)べる".
// Sentences that already carry annotations are returned unchanged.
func (a *Annotator) Annotate(sentence string) string {
	if HasAnnotations(sentence) {
		return sentence
	}
	var b strings.Builder
	for _, tok := range a.tokens(sentence) {
		if tok.reading == "" || !containsKanji(tok.surface) {
			b.WriteString(tok.surface)
			continue
		}
		stem, kana, okurigana := splitOkurigana(tok.surface, tok.reading)
		b.WriteString(stem)
		b.WriteString("(")
		b.WriteString(kana)
		b.WriteString(")")
		b.WriteString(okurigana)
	}
	return b.String()
}

type token struct {
	surface string
	reading string // hiragana, empty when unknown
}

func (a *Annotator) tokens(text string) []token {
	var out []token
	for _, t := range a.t.Tokenize(text) {
		if t.Class == tokenizer.DUMMY {
			continue
		}
		reading := ""
		if f := t.Features(); len(f) > featureReading && f[featureReading] != "*" {
			reading = ToHiragana(f[featureReading])
		}
		out = append(out, token{surface: t.Surface, reading: reading})
	}
	return out
}

// splitOkurigana peels the kana suffix shared by surface and reading.
func splitOkurigana(surface, reading string) (stem, kana, okurigana string) {
	s := []rune(surface)
	r := []rune(reading)
	n := 0
	for n < len(s)-1 && n < len(r)-1 {
		sc := s[len(s)-1-n]
		if unicode.Is(unicode.Han, sc) || toHiraganaRune(sc) != r[len(r)-1-n] {
			break
		}
		n++
	}
	return string(s[:len(s)-n]), string(r[:len(r)-n]), string(s[len(s)-n:])
}

func containsKanji(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// ToHiragana maps katakana to hiragana and leaves everything else alone.
func ToHiragana(s string) string {
	return strings.Map(toHiraganaRune, s)
}

func toHiraganaRune(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - 0x60
	}
	return r
}
