package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportWord struct {
	Word            string     `json:"word"`
	Reading         string     `json:"reading"`
	Romaji          string     `json:"romaji,omitempty"`
	Meanings        []string   `json:"meanings"`
	Level           int        `json:"level"`
	ExampleSentence string     `json:"example_sentence,omitempty"`
	ExampleMeaning  string     `json:"example_meaning,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	LearnedAt       *time.Time `json:"learned_at,omitempty"`
}

type ExportData struct {
	Version    string       `json:"version"`
	ExportedAt string       `json:"exported_at"`
	Words      []ExportWord `json:"words"`
}

type ImportResult struct {
	WordsCreated int `json:"words_created"`
	WordsSkipped int `json:"words_skipped"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportAll downloads the whole collection.
// @Summary      Export words
// @Tags         Export
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  ErrorResponse
// @Router       /export [get]
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	words, err := h.store.ListWords(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load words")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Words:      make([]ExportWord, len(words)),
	}
	for i, it := range words {
		exportData.Words[i] = ExportWord{
			Word:            it.Word,
			Reading:         it.Reading,
			Romaji:          it.Romaji,
			Meanings:        it.Meanings,
			Level:           it.Level,
			ExampleSentence: it.ExampleSentence,
			ExampleMeaning:  it.ExampleMeaning,
			ImageURL:        it.ImageURL,
			LearnedAt:       it.LearnedAt,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=vocabdrill-export.json")
	json.NewEncoder(w).Encode(exportData)
}

// importAll adds every word of an export under fresh identifiers. Readings
// and sentence annotations are derived as on create; words still without a
// reading or meaning are skipped.
// @Summary      Import words
// @Tags         Export
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Export file"
// @Success      200   {object}  ImportResult
// @Failure      400   {object}  ErrorResponse
// @Router       /import [post]
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}
	for _, ew := range importData.Words {
		it := vocabulary.New("", "")
		h.apply(WordRequest{
			Word:            ew.Word,
			Reading:         ew.Reading,
			Romaji:          ew.Romaji,
			Meanings:        ew.Meanings,
			Level:           ew.Level,
			ExampleSentence: ew.ExampleSentence,
			ExampleMeaning:  ew.ExampleMeaning,
			ImageURL:        ew.ImageURL,
			LearnedAt:       ew.LearnedAt,
		}, it)

		if it.Validate() != nil || len(it.Meanings) == 0 {
			result.WordsSkipped++
			continue
		}
		if err := h.store.SaveWord(ctx, it); err != nil {
			h.logger.Error("failed to import word", "word", ew.Word, "error", err)
			result.WordsSkipped++
			continue
		}
		result.WordsCreated++
	}

	h.logger.Info("import complete",
		"words_created", result.WordsCreated,
		"words_skipped", result.WordsSkipped,
	)
	respondJSON(w, http.StatusOK, result)
}
