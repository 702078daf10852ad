package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

// ── Request / Response types ────────────────────────────────────────────────

type WordRequest struct {
	Word            string     `json:"word" validate:"required_without=Reading" example:"学生"`
	Reading         string     `json:"reading" validate:"required_without=Word" example:"がくせい"`
	Romaji          string     `json:"romaji,omitempty" example:"gakusei"`
	Meanings        []string   `json:"meanings" validate:"required,min=1,dive,required" example:"student"`
	Level           int        `json:"level,omitempty" validate:"omitempty,min=1" example:"1"`
	ExampleSentence string     `json:"example_sentence,omitempty" example:"私(わたし)は学生(がくせい)です。"`
	ExampleMeaning  string     `json:"example_meaning,omitempty" example:"I am a student."`
	ImageURL        *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	LearnedAt       *time.Time `json:"learned_at,omitempty"`
}

type WordResponse struct {
	ID              string     `json:"id" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Word            string     `json:"word" example:"学生"`
	Reading         string     `json:"reading" example:"がくせい"`
	Romaji          string     `json:"romaji,omitempty" example:"gakusei"`
	Meanings        []string   `json:"meanings"`
	Level           int        `json:"level" example:"1"`
	ExampleSentence string     `json:"example_sentence,omitempty"`
	ExampleMeaning  string     `json:"example_meaning,omitempty"`
	ImageURL        *string    `json:"image_url,omitempty"`
	LearnedAt       *time.Time `json:"learned_at,omitempty"`
}

func toWordResponse(it vocabulary.Item) WordResponse {
	return WordResponse{
		ID:              it.ID,
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

// apply copies the request onto it, deriving what the annotator can fill in.
func (h *Handler) apply(req WordRequest, it *vocabulary.Item) {
	it.Word = strings.TrimSpace(req.Word)
	it.Reading = strings.TrimSpace(req.Reading)
	it.Romaji = req.Romaji
	it.Meanings = req.Meanings
	if req.Level > 0 {
		it.Level = req.Level
	}
	it.ExampleSentence = req.ExampleSentence
	it.ExampleMeaning = req.ExampleMeaning
	it.ImageURL = req.ImageURL
	it.LearnedAt = req.LearnedAt

	if h.annotator == nil {
		return
	}
	if it.Reading == "" {
		it.Reading = h.annotator.Reading(it.Word)
	}
	if it.ExampleSentence != "" {
		it.ExampleSentence = h.annotator.Annotate(it.ExampleSentence)
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createWord adds a word to the collection.
// @Summary      Create a word
// @Description  Add a word. A missing reading and an unannotated example sentence are derived from the word when the reading dictionary is available.
// @Tags         Words
// @Accept       json
// @Produce      json
// @Param        body  body      WordRequest  true  "Word to create"
// @Success      201   {object}  WordResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /words [post]
func (h *Handler) createWord(w http.ResponseWriter, r *http.Request) {
	var req WordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	it := vocabulary.New("", "")
	h.apply(req, it)
	if err := it.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "reading is required")
		return
	}

	if err := h.store.SaveWord(r.Context(), it); err != nil {
		h.logger.Error("failed to save word", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save word")
		return
	}

	respondJSON(w, http.StatusCreated, toWordResponse(*it))
}

// listWords lists the collection.
// @Summary      List words
// @Tags         Words
// @Produce      json
// @Success      200  {array}   WordResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /words [get]
func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	words, err := h.store.ListWords(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load words")
		return
	}

	response := make([]WordResponse, len(words))
	for i, it := range words {
		response[i] = toWordResponse(it)
	}
	respondJSON(w, http.StatusOK, response)
}

// getWord returns one word.
// @Summary      Get a word
// @Tags         Words
// @Produce      json
// @Param        wordID  path      string  true  "Word ID"
// @Success      200     {object}  WordResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /words/{wordID} [get]
func (h *Handler) getWord(w http.ResponseWriter, r *http.Request) {
	it, err := h.store.GetWord(r.Context(), r.PathValue("wordID"))
	if h.handleStoreError(w, err, "word") {
		return
	}
	respondJSON(w, http.StatusOK, toWordResponse(*it))
}

// updateWord replaces a word's fields.
// @Summary      Update a word
// @Tags         Words
// @Accept       json
// @Produce      json
// @Param        wordID  path      string       true  "Word ID"
// @Param        body    body      WordRequest  true  "New fields"
// @Success      200     {object}  WordResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /words/{wordID} [put]
func (h *Handler) updateWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	it, err := h.store.GetWord(ctx, r.PathValue("wordID"))
	if h.handleStoreError(w, err, "word") {
		return
	}

	var req WordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	h.apply(req, it)
	if err := it.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "reading is required")
		return
	}

	if h.handleStoreError(w, h.store.UpdateWord(ctx, it), "word") {
		return
	}
	respondJSON(w, http.StatusOK, toWordResponse(*it))
}

// deleteWord removes a word. Running sessions keep their copy.
// @Summary      Delete a word
// @Tags         Words
// @Param        wordID  path  string  true  "Word ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /words/{wordID} [delete]
func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteWord(r.Context(), r.PathValue("wordID"))
	if h.handleStoreError(w, err, "word") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
