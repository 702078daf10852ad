package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Mode        string   `json:"mode,omitempty" validate:"omitempty,oneof=quiz review" example:"quiz"`
	TotalRounds *int     `json:"total_rounds,omitempty" validate:"omitempty,min=1,max=100" example:"10"`
	WordIDs     []string `json:"word_ids,omitempty"`
}

type SlotRequest struct {
	Slot *int `json:"slot" validate:"required,min=0" example:"0"`
}

type TypingRequest struct {
	Answer string `json:"answer" example:"がくせい"`
}

type FragmentRequest struct {
	FragmentID *int `json:"fragment_id" validate:"required,min=0" example:"2"`
}

type ChooseRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// ActionResponse reports the effect of one input and the session after it.
// Accepted is false when the input did not apply to the live round.
type ActionResponse struct {
	Feedback quiz.Feedback `json:"feedback" swaggertype:"string" enums:"NONE,CORRECT,WRONG"`
	Accepted bool          `json:"accepted"`
	Session  quiz.View     `json:"session"`
}

type SessionResultResponse struct {
	SessionID       string    `json:"session_id"`
	Mode            string    `json:"mode" example:"quiz"`
	Outcome         string    `json:"outcome" example:"finished"`
	RoundsCompleted int       `json:"rounds_completed" example:"10"`
	TotalRounds     int       `json:"total_rounds" example:"10"`
	StartedAt       time.Time `json:"started_at"`
	EndedAt         time.Time `json:"ended_at"`
}

// ── Helpers ─────────────────────────────────────────────────────────────────

// liveSession resolves {sessionID}. Returns nil after writing a 404.
func (h *Handler) liveSession(w http.ResponseWriter, r *http.Request) *quiz.Session {
	s, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleSessionError(w, err) {
		return nil
	}
	return s
}

func respondFeedback(w http.ResponseWriter, s *quiz.Session, fb quiz.Feedback) {
	respondJSON(w, http.StatusOK, ActionResponse{
		Feedback: fb,
		Accepted: fb != quiz.FeedbackNone,
		Session:  s.View(),
	})
}

func respondAccepted(w http.ResponseWriter, s *quiz.Session, accepted bool) {
	respondJSON(w, http.StatusOK, ActionResponse{
		Feedback: s.Feedback(),
		Accepted: accepted,
		Session:  s.View(),
	})
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession opens a session over the collection or a subset of it.
// @Summary      Start a session
// @Description  Quiz mode mixes all round kinds and needs four words. Review mode runs matching rounds and needs one.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Session settings"
// @Success      201   {object}  quiz.View
// @Failure      400   {object}  ErrorResponse
// @Failure      422   {object}  ErrorResponse  "not enough words"
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	mode, err := quiz.ParseMode(req.Mode)
	if h.handleSessionError(w, err) {
		return
	}

	start := service.StartRequest{Mode: mode, WordIDs: req.WordIDs}
	if req.TotalRounds != nil {
		start.TotalRounds = *req.TotalRounds
	}

	session, err := h.sessions.Start(r.Context(), start)
	if h.handleSessionError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, session.View())
}

// getSession returns the live state of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  quiz.View
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	respondJSON(w, http.StatusOK, s.View())
}

// selectLeft picks a card in the left column of a matching round.
// @Summary      Select a left card
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string       true  "Session ID"
// @Param        body       body      SlotRequest  true  "Left slot"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/matching/left [post]
func (h *Handler) selectLeft(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req SlotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondAccepted(w, s, s.SelectLeft(*req.Slot))
}

// selectRight pairs the selected left card with a right card.
// @Summary      Select a right card
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string       true  "Session ID"
// @Param        body       body      SlotRequest  true  "Right slot"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/matching/right [post]
func (h *Handler) selectRight(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req SlotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondFeedback(w, s, s.SelectRight(*req.Slot))
}

// submitTyping answers a typing round.
// @Summary      Submit a typed reading
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string         true  "Session ID"
// @Param        body       body      TypingRequest  true  "Answer"
// @Success      200        {object}  ActionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/typing [post]
func (h *Handler) submitTyping(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req TypingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondFeedback(w, s, s.SubmitTyping(req.Answer))
}

// placeFragment moves a fragment from the pool to the end of the answer.
// @Summary      Place a sentence fragment
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string           true  "Session ID"
// @Param        body       body      FragmentRequest  true  "Fragment"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/sentence/place [post]
func (h *Handler) placeFragment(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req FragmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondAccepted(w, s, s.PlaceFragment(*req.FragmentID))
}

// removeFragment moves a fragment from the answer back to the pool.
// @Summary      Remove a sentence fragment
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string           true  "Session ID"
// @Param        body       body      FragmentRequest  true  "Fragment"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/sentence/remove [post]
func (h *Handler) removeFragment(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req FragmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondAccepted(w, s, s.RemoveFragment(*req.FragmentID))
}

// checkSentence grades the assembled sentence.
// @Summary      Check the assembled sentence
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  ActionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/sentence/check [post]
func (h *Handler) checkSentence(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	respondFeedback(w, s, s.CheckSentence())
}

// chooseOption answers a listening round.
// @Summary      Choose a listening option
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string         true  "Session ID"
// @Param        body       body      ChooseRequest  true  "Chosen option"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/listening/choose [post]
func (h *Handler) chooseOption(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	var req ChooseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	respondFeedback(w, s, s.ChooseOption(req.ItemID))
}

// replayAudio speaks the listening target again.
// @Summary      Replay the listening audio
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  ActionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/listening/replay [post]
func (h *Handler) replayAudio(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	respondAccepted(w, s, s.ReplayAudio())
}

// advance moves past a solved round.
// @Summary      Advance to the next round
// @Description  Required in review mode. In quiz mode it skips the remaining wait.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  ActionResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	s := h.liveSession(w, r)
	if s == nil {
		return
	}
	respondAccepted(w, s, s.Advance())
}

// abandonSession exits a session early.
// @Summary      Abandon a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	if h.handleSessionError(w, h.sessions.Abandon(r.PathValue("sessionID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listResults returns ended sessions, newest first.
// @Summary      List session results
// @Tags         Sessions
// @Produce      json
// @Param        limit  query     int  false  "Maximum results (default 50)"
// @Success      200    {array}   SessionResultResponse
// @Failure      400    {object}  ErrorResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	results, err := h.store.ListSessionResults(r.Context(), limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results")
		return
	}

	response := make([]SessionResultResponse, len(results))
	for i, res := range results {
		response[i] = SessionResultResponse{
			SessionID:       res.SessionID,
			Mode:            res.Mode,
			Outcome:         res.Outcome,
			RoundsCompleted: res.RoundsCompleted,
			TotalRounds:     res.TotalRounds,
			StartedAt:       res.StartedAt,
			EndedAt:         res.EndedAt,
		}
	}
	respondJSON(w, http.StatusOK, response)
}
