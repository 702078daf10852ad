package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remaimber-it/vocabdrill/internal/domain/quiz"
	"github.com/remaimber-it/vocabdrill/internal/reading"
	"github.com/remaimber-it/vocabdrill/internal/service"
	"github.com/remaimber-it/vocabdrill/internal/store"
)

type testServer struct {
	mux   *http.ServeMux
	store *store.SQLiteStore
}

func newTestServer(t *testing.T, annotator *reading.Annotator) *testServer {
	t.Helper()
	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := quiz.DefaultConfig()
	cfg.AdvanceDelay = time.Hour
	sessions := service.NewSessionService(db, quiz.SpeakerFunc(func(string) {}), cfg, logger,
		quiz.WithRand(rand.New(rand.NewSource(7))))

	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(db, sessions, annotator, logger))
	return &testServer{mux: mux, store: db}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func (ts *testServer) addWord(t *testing.T, word, reading, meaning string) WordResponse {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/words", WordRequest{
		Word:     word,
		Reading:  reading,
		Meanings: []string{meaning},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[WordResponse](t, rec)
}

// viewJSON mirrors quiz.View on the wire.
type viewJSON struct {
	SessionID   string `json:"session_id"`
	Mode        string `json:"mode"`
	Phase       string `json:"phase"`
	Round       int    `json:"round"`
	TotalRounds int    `json:"total_rounds"`
	Kind        string `json:"kind"`
	Feedback    string `json:"feedback"`
	Matching    *struct {
		Left  []quiz.Card `json:"left"`
		Right []quiz.Card `json:"right"`
	} `json:"matching"`
}

type actionJSON struct {
	Feedback string   `json:"feedback"`
	Accepted bool     `json:"accepted"`
	Session  viewJSON `json:"session"`
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWords_CRUD(t *testing.T) {
	ts := newTestServer(t, nil)

	created := ts.addWord(t, "学生", "がくせい", "student")
	assert.Equal(t, 1, created.Level)

	rec := ts.do(t, http.MethodGet, "/words/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "がくせい", decode[WordResponse](t, rec).Reading)

	rec = ts.do(t, http.MethodPut, "/words/"+created.ID, WordRequest{
		Word:     "学生",
		Reading:  "がくせい",
		Meanings: []string{"student", "pupil"},
		Level:    2,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[WordResponse](t, rec)
	assert.Equal(t, []string{"student", "pupil"}, updated.Meanings)
	assert.Equal(t, 2, updated.Level)

	rec = ts.do(t, http.MethodGet, "/words", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]WordResponse](t, rec), 1)

	rec = ts.do(t, http.MethodDelete, "/words/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodGet, "/words/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "word not found", decode[ErrorResponse](t, rec).Error)

	rec = ts.do(t, http.MethodDelete, "/words/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateWord_Validation(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(t, http.MethodPost, "/words", WordRequest{Word: "学生", Reading: "がくせい"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[ErrorResponse](t, rec).Error, "meanings")

	rec = ts.do(t, http.MethodPost, "/words", WordRequest{Meanings: []string{"student"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Without a dictionary the reading cannot be derived.
	rec = ts.do(t, http.MethodPost, "/words", WordRequest{Word: "学生", Meanings: []string{"student"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/words", bytes.NewBufferString("{"))
	raw := httptest.NewRecorder()
	ts.mux.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)
}

func TestCreateWord_DerivesReading(t *testing.T) {
	annotator, err := reading.New()
	require.NoError(t, err)
	ts := newTestServer(t, annotator)

	rec := ts.do(t, http.MethodPost, "/words", WordRequest{
		Word:            "学生",
		Meanings:        []string{"student"},
		ExampleSentence: "私(わたし)は学生(がくせい)です。",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	w := decode[WordResponse](t, rec)
	assert.Equal(t, "がくせい", w.Reading)
	assert.Equal(t, "私(わたし)は学生(がくせい)です。", w.ExampleSentence)
}

func TestExportImport(t *testing.T) {
	src := newTestServer(t, nil)
	src.addWord(t, "学生", "がくせい", "student")
	src.addWord(t, "先生", "せんせい", "teacher")

	rec := src.do(t, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	export := decode[ExportData](t, rec)
	require.Len(t, export.Words, 2)
	assert.Equal(t, "学生", export.Words[0].Word)

	export.Words = append(export.Words, ExportWord{Word: "壊", Meanings: []string{"broken"}})

	dst := newTestServer(t, nil)
	rec = dst.do(t, http.MethodPost, "/import", export)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ImportResult{WordsCreated: 2, WordsSkipped: 1}, decode[ImportResult](t, rec))

	rec = dst.do(t, http.MethodGet, "/words", nil)
	assert.Len(t, decode[[]WordResponse](t, rec), 2)
}

func TestImport_DerivesReadings(t *testing.T) {
	annotator, err := reading.New()
	require.NoError(t, err)
	ts := newTestServer(t, annotator)

	rec := ts.do(t, http.MethodPost, "/import", ExportData{
		Version: "1.0",
		Words: []ExportWord{{
			Word:            "学生",
			Meanings:        []string{"student"},
			ExampleSentence: "私は学生です。",
		}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, ImportResult{WordsCreated: 1}, decode[ImportResult](t, rec))

	words := decode[[]WordResponse](t, ts.do(t, http.MethodGet, "/words", nil))
	require.Len(t, words, 1)
	assert.Equal(t, "がくせい", words[0].Reading)
	assert.Equal(t, "私(わたし)は学生(がくせい)です。", words[0].ExampleSentence)
	assert.Equal(t, 1, words[0].Level)
}

func TestCreateSession_Errors(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.addWord(t, "学生", "がくせい", "student")

	rec := ts.do(t, http.MethodPost, "/sessions", CreateSessionRequest{Mode: "quiz"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = ts.do(t, http.MethodPost, "/sessions", CreateSessionRequest{Mode: "marathon"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	zero := 0
	rec = ts.do(t, http.MethodPost, "/sessions", CreateSessionRequest{Mode: "review", TotalRounds: &zero})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPost, "/sessions/nope/advance", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewSession_PlayThrough(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.addWord(t, "学生", "がくせい", "student")
	ts.addWord(t, "先生", "せんせい", "teacher")

	rounds := 1
	rec := ts.do(t, http.MethodPost, "/sessions", CreateSessionRequest{Mode: "review", TotalRounds: &rounds})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	view := decode[viewJSON](t, rec)
	assert.Equal(t, "review", view.Mode)
	assert.Equal(t, "in_round", view.Phase)
	assert.Equal(t, "matching", view.Kind)
	require.NotNil(t, view.Matching)

	base := "/sessions/" + view.SessionID

	// A missing slot is a bad request, not slot 0.
	rec = ts.do(t, http.MethodPost, base+"/matching/left", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Input for another round kind is ignored.
	rec = ts.do(t, http.MethodPost, base+"/typing", TypingRequest{Answer: "がくせい"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[actionJSON](t, rec).Accepted)

	var last actionJSON
	for _, l := range view.Matching.Left {
		slot := l.Slot
		rec = ts.do(t, http.MethodPost, base+"/matching/left", SlotRequest{Slot: &slot})
		require.True(t, decode[actionJSON](t, rec).Accepted)

		cur := decode[viewJSON](t, ts.do(t, http.MethodGet, base, nil))
		for _, r := range cur.Matching.Right {
			if r.ItemID == l.ItemID && !r.Matched {
				slot := r.Slot
				rec = ts.do(t, http.MethodPost, base+"/matching/right", SlotRequest{Slot: &slot})
				last = decode[actionJSON](t, rec)
				require.Equal(t, "CORRECT", last.Feedback)
				break
			}
		}
	}
	assert.Equal(t, "round_complete", last.Session.Phase)

	rec = ts.do(t, http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decode[actionJSON](t, rec)
	assert.True(t, done.Accepted)
	assert.Equal(t, "finished", done.Session.Phase)

	rec = ts.do(t, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode[[]SessionResultResponse](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, view.SessionID, results[0].SessionID)
	assert.Equal(t, store.OutcomeFinished, results[0].Outcome)
	assert.Equal(t, 1, results[0].RoundsCompleted)
}

func TestAbandonSession(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, w := range [][3]string{
		{"学生", "がくせい", "student"},
		{"先生", "せんせい", "teacher"},
		{"学校", "がっこう", "school"},
		{"本", "ほん", "book"},
	} {
		ts.addWord(t, w[0], w[1], w[2])
	}

	rec := ts.do(t, http.MethodPost, "/sessions", CreateSessionRequest{})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	view := decode[viewJSON](t, rec)
	assert.Equal(t, "quiz", view.Mode)
	assert.Equal(t, 10, view.TotalRounds)

	rec = ts.do(t, http.MethodDelete, "/sessions/"+view.SessionID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/sessions/"+view.SessionID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/results?limit=5", nil)
	results := decode[[]SessionResultResponse](t, rec)
	require.Len(t, results, 1)
	assert.Equal(t, store.OutcomeAbandoned, results[0].Outcome)
	assert.Equal(t, 0, results[0].RoundsCompleted)

	rec = ts.do(t, http.MethodGet, "/results?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://app.test"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/words", nil)
	req.Header.Set("Origin", "http://app.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "http://app.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/words", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, "/x", line["path"])
}
