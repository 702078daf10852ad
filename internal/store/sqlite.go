// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/vocabdrill/internal/domain/vocabulary"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
    id TEXT PRIMARY KEY,
    word TEXT NOT NULL,
    reading TEXT NOT NULL,
    romaji TEXT NOT NULL DEFAULT '',
    meanings TEXT NOT NULL,
    level INTEGER NOT NULL DEFAULT 1,
    example_sentence TEXT NOT NULL DEFAULT '',
    example_meaning TEXT NOT NULL DEFAULT '',
    image_url TEXT,
    learned_at TEXT
);

CREATE TABLE IF NOT EXISTS session_results (
    session_id TEXT PRIMARY KEY,
    mode TEXT NOT NULL,
    outcome TEXT NOT NULL,
    rounds_completed INTEGER NOT NULL,
    total_rounds INTEGER NOT NULL,
    started_at TEXT NOT NULL,
    ended_at TEXT NOT NULL
);
`

// timeFormat is fixed width so stored timestamps sort as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

const wordColumns = `id, word, reading, romaji, meanings, level, example_sentence, example_meaning, image_url, learned_at`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers anyway; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Words
// ============================================================================

func (s *SQLiteStore) SaveWord(ctx context.Context, it *vocabulary.Item) error {
	meanings, imageURL, learnedAt, err := encodeWord(it)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO words ("+wordColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		it.ID, it.Word, it.Reading, it.Romaji, meanings, it.Level,
		it.ExampleSentence, it.ExampleMeaning, imageURL, learnedAt,
	)
	return err
}

func (s *SQLiteStore) UpdateWord(ctx context.Context, it *vocabulary.Item) error {
	meanings, imageURL, learnedAt, err := encodeWord(it)
	if err != nil {
		return err
	}
	result, err := s.db.ExecContext(ctx,
		`UPDATE words SET word = ?, reading = ?, romaji = ?, meanings = ?, level = ?,
		 example_sentence = ?, example_meaning = ?, image_url = ?, learned_at = ?
		 WHERE id = ?`,
		it.Word, it.Reading, it.Romaji, meanings, it.Level,
		it.ExampleSentence, it.ExampleMeaning, imageURL, learnedAt, it.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) GetWord(ctx context.Context, id string) (*vocabulary.Item, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+wordColumns+" FROM words WHERE id = ?", id)
	it, err := scanWord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

// ListWords returns the whole collection, oldest first.
func (s *SQLiteStore) ListWords(ctx context.Context) ([]vocabulary.Item, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+wordColumns+" FROM words ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	return collectWords(rows)
}

// ListWordsByIDs returns the words among ids that exist. Unknown ids are
// skipped.
func (s *SQLiteStore) ListWordsByIDs(ctx context.Context, ids []string) ([]vocabulary.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+wordColumns+" FROM words WHERE id IN ("+placeholders+") ORDER BY rowid", args...)
	if err != nil {
		return nil, err
	}
	return collectWords(rows)
}

func (s *SQLiteStore) DeleteWord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*vocabulary.Item, error) {
	var it vocabulary.Item
	var meanings string
	var imageURL, learnedAt sql.NullString
	if err := row.Scan(&it.ID, &it.Word, &it.Reading, &it.Romaji, &meanings, &it.Level,
		&it.ExampleSentence, &it.ExampleMeaning, &imageURL, &learnedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(meanings), &it.Meanings); err != nil {
		return nil, fmt.Errorf("decode meanings of %s: %w", it.ID, err)
	}
	if imageURL.Valid {
		u := imageURL.String
		it.ImageURL = &u
	}
	if learnedAt.Valid {
		ts, err := time.Parse(timeFormat, learnedAt.String)
		if err != nil {
			return nil, fmt.Errorf("decode learned_at of %s: %w", it.ID, err)
		}
		it.LearnedAt = &ts
	}
	return &it, nil
}

func collectWords(rows *sql.Rows) ([]vocabulary.Item, error) {
	defer rows.Close()

	var words []vocabulary.Item
	for rows.Next() {
		it, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *it)
	}
	return words, rows.Err()
}

func encodeWord(it *vocabulary.Item) (meanings string, imageURL, learnedAt sql.NullString, err error) {
	meaningsList := it.Meanings
	if meaningsList == nil {
		meaningsList = []string{}
	}
	b, err := json.Marshal(meaningsList)
	if err != nil {
		return "", imageURL, learnedAt, fmt.Errorf("encode meanings: %w", err)
	}
	if it.ImageURL != nil {
		imageURL = sql.NullString{String: *it.ImageURL, Valid: true}
	}
	if it.LearnedAt != nil {
		learnedAt = sql.NullString{String: it.LearnedAt.UTC().Format(timeFormat), Valid: true}
	}
	return string(b), imageURL, learnedAt, nil
}

// ============================================================================
// Session results
// ============================================================================

func (s *SQLiteStore) SaveSessionResult(ctx context.Context, r SessionResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_results (session_id, mode, outcome, rounds_completed, total_rounds, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Mode, r.Outcome, r.RoundsCompleted, r.TotalRounds,
		r.StartedAt.UTC().Format(timeFormat), r.EndedAt.UTC().Format(timeFormat),
	)
	return err
}

// ListSessionResults returns the most recent results first.
func (s *SQLiteStore) ListSessionResults(ctx context.Context, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, mode, outcome, rounds_completed, total_rounds, started_at, ended_at
		 FROM session_results ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SessionResult
	for rows.Next() {
		var r SessionResult
		var startedAt, endedAt string
		if err := rows.Scan(&r.SessionID, &r.Mode, &r.Outcome, &r.RoundsCompleted, &r.TotalRounds, &startedAt, &endedAt); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(timeFormat, startedAt); err != nil {
			return nil, fmt.Errorf("decode started_at: %w", err)
		}
		if r.EndedAt, err = time.Parse(timeFormat, endedAt); err != nil {
			return nil, fmt.Errorf("decode ended_at: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
