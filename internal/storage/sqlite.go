// Package storage provides SQLite-based persistence for round results and
// player preferences. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/XThorin/WizardChase/internal/game"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished round.
type ScoreEntry struct {
	ID         int64
	RoundID    string
	Player     string
	Score      int
	TimePlayed int // Seconds
	NewRecord  bool
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			time_played INTEGER NOT NULL DEFAULT 0,
			new_record INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(player);

		CREATE TABLE IF NOT EXISTS settings (
			profile TEXT PRIMARY KEY,
			language_code TEXT NOT NULL,
			music_enabled INTEGER NOT NULL DEFAULT 1,
			sound_enabled INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	created := e.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO scores (round_id, player, score, time_played, new_record, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.RoundID, e.Player, e.Score, e.TimePlayed, e.NewRecord, created.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult implements game.ResultSaver.
func (s *Store) SaveResult(r game.Result) error {
	_, err := s.SaveScore(ScoreEntry{
		RoundID:    r.RoundID,
		Player:     r.Player,
		Score:      r.Score,
		TimePlayed: r.TimePlayed,
		NewRecord:  r.NewRecord,
		CreatedAt:  r.CreatedAt,
	})
	return err
}

var _ game.ResultSaver = (*Store)(nil)

// TopScores retrieves the top N rounds ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, round_id, player, score, time_played, new_record, created_at
		 FROM scores
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerScores retrieves the top N rounds of one player.
func (s *Store) PlayerScores(player string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, round_id, player, score, time_played, new_record, created_at
		 FROM scores
		 WHERE player = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		player, limit,
	)
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RoundID, &e.Player, &e.Score, &e.TimePlayed, &e.NewRecord, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score ever recorded, or 0.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all rounds.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM scores"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all rounds.
type Stats struct {
	Rounds     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics over all rounds.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores`,
	).Scan(&stats.Rounds, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// LoadPreferences returns the stored settings for profile, or defaults when
// the profile has none.
func (s *Store) LoadPreferences(profile string, defaults game.Preferences) (game.Preferences, error) {
	p := defaults
	err := s.db.QueryRow(
		`SELECT language_code, music_enabled, sound_enabled FROM settings WHERE profile = ?`,
		profile,
	).Scan(&p.Language, &p.MusicEnabled, &p.SoundEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("storage: cannot load preferences: %w", err)
	}
	return p, nil
}

// SavePreferences writes the settings for profile.
func (s *Store) SavePreferences(profile string, p game.Preferences) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (profile, language_code, music_enabled, sound_enabled, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   language_code = excluded.language_code,
		   music_enabled = excluded.music_enabled,
		   sound_enabled = excluded.sound_enabled,
		   updated_at = excluded.updated_at`,
		profile, p.Language, p.MusicEnabled, p.SoundEnabled,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preferences: %w", err)
	}
	return nil
}

// ProfilePreferences binds a Store to one profile.
type ProfilePreferences struct {
	store   *Store
	profile string
}

// Profile returns a game.PreferenceSaver for profile.
func (s *Store) Profile(profile string) ProfilePreferences {
	return ProfilePreferences{store: s, profile: profile}
}

// SavePreferences implements game.PreferenceSaver.
func (p ProfilePreferences) SavePreferences(prefs game.Preferences) error {
	return p.store.SavePreferences(p.profile, prefs)
}

var _ game.PreferenceSaver = ProfilePreferences{}
