// Package history persists one row per saved schedule computation in a
// local SQLite database. Rows are append-only until explicitly deleted
// or cleared.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/sporadisk/punchout/format"
	"github.com/sporadisk/punchout/schedule"
)

var ErrNotFound = errors.New("history entry not found")

// Entry is one saved computation, shaped for display: labels are
// preformatted, active time is kept in hours with one decimal.
type Entry struct {
	ID           string
	DateLabel    string
	ActiveHours  float64
	BreakMinutes int
	LogoutLabel  string
	CreatedAt    int64
}

type Store struct {
	db *sql.DB
}

// DefaultBaseDir returns the default data directory (~/.punchout).
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".punchout"), nil
}

// Open initializes the SQLite database at baseDir/history.db. The
// baseDir parameter lets tests point at t.TempDir().
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	dbPath := filepath.Join(baseDir, "history.db")
	dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	// best-effort, the file exists after migration
	_ = os.Chmod(dbPath, 0600)

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
	  id            TEXT PRIMARY KEY,
	  date_label    TEXT NOT NULL,
	  active_hours  REAL NOT NULL,
	  break_minutes INTEGER NOT NULL,
	  logout_label  TEXT NOT NULL,
	  created_at    INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_created_at
	ON entries(created_at DESC);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Save appends an entry and returns it with its generated ID.
func (s *Store) Save(ctx context.Context, e Entry) (Entry, error) {
	e.ID = ulid.Make().String()
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, date_label, active_hours, break_minutes, logout_label, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.DateLabel, e.ActiveHours, e.BreakMinutes, e.LogoutLabel, e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	return e, nil
}

// List returns all entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date_label, active_hours, break_minutes, logout_label, created_at
		 FROM entries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		err = rows.Scan(&e.ID, &e.DateLabel, &e.ActiveHours, &e.BreakMinutes, &e.LogoutLabel, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Delete removes one entry by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes all entries and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear entries: %w", err)
	}
	return res.RowsAffected()
}

// FromResult shapes a schedule result into a history entry.
func FromResult(res schedule.Result) Entry {
	return Entry{
		DateLabel:    res.Now.Format("2006-01-02"),
		ActiveHours:  math.Round(float64(res.ActiveMinutes)/60*10) / 10,
		BreakMinutes: res.TotalBreakMinutes,
		LogoutLabel:  format.Clock(res.ProjectedLogout),
		CreatedAt:    res.Now.Unix(),
	}
}
