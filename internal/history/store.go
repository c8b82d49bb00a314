package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"pdfsqueeze/internal/config"
)

// Run records one completed compression invocation.
type Run struct {
	ID          int64
	RunID       string
	InputPath   string
	OutputPath  string
	Preset      string
	TargetDPI   int
	InputBytes  int64
	OutputBytes int64
	CreatedAt   time.Time
}

// Ratio returns the output size as a percentage of the input size.
func (r Run) Ratio() float64 {
	if r.InputBytes <= 0 {
		return 0
	}
	return float64(r.OutputBytes) / float64(r.InputBytes) * 100
}

// Store manages run history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the
// schema. A file lock next to the database serializes initialization across
// concurrent CLI invocations.
func Open(cfg *config.Config) (*Store, error) {
	if cfg == nil || cfg.History.Path == "" {
		return nil, fmt.Errorf("history path not configured")
	}

	dbPath := cfg.History.Path
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	lock := flock.New(dbPath + ".lock")
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    input_path TEXT NOT NULL,
    output_path TEXT NOT NULL,
    preset TEXT NOT NULL,
    target_dpi INTEGER NOT NULL DEFAULT 0,
    input_bytes INTEGER NOT NULL,
    output_bytes INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Add inserts a completed run and returns the stored record.
func (s *Store) Add(ctx context.Context, run Run) (*Run, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	timestamp := run.CreatedAt.UTC().Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO runs (
            run_id, input_path, output_path, preset, target_dpi,
            input_bytes, output_bytes, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.InputPath,
		run.OutputPath,
		run.Preset,
		run.TargetDPI,
		run.InputBytes,
		run.OutputBytes,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	run.ID = id
	return &run, nil
}

// Recent returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, run_id, input_path, output_path, preset, target_dpi,
        input_bytes, output_bytes, created_at
        FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var created string
		if err := rows.Scan(
			&run.ID, &run.RunID, &run.InputPath, &run.OutputPath, &run.Preset,
			&run.TargetDPI, &run.InputBytes, &run.OutputBytes, &created,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, created); parseErr == nil {
			run.CreatedAt = parsed
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Clear deletes all recorded runs and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}
