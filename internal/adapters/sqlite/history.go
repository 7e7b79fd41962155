package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"filegen/internal/application"
	"filegen/internal/domain"
	"filegen/internal/ports"
)

const schemaVersion = "2"

// History implements ports.GenerationHistory using SQLite
type History struct {
	db     *sql.DB
	dbPath string
}

// Ensure History implements GenerationHistory
var _ ports.GenerationHistory = (*History)(nil)

// NewHistory creates a new SQLite history store
func NewHistory() *History {
	return &History{}
}

// Open creates or opens the database at path
func (h *History) Open(path string) error {
	if path == "" {
		return fmt.Errorf("history path is required")
	}
	h.dbPath = application.ExpandHome(path)

	if err := os.MkdirAll(filepath.Dir(h.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", h.dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	h.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			format TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			dirs_created INTEGER NOT NULL,
			files_created INTEGER NOT NULL,
			files_skipped INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			path TEXT NOT NULL,
			PRIMARY KEY (run_id, path)
		);
		CREATE TABLE IF NOT EXISTS run_errors (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			message TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (h *History) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Path returns the database file in use
func (h *History) Path() string {
	return h.dbPath
}

// Record stores run with its written files and errors in one transaction
func (h *History) Record(run *domain.GenerationRun) (int64, error) {
	if h.db == nil {
		return 0, fmt.Errorf("history is not open")
	}

	tx, err := h.beginTx()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	id, err := tx.insertRun(run)
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	for _, path := range run.Stats.Written {
		if err := tx.insertFile(id, path); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to record file %s: %w", path, err)
		}
	}
	for i, msg := range run.Stats.Errors {
		if err := tx.insertError(id, i, msg); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to record error: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	run.ID = id
	return id, nil
}

// List returns up to limit runs, newest first
func (h *History) List(limit int) ([]domain.GenerationRun, error) {
	if h.db == nil {
		return nil, fmt.Errorf("history is not open")
	}

	rows, err := h.db.Query(`
		SELECT id, source, format, output_dir, created_at,
			dirs_created, files_created, files_skipped
		FROM runs ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	var runs []domain.GenerationRun
	for rows.Next() {
		var (
			r         domain.GenerationRun
			format    string
			createdAt int64
		)
		if err := rows.Scan(&r.ID, &r.Source, &format, &r.OutputDir, &createdAt,
			&r.Stats.DirectoriesCreated, &r.Stats.FilesCreated, &r.Stats.FilesSkipped); err != nil {
			rows.Close()
			return nil, err
		}
		r.Format, _ = domain.ParseFormat(format)
		r.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, r)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		id := runs[i].ID
		if runs[i].Stats.Written, err = h.runStrings(`SELECT path FROM run_files WHERE run_id = ? ORDER BY rowid`, id); err != nil {
			return nil, err
		}
		if runs[i].Stats.Errors, err = h.runStrings(`SELECT message FROM run_errors WHERE run_id = ? ORDER BY seq`, id); err != nil {
			return nil, err
		}
	}
	return runs, nil
}

// runStrings collects the single text column query returns for a run
func (h *History) runStrings(query string, runID int64) ([]string, error) {
	rows, err := h.db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (h *History) beginTx() (*recordTx, error) {
	tx, err := h.db.Begin()
	if err != nil {
		return nil, err
	}
	return &recordTx{tx: tx}, nil
}
