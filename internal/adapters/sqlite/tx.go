package sqlite

import (
	"database/sql"

	"filegen/internal/domain"
)

// recordTx groups the writes of a single Record call
type recordTx struct {
	tx *sql.Tx
}

// insertRun adds the run row and returns its ID
func (t *recordTx) insertRun(run *domain.GenerationRun) (int64, error) {
	res, err := t.tx.Exec(`
		INSERT INTO runs (source, format, output_dir, created_at,
			dirs_created, files_created, files_skipped)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.Source, run.Format.String(), run.OutputDir, run.CreatedAt.UnixNano(),
		run.Stats.DirectoriesCreated, run.Stats.FilesCreated, run.Stats.FilesSkipped)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// insertFile records one file written by a run
func (t *recordTx) insertFile(runID int64, path string) error {
	_, err := t.tx.Exec(`INSERT OR IGNORE INTO run_files (run_id, path) VALUES (?, ?)`, runID, path)
	return err
}

// insertError records the seq-th error message of a run
func (t *recordTx) insertError(runID int64, seq int, msg string) error {
	_, err := t.tx.Exec(`INSERT INTO run_errors (run_id, seq, message) VALUES (?, ?, ?)`, runID, seq, msg)
	return err
}

// Commit commits the transaction
func (t *recordTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *recordTx) Rollback() error {
	return t.tx.Rollback()
}
