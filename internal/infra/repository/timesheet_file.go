package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

// TimesheetFileRepository keeps the whole collection in a single JSON
// file (Hours.json). Every append re-reads the file, adds one record and
// rewrites it. The mutex serializes that read-modify-write cycle so two
// concurrent appends cannot drop each other, and the temp-file rename
// keeps readers from ever seeing a half-written collection.
type TimesheetFileRepository struct {
	path string
	mu   sync.Mutex
}

func NewTimesheetFileRepository(path string) *TimesheetFileRepository {
	return &TimesheetFileRepository{path: path}
}

func (r *TimesheetFileRepository) Append(
	ctx context.Context,
	rec *models.WeekRecord,
) error {

	if err := prepare(rec); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		return err
	}

	records = append(records, *rec)
	return r.write(records)
}

func (r *TimesheetFileRepository) ListAll(
	ctx context.Context,
) ([]models.WeekRecord, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *TimesheetFileRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]models.WeekRecord, error) {

	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := []models.WeekRecord{}
	for _, rec := range all {
		if rec.UserID == userID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// read loads the full collection. A missing file is an empty collection,
// not an error.
func (r *TimesheetFileRepository) read() ([]models.WeekRecord, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []models.WeekRecord{}, nil
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "read", Err: err}
	}

	records := []models.WeekRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &domain.PersistenceError{Op: "decode", Err: err}
	}
	return records, nil
}

// write replaces the collection atomically: marshal to a temp file next
// to the target, then rename over it.
func (r *TimesheetFileRepository) write(records []models.WeekRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &domain.PersistenceError{Op: "encode", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return &domain.PersistenceError{Op: "write", Err: err}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &domain.PersistenceError{Op: "write", Err: err}
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.PersistenceError{Op: "write", Err: err}
	}
	return nil
}
