package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

// TimesheetGormRepository stores one row per week record. Inserts are
// independent rows, so concurrent submissions never overwrite each other.
type TimesheetGormRepository struct {
	db *gorm.DB
}

func NewTimesheetGormRepository(db *gorm.DB) *TimesheetGormRepository {
	return &TimesheetGormRepository{db: db}
}

// prepare stamps the store-assigned fields on a validated record. Shared
// by every repository backend.
func prepare(rec *models.WeekRecord) *domain.ValidationError {
	if err := domain.ValidateRecord(rec); err != nil {
		return err
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Year == 0 {
		rec.Year = rec.CreatedAt.Year()
	}
	rec.Submitted = true
	return nil
}

func (r *TimesheetGormRepository) Append(
	ctx context.Context,
	rec *models.WeekRecord,
) error {

	if err := prepare(rec); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return &domain.PersistenceError{Op: "append", Err: err}
	}
	return nil
}

func (r *TimesheetGormRepository) ListAll(
	ctx context.Context,
) ([]models.WeekRecord, error) {

	records := []models.WeekRecord{}
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}
	return records, nil
}

func (r *TimesheetGormRepository) ListByUser(
	ctx context.Context,
	userID string,
) ([]models.WeekRecord, error) {

	records := []models.WeekRecord{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "list", Err: err}
	}
	return records, nil
}
