package timesheet

import (
	"context"
	"sort"

	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

type ListRegistrations struct {
	repo domain.Repository
}

func NewListRegistrations(repo domain.Repository) *ListRegistrations {
	return &ListRegistrations{repo: repo}
}

// Execute returns all registrations, or only those of one user when
// userID is set. The result is sorted most recent week first; the stored
// totals are served as-is, never recomputed.
func (uc *ListRegistrations) Execute(
	ctx context.Context,
	userID string,
) ([]models.WeekRecord, error) {

	var records []models.WeekRecord
	var err error

	if userID != "" {
		records, err = uc.repo.ListByUser(ctx, userID)
	} else {
		records, err = uc.repo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year > records[j].Year
		}
		return records[i].WeekNumber > records[j].WeekNumber
	})

	if records == nil {
		records = []models.WeekRecord{}
	}
	return records, nil
}
