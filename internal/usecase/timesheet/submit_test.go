package timesheet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/models"
	ucTimesheet "github.com/rensdev/urenregistratie-api/internal/usecase/timesheet"
)

type repoMock struct {
	AppendFunc     func(ctx context.Context, rec *models.WeekRecord) error
	ListAllFunc    func(ctx context.Context) ([]models.WeekRecord, error)
	ListByUserFunc func(ctx context.Context, userID string) ([]models.WeekRecord, error)
}

func (m *repoMock) Append(ctx context.Context, rec *models.WeekRecord) error {
	return m.AppendFunc(ctx, rec)
}

func (m *repoMock) ListAll(ctx context.Context) ([]models.WeekRecord, error) {
	return m.ListAllFunc(ctx)
}

func (m *repoMock) ListByUser(ctx context.Context, userID string) ([]models.WeekRecord, error) {
	return m.ListByUserFunc(ctx, userID)
}

func completeDays() models.WeekDays {
	days := models.WeekDays{}
	for _, day := range domain.Weekdays {
		days[day] = models.DayEntry{Start: "09:00", End: "17:00", Break: "30"}
	}
	return days
}

func validInput() ucTimesheet.SubmitRegistrationInput {
	return ucTimesheet.SubmitRegistrationInput{
		UserID:     "u1",
		WeekNumber: "12",
		Days:       completeDays(),
		Remarks:    "gewone week",
		CreatedAt:  time.Date(2025, 3, 21, 16, 0, 0, 0, time.UTC),
	}
}

func TestSubmitRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("derives totals server-side and appends", func(t *testing.T) {
		var stored *models.WeekRecord
		repo := &repoMock{
			AppendFunc: func(ctx context.Context, rec *models.WeekRecord) error {
				stored = rec
				return nil
			},
		}

		uc := ucTimesheet.NewSubmitRegistration(repo, nil)
		rec, err := uc.Execute(ctx, validInput())
		require.NoError(t, err)

		require.NotNil(t, stored)
		assert.Equal(t, "u1", stored.UserID)
		assert.Equal(t, 12, stored.WeekNumber)
		assert.Equal(t, 37.5, stored.TotalHours)
		assert.Equal(t, -2.5, stored.OverUnderHours)
		assert.Equal(t, rec, stored)
	})

	t.Run("rejects a non-numeric week number", func(t *testing.T) {
		repo := &repoMock{
			AppendFunc: func(ctx context.Context, rec *models.WeekRecord) error {
				t.Fatal("append must not be called")
				return nil
			},
		}

		uc := ucTimesheet.NewSubmitRegistration(repo, nil)
		_, err := uc.Execute(ctx, func() ucTimesheet.SubmitRegistrationInput {
			in := validInput()
			in.WeekNumber = "twaalf"
			return in
		}())

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects an incomplete week with the field map", func(t *testing.T) {
		repo := &repoMock{
			AppendFunc: func(ctx context.Context, rec *models.WeekRecord) error {
				t.Fatal("append must not be called")
				return nil
			},
		}

		in := validInput()
		in.Days["Donderdag"] = models.DayEntry{Start: "09:00", End: "17:00"}

		uc := ucTimesheet.NewSubmitRegistration(repo, nil)
		_, err := uc.Execute(ctx, in)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, validationErr.Fields["Donderdag"]["break"])
	})

	t.Run("rejects remarks over the limit", func(t *testing.T) {
		repo := &repoMock{
			AppendFunc: func(ctx context.Context, rec *models.WeekRecord) error {
				t.Fatal("append must not be called")
				return nil
			},
		}

		in := validInput()
		for len(in.Remarks) <= domain.MaxRemarksLength {
			in.Remarks += "x"
		}

		uc := ucTimesheet.NewSubmitRegistration(repo, nil)
		_, err := uc.Execute(ctx, in)

		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("propagates store failures untouched", func(t *testing.T) {
		storeErr := &domain.PersistenceError{Op: "append", Err: errors.New("disk full")}
		repo := &repoMock{
			AppendFunc: func(ctx context.Context, rec *models.WeekRecord) error {
				return storeErr
			},
		}

		uc := ucTimesheet.NewSubmitRegistration(repo, nil)
		_, err := uc.Execute(ctx, validInput())
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestListRegistrations(t *testing.T) {
	ctx := context.Background()

	t.Run("sorts most recent week first", func(t *testing.T) {
		repo := &repoMock{
			ListAllFunc: func(ctx context.Context) ([]models.WeekRecord, error) {
				return []models.WeekRecord{
					{WeekNumber: 10, Year: 2025},
					{WeekNumber: 50, Year: 2024},
					{WeekNumber: 12, Year: 2025},
				}, nil
			},
		}

		uc := ucTimesheet.NewListRegistrations(repo)
		records, err := uc.Execute(ctx, "")
		require.NoError(t, err)

		require.Len(t, records, 3)
		assert.Equal(t, 12, records[0].WeekNumber)
		assert.Equal(t, 10, records[1].WeekNumber)
		assert.Equal(t, 50, records[2].WeekNumber)
	})

	t.Run("filters on userId", func(t *testing.T) {
		var askedFor string
		repo := &repoMock{
			ListByUserFunc: func(ctx context.Context, userID string) ([]models.WeekRecord, error) {
				askedFor = userID
				return nil, nil
			},
		}

		uc := ucTimesheet.NewListRegistrations(repo)
		records, err := uc.Execute(ctx, "u1")
		require.NoError(t, err)

		assert.Equal(t, "u1", askedFor)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})
}
