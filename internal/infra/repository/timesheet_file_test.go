package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	timesheet "github.com/rensdev/urenregistratie-api/internal/domain/timesheet"
	"github.com/rensdev/urenregistratie-api/internal/infra/repository"
	"github.com/rensdev/urenregistratie-api/internal/models"
)

func testRecord(userID string, weekNumber int) *models.WeekRecord {
	days := models.WeekDays{}
	for _, day := range timesheet.Weekdays {
		days[day] = models.DayEntry{Start: "09:00", End: "17:00", Break: "30"}
	}

	return &models.WeekRecord{
		UserID:         userID,
		WeekNumber:     weekNumber,
		Days:           days,
		TotalHours:     37.5,
		OverUnderHours: -2.5,
		CreatedAt:      time.Date(2025, 3, 21, 16, 0, 0, 0, time.UTC),
	}
}

func newFileRepo(t *testing.T) *repository.TimesheetFileRepository {
	t.Helper()
	return repository.NewTimesheetFileRepository(filepath.Join(t.TempDir(), "Hours.json"))
}

func TestTimesheetFileRepository_Append(t *testing.T) {
	ctx := context.Background()

	t.Run("append then list by user", func(t *testing.T) {
		repo := newFileRepo(t)

		rec := testRecord("u1", 12)
		require.NoError(t, repo.Append(ctx, rec))

		assert.NotEmpty(t, rec.ID)
		assert.True(t, rec.Submitted)
		assert.Equal(t, 2025, rec.Year)

		mine, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, rec.ID, mine[0].ID)
		assert.Equal(t, 37.5, mine[0].TotalHours)
		assert.Equal(t, "09:00", mine[0].Days["Maandag"].Start)

		others, err := repo.ListByUser(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, others)
	})

	t.Run("duplicate user and week are both retained", func(t *testing.T) {
		repo := newFileRepo(t)

		require.NoError(t, repo.Append(ctx, testRecord("u1", 12)))
		require.NoError(t, repo.Append(ctx, testRecord("u1", 12)))

		mine, err := repo.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, mine, 2)
	})

	t.Run("incomplete record is rejected and nothing is written", func(t *testing.T) {
		repo := newFileRepo(t)

		rec := testRecord("u1", 12)
		rec.Days["Dinsdag"] = models.DayEntry{Start: "09:00"}

		err := repo.Append(ctx, rec)
		var validationErr *timesheet.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.True(t, validationErr.Fields["Dinsdag"]["end"])

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("missing userId is rejected", func(t *testing.T) {
		repo := newFileRepo(t)

		rec := testRecord("", 12)
		var validationErr *timesheet.ValidationError
		assert.ErrorAs(t, repo.Append(ctx, rec), &validationErr)
	})

	t.Run("unreadable medium surfaces a persistence error", func(t *testing.T) {
		// The store path points at a directory, so reads must fail.
		repo := repository.NewTimesheetFileRepository(t.TempDir())

		err := repo.Append(ctx, testRecord("u1", 12))
		var persistenceErr *timesheet.PersistenceError
		assert.ErrorAs(t, err, &persistenceErr)
	})
}

func TestTimesheetFileRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)

	// Two submissions racing through the read-modify-write cycle must
	// both survive.
	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errs[0] = repo.Append(ctx, testRecord("u1", 12))
	}()
	go func() {
		defer wg.Done()
		errs[1] = repo.Append(ctx, testRecord("u2", 12))
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	seen := map[string]bool{}
	for _, rec := range all {
		seen[rec.UserID] = true
	}
	assert.True(t, seen["u1"])
	assert.True(t, seen["u2"])
}

func TestTimesheetFileRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is an empty collection", func(t *testing.T) {
		repo := newFileRepo(t)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
