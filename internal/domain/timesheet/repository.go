package timesheet

import (
	"context"

	"github.com/rensdev/urenregistratie-api/internal/models"
)

// Repository is the durable collection of submitted week records. Records
// are append-only: no update or delete is ever exposed.
//
// All calls may block on storage I/O. Implementations must make Append
// atomic from a reader's perspective: concurrent appends both survive and
// no reader ever observes a partially written collection.
type Repository interface {
	// Append validates the record (ValidateRecord), stamps the
	// store-assigned fields and persists it. It returns a
	// *ValidationError or a *PersistenceError.
	Append(ctx context.Context, rec *models.WeekRecord) error

	// ListAll returns every stored record, in no guaranteed order.
	ListAll(ctx context.Context) ([]models.WeekRecord, error)

	// ListByUser filters on exact userId match. An unknown user yields an
	// empty slice, not an error.
	ListByUser(ctx context.Context, userID string) ([]models.WeekRecord, error)
}
