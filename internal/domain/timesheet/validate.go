package timesheet

import "github.com/rensdev/urenregistratie-api/internal/models"

// MaxRemarksLength caps the free-text remarks field.
const MaxRemarksLength = 250

// validBreaks is the fixed set the break dropdown offers. "0" counts as a
// filled-in value.
var validBreaks = map[int]bool{0: true, 15: true, 30: true, 45: true, 60: true}

// IsCompleteWeek reports whether every one of the five weekdays has start,
// end and break filled in. Travel is never required. On failure the
// returned map identifies the exact missing or invalid fields.
func IsCompleteWeek(days models.WeekDays) (bool, FieldErrors) {
	fields := FieldErrors{}

	for _, day := range Weekdays {
		entry := days[day]
		if entry.Start == "" {
			fields.mark(day, "start")
		}
		if entry.End == "" {
			fields.mark(day, "end")
		}
		if entry.Break == "" {
			fields.mark(day, "break")
		} else if !validBreaks[parseMinutes(entry.Break)] {
			fields.mark(day, "break")
		}
	}

	if len(fields) > 0 {
		return false, fields
	}
	return true, nil
}

// ValidateRecord re-checks every store constraint at the persistence
// boundary. The store never trusts upstream validation alone.
func ValidateRecord(rec *models.WeekRecord) *ValidationError {
	if rec == nil {
		return &ValidationError{Message: "record ontbreekt"}
	}
	if rec.UserID == "" {
		return &ValidationError{Message: "userId is verplicht"}
	}
	if rec.WeekNumber <= 0 {
		return &ValidationError{Message: "weekNumber is verplicht"}
	}
	if rec.CreatedAt.IsZero() {
		return &ValidationError{Message: "createdAt is verplicht"}
	}
	if len(rec.Remarks) > MaxRemarksLength {
		return &ValidationError{Message: "opmerkingen zijn te lang (max 250 tekens)"}
	}

	if ok, fields := IsCompleteWeek(rec.Days); !ok {
		return &ValidationError{Message: "week is niet volledig ingevuld", Fields: fields}
	}
	return nil
}
