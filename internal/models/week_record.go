package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// DayEntry holds the raw input for a single weekday exactly as the
// registration form sends it: times as "HH:MM", break and travel as
// minute strings. An empty string means the field was left unset.
type DayEntry struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Break  string `json:"break"`
	Travel string `json:"travel"`
}

// WeekDays maps weekday names (Maandag..Vrijdag) to their entries.
type WeekDays map[string]DayEntry

func (d WeekDays) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *WeekDays) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	}
	return errors.New("unsupported source type for WeekDays")
}

type WeekRecord struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	UserID string `gorm:"size:36;index" json:"userId"`

	WeekNumber int `json:"weekNumber"`
	Year       int `json:"year"`

	Days    WeekDays `gorm:"type:jsonb" json:"data"`
	Remarks string   `gorm:"size:250" json:"remarks"`

	TotalHours     float64 `json:"totalHours"`
	OverUnderHours float64 `json:"overUnderHours"`

	Submitted bool      `json:"ingediend"`
	CreatedAt time.Time `json:"createdAt"`
}
