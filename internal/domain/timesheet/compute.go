package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rensdev/urenregistratie-api/internal/models"
)

// ContractHours is the fixed weekly target every submission is compared
// against.
const ContractHours = 40

// Weekdays are the five registration days, in form order.
var Weekdays = []string{"Maandag", "Dinsdag", "Woensdag", "Donderdag", "Vrijdag"}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}

	return hours*60 + minutes, true
}

// parseMinutes reads a minute field from the form. Empty or malformed
// input counts as zero, same as the registration form does.
func parseMinutes(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// WorkedMinutes computes the net worked minutes between two times of day
// on a single day, minus the break. Unset or unparsable times contribute
// zero. End before start is floored to zero, never negative and never an
// error.
func WorkedMinutes(start, end string, breakMinutes int) int {
	if start == "" || end == "" {
		return 0
	}

	startMin, ok := parseClock(start)
	if !ok {
		return 0
	}
	endMin, ok := parseClock(end)
	if !ok {
		return 0
	}

	worked := endMin - startMin - breakMinutes
	if worked < 0 {
		return 0
	}
	return worked
}

// DayWorkedMinutes is WorkedMinutes applied to a raw day entry.
func DayWorkedMinutes(entry models.DayEntry) int {
	return WorkedMinutes(entry.Start, entry.End, parseMinutes(entry.Break))
}

// DayTotalHours returns the day total in hours, two decimals. Travel time
// is always additive, breaks never apply to it.
func DayTotalHours(entry models.DayEntry) float64 {
	minutes := DayWorkedMinutes(entry) + parseMinutes(entry.Travel)
	return roundHours(minutes)
}

// WeekTotals holds the derived totals for one submitted week.
type WeekTotals struct {
	TotalWorkedMinutes int
	TotalBreakMinutes  int
	HoursWorked        float64
	OverUnder          float64
}

// ComputeWeekTotals aggregates the five weekdays. Breaks are deducted
// exactly once, per day inside WorkedMinutes; the result does not depend
// on the iteration order of the map.
func ComputeWeekTotals(days models.WeekDays) WeekTotals {
	totals := WeekTotals{}

	for _, day := range Weekdays {
		entry := days[day]
		totals.TotalWorkedMinutes += DayWorkedMinutes(entry) + parseMinutes(entry.Travel)
		totals.TotalBreakMinutes += parseMinutes(entry.Break)
	}

	totals.HoursWorked = roundHours(totals.TotalWorkedMinutes)
	totals.OverUnder = round2(totals.HoursWorked - ContractHours)
	return totals
}

// FormatHours renders an hour value with two decimals, as shown to the
// employee ("37.50", "-2.50").
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}

func roundHours(minutes int) float64 {
	return round2(float64(minutes) / 60)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
