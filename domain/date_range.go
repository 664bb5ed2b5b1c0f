package domain

import "time"

const secondsPerDay = 24 * 60 * 60

// DateRange is a stay expressed in calendar days. The end date is the
// check-out day, so the range covers the nights [start, end).
type DateRange struct {
	startDate time.Time
	endDate   time.Time
}

func NewDateRange(startDate, endDate time.Time) (DateRange, error) {
	if startDate.IsZero() {
		return DateRange{}, NewValidationError("A data de início é obrigatória")
	}
	if endDate.IsZero() {
		return DateRange{}, NewValidationError("A data de término é obrigatória")
	}

	start := toCalendarDay(startDate)
	end := toCalendarDay(endDate)
	if !start.Before(end) {
		return DateRange{}, NewValidationError("A data de início deve ser anterior à data de término")
	}
	return DateRange{startDate: start, endDate: end}, nil
}

// toCalendarDay keeps the date as seen in t's own location and drops the clock.
func toCalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) StartDate() time.Time { return r.startDate }

func (r DateRange) EndDate() time.Time { return r.endDate }

// Nights is the number of whole calendar days between start and end.
func (r DateRange) Nights() int {
	return int((r.endDate.Unix() - r.startDate.Unix()) / secondsPerDay)
}

// Overlaps reports whether both ranges share at least one night. A stay that
// ends on the day another one starts does not overlap it.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.startDate.Before(other.endDate) && other.startDate.Before(r.endDate)
}

// Contains reports whether the night starting on day belongs to the range.
func (r DateRange) Contains(day time.Time) bool {
	d := toCalendarDay(day)
	return !d.Before(r.startDate) && d.Before(r.endDate)
}

func (r DateRange) Equal(other DateRange) bool {
	return r.startDate.Equal(other.startDate) && r.endDate.Equal(other.endDate)
}
