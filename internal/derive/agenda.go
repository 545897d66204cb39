package derive

import (
	"sort"
	"time"

	"github.com/Nicola-Proscia/CRM-Famiglia-frontend/internal/model"
)

// RangeFilter narrows upcoming appointments to a wall-clock window.
type RangeFilter string

const (
	FilterAll   RangeFilter = "all"
	FilterToday RangeFilter = "today"
	FilterWeek  RangeFilter = "week"
	FilterMonth RangeFilter = "month"
)

func (f RangeFilter) Valid() bool {
	switch f {
	case FilterAll, FilterToday, FilterWeek, FilterMonth:
		return true
	}
	return false
}

// SplitUpcomingPast partitions appointments around the given instant.
// An appointment starting exactly now counts as upcoming.
func SplitUpcomingPast(appointments []model.Appointment, now time.Time) (upcoming, past []model.Appointment) {
	for _, a := range appointments {
		if a.StartDate.Before(now) {
			past = append(past, a)
		} else {
			upcoming = append(upcoming, a)
		}
	}
	return upcoming, past
}

// FilterRange keeps appointments whose start falls within the filter window,
// measured from the local start of today. "today" covers the full calendar
// day inclusive; "week" extends the upper bound to start-of-today+7 days;
// "month" to start-of-today+1 calendar month.
func FilterRange(appointments []model.Appointment, filter RangeFilter, now time.Time) []model.Appointment {
	if filter == FilterAll {
		return appointments
	}

	dayStart := StartOfDay(now)
	var dayEnd time.Time
	switch filter {
	case FilterToday:
		dayEnd = dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case FilterWeek:
		dayEnd = dayStart.AddDate(0, 0, 7)
	case FilterMonth:
		dayEnd = dayStart.AddDate(0, 1, 0)
	default:
		return appointments
	}

	var filtered []model.Appointment
	for _, a := range appointments {
		if !a.StartDate.Before(dayStart) && !a.StartDate.After(dayEnd) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// StartOfDay truncates to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayGroup is one calendar-day section of the agenda.
type DayGroup struct {
	Day          time.Time
	Appointments []model.Appointment
}

// GroupByDay buckets appointments by local calendar day, days ascending and
// appointments within a day ordered by start time.
func GroupByDay(appointments []model.Appointment) []DayGroup {
	byDay := make(map[time.Time][]model.Appointment)
	for _, a := range appointments {
		day := StartOfDay(a.StartDate)
		byDay[day] = append(byDay[day], a)
	}

	groups := make([]DayGroup, 0, len(byDay))
	for day, list := range byDay {
		sort.Slice(list, func(i, j int) bool { return list[i].StartDate.Before(list[j].StartDate) })
		groups = append(groups, DayGroup{Day: day, Appointments: list})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Day.Before(groups[j].Day) })
	return groups
}
