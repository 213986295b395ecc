package briefing

import "time"

// WeekNumber returns the week of the year for t in t's location. Week 1
// is the week containing January 1, weeks start on Sunday, and only whole
// calendar days count, so the result is stable for every instant of a day.
func WeekNumber(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	days := t.YearDay() - 1
	n := days + int(jan1.Weekday()) + 1
	return (n + 6) / 7
}
