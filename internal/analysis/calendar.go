package analysis

import (
	"time"

	"github.com/bobmcallan/investiq/internal/models"
)

type eventTemplate struct {
	event  string
	impact models.Level
}

// eventTemplates is indexed by offset modulo its length.
var eventTemplates = []eventTemplate{
	{"FOMC Meeting - Interest Rate Decision", models.LevelHigh},
	{"Major Tech Company Earnings Release", models.LevelMedium},
	{"Crypto Industry Conference", models.LevelMedium},
	{"AI Regulation Committee Hearing", models.LevelHigh},
	{"Economic Data Release (CPI/PPI)", models.LevelMedium},
	{"Blockchain Network Upgrade", models.LevelLow},
}

// DefaultEventOffsets are the day offsets used when none are configured.
var DefaultEventOffsets = []int{3, 7, 14, 21, 30}

// UpcomingEvents returns one event per offset, dated offset calendar days
// after now and formatted as a UTC date.
func UpcomingEvents(now time.Time, offsets []int) []models.CalendarEvent {
	events := make([]models.CalendarEvent, 0, len(offsets))
	for _, days := range offsets {
		tpl := eventTemplates[((days%len(eventTemplates))+len(eventTemplates))%len(eventTemplates)]
		events = append(events, models.CalendarEvent{
			Date:   now.AddDate(0, 0, days).UTC().Format(time.DateOnly),
			Event:  tpl.event,
			Impact: tpl.impact,
		})
	}
	return events
}
