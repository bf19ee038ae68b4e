// Package calendar renders the birthdays of an address book as an iCalendar feed.
package calendar

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Generator converts an AddressBook into an .ics document.
type Generator struct {
	Clock addressbook.Clock // Interface for time mocking.

	// Reminder is an ISO8601 duration (e.g., "-P1D") for a DISPLAY alarm; empty disables it.
	Reminder string

	// FormatSummary allows the caller to inject localized strings.
	FormatSummary func(name string, age int) string
}

// Generate builds one all-day event per contact birthday for the previous,
// current and next year.
func (g *Generator) Generate(book *addressbook.AddressBook) ([]byte, error) {
	cal := ical.NewCalendar()

	// Set standard iCalendar headers
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	withBday := 0
	for _, r := range book.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		withBday++

		for _, e := range g.createEvents(r.Name().String(), bday, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	g.logSuccess(book.Len(), withBday)

	// Handle case where no events are found.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// createEvents generates events for CurrentYear-1, CurrentYear, and CurrentYear+1.
// No event is created before the person is born.
func (g *Generator) createEvents(name string, bday addressbook.Birthday, now time.Time) []*ical.Event {
	currentYear := now.Year()
	uidBase := uidFor(name, bday)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < bday.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := g.summary(name, y-bday.Year())
		event.Props.SetText(config.PropSummary, summary)

		// Go's time.Date normalizes Feb 29 to March 1st in non-leap years.
		eventDate := time.Date(y, bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if g.Reminder != "" {
			addAlarm(event, g.Reminder, summary)
		}

		events = append(events, event)
	}
	return events
}

func (g *Generator) summary(name string, age int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(name, age)
	}
	if age > 0 {
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
	return fmt.Sprintf(config.FallbackSummary, name)
}

// uidFor derives a UID that stays stable across exports.
func uidFor(name string, bday addressbook.Birthday) string {
	input := fmt.Sprintf(config.FormatHashInput, name, bday.Time().Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

func (g *Generator) logSuccess(total, withBday int) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompCalendar,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, total),
			slog.Int(config.LogKeyFound, withBday),
		),
	)
}
