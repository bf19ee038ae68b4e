package addressbook

import (
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// UpcomingBirthday is one line of the "who to congratulate this week" report.
type UpcomingBirthday struct {
	Name string

	// CongratulationDate is the occurrence moved off the weekend to Monday.
	CongratulationDate time.Time

	// Phone is the first phone on file, or config.NoPhone.
	Phone string
}

// UpcomingBirthdays lists contacts whose next birthday falls within
// config.UpcomingWindowDays of reference, today included. Only the calendar
// date of reference matters. Results follow the book's insertion order.
func (b *AddressBook) UpcomingBirthdays(reference time.Time) []UpcomingBirthday {
	today := dateOf(reference)
	var upcoming []UpcomingBirthday

	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		occurrence := nextOccurrence(today, bday)
		diff := daysBetween(today, occurrence)
		if diff < 0 || diff >= config.UpcomingWindowDays {
			continue
		}

		phone := config.NoPhone
		if len(r.phones) > 0 {
			phone = r.phones[0].String()
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               r.Name().String(),
			CongratulationDate: shiftWeekend(occurrence),
			Phone:              phone,
		})
	}
	return upcoming
}

// nextOccurrence returns the birthday in today's year, or in the next year if
// it has already passed. Go's time.Date normalizes Feb 29 to March 1st in a
// non-leap year, which is the policy for leaplings.
func nextOccurrence(today time.Time, bday Birthday) time.Time {
	candidate := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, bday.Month(), bday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return candidate
}

// shiftWeekend moves Saturday and Sunday to the following Monday.
func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// dateOf drops the time-of-day and location of t, keeping its local calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days from a to b; both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
