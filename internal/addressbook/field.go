package addressbook

import (
	"fmt"
	"regexp"
	"time"
	"unicode"

	"github.com/tartampluch/go-addressbook/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var birthdayPattern = regexp.MustCompile(config.BirthdayPattern)

// Name is the validated, capitalized identity of a contact.
// It is the lookup key of an AddressBook.
type Name struct {
	value string
}

// ParseName accepts a non-empty string made only of letters and returns it
// capitalized: first letter upper case, the rest lower case.
func ParseName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}
	for _, r := range raw {
		if !unicode.IsLetter(r) {
			return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, raw)
		}
	}
	// A Caser keeps state, so a fresh one is needed per call.
	return Name{value: cases.Title(language.Und).String(raw)}, nil
}

// String returns the canonical form.
func (n Name) String() string {
	return n.value
}

// Phone is a validated 10-digit phone number.
type Phone struct {
	value string
}

// ParsePhone accepts exactly config.PhoneDigits ASCII digits.
func ParsePhone(raw string) (Phone, error) {
	if len(raw) != config.PhoneDigits {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
		}
	}
	return Phone{value: raw}, nil
}

// String returns the digits as entered.
func (p Phone) String() string {
	return p.value
}

// Birthday is a calendar date without time-of-day.
type Birthday struct {
	date time.Time // midnight UTC
}

// ParseBirthday parses a DD.MM.YYYY string. The layout is checked first, then
// the date must survive a calendar round-trip (30.02 and 31.04 are rejected).
func ParseBirthday(raw string) (Birthday, error) {
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	t, err := time.ParseInLocation(config.BirthdayLayout, raw, time.UTC)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday{date: t}, nil
}

// NewBirthday builds a Birthday from date components, rejecting impossible dates.
func NewBirthday(year int, month time.Month, day int) (Birthday, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Birthday{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return Birthday{date: t}, nil
}

// Year returns the birth year.
func (b Birthday) Year() int { return b.date.Year() }

// Month returns the birth month.
func (b Birthday) Month() time.Month { return b.date.Month() }

// Day returns the day of the month.
func (b Birthday) Day() int { return b.date.Day() }

// Time returns the date as midnight UTC.
func (b Birthday) Time() time.Time { return b.date }

// String formats the date as DD.MM.YYYY.
func (b Birthday) String() string {
	return b.date.Format(config.BirthdayLayout)
}
