package calendar_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/calendar"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func bookOf(t *testing.T, birthdays map[string]string, order ...string) *addressbook.AddressBook {
	t.Helper()
	book := addressbook.New()
	for _, name := range order {
		r, err := addressbook.NewRecord(name)
		require.NoError(t, err)
		if b := birthdays[name]; b != "" {
			require.NoError(t, r.AddBirthday(b))
		}
		book.AddRecord(r)
	}
	return book
}

func decode(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal
}

func TestGenerate_Events(t *testing.T) {
	gen := &calendar.Generator{Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)}}
	book := bookOf(t, map[string]string{"John": "15.06.2000", "Nobirthday": ""}, "John", "Nobirthday")

	data, err := gen.Generate(book)
	require.NoError(t, err)

	cal := decode(t, data)
	events := cal.Events()
	require.Len(t, events, 3, "Previous, current and next year")

	var starts []string
	for _, e := range events {
		starts = append(starts, e.Props.Get(config.PropDTStart).Value)
	}
	assert.Equal(t, []string{"20240615", "20250615", "20260615"}, starts)

	icsStr := string(data)
	assert.Contains(t, icsStr, "SUMMARY:Birthday: John (25)")
	assert.Contains(t, icsStr, "PRODID:"+config.ICalProdid)
	assert.NotContains(t, icsStr, "BEGIN:VALARM", "No reminder configured")
}

func TestGenerate_NotBeforeBirth(t *testing.T) {
	gen := &calendar.Generator{Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}
	book := bookOf(t, map[string]string{"Baby": "03.03.2025"}, "Baby")

	data, err := gen.Generate(book)
	require.NoError(t, err)

	events := decode(t, data).Events()
	assert.Len(t, events, 2, "No event may precede the birth year")
	assert.Contains(t, string(data), "SUMMARY:Birthday: Baby\r\n", "Age 0 uses the plain summary")
}

func TestGenerate_StableUIDs(t *testing.T) {
	gen := &calendar.Generator{Clock: MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}}
	book := bookOf(t, map[string]string{"John": "15.06.2000"}, "John")

	first, err := gen.Generate(book)
	require.NoError(t, err)
	second, err := gen.Generate(book)
	require.NoError(t, err)

	uid := func(data []byte) string {
		return decode(t, data).Events()[0].Props.Get(config.PropUID).Value
	}
	assert.Equal(t, uid(first), uid(second))
	assert.True(t, strings.HasSuffix(uid(first), "-2024@"+config.ICalDomain))
}

func TestGenerate_ReminderAndLocalizedSummary(t *testing.T) {
	gen := &calendar.Generator{
		Clock:    MockClock{CurrentTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		Reminder: "-P1D",
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("Anniversaire : %s (%d)", name, age)
		},
	}
	book := bookOf(t, map[string]string{"John": "15.06.2000"}, "John")

	data, err := gen.Generate(book)
	require.NoError(t, err)

	icsStr := string(data)
	assert.Contains(t, icsStr, "Anniversaire : John (25)")
	assert.Contains(t, icsStr, "BEGIN:VALARM")
	assert.Contains(t, icsStr, "TRIGGER:-P1D")
	assert.NotContains(t, icsStr, "TRIGGER;VALUE=TEXT")
}

func TestGenerate_Empty(t *testing.T) {
	gen := &calendar.Generator{Clock: MockClock{CurrentTime: time.Now()}}

	data, err := gen.Generate(addressbook.New())

	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}
