package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVCards_ForeignData(t *testing.T) {
	// Cards exported by another application: a name with a space, an
	// international phone number and a year-less birthday.
	stream := strings.Join([]string{
		"BEGIN:VCARD", "VERSION:3.0", "FN:John Doe", "TEL:1234567890", "END:VCARD",
		"BEGIN:VCARD", "VERSION:3.0", "FN:Jane", "TEL:+33 1 23 45 67 89", "TEL:0987654321", "BDAY:--02-29", "END:VCARD",
		"BEGIN:VCARD", "VERSION:4.0", "N:;Max;;;", "BDAY:19850704", "END:VCARD",
		"BEGIN:VCARD", "VERSION:4.0", "FN:Odd", "BDAY:someday", "END:VCARD",
		"BEGIN:VCARD", "VERSION:3.0", "FN:John Smith", "N:Smith;John;;;", "TEL:5555555555", "END:VCARD",
	}, "\r\n") + "\r\n"

	book, err := decodeVCards(context.Background(), strings.NewReader(stream))
	require.NoError(t, err)

	assert.Equal(t, 4, book.Len(), "The card with an invalid name and no N is skipped")

	jane, ok := book.Find("Jane")
	require.True(t, ok)
	assert.Equal(t, "0987654321", jane.PhoneList(), "Only valid phones are kept")
	bday, ok := jane.Birthday()
	require.True(t, ok)
	assert.Equal(t, "29.02.2000", bday.String(), "Year-less dates use the default leap year")

	maxRec, ok := book.Find("Max")
	require.True(t, ok, "N is used when FN is absent")
	bday, _ = maxRec.Birthday()
	assert.Equal(t, "04.07.1985", bday.String())

	john, ok := book.Find("John")
	require.True(t, ok, "N is used when FN is not a valid name")
	assert.Equal(t, "5555555555", john.PhoneList())

	odd, ok := book.Find("Odd")
	require.True(t, ok)
	_, ok = odd.Birthday()
	assert.False(t, ok, "Unparseable birthdays are dropped")
}

func TestDecodeVCards_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decodeVCards(ctx, strings.NewReader("BEGIN:VCARD\r\nVERSION:4.0\r\nFN:A\r\nEND:VCARD\r\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseVCardDate(t *testing.T) {
	tests := []struct {
		value   string
		want    time.Time
		wantErr bool
	}{
		{value: "1990-06-15", want: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		{value: "19900615", want: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		{value: "1990-06-15T10:00:00Z", want: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)},
		{value: "--0615", want: time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)},
		{value: "15/06/1990", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			b, err := parseVCardDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.Time())
		})
	}
}
