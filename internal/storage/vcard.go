package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// VCardStore keeps the snapshot as a vCard 4.0 stream, one card per contact,
// so the book can be exchanged with other address book software.
//
// Cards produced elsewhere may not satisfy the validation rules; the store
// keeps what it can and logs what it drops.
type VCardStore struct {
	Path string
}

var _ Store = (*VCardStore)(nil)

func NewVCardStore(path string) *VCardStore {
	return &VCardStore{Path: path}
}

func (s *VCardStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	data, ok, err := readSnapshotFile(s.Path)
	if err != nil {
		return nil, err
	}
	if !ok {
		logAbsent(ctx, s.Path, config.FormatVCard)
		return addressbook.New(), nil
	}

	book, err := decodeVCards(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	logLoaded(ctx, s.Path, config.FormatVCard, book.Len())
	return book, nil
}

func (s *VCardStore) Save(ctx context.Context, book *addressbook.AddressBook) error {
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)

	for _, r := range book.Records() {
		if err := enc.Encode(cardOf(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
		}
	}
	if err := writeFileAtomic(s.Path, buf.Bytes()); err != nil {
		return err
	}
	logSaved(ctx, s.Path, config.FormatVCard, book.Len())
	return nil
}

func cardOf(r *addressbook.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, r.Name().String())
	card.SetName(&vcard.Name{GivenName: r.Name().String()})
	for _, p := range r.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{Value: p.String()})
	}
	if b, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, b.Time().Format(config.DateFormatFullDash))
	}
	return card
}

// decodeVCards reads cards until EOF. A broken stream fails the load; invalid
// names, phones and dates are skipped with a warning to maximize data recovery.
func decodeVCards(ctx context.Context, r io.Reader) (*addressbook.AddressBook, error) {
	book := addressbook.New()
	dec := vcard.NewDecoder(r)
	log := slog.With(config.LogKeyComponent, config.CompStorage)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
		}

		// Name Strategy: FN (Formatted) > N (Structured given name)
		name := card.PreferredValue(vcard.FieldFormattedName)
		rec, err := addressbook.NewRecord(name)
		if err != nil {
			if n := card.Name(); n != nil && n.GivenName != "" {
				name = n.GivenName
				rec, err = addressbook.NewRecord(name)
			}
		}
		if err != nil {
			log.WarnContext(ctx, config.MsgSkippedCard,
				config.LogKeyName, name,
				config.LogKeyError, err)
			continue
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			if err := rec.AddPhone(tel); err != nil {
				log.WarnContext(ctx, config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel)
			}
		}

		if bday := card.Value(vcard.FieldBirthday); bday != "" {
			b, err := parseVCardDate(bday)
			if err != nil {
				log.WarnContext(ctx, config.MsgSkippedDate,
					config.LogKeyName, name,
					config.LogKeyValue, bday)
			} else if err := rec.AddBirthday(b.String()); err != nil {
				return nil, err
			}
		}

		book.AddRecord(rec)
	}
	return book, nil
}

// parseVCardDate handles the vCard BDAY formats in use.
// Year-less dates land on config.DefaultLeapYear so that --02-29 survives.
func parseVCardDate(value string) (addressbook.Birthday, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return addressbook.NewBirthday(t.Year(), t.Month(), t.Day())
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return addressbook.NewBirthday(config.DefaultLeapYear, t.Month(), t.Day())
		}
	}

	return addressbook.Birthday{}, errors.New(config.ErrDateParse)
}
