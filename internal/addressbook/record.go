package addressbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact of an AddressBook.
// The name is fixed at creation; renaming means delete and recreate.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a contact with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := ParseName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the canonical contact name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates and appends a phone. Duplicates are allowed.
func (r *Record) AddPhone(phone string) error {
	p, err := ParsePhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// DeletePhone removes the first phone equal to phone and reports whether one was found.
func (r *Record) DeletePhone(phone string) bool {
	i := r.indexOf(phone)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// EditPhone replaces the first phone equal to oldPhone, keeping its position.
// newPhone is validated before the list is searched, so an invalid
// replacement is reported even when oldPhone is absent.
func (r *Record) EditPhone(oldPhone, newPhone string) (bool, error) {
	p, err := ParsePhone(newPhone)
	if err != nil {
		return false, err
	}
	i := r.indexOf(oldPhone)
	if i < 0 {
		return false, nil
	}
	r.phones[i] = p
	return true, nil
}

// AddBirthday parses raw and overwrites any existing birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// PhoneList joins the phones with "; ", or returns empty when there are none.
func (r *Record) PhoneList() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.String()
	}
	return strings.Join(values, config.PhoneJoin)
}

// String renders "Name: ..., Phones: ..., Birthday: ...".
func (r *Record) String() string {
	phones := r.PhoneList()
	if phones == "" {
		phones = config.NoPhones
	}
	birthday := config.NoBirthday
	if b, ok := r.Birthday(); ok {
		birthday = b.String()
	}
	return fmt.Sprintf(config.RecordFormat, r.name, phones, birthday)
}

func (r *Record) indexOf(phone string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool {
		return p.value == phone
	})
}
