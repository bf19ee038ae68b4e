package storage

import (
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Contact is the persisted shape of one Record.
type Contact struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"` // DD.MM.YYYY
}

// Snapshot is the persisted shape of an AddressBook. Contacts keep the
// book's insertion order.
type Snapshot struct {
	Contacts []Contact `json:"contacts" yaml:"contacts"`
}

// SnapshotOf captures book.
func SnapshotOf(book *addressbook.AddressBook) Snapshot {
	s := Snapshot{Contacts: make([]Contact, 0, book.Len())}
	for _, r := range book.Records() {
		c := Contact{
			Name:   r.Name().String(),
			Phones: make([]string, 0),
		}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if b, ok := r.Birthday(); ok {
			c.Birthday = b.String()
		}
		s.Contacts = append(s.Contacts, c)
	}
	return s
}

// Book rebuilds an AddressBook, re-validating every field.
func (s Snapshot) Book() (*addressbook.AddressBook, error) {
	book := addressbook.New()
	for _, c := range s.Contacts {
		r, err := c.Record()
		if err != nil {
			return nil, err
		}
		book.AddRecord(r)
	}
	return book, nil
}

// Record rebuilds one contact through the core validators.
func (c Contact) Record() (*addressbook.Record, error) {
	r, err := addressbook.NewRecord(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotRecord, err)
	}
	for _, p := range c.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", config.ErrSnapshotRecord, c.Name, err)
		}
	}
	if c.Birthday != "" {
		if err := r.AddBirthday(c.Birthday); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", config.ErrSnapshotRecord, c.Name, err)
		}
	}
	return r, nil
}
