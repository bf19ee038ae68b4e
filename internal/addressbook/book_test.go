package addressbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
)

func names(b *addressbook.AddressBook) []string {
	var out []string
	for _, r := range b.Records() {
		out = append(out, r.Name().String())
	}
	return out
}

func TestAddressBook_AddAndFind(t *testing.T) {
	book := addressbook.New()
	book.AddRecord(newRecord(t, "carol"))
	book.AddRecord(newRecord(t, "alice"))
	book.AddRecord(newRecord(t, "bob"))

	assert.Equal(t, 3, book.Len())
	assert.Equal(t, []string{"Carol", "Alice", "Bob"}, names(book), "Insertion order is preserved")

	r, ok := book.Find("Alice")
	require.True(t, ok)
	assert.Equal(t, "Alice", r.Name().String())

	_, ok = book.Find("alice")
	assert.False(t, ok, "Lookup is an exact match on the canonical name")
}

func TestAddressBook_AddRecord_Overwrites(t *testing.T) {
	book := addressbook.New()
	book.AddRecord(newRecord(t, "Alice", "1111111111"))
	book.AddRecord(newRecord(t, "Bob"))
	book.AddRecord(newRecord(t, "ALICE", "2222222222"))

	assert.Equal(t, []string{"Alice", "Bob"}, names(book), "Replacement keeps the original position")
	r, _ := book.Find("Alice")
	assert.Equal(t, []string{"2222222222"}, phoneStrings(r), "No merge with the previous record")
}

func TestAddressBook_Delete(t *testing.T) {
	book := addressbook.New()
	book.AddRecord(newRecord(t, "Alice"))
	book.AddRecord(newRecord(t, "Bob"))

	book.Delete("Alice")
	assert.Equal(t, []string{"Bob"}, names(book))

	assert.NotPanics(t, func() { book.Delete("Nobody") })
	assert.Equal(t, 1, book.Len())

	book.AddRecord(newRecord(t, "Alice"))
	assert.Equal(t, []string{"Bob", "Alice"}, names(book), "A re-added contact goes to the end")
}

func TestAddressBook_Empty(t *testing.T) {
	book := addressbook.New()
	assert.Equal(t, 0, book.Len())
	assert.Empty(t, book.Records())
}
