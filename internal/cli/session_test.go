package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/cli"
	"github.com/tartampluch/go-addressbook/internal/storage"
	"go.uber.org/goleak"
)

// TestMain fails the package if a session leaves its input reader running.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockStore records Save calls and returns scripted errors.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	args := m.Called(ctx)
	book, _ := args.Get(0).(*addressbook.AddressBook)
	return book, args.Error(1)
}

func (m *MockStore) Save(ctx context.Context, book *addressbook.AddressBook) error {
	return m.Called(ctx, book).Error(0)
}

func TestRun_SavesOnExit(t *testing.T) {
	store := storage.NewMemoryStore()
	var out bytes.Buffer
	in := strings.NewReader("add alice 1234567890\nadd-birthday alice 15.06.1990\nexit\nadd bob\n")

	s := cli.NewSession(addressbook.New(), store, in, &out, cli.Options{Language: "en", NoColor: true})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 1, store.Saves())
	snap, ok := store.Snapshot()
	require.True(t, ok)
	require.Len(t, snap.Contacts, 1, "Commands after exit are not run")
	assert.Equal(t, "Alice", snap.Contacts[0].Name)
	assert.Equal(t, []string{"1234567890"}, snap.Contacts[0].Phones)
	assert.Equal(t, "15.06.1990", snap.Contacts[0].Birthday)

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "Welcome to the assistant bot!"))
	assert.Contains(t, text, "No contacts in the address book.")
	assert.Contains(t, text, "Enter a command: Contact added.")
	assert.True(t, strings.HasSuffix(text, "Phonebook is saved. Good bye!\n"))
}

func TestRun_SavesOnEndOfInput(t *testing.T) {
	store := storage.NewMemoryStore()
	var out bytes.Buffer

	s := cli.NewSession(addressbook.New(), store, strings.NewReader("add alice"), &out, cli.Options{NoColor: true})
	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, 1, store.Saves())
	snap, _ := store.Snapshot()
	assert.Len(t, snap.Contacts, 1)
}

func TestRun_GreetsWithExistingContacts(t *testing.T) {
	store := storage.NewMemoryStore(storage.Contact{Name: "alice", Phones: []string{"1234567890"}})
	book, err := store.Load(context.Background())
	require.NoError(t, err)
	var out bytes.Buffer

	s := cli.NewSession(book, store, strings.NewReader("quit\n"), &out, cli.Options{NoColor: true})
	require.NoError(t, s.Run(context.Background()))

	assert.Contains(t, out.String(), "Your phonebook:")
	assert.Contains(t, out.String(), "1234567890")
}

func TestRun_CancelledContextStillSaves(t *testing.T) {
	store := storage.NewMemoryStore()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := cli.NewSession(addressbook.New(), store, pr, io.Discard, cli.Options{NoColor: true})

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, 1, store.Saves())
}

func TestRun_SaveFailureIsReported(t *testing.T) {
	store := new(MockStore)
	saveErr := errors.New("disk full")
	store.On("Save", mock.Anything, mock.Anything).Return(saveErr).Once()
	var out bytes.Buffer

	s := cli.NewSession(addressbook.New(), store, strings.NewReader("add alice\nclose\n"), &out, cli.Options{NoColor: true})
	err := s.Run(context.Background())

	assert.ErrorIs(t, err, saveErr)
	assert.Contains(t, out.String(), "Phonebook could not be saved: disk full")
	assert.NotContains(t, out.String(), "Good bye")
	store.AssertExpectations(t)

	book := store.Calls[0].Arguments.Get(1).(*addressbook.AddressBook)
	assert.Equal(t, 1, book.Len(), "The edited book is handed to the store")
}
