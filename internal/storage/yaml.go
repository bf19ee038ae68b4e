package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
	"gopkg.in/yaml.v3"
)

// YAMLStore keeps the snapshot as a YAML document, convenient for hand edits.
type YAMLStore struct {
	Path string
}

var _ Store = (*YAMLStore)(nil)

func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{Path: path}
}

func (s *YAMLStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	data, ok, err := readSnapshotFile(s.Path)
	if err != nil {
		return nil, err
	}
	if !ok {
		logAbsent(ctx, s.Path, config.FormatYAML)
		return addressbook.New(), nil
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	book, err := snap.Book()
	if err != nil {
		return nil, err
	}
	logLoaded(ctx, s.Path, config.FormatYAML, book.Len())
	return book, nil
}

func (s *YAMLStore) Save(ctx context.Context, book *addressbook.AddressBook) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(config.YAMLIndent)
	if err := enc.Encode(SnapshotOf(book)); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}
	if err := writeFileAtomic(s.Path, buf.Bytes()); err != nil {
		return err
	}
	logSaved(ctx, s.Path, config.FormatYAML, book.Len())
	return nil
}
