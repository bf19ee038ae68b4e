package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// JSONStore keeps the snapshot as an indented JSON document.
type JSONStore struct {
	Path string
}

var _ Store = (*JSONStore)(nil)

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path}
}

func (s *JSONStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	data, ok, err := readSnapshotFile(s.Path)
	if err != nil {
		return nil, err
	}
	if !ok {
		logAbsent(ctx, s.Path, config.FormatJSON)
		return addressbook.New(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotDecode, err)
	}
	book, err := snap.Book()
	if err != nil {
		return nil, err
	}
	logLoaded(ctx, s.Path, config.FormatJSON, book.Len())
	return book, nil
}

func (s *JSONStore) Save(ctx context.Context, book *addressbook.AddressBook) error {
	data, err := json.MarshalIndent(SnapshotOf(book), "", config.JSONIndent)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotEncode, err)
	}
	if err := writeFileAtomic(s.Path, data); err != nil {
		return err
	}
	logSaved(ctx, s.Path, config.FormatJSON, book.Len())
	return nil
}

func logAbsent(ctx context.Context, path, format string) {
	slog.InfoContext(ctx, config.MsgSnapshotAbsent,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyFormat, format,
	)
}

func logLoaded(ctx context.Context, path, format string, count int) {
	slog.InfoContext(ctx, config.MsgSnapshotLoaded,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyFormat, format,
		config.LogKeyCount, count,
	)
}

func logSaved(ctx context.Context, path, format string, count int) {
	slog.InfoContext(ctx, config.MsgSnapshotSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeyFormat, format,
		config.LogKeyCount, count,
	)
}
