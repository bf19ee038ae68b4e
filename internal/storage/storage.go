// Package storage persists AddressBook snapshots.
//
// A Store loads the whole book once at session start and replaces the whole
// snapshot once at session end. A missing snapshot loads as an empty book.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Store defines the load/save contract between the core and a snapshot backend.
type Store interface {
	// Load returns the persisted book, or an empty one if nothing was saved yet.
	Load(ctx context.Context) (*addressbook.AddressBook, error)

	// Save replaces the persisted snapshot with book.
	Save(ctx context.Context, book *addressbook.AddressBook) error
}

// ErrFormatUnsupported is returned by Open for unknown formats or extensions.
var ErrFormatUnsupported = errors.New(config.ErrFormatUnsupport)

// Open returns the Store for path. When format is empty it is inferred from
// the file extension.
func Open(path, format string) (Store, error) {
	if format == "" {
		format = FormatOf(path)
	}
	switch format {
	case config.FormatJSON:
		return NewJSONStore(path), nil
	case config.FormatYAML:
		return NewYAMLStore(path), nil
	case config.FormatVCard:
		return NewVCardStore(path), nil
	case config.FormatSQLite:
		return NewSQLiteStore(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormatUnsupported, format)
	}
}

// FormatOf maps a file extension to a format name, or returns "" if unknown.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtJSON:
		return config.FormatJSON
	case config.ExtYAML, config.ExtYML:
		return config.FormatYAML
	case config.ExtVCF, config.ExtVCard:
		return config.FormatVCard
	case config.ExtDB, config.ExtSQLite:
		return config.FormatSQLite
	case config.ExtICS:
		return config.FormatICal
	default:
		return ""
	}
}

// readSnapshotFile returns the file content, or ok=false if the file does not exist.
func readSnapshotFile(path string) (data []byte, ok bool, err error) {
	data, err = os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", config.ErrSnapshotRead, err)
	}
	return data, true, nil
}

// writeFileAtomic replaces path with data by writing a temporary file in the
// same directory and renaming it over the target.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	tmp, err := os.CreateTemp(dir, config.TempFilePattern)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := tmp.Chmod(config.FilePermUserRW); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	return nil
}
