package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS contacts (
		position INTEGER NOT NULL,
		name     TEXT    NOT NULL PRIMARY KEY,
		birthday TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS phones (
		contact  TEXT    NOT NULL,
		position INTEGER NOT NULL,
		phone    TEXT    NOT NULL,
		PRIMARY KEY (contact, position)
	)`,
}

// SQLiteStore keeps the snapshot in a SQLite database file.
// Save rewrites every row inside a single transaction.
type SQLiteStore struct {
	Path string
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{Path: path}
}

func (s *SQLiteStore) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	// Opening a missing database would create it; check first.
	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		logAbsent(ctx, s.Path, config.FormatSQLite)
		return addressbook.New(), nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	snap, err := readContacts(ctx, db)
	if err != nil {
		return nil, err
	}
	book, err := snap.Book()
	if err != nil {
		return nil, err
	}
	logLoaded(ctx, s.Path, config.FormatSQLite, book.Len())
	return book, nil
}

func (s *SQLiteStore) Save(ctx context.Context, book *addressbook.AddressBook) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := writeContacts(ctx, db, SnapshotOf(book)); err != nil {
		return err
	}
	if err := os.Chmod(s.Path, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	logSaved(ctx, s.Path, config.FormatSQLite, book.Len())
	return nil
}

func (s *SQLiteStore) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open(config.SQLiteDriver, s.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrDBOpen, err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", config.ErrDBOpen, err)
		}
	}
	return db, nil
}

func readContacts(ctx context.Context, db *sql.DB) (Snapshot, error) {
	var snap Snapshot

	rows, err := db.QueryContext(ctx, `SELECT name, COALESCE(birthday, '') FROM contacts ORDER BY position`)
	if err != nil {
		return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
	}
	index := make(map[string]int)
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.Name, &c.Birthday); err != nil {
			_ = rows.Close()
			return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
		}
		index[c.Name] = len(snap.Contacts)
		snap.Contacts = append(snap.Contacts, c)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
	}
	_ = rows.Close()

	rows, err = db.QueryContext(ctx, `SELECT contact, phone FROM phones ORDER BY contact, position`)
	if err != nil {
		return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var contact, phone string
		if err := rows.Scan(&contact, &phone); err != nil {
			return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
		}
		i, ok := index[contact]
		if !ok {
			continue
		}
		snap.Contacts[i].Phones = append(snap.Contacts[i].Phones, phone)
	}
	if err := rows.Err(); err != nil {
		return snap, fmt.Errorf("%s: %w", config.ErrDBQuery, err)
	}
	return snap, nil
}

func writeContacts(ctx context.Context, db *sql.DB, snap Snapshot) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, stmt := range []string{`DELETE FROM phones`, `DELETE FROM contacts`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
		}
	}

	for i, c := range snap.Contacts {
		var birthday sql.NullString
		if c.Birthday != "" {
			birthday = sql.NullString{String: c.Birthday, Valid: true}
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO contacts (position, name, birthday) VALUES (?, ?, ?)`,
			i, c.Name, birthday); err != nil {
			return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
		}
		for j, p := range c.Phones {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO phones (contact, position, phone) VALUES (?, ?, ?)`,
				c.Name, j, p); err != nil {
				return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}
	return nil
}
