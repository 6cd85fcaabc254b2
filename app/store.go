package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	_ "embed"

	_ "modernc.org/sqlite"

	"github.com/DeadSix27/dfind/models"
)

//go:embed schema.sql
var schemaSQL string

// ErrNoIndex is returned when a query runs before any index database
// has been created.
var ErrNoIndex = errors.New("no index database found")

// Store wraps one SQLite handle to the index database. Writers open
// their own Store; SQLite serializes them through the busy timeout.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (creating if needed) the index database for writing.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 30000;"); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

// OpenStoreReadOnly opens an existing index database for querying. A
// missing file yields ErrNoIndex rather than an empty database.
func OpenStoreReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, ErrNoIndex
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 30000;"); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InitSchema creates the tables of a fresh generation.
func (s *Store) InitSchema() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}

// RemoveStore deletes the previous generation's database file. Every
// index run rebuilds from scratch.
func RemoveStore(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	log.Printf("Deleting old index database: %s", path)
	return os.Remove(path)
}

// InsertFiles writes a batch of file rows in one transaction.
func (s *Store) InsertFiles(records []models.FileRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`INSERT INTO files
		(drive, fullpath, fullpath_hash, name, name_hash, size, modify_date, create_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.Drive, r.FullPath, r.FullPathHash, r.Name, r.NameHash,
			r.Size, r.ModifyDate.Unix(), r.CreateDate.Unix())
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// InsertFolders writes a batch of folder rows in one transaction.
func (s *Store) InsertFolders(records []models.FolderRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`INSERT INTO folders
		(fullpath, fullpath_hash, name, name_hash, size, modify_date, create_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.FullPath, r.FullPathHash, r.Name, r.NameHash,
			r.Size, r.ModifyDate.Unix(), r.CreateDate.Unix())
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// SetMeta records a key/value pair about the generation, e.g. the
// total indexed size.
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec("INSERT INTO info (var, value) VALUES (?, ?)", key, value)
	return err
}

// Meta returns the stored value for key, or "" when none exists.
func (s *Store) Meta(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM info WHERE var = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// TopBySize returns up to limit rows from the files or folders table
// ordered by size. Ties break on insertion order so repeated calls
// agree.
func (s *Store) TopBySize(kind string, limit int, ascending bool) ([]models.TopEntry, error) {
	if kind != "files" && kind != "folders" {
		return nil, fmt.Errorf("unknown listing type: %q", kind)
	}
	if limit < 1 || limit > 100 {
		return nil, fmt.Errorf("max must be between 1 and 100, got %d", limit)
	}
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	q := fmt.Sprintf("SELECT id, fullpath, name, size FROM %s ORDER BY size %s, id LIMIT ?", kind, order)
	rows, err := s.db.Query(q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.TopEntry
	for rows.Next() {
		var e models.TopEntry
		if err := rows.Scan(&e.ID, &e.FullPath, &e.Name, &e.Size); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
