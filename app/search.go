package app

import (
	"strings"
	"time"

	"github.com/DeadSix27/dfind/models"
)

// Searcher answers read-only queries against the index database.
type Searcher struct {
	dbPath string
}

func NewSearcher(cfg *models.Config) *Searcher {
	return &Searcher{dbPath: cfg.IndexFile()}
}

// Search matches files by name or full path. Every "*" in text
// becomes "%" before the mode branch; literal "%" and "_" pass
// through unchanged and keep their LIKE meaning in wildcard mode.
// Exact mode compares the substituted text for equality against the
// name and the full path.
func (s *Searcher) Search(text string, exactMatch, caseSensitive bool) (*models.SearchResult, error) {
	start := time.Now()

	store, err := OpenStoreReadOnly(s.dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if caseSensitive {
		if _, err := store.db.Exec("PRAGMA case_sensitive_like = ON;"); err != nil {
			return nil, err
		}
	}

	pattern := strings.ReplaceAll(text, "*", "%")
	var query string
	var args []any
	if exactMatch {
		query = `SELECT id, drive, fullpath, fullpath_hash, name, name_hash, size, modify_date, create_date
			FROM files WHERE name = ? OR fullpath = ?`
		args = []any{pattern, pattern}
	} else {
		query = `SELECT id, drive, fullpath, fullpath_hash, name, name_hash, size, modify_date, create_date
			FROM files WHERE name LIKE ? OR fullpath LIKE ?`
		args = []any{pattern, pattern}
	}

	rows, err := store.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.FileRecord
	for rows.Next() {
		var r models.FileRecord
		var modify, create int64
		err := rows.Scan(&r.ID, &r.Drive, &r.FullPath, &r.FullPathHash,
			&r.Name, &r.NameHash, &r.Size, &modify, &create)
		if err != nil {
			return nil, err
		}
		r.ModifyDate = time.Unix(modify, 0)
		r.CreateDate = time.Unix(create, 0)
		items = append(items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	took := time.Since(start)
	return &models.SearchResult{
		OriginalSearch: text,
		Count:          len(items),
		Items:          items,
		Took:           took.Seconds(),
		TookStr:        prettyTimeDelta(took),
		CaseSensitive:  caseSensitive,
		Wildcard:       !exactMatch,
		Query:          expandQuery(query, args),
	}, nil
}

// expandQuery inlines the arguments into the SQL text for display and
// logging. It is never executed.
func expandQuery(query string, args []any) string {
	var b strings.Builder
	i := 0
	for _, ch := range query {
		if ch == '?' && i < len(args) {
			s, _ := args[i].(string)
			b.WriteByte('\'')
			b.WriteString(strings.ReplaceAll(s, "'", "''"))
			b.WriteByte('\'')
			i++
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
