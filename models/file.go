package models

import (
	"fmt"
	"time"
)

// FileRecord is one indexed file. Records are written in bulk during an
// index run and are immutable until the next run replaces the whole
// generation.
type FileRecord struct {
	ID           int64     `db:"id" json:"id"`
	Drive        string    `db:"drive" json:"drive"`
	FullPath     string    `db:"fullpath" json:"fullPath"`
	FullPathHash string    `db:"fullpath_hash" json:"fullPathHash"`
	Name         string    `db:"name" json:"name"`
	NameHash     string    `db:"name_hash" json:"nameHash"`
	Size         int64     `db:"size" json:"size"`
	ModifyDate   time.Time `db:"modify_date" json:"modifyDate"`
	CreateDate   time.Time `db:"create_date" json:"createDate"`
}

// FolderRecord is one folder derived from the files sharing a parent
// directory. Size is the sum over direct children only, not a tree
// total.
type FolderRecord struct {
	ID           int64     `db:"id" json:"id"`
	FullPath     string    `db:"fullpath" json:"fullPath"`
	FullPathHash string    `db:"fullpath_hash" json:"fullPathHash"`
	Name         string    `db:"name" json:"name"`
	NameHash     string    `db:"name_hash" json:"nameHash"`
	Size         int64     `db:"size" json:"size"`
	ModifyDate   time.Time `db:"modify_date" json:"modifyDate"`
	CreateDate   time.Time `db:"create_date" json:"createDate"`
}

// TopEntry is a single row of the top-by-size report.
type TopEntry struct {
	ID       int64  `json:"id"`
	FullPath string `json:"fullPath"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
}

// IndexStats summarizes one index generation.
type IndexStats struct {
	Files     int64 `json:"files"`
	Folders   int64 `json:"folders"`
	TotalSize int64 `json:"totalSize"`
}

// SearchResult is one finished query: the matched rows in storage
// order plus timing and diagnostic metadata.
type SearchResult struct {
	OriginalSearch string       `json:"originalSearch"`
	Count          int          `json:"count"`
	Items          []FileRecord `json:"items"`
	Took           float64      `json:"took"`
	TookStr        string       `json:"tookStr"`
	CaseSensitive  bool         `json:"caseSensitive"`
	Wildcard       bool         `json:"wildcard"`
	Query          string       `json:"query"`
}

func (r *SearchResult) String() string {
	mode := "Wildcard"
	if !r.Wildcard {
		mode = "Exact"
	}
	sensitivity := "Case-Insensitive"
	if r.CaseSensitive {
		sensitivity = "Case-Sensitive"
	}
	return fmt.Sprintf("Search for: %q; Count: %d, Took: %s, %s %s Match",
		r.OriginalSearch, r.Count, r.TookStr, sensitivity, mode)
}
