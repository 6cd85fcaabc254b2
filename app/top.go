package app

import (
	"fmt"
	"strconv"

	"github.com/DeadSix27/dfind/models"
)

// Top returns the largest (or smallest, when ascending) files or
// folders recorded in the index.
func (s *Searcher) Top(kind string, limit int, ascending bool) ([]models.TopEntry, error) {
	store, err := OpenStoreReadOnly(s.dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.TopBySize(kind, limit, ascending)
}

// FormatTopEntry renders one ranked line of the top report.
func FormatTopEntry(rank int, e models.TopEntry) string {
	return fmt.Sprintf("#%2d: %15s  -  %s", rank, SizeToIEC(e.Size), e.FullPath)
}

// Stats summarizes the current index generation.
func (s *Searcher) Stats() (*models.IndexStats, error) {
	store, err := OpenStoreReadOnly(s.dbPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	var stats models.IndexStats
	if err := store.db.QueryRow("SELECT COUNT(*) FROM files").Scan(&stats.Files); err != nil {
		return nil, err
	}
	if err := store.db.QueryRow("SELECT COUNT(*) FROM folders").Scan(&stats.Folders); err != nil {
		return nil, err
	}

	total, err := store.Meta("totalSize")
	if err != nil {
		return nil, err
	}
	if total != "" {
		stats.TotalSize, err = strconv.ParseInt(total, 10, 64)
		if err != nil {
			return nil, err
		}
	}
	return &stats, nil
}
