package app

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/DeadSix27/dfind/models"
)

// ErrNoRootsConfigured is returned when exclusions and whitelists
// leave nothing to index.
var ErrNoRootsConfigured = errors.New("there are no roots set to be indexed, please fix your config")

// AggregationPathError marks a recorded path that cannot be processed
// during folder aggregation. It aborts the run; the index would be
// inconsistent otherwise.
type AggregationPathError struct {
	Path string
}

func (e *AggregationPathError) Error() string {
	return fmt.Sprintf("failed to access the recorded path: %q", e.Path)
}

const insertBatchSize = 10000

// Indexer walks the configured roots and rebuilds the index database.
type Indexer struct {
	Config *models.Config

	// ListRoots enumerates the candidate roots before exclusions
	// are applied. Replaced in tests.
	ListRoots func() ([]string, error)
}

func NewIndexer(cfg *models.Config) *Indexer {
	return &Indexer{
		Config:    cfg,
		ListRoots: hostRoots,
	}
}

// ResolveRoots applies the exclusion list, the optional whitelist and
// the custom locations to the enumerated roots. Custom locations are
// always kept, regardless of filters.
func (ix *Indexer) ResolveRoots() ([]string, error) {
	available, err := ix.ListRoots()
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(ix.Config.ExcludedRoots))
	for _, r := range ix.Config.ExcludedRoots {
		excluded[r] = true
	}
	whitelist := make(map[string]bool, len(ix.Config.OnlyTheseRoots))
	for _, r := range ix.Config.OnlyTheseRoots {
		whitelist[r] = true
	}

	roots := make([]string, 0, len(available)+len(ix.Config.CustomLocations))
	roots = append(roots, ix.Config.CustomLocations...)
	for _, r := range available {
		if excluded[r] {
			continue
		}
		if len(whitelist) > 0 && !whitelist[r] {
			continue
		}
		roots = append(roots, r)
	}

	if len(roots) == 0 {
		return nil, ErrNoRootsConfigured
	}
	return roots, nil
}

// Run rebuilds the whole index: the old database is removed, every
// resolved root is walked, then folder sizes are aggregated.
func (ix *Indexer) Run(singleThreaded bool) error {
	roots, err := ix.ResolveRoots()
	if err != nil {
		return err
	}

	mode := "multi-threaded"
	if singleThreaded {
		mode = "single-threaded"
	}
	log.Printf("Starting %s index run over %d roots: %v", mode, len(roots), roots)

	dbPath := ix.Config.IndexFile()
	if err := RemoveStore(dbPath); err != nil {
		return err
	}

	store, err := OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.InitSchema(); err != nil {
		return err
	}

	if singleThreaded {
		err = ix.scanSequential(roots, store)
	} else {
		err = ix.scanConcurrent(roots, dbPath)
	}
	if err != nil {
		return err
	}

	return aggregate(store)
}

func (ix *Indexer) scanSequential(roots []string, store *Store) error {
	for _, root := range roots {
		start := time.Now()
		log.Printf("Indexing %q", root)
		count, err := scanRoot(root, store)
		if err != nil {
			return err
		}
		log.Printf("Done, %d files, took %s", count, prettyTimeDelta(time.Since(start)))
	}
	return nil
}

func (ix *Indexer) scanConcurrent(roots []string, dbPath string) error {
	labels := rootLabels(roots)
	done := make([]atomic.Bool, len(roots))
	stop := make(chan struct{})
	go progressLoop(labels, done, stop)

	p := pool.New().WithErrors()
	for i, root := range roots {
		p.Go(func() error {
			start := time.Now()
			store, err := OpenStore(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := scanRoot(root, store)
			if err != nil {
				return err
			}
			done[i].Store(true)
			log.Printf("Root %q done, %d files, took %s", root, count, prettyTimeDelta(time.Since(start)))
			return nil
		})
	}

	err := p.Wait()
	close(stop)
	fmt.Println()
	if err != nil {
		return err
	}
	log.Printf("Finished indexing")
	return nil
}

var spinnerGlyphs = []string{"|", "/", "-", "\\"}

// progressLoop repaints a one-line status for each concurrent root
// every 300ms until stop closes.
func progressLoop(labels []string, done []atomic.Bool, stop chan struct{}) {
	ticker := time.NewTicker(300 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			parts := make([]string, len(labels))
			for i, label := range labels {
				if done[i].Load() {
					parts[i] = label + "->OK"
				} else {
					parts[i] = label + "->.." + spinnerGlyphs[frame%len(spinnerGlyphs)]
				}
			}
			fmt.Printf("\r%s", strings.Join(parts, " | "))
			frame++
		}
	}
}

// rootLabels shortens each root to a two character tag for the
// progress line. Network shares collapse to "@i" since their prefixes
// carry no useful distinction.
func rootLabels(roots []string) []string {
	labels := make([]string, len(roots))
	for i, root := range roots {
		if strings.HasPrefix(root, `\\`) || strings.HasPrefix(root, "//") {
			labels[i] = "@i"
			continue
		}
		label := root
		if len(label) > 2 {
			label = label[:2]
		}
		labels[i] = label
	}
	return labels
}

// scanRoot walks one root and inserts its files in batches.
func scanRoot(root string, store *Store) (int, error) {
	batch := make([]models.FileRecord, 0, insertBatchSize)
	total := 0
	var insertErr error

	walkFiles(root, func(path string, entry os.DirEntry) {
		if insertErr != nil {
			return
		}
		record, ok := buildFileRecord(root, path)
		if !ok {
			return
		}
		batch = append(batch, record)
		total++
		if len(batch) >= insertBatchSize {
			insertErr = store.InsertFiles(batch)
			batch = batch[:0]
		}
	})
	if insertErr != nil {
		return 0, insertErr
	}
	if err := store.InsertFiles(batch); err != nil {
		return 0, err
	}
	return total, nil
}

// aggregate derives folder rows from the stored files. Each folder's
// size is the sum of its direct children; the grand total is recorded
// in the info table.
func aggregate(store *Store) error {
	log.Printf("Calculating sizes...")

	rows, err := store.db.Query("SELECT fullpath, size FROM files;")
	if err != nil {
		return err
	}
	defer rows.Close()

	folderSizes := make(map[string]int64)
	var totalSize int64
	for rows.Next() {
		var fullpath string
		var size int64
		if err := rows.Scan(&fullpath, &size); err != nil {
			return err
		}
		if !representablePath(fullpath) {
			return &AggregationPathError{Path: fullpath}
		}
		folderSizes[filepath.Dir(fullpath)] += size
		totalSize += size
	}
	if err := rows.Err(); err != nil {
		return err
	}

	log.Printf("Adding sizes to database...")
	folders := make([]models.FolderRecord, 0, len(folderSizes))
	for path, size := range folderSizes {
		folders = append(folders, buildFolderRecord(path, size))
	}
	if err := store.InsertFolders(folders); err != nil {
		return err
	}
	if err := store.SetMeta("totalSize", strconv.FormatInt(totalSize, 10)); err != nil {
		return err
	}
	log.Printf("Done.")
	return nil
}

func representablePath(p string) bool {
	return strings.IndexByte(p, 0) < 0
}

// buildFolderRecord assembles one folder row. Timestamps are filled
// best-effort from a fresh stat; a folder deleted since the walk keeps
// zero times rather than failing the run.
func buildFolderRecord(path string, size int64) models.FolderRecord {
	name := filepath.Base(path)
	if strings.Trim(name, string(filepath.Separator)) == "" || name == "." {
		name = path
	}

	var modify, create time.Time
	if info, err := os.Stat(path); err == nil {
		modify, create = fileTimes(info)
	}

	return models.FolderRecord{
		FullPath:     path,
		FullPathHash: hashString(path),
		Name:         name,
		NameHash:     hashString(name),
		Size:         size,
		ModifyDate:   modify,
		CreateDate:   create,
	}
}
