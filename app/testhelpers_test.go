package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/DeadSix27/dfind/models"
)

func testConfig(t *testing.T) *models.Config {
	t.Helper()
	return &models.Config{
		IndexFilePrefix:    "dfind",
		IndexFileExtension: ".db",
		DataDir:            t.TempDir(),
	}
}

func setupTestStore(t *testing.T, cfg *models.Config) *Store {
	t.Helper()
	store, err := OpenStore(cfg.IndexFile())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	if err := store.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return store
}

func insertTestFiles(t *testing.T, store *Store, records []models.FileRecord) {
	t.Helper()
	now := time.Now()
	for i := range records {
		if records[i].FullPathHash == "" {
			records[i].FullPathHash = hashString(records[i].FullPath)
		}
		if records[i].NameHash == "" {
			records[i].NameHash = hashString(records[i].Name)
		}
		if records[i].ModifyDate.IsZero() {
			records[i].ModifyDate = now
		}
		if records[i].CreateDate.IsZero() {
			records[i].CreateDate = now
		}
	}
	if err := store.InsertFiles(records); err != nil {
		t.Fatalf("failed to insert files: %v", err)
	}
}

func writeTestTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}
