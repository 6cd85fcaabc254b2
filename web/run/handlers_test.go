package webapp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DeadSix27/dfind/app"
	"github.com/DeadSix27/dfind/models"
)

func setupTestWebApp(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &models.Config{
		IndexFilePrefix:    "dfind",
		IndexFileExtension: ".db",
		DataDir:            t.TempDir(),
	}

	store, err := app.OpenStore(cfg.IndexFile())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.InitSchema(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	now := time.Now()
	err = store.InsertFiles([]models.FileRecord{
		{Drive: "/", FullPath: "/data/report.pdf", FullPathHash: "A", Name: "report.pdf", NameHash: "B",
			Size: 100, ModifyDate: now, CreateDate: now},
		{Drive: "/", FullPath: "/data/notes.txt", FullPathHash: "C", Name: "notes.txt", NameHash: "D",
			Size: 50, ModifyDate: now, CreateDate: now},
	})
	if err != nil {
		t.Fatalf("insert files: %v", err)
	}
	err = store.InsertFolders([]models.FolderRecord{
		{FullPath: "/data", FullPathHash: "E", Name: "data", NameHash: "F",
			Size: 150, ModifyDate: now, CreateDate: now},
	})
	if err != nil {
		t.Fatalf("insert folders: %v", err)
	}
	if err := store.SetMeta("totalSize", "150"); err != nil {
		t.Fatalf("set meta: %v", err)
	}
	store.Close()

	srv := httptest.NewServer(NewWebApp(cfg).GetRouter())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
}

func TestSearchEndpoint(t *testing.T) {
	srv := setupTestWebApp(t)

	t.Run("wildcard match", func(t *testing.T) {
		var res models.SearchResult
		getJSON(t, srv.URL+"/search?q=report*", http.StatusOK, &res)
		if res.Count != 1 {
			t.Errorf("Count = %d, want 1", res.Count)
		}
		if len(res.Items) != 1 || res.Items[0].Name != "report.pdf" {
			t.Errorf("unexpected items: %+v", res.Items)
		}
	})

	t.Run("missing q", func(t *testing.T) {
		getJSON(t, srv.URL+"/search", http.StatusBadRequest, nil)
	})
}

func TestTopEndpoint(t *testing.T) {
	srv := setupTestWebApp(t)

	t.Run("files limited", func(t *testing.T) {
		var entries []models.TopEntry
		getJSON(t, srv.URL+"/top?type=files&max=1", http.StatusOK, &entries)
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Name != "report.pdf" {
			t.Errorf("largest file = %q, want report.pdf", entries[0].Name)
		}
	})

	t.Run("default type is folders", func(t *testing.T) {
		var entries []models.TopEntry
		getJSON(t, srv.URL+"/top", http.StatusOK, &entries)
		if len(entries) != 1 || entries[0].FullPath != "/data" {
			t.Errorf("unexpected entries: %+v", entries)
		}
	})

	t.Run("invalid max", func(t *testing.T) {
		getJSON(t, srv.URL+"/top?max=0", http.StatusBadRequest, nil)
		getJSON(t, srv.URL+"/top?max=abc", http.StatusBadRequest, nil)
	})
}

func TestStatsEndpoint(t *testing.T) {
	srv := setupTestWebApp(t)

	var stats models.IndexStats
	getJSON(t, srv.URL+"/stats", http.StatusOK, &stats)
	if stats.Files != 2 {
		t.Errorf("Files = %d, want 2", stats.Files)
	}
	if stats.Folders != 1 {
		t.Errorf("Folders = %d, want 1", stats.Folders)
	}
	if stats.TotalSize != 150 {
		t.Errorf("TotalSize = %d, want 150", stats.TotalSize)
	}
}

func TestNotFound(t *testing.T) {
	srv := setupTestWebApp(t)
	getJSON(t, srv.URL+"/nope", http.StatusNotFound, nil)
}

func TestNoIndexDatabase(t *testing.T) {
	cfg := &models.Config{
		IndexFilePrefix:    "dfind",
		IndexFileExtension: ".db",
		DataDir:            t.TempDir(),
	}
	srv := httptest.NewServer(NewWebApp(cfg).GetRouter())
	defer srv.Close()

	getJSON(t, srv.URL+"/search?q=anything", http.StatusServiceUnavailable, nil)
	getJSON(t, srv.URL+"/stats", http.StatusServiceUnavailable, nil)
}
