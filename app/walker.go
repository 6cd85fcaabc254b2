package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/DeadSix27/dfind/models"
)

// reservedDirs are skipped when they sit directly under a root. Their
// contents are system-managed and never useful in search results.
var reservedDirs = map[string]bool{
	"$RECYCLE.BIN":              true,
	"System Volume Information": true,
}

// walkFiles calls visit for every regular entry below dir. Unreadable
// directories are skipped silently; a partial index is better than no
// index. Symlinked directories are not followed.
func walkFiles(dir string, visit func(path string, entry os.DirEntry)) {
	f, err := os.Open(dir)
	if err != nil {
		return
	}
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			walkFiles(path, visit)
			continue
		}
		visit(path, entry)
	}
}

// buildFileRecord stats path and assembles the row to be stored. The
// second return is false when the file should be skipped, either
// because it lives under a reserved directory or because it vanished
// between listing and stat.
func buildFileRecord(rootLabel, path string) (models.FileRecord, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return models.FileRecord{}, false
	}
	if underReservedDir(abs) {
		return models.FileRecord{}, false
	}

	info, err := os.Stat(abs)
	if err != nil {
		return models.FileRecord{}, false
	}

	modify, create := fileTimes(info)
	name := info.Name()
	return models.FileRecord{
		Drive:        rootLabel,
		FullPath:     abs,
		FullPathHash: hashString(abs),
		Name:         name,
		NameHash:     hashString(name),
		Size:         info.Size(),
		ModifyDate:   modify,
		CreateDate:   create,
	}, true
}

// underReservedDir reports whether the first path component after the
// volume root is one of the reserved system directories.
func underReservedDir(path string) bool {
	rest := strings.TrimPrefix(path, filepath.VolumeName(path))
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	first, _, _ := strings.Cut(rest, string(filepath.Separator))
	return reservedDirs[first]
}
