package test

import (
	"path/filepath"
	"runtime"
	"testing"

	"golang.org/x/tools/txtar"
)

func FixtureDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime.Caller failed")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata")
}

// ReadArchive parses the txtar fixture at testdata/name.
func ReadArchive(t *testing.T, name string) *txtar.Archive {
	t.Helper()
	path := filepath.Join(FixtureDir(t), name)
	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to read archive %s: %v", path, err)
	}
	return ar
}

// ArchiveFile returns the content of the named member of ar.
func ArchiveFile(t *testing.T, ar *txtar.Archive, name string) []byte {
	t.Helper()
	for _, f := range ar.Files {
		if f.Name == name {
			return f.Data
		}
	}
	t.Fatalf("archive has no file %s", name)
	return nil
}

// Archives lists the txtar fixtures under testdata/dir.
func Archives(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(FixtureDir(t), dir, "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatalf("no fixtures in testdata/%s", dir)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, filepath.Join(dir, filepath.Base(m)))
	}
	return names
}
