package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadEntriesFlagsKinds(t *testing.T) {
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "File One.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(dir, ".hidden"), []byte("b"), 0644)
	os.Mkdir(filepath.Join(dir, "Sub Dir"), 0755)
	if err := os.Symlink(filepath.Join(dir, "File One.txt"), filepath.Join(dir, "Link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	entries, err := ReadEntries(dir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	byName := make(map[string]Entry)
	for _, e := range entries {
		byName[e.Name] = e
	}
	if len(byName) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(byName), entries)
	}

	if e := byName["File One.txt"]; e.IsDir || e.IsHidden || e.IsLink || e.Skippable() {
		t.Errorf("regular file flagged incorrectly: %+v", e)
	}
	if e := byName[".hidden"]; !e.IsHidden || !e.Skippable() {
		t.Errorf("hidden file not flagged: %+v", e)
	}
	if e := byName["Sub Dir"]; !e.IsDir || e.Skippable() {
		t.Errorf("directory flagged incorrectly: %+v", e)
	}
	if e := byName["Link"]; !e.IsLink || e.IsDir || !e.Skippable() {
		t.Errorf("symlink flagged incorrectly: %+v", e)
	}
	if got := byName["Sub Dir"].Path; got != filepath.Join(dir, "Sub Dir") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestReadEntriesLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		os.WriteFile(filepath.Join(dir, name), nil, 0644)
	}

	entries, err := ReadEntries(dir)
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Errorf("expected [a b c], got %v", names)
	}
}

func TestReadEntriesEmptyDirectory(t *testing.T) {
	entries, err := ReadEntries(t.TempDir())
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestReadEntriesMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	_, err := ReadEntries(missing)
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got %T: %v", err, err)
	}
	if scanErr.Type != DirectoryNotFound {
		t.Errorf("expected %s, got %s", DirectoryNotFound, scanErr.Type)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("expected error to unwrap to os.ErrNotExist")
	}
}

func TestCheckDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if err := CheckDirectory(dir); err != nil {
		t.Errorf("expected directory to pass, got %v", err)
	}

	var scanErr *ScanError
	if err := CheckDirectory(file); !errors.As(err, &scanErr) || scanErr.Type != NotADirectory {
		t.Errorf("expected %s for a file, got %v", NotADirectory, err)
	}
	if err := CheckDirectory(filepath.Join(dir, "missing")); !errors.As(err, &scanErr) || scanErr.Type != DirectoryNotFound {
		t.Errorf("expected %s for a missing path, got %v", DirectoryNotFound, err)
	}
}

func TestIsHiddenName(t *testing.T) {
	tests := map[string]bool{
		".git":     true,
		".":        true,
		"visible":  false,
		"not.dot":  false,
		"_private": false,
		"..parent": true,
	}
	for name, want := range tests {
		if got := IsHiddenName(name); got != want {
			t.Errorf("IsHiddenName(%q) = %v, want %v", name, got, want)
		}
	}
}
