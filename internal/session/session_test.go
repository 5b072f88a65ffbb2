package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUILL_STATE_HOME", dir)

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, ok := m.GetFileState("/tmp/a.txt"); ok {
		t.Fatalf("fresh session has state")
	}

	state := FileState{CursorLine: 3, CursorGrapheme: 7, ScrollRow: 1, ScrollCol: 2}
	m.SetFileState("/tmp/a.txt", state)
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager reload: %v", err)
	}
	got, ok := m2.GetFileState("/tmp/a.txt")
	if !ok {
		t.Fatalf("state lost after reload")
	}
	if got != state {
		t.Fatalf("state = %+v, want %+v", got, state)
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUILL_STATE_HOME", dir)

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "session.json")); !os.IsNotExist(err) {
		t.Fatalf("clean save wrote a file: %v", err)
	}
}

func TestCorruptSessionStartsFresh(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUILL_STATE_HOME", dir)
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if _, ok := m.GetFileState("/tmp/a.txt"); ok {
		t.Fatalf("corrupt session produced state")
	}
}
