package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileState stores the remembered view state of a single file.
type FileState struct {
	CursorLine     int `json:"cursor_line"`
	CursorGrapheme int `json:"cursor_grapheme"`
	ScrollRow      int `json:"scroll_row"`
	ScrollCol      int `json:"scroll_col"`
}

// Session stores the complete editor session state.
type Session struct {
	Files      map[string]FileState `json:"files"`
	ActiveFile string               `json:"active_file,omitempty"`
	LastSaved  time.Time            `json:"last_saved"`
}

// Manager handles session persistence. The editor is single-threaded, so
// state is saved explicitly on exit rather than by a background timer.
type Manager struct {
	session Session
	path    string
	dirty   bool
}

// NewManager creates a session manager, loading any existing session.
func NewManager() (*Manager, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}

	m := &Manager{
		session: Session{
			Files: make(map[string]FileState),
		},
		path: path,
	}
	m.load()
	return m, nil
}

func sessionPath() (string, error) {
	if v := os.Getenv("QUILL_STATE_HOME"); v != "" {
		if err := os.MkdirAll(v, 0o755); err != nil {
			return "", err
		}
		return filepath.Join(v, "session.json"), nil
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "quill")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return // No existing session, start fresh
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return
	}
	if session.Files == nil {
		session.Files = make(map[string]FileState)
	}
	m.session = session
}

// Save persists the session to disk when something changed.
func (m *Manager) Save() error {
	if !m.dirty {
		return nil
	}
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// GetFileState returns the saved state for a file.
func (m *Manager) GetFileState(absPath string) (FileState, bool) {
	state, ok := m.session.Files[absPath]
	return state, ok
}

// SetFileState updates the state for a file.
func (m *Manager) SetFileState(absPath string, state FileState) {
	m.session.Files[absPath] = state
	m.session.ActiveFile = absPath
	m.dirty = true
}
