package app

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/soryn/quill/internal/config"
	"github.com/soryn/quill/internal/document"
	"github.com/soryn/quill/internal/editor"
	"github.com/soryn/quill/internal/gitinfo"
	"github.com/soryn/quill/internal/logger"
	"github.com/soryn/quill/internal/session"
)

// App is the top-level runtime for quill.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()

	if err := logger.Init(os.Getenv("QUILL_DEBUG") != ""); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sm, err := session.NewManager()
	if err != nil {
		logger.Warn("session unavailable", "error", err)
		sm = nil
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	ed := editor.New(cfg)
	width, height := s.Size()
	ed.Resize(editor.Size{Height: height, Width: width})

	var openPath string
	if len(a.args) > 0 {
		openPath = a.args[0]
		if err := ed.Open(openPath); err != nil {
			logger.Error("open failed", "path", openPath, "error", err)
			ed.SetMessage("ERR: Could not open file: " + filepath.Base(openPath))
		} else if sm != nil {
			restoreFileState(ed, sm, openPath)
		}
	}

	gitPath := openPath
	if gitPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			gitPath = cwd
		}
	}
	ed.SetBranch(gitinfo.Branch(gitPath))

	for {
		ed.Render(s)
		ev := s.PollEvent()
		if ev == nil {
			break
		}
		cmd, ok := editor.Decode(ev)
		if !ok {
			continue
		}
		ed.Handle(cmd)
		if ed.ShouldQuit() {
			break
		}
	}

	if sm != nil && openPath != "" {
		saveFileState(ed, sm, openPath)
		if err := sm.Save(); err != nil {
			logger.Error("session save failed", "error", err)
		}
	}
	return nil
}

func restoreFileState(ed *editor.Editor, sm *session.Manager, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	state, ok := sm.GetFileState(abs)
	if !ok {
		return
	}
	v := ed.View()
	v.SetLocation(document.Location{
		LineIndex:     state.CursorLine,
		GraphemeIndex: state.CursorGrapheme,
	})
	v.SetScroll(editor.Position{Row: state.ScrollRow, Col: state.ScrollCol})
}

func saveFileState(ed *editor.Editor, sm *session.Manager, path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	v := ed.View()
	loc := v.Location()
	scroll := v.Scroll()
	sm.SetFileState(abs, session.FileState{
		CursorLine:     loc.LineIndex,
		CursorGrapheme: loc.GraphemeIndex,
		ScrollRow:      scroll.Row,
		ScrollCol:      scroll.Col,
	})
}
