package editor

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/soryn/quill/internal/config"
	"github.com/soryn/quill/internal/document"
	"github.com/soryn/quill/internal/logger"
)

const (
	Name    = "quill"
	Version = "0.1.0"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptSearch
	promptSave
)

// Editor wires the document view and the three bottom bars together and
// dispatches decoded commands between them. Search and save-as input go
// through the command bar; everything else goes to the view.
type Editor struct {
	view        *View
	statusBar   *StatusBar
	messageBar  *MessageBar
	commandBar  *CommandBar
	styles      Styles
	size        Size
	prompt      promptKind
	quitConfirm int
	quitTimes   int
	shouldQuit  bool
	branch      string
}

func New(cfg config.Config) *Editor {
	e := &Editor{
		view:        NewView(),
		statusBar:   NewStatusBar(),
		messageBar:  NewMessageBar(time.Duration(cfg.Editor.MessageTimeout) * time.Second),
		commandBar:  NewCommandBar(),
		styles:      NewStyles(cfg.Theme),
		quitConfirm: cfg.Editor.QuitConfirmTimes,
	}
	e.messageBar.SetMessage("HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit")
	return e
}

// Open loads a file into the view.
func (e *Editor) Open(path string) error {
	return e.view.Load(path)
}

// View exposes the document view, mainly for session restore.
func (e *Editor) View() *View {
	return e.view
}

func (e *Editor) ShouldQuit() bool {
	return e.shouldQuit
}

// SetBranch sets the git branch shown in the status bar.
func (e *Editor) SetBranch(branch string) {
	e.branch = branch
}

// SetMessage puts a transient message on the message bar.
func (e *Editor) SetMessage(text string) {
	e.messageBar.SetMessage(text)
}

// Resize distributes a new terminal size: the view gets everything above
// the status row and the bottom row.
func (e *Editor) Resize(size Size) {
	e.size = size
	barSize := Size{Height: 1, Width: size.Width}
	e.view.Resize(Size{Height: maxInt(size.Height-2, 0), Width: size.Width})
	e.statusBar.Resize(barSize)
	e.messageBar.Resize(barSize)
	e.commandBar.Resize(barSize)
}

// Handle dispatches one decoded command. Resize applies in every mode.
func (e *Editor) Handle(cmd Command) {
	if sys, ok := cmd.(System); ok && sys.Kind == SystemResize {
		e.Resize(sys.Size)
		return
	}
	switch e.prompt {
	case promptSearch:
		e.handleSearchPrompt(cmd)
	case promptSave:
		e.handleSavePrompt(cmd)
	default:
		e.handleNormal(cmd)
	}
}

func (e *Editor) handleNormal(cmd Command) {
	switch cmd := cmd.(type) {
	case Edit:
		e.resetQuitCount()
		e.view.HandleEdit(cmd)
	case Move:
		e.resetQuitCount()
		e.view.HandleMove(cmd)
	case System:
		switch cmd.Kind {
		case SystemQuit:
			e.handleQuit()
		case SystemSave:
			e.resetQuitCount()
			e.handleSave()
		case SystemSearch:
			e.resetQuitCount()
			e.openPrompt(promptSearch)
		case SystemDismiss:
			e.resetQuitCount()
		}
	}
}

func (e *Editor) handleSearchPrompt(cmd Command) {
	switch cmd := cmd.(type) {
	case Edit:
		if cmd.Kind == EditInsertNewline {
			// Accept: keep the match location.
			e.view.ExitSearch()
			e.closePrompt()
			return
		}
		e.commandBar.HandleEdit(cmd)
		e.view.Search(e.commandBar.Value())
	case Move:
		switch cmd {
		case MoveRight, MoveDown:
			e.view.SearchNext()
		case MoveLeft, MoveUp:
			e.view.SearchPrev()
		}
	case System:
		if cmd.Kind == SystemDismiss {
			e.view.DismissSearch()
			e.closePrompt()
		}
	}
}

func (e *Editor) handleSavePrompt(cmd Command) {
	switch cmd := cmd.(type) {
	case Edit:
		if cmd.Kind == EditInsertNewline {
			name := e.commandBar.Value()
			e.closePrompt()
			if name == "" {
				e.messageBar.SetMessage("Save aborted.")
				return
			}
			e.saveAs(name)
			return
		}
		e.commandBar.HandleEdit(cmd)
	case System:
		if cmd.Kind == SystemDismiss {
			e.closePrompt()
			e.messageBar.SetMessage("Save aborted.")
		}
	}
}

// handleQuit requires repeated confirmation when the document has unsaved
// changes.
func (e *Editor) handleQuit() {
	doc := e.view.Document()
	if !doc.Dirty || e.quitTimes+1 >= e.quitConfirm {
		e.shouldQuit = true
		return
	}
	e.quitTimes++
	e.messageBar.SetMessage(fmt.Sprintf(
		"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
		e.quitConfirm-e.quitTimes))
}

func (e *Editor) resetQuitCount() {
	if e.quitTimes > 0 {
		e.quitTimes = 0
		e.messageBar.SetMessage("")
	}
}

func (e *Editor) handleSave() {
	if e.view.Document().Info.HasPath() {
		e.save()
		return
	}
	e.openPrompt(promptSave)
}

func (e *Editor) save() {
	if err := e.view.Document().Save(); err != nil {
		logger.Error("save failed", "error", err)
		e.messageBar.SetMessage("Error writing file!")
		return
	}
	e.messageBar.SetMessage("File saved successfully.")
}

func (e *Editor) saveAs(name string) {
	if err := e.view.Document().SaveAs(name); err != nil {
		logger.Error("save-as failed", "path", name, "error", err)
		e.messageBar.SetMessage("Error writing file!")
		return
	}
	e.messageBar.SetMessage("File saved successfully.")
	e.view.SetNeedsRedraw(true)
}

func (e *Editor) openPrompt(kind promptKind) {
	switch kind {
	case promptSearch:
		e.commandBar.SetPrompt("Search (Esc to cancel, Arrows to navigate): ")
		e.view.EnterSearch()
	case promptSave:
		e.commandBar.SetPrompt("Save as: ")
	}
	e.commandBar.ClearValue()
	e.prompt = kind
}

func (e *Editor) closePrompt() {
	e.prompt = promptNone
	e.commandBar.ClearValue()
	// The bottom row belongs to the message bar again.
	e.messageBar.SetNeedsRedraw(true)
}

// Render draws every component that has a pending redraw and positions the
// terminal cursor. tcell retains cells that are not redrawn.
func (e *Editor) Render(s tcell.Screen) {
	if e.size.Height <= 0 || e.size.Width <= 0 {
		return
	}

	status := e.view.Status()
	status.Branch = e.branch
	e.statusBar.Update(status)

	bottomRow := e.size.Height - 1
	if e.prompt != promptNone {
		if e.commandBar.NeedsRedraw() {
			e.commandBar.Draw(s, bottomRow, e.styles)
			e.commandBar.SetNeedsRedraw(false)
		}
	} else if e.messageBar.NeedsRedraw() {
		e.messageBar.Draw(s, bottomRow, e.styles)
		e.messageBar.SetNeedsRedraw(false)
	}
	if e.size.Height > 1 && e.statusBar.NeedsRedraw() {
		e.statusBar.Draw(s, e.size.Height-2, e.styles)
		e.statusBar.SetNeedsRedraw(false)
	}
	if e.size.Height > 2 && e.view.NeedsRedraw() {
		e.view.Draw(s, 0, e.styles)
		e.view.SetNeedsRedraw(false)
	}

	caret := e.caretPosition()
	s.ShowCursor(caret.Col, caret.Row)
	s.Show()
}

// caretPosition is the terminal cursor location: inside the prompt while
// one is open, otherwise the view caret in viewport-relative coordinates.
func (e *Editor) caretPosition() Position {
	if e.prompt != promptNone {
		return Position{Row: e.size.Height - 1, Col: e.commandBar.CaretPositionCol()}
	}
	return e.view.CaretPosition()
}

// Location returns the cursor location in document space.
func (e *Editor) Location() document.Location {
	return e.view.Location()
}
