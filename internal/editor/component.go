package editor

import "github.com/gdamore/tcell/v2"

// component is the shared capability surface of every screen widget: the
// document view, the status bar, the message bar and the command prompt.
// The render pass draws only components that report a pending redraw.
type component interface {
	NeedsRedraw() bool
	SetNeedsRedraw(value bool)
	Resize(size Size)
	Draw(s tcell.Screen, originRow int, st Styles)
}

var (
	_ component = (*View)(nil)
	_ component = (*StatusBar)(nil)
	_ component = (*MessageBar)(nil)
	_ component = (*CommandBar)(nil)
)
