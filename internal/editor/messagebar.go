package editor

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// MessageBar shows transient status messages on the bottom row. A message
// expires after a fixed interval; expiry is noticed opportunistically on
// the next draw rather than by a timer.
type MessageBar struct {
	text         string
	setAt        time.Time
	timeout      time.Duration
	needsRedraw  bool
	clearedAfter bool
	size         Size
}

func NewMessageBar(timeout time.Duration) *MessageBar {
	return &MessageBar{timeout: timeout, clearedAfter: true}
}

func (mb *MessageBar) SetMessage(text string) {
	mb.text = text
	mb.setAt = time.Now()
	mb.clearedAfter = false
	mb.needsRedraw = true
}

func (mb *MessageBar) expired() bool {
	return time.Since(mb.setAt) > mb.timeout
}

func (mb *MessageBar) NeedsRedraw() bool {
	// An expired message still on screen needs one clearing draw.
	return mb.needsRedraw || (!mb.clearedAfter && mb.expired())
}

func (mb *MessageBar) SetNeedsRedraw(value bool) {
	mb.needsRedraw = value
}

func (mb *MessageBar) Resize(size Size) {
	mb.size = size
	mb.needsRedraw = true
}

func (mb *MessageBar) Draw(s tcell.Screen, originRow int, st Styles) {
	text := mb.text
	if mb.expired() {
		mb.clearedAfter = true
		text = ""
	}
	printRow(s, originRow, mb.size.Width, text, st.Main)
}
