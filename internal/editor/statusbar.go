package editor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DocumentStatus is the snapshot the status bar renders. Comparing
// snapshots keeps redraws down to actual changes.
type DocumentStatus struct {
	TotalLines       int
	CurrentLineIndex int
	IsModified       bool
	FileName         string
	Branch           string
}

func (ds DocumentStatus) modifiedIndicator() string {
	if ds.IsModified {
		return "(modified)"
	}
	return ""
}

func (ds DocumentStatus) positionIndicator() string {
	pos := fmt.Sprintf("%d/%d", ds.CurrentLineIndex+1, ds.TotalLines)
	if ds.Branch != "" {
		return ds.Branch + " " + pos
	}
	return pos
}

// StatusBar renders file identity, line count, modified indicator and a
// right-aligned position segment on one inverted row.
type StatusBar struct {
	status      DocumentStatus
	needsRedraw bool
	size        Size
}

func NewStatusBar() *StatusBar {
	return &StatusBar{needsRedraw: true}
}

// Update replaces the rendered status, scheduling a redraw only when it
// differs from what is on screen.
func (sb *StatusBar) Update(status DocumentStatus) {
	if status != sb.status {
		sb.status = status
		sb.needsRedraw = true
	}
}

func (sb *StatusBar) NeedsRedraw() bool {
	return sb.needsRedraw
}

func (sb *StatusBar) SetNeedsRedraw(value bool) {
	sb.needsRedraw = value
}

func (sb *StatusBar) Resize(size Size) {
	sb.size = size
	sb.needsRedraw = true
}

func (sb *StatusBar) Draw(s tcell.Screen, originRow int, st Styles) {
	beginning := fmt.Sprintf("%s - %d lines %s",
		sb.status.FileName, sb.status.TotalLines, sb.status.modifiedIndicator())
	position := sb.status.positionIndicator()

	// Pad by display columns so non-ASCII file or branch names still leave
	// the position segment flush right.
	beginningWidth := runewidth.StringWidth(beginning)
	positionWidth := runewidth.StringWidth(position)
	status := beginning
	if pad := sb.size.Width - beginningWidth - positionWidth; pad >= 0 {
		status += strings.Repeat(" ", pad) + position
	} else if beginningWidth > sb.size.Width {
		status = ""
	}
	printRow(s, originRow, sb.size.Width, status, st.Status)
}
