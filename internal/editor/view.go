package editor

import (
	"github.com/soryn/quill/internal/document"
	"github.com/soryn/quill/internal/logger"
)

type searchDirection int

const (
	searchForward searchDirection = iota
	searchBackward
)

// searchState holds everything needed to leave search mode cleanly: the
// cursor and scroll captured at entry (restored on dismiss) and the query
// typed so far.
type searchState struct {
	prevLocation document.Location
	prevScroll   Position
	query        *document.Line // nil until the first keystroke
}

// View owns the document, the cursor location, the visible window and its
// scroll offset. All cursor movement, scrolling and the search-mode state
// machine live here; structural edits are delegated to the document.
type View struct {
	doc         *document.Document
	location    document.Location
	size        Size
	scroll      Position
	search      *searchState
	needsRedraw bool
}

func NewView() *View {
	return &View{
		doc:         document.NewDocument(),
		needsRedraw: true,
	}
}

// Document exposes the underlying document for status reporting and saving.
func (v *View) Document() *document.Document {
	return v.doc
}

// Location returns the current cursor location in document space.
func (v *View) Location() document.Location {
	return v.location
}

// SetLocation moves the cursor, snapping it to the document shape, and
// scrolls it into view. Used for session restore.
func (v *View) SetLocation(loc document.Location) {
	v.location = loc
	v.snapToValidLine()
	v.snapToValidGrapheme()
	v.scrollIntoView()
}

// Scroll returns the current scroll offset.
func (v *View) Scroll() Position {
	return v.scroll
}

// SetScroll restores a saved scroll offset, then makes sure the cursor is
// still inside the window.
func (v *View) SetScroll(p Position) {
	v.scroll = p
	v.needsRedraw = true
	v.scrollIntoView()
}

func (v *View) NeedsRedraw() bool {
	return v.needsRedraw
}

func (v *View) SetNeedsRedraw(value bool) {
	v.needsRedraw = value
}

// Resize sets the visible window size and re-establishes the containment
// invariant: the cursor must never end up outside the new window.
func (v *View) Resize(size Size) {
	v.size = size
	v.scrollIntoView()
	v.needsRedraw = true
}

// Load replaces the document with the contents of a file.
func (v *View) Load(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}
	v.doc = doc
	v.location = document.Location{}
	v.scroll = Position{}
	v.needsRedraw = true
	return nil
}

// HandleEdit applies one structural edit command.
func (v *View) HandleEdit(cmd Edit) {
	switch cmd.Kind {
	case EditInsert:
		v.insertRune(cmd.Rune)
	case EditDelete:
		v.deleteAtCursor()
	case EditDeleteBackward:
		v.deleteBackward()
	case EditInsertNewline:
		v.insertNewline()
	}
}

func (v *View) insertRune(r rune) {
	oldLen := 0
	if line := v.currentLine(); line != nil {
		oldLen = line.GraphemeCount()
	}
	v.doc.InsertRune(r, v.location)
	newLen := 0
	if line := v.currentLine(); line != nil {
		newLen = line.GraphemeCount()
	}
	// An inserted combining mark can merge into the current cluster; only
	// advance when the cluster count actually grew.
	if newLen > oldLen {
		v.HandleMove(MoveRight)
	}
	v.needsRedraw = true
}

func (v *View) deleteAtCursor() {
	v.doc.Delete(v.location)
	v.needsRedraw = true
}

func (v *View) deleteBackward() {
	if v.location.LineIndex == 0 && v.location.GraphemeIndex == 0 {
		return
	}
	v.HandleMove(MoveLeft)
	v.deleteAtCursor()
}

func (v *View) insertNewline() {
	v.doc.InsertNewline(v.location)
	v.HandleMove(MoveRight)
	v.needsRedraw = true
}

// HandleMove applies one cursor movement and then re-establishes the
// scroll containment invariant.
func (v *View) HandleMove(cmd Move) {
	switch cmd {
	case MoveUp:
		v.moveUp(1)
	case MoveDown:
		v.moveDown(1)
	case MoveLeft:
		v.moveLeft()
	case MoveRight:
		v.moveRight()
	case MovePageUp:
		v.moveUp(maxInt(v.size.Height-1, 0))
	case MovePageDown:
		v.moveDown(maxInt(v.size.Height-1, 0))
	case MoveStartOfLine:
		v.moveToStartOfLine()
	case MoveEndOfLine:
		v.moveToEndOfLine()
	}
	v.scrollIntoView()
}

func (v *View) currentLine() *document.Line {
	if v.location.LineIndex >= v.doc.Height() {
		return nil
	}
	return v.doc.Lines[v.location.LineIndex]
}

func (v *View) moveUp(step int) {
	v.location.LineIndex = maxInt(v.location.LineIndex-step, 0)
	v.snapToValidGrapheme()
}

func (v *View) moveDown(step int) {
	v.location.LineIndex += step
	v.snapToValidGrapheme()
	v.snapToValidLine()
}

func (v *View) moveRight() {
	count := 0
	if line := v.currentLine(); line != nil {
		count = line.GraphemeCount()
	}
	if v.location.GraphemeIndex < count {
		v.location.GraphemeIndex++
	} else {
		v.moveToStartOfLine()
		v.moveDown(1)
	}
}

func (v *View) moveLeft() {
	if v.location.GraphemeIndex > 0 {
		v.location.GraphemeIndex--
	} else if v.location.LineIndex > 0 {
		v.moveUp(1)
		v.moveToEndOfLine()
	}
}

func (v *View) moveToStartOfLine() {
	v.location.GraphemeIndex = 0
}

func (v *View) moveToEndOfLine() {
	if line := v.currentLine(); line != nil {
		v.location.GraphemeIndex = line.GraphemeCount()
	} else {
		v.location.GraphemeIndex = 0
	}
}

// snapToValidGrapheme clamps the grapheme index to the destination line's
// cluster count. Does not scroll.
func (v *View) snapToValidGrapheme() {
	if line := v.currentLine(); line != nil {
		v.location.GraphemeIndex = minInt(v.location.GraphemeIndex, line.GraphemeCount())
	} else {
		v.location.GraphemeIndex = 0
	}
}

// snapToValidLine clamps the line index to the document height. Does not
// scroll.
func (v *View) snapToValidLine() {
	v.location.LineIndex = minInt(v.location.LineIndex, v.doc.Height())
}

// locationToPosition translates the document-space cursor into rendered
// row/column space, accounting for cluster display widths.
func (v *View) locationToPosition() Position {
	col := 0
	if line := v.currentLine(); line != nil {
		col = line.WidthUntil(v.location.GraphemeIndex)
	}
	return Position{Row: v.location.LineIndex, Col: col}
}

// CaretPosition returns the cursor in viewport-relative coordinates,
// already adjusted for scrolling.
func (v *View) CaretPosition() Position {
	return v.locationToPosition().saturatingSub(v.scroll)
}

func (v *View) scrollVertically(to int) {
	changed := false
	if to < v.scroll.Row {
		v.scroll.Row = to
		changed = true
	} else if to >= v.scroll.Row+v.size.Height {
		v.scroll.Row = to - v.size.Height + 1
		changed = true
	}
	if changed {
		v.needsRedraw = true
	}
}

func (v *View) scrollHorizontally(to int) {
	changed := false
	if to < v.scroll.Col {
		v.scroll.Col = to
		changed = true
	} else if to >= v.scroll.Col+v.size.Width {
		v.scroll.Col = to - v.size.Width + 1
		changed = true
	}
	if changed {
		v.needsRedraw = true
	}
}

func (v *View) scrollIntoView() {
	pos := v.locationToPosition()
	v.scrollVertically(pos.Row)
	v.scrollHorizontally(pos.Col)
}

// centerLocation scrolls so the cursor sits at the window midpoint, using
// ceiling division for odd window sizes.
func (v *View) centerLocation() {
	pos := v.locationToPosition()
	v.scroll.Row = maxInt(pos.Row-ceilDiv(v.size.Height, 2), 0)
	v.scroll.Col = maxInt(pos.Col-ceilDiv(v.size.Width, 2), 0)
	v.needsRedraw = true
}

// EnterSearch snapshots the cursor and scroll offset so a dismissed search
// can restore them exactly.
func (v *View) EnterSearch() {
	v.search = &searchState{
		prevLocation: v.location,
		prevScroll:   v.scroll,
	}
}

// ExitSearch leaves search mode keeping the current location.
func (v *View) ExitSearch() {
	v.search = nil
	v.needsRedraw = true
}

// DismissSearch restores the snapshotted cursor and scroll offset, then
// leaves search mode.
func (v *View) DismissSearch() {
	if v.search != nil {
		v.location = v.search.prevLocation
		v.scroll = v.search.prevScroll
		// The window may have been resized mid-search.
		v.scrollIntoView()
	}
	v.ExitSearch()
}

// InSearch reports whether search mode is active.
func (v *View) InSearch() bool {
	return v.search != nil
}

// Search re-runs a forward search for the updated query, starting from the
// cursor position captured at search entry.
func (v *View) Search(query string) {
	if v.search == nil {
		logger.Error("search requested outside search mode")
		return
	}
	v.search.query = document.NewLine(query)
	v.searchInDirection(v.search.prevLocation, searchForward)
}

// SearchNext advances past the current match and searches forward. The
// start skips ahead by the query's cluster count (at least one) so the same
// occurrence is not found again.
func (v *View) SearchNext() {
	step := 1
	if q := v.searchQuery(); q != nil {
		step = maxInt(q.GraphemeCount(), 1)
	}
	from := document.Location{
		LineIndex:     v.location.LineIndex,
		GraphemeIndex: v.location.GraphemeIndex + step,
	}
	v.searchInDirection(from, searchForward)
}

// SearchPrev searches backward from the current location.
func (v *View) SearchPrev() {
	v.searchInDirection(v.location, searchBackward)
}

// searchQuery returns the active query line. Search mode being active with
// no query slot is an internal invariant violation.
func (v *View) searchQuery() *document.Line {
	if v.search == nil {
		logger.Error("no search state while querying")
		return nil
	}
	return v.search.query
}

func (v *View) searchInDirection(from document.Location, dir searchDirection) {
	q := v.searchQuery()
	if q != nil && q.GraphemeCount() > 0 {
		var loc document.Location
		var ok bool
		if dir == searchForward {
			loc, ok = v.doc.SearchForward(q.String(), from)
		} else {
			loc, ok = v.doc.SearchBackward(q.String(), from)
		}
		if ok {
			v.location = loc
			v.centerLocation()
		}
	}
	v.needsRedraw = true
}
