package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/soryn/quill/internal/logger"
)

// ErrNoFileName is returned by Save when the document has no file identity.
var ErrNoFileName = errors.New("document has no file name")

// FileInfo is the identity of a document on disk, if it has one.
type FileInfo struct {
	Path string
}

func (fi FileInfo) HasPath() bool {
	return fi.Path != ""
}

func (fi FileInfo) String() string {
	if fi.Path == "" {
		return "[No Name]"
	}
	return filepath.Base(fi.Path)
}

// Document is an ordered sequence of lines plus file identity and a dirty
// flag. Lines are never reordered; every structural text edit goes through
// the methods here so the dirty flag stays accurate.
type Document struct {
	Lines []*Line
	Info  FileInfo
	Dirty bool
}

// NewDocument returns an empty, unnamed document.
func NewDocument() *Document {
	return &Document{}
}

// Load reads a file and splits it into lines. A trailing line terminator
// does not produce a trailing empty line. I/O errors are returned to the
// caller untouched.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")

	var lines []*Line
	if len(data) > 0 {
		for _, text := range strings.Split(content, "\n") {
			lines = append(lines, NewLine(text))
		}
	}
	logger.Info("loaded file", "path", path, "lines", len(lines))
	return &Document{
		Lines: lines,
		Info:  FileInfo{Path: path},
	}, nil
}

// Height returns the number of lines.
func (d *Document) Height() int {
	return len(d.Lines)
}

// IsEmpty reports whether the document holds no text: either no lines at
// all or a single empty line.
func (d *Document) IsEmpty() bool {
	if len(d.Lines) == 0 {
		return true
	}
	return len(d.Lines) == 1 && d.Lines[0].GraphemeCount() == 0
}

// FileName returns the display name of the document.
func (d *Document) FileName() string {
	return d.Info.String()
}

func (d *Document) saveTo(path string) error {
	var b strings.Builder
	for _, line := range d.Lines {
		b.WriteString(line.String())
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// Save writes the document to its current identity. The dirty flag clears
// only on success; a failed save leaves the in-memory state unchanged.
func (d *Document) Save() error {
	if !d.Info.HasPath() {
		return ErrNoFileName
	}
	if err := d.saveTo(d.Info.Path); err != nil {
		return err
	}
	d.Dirty = false
	return nil
}

// SaveAs writes the document to a new identity, which it adopts on success.
func (d *Document) SaveAs(path string) error {
	if err := d.saveTo(path); err != nil {
		return err
	}
	d.Info = FileInfo{Path: path}
	d.Dirty = false
	return nil
}

// InsertRune inserts a rune at the given location. Inserting at the line
// just past the last one appends a new line holding only the rune.
func (d *Document) InsertRune(r rune, at Location) {
	if at.LineIndex > d.Height() {
		logger.Error("insert past end of document", "line", at.LineIndex, "height", d.Height())
		return
	}
	if at.LineIndex == d.Height() {
		d.Lines = append(d.Lines, NewLine(string(r)))
		d.Dirty = true
		return
	}
	d.Lines[at.LineIndex].InsertRune(r, at.GraphemeIndex)
	d.Dirty = true
}

// Delete removes the cluster at the given location. Deleting at or past the
// end of a line merges the following line into it when one exists; otherwise
// the call is a no-op. The dirty flag flips only when something changed.
func (d *Document) Delete(at Location) {
	if at.LineIndex >= d.Height() {
		return
	}
	line := d.Lines[at.LineIndex]
	switch {
	case at.GraphemeIndex >= line.GraphemeCount() && d.Height() > at.LineIndex+1:
		next := d.Lines[at.LineIndex+1]
		d.Lines = append(d.Lines[:at.LineIndex+1], d.Lines[at.LineIndex+2:]...)
		line.Append(next)
		d.Dirty = true
	case at.GraphemeIndex < line.GraphemeCount():
		line.Delete(at.GraphemeIndex)
		d.Dirty = true
	}
}

// InsertNewline splits the line at the given location, inserting the tail as
// a new line immediately after. At the end of the document it appends an
// empty line.
func (d *Document) InsertNewline(at Location) {
	if at.LineIndex > d.Height() {
		logger.Error("newline past end of document", "line", at.LineIndex, "height", d.Height())
		return
	}
	if at.LineIndex == d.Height() {
		d.Lines = append(d.Lines, NewLine(""))
		d.Dirty = true
		return
	}
	tail := d.Lines[at.LineIndex].Split(at.GraphemeIndex)
	d.Lines = append(d.Lines, nil)
	copy(d.Lines[at.LineIndex+2:], d.Lines[at.LineIndex+1:])
	d.Lines[at.LineIndex+1] = tail
	d.Dirty = true
}

// SearchForward scans lines cyclically from the given location for the first
// occurrence of query. The starting line is visited a second time from its
// start so a match behind the cursor is still found after wrapping. An empty
// query never matches.
func (d *Document) SearchForward(query string, from Location) (Location, bool) {
	if query == "" || d.Height() == 0 {
		return Location{}, false
	}
	h := d.Height()
	for step := 0; step <= h; step++ {
		lineIdx := (from.LineIndex + step) % h
		fromGrapheme := 0
		if step == 0 {
			// SearchNext starts past the current match; that can land
			// beyond the end of a short line.
			fromGrapheme = from.GraphemeIndex
			if count := d.Lines[lineIdx].GraphemeCount(); fromGrapheme > count {
				fromGrapheme = count
			}
		}
		if gi, ok := d.Lines[lineIdx].SearchForward(query, fromGrapheme); ok {
			return Location{LineIndex: lineIdx, GraphemeIndex: gi}, true
		}
	}
	return Location{}, false
}

// SearchBackward is the reverse scan: cyclically upward from the given
// location, returning the last occurrence before it in scan order.
func (d *Document) SearchBackward(query string, from Location) (Location, bool) {
	if query == "" || d.Height() == 0 {
		return Location{}, false
	}
	h := d.Height()
	startLine := from.LineIndex
	if startLine >= h {
		startLine = h - 1
	}
	for step := 0; step <= h; step++ {
		lineIdx := ((startLine-step)%h + h) % h
		line := d.Lines[lineIdx]
		fromGrapheme := line.GraphemeCount()
		if step == 0 && from.LineIndex < h && from.GraphemeIndex < fromGrapheme {
			fromGrapheme = from.GraphemeIndex
		}
		if gi, ok := line.SearchBackward(query, fromGrapheme); ok {
			return Location{LineIndex: lineIdx, GraphemeIndex: gi}, true
		}
	}
	return Location{}, false
}
