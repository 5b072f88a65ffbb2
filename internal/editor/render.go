package editor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/soryn/quill/internal/document"
)

// printText draws text cluster by cluster starting at x, stopping at maxX.
// Returns the column after the last drawn cell.
func printText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		if x >= maxX {
			break
		}
		runes := g.Runes()
		if len(runes) == 0 {
			continue
		}
		width := runewidth.StringWidth(g.Str())
		if width <= 0 {
			// Zero-width clusters are substituted before rendering; any
			// that slip through still occupy one cell.
			width = 1
		}
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		s.SetContent(x, y, runes[0], comb, style)
		x += width
	}
	return x
}

// printRow draws text on a row and clears the remainder of the row.
func printRow(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := printText(s, 0, y, width, text, style)
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// printAnnotatedRow draws the runs of an annotated string with their
// respective styles and clears the remainder of the row.
func printAnnotatedRow(s tcell.Screen, y, width int, annotated *document.AnnotatedString, st Styles) {
	x := 0
	for _, part := range annotated.Parts() {
		style := st.Main
		if part.Annotated {
			switch part.Kind {
			case document.AnnotationMatch:
				style = st.Match
			case document.AnnotationSelectedMatch:
				style = st.SelectedMatch
			}
		}
		x = printText(s, x, y, width, part.Text, style)
	}
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, st.Main)
	}
}

// welcomeMessage builds the placeholder row shown on an empty document:
// a tilde followed by the editor name centered in the remaining width.
func welcomeMessage(width int) string {
	if width == 0 {
		return ""
	}
	msg := fmt.Sprintf("%s editor -- version %s", Name, Version)
	remaining := width - 1
	if remaining < len(msg) {
		return "~"
	}
	return "~" + strings.Repeat(" ", (remaining-len(msg))/2) + msg
}

// Draw renders the visible window of the document: one annotated row per
// document line, the welcome row on an empty document, and a tilde for
// rows past the end.
func (v *View) Draw(s tcell.Screen, originRow int, st Styles) {
	topThird := ceilDiv(v.size.Height, 3)
	empty := v.doc.IsEmpty()

	query := ""
	if v.search != nil && v.search.query != nil {
		query = v.search.query.String()
	}

	for row := 0; row < v.size.Height; row++ {
		lineIdx := row + v.scroll.Row
		y := originRow + row

		if empty && row == topThird {
			printRow(s, y, v.size.Width, welcomeMessage(v.size.Width), st.Main)
			continue
		}
		if lineIdx < v.doc.Height() {
			left := v.scroll.Col
			right := left + v.size.Width
			selected := -1
			if query != "" && v.location.LineIndex == lineIdx {
				selected = v.location.GraphemeIndex
			}
			annotated := v.doc.Lines[lineIdx].AnnotatedVisibleSubstr(left, right, query, selected)
			printAnnotatedRow(s, y, v.size.Width, annotated, st)
			continue
		}
		printRow(s, y, v.size.Width, "~", st.Main)
	}
}

// Status reports the snapshot the status bar shows for this view.
func (v *View) Status() DocumentStatus {
	return DocumentStatus{
		TotalLines:       v.doc.Height(),
		CurrentLineIndex: v.location.LineIndex,
		IsModified:       v.doc.Dirty,
		FileName:         v.doc.FileName(),
	}
}
