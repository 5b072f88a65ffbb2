package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/soryn/quill/internal/document"
)

// CommandBar is the bottom-row prompt used for search input and save-as.
// Its value is a document line, so prompt editing shares the grapheme
// handling of the rest of the editor.
type CommandBar struct {
	prompt      string
	value       *document.Line
	needsRedraw bool
	size        Size
}

func NewCommandBar() *CommandBar {
	return &CommandBar{value: document.NewLine("")}
}

func (cb *CommandBar) HandleEdit(cmd Edit) {
	switch cmd.Kind {
	case EditInsert:
		cb.value.AppendRune(cmd.Rune)
	case EditDeleteBackward:
		cb.value.DeleteLast()
	}
	cb.needsRedraw = true
}

// CaretPositionCol is the column of the caret within the bar: prompt plus
// value width, clamped to the bar width. The prompt is assumed ASCII.
func (cb *CommandBar) CaretPositionCol() int {
	return minInt(len(cb.prompt)+cb.value.Width(), cb.size.Width)
}

func (cb *CommandBar) Value() string {
	return cb.value.String()
}

func (cb *CommandBar) SetPrompt(prompt string) {
	cb.prompt = prompt
	cb.needsRedraw = true
}

func (cb *CommandBar) ClearValue() {
	cb.value = document.NewLine("")
	cb.needsRedraw = true
}

func (cb *CommandBar) NeedsRedraw() bool {
	return cb.needsRedraw
}

func (cb *CommandBar) SetNeedsRedraw(value bool) {
	cb.needsRedraw = value
}

func (cb *CommandBar) Resize(size Size) {
	cb.size = size
	cb.needsRedraw = true
}

func (cb *CommandBar) Draw(s tcell.Screen, originRow int, st Styles) {
	// Show the rightmost part of the value that fits after the prompt, so
	// long input keeps its tail visible where the caret is.
	areaForValue := maxInt(cb.size.Width-len(cb.prompt), 0)
	valueEnd := cb.value.Width()
	valueStart := maxInt(valueEnd-areaForValue, 0)
	message := cb.prompt + cb.value.VisibleGraphemes(valueStart, valueEnd)
	// Compare rendered columns, not bytes: the value window is already
	// column-sized, so only a prompt wider than the bar can overflow.
	if len(cb.prompt)+(valueEnd-valueStart) > cb.size.Width {
		message = ""
	}
	printRow(s, originRow, cb.size.Width, message, st.Main)
}
