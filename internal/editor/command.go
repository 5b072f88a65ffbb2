package editor

import (
	"github.com/gdamore/tcell/v2"
)

// Command is one decoded input action. The concrete types are Edit, Move
// and System; decoding tries them in that order and the first match wins.
// A resize event is always decodable regardless of that order.
type Command interface {
	isCommand()
}

type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditDeleteBackward
	EditInsertNewline
)

// Edit is a structural text edit. Rune is set only for EditInsert.
type Edit struct {
	Kind EditKind
	Rune rune
}

func (Edit) isCommand() {}

type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MovePageUp
	MovePageDown
	MoveStartOfLine
	MoveEndOfLine
)

func (Move) isCommand() {}

type SystemKind int

const (
	SystemQuit SystemKind = iota
	SystemSave
	SystemResize
	SystemSearch
	SystemDismiss
)

// System is a non-editing action. Size is set only for SystemResize.
type System struct {
	Kind SystemKind
	Size Size
}

func (System) isCommand() {}

// Decode maps a tcell event to a Command. Unsupported events return false.
func Decode(ev tcell.Event) (Command, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		return System{Kind: SystemResize, Size: Size{Height: h, Width: w}}, true
	case *tcell.EventKey:
		if cmd, ok := decodeEdit(ev); ok {
			return cmd, true
		}
		if cmd, ok := decodeMove(ev); ok {
			return cmd, true
		}
		if cmd, ok := decodeSystem(ev); ok {
			return cmd, true
		}
	}
	return nil, false
}

func decodeEdit(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return nil, false
		}
		return Edit{Kind: EditInsert, Rune: ev.Rune()}, true
	case tcell.KeyTab:
		return Edit{Kind: EditInsert, Rune: '\t'}, true
	case tcell.KeyDelete:
		return Edit{Kind: EditDelete}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Edit{Kind: EditDeleteBackward}, true
	case tcell.KeyEnter:
		return Edit{Kind: EditInsertNewline}, true
	}
	return nil, false
}

func decodeMove(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return MoveUp, true
	case tcell.KeyDown:
		return MoveDown, true
	case tcell.KeyLeft:
		return MoveLeft, true
	case tcell.KeyRight:
		return MoveRight, true
	case tcell.KeyPgUp:
		return MovePageUp, true
	case tcell.KeyPgDn:
		return MovePageDown, true
	case tcell.KeyHome:
		return MoveStartOfLine, true
	case tcell.KeyEnd:
		return MoveEndOfLine, true
	}
	return nil, false
}

func decodeSystem(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return System{Kind: SystemQuit}, true
	case tcell.KeyCtrlS:
		return System{Kind: SystemSave}, true
	case tcell.KeyCtrlF:
		return System{Kind: SystemSearch}, true
	case tcell.KeyEscape:
		return System{Kind: SystemDismiss}, true
	}
	return nil, false
}
