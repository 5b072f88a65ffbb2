package editor

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func decodeKey(t *testing.T, key tcell.Key, r rune, mod tcell.ModMask) Command {
	t.Helper()
	cmd, ok := Decode(tcell.NewEventKey(key, r, mod))
	if !ok {
		t.Fatalf("Decode(%v, %q, %v) not decodable", key, r, mod)
	}
	return cmd
}

func TestDecodeRuneIsInsert(t *testing.T) {
	cmd := decodeKey(t, tcell.KeyRune, 'x', tcell.ModNone)
	edit, ok := cmd.(Edit)
	if !ok || edit.Kind != EditInsert || edit.Rune != 'x' {
		t.Fatalf("Decode rune = %+v, want insert 'x'", cmd)
	}
}

func TestDecodeTabInsertsTab(t *testing.T) {
	cmd := decodeKey(t, tcell.KeyTab, 0, tcell.ModNone)
	edit, ok := cmd.(Edit)
	if !ok || edit.Kind != EditInsert || edit.Rune != '\t' {
		t.Fatalf("Decode tab = %+v, want insert tab", cmd)
	}
}

func TestDecodeEditingKeys(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		kind EditKind
	}{
		{tcell.KeyDelete, EditDelete},
		{tcell.KeyBackspace, EditDeleteBackward},
		{tcell.KeyBackspace2, EditDeleteBackward},
		{tcell.KeyEnter, EditInsertNewline},
	}
	for _, tc := range cases {
		cmd := decodeKey(t, tc.key, 0, tcell.ModNone)
		edit, ok := cmd.(Edit)
		if !ok || edit.Kind != tc.kind {
			t.Fatalf("Decode(%v) = %+v, want edit kind %d", tc.key, cmd, tc.kind)
		}
	}
}

func TestDecodeMoveKeys(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		move Move
	}{
		{tcell.KeyUp, MoveUp},
		{tcell.KeyDown, MoveDown},
		{tcell.KeyLeft, MoveLeft},
		{tcell.KeyRight, MoveRight},
		{tcell.KeyPgUp, MovePageUp},
		{tcell.KeyPgDn, MovePageDown},
		{tcell.KeyHome, MoveStartOfLine},
		{tcell.KeyEnd, MoveEndOfLine},
	}
	for _, tc := range cases {
		cmd := decodeKey(t, tc.key, 0, tcell.ModNone)
		move, ok := cmd.(Move)
		if !ok || move != tc.move {
			t.Fatalf("Decode(%v) = %+v, want move %d", tc.key, cmd, tc.move)
		}
	}
}

func TestDecodeSystemKeys(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		mod  tcell.ModMask
		kind SystemKind
	}{
		{tcell.KeyCtrlQ, tcell.ModCtrl, SystemQuit},
		{tcell.KeyCtrlS, tcell.ModCtrl, SystemSave},
		{tcell.KeyCtrlF, tcell.ModCtrl, SystemSearch},
		{tcell.KeyEscape, tcell.ModNone, SystemDismiss},
	}
	for _, tc := range cases {
		cmd := decodeKey(t, tc.key, 0, tc.mod)
		sys, ok := cmd.(System)
		if !ok || sys.Kind != tc.kind {
			t.Fatalf("Decode(%v) = %+v, want system kind %d", tc.key, cmd, tc.kind)
		}
	}
}

func TestDecodeResize(t *testing.T) {
	cmd, ok := Decode(tcell.NewEventResize(80, 24))
	if !ok {
		t.Fatalf("resize not decodable")
	}
	sys, ok := cmd.(System)
	if !ok || sys.Kind != SystemResize {
		t.Fatalf("Decode resize = %+v", cmd)
	}
	if sys.Size != (Size{Height: 24, Width: 80}) {
		t.Fatalf("size = %+v, want {24 80}", sys.Size)
	}
}

func TestDecodeModifiedRuneRejected(t *testing.T) {
	if cmd, ok := Decode(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt)); ok {
		t.Fatalf("alt-rune decoded as %+v", cmd)
	}
}

func TestDecodeUnknownKeyRejected(t *testing.T) {
	if cmd, ok := Decode(tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl)); ok {
		t.Fatalf("unbound key decoded as %+v", cmd)
	}
}
