package document

import (
	"testing"
)

func TestGraphemeCountAndWidth(t *testing.T) {
	cases := []struct {
		text  string
		count int
		width int
	}{
		{"", 0, 0},
		{"abc", 3, 3},
		{"é", 1, 1},       // combining acute merges into one cluster
		{"你好", 2, 4},  // CJK, two columns each
		{"a你b", 3, 4},
	}
	for _, tc := range cases {
		l := NewLine(tc.text)
		if got := l.GraphemeCount(); got != tc.count {
			t.Fatalf("GraphemeCount(%q) = %d, want %d", tc.text, got, tc.count)
		}
		if got := l.Width(); got != tc.width {
			t.Fatalf("Width(%q) = %d, want %d", tc.text, got, tc.width)
		}
	}
}

func TestWidthUntil(t *testing.T) {
	l := NewLine("a你b")
	if got := l.WidthUntil(0); got != 0 {
		t.Fatalf("WidthUntil(0) = %d, want 0", got)
	}
	if got := l.WidthUntil(1); got != 1 {
		t.Fatalf("WidthUntil(1) = %d, want 1", got)
	}
	if got := l.WidthUntil(2); got != 3 {
		t.Fatalf("WidthUntil(2) = %d, want 3", got)
	}
	if got := l.WidthUntil(10); got != 4 {
		t.Fatalf("WidthUntil past end = %d, want 4", got)
	}
}

func TestReplacementGlyphs(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"a\tb", "a b"},        // tab renders as a space
		{"a　b", "a␣b"}, // ideographic space becomes open-box
		{"a\x01b", "a▯b"},   // lone control
		{"a​b", "a.b"},      // other zero-width
		{"a b", "a b"},           // plain space untouched
	}
	for _, tc := range cases {
		l := NewLine(tc.text)
		if got := l.VisibleGraphemes(0, 100); got != tc.want {
			t.Fatalf("VisibleGraphemes(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestReplacedClusterIsOneColumn(t *testing.T) {
	// Ideographic space is two columns raw, but its stand-in is one.
	l := NewLine("　")
	if got := l.Width(); got != 1 {
		t.Fatalf("Width = %d, want 1", got)
	}
}

func TestLineInsertRune(t *testing.T) {
	l := NewLine("ac")
	l.InsertRune('b', 1)
	if got := l.String(); got != "abc" {
		t.Fatalf("String = %q, want %q", got, "abc")
	}
	l.AppendRune('d')
	if got := l.String(); got != "abcd" {
		t.Fatalf("String = %q, want %q", got, "abcd")
	}
}

func TestInsertCombiningMarkMerges(t *testing.T) {
	l := NewLine("e")
	l.InsertRune('́', 1)
	if got := l.GraphemeCount(); got != 1 {
		t.Fatalf("GraphemeCount = %d, want 1", got)
	}
	if got := l.String(); got != "é" {
		t.Fatalf("String = %q, want %q", got, "é")
	}
}

func TestDelete(t *testing.T) {
	l := NewLine("aéb")
	l.Delete(1)
	if got := l.String(); got != "ab" {
		t.Fatalf("String = %q, want %q", got, "ab")
	}
	l.Delete(5) // out of range, no-op
	if got := l.String(); got != "ab" {
		t.Fatalf("String after no-op = %q, want %q", got, "ab")
	}
	l.DeleteLast()
	if got := l.String(); got != "a" {
		t.Fatalf("String = %q, want %q", got, "a")
	}
}

func TestSplitAndAppend(t *testing.T) {
	l := NewLine("abcd")
	tail := l.Split(2)
	if l.String() != "ab" || tail.String() != "cd" {
		t.Fatalf("Split = %q + %q, want %q + %q", l.String(), tail.String(), "ab", "cd")
	}
	l.Append(tail)
	if got := l.String(); got != "abcd" {
		t.Fatalf("Append = %q, want %q", got, "abcd")
	}

	empty := l.Split(4)
	if l.String() != "abcd" || empty.String() != "" {
		t.Fatalf("Split at end = %q + %q, want whole line and empty tail", l.String(), empty.String())
	}
}

func TestSearchForwardBackward(t *testing.T) {
	l := NewLine("abcabc")
	if gi, ok := l.SearchForward("bc", 0); !ok || gi != 1 {
		t.Fatalf("SearchForward from 0 = %d,%v, want 1,true", gi, ok)
	}
	if gi, ok := l.SearchForward("bc", 2); !ok || gi != 4 {
		t.Fatalf("SearchForward from 2 = %d,%v, want 4,true", gi, ok)
	}
	if _, ok := l.SearchForward("bc", 5); ok {
		t.Fatalf("SearchForward from 5 found a match")
	}
	if gi, ok := l.SearchBackward("bc", 4); !ok || gi != 1 {
		t.Fatalf("SearchBackward from 4 = %d,%v, want 1,true", gi, ok)
	}
	if gi, ok := l.SearchBackward("bc", 6); !ok || gi != 4 {
		t.Fatalf("SearchBackward from end = %d,%v, want 4,true", gi, ok)
	}
	if _, ok := l.SearchBackward("bc", 0); ok {
		t.Fatalf("SearchBackward from 0 found a match")
	}
}

func TestSearchRejectsPartialCluster(t *testing.T) {
	// "e" alone is a byte-level hit inside the "é" cluster and must
	// not count as a match.
	l := NewLine("éx")
	if _, ok := l.SearchForward("e", 0); ok {
		t.Fatalf("found a match inside a cluster")
	}
	if gi, ok := l.SearchForward("é", 0); !ok || gi != 0 {
		t.Fatalf("SearchForward cluster = %d,%v, want 0,true", gi, ok)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	l := NewLine("abc")
	if _, ok := l.SearchForward("", 0); ok {
		t.Fatalf("empty query matched")
	}
}

func TestVisibleGraphemesWideEdges(t *testing.T) {
	l := NewLine("你好") // two full-width clusters, columns [0,2) and [2,4)
	if got := l.VisibleGraphemes(0, 4); got != "你好" {
		t.Fatalf("full window = %q", got)
	}
	if got := l.VisibleGraphemes(0, 3); got != "你⋯" {
		t.Fatalf("right straddle = %q, want %q", got, "你⋯")
	}
	if got := l.VisibleGraphemes(1, 4); got != "⋯好" {
		t.Fatalf("left straddle = %q, want %q", got, "⋯好")
	}
	if got := l.VisibleGraphemes(2, 2); got != "" {
		t.Fatalf("empty window = %q, want empty", got)
	}
}

func TestAnnotatedVisibleSubstrMatches(t *testing.T) {
	l := NewLine("foo bar foo")
	annotated := l.AnnotatedVisibleSubstr(0, 100, "foo", 0)
	parts := annotated.Parts()
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3: %+v", len(parts), parts)
	}
	if parts[0].Text != "foo" || !parts[0].Annotated || parts[0].Kind != AnnotationSelectedMatch {
		t.Fatalf("part0 = %+v, want selected match %q", parts[0], "foo")
	}
	if parts[1].Text != " bar " || parts[1].Annotated {
		t.Fatalf("part1 = %+v, want plain %q", parts[1], " bar ")
	}
	if parts[2].Text != "foo" || !parts[2].Annotated || parts[2].Kind != AnnotationMatch {
		t.Fatalf("part2 = %+v, want match %q", parts[2], "foo")
	}
}
