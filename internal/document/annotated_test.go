package document

import (
	"reflect"
	"testing"
)

func annotationsOf(a *AnnotatedString) []Annotation {
	return a.annotations
}

func TestReplaceInsertShiftsRight(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 2, 4)
	a.Replace(0, 0, "xx")
	if got := a.String(); got != "xxabcdef" {
		t.Fatalf("String = %q, want %q", got, "xxabcdef")
	}
	want := []Annotation{{Kind: AnnotationMatch, Start: 4, End: 6}}
	if got := annotationsOf(a); !reflect.DeepEqual(got, want) {
		t.Fatalf("annotations = %+v, want %+v", got, want)
	}
}

func TestReplaceDeleteShiftsLeft(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 2, 4)
	a.Replace(0, 2, "")
	if got := a.String(); got != "cdef" {
		t.Fatalf("String = %q, want %q", got, "cdef")
	}
	want := []Annotation{{Kind: AnnotationMatch, Start: 0, End: 2}}
	if got := annotationsOf(a); !reflect.DeepEqual(got, want) {
		t.Fatalf("annotations = %+v, want %+v", got, want)
	}
}

func TestReplaceClampsInsideEditedRegion(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 1, 5)
	a.Replace(2, 4, "")
	if got := a.String(); got != "abef" {
		t.Fatalf("String = %q, want %q", got, "abef")
	}
	want := []Annotation{{Kind: AnnotationMatch, Start: 1, End: 3}}
	if got := annotationsOf(a); !reflect.DeepEqual(got, want) {
		t.Fatalf("annotations = %+v, want %+v", got, want)
	}
}

func TestReplaceDropsEmptiedAnnotations(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 2, 4)
	a.TruncateRightFrom(2)
	if got := a.String(); got != "ab" {
		t.Fatalf("String = %q, want %q", got, "ab")
	}
	if got := annotationsOf(a); len(got) != 0 {
		t.Fatalf("annotations = %+v, want none", got)
	}
}

func TestTruncateLeftUntil(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 3, 5)
	a.TruncateLeftUntil(2)
	if got := a.String(); got != "cdef" {
		t.Fatalf("String = %q, want %q", got, "cdef")
	}
	want := []Annotation{{Kind: AnnotationMatch, Start: 1, End: 3}}
	if got := annotationsOf(a); !reflect.DeepEqual(got, want) {
		t.Fatalf("annotations = %+v, want %+v", got, want)
	}
}

func TestReplaceEndPastLenClamps(t *testing.T) {
	a := NewAnnotatedString("abc")
	a.Replace(1, 10, "x")
	if got := a.String(); got != "ax" {
		t.Fatalf("String = %q, want %q", got, "ax")
	}
}

func TestPartsCoverWholeString(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 1, 3)
	parts := a.Parts()
	var rebuilt string
	for _, p := range parts {
		rebuilt += p.Text
	}
	if rebuilt != "abcdef" {
		t.Fatalf("parts rebuild %q, want %q", rebuilt, "abcdef")
	}
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3: %+v", len(parts), parts)
	}
}

func TestPartsMergeAdjacentSameState(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 0, 2)
	a.Add(AnnotationMatch, 2, 4)
	parts := a.Parts()
	if len(parts) != 2 {
		t.Fatalf("parts = %d, want 2: %+v", len(parts), parts)
	}
	if parts[0].Text != "abcd" || parts[0].Kind != AnnotationMatch {
		t.Fatalf("part0 = %+v, want merged %q", parts[0], "abcd")
	}
	if parts[1].Text != "ef" || parts[1].Annotated {
		t.Fatalf("part1 = %+v, want plain %q", parts[1], "ef")
	}
}

func TestPartsLastAddedWins(t *testing.T) {
	a := NewAnnotatedString("abcdef")
	a.Add(AnnotationMatch, 0, 4)
	a.Add(AnnotationSelectedMatch, 2, 4)
	parts := a.Parts()
	if len(parts) != 3 {
		t.Fatalf("parts = %d, want 3: %+v", len(parts), parts)
	}
	if parts[0].Text != "ab" || parts[0].Kind != AnnotationMatch {
		t.Fatalf("part0 = %+v, want match %q", parts[0], "ab")
	}
	if parts[1].Text != "cd" || parts[1].Kind != AnnotationSelectedMatch {
		t.Fatalf("part1 = %+v, want selected match %q", parts[1], "cd")
	}
	if parts[2].Text != "ef" || parts[2].Annotated {
		t.Fatalf("part2 = %+v, want plain %q", parts[2], "ef")
	}
}
