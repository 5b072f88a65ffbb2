package document

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/soryn/quill/internal/logger"
)

// graphemeWidth is the number of terminal columns a cluster occupies.
type graphemeWidth int

const (
	widthHalf graphemeWidth = 1
	widthFull graphemeWidth = 2
)

// fragment is one grapheme cluster of a line together with everything the
// renderer needs to know about it: where it starts in the raw string, how
// many columns it takes, and an optional single-rune stand-in for clusters
// that cannot be printed as-is (tabs, zero-width characters, controls).
type fragment struct {
	cluster     string
	start       int // byte offset into the raw string
	width       graphemeWidth
	replacement rune // 0 when the cluster renders as itself
}

// Line is a single line of text split into grapheme clusters. The fragment
// table partitions the raw string contiguously and in order; it is rebuilt
// from scratch after every mutation rather than patched in place. A line
// never contains a line break.
type Line struct {
	raw       string
	fragments []fragment
}

func NewLine(s string) *Line {
	return &Line{raw: s, fragments: splitFragments(s)}
}

func splitFragments(s string) []fragment {
	if s == "" {
		return nil
	}
	var frags []fragment
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		start, _ := g.Positions()
		repl, ok := replacementFor(cluster)
		width := widthHalf
		if ok {
			// Replacements are single half-width runes.
			width = widthHalf
		} else if runewidth.StringWidth(cluster) >= 2 {
			width = widthFull
		}
		frags = append(frags, fragment{
			cluster:     cluster,
			start:       start,
			width:       width,
			replacement: repl,
		})
	}
	return frags
}

// replacementFor decides whether a cluster is drawn via a stand-in rune:
// tabs become spaces, visible-but-blank clusters (such as ideographic
// space) become '␣', lone control characters become '▯', and any other
// zero-width sequence becomes '.'.
func replacementFor(cluster string) (rune, bool) {
	width := runewidth.StringWidth(cluster)
	switch {
	case cluster == " ":
		return 0, false
	case cluster == "\t":
		return ' ', true
	case width > 0 && strings.TrimSpace(cluster) == "":
		return '␣', true
	case width == 0:
		runes := []rune(cluster)
		if len(runes) == 1 && unicode.IsControl(runes[0]) {
			return '▯', true
		}
		return '.', true
	}
	return 0, false
}

func (l *Line) rebuild() {
	l.fragments = splitFragments(l.raw)
}

// String returns the raw text of the line.
func (l *Line) String() string {
	return l.raw
}

// GraphemeCount returns the number of grapheme clusters in the line.
func (l *Line) GraphemeCount() int {
	return len(l.fragments)
}

// WidthUntil returns the rendered width, in columns, of the clusters before
// graphemeIndex.
func (l *Line) WidthUntil(graphemeIndex int) int {
	if graphemeIndex > len(l.fragments) {
		graphemeIndex = len(l.fragments)
	}
	width := 0
	for _, frag := range l.fragments[:graphemeIndex] {
		width += int(frag.width)
	}
	return width
}

// Width returns the rendered width of the whole line.
func (l *Line) Width() int {
	return l.WidthUntil(len(l.fragments))
}

// InsertRune inserts a rune before the cluster at the given grapheme index,
// or at the end of the line when at equals the cluster count. The fragment
// table is rebuilt, so the resulting cluster count is recomputed rather than
// assumed: an inserted combining mark may merge into an existing cluster.
func (l *Line) InsertRune(r rune, at int) {
	if at < len(l.fragments) {
		start := l.fragments[at].start
		l.raw = l.raw[:start] + string(r) + l.raw[start:]
	} else {
		l.raw += string(r)
	}
	l.rebuild()
}

// AppendRune appends a rune at the end of the line.
func (l *Line) AppendRune(r rune) {
	l.InsertRune(r, len(l.fragments))
}

// Delete removes the cluster at the given grapheme index. Out-of-range
// indices are a no-op.
func (l *Line) Delete(at int) {
	if at < 0 || at >= len(l.fragments) {
		return
	}
	frag := l.fragments[at]
	end := frag.start + len(frag.cluster)
	l.raw = l.raw[:frag.start] + l.raw[end:]
	l.rebuild()
}

// DeleteLast removes the final cluster of the line.
func (l *Line) DeleteLast() {
	l.Delete(len(l.fragments) - 1)
}

// Append concatenates other onto the end of the line.
func (l *Line) Append(other *Line) {
	l.raw += other.raw
	l.rebuild()
}

// Split truncates the line to the clusters before at and returns a new line
// holding the rest. Splitting at the cluster count yields an empty tail.
func (l *Line) Split(at int) *Line {
	if at < 0 || at >= len(l.fragments) {
		return NewLine("")
	}
	start := l.fragments[at].start
	tail := l.raw[start:]
	l.raw = l.raw[:start]
	l.rebuild()
	return NewLine(tail)
}

// graphemeToByte converts a grapheme index to the byte offset of that
// cluster. An index past the end is an internal invariant violation; it is
// logged and falls back to the start of the line.
func (l *Line) graphemeToByte(graphemeIndex int) int {
	if graphemeIndex <= 0 || len(l.fragments) == 0 {
		return 0
	}
	if graphemeIndex >= len(l.fragments) {
		if graphemeIndex == len(l.fragments) {
			return len(l.raw)
		}
		logger.Error("grapheme index out of range", "index", graphemeIndex, "count", len(l.fragments))
		return 0
	}
	return l.fragments[graphemeIndex].start
}

// byteToGrapheme converts a byte offset to the index of the first cluster
// starting at or after it. Returns false when the offset is past the end.
func (l *Line) byteToGrapheme(byteIndex int) (int, bool) {
	if byteIndex > len(l.raw) {
		return 0, false
	}
	for i, frag := range l.fragments {
		if frag.start >= byteIndex {
			return i, true
		}
	}
	return 0, false
}

type lineMatch struct {
	byteIndex     int
	graphemeIndex int
}

// SearchForward finds the first occurrence of query at or after the given
// grapheme index. Matches that are not aligned to cluster boundaries are
// rejected.
func (l *Line) SearchForward(query string, fromGrapheme int) (int, bool) {
	if fromGrapheme > len(l.fragments) {
		logger.Error("search start past end of line", "from", fromGrapheme, "count", len(l.fragments))
		fromGrapheme = len(l.fragments)
	}
	if fromGrapheme == len(l.fragments) {
		return 0, false
	}
	start := l.graphemeToByte(fromGrapheme)
	matches := l.findAll(query, start, len(l.raw))
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].graphemeIndex, true
}

// SearchBackward finds the last occurrence of query strictly before the
// given grapheme index.
func (l *Line) SearchBackward(query string, fromGrapheme int) (int, bool) {
	if fromGrapheme > len(l.fragments) {
		logger.Error("search start past end of line", "from", fromGrapheme, "count", len(l.fragments))
		fromGrapheme = len(l.fragments)
	}
	if fromGrapheme == 0 {
		return 0, false
	}
	end := len(l.raw)
	if fromGrapheme < len(l.fragments) {
		end = l.graphemeToByte(fromGrapheme)
	}
	matches := l.findAll(query, 0, end)
	if len(matches) == 0 {
		return 0, false
	}
	return matches[len(matches)-1].graphemeIndex, true
}

// findAll reports every cluster-aligned occurrence of query within the given
// byte range. Byte-level hits are re-segmented and compared cluster by
// cluster against the query's own segmentation, so a hit spanning part of a
// cluster is dropped.
func (l *Line) findAll(query string, start, end int) []lineMatch {
	if query == "" {
		return nil
	}
	if end > len(l.raw) {
		end = len(l.raw)
	}
	if start < 0 || start > end {
		return nil
	}
	substr := l.raw[start:end]
	queryClusters := uniseg.GraphemeClusterCount(query)

	var matches []lineMatch
	offset := 0
	for {
		rel := strings.Index(substr[offset:], query)
		if rel < 0 {
			break
		}
		byteIndex := start + offset + rel
		if graphemeIndex, ok := l.byteToGrapheme(byteIndex); ok {
			if l.clustersEqual(graphemeIndex, queryClusters, query) {
				matches = append(matches, lineMatch{byteIndex: byteIndex, graphemeIndex: graphemeIndex})
			}
		}
		offset += rel + 1
		if offset >= len(substr) {
			break
		}
	}
	return matches
}

// clustersEqual reports whether the count clusters starting at graphemeIndex
// concatenate to exactly query.
func (l *Line) clustersEqual(graphemeIndex, count int, query string) bool {
	if graphemeIndex+count > len(l.fragments) {
		return false
	}
	var b strings.Builder
	for _, frag := range l.fragments[graphemeIndex : graphemeIndex+count] {
		b.WriteString(frag.cluster)
	}
	return b.String() == query
}

// VisibleGraphemes returns the rendered text for a column range, without
// any annotations.
func (l *Line) VisibleGraphemes(colStart, colEnd int) string {
	return l.AnnotatedVisibleSubstr(colStart, colEnd, "", -1).String()
}

// AnnotatedVisibleSubstr windows the line to a column range and returns it
// as an annotated string ready for rendering. Fragments outside the range
// are dropped, a fragment straddling either edge is replaced by an ellipsis,
// fully visible fragments substitute their stand-in rune if they have one,
// and occurrences of query are tagged as matches. selectedMatch is the
// grapheme index of the occurrence to tag as the selected match; pass a
// negative value for none.
func (l *Line) AnnotatedVisibleSubstr(colStart, colEnd int, query string, selectedMatch int) *AnnotatedString {
	if colStart >= colEnd {
		return NewAnnotatedString("")
	}

	result := NewAnnotatedString(l.raw)

	if query != "" {
		for _, m := range l.findAll(query, 0, len(l.raw)) {
			kind := AnnotationMatch
			if selectedMatch >= 0 && m.graphemeIndex == selectedMatch {
				kind = AnnotationSelectedMatch
			}
			result.Add(kind, m.byteIndex, m.byteIndex+len(query))
		}
	}

	// Apply replacements and truncation back to front so earlier byte
	// offsets stay valid while later spans are rewritten.
	fragStart := l.Width()
	for i := len(l.fragments) - 1; i >= 0; i-- {
		frag := l.fragments[i]
		fragEnd := fragStart
		fragStart -= int(frag.width)

		if fragStart > colEnd {
			continue
		}

		if fragStart < colEnd && fragEnd > colEnd {
			// Straddles the right edge.
			result.Replace(frag.start, len(l.raw), "⋯")
			continue
		} else if fragStart == colEnd {
			result.TruncateRightFrom(frag.start)
			continue
		}

		if fragEnd <= colStart {
			// Everything further left is invisible.
			result.TruncateLeftUntil(frag.start + len(frag.cluster))
			break
		} else if fragStart < colStart && fragEnd > colStart {
			// Straddles the left edge.
			result.Replace(0, frag.start+len(frag.cluster), "⋯")
			break
		}

		if fragStart >= colStart && fragEnd <= colEnd && frag.replacement != 0 {
			result.Replace(frag.start, frag.start+len(frag.cluster), string(frag.replacement))
		}
	}

	return result
}
