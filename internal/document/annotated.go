package document

// AnnotationKind tags a byte range of an annotated string.
type AnnotationKind int

const (
	AnnotationMatch AnnotationKind = iota
	AnnotationSelectedMatch
)

// Annotation is a half-open byte range [Start, End) with a kind. Overlaps
// are allowed; when ranges overlap, the annotation added last wins at
// iteration time.
type Annotation struct {
	Kind  AnnotationKind
	Start int
	End   int
}

// AnnotatedString pairs a string with highlight annotations over byte
// ranges. It is built fresh for each render of a visible line and never
// persisted, so edits only need to keep the annotation list consistent,
// not efficient.
type AnnotatedString struct {
	str         string
	annotations []Annotation
}

func NewAnnotatedString(s string) *AnnotatedString {
	return &AnnotatedString{str: s}
}

func (a *AnnotatedString) String() string {
	return a.str
}

// Add appends an annotation. No overlap resolution is performed.
func (a *AnnotatedString) Add(kind AnnotationKind, start, end int) {
	a.annotations = append(a.annotations, Annotation{Kind: kind, Start: start, End: end})
}

// Replace splices newText over the byte range [start, end) and reindexes
// every annotation: positions at or after the edited region shift with the
// length change, positions inside it clamp to the edited boundary, positions
// before it are untouched. Annotations left empty or past the end of the
// text are dropped. The same rule covers insertion (start == end), deletion
// (empty newText) and replacement.
func (a *AnnotatedString) Replace(start, end int, newText string) {
	if end > len(a.str) {
		end = len(a.str)
	}
	if start > end {
		return
	}

	a.str = a.str[:start] + newText + a.str[end:]

	replacedLen := end - start
	delta := len(newText) - replacedLen
	if delta < 0 {
		delta = -delta
	}
	if delta == 0 {
		return
	}
	shrank := len(newText) < replacedLen

	shift := func(pos int) int {
		switch {
		case pos >= end:
			if shrank {
				return pos - delta
			}
			return pos + delta
		case pos >= start:
			if shrank {
				if pos-delta < start {
					return start
				}
				return pos - delta
			}
			if pos+delta > end {
				return end
			}
			return pos + delta
		default:
			return pos
		}
	}

	for i := range a.annotations {
		a.annotations[i].Start = shift(a.annotations[i].Start)
		a.annotations[i].End = shift(a.annotations[i].End)
	}

	kept := a.annotations[:0]
	for _, an := range a.annotations {
		if an.Start < an.End && an.Start < len(a.str) {
			kept = append(kept, an)
		}
	}
	a.annotations = kept
}

// TruncateLeftUntil removes everything before the given byte offset.
func (a *AnnotatedString) TruncateLeftUntil(b int) {
	a.Replace(0, b, "")
}

// TruncateRightFrom removes everything from the given byte offset on.
func (a *AnnotatedString) TruncateRightFrom(b int) {
	a.Replace(b, len(a.str), "")
}

// Part is a maximal run of the string with a uniform annotation state.
type Part struct {
	Text      string
	Kind      AnnotationKind
	Annotated bool
}

// Parts splits the string into maximal uniformly-annotated runs covering the
// whole string with no gaps. The effective annotation at a byte is the
// last-added annotation whose range contains it. Adjacent runs with the same
// state are merged.
func (a *AnnotatedString) Parts() []Part {
	var parts []Part
	cur := 0
	for cur < len(a.str) {
		active := -1
		for i, an := range a.annotations {
			if an.Start <= cur && an.End > cur {
				active = i
			}
		}
		if active >= 0 {
			an := a.annotations[active]
			end := an.End
			if end > len(a.str) {
				end = len(a.str)
			}
			// A later-added annotation takes over where it starts.
			for _, later := range a.annotations[active+1:] {
				if later.Start > cur && later.Start < end {
					end = later.Start
				}
			}
			parts = appendPart(parts, Part{Text: a.str[cur:end], Kind: an.Kind, Annotated: true})
			cur = end
			continue
		}
		end := len(a.str)
		for _, an := range a.annotations {
			if an.Start > cur && an.Start < end {
				end = an.Start
			}
		}
		parts = appendPart(parts, Part{Text: a.str[cur:end]})
		cur = end
	}
	return parts
}

func appendPart(parts []Part, p Part) []Part {
	if n := len(parts); n > 0 {
		last := &parts[n-1]
		if last.Annotated == p.Annotated && (!p.Annotated || last.Kind == p.Kind) {
			last.Text += p.Text
			return parts
		}
	}
	return append(parts, p)
}
