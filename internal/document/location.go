package document

// Location is a position in document space: a line index plus a
// grapheme-cluster index within that line. It is not a screen position;
// the editor translates it into columns when rendering.
type Location struct {
	LineIndex     int
	GraphemeIndex int
}
