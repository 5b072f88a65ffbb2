package editor

// Position is a viewport/screen-space coordinate: a row and a rendered
// column, both scroll-adjusted by the caller.
type Position struct {
	Row int
	Col int
}

func (p Position) saturatingSub(o Position) Position {
	return Position{
		Row: maxInt(p.Row-o.Row, 0),
		Col: maxInt(p.Col-o.Col, 0),
	}
}

// Size is a visible window extent in terminal cells.
type Size struct {
	Height int
	Width  int
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ceilDiv rounds the quotient up.
func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}
