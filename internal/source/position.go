package source

import "fmt"

// Position is a point in a source buffer. Line and Column are 1-based,
// Offset is the 0-based byte index.
type Position struct {
	Line   int
	Column int
	Offset int
}

func NewPosition(line, column, offset int) *Position {
	return &Position{Line: line, Column: column, Offset: offset}
}

func (p *Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is a half-open span [Start, End) in a source buffer.
type Location struct {
	Start *Position
	End   *Position
}

func NewLocation(start, end *Position) *Location {
	return &Location{Start: start, End: end}
}

func (l *Location) String() string {
	if l == nil || l.Start == nil {
		return "?:?"
	}
	return l.Start.String()
}
