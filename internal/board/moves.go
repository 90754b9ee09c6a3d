package board

import (
	"strconv"
	"strings"
)

// MoveSequence is the append-only log of clicked positions.
type MoveSequence struct {
	Positions []Position
}

// NewMoveSequence returns an empty move log.
func NewMoveSequence() *MoveSequence {
	return &MoveSequence{}
}

// Len returns the move count n.
func (m *MoveSequence) Len() int { return len(m.Positions) }

// Append records a click, regardless of whether it changed the board.
func (m *MoveSequence) Append(p Position) {
	m.Positions = append(m.Positions, p)
}

// Copy returns a deep copy of the move log.
func (m *MoveSequence) Copy() *MoveSequence {
	return &MoveSequence{Positions: append([]Position(nil), m.Positions...)}
}

// String renders the move sequence in "<letter><row+1>" form, comma
// joined, e.g. "B3,A1,D2".
func (m *MoveSequence) String() string {
	parts := make([]string, len(m.Positions))
	for i, p := range m.Positions {
		parts[i] = MoveString(p)
	}
	return strings.Join(parts, ",")
}

// MoveString renders a single position as "<letter><row+1>", letter = 'A'+col.
func MoveString(p Position) string {
	return string(rune('A'+p.Col)) + strconv.Itoa(p.Row+1)
}

// ParseMoveString parses a single "<letter><row+1>" token back into a
// Position. levelfile.ParseSolution uses it to turn a persisted `solution`
// attribute back into positions.
func ParseMoveString(s string) (Position, bool) {
	if len(s) < 2 {
		return Position{}, false
	}
	col := int(s[0] - 'A')
	row, err := strconv.Atoi(s[1:])
	if err != nil || col < 0 {
		return Position{}, false
	}
	return Position{Row: row - 1, Col: col}, true
}
