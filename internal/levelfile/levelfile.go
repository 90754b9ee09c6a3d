// Package levelfile reads and writes the flat XML level format the CLI
// operates on: a <levels> document of <level> elements, each carrying a
// whitespace-separated color grid, a matching modifier grid, and an
// optional persisted solution string.
//
// No example in the retrieval corpus parses XML directly, so this package
// is built on the standard library's encoding/xml rather than a grounded
// third-party dependency; see DESIGN.md.
package levelfile

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"clickgrid/internal/board"
)

// Document is the root <levels> element.
type Document struct {
	XMLName xml.Name `xml:"levels"`
	Levels  []Level  `xml:"level"`
}

// Level is a single <level number="" color="" modifier="" solution="" />.
type Level struct {
	Number   int    `xml:"number,attr"`
	Color    string `xml:"color,attr"`
	Modifier string `xml:"modifier,attr"`
	Solution string `xml:"solution,attr,omitempty"`
}

// Load parses a levels XML file from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levelfile: read %s: %w", path, err)
	}
	doc := &Document{}
	if err := xml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("levelfile: parse %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc back to path as indented XML with the standard
// declaration, preserving the format's on-disk convention.
func Save(path string, doc *Document) error {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("levelfile: marshal: %w", err)
	}
	out := append([]byte(xml.Header), body...)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("levelfile: write %s: %w", path, err)
	}
	return nil
}

// gridLines splits a raw grid attribute into its rows, stripping all
// whitespace within each line; blank lines (pure whitespace) are dropped,
// since newlines in the attribute are formatting, not data.
func gridLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		stripped := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, line)
		if stripped != "" {
			lines = append(lines, stripped)
		}
	}
	return lines
}

// ToBoard builds a board.Board from a Level's color and modifier grids.
// Rows and cols are inferred from the max line count and max line length
// across both grids, per §6; any (r,c) beyond a grid's actual stripped
// content becomes an inert wall (color='0', modifier='X').
func (lv Level) ToBoard() *board.Board {
	colorLines := gridLines(lv.Color)
	modLines := gridLines(lv.Modifier)

	rows := len(colorLines)
	if len(modLines) > rows {
		rows = len(modLines)
	}
	cols := 0
	for _, l := range colorLines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	for _, l := range modLines {
		if len(l) > cols {
			cols = len(l)
		}
	}
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}

	cellAt := func(lines []string, r, c int) (byte, bool) {
		if r >= len(lines) || c >= len(lines[r]) {
			return 0, false
		}
		return lines[r][c], true
	}

	b := board.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			color, colorOK := cellAt(colorLines, r, c)
			modifier, modOK := cellAt(modLines, r, c)
			if !colorOK || !modOK {
				b.SetCell(r, c, '0', 'X', board.NonePos)
				continue
			}
			b.SetCell(r, c, color, modifier, board.NonePos)
		}
	}
	return b
}

// FromBoard renders a board's grid back into the flat color/modifier
// attribute strings ToBoard expects, and attaches the solution's move
// string if solved is non-nil.
func FromBoard(number int, b *board.Board, solved *board.Board) Level {
	var colorBuf, modBuf strings.Builder
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			colorBuf.WriteByte('\n')
			modBuf.WriteByte('\n')
		}
		for c := 0; c < b.Cols; c++ {
			colorBuf.WriteByte(b.Color(r, c))
			modBuf.WriteByte(b.Modifier(r, c))
		}
	}
	lv := Level{Number: number, Color: colorBuf.String(), Modifier: modBuf.String()}
	if solved != nil {
		lv.Solution = solved.Moves.String()
	}
	return lv
}

// ParseSolution turns a persisted "A1,B2,..." solution string back into
// Positions, for replay validation before trusting an on-disk solution.
func ParseSolution(s string) ([]board.Position, bool) {
	if s == "" {
		return nil, true
	}
	tokens := strings.Split(s, ",")
	positions := make([]board.Position, 0, len(tokens))
	for _, tok := range tokens {
		pos, ok := board.ParseMoveString(tok)
		if !ok {
			return nil, false
		}
		positions = append(positions, pos)
	}
	return positions, true
}
