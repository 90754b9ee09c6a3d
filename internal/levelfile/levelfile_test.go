package levelfile

import (
	"os"
	"path/filepath"
	"testing"

	"clickgrid/internal/board"
)

func TestToBoardInfersDimensionsAndPadsWalls(t *testing.T) {
	lv := Level{
		Number:   1,
		Color:    "rr\nr",
		Modifier: "R0\n0",
	}
	b := lv.ToBoard()
	if b.Rows != 2 || b.Cols != 2 {
		t.Fatalf("got %dx%d, want 2x2", b.Rows, b.Cols)
	}
	if b.Color(1, 1) != '0' || b.Modifier(1, 1) != 'X' {
		t.Fatalf("expected out-of-bounds cell (1,1) to become wall, got %q/%q", b.Color(1, 1), b.Modifier(1, 1))
	}
	if b.Color(0, 0) != 'r' || b.Modifier(0, 0) != 'R' {
		t.Fatal("expected (0,0) to carry the source grid's values")
	}
}

func TestToBoardStripsInternalWhitespace(t *testing.T) {
	lv := Level{Color: "r r", Modifier: "R 0"}
	b := lv.ToBoard()
	if b.Rows != 1 || b.Cols != 2 {
		t.Fatalf("got %dx%d, want 1x2 after stripping internal spaces", b.Rows, b.Cols)
	}
}

func TestFromBoardRoundTripsThroughToBoard(t *testing.T) {
	b := board.New(2, 3)
	b.SetCell(0, 0, 'r', 'R', board.NonePos)
	b.SetCell(0, 1, 'r', '0', board.NonePos)
	b.SetCell(0, 2, 'g', 'B', board.NonePos)
	b.SetCell(1, 0, '0', 'X', board.NonePos)
	b.SetCell(1, 1, '0', 'X', board.NonePos)
	b.SetCell(1, 2, '0', 'X', board.NonePos)

	lv := FromBoard(1, b, nil)
	back := lv.ToBoard()
	if !back.Equal(b) {
		t.Fatal("expected FromBoard -> ToBoard to round-trip the grid exactly")
	}
}

func TestFromBoardAttachesSolutionString(t *testing.T) {
	b := board.New(1, 2)
	b.SetCell(0, 0, 'r', 'R', board.NonePos)
	b.SetCell(0, 1, 'r', '0', board.NonePos)
	b.Moves.Append(board.Position{Row: 0, Col: 0})

	lv := FromBoard(1, b, b)
	if lv.Solution != "A1" {
		t.Fatalf("got solution %q, want A1", lv.Solution)
	}
}

func TestParseSolutionRoundTrip(t *testing.T) {
	positions, ok := ParseSolution("A1,B2,D3")
	if !ok {
		t.Fatal("expected valid solution string to parse")
	}
	want := []board.Position{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 3}}
	if len(positions) != len(want) {
		t.Fatalf("got %d positions, want %d", len(positions), len(want))
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("position %d = %v, want %v", i, positions[i], want[i])
		}
	}
}

func TestParseSolutionEmptyIsValidNoMoves(t *testing.T) {
	positions, ok := ParseSolution("")
	if !ok || positions != nil {
		t.Fatal("expected empty solution string to parse as zero moves")
	}
}

func TestParseSolutionRejectsMalformedToken(t *testing.T) {
	if _, ok := ParseSolution("A1,??"); ok {
		t.Fatal("expected malformed token to fail parsing")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.xml")

	doc := &Document{Levels: []Level{
		{Number: 1, Color: "rr", Modifier: "R0"},
		{Number: 2, Color: "gg\ngg", Modifier: "B0\n00"},
	}}
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Levels) != 2 {
		t.Fatalf("got %d levels, want 2", len(loaded.Levels))
	}
	if loaded.Levels[0].Number != 1 || loaded.Levels[1].Number != 2 {
		t.Fatal("expected level numbers to round-trip")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.xml")); err == nil {
		t.Fatal("expected an error for a missing level file")
	}
}

func TestLoadMalformedXMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.xml")
	if err := os.WriteFile(path, []byte("<levels><level "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed XML")
	}
}
