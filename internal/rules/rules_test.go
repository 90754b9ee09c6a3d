package rules

import (
	"testing"

	"clickgrid/internal/board"
)

// S1: single directional arrow.
func TestDirectionalArrowSolves(t *testing.T) {
	b := board.New(1, 2)
	b.SetCell(0, 0, 'r', 'R', board.NonePos)
	b.SetCell(0, 1, 'r', '0', board.NonePos)

	changed := ApplyClick(b, 0, 0)
	if !changed {
		t.Fatal("expected arrow click to change the board")
	}
	if b.Modifier(0, 1) != 'r' {
		t.Fatalf("expected cell (0,1) modifier 'r', got %q", b.Modifier(0, 1))
	}
	if !b.IsSolved() {
		t.Fatal("expected board to be solved after A1")
	}
	if b.Moves.String() != "A1" {
		t.Fatalf("move log = %q, want A1", b.Moves.String())
	}
}

// S2: bomb paints its full 3x3 neighborhood.
func TestBombPaintsNeighborhood(t *testing.T) {
	b := board.New(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if r == 1 && c == 1 {
				b.SetCell(r, c, 'g', 'B', board.NonePos)
			} else {
				b.SetCell(r, c, 'g', '0', board.NonePos)
			}
		}
	}

	changed := ApplyClick(b, 1, 1)
	if !changed {
		t.Fatal("expected bomb click to report changed")
	}
	if !b.IsSolved() {
		t.Fatal("expected board solved after bomb click")
	}
}

// S3: flood paint fills a region of unpainted same-colored cells.
func TestFloodPaintsRegion(t *testing.T) {
	b := board.New(2, 2)
	b.SetCell(0, 0, 'r', 'F', board.NonePos)
	b.SetCell(0, 1, 'r', '0', board.NonePos)
	b.SetCell(1, 0, 'r', '0', board.NonePos)
	b.SetCell(1, 1, 'r', '0', board.NonePos)

	changed := ApplyClick(b, 0, 0)
	if !changed {
		t.Fatal("expected flood click to report changed")
	}
	if b.Modifier(0, 1) != 'r' || b.Modifier(1, 0) != 'r' {
		t.Fatal("expected orthogonal neighbors painted")
	}
	// (1,1) is reached via the flood from either (0,1) or (1,0).
	if b.Modifier(1, 1) != 'r' {
		t.Fatal("expected diagonal cell reached via 4-connected flood")
	}
}

// S4: flood erase fallback fires when the paint pass writes nothing.
func TestFloodEraseFallback(t *testing.T) {
	b := board.New(2, 2)
	b.SetCell(0, 0, 'r', 'F', board.NonePos)
	b.SetCell(0, 1, 'r', 'r', board.NonePos)
	b.SetCell(1, 0, 'r', 'r', board.NonePos)
	b.SetCell(1, 1, 'r', 'r', board.NonePos)

	changed := ApplyClick(b, 0, 0)
	if !changed {
		t.Fatal("expected erase fallback to report changed = true")
	}
	if b.Modifier(0, 1) != '0' || b.Modifier(1, 0) != '0' {
		t.Fatal("expected already-painted neighbors erased back to '0'")
	}
	if b.IsSolved() {
		t.Fatal("erase fallback should leave the board unsolved")
	}
}

// S5: rotating arrow fires then advances its own modifier in the cycle.
func TestRotatingArrowFiresThenRotates(t *testing.T) {
	b := board.New(2, 2)
	b.SetCell(0, 1, 'b', '0', board.NonePos)
	b.SetCell(1, 1, 'b', 'w', board.NonePos)

	if !ApplyClick(b, 1, 1) {
		t.Fatal("rotating arrow click should always report changed = true")
	}
	if b.Modifier(0, 1) != 'b' {
		t.Fatal("expected cell above to be painted")
	}
	if b.Modifier(1, 1) != 'x' {
		t.Fatalf("expected clicked cell modifier to rotate w->x, got %q", b.Modifier(1, 1))
	}
}

// Wall cells are never mutated, even by area-effect rules.
func TestWallImmutability(t *testing.T) {
	b := board.New(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.SetCell(r, c, 'g', '0', board.NonePos)
		}
	}
	b.SetCell(1, 1, '0', 'B', board.NonePos)
	b.SetCell(0, 1, '0', 'X', board.NonePos)

	before := b.Modifier(0, 1)
	ApplyClick(b, 1, 1)
	if b.Modifier(0, 1) != before || b.Modifier(0, 1) != 'X' {
		t.Fatal("wall cell was mutated by bomb click")
	}
}

// Unknown/inert modifiers (including '0' and painted colors) are no-ops.
func TestUnknownModifierIsNoOp(t *testing.T) {
	b := board.New(1, 1)
	b.SetCell(0, 0, 'r', 'r', board.NonePos)

	changed := ApplyClick(b, 0, 0)
	if changed {
		t.Fatal("expected click on inert modifier to report changed = false")
	}
	if b.Moves.Len() != 1 {
		t.Fatal("move log must still record the click")
	}
}

// Move-log integrity holds regardless of changed.
func TestMoveLogIntegrityRegardlessOfOutcome(t *testing.T) {
	b := board.New(1, 1)
	b.SetCell(0, 0, 'r', 'r', board.NonePos)

	before := b.Moves.Len()
	ApplyClick(b, 0, 0)
	if b.Moves.Len() != before+1 {
		t.Fatal("move count did not advance")
	}
	got := b.Moves.Positions[b.Moves.Len()-1]
	if got != (board.Position{Row: 0, Col: 0}) {
		t.Fatalf("appended move = %v, want (0,0)", got)
	}
}

// Determinism: repeated calls on equal boards produce equal results.
func TestApplyClickDeterministic(t *testing.T) {
	build := func() *board.Board {
		b := board.New(2, 2)
		b.SetCell(0, 0, 'r', 'R', board.NonePos)
		b.SetCell(0, 1, 'r', '0', board.NonePos)
		b.SetCell(1, 0, 'g', '0', board.NonePos)
		b.SetCell(1, 1, 'g', '0', board.NonePos)
		return b
	}

	a, b := build(), build()
	ca := ApplyClick(a, 0, 0)
	cb := ApplyClick(b, 0, 0)
	if ca != cb || !a.Equal(b) {
		t.Fatal("ApplyClick produced different results for identical boards")
	}
}
