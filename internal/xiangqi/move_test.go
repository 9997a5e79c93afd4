package xiangqi

import "testing"

func TestMoveIdentityAndNotation(t *testing.T) {
	gs := NewGameState()
	b := gs.Board()

	mv := NewMoveRC(6, 0, 5, 0, &b)
	if mv.ID() != 6050 {
		t.Fatalf("id: got=%d want=6050", mv.ID())
	}
	if mv.Moved != MakePiece(Red, PieceSoldier) || mv.IsCapture() {
		t.Fatalf("snapshot: moved=%v captured=%v", mv.Moved, mv.Captured)
	}
	if got := mv.Notation(); got != "a4a5" {
		t.Fatalf("notation: got=%q want=a4a5", got)
	}
	if got := mv.String(); got != "P a4a5" {
		t.Fatalf("string: got=%q", got)
	}

	// 红炮打黑马：b3 -> b10
	capture := NewMoveRC(7, 1, 0, 1, &b)
	if !capture.IsCapture() || capture.Captured != MakePiece(Black, PieceHorse) {
		t.Fatalf("capture snapshot: %+v", capture)
	}
	if got := capture.String(); got != "Cx b3b10" {
		t.Fatalf("capture string: got=%q", got)
	}
}

func TestMoveEqualityIgnoresSnapshot(t *testing.T) {
	a := Move{From: Square(9, 4), To: Square(8, 4), Moved: MakePiece(Red, PieceGeneral)}
	b := Move{From: Square(9, 4), To: Square(8, 4)}
	if !a.Equal(b) {
		t.Fatalf("moves with same squares should be equal")
	}
	c := Move{From: Square(8, 4), To: Square(9, 4)}
	if a.Equal(c) {
		t.Fatalf("reversed move should differ")
	}
}

func TestMoveIDsAreUnique(t *testing.T) {
	seen := make(map[int][2]int, NumSquares*NumSquares)
	for from := 0; from < NumSquares; from++ {
		for to := 0; to < NumSquares; to++ {
			id := Move{From: from, To: to}.ID()
			if prev, ok := seen[id]; ok {
				t.Fatalf("id %d shared by %v and %v", id, prev, [2]int{from, to})
			}
			seen[id] = [2]int{from, to}
		}
	}
}

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		sq   int
		okay bool
	}{
		{"a1", Square(9, 0), true},
		{"e10", Square(0, 4), true},
		{"i5", Square(5, 8), true},
		{"j1", -1, false},
		{"a0", -1, false},
		{"a11", -1, false},
		{"", -1, false},
		{"a+1", -1, false},
		{"a01", -1, false},
		{"a-1", -1, false},
		{"b1 ", -1, false},
	}
	for _, tc := range cases {
		sq, ok := ParseSquare(tc.in)
		if ok != tc.okay || (ok && sq != tc.sq) {
			t.Errorf("ParseSquare(%q) = %d,%v want %d,%v", tc.in, sq, ok, tc.sq, tc.okay)
		}
	}
}

func TestFindMoveMatchesLegalList(t *testing.T) {
	gs := NewGameState()
	moves := gs.ValidMoves()

	if _, ok := FindMove(moves, Square(9, 1), Square(7, 2)); !ok {
		t.Fatalf("b1c3 should be legal")
	}
	// 不是马步
	if _, ok := FindMove(moves, Square(9, 1), Square(8, 1)); ok {
		t.Fatalf("b1b2 is not a legal move")
	}
}
