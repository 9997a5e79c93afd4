package xiangqi

import (
	"math/rand"
	"testing"
)

func scanKing(gs *GameState, side Side) int {
	for sq, pc := range gs.board.Squares {
		if pc != 0 && pc.Type() == PieceGeneral && pc.Side() == side {
			return sq
		}
	}
	return -1
}

func assertKingCache(t *testing.T, gs *GameState) {
	t.Helper()
	for _, side := range []Side{Red, Black} {
		if got, want := gs.KingSquare(side), scanKing(gs, side); got != want {
			t.Fatalf("%v king cache: got=%d want=%d\n%s", side, got, want, gs.board)
		}
	}
}

func TestSoldierAdvanceThenUndoRestoresInitialBoard(t *testing.T) {
	gs := NewGameState()
	before := gs.Board()

	moves := gs.ValidMoves()
	mv, ok := FindMove(moves, Square(6, 0), Square(5, 0))
	if !ok {
		t.Fatalf("a4a5 not among legal moves: %v", notations(moves))
	}
	if mv.IsCapture() {
		t.Fatalf("a4a5 should be quiet: %v", mv)
	}

	gs.MakeMove(mv)
	if gs.At(5, 0) != MakePiece(Red, PieceSoldier) || gs.At(6, 0) != 0 {
		t.Fatalf("soldier did not move:\n%s", gs.Board())
	}
	if gs.SideToMove() != Black {
		t.Fatalf("side to move after a4a5: %v", gs.SideToMove())
	}

	undone, ok := gs.UndoMove()
	if !ok || !undone.Equal(mv) {
		t.Fatalf("undo returned %v %v", undone, ok)
	}
	if gs.Board() != before {
		t.Fatalf("board not restored:\n%s", gs.Board())
	}
	if gs.SideToMove() != Red || gs.Ply() != 0 {
		t.Fatalf("state not restored: side=%v ply=%d", gs.SideToMove(), gs.Ply())
	}
	if gs.Encode() != InitialFEN {
		t.Fatalf("FEN after undo: %s", gs.Encode())
	}
}

func TestUndoOnEmptyLogIsNoop(t *testing.T) {
	gs := NewGameState()
	before := gs.Board()
	if _, ok := gs.UndoMove(); ok {
		t.Fatalf("undo on empty log reported a move")
	}
	if gs.Board() != before || gs.SideToMove() != Red {
		t.Fatalf("undo on empty log changed the state")
	}
}

func TestKingCacheFollowsGeneralMoves(t *testing.T) {
	gs := MustDecodeState(kingsOnlyFEN)
	mv, ok := FindMove(gs.ValidMoves(), Square(9, 3), Square(8, 3))
	if !ok {
		t.Fatalf("d1d2 missing")
	}
	gs.MakeMove(mv)
	if gs.KingSquare(Red) != Square(8, 3) {
		t.Fatalf("red king cache after d1d2: %d", gs.KingSquare(Red))
	}
	gs.UndoMove()
	if gs.KingSquare(Red) != Square(9, 3) {
		t.Fatalf("red king cache after undo: %d", gs.KingSquare(Red))
	}
	assertKingCache(t, gs)
}

// 随机对局：每一步都检查所有合法走法走了再撤回，局面完全不变，且不会送将
func TestRandomPlayoutsMakeUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	games, plies := 6, 60
	if testing.Short() {
		games, plies = 2, 30
	}
	for g := 0; g < games; g++ {
		gs := NewGameState()
		for ply := 0; ply < plies; ply++ {
			moves := gs.ValidMoves()
			if len(moves) == 0 {
				break
			}
			side := gs.SideToMove()
			board := gs.Board()
			fen := gs.Encode()
			for _, mv := range moves {
				gs.MakeMove(mv)
				if gs.InCheck(side) {
					t.Fatalf("game %d ply %d: %v leaves %v in check\n%s", g, ply, mv, side, gs.Board())
				}
				if gs.FaceToFace() {
					t.Fatalf("game %d ply %d: %v leaves generals facing", g, ply, mv)
				}
				assertKingCache(t, gs)
				gs.UndoMove()
				if gs.Board() != board || gs.SideToMove() != side {
					t.Fatalf("game %d ply %d: %v not reverted: %s != %s", g, ply, mv, gs.Encode(), fen)
				}
			}
			gs.MakeMove(moves[rng.Intn(len(moves))])
			assertKingCache(t, gs)
		}
		for gs.Ply() > 0 {
			gs.UndoMove()
		}
		if gs.Encode() != InitialFEN {
			t.Fatalf("game %d: unwinding the log did not reach the start: %s", g, gs.Encode())
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	gs := NewGameState()
	mv, _ := FindMove(gs.ValidMoves(), Square(6, 0), Square(5, 0))
	gs.MakeMove(mv)

	c := gs.Clone()
	reply := c.ValidMoves()[0]
	c.MakeMove(reply)

	if gs.Ply() != 1 || c.Ply() != 2 {
		t.Fatalf("plies: orig=%d clone=%d", gs.Ply(), c.Ply())
	}
	if gs.Board() == c.Board() {
		t.Fatalf("clone shares the board")
	}
	c.UndoMove()
	c.UndoMove()
	if c.Encode() != InitialFEN || gs.Ply() != 1 {
		t.Fatalf("clone undo touched the original")
	}
}
