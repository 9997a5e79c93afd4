package xiangqi

import (
	"reflect"
	"testing"
)

func TestFlyingGeneralIsCheck(t *testing.T) {
	// 两王都在 e 列，中间没子；红车在 a5
	gs := MustDecodeState("4k4/9/9/9/9/R8/9/9/9/4K4 w")
	if !gs.FaceToFace() {
		t.Fatalf("generals should face each other")
	}
	if !gs.InCheck(Red) || !gs.InCheck(Black) {
		t.Fatalf("face-off must count as check for both sides")
	}

	moves := gs.ValidMoves()
	got := notations(moves)
	want := []string{"a5e5", "e1d1", "e1f1"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("legal moves under face-off: got=%v want=%v", got, want)
	}
	for _, mv := range moves {
		gs.MakeMove(mv)
		if gs.FaceToFace() {
			t.Errorf("%v keeps the face-off", mv)
		}
		gs.UndoMove()
	}
	if gs.Checkmate() || gs.Stalemate() {
		t.Fatalf("face-off position with escapes flagged terminal")
	}
}

func TestBlockedFileIsNotFaceToFace(t *testing.T) {
	gs := MustDecodeState("4k4/9/9/9/4P4/9/9/9/9/4K4 w")
	if gs.FaceToFace() {
		t.Fatalf("soldier on e6 blocks the file")
	}
	if gs.InCheck(Red) || gs.InCheck(Black) {
		t.Fatalf("no check expected")
	}

	// 兵横走会让出 e 列，只有直进合法
	var soldier []Move
	for _, mv := range gs.ValidMoves() {
		if mv.Moved.Type() == PieceSoldier {
			soldier = append(soldier, mv)
		}
	}
	if got := notations(soldier); !reflect.DeepEqual(got, []string{"e6e7"}) {
		t.Fatalf("soldier moves: got=%v want=[e6e7]", got)
	}
}

func TestGeneralCannotStepIntoOpenFile(t *testing.T) {
	gs := MustDecodeState("4k4/9/9/9/9/9/9/9/9/3K5 w")
	for _, mv := range gs.ValidMoves() {
		if mv.Notation() == "d1e1" {
			t.Fatalf("d1e1 walks into the opposing general")
		}
	}
}

func TestAttackedByEachPieceType(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"chariot", "5k3/9/9/9/9/9/9/9/9/3K1r3 w"},
		{"horse", "5k3/9/9/9/9/9/9/3n5/9/4K4 w"},
		{"cannon", "5k3/9/9/9/9/4c4/9/4P4/9/4K4 w"},
		{"soldier", "5k3/9/9/9/9/9/9/9/4p4/4K4 w"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gs := MustDecodeState(tc.fen)
			if gs.FaceToFace() {
				t.Fatalf("generals must not face each other here")
			}
			if !gs.InCheck(Red) {
				t.Fatalf("red general should be in check:\n%s", gs.Board())
			}
		})
	}
}

func TestCheckmateFlag(t *testing.T) {
	// 双车错：黑将 d10，红车 i10 / i9
	gs := MustDecodeState("3k4R/8R/9/9/9/9/9/9/9/5K3 b")
	moves := gs.ValidMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", notations(moves))
	}
	if !gs.Checkmate() || gs.Stalemate() {
		t.Fatalf("flags: checkmate=%v stalemate=%v", gs.Checkmate(), gs.Stalemate())
	}
}

func TestStalemateFlag(t *testing.T) {
	// 黑将 d10 没被将，但 e10 会和红帅对脸，d9 被车控制
	gs := MustDecodeState("3k5/8R/9/9/9/9/9/9/9/4K4 b")
	if gs.InCheck(Black) {
		t.Fatalf("black should not be in check")
	}
	moves := gs.ValidMoves()
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", notations(moves))
	}
	if gs.Checkmate() || !gs.Stalemate() {
		t.Fatalf("flags: checkmate=%v stalemate=%v", gs.Checkmate(), gs.Stalemate())
	}

	// 标记在下一次有合法走法的计算后清掉
	gs.put(Square(1, 8), 0)
	if len(gs.ValidMoves()) == 0 || gs.Stalemate() || gs.Checkmate() {
		t.Fatalf("flags not cleared")
	}
}
