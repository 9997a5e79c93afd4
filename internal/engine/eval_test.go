package engine

import (
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestEvaluateInitialIsBalanced(t *testing.T) {
	gs := xiangqi.NewGameState()
	gs.ValidMoves()
	if got := Evaluate(gs); got != 0 {
		t.Fatalf("initial position: got=%v want=0", got)
	}
	if got := (Evaluator{Mirror: true}).Evaluate(gs); got != 0 {
		t.Fatalf("initial position mirrored: got=%v want=0", got)
	}
}

func TestEvaluateMaterialDifference(t *testing.T) {
	// 去掉黑方 a10 车：9 分子力 + 0.5 * 1 位置分
	gs := xiangqi.MustDecodeState("1nbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w")
	if got := Evaluate(gs); got != 9.5 {
		t.Fatalf("got=%v want=9.5", got)
	}
}

func TestEvaluateMirrorTables(t *testing.T) {
	gs := xiangqi.MustDecodeState("3k3c1/9/9/9/9/9/9/9/9/4K4 w")
	if got := Evaluate(gs); got != -7.5 {
		t.Fatalf("raw lookup: got=%v want=-7.5", got)
	}
	if got := (Evaluator{Mirror: true}).Evaluate(gs); got != -8 {
		t.Fatalf("mirrored lookup: got=%v want=-8", got)
	}
}

func TestEvaluateSoldierTablesPerSide(t *testing.T) {
	cases := []struct {
		fen  string
		want float64
	}{
		// 红兵在 e8（已过河），表值 5
		{"3k5/9/4P4/9/9/9/9/9/9/4K4 w", 1 + 0.5*5},
		// 黑卒在 e3，同样位置分
		{"4k4/9/9/9/9/9/9/4p4/9/5K3 w", -(1 + 0.5*5)},
		// 未过河的兵
		{"3k5/9/9/9/9/9/4P4/9/9/4K4 w", 1 + 0.5*1},
	}
	for _, tc := range cases {
		gs := xiangqi.MustDecodeState(tc.fen)
		if got := Evaluate(gs); got != tc.want {
			t.Errorf("%s: got=%v want=%v", tc.fen, got, tc.want)
		}
	}
}

func TestEvaluateTerminal(t *testing.T) {
	mate := xiangqi.MustDecodeState("3k4R/8R/9/9/9/9/9/9/9/5K3 b")
	if n := len(mate.ValidMoves()); n != 0 {
		t.Fatalf("setup: black should be mated, has %d moves", n)
	}
	if got := Evaluate(mate); got != Checkmate {
		t.Fatalf("black mated: got=%v want=%v", got, Checkmate)
	}

	stale := xiangqi.MustDecodeState("3k5/8R/9/9/9/9/9/9/9/4K4 b")
	stale.ValidMoves()
	if !stale.Stalemate() {
		t.Fatalf("setup: expected stalemate")
	}
	if got := Evaluate(stale); got != Stalemate {
		t.Fatalf("stalemate: got=%v want=%v", got, Stalemate)
	}
}

func TestEvaluateRedMated(t *testing.T) {
	// 黑车 i1 将，二路横线被 a2 车封住
	gs := xiangqi.MustDecodeState("5k3/9/9/9/9/9/9/9/r8/4K3r w")
	if n := len(gs.ValidMoves()); n != 0 {
		t.Fatalf("setup: red should be mated, has %d moves", n)
	}
	if got := Evaluate(gs); got != -Checkmate {
		t.Fatalf("red mated: got=%v want=%v", got, -Checkmate)
	}
}
