package render

import (
	"bytes"
	"strings"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestWriteSVGInitial(t *testing.T) {
	var buf bytes.Buffer
	WriteSVG(&buf, xiangqi.NewGameState().Board())
	out := buf.String()

	if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	// 32 个棋子各一个圆
	if n := strings.Count(out, "<circle"); n != 32 {
		t.Fatalf("circles: got=%d want=32", n)
	}
	for _, g := range []string{"帥", "將", "俥", "砲", "卒"} {
		if !strings.Contains(out, g) {
			t.Errorf("missing glyph %s", g)
		}
	}
}

func TestWriteLastMoveHighlight(t *testing.T) {
	gs := xiangqi.NewGameState()
	mv := gs.ValidMoves()[0]
	gs.MakeMove(mv)

	var buf bytes.Buffer
	Write(&buf, gs.Board(), Options{LastMove: &mv})
	if n := strings.Count(buf.String(), "<circle"); n != 34 {
		t.Fatalf("circles: got=%d want=34", n)
	}
}
