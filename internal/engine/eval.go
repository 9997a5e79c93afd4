package engine

import (
	"xiangqi/internal/xiangqi"
)

const (
	Checkmate = 1000.0
	Stalemate = 0.0

	// 位置分折半计入
	positionalWeight = 0.5
)

// 基础子力估值
var pieceValue = [...]int{
	xiangqi.PieceGeneral:  0,
	xiangqi.PieceAdvisor:  3,
	xiangqi.PieceElephant: 3,
	xiangqi.PieceHorse:    5,
	xiangqi.PieceChariot:  9,
	xiangqi.PieceCannon:   7,
	xiangqi.PieceSoldier:  1,
}

type table = [xiangqi.Rows][xiangqi.Cols]int

var horseTable = table{
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 4, 3, 3, 3, 4, 2, 1},
	{1, 2, 3, 3, 3, 3, 3, 2, 1},
	{1, 2, 3, 5, 5, 5, 3, 2, 1},
	{1, 2, 3, 5, 5, 5, 3, 2, 1},
	{1, 2, 2, 3, 3, 3, 3, 2, 1},
	{1, 2, 4, 3, 3, 3, 4, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
}

var cannonTable = table{
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 1},
	{2, 2, 3, 3, 5, 3, 3, 2, 2},
	{1, 2, 3, 3, 4, 3, 3, 2, 1},
	{1, 2, 3, 5, 6, 5, 3, 2, 1},
	{1, 2, 3, 5, 5, 5, 3, 2, 1},
	{1, 2, 3, 3, 4, 3, 3, 2, 1},
	{2, 2, 3, 3, 6, 3, 3, 2, 2},
	{1, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 2, 1},
}

var chariotTable = table{
	{1, 2, 2, 2, 1, 2, 2, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 3, 2, 3, 3, 3, 2, 3, 1},
	{1, 2, 3, 3, 3, 3, 3, 3, 1},
	{1, 2, 3, 4, 4, 4, 3, 2, 1},
	{1, 2, 3, 4, 4, 4, 3, 2, 1},
	{1, 2, 2, 3, 3, 3, 3, 3, 1},
	{1, 3, 2, 3, 3, 3, 2, 3, 1},
	{2, 2, 2, 2, 2, 2, 2, 2, 2},
	{1, 2, 2, 1, 1, 1, 2, 2, 1},
}

var elephantTable = table{
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 4, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 0, 0, 4, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 2, 0, 0, 0, 2, 0, 0},
}

var advisorTable = table{
	{0, 0, 0, 2, 0, 2, 0, 0, 0},
	{0, 0, 0, 0, 3, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 3, 0, 0, 0, 0},
	{0, 0, 0, 2, 0, 2, 0, 0, 0},
}

// 兵的表分红黑两张
var redSoldierTable = table{
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 5, 6, 5, 2, 2, 1},
	{3, 3, 4, 5, 5, 5, 4, 3, 3},
	{3, 4, 4, 3, 4, 3, 4, 4, 3},
	{3, 3, 3, 3, 3, 3, 3, 3, 3},
	{2, 2, 2, 2, 1, 2, 2, 2, 2},
	{1, 0, 1, 0, 1, 0, 1, 0, 1},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var blackSoldierTable = table{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 0, 1, 0, 1, 0, 1, 0, 1},
	{2, 2, 2, 2, 1, 2, 2, 2, 2},
	{3, 3, 3, 3, 3, 3, 3, 3, 3},
	{3, 4, 4, 3, 4, 3, 4, 4, 3},
	{3, 3, 4, 5, 5, 5, 4, 3, 3},
	{1, 2, 2, 5, 6, 5, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// 红黑共用的表，帅没有位置分
var sharedTables = [...]*table{
	xiangqi.PieceAdvisor:  &advisorTable,
	xiangqi.PieceElephant: &elephantTable,
	xiangqi.PieceHorse:    &horseTable,
	xiangqi.PieceChariot:  &chariotTable,
	xiangqi.PieceCannon:   &cannonTable,
}

// Evaluator 静态评估，红方视角：正数红方好，负数黑方好
type Evaluator struct {
	// 黑方非兵棋子按镜像行查表
	Mirror bool
}

// Evaluate 用不镜像的默认评估器
func Evaluate(gs *xiangqi.GameState) float64 {
	return Evaluator{}.Evaluate(gs)
}

// Evaluate 将死 / 困毙标记只在刚算完 ValidMoves 时可信，调用方负责这个时序
func (ev Evaluator) Evaluate(gs *xiangqi.GameState) float64 {
	if gs.Checkmate() {
		// 被将死的是轮走方
		if gs.SideToMove() == xiangqi.Red {
			return -Checkmate
		}
		return Checkmate
	}
	if gs.Stalemate() {
		return Stalemate
	}
	return ev.Material(gs.Board())
}

// Material 子力 + 位置分，不看终局标记
func (ev Evaluator) Material(b xiangqi.Board) float64 {
	score := 0.0
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		row, col := xiangqi.RowCol(sq)
		v := float64(pieceValue[pc.Type()]) + positionalWeight*float64(ev.positional(pc, row, col))
		if pc.Side() == xiangqi.Red {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

func (ev Evaluator) positional(pc xiangqi.Piece, row, col int) int {
	pt := pc.Type()
	switch pt {
	case xiangqi.PieceGeneral:
		return 0
	case xiangqi.PieceSoldier:
		if pc.Side() == xiangqi.Red {
			return redSoldierTable[row][col]
		}
		return blackSoldierTable[row][col]
	}
	t := sharedTables[pt]
	if t == nil {
		return 0
	}
	if ev.Mirror && pc.Side() == xiangqi.Black {
		row = xiangqi.Rows - 1 - row
	}
	return t[row][col]
}
