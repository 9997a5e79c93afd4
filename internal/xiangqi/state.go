package xiangqi

import "golang.org/x/exp/slices"

// GameState = 棋盘 + 轮到谁走 + 走子记录（悔棋用）
//
// 两个王的位置是缓存，只能经由 put 修改，保证和棋盘一致。
// checkmate / stalemate 只在刚调用完 ValidMoves 时有效。
type GameState struct {
	board      Board
	sideToMove Side
	kings      [2]int
	log        []Move

	checkmate bool
	stalemate bool
}

// NewGameState 标准开局，红先
func NewGameState() *GameState {
	return newGameState(parseInitialBoard(), Red)
}

func newGameState(b Board, stm Side) *GameState {
	gs := &GameState{
		sideToMove: stm,
		kings:      [2]int{-1, -1},
	}
	for sq, pc := range b.Squares {
		if pc != 0 {
			gs.put(sq, pc)
		}
	}
	return gs
}

// put 是唯一写棋盘的地方，王的缓存跟着一起改
func (gs *GameState) put(sq int, pc Piece) {
	old := gs.board.Squares[sq]
	if old.Type() == PieceGeneral && gs.kings[old.Side()] == sq {
		gs.kings[old.Side()] = -1
	}
	gs.board.Squares[sq] = pc
	if pc.Type() == PieceGeneral {
		gs.kings[pc.Side()] = sq
	}
}

// MakeMove 直接执行，不检查合法性：调用方只能传 ValidMoves 给出的走法
func (gs *GameState) MakeMove(m Move) {
	gs.put(m.From, 0)
	gs.put(m.To, m.Moved)
	gs.log = append(gs.log, m)
	gs.sideToMove = gs.sideToMove.Opponent()
}

// UndoMove 撤销最后一步；没有记录时什么都不做
func (gs *GameState) UndoMove() (Move, bool) {
	if len(gs.log) == 0 {
		return Move{}, false
	}
	m := gs.log[len(gs.log)-1]
	gs.log = gs.log[:len(gs.log)-1]
	gs.put(m.From, m.Moved)
	gs.put(m.To, m.Captured)
	gs.sideToMove = gs.sideToMove.Opponent()
	return m, true
}

func (gs *GameState) SideToMove() Side { return gs.sideToMove }

// Board 返回棋盘副本（给界面画图用）
func (gs *GameState) Board() Board { return gs.board }

func (gs *GameState) At(row, col int) Piece { return gs.board.At(row, col) }

// KingSquare 没有王时返回 -1
func (gs *GameState) KingSquare(side Side) int {
	if side != Red && side != Black {
		return -1
	}
	return gs.kings[side]
}

func (gs *GameState) Checkmate() bool { return gs.checkmate }
func (gs *GameState) Stalemate() bool { return gs.stalemate }

func (gs *GameState) Ply() int { return len(gs.log) }

func (gs *GameState) History() []Move { return slices.Clone(gs.log) }

func (gs *GameState) LastMove() (Move, bool) {
	if len(gs.log) == 0 {
		return Move{}, false
	}
	return gs.log[len(gs.log)-1], true
}

// Clone 深拷贝，并行搜索时每个分支各用一份
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.log = slices.Clone(gs.log)
	return &c
}
