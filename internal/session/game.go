package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slices"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is over")
	ErrNotFound       = errors.New("game not found")
	ErrUndoNotAllowed = errors.New("undo is only allowed in pvp")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrNotAITurn      = errors.New("not the ai's turn")
	ErrNotHumanTurn   = errors.New("not a human's turn")
)

type Status int

const (
	Ongoing Status = iota
	RedWins
	BlackWins
	Stalemate
	Draw // 步数到上限
)

func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case RedWins:
		return "red wins"
	case BlackWins:
		return "black wins"
	case Stalemate:
		return "stalemate"
	case Draw:
		return "draw"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Game 一盘棋。所有方法都持锁，同一局面同一时刻只有一个搜索在跑。
type Game struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	opts      Options
	gs        *xiangqi.GameState
	eng       *engine.Engine
	legal     []xiangqi.Move // 当前局面的合法着法，每次走子 / 悔棋后重算
	status    Status
	updatedAt time.Time
}

func newGame(id string, opts Options) (*Game, error) {
	opts = opts.withDefaults()
	gs := xiangqi.NewGameState()
	if opts.FEN != "" {
		var err error
		if gs, err = xiangqi.DecodeState(opts.FEN); err != nil {
			return nil, err
		}
	}
	now := time.Now()
	g := &Game{
		ID:        id,
		CreatedAt: now,
		opts:      opts,
		gs:        gs,
		eng:       engine.New(opts.engineConfig()),
		updatedAt: now,
	}
	g.refresh()
	return g, nil
}

// refresh 重算合法着法和结局，调用方持锁
func (g *Game) refresh() {
	g.legal = g.gs.ValidMoves()
	g.updatedAt = time.Now()
	switch {
	case g.gs.Checkmate():
		// 被将死的是轮走方
		if g.gs.SideToMove() == xiangqi.Red {
			g.status = BlackWins
		} else {
			g.status = RedWins
		}
	case g.gs.Stalemate():
		g.status = Stalemate
	case g.gs.Ply() >= g.opts.DrawPlies:
		g.status = Draw
	default:
		g.status = Ongoing
	}
}

func (g *Game) Options() Options { return g.opts }

func (g *Game) UpdatedAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.updatedAt
}

// Legal 当前合法着法的副本；终局后为空
func (g *Game) Legal() []xiangqi.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.status != Ongoing {
		return nil
	}
	return slices.Clone(g.legal)
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Winner 胜方；未分胜负（含困毙、判和）时为 NoSide
func (g *Game) Winner() xiangqi.Side {
	switch g.Status() {
	case RedWins:
		return xiangqi.Red
	case BlackWins:
		return xiangqi.Black
	default:
		return xiangqi.NoSide
	}
}

func (g *Game) SideToMove() xiangqi.Side {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gs.SideToMove()
}

func (g *Game) Board() xiangqi.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gs.Board()
}

func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gs.Encode()
}

func (g *Game) History() []xiangqi.Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gs.History()
}

func (g *Game) InCheck() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gs.InCheck(g.gs.SideToMove())
}

// IsAITurn 轮到引擎走
func (g *Game) IsAITurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.aiToMove()
}

func (g *Game) aiToMove() bool {
	switch g.opts.Mode {
	case AIvsAI:
		return true
	case VsAI:
		return g.gs.SideToMove() != g.opts.HumanSide
	default:
		return false
	}
}

// Play 人走一步，坐标为行列。走法必须在当前合法着法里。
func (g *Game) Play(fromRow, fromCol, toRow, toCol int) (xiangqi.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != Ongoing {
		return xiangqi.Move{}, ErrGameOver
	}
	if g.aiToMove() {
		return xiangqi.Move{}, ErrNotHumanTurn
	}
	if !xiangqi.OnBoard(fromRow, fromCol) || !xiangqi.OnBoard(toRow, toCol) {
		return xiangqi.Move{}, fmt.Errorf("%w: (%d,%d)->(%d,%d) off board", ErrIllegalMove, fromRow, fromCol, toRow, toCol)
	}
	mv, ok := xiangqi.FindMove(g.legal, xiangqi.Square(fromRow, fromCol), xiangqi.Square(toRow, toCol))
	if !ok {
		return xiangqi.Move{}, fmt.Errorf("%w: (%d,%d)->(%d,%d)", ErrIllegalMove, fromRow, fromCol, toRow, toCol)
	}
	g.gs.MakeMove(mv)
	g.refresh()
	return mv, nil
}

// PlayNotation 按 "a4a5" 这样的坐标记法走一步
func (g *Game) PlayNotation(s string) (xiangqi.Move, error) {
	if len(s) < 4 {
		return xiangqi.Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, s)
	}
	// 第二个格子从第一个字母开始；a10 这类三位格子要先试长的
	for split := 3; split >= 2; split-- {
		if split >= len(s) {
			continue
		}
		from, ok1 := xiangqi.ParseSquare(s[:split])
		to, ok2 := xiangqi.ParseSquare(s[split:])
		if ok1 && ok2 {
			fr, fc := xiangqi.RowCol(from)
			tr, tc := xiangqi.RowCol(to)
			return g.Play(fr, fc, tr, tc)
		}
	}
	return xiangqi.Move{}, fmt.Errorf("%w: %q", ErrIllegalMove, s)
}

// Undo 悔一步，只在双人模式下允许
func (g *Game) Undo() (xiangqi.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.opts.Mode != PvP {
		return xiangqi.Move{}, ErrUndoNotAllowed
	}
	mv, ok := g.gs.UndoMove()
	if !ok {
		return xiangqi.Move{}, ErrNothingToUndo
	}
	g.refresh()
	return mv, nil
}

// AITurn 让引擎走一步。搜不出结果时随机走一步合法着法。
func (g *Game) AITurn() (xiangqi.Move, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status != Ongoing {
		return xiangqi.Move{}, ErrGameOver
	}
	if !g.aiToMove() {
		return xiangqi.Move{}, ErrNotAITurn
	}
	mv, ok := g.eng.Choose(g.gs, g.legal)
	if !ok {
		// 合法着法为空时 refresh 已经把 status 设成终局，走不到这里
		return xiangqi.Move{}, ErrGameOver
	}
	g.gs.MakeMove(mv)
	g.refresh()
	return mv, nil
}

// Run 在机机模式下一直走到终局，返回结局
func (g *Game) Run() (Status, error) {
	for {
		st := g.Status()
		if st != Ongoing {
			return st, nil
		}
		if _, err := g.AITurn(); err != nil {
			return st, err
		}
	}
}
