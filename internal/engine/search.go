package engine

import (
	"context"
	"time"

	"xiangqi/internal/xiangqi"
)

// 搜索结果
type Result struct {
	Move     xiangqi.Move  // 最佳着法；Found 为 false 时无意义
	Found    bool          // 没有任何着法超过哨兵分时为 false，调用方要自己兜底
	Score    float64       // 轮走方视角
	Depth    int           // 搜索深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// 单次搜索的上下文；并行时每个分支一份
type searcher struct {
	eval     Evaluator
	maxDepth int
	best     xiangqi.Move
	found    bool
	nodes    int64
	onBest   func(mv xiangqi.Move, score float64)
}

// search 是带 alpha-beta 的 negamax。sign 为 +1 表示这一层红方走。
// moves 必须是 gs.ValidMoves() 刚算出来的，这样将死 / 困毙标记才对应当前局面。
func (s *searcher) search(gs *xiangqi.GameState, moves []xiangqi.Move, depth int, alpha, beta, sign float64) float64 {
	s.nodes++
	if depth == 0 || len(moves) == 0 {
		return sign * s.eval.Evaluate(gs)
	}

	maxScore := -Checkmate
	for _, mv := range moves {
		gs.MakeMove(mv)
		score := -s.search(gs, gs.ValidMoves(), depth-1, -beta, -alpha, -sign)
		gs.UndoMove()

		if score > maxScore {
			maxScore = score
			if depth == s.maxDepth {
				s.best, s.found = mv, true
				if s.onBest != nil {
					s.onBest(mv, score)
				}
			}
		}
		if maxScore > alpha {
			alpha = maxScore
		}
		if alpha >= beta {
			break
		}
	}
	return maxScore
}

func signFor(side xiangqi.Side) float64 {
	if side == xiangqi.Red {
		return 1
	}
	return -1
}

// Search 在 moves（当前局面的合法着法）里选一步。
// 根节点先打乱一次，分数相同的着法之间靠这个产生变化。
// 搜索期间 gs 会被反复走子 / 撤销，返回时恢复原状。
func (e *Engine) Search(gs *xiangqi.GameState, moves []xiangqi.Move) Result {
	start := time.Now()
	depth := e.cfg.Depth
	if len(moves) == 0 {
		e.nodes.Store(0)
		return Result{Score: -Checkmate, Depth: depth, TimeUsed: time.Since(start)}
	}

	root := e.shuffled(moves)
	var res Result
	if e.cfg.Parallel && len(root) > 1 {
		// Background 不会取消，错误恒为 nil
		res, _ = e.searchParallel(context.Background(), gs, root, depth)
	} else {
		s := &searcher{
			eval:     e.eval,
			maxDepth: depth,
			onBest: func(mv xiangqi.Move, score float64) {
				e.logf("%v %.1f", mv, score)
			},
		}
		score := s.search(gs, root, depth, -Checkmate, Checkmate, signFor(gs.SideToMove()))
		res = Result{Move: s.best, Found: s.found, Score: score, Nodes: s.nodes}
	}

	res.Depth = depth
	res.TimeUsed = time.Since(start)
	e.nodes.Store(res.Nodes)
	e.logf("searched %d nodes in %v (depth %d)", res.Nodes, res.TimeUsed, depth)
	return res
}

// FindBestMove 返回最佳着法；false 表示搜索没给出结果，调用方应改用 FindRandomMove
func (e *Engine) FindBestMove(gs *xiangqi.GameState, moves []xiangqi.Move) (xiangqi.Move, bool) {
	res := e.Search(gs, moves)
	return res.Move, res.Found
}

// Choose 搜索，搜不出结果时从合法着法里随机挑一步。只有 moves 为空时返回 false
func (e *Engine) Choose(gs *xiangqi.GameState, moves []xiangqi.Move) (xiangqi.Move, bool) {
	if mv, ok := e.FindBestMove(gs, moves); ok {
		return mv, true
	}
	return e.FindRandomMove(moves)
}
