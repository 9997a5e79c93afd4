package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/xiangqi"
)

// searchParallel 根节点每个着法一个 goroutine，各自在局面的副本上走子 / 撤销，
// 互不共享走子栈。每个分支都用完整窗口搜索，所以分数和串行 minimax 一致；
// 汇总时按打乱后的顺序取第一个严格更优的着法，与串行版本的选法相同。
// ctx 取消后尚未开始的分支不再搜索，返回 ctx 的错误。
func (e *Engine) searchParallel(ctx context.Context, gs *xiangqi.GameState, root []xiangqi.Move, depth int) (Result, error) {
	scores := make([]float64, len(root))
	sign := signFor(gs.SideToMove())
	var nodes atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if e.cfg.Workers > 0 {
		g.SetLimit(e.cfg.Workers)
	}
	for i, mv := range root {
		i, mv := i, mv
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			child := gs.Clone()
			child.MakeMove(mv)
			s := &searcher{eval: e.eval, maxDepth: depth}
			scores[i] = -s.search(child, child.ValidMoves(), depth-1, -Checkmate, Checkmate, -sign)
			nodes.Add(s.nodes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Score: -Checkmate, Nodes: nodes.Load()}, err
	}

	res := Result{Score: -Checkmate, Nodes: nodes.Load() + 1}
	for i, score := range scores {
		if score > res.Score {
			res.Score = score
			res.Move, res.Found = root[i], true
			e.logf("%v %.1f", root[i], score)
		}
	}
	return res, nil
}

// FindBestMoveParallel 与 FindBestMove 选法相同，根节点并行展开，不看 Config.Parallel
func (e *Engine) FindBestMoveParallel(ctx context.Context, gs *xiangqi.GameState, moves []xiangqi.Move) (xiangqi.Move, bool, error) {
	if len(moves) == 0 {
		return xiangqi.Move{}, false, nil
	}
	res, err := e.searchParallel(ctx, gs, e.shuffled(moves), e.cfg.Depth)
	e.nodes.Store(res.Nodes)
	if err != nil {
		return xiangqi.Move{}, false, err
	}
	return res.Move, res.Found, nil
}
