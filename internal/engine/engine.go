package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/slices"

	"xiangqi/internal/xiangqi"
)

type Engine struct {
	cfg  Config
	eval Evaluator

	// rand.Rand 不是并发安全的
	rngMu sync.Mutex
	rng   *rand.Rand

	// 最近一次搜索的节点数
	nodes atomic.Int64
}

func New(cfg Config) *Engine {
	if cfg.Depth <= 0 {
		cfg.Depth = Medium.Depth()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Engine{
		cfg:  cfg,
		eval: Evaluator{Mirror: cfg.MirrorTables},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Depth() int { return e.cfg.Depth }

func (e *Engine) Config() Config { return e.cfg }

func (e *Engine) Evaluator() Evaluator { return e.eval }

// Nodes 最近一次搜索访问的节点数
func (e *Engine) Nodes() int64 { return e.nodes.Load() }

// shuffled 返回打乱后的副本，不动调用方的列表
func (e *Engine) shuffled(moves []xiangqi.Move) []xiangqi.Move {
	out := slices.Clone(moves)
	e.rngMu.Lock()
	e.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	e.rngMu.Unlock()
	return out
}

// FindRandomMove 均匀随机选一步；列表为空时返回 false
func (e *Engine) FindRandomMove(moves []xiangqi.Move) (xiangqi.Move, bool) {
	if len(moves) == 0 {
		return xiangqi.Move{}, false
	}
	e.rngMu.Lock()
	i := e.rng.Intn(len(moves))
	e.rngMu.Unlock()
	return moves[i], true
}

func (e *Engine) logf(format string, args ...any) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Printf(format, args...)
	}
}
