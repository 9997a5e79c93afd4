package main

import (
	"fmt"
	"log"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.Config
}

// newPlayer 按难度建一个选手，label 区分两边（"A" / "B"）
func newPlayer(label, level string, parallel bool) (PlayerConfig, error) {
	d, err := engine.ParseDifficulty(level)
	if err != nil {
		return PlayerConfig{}, err
	}
	cfg := engine.ConfigFor(d)
	cfg.Parallel = parallel
	return PlayerConfig{Name: fmt.Sprintf("%s %s (depth %d)", label, d, d.Depth()), Cfg: cfg}, nil
}

type gameResult struct {
	Winner xiangqi.Side // NoSide 为和棋（困毙或步数到上限）
	Plies  int
	Reason string
	Final  *xiangqi.GameState
}

// playGame 红黑各用一个引擎对下，直到将死 / 困毙 / 步数上限
func playGame(red, black *engine.Engine, maxPlies int, verbose bool) gameResult {
	gs := xiangqi.NewGameState()
	for {
		moves := gs.ValidMoves()
		switch {
		case gs.Checkmate():
			return gameResult{Winner: gs.SideToMove().Opponent(), Plies: gs.Ply(), Reason: "checkmate", Final: gs}
		case gs.Stalemate():
			return gameResult{Winner: xiangqi.NoSide, Plies: gs.Ply(), Reason: "stalemate", Final: gs}
		case gs.Ply() >= maxPlies:
			return gameResult{Winner: xiangqi.NoSide, Plies: gs.Ply(), Reason: "move limit", Final: gs}
		}

		e := red
		if gs.SideToMove() == xiangqi.Black {
			e = black
		}
		mv, ok := e.Choose(gs, moves)
		if !ok {
			// moves 非空时 Choose 总能给出一步
			log.Fatalf("no move chosen at ply %d: %s", gs.Ply(), gs.Encode())
		}
		if verbose {
			fmt.Printf("%3d. %-6v %v (nodes %d)\n", gs.Ply()+1, gs.SideToMove(), mv, e.Nodes())
		}
		gs.MakeMove(mv)
	}
}

type tally struct {
	wins  map[string]int
	draws int
}

func newTally() *tally { return &tally{wins: make(map[string]int)} }

func (t *tally) add(res gameResult, red, black PlayerConfig) string {
	switch res.Winner {
	case xiangqi.Red:
		t.wins[red.Name]++
		return red.Name
	case xiangqi.Black:
		t.wins[black.Name]++
		return black.Name
	default:
		t.draws++
		return ""
	}
}
