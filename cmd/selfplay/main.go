package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/render"
)

func main() {
	totalGames := flag.Int("games", 10, "number of games to play")
	aLevel := flag.String("a", "easy", "difficulty of player A (easy/medium/hard)")
	bLevel := flag.String("b", "medium", "difficulty of player B (easy/medium/hard)")
	maxPlies := flag.Int("maxplies", 200, "plies before a game is declared drawn")
	parallel := flag.Bool("parallel", false, "root-parallel search")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	svgDir := flag.String("svg", "", "write the final board of each game as SVG into this directory")
	verbose := flag.Bool("v", false, "print every move")
	flag.Parse()

	playerA, err := newPlayer("A", *aLevel, *parallel)
	if err != nil {
		log.Fatalf("bad difficulty: %v", err)
	}
	playerB, err := newPlayer("B", *bLevel, *parallel)
	if err != nil {
		log.Fatalf("bad difficulty: %v", err)
	}

	if *svgDir != "" {
		if err := os.MkdirAll(*svgDir, 0o755); err != nil {
			log.Fatalf("mkdir %s: %v", *svgDir, err)
		}
	}

	t := newTally()
	for g := 0; g < *totalGames; g++ {
		// 轮换先后手
		red, black := playerA, playerB
		if g%2 == 1 {
			red, black = playerB, playerA
		}
		if *seed != 0 {
			red.Cfg.Seed = *seed + int64(2*g)
			black.Cfg.Seed = *seed + int64(2*g+1)
		}

		fmt.Printf("\n=== Game %d: Red [%s] vs Black [%s] ===\n", g+1, red.Name, black.Name)
		start := time.Now()
		res := playGame(engine.New(red.Cfg), engine.New(black.Cfg), *maxPlies, *verbose)
		winner := t.add(res, red, black)
		if winner == "" {
			fmt.Printf("Result: Draw (%s) after %d plies, %v\n", res.Reason, res.Plies, time.Since(start))
		} else {
			fmt.Printf("Result: %s Wins! (%s after %d plies, %v)\n", winner, res.Reason, res.Plies, time.Since(start))
		}

		if *svgDir != "" {
			path := filepath.Join(*svgDir, fmt.Sprintf("game%03d.svg", g+1))
			if err := writeBoard(path, res); err != nil {
				log.Printf("write %s: %v", path, err)
			}
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerA.Name, t.wins[playerA.Name])
	fmt.Printf("%s: %d\n", playerB.Name, t.wins[playerB.Name])
	fmt.Printf("Draws: %d\n", t.draws)
}

func writeBoard(path string, res gameResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opt := render.Options{Coordinates: true}
	if mv, ok := res.Final.LastMove(); ok {
		opt.LastMove = &mv
	}
	render.Write(f, res.Final.Board(), opt)
	return f.Close()
}
