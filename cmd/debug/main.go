package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"xiangqi/internal/engine"
	"xiangqi/internal/render"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to inspect")
	perft := flag.Int("perft", 0, "run perft to this depth (0 = skip)")
	depth := flag.Int("depth", 0, "also run a search at this depth (0 = skip)")
	svgPath := flag.String("svg", "", "write the position as SVG to this file")
	flag.Parse()

	gs, err := xiangqi.DecodeState(*fen)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	fmt.Println(gs.Board())
	fmt.Println("FEN:", gs.Encode())
	fmt.Println("Side to move:", gs.SideToMove())
	fmt.Println("In check:", gs.InCheck(gs.SideToMove()))

	pseudo := gs.PseudoMoves(gs.SideToMove())
	legal := gs.ValidMoves()
	fmt.Println("Pseudo legal moves:", len(pseudo))
	fmt.Println("Legal moves:", len(legal))
	for _, mv := range legal {
		fmt.Printf("  %v\n", mv)
	}
	switch {
	case gs.Checkmate():
		fmt.Println("Checkmate")
	case gs.Stalemate():
		fmt.Println("Stalemate")
	default:
		fmt.Printf("Eval (red): %.1f\n", engine.Evaluate(gs))
	}

	for d := 1; d <= *perft; d++ {
		start := time.Now()
		n := gs.Perft(d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start))
	}

	if *depth > 0 && len(legal) > 0 {
		e := engine.New(engine.Config{Depth: *depth, Logger: log.New(os.Stderr, "search ", log.Lmicroseconds)})
		res := e.Search(gs, legal)
		fmt.Printf("search depth %d: found=%v move=%v score=%.1f nodes=%d time=%v\n",
			res.Depth, res.Found, res.Move, res.Score, res.Nodes, res.TimeUsed)
	}

	if *svgPath != "" {
		f, err := os.Create(*svgPath)
		if err != nil {
			log.Fatalf("create %s: %v", *svgPath, err)
		}
		render.WriteSVG(f, gs.Board())
		if err := f.Close(); err != nil {
			log.Fatalf("close %s: %v", *svgPath, err)
		}
	}
}
