package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"xiangqi/internal/engine"
	"xiangqi/internal/render"
	"xiangqi/internal/session"
)

func main() {
	modeFlag := flag.String("mode", "ai", "pvp / ai / aivsai")
	sideFlag := flag.String("side", "red", "your side in ai mode (red/black)")
	difficulty := flag.String("difficulty", "medium", "easy / medium / hard")
	depth := flag.Int("depth", 0, "search depth, overrides -difficulty when > 0")
	maxPlies := flag.Int("maxplies", session.DefaultDrawPlies, "plies before the game is declared drawn")
	parallel := flag.Bool("parallel", false, "root-parallel search")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	fen := flag.String("fen", "", "start from this position instead of the opening")
	svgPath := flag.String("svg", "", "rewrite this SVG file after every move")
	verbose := flag.Bool("v", false, "log the engine's thinking")
	flag.Parse()

	mode, err := session.ParseMode(*modeFlag)
	if err != nil {
		log.Fatal(err)
	}
	side, err := session.ParseSide(*sideFlag)
	if err != nil {
		log.Fatal(err)
	}
	d, err := engine.ParseDifficulty(*difficulty)
	if err != nil {
		log.Fatal(err)
	}
	if *depth > 0 {
		d = engine.Difficulty(*depth)
	}

	opts := session.Options{
		Mode:       mode,
		HumanSide:  side,
		Difficulty: d,
		DrawPlies:  *maxPlies,
		Parallel:   *parallel,
		Seed:       *seed,
		FEN:        *fen,
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "ai ", 0)
	}

	mgr := session.NewManager()
	g, err := mgr.NewGame(opts)
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	log.Printf("game %s: mode=%v difficulty=%v", g.ID, mode, d)

	p := &player{mgr: mgr, g: g, in: bufio.NewScanner(os.Stdin), out: os.Stdout, svgPath: *svgPath}
	if err := p.loop(); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
}

type player struct {
	mgr     *session.Manager
	g       *session.Game
	in      *bufio.Scanner
	out     io.Writer
	svgPath string
}

func (p *player) loop() error {
	p.show()
	for p.g.Status() == session.Ongoing {
		if p.g.IsAITurn() {
			mv, err := p.g.AITurn()
			if err != nil {
				return err
			}
			fmt.Fprintf(p.out, "AI (%v): %v\n", mv.Moved.Side(), mv)
			p.show()
			continue
		}
		if err := p.humanTurn(); err != nil {
			return err
		}
	}
	p.announce()
	return nil
}

// humanTurn 读一行命令，直到走出一步合法着法或悔棋成功
func (p *player) humanTurn() error {
	for {
		fmt.Fprintf(p.out, "%v to move> ", p.g.SideToMove())
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		cmd := strings.ToLower(strings.TrimSpace(p.in.Text()))
		switch cmd {
		case "":
			continue
		case "q", "quit", "exit":
			return io.EOF
		case "h", "help", "?":
			p.help()
			continue
		case "m", "moves":
			for _, mv := range p.g.Legal() {
				fmt.Fprintf(p.out, "  %v\n", mv)
			}
			continue
		case "fen":
			fmt.Fprintln(p.out, p.g.FEN())
			continue
		case "r", "reset":
			g, err := p.mgr.Reset(p.g.ID)
			if err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
			p.g = g
			log.Printf("game %s: reset", g.ID)
			p.show()
			return nil
		case "u", "undo":
			mv, err := p.g.Undo()
			if err != nil {
				fmt.Fprintln(p.out, err)
				continue
			}
			fmt.Fprintf(p.out, "undo %v\n", mv)
			p.show()
			return nil
		}

		mv, err := p.g.PlayNotation(cmd)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		fmt.Fprintf(p.out, "%v: %v\n", mv.Moved.Side(), mv)
		p.show()
		return nil
	}
}

func (p *player) show() {
	fmt.Fprintln(p.out, p.g.Board())
	if p.g.Status() == session.Ongoing && p.g.InCheck() {
		fmt.Fprintln(p.out, "Check!")
	}
	if p.svgPath == "" {
		return
	}
	f, err := os.Create(p.svgPath)
	if err != nil {
		log.Printf("svg: %v", err)
		return
	}
	opt := render.Options{Coordinates: true}
	if h := p.g.History(); len(h) > 0 {
		last := h[len(h)-1]
		opt.LastMove = &last
	}
	render.Write(f, p.g.Board(), opt)
	if err := f.Close(); err != nil {
		log.Printf("svg: %v", err)
	}
}

func (p *player) announce() {
	switch st := p.g.Status(); st {
	case session.RedWins, session.BlackWins:
		fmt.Fprintf(p.out, "Checkmate, %v wins.\n", p.g.Winner())
	case session.Stalemate:
		fmt.Fprintln(p.out, "Stalemate.")
	case session.Draw:
		fmt.Fprintf(p.out, "Draw after %d plies.\n", len(p.g.History()))
	default:
		fmt.Fprintln(p.out, st)
	}
}

func (p *player) help() {
	fmt.Fprintln(p.out, `commands:
  a4a5      move from a4 to a5 (files a-i, ranks 1-10, red at the bottom)
  m         list legal moves
  u         undo one move (pvp only)
  r         start over with the same settings
  fen       print the position
  q         quit`)
}
