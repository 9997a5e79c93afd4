package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"xiangqi/internal/xiangqi"
)

// 每个测试用例：局面 + 该局面下全部合法着法，供其他实现对拍走法生成
type TestCase struct {
	FEN       string   `json:"fen"`
	ToMove    int      `json:"to_move"` // 0=红 1=黑
	InCheck   bool     `json:"in_check"`
	Moves     []string `json:"moves"` // "a4a5" 形式
	Checkmate bool     `json:"checkmate,omitempty"`
	Stalemate bool     `json:"stalemate,omitempty"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("maxplies", 200, "plies per game at most")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	out := flag.String("o", "move_gen_test_data.json", "output file")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	var testCases []TestCase
	for g := 0; g < *numGames; g++ {
		gs := xiangqi.NewGameState()
		for ply := 0; ply < *maxPlies; ply++ {
			legal := gs.ValidMoves()
			tc := TestCase{
				FEN:       gs.Encode(),
				ToMove:    int(gs.SideToMove()),
				InCheck:   gs.InCheck(gs.SideToMove()),
				Moves:     make([]string, len(legal)),
				Checkmate: gs.Checkmate(),
				Stalemate: gs.Stalemate(),
			}
			for i, mv := range legal {
				tc.Moves[i] = mv.Notation()
			}
			testCases = append(testCases, tc)
			if len(legal) == 0 {
				break
			}

			// 随机选一步
			gs.MakeMove(legal[rng.Intn(len(legal))])
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s (seed %d)\n", len(testCases), *numGames, *out, *seed)
}
