package session

import (
	"fmt"
	"log"
	"strings"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

// Mode 对局方式
type Mode int

const (
	PvP    Mode = iota // 双人
	VsAI               // 人机
	AIvsAI             // 机机
)

func (m Mode) String() string {
	switch m {
	case PvP:
		return "pvp"
	case VsAI:
		return "ai"
	case AIvsAI:
		return "aivsai"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode 接受 pvp / ai / aivsai
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp", "human":
		return PvP, nil
	case "ai", "vsai", "pve":
		return VsAI, nil
	case "aivsai", "selfplay", "eve":
		return AIvsAI, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// ParseSide 接受 red/r/w 与 black/b
func ParseSide(s string) (xiangqi.Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r", "w":
		return xiangqi.Red, nil
	case "black", "b":
		return xiangqi.Black, nil
	}
	return xiangqi.NoSide, fmt.Errorf("unknown side %q", s)
}

// 连续这么多步（单方一步算一步）还没分出胜负就判和
const DefaultDrawPlies = 200

type Options struct {
	Mode       Mode
	HumanSide  xiangqi.Side // 只在 VsAI 下有意义
	Difficulty engine.Difficulty
	DrawPlies  int // <=0 用 DefaultDrawPlies

	// 透传给引擎
	Parallel bool
	Seed     int64
	Logger   *log.Logger

	// 起始局面，空串为标准开局
	FEN string
}

func DefaultOptions() Options {
	return Options{
		Mode:       VsAI,
		HumanSide:  xiangqi.Red,
		Difficulty: engine.Medium,
		DrawPlies:  DefaultDrawPlies,
	}
}

func (o Options) withDefaults() Options {
	if o.DrawPlies <= 0 {
		o.DrawPlies = DefaultDrawPlies
	}
	if o.Difficulty <= 0 {
		o.Difficulty = engine.Medium
	}
	if o.HumanSide != xiangqi.Black {
		o.HumanSide = xiangqi.Red
	}
	return o
}

func (o Options) engineConfig() engine.Config {
	cfg := engine.ConfigFor(o.Difficulty)
	cfg.Parallel = o.Parallel
	cfg.Seed = o.Seed
	cfg.Logger = o.Logger
	return cfg
}
