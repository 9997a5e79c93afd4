package engine

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Difficulty 难度，数值就是搜索深度
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

func (d Difficulty) Depth() int { return int(d) }

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "depth-" + strconv.Itoa(int(d))
	}
}

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty 接受 easy/medium/hard 或 1/2/3
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// 搜索配置
type Config struct {
	Depth    int  // 最大搜索深度（ply），<=0 时用 Medium
	Parallel bool // 根节点并行，每个分支用一份独立的局面
	Workers  int  // 并行时同时搜索的根分支数，<=0 不限制
	Seed     int64

	// 非兵棋子的位置表默认对黑方也按原始坐标查；打开后黑方按镜像行查
	MirrorTables bool

	// 为 nil 时不输出搜索过程
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{Depth: Medium.Depth()}
}

// ConfigFor 按难度给出配置
func ConfigFor(d Difficulty) Config {
	cfg := DefaultConfig()
	cfg.Depth = d.Depth()
	return cfg
}
