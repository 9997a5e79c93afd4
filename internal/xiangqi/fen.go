package xiangqi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Encode 输出标准象棋 FEN：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示轮到谁
func (gs *GameState) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := gs.board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if gs.sideToMove == Red {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodeState 解析 FEN，得到没有走子记录的局面。要求双方各有且只有一个将
func DecodeState(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: want board and side fields", ErrInvalidFEN)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	var b Board
	var generals [2]int
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			if pt == PieceGeneral {
				generals[side]++
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, pt)
			c++
		}
		if c != Cols {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, r, c)
		}
	}
	if generals[Red] != 1 || generals[Black] != 1 {
		return nil, fmt.Errorf("%w: need exactly one general per side", ErrInvalidFEN)
	}

	var stm Side
	switch parts[1] {
	case "w", "r":
		stm = Red
	case "b":
		stm = Black
	default:
		return nil, fmt.Errorf("%w: side %q", ErrInvalidFEN, parts[1])
	}
	return newGameState(b, stm), nil
}

// MustDecodeState 给测试和内置局面用，解析失败直接 panic
func MustDecodeState(fen string) *GameState {
	gs, err := DecodeState(fen)
	if err != nil {
		panic(err)
	}
	return gs
}

// InitialFEN 标准开局
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"
