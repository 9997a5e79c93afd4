package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 红方过河后所在的最大行号（0..4 为黑方半场）
	RiverRow = 4
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

// Square 把行列换成格子下标；调用方保证在盘内
func Square(row, col int) int { return indexOf(row, col) }

// RowCol 是 Square 的逆
func RowCol(sq int) (int, int) { return rowOf(sq), colOf(sq) }

func OnBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row <= RiverRow
	}
	if side == Black {
		return row > RiverRow
	}
	return false
}

// 是否在本方半场（相/象不能过河）
func ownHalf(side Side, row int) bool {
	if side == NoSide {
		return false
	}
	return !crossedRiver(side, row)
}

// 是否在本方九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1 // 7..9
	}
	return false
}

var rookDirs = [4][2]int{{-1, 0}, {0, -1}, {+1, 0}, {0, +1}}
var bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

var letterToPieceType = map[rune]PieceType{
	'k': PieceGeneral,
	'a': PieceAdvisor,
	'b': PieceElephant,
	'n': PieceHorse,
	'r': PieceChariot,
	'c': PieceCannon,
	'p': PieceSoldier,
}

var pieceTypeToLetter = [numPieceTypes]rune{
	PieceGeneral:  'k',
	PieceAdvisor:  'a',
	PieceElephant: 'b',
	PieceHorse:    'n',
	PieceChariot:  'r',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if int(pt) >= numPieceTypes {
		return '.'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 开局盘面，第 0 行是黑方底线
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, pt)
		}
	}
	return b
}

// String 输出带行列标记的文本棋盘，行标记用记谱里的 rank（底线为 1）
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		rank := rankLabel(r)
		if len(rank) == 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(rank)
		sb.WriteByte(' ')
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(pieceToChar(b.Squares[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
		if r == RiverRow {
			sb.WriteString("   ~~~~~~~~~~~~~~~~~\n")
		}
	}
	sb.WriteString("   a b c d e f g h i\n")
	return sb.String()
}
