package xiangqi

import (
	"strconv"

	"golang.org/x/exp/slices"
)

// Move 是一步棋的快照：起点、终点，以及构造那一刻的走子和被吃子。
// 构造后不再修改，按 ID 比较相等。
type Move struct {
	From     int   `json:"from"`
	To       int   `json:"to"`
	Moved    Piece `json:"moved"`
	Captured Piece `json:"captured"` // 0 表示没吃子
}

// NewMove 从棋盘快照构造走法，不做任何合法性检查
func NewMove(from, to int, b *Board) Move {
	return Move{
		From:     from,
		To:       to,
		Moved:    b.Squares[from],
		Captured: b.Squares[to],
	}
}

// NewMoveRC 同 NewMove，参数是行列坐标（界面点击得到的就是这个）
func NewMoveRC(fromRow, fromCol, toRow, toCol int, b *Board) Move {
	return NewMove(indexOf(fromRow, fromCol), indexOf(toRow, toCol), b)
}

func (m Move) FromRow() int { return rowOf(m.From) }
func (m Move) FromCol() int { return colOf(m.From) }
func (m Move) ToRow() int   { return rowOf(m.To) }
func (m Move) ToCol() int   { return colOf(m.To) }

func (m Move) IsCapture() bool { return m.Captured != 0 }

// ID 每个坐标都是个位数，所以四位拼起来不会冲突
func (m Move) ID() int {
	return m.FromRow()*1000 + m.FromCol()*100 + m.ToRow()*10 + m.ToCol()
}

func (m Move) Equal(o Move) bool { return m.ID() == o.ID() }

// Notation 形如 "a4a5"：列 a..i，行从红方底线起 1..10
func (m Move) Notation() string {
	return squareName(m.From) + squareName(m.To)
}

func (m Move) String() string {
	s := m.Moved.String()
	if m.IsCapture() {
		s += "x"
	}
	return s + " " + m.Notation()
}

func squareName(sq int) string {
	return string(rune('a'+colOf(sq))) + rankLabel(rowOf(sq))
}

func rankLabel(row int) string {
	return strconv.Itoa(Rows - row)
}

// ParseSquare 解析 "e1" / "a10" 这样的格子名
func ParseSquare(s string) (int, bool) {
	if len(s) < 2 || len(s) > 3 {
		return -1, false
	}
	// 排除 "a+1"、"a01" 这类 Atoi 也能接受的写法
	if s[1] < '1' || s[1] > '9' {
		return -1, false
	}
	col := int(s[0] - 'a')
	rank, err := strconv.Atoi(s[1:])
	if err != nil {
		return -1, false
	}
	row := Rows - rank
	if !OnBoard(row, col) {
		return -1, false
	}
	return indexOf(row, col), true
}

// FindMove 在合法走法里按 ID 查找从 from 到 to 的那一步
func FindMove(moves []Move, from, to int) (Move, bool) {
	want := Move{From: from, To: to}
	i := slices.IndexFunc(moves, func(m Move) bool { return m.Equal(want) })
	if i < 0 {
		return Move{}, false
	}
	return moves[i], true
}
