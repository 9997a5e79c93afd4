package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opponent 返回对方；NoSide 仍是 NoSide
func (s Side) Opponent() Side {
	if s == Red {
		return Black
	}
	if s == Black {
		return Red
	}
	return NoSide
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帅 / 将
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceHorse              // 马
	PieceChariot            // 车
	PieceCannon             // 炮
	PieceSoldier            // 兵 / 卒

	numPieceTypes = int(PieceSoldier) + 1
)

// PieceTypes 按固定顺序列出全部七种棋子
var PieceTypes = [...]PieceType{
	PieceGeneral, PieceAdvisor, PieceElephant, PieceHorse,
	PieceChariot, PieceCannon, PieceSoldier,
}

func (pt PieceType) String() string {
	switch pt {
	case PieceGeneral:
		return "General"
	case PieceAdvisor:
		return "Advisor"
	case PieceElephant:
		return "Elephant"
	case PieceHorse:
		return "Horse"
	case PieceChariot:
		return "Chariot"
	case PieceCannon:
		return "Cannon"
	case PieceSoldier:
		return "Soldier"
	default:
		return "None"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

// String 用 FEN 字母表示棋子，空位是 "."
func (p Piece) String() string {
	return string(pieceToChar(p))
}

type Board struct {
	Squares [NumSquares]Piece
}

// At 越界时返回空
func (b *Board) At(row, col int) Piece {
	if !OnBoard(row, col) {
		return 0
	}
	return b.Squares[indexOf(row, col)]
}
