package xiangqi

// 按棋子种类分派到对应的走法生成器
func genPieceMoves(b *Board, from int, pt PieceType, moves *[]Move) {
	switch pt {
	case PieceGeneral:
		genGeneralMoves(b, from, moves)
	case PieceAdvisor:
		genAdvisorMoves(b, from, moves)
	case PieceElephant:
		genElephantMoves(b, from, moves)
	case PieceHorse:
		genHorseMoves(b, from, moves)
	case PieceChariot:
		genChariotMoves(b, from, moves)
	case PieceCannon:
		genCannonMoves(b, from, moves)
	case PieceSoldier:
		genSoldierMoves(b, from, moves)
	}
}

// PseudoMoves 生成指定一方的伪合法走法（不考虑自己王被将军）
func (gs *GameState) PseudoMoves(side Side) []Move {
	moves := make([]Move, 0, 64)
	for sq := 0; sq < NumSquares; sq++ {
		pc := gs.board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		genPieceMoves(&gs.board, sq, pc.Type(), &moves)
	}
	return moves
}

// ValidMoves 生成轮走方的合法走法，并刷新将死 / 困毙标记。
// 每一步都先走出来，看自己的王是否被将（含对脸），再撤回。
func (gs *GameState) ValidMoves() []Move {
	side := gs.sideToMove
	moves := gs.PseudoMoves(side)
	out := moves[:0]
	for _, mv := range moves {
		gs.MakeMove(mv)
		bad := gs.InCheck(side)
		gs.UndoMove()
		if !bad {
			out = append(out, mv)
		}
	}

	if len(out) == 0 {
		if gs.InCheck(side) {
			gs.checkmate, gs.stalemate = true, false
		} else {
			gs.checkmate, gs.stalemate = false, true
		}
	} else {
		gs.checkmate, gs.stalemate = false, false
	}
	return out
}

// Perft 统计合法走法树第 depth 层的叶子数
func (gs *GameState) Perft(depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := gs.ValidMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, mv := range moves {
		gs.MakeMove(mv)
		n += gs.Perft(depth - 1)
		gs.UndoMove()
	}
	return n
}
