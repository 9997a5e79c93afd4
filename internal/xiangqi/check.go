package xiangqi

// FaceToFace 两王同列且中间没有任何棋子
func (gs *GameState) FaceToFace() bool {
	red, black := gs.kings[Red], gs.kings[Black]
	if red == -1 || black == -1 {
		// 有一方王已经没了，不存在对脸
		return false
	}
	if colOf(red) != colOf(black) {
		return false
	}
	lo, hi := rowOf(black), rowOf(red)
	if lo > hi {
		lo, hi = hi, lo
	}
	col := colOf(red)
	for r := lo + 1; r < hi; r++ {
		if gs.board.Squares[indexOf(r, col)] != 0 {
			return false
		}
	}
	return true
}

// InCheck 判断 side 的王是否被将军。对脸优先判定，一律算被将
func (gs *GameState) InCheck(side Side) bool {
	if gs.FaceToFace() {
		return true
	}
	king := gs.KingSquare(side)
	if king == -1 {
		return false
	}
	return gs.IsAttacked(king, side.Opponent())
}

// IsAttacked 判断 sq 是否在 bySide 的伪合法走法终点里。
func (gs *GameState) IsAttacked(sq int, bySide Side) bool {
	var buf []Move
	for s := 0; s < NumSquares; s++ {
		pc := gs.board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		pt := pc.Type()
		// 士、象过不了河，够不到对方半场的格子
		if (pt == PieceAdvisor || pt == PieceElephant) && !ownHalf(bySide, rowOf(sq)) {
			continue
		}
		buf = buf[:0]
		genPieceMoves(&gs.board, s, pt, &buf)
		for _, mv := range buf {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}
