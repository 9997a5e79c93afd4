package xiangqi

func genSoldierMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := b.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	// 前一格（可以吃子）；到了对方底线就没有前进了
	if r := row + soldierDir(side); OnBoard(r, col) {
		to := indexOf(r, col)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, NewMove(from, to, b))
		}
	}

	// 没过河不能横走，更不能横吃
	if !crossedRiver(side, row) {
		return
	}

	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !OnBoard(row, c) {
			continue
		}
		to := indexOf(row, c)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, NewMove(from, to, b))
		}
	}
}
