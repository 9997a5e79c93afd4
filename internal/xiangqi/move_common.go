package xiangqi

// 车：横竖随便走
func genChariotMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		for OnBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc == 0 {
				*moves = append(*moves, NewMove(from, to, b))
			} else {
				if pc.Side() != side {
					*moves = append(*moves, NewMove(from, to, b))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for OnBoard(r, c) {
			to := indexOf(r, c)
			if b.Squares[to] == 0 {
				*moves = append(*moves, NewMove(from, to, b))
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到的第一子是敌子才可吃；第二个子之后都不行
		for OnBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, NewMove(from, to, b))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字 + 塞象眼 + 不过河
func genElephantMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !OnBoard(r, c) || !ownHalf(side, r) {
			continue
		}
		if b.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue
		}
		to := indexOf(r, c)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, NewMove(from, to, b))
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		to := indexOf(r, c)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, NewMove(from, to, b))
		}
	}
}

// 将：九宫内上下左右一格。对脸由 InCheck 处理，这里不管
func genGeneralMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r := row + d[0]
		c := col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		to := indexOf(r, c)
		dst := b.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, NewMove(from, to, b))
		}
	}
}
