// Package render 把局面画成 SVG，调试和自对弈时存图用，只读不改局面。
package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"xiangqi/internal/xiangqi"
)

const (
	cell   = 60 // 相邻交叉点的间距
	margin = 40
	radius = 26

	width  = margin*2 + cell*(xiangqi.Cols-1)
	height = margin*2 + cell*(xiangqi.Rows-1)
)

// 中文子名，红黑用字不同
var glyphs = [2][8]string{
	xiangqi.Red:   {"", "帥", "仕", "相", "傌", "俥", "炮", "兵"},
	xiangqi.Black: {"", "將", "士", "象", "馬", "車", "砲", "卒"},
}

func point(row, col int) (int, int) {
	return margin + col*cell, margin + row*cell
}

// Options 控制附加标注
type Options struct {
	// 高亮上一步的起止点
	LastMove *xiangqi.Move
	// 画出坐标 a..i / 1..10
	Coordinates bool
}

// WriteSVG 画出棋盘和棋子
func WriteSVG(w io.Writer, b xiangqi.Board) {
	Write(w, b, Options{Coordinates: true})
}

func Write(w io.Writer, b xiangqi.Board, opt Options) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f2d29b")

	drawGrid(canvas)
	if opt.Coordinates {
		drawCoordinates(canvas)
	}
	if m := opt.LastMove; m != nil {
		for _, sq := range []int{m.From, m.To} {
			r, c := xiangqi.RowCol(sq)
			x, y := point(r, c)
			canvas.Circle(x, y, radius+4, "fill:none;stroke:#2a7ae2;stroke-width:3")
		}
	}

	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		r, c := xiangqi.RowCol(sq)
		drawPiece(canvas, r, c, pc)
	}
	canvas.End()
}

func drawGrid(canvas *svg.SVG) {
	const line = "stroke:#5a3a1a;stroke-width:2"
	canvas.Gstyle(line)
	for r := 0; r < xiangqi.Rows; r++ {
		x1, y := point(r, 0)
		x2, _ := point(r, xiangqi.Cols-1)
		canvas.Line(x1, y, x2, y)
	}
	for c := 0; c < xiangqi.Cols; c++ {
		x, y1 := point(0, c)
		_, y2 := point(xiangqi.Rows-1, c)
		if c == 0 || c == xiangqi.Cols-1 {
			canvas.Line(x, y1, x, y2)
			continue
		}
		// 河界处竖线断开
		_, yRiverTop := point(xiangqi.RiverRow, c)
		_, yRiverBottom := point(xiangqi.RiverRow+1, c)
		canvas.Line(x, y1, x, yRiverTop)
		canvas.Line(x, yRiverBottom, x, y2)
	}
	// 九宫斜线
	for _, top := range []int{0, 7} {
		x1, y1 := point(top, 3)
		x2, y2 := point(top+2, 5)
		canvas.Line(x1, y1, x2, y2)
		canvas.Line(x2, y1, x1, y2)
	}
	canvas.Gend()

	_, yRiver := point(xiangqi.RiverRow, 0)
	canvas.Text(width/2, yRiver+cell/2+8, "楚 河        漢 界",
		"text-anchor:middle;font-size:24px;fill:#5a3a1a")
}

func drawCoordinates(canvas *svg.SVG) {
	const style = "text-anchor:middle;font-size:14px;fill:#5a3a1a"
	for c := 0; c < xiangqi.Cols; c++ {
		x, _ := point(0, c)
		canvas.Text(x, height-8, string(rune('a'+c)), style)
	}
	for r := 0; r < xiangqi.Rows; r++ {
		_, y := point(r, 0)
		canvas.Text(14, y+5, fmt.Sprint(xiangqi.Rows-r), style)
	}
}

func drawPiece(canvas *svg.SVG, row, col int, pc xiangqi.Piece) {
	x, y := point(row, col)
	color := "#c0392b"
	if pc.Side() == xiangqi.Black {
		color = "#222222"
	}
	canvas.Circle(x, y, radius, "fill:#fbe9c6;stroke:"+color+";stroke-width:2")
	canvas.Text(x, y+9, glyphs[pc.Side()][pc.Type()],
		"text-anchor:middle;font-size:26px;fill:"+color)
}
