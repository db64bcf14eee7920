// Package grid 实现可点击的布尔网格
//
// 点击一个格子会翻转它本身以及上下左右四个相邻格子（十字形，不含对角）。
// 每次点击后都会统计选中情况：总数、每行、每列以及每行最长连续选中段。
//
// 本包不依赖任何窗口系统，表现层通过 Controller 的 OnFrame / OnClick 接入。
package grid

import "fmt"

// Grid 固定尺寸的布尔网格
// 按行优先存储在一维切片中：cells[row*columns+col]，true 表示选中
// 创建后尺寸不可变
type Grid struct {
	rows    int
	columns int
	cells   []bool
}

// NewGrid 创建 rows x columns 的网格，所有格子初始为未选中
// rows 或 columns 非正数属于编程错误，会 panic
func NewGrid(rows, columns int) *Grid {
	if rows <= 0 || columns <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", rows, columns))
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]bool, rows*columns),
	}
}

// Rows 返回行数
func (g *Grid) Rows() int { return g.rows }

// Columns 返回列数
func (g *Grid) Columns() int { return g.columns }

// InBounds 检查 (row, col) 是否指向有效格子
// MarginHit (-1) 永远不在范围内
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Selected 返回指定格子是否选中
func (g *Grid) Selected(row, col int) bool {
	return g.cells[g.index(row, col)]
}

// Row 返回第 row 行的副本
func (g *Grid) Row(row int) []bool {
	start := g.index(row, 0)
	out := make([]bool, g.columns)
	copy(out, g.cells[start:start+g.columns])
	return out
}

// Toggle 翻转单个格子
// 越界访问属于编程错误，会 panic
func (g *Grid) Toggle(row, col int) {
	i := g.index(row, col)
	g.cells[i] = !g.cells[i]
}

// HandleClick 处理一次落在 (row, col) 上的点击
//
// 翻转被点击的格子以及在网格范围内的上下左右相邻格子。
// 任一索引无效（包括 utils.MarginHit）时不做任何修改。
//
// 返回:
//   - 被翻转的格子数量：角落 3，边 4，内部 5，无效点击 0
func (g *Grid) HandleClick(row, col int) int {
	if !g.InBounds(row, col) {
		return 0
	}

	g.Toggle(row, col)
	flipped := 1

	if row > 0 {
		g.Toggle(row-1, col)
		flipped++
	}
	if row < g.rows-1 {
		g.Toggle(row+1, col)
		flipped++
	}
	if col > 0 {
		g.Toggle(row, col-1)
		flipped++
	}
	if col < g.columns-1 {
		g.Toggle(row, col+1)
		flipped++
	}
	return flipped
}

// index 将 (row, col) 转换为一维下标
func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: cell (%d, %d) out of range %dx%d", row, col, g.rows, g.columns))
	}
	return row*g.columns + col
}
