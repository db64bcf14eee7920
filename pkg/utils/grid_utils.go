package utils

// MarginHit 表示像素坐标落在格子之间的间隙（margin）里，没有对应的格子
// 所有合法索引都 >= 0，因此 -1 不会与任何格子冲突
const MarginHit = -1

// GridLayout 描述网格的几何参数
// 每个轴上：格子起点 = index*(cellSize+margin) + margin
type GridLayout struct {
	Rows       int
	Columns    int
	CellWidth  int
	CellHeight int
	Margin     int
}

// CellOrigin 计算第 index 个格子在某个轴上的起始像素坐标
//
// 参数:
//   - index: 行或列索引
//   - cellSize: 格子在该轴上的尺寸（宽或高）
//   - margin: 格子之间及四周的间隙
//
// 返回:
//   - 格子左上角在该轴上的像素坐标
func CellOrigin(index, cellSize, margin int) int {
	return index*(cellSize+margin) + margin
}

// AxisLength 返回 count 个格子在某个轴上占用的总像素长度（包含两端 margin）
func AxisLength(count, cellSize, margin int) int {
	return CellOrigin(count, cellSize, margin)
}

// PixelToIndex 将某个轴上的像素坐标转换为格子索引
//
// 如果 pixel % (cellSize+margin) < margin，说明点击落在间隙中，返回 MarginHit；
// 否则返回 pixel / (cellSize+margin)（整数截断）。
// 负数像素的余数同样小于 margin，因此也会得到 MarginHit。
func PixelToIndex(pixel, cellSize, margin int) int {
	stride := cellSize + margin
	if pixel%stride < margin {
		return MarginHit
	}
	return pixel / stride
}

// PixelToBoundedIndex 与 PixelToIndex 相同，但额外保证结果落在 [0, count) 内
// 光标可以移出逻辑屏幕（例如全屏 letterbox 区域），越界时返回 MarginHit
func PixelToBoundedIndex(pixel, cellSize, margin, count int) int {
	if pixel < 0 {
		return MarginHit
	}
	index := PixelToIndex(pixel, cellSize, margin)
	if index >= count {
		return MarginHit
	}
	return index
}

// MouseToGridCoords 将鼠标屏幕坐标转换为网格坐标
// 行由 y 决定，列由 x 决定，两者独立判断
//
// 返回:
//   - row, col: 行列索引，落在间隙中或越界时为 MarginHit
//   - isValid: 行列是否都指向有效格子
func MouseToGridCoords(mouseX, mouseY int, layout GridLayout) (row, col int, isValid bool) {
	row = PixelToBoundedIndex(mouseY, layout.CellHeight, layout.Margin, layout.Rows)
	col = PixelToBoundedIndex(mouseX, layout.CellWidth, layout.Margin, layout.Columns)
	return row, col, row != MarginHit && col != MarginHit
}

// GridToScreenCoords 将网格坐标转换为格子左上角的屏幕坐标
func GridToScreenCoords(row, col int, layout GridLayout) (x, y int) {
	x = CellOrigin(col, layout.CellWidth, layout.Margin)
	y = CellOrigin(row, layout.CellHeight, layout.Margin)
	return x, y
}

// ScreenSize 返回容纳整个网格所需的屏幕尺寸
func (l GridLayout) ScreenSize() (width, height int) {
	return AxisLength(l.Columns, l.CellWidth, l.Margin), AxisLength(l.Rows, l.CellHeight, l.Margin)
}
