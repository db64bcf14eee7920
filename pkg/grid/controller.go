package grid

import (
	"io"
	"log"

	"github.com/decker502/gridtoggle/pkg/utils"
)

// RenderFunc 绘制单个格子的回调
type RenderFunc func(row, col int, selected bool)

// ClickListener 在网格被点击修改后收到通知
// flipped 为被翻转的格子数，间隙点击时为 0
type ClickListener func(click Click, flipped int)

// Controller 连接网格模型与宿主的绘制/事件循环
//
// 宿主每帧调用 OnFrame 读取网格，收到指针点击时调用 OnClick。
// 两者都在宿主的同一线程上运行，Controller 不做任何同步。
type Controller struct {
	grid      *Grid
	layout    utils.GridLayout
	out       io.Writer
	threshold int

	lastClick *Click
	stats     Stats
	listeners []ClickListener
}

// NewController 创建控制器
//
// 参数:
//   - layout: 网格几何参数，行列数同时决定网格尺寸
//   - out: 统计报告的输出目标（通常是 os.Stdout）
//   - threshold: 最长连续段提示的阈值
func NewController(layout utils.GridLayout, out io.Writer, threshold int) *Controller {
	g := NewGrid(layout.Rows, layout.Columns)
	return &Controller{
		grid:      g,
		layout:    layout,
		out:       out,
		threshold: threshold,
		stats:     ComputeStats(g),
	}
}

// Grid 返回底层网格（只读使用）
func (c *Controller) Grid() *Grid { return c.grid }

// Layout 返回网格几何参数
func (c *Controller) Layout() utils.GridLayout { return c.layout }

// Stats 返回最近一次点击后的统计结果
func (c *Controller) Stats() Stats { return c.stats }

// LastClick 返回最近一次点击，尚未点击时返回 false
func (c *Controller) LastClick() (Click, bool) {
	if c.lastClick == nil {
		return Click{}, false
	}
	return *c.lastClick, true
}

// AddClickListener 注册点击通知
func (c *Controller) AddClickListener(l ClickListener) {
	c.listeners = append(c.listeners, l)
}

// OnFrame 按行优先顺序对每个格子调用 render
func (c *Controller) OnFrame(render RenderFunc) {
	for row := 0; row < c.grid.rows; row++ {
		for col := 0; col < c.grid.columns; col++ {
			render(row, col, c.grid.cells[row*c.grid.columns+col])
		}
	}
}

// OnClick 处理像素坐标 (x, y) 上的一次点击
// y 映射为行，x 映射为列；落在间隙时不修改网格，但仍输出统计报告
func (c *Controller) OnClick(x, y int) error {
	row, col, _ := utils.MouseToGridCoords(x, y, c.layout)
	flipped := c.grid.HandleClick(row, col)

	click := Click{X: x, Y: y, Row: row, Column: col}
	c.lastClick = &click
	c.stats = ComputeStats(c.grid)

	if flipped == 0 {
		log.Printf("[Controller] Click (%d, %d) landed in margin", x, y)
	} else {
		log.Printf("[Controller] Click (%d, %d) -> cell (%d, %d), flipped %d cells", x, y, row, col, flipped)
	}

	for _, l := range c.listeners {
		l(click, flipped)
	}

	return WriteReport(c.out, click, c.stats, c.threshold)
}
