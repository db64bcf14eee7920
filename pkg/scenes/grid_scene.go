package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/gridtoggle/pkg/config"
	"github.com/decker502/gridtoggle/pkg/grid"
	"github.com/decker502/gridtoggle/pkg/systems"
	"github.com/decker502/gridtoggle/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hoverOutlineColor 鼠标悬停格子的描边颜色
var hoverOutlineColor = color.RGBA{R: 255, G: 200, B: 0, A: 255}

// GridScene 网格演示的唯一场景
//
// Update 中读取点击并交给 grid.Controller 处理（唯一的写入者），
// Draw 通过 Controller.OnFrame 只读地绘制每个格子。
type GridScene struct {
	controller *grid.Controller
	layout     utils.GridLayout

	selectedColor   color.RGBA
	defaultColor    color.RGBA
	backgroundColor color.RGBA

	fade    *systems.FadeSystem
	targets []bool // 渐变系统当前的目标状态，与网格比较以发现被翻转的格子
	hud     *HUD   // 为 nil 时不显示状态栏

	pointer  utils.PointerSource
	hoverPos func() (int, int)
	hoverRow int
	hoverCol int
}

// NewGridScene 创建网格场景
//
// 参数:
//   - controller: 网格控制器
//   - cfg: 启动配置（颜色、渐变时长）
//   - hud: 状态栏，传 nil 表示不显示
func NewGridScene(controller *grid.Controller, cfg *config.GridConfig, hud *HUD) *GridScene {
	layout := controller.Layout()
	cellCount := layout.Rows * layout.Columns

	s := &GridScene{
		controller:      controller,
		layout:          layout,
		selectedColor:   cfg.SelectedColor.Color(),
		defaultColor:    cfg.DefaultColor.Color(),
		backgroundColor: cfg.BackgroundColor.Color(),
		fade:            systems.NewFadeSystem(cellCount, cfg.FadeSeconds),
		targets:         make([]bool, cellCount),
		hud:             hud,
		pointer:         utils.IsJustTouchedOrClicked,
		hoverPos:        utils.GetPointerPosition,
		hoverRow:        utils.MarginHit,
		hoverCol:        utils.MarginHit,
	}
	controller.AddClickListener(s.onClick)
	return s
}

// SetPointerSource 替换点击输入来源
func (s *GridScene) SetPointerSource(src utils.PointerSource) {
	s.pointer = src
}

// SetHoverSource 替换悬停位置来源
func (s *GridScene) SetHoverSource(src func() (int, int)) {
	s.hoverPos = src
}

// Update 处理输入并推进渐变动画
func (s *GridScene) Update(deltaTime float64) {
	if pressed, x, y := s.pointer(); pressed {
		if err := s.controller.OnClick(x, y); err != nil {
			log.Printf("[GridScene] Warning: %v", err)
		}
	}

	hx, hy := s.hoverPos()
	s.hoverRow, s.hoverCol, _ = utils.MouseToGridCoords(hx, hy, s.layout)

	s.fade.Update(deltaTime)
}

// onClick 找出被翻转的格子并启动渐变
func (s *GridScene) onClick(click grid.Click, flipped int) {
	if flipped == 0 {
		return
	}
	g := s.controller.Grid()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Columns(); col++ {
			i := row*g.Columns() + col
			if selected := g.Selected(row, col); selected != s.targets[i] {
				s.targets[i] = selected
				s.fade.Trigger(i, selected)
			}
		}
	}
}

// Draw 绘制背景、所有格子、悬停描边和状态栏
func (s *GridScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.backgroundColor)

	w := float32(s.layout.CellWidth)
	h := float32(s.layout.CellHeight)
	s.controller.OnFrame(func(row, col int, selected bool) {
		x, y := utils.GridToScreenCoords(row, col, s.layout)
		clr := systems.Blend(s.defaultColor, s.selectedColor, s.fade.Level(row*s.layout.Columns+col))
		vector.DrawFilledRect(screen, float32(x), float32(y), w, h, clr, false)
	})

	if s.hoverRow != utils.MarginHit && s.hoverCol != utils.MarginHit {
		x, y := utils.GridToScreenCoords(s.hoverRow, s.hoverCol, s.layout)
		vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, hoverOutlineColor, false)
	}

	if s.hud != nil {
		_, gridHeight := s.layout.ScreenSize()
		s.hud.Draw(screen, gridHeight, s.controller)
	}
}

// Hovered 返回当前悬停的格子，不在格子上时为 MarginHit
func (s *GridScene) Hovered() (row, col int) {
	return s.hoverRow, s.hoverCol
}

// FadeLevel 返回格子当前的颜色混合系数
func (s *GridScene) FadeLevel(row, col int) float32 {
	return s.fade.Level(row*s.layout.Columns + col)
}
