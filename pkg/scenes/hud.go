package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/gridtoggle/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD 网格下方的状态栏，显示选中总数和最近一次点击的格子
type HUD struct {
	face   text.Face
	height int
	fg     color.RGBA
	bg     color.RGBA
}

// NewHUD 使用 Go Regular 字体创建状态栏
//
// 参数:
//   - height: 状态栏高度（像素），字号按高度的一半计算
func NewHUD(height int) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &HUD{
		face:   &text.GoTextFace{Source: src, Size: float64(height) / 2},
		height: height,
		fg:     color.RGBA{R: 230, G: 230, B: 230, A: 255},
		bg:     color.RGBA{R: 32, G: 32, B: 32, A: 255},
	}, nil
}

// Status 返回状态栏文字
func Status(c *grid.Controller) string {
	status := fmt.Sprintf("Selected: %d", c.Stats().Total)
	if click, ok := c.LastClick(); ok {
		status += fmt.Sprintf("  Last: (%d, %d)", click.Row, click.Column)
	}
	return status
}

// Draw 在 top 像素处绘制状态栏
func (h *HUD) Draw(screen *ebiten.Image, top int, c *grid.Controller) {
	width := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, float32(top), float32(width), float32(h.height), h.bg, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, float64(top)+float64(h.height)/4)
	op.ColorScale.ScaleWithColor(h.fg)
	text.Draw(screen, Status(c), h.face, op)
}
