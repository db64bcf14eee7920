package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/gridtoggle/pkg/utils"
	"gopkg.in/yaml.v3"
)

// RGB YAML 中以 [r, g, b] 表示的颜色
type RGB [3]uint8

// Color 转换为不透明的 color.RGBA
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// GridConfig 网格演示的启动配置
// 所有字段在启动时确定，运行期间不再改变
type GridConfig struct {
	Title string `yaml:"title"` // 窗口标题

	Rows       int `yaml:"rows"`       // 行数
	Columns    int `yaml:"columns"`    // 列数
	CellWidth  int `yaml:"cellWidth"`  // 格子宽度（像素）
	CellHeight int `yaml:"cellHeight"` // 格子高度（像素）
	Margin     int `yaml:"margin"`     // 间隙（像素）

	// LongRunThreshold 某行最长连续选中段超过该值时输出提示
	LongRunThreshold int `yaml:"longRunThreshold"`

	SelectedColor   RGB `yaml:"selectedColor"`   // 选中格子颜色
	DefaultColor    RGB `yaml:"defaultColor"`    // 未选中格子颜色
	BackgroundColor RGB `yaml:"backgroundColor"` // 背景（间隙）颜色

	// FadeSeconds 格子切换颜色的渐变时长，0 表示立即切换
	FadeSeconds float64 `yaml:"fadeSeconds"`

	ShowHUD   bool `yaml:"showHud"`   // 是否在网格下方显示状态栏
	HUDHeight int  `yaml:"hudHeight"` // 状态栏高度（像素）
}

// DefaultGridConfig 返回内置默认配置：10x10，20x20 格子，5 像素间隙
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		Title:            DefaultWindowTitle,
		Rows:             DefaultRowCount,
		Columns:          DefaultColumnCount,
		CellWidth:        DefaultCellWidth,
		CellHeight:       DefaultCellHeight,
		Margin:           DefaultMargin,
		LongRunThreshold: 2,
		SelectedColor:    RGB{0, 255, 0},
		DefaultColor:     RGB{255, 255, 255},
		BackgroundColor:  RGB{0, 0, 0},
		FadeSeconds:      DefaultFadeSeconds,
		ShowHUD:          false,
		HUDHeight:        DefaultHUDHeight,
	}
}

// Merge 将 YAML 数据覆盖到当前配置上
// 只有 YAML 中出现的字段会被修改，其余字段保持原值
//
// 参数:
//   - data: YAML 内容
//   - source: 数据来源描述，仅用于错误信息
func (c *GridConfig) Merge(data []byte, source string) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse grid config YAML from %s: %w", source, err)
	}
	return nil
}

// MergeFile 读取 YAML 文件并覆盖到当前配置上
func (c *GridConfig) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read grid config file %s: %w", path, err)
	}
	return c.Merge(data, path)
}

// Validate 检查配置的合法性
func (c *GridConfig) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	if c.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("cellWidth must be positive, got %d", c.CellWidth)
	}
	if c.CellHeight <= 0 {
		return fmt.Errorf("cellHeight must be positive, got %d", c.CellHeight)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin cannot be negative, got %d", c.Margin)
	}
	if c.LongRunThreshold < 0 {
		return fmt.Errorf("longRunThreshold cannot be negative, got %d", c.LongRunThreshold)
	}
	if c.FadeSeconds < 0 {
		return fmt.Errorf("fadeSeconds cannot be negative, got %v", c.FadeSeconds)
	}
	if c.ShowHUD && c.HUDHeight <= 0 {
		return fmt.Errorf("hudHeight must be positive when showHud is set, got %d", c.HUDHeight)
	}
	return nil
}

// Layout 返回网格几何参数
func (c *GridConfig) Layout() utils.GridLayout {
	return utils.GridLayout{
		Rows:       c.Rows,
		Columns:    c.Columns,
		CellWidth:  c.CellWidth,
		CellHeight: c.CellHeight,
		Margin:     c.Margin,
	}
}

// WindowSize 返回逻辑屏幕尺寸
// 网格部分为 count*(dimension+margin)+margin，启用 HUD 时高度再加上状态栏
func (c *GridConfig) WindowSize() (width, height int) {
	width, height = c.Layout().ScreenSize()
	if c.ShowHUD {
		height += c.HUDHeight
	}
	return width, height
}
