package config

// 布局配置常量
// 默认的网格几何参数，窗口尺寸由它们推导：count*(dimension+margin)+margin
const (
	// DefaultRowCount 网格行数
	DefaultRowCount = 10

	// DefaultColumnCount 网格列数
	DefaultColumnCount = 10

	// DefaultCellWidth 每个格子的宽度（像素）
	DefaultCellWidth = 20

	// DefaultCellHeight 每个格子的高度（像素）
	DefaultCellHeight = 20

	// DefaultMargin 格子之间及四周的间隙（像素）
	DefaultMargin = 5

	// DefaultHUDHeight 状态栏高度（像素），仅在启用 HUD 时追加到窗口底部
	DefaultHUDHeight = 24

	// DefaultFadeSeconds 格子颜色渐变时长（秒）
	DefaultFadeSeconds = 0.15

	// DefaultWindowTitle 窗口标题
	DefaultWindowTitle = "Grid Toggle"
)
