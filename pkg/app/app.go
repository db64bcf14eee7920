// Package app 提供网格演示的应用包装器
//
// 该包把配置解析和场景创建从 main 包中提取出来，
// main.go 只负责解析命令行参数并调用 ebiten.RunGame。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/decker502/gridtoggle/pkg/config"
	"github.com/decker502/gridtoggle/pkg/game"
	"github.com/decker502/gridtoggle/pkg/grid"
	"github.com/decker502/gridtoggle/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "gridtoggle"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 额外的 YAML 配置文件，为空则不加载
	ConfigPath string
	// ShowHUD 强制显示状态栏（覆盖配置文件中的 showHud）
	ShowHUD bool
	// DefaultConfig 内置的默认 YAML 配置（data/grid.yaml）
	DefaultConfig []byte
	// Output 统计报告的输出目标，为 nil 时使用 os.Stdout
	Output io.Writer
}

// App 是网格演示的应用包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	gridConfig   *config.GridConfig
	verbose      bool
}

// ResolveGridConfig 按优先级合并配置：
// 内置默认值 < data/grid.yaml < gdata 用户覆盖 < --config 文件 < --hud 参数
func ResolveGridConfig(cfg Config, store *game.ConfigStore) (*config.GridConfig, error) {
	gridConfig, err := baseGridConfig(cfg.DefaultConfig)
	if err != nil {
		return nil, err
	}

	if store != nil {
		if _, err := store.ApplyOverride(gridConfig); err != nil {
			// 覆盖配置损坏不是致命错误；Merge 可能已部分修改配置，重新从默认值开始
			log.Printf("[App] Warning: Failed to apply user override: %v (ignored)", err)
			gridConfig, _ = baseGridConfig(cfg.DefaultConfig)
		}
	}

	if cfg.ConfigPath != "" {
		if err := gridConfig.MergeFile(cfg.ConfigPath); err != nil {
			return nil, err
		}
		log.Printf("[App] Loaded config file: %s", cfg.ConfigPath)
	}

	if cfg.ShowHUD {
		gridConfig.ShowHUD = true
	}

	if err := gridConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid grid config: %w", err)
	}
	return gridConfig, nil
}

// baseGridConfig 返回内置默认值合并 data/grid.yaml 后的配置
func baseGridConfig(defaultYAML []byte) (*config.GridConfig, error) {
	gridConfig := config.DefaultGridConfig()
	if len(defaultYAML) > 0 {
		if err := gridConfig.Merge(defaultYAML, "data/grid.yaml"); err != nil {
			return nil, err
		}
	}
	return gridConfig, nil
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gridConfig, err := ResolveGridConfig(cfg, game.OpenConfigStore(AppName))
	if err != nil {
		return nil, err
	}
	log.Printf("[App] Grid %dx%d, cell %dx%d, margin %d",
		gridConfig.Rows, gridConfig.Columns, gridConfig.CellWidth, gridConfig.CellHeight, gridConfig.Margin)

	return newAppWithConfig(cfg, gridConfig)
}

// newAppWithConfig 使用已解析的配置创建应用
func newAppWithConfig(cfg Config, gridConfig *config.GridConfig) (*App, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var hud *scenes.HUD
	if gridConfig.ShowHUD {
		h, err := scenes.NewHUD(gridConfig.HUDHeight)
		if err != nil {
			return nil, err
		}
		hud = h
	}

	controller := grid.NewController(gridConfig.Layout(), out, gridConfig.LongRunThreshold)

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGridScene(controller, gridConfig, hud))

	return &App{
		sceneManager: sceneManager,
		gridConfig:   gridConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		log.Printf("[App] Fullscreen: %v", ebiten.IsFullscreen())
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时用背景色填充 letterbox 区域，并保持像素清晰
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 由网格尺寸推导，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gridConfig.WindowSize()
}

// GridConfig 返回生效的配置
func (a *App) GridConfig() *config.GridConfig {
	return a.gridConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
