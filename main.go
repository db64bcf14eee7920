package main

import (
	"flag"
	"log"

	"github.com/decker502/gridtoggle/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "额外的 YAML 配置文件")
	showHUD    = flag.Bool("hud", false, "在网格下方显示状态栏")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:       *verbose,
		ConfigPath:    *configPath,
		ShowHUD:       *showHUD,
		DefaultConfig: defaultGridConfig,
	})
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	cfg := a.GridConfig()
	width, height := cfg.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Title)

	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
