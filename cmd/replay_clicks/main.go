// replay_clicks 在没有窗口的情况下回放一组像素点击，并打印每次点击后的统计报告
//
// 用法:
//
//	go run ./cmd/replay_clicks 140,140 5,5 27,140
//	go run ./cmd/replay_clicks --config my_grid.yaml 30,30
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/gridtoggle/pkg/config"
	"github.com/decker502/gridtoggle/pkg/grid"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "YAML 配置文件（覆盖默认值）")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGridConfig()
	if *configPath != "" {
		if err := cfg.MergeFile(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	clicks, err := parseClicks(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	controller := grid.NewController(cfg.Layout(), os.Stdout, cfg.LongRunThreshold)
	for _, c := range clicks {
		if err := controller.OnClick(c[0], c[1]); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
}

// parseClicks 解析形如 "x,y" 的参数
func parseClicks(args []string) ([][2]int, error) {
	clicks := make([][2]int, 0, len(args))
	for _, arg := range args {
		xs, ys, ok := strings.Cut(arg, ",")
		if !ok {
			return nil, fmt.Errorf("invalid click %q, want x,y", arg)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", arg, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", arg, err)
		}
		clicks = append(clicks, [2]int{x, y})
	}
	return clicks, nil
}
