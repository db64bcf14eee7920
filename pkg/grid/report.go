package grid

import (
	"bufio"
	"fmt"
	"io"
)

// DefaultLongRunThreshold 最长连续段超过该值时才输出提示行
const DefaultLongRunThreshold = 2

// Click 一次点击的原始像素坐标和解析出的网格坐标
// Row / Column 为 utils.MarginHit 表示落在间隙中
type Click struct {
	X, Y   int
	Row    int
	Column int
}

// WriteReport 将一次点击后的统计结果写入 w
//
// 输出顺序：
//  1. 点击坐标行
//  2. 总数行
//  3. 逐行：最长连续段提示（仅当超过 threshold），然后该行选中数
//  4. 逐列：该列选中数
//
// 间隙点击同样会输出完整统计，坐标打印为 -1。
func WriteReport(w io.Writer, click Click, stats Stats, threshold int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "mouse coordinates: (%d, %d); grid coordinates: (row:%d, column: %d)\n",
		click.X, click.Y, click.Row, click.Column)
	fmt.Fprintf(bw, "Total of %d cells are selected.\n", stats.Total)

	for i, count := range stats.PerRow {
		if run := stats.LongestRun[i]; run > threshold {
			fmt.Fprintf(bw, "There are %d continuous blocks selected on row %d.\n", run, i)
		}
		fmt.Fprintf(bw, "Row %d has %d cells selected.\n", i, count)
	}
	for j, count := range stats.PerColumn {
		fmt.Fprintf(bw, "Column %d has %d cells selected.\n", j, count)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write grid report: %w", err)
	}
	return nil
}
