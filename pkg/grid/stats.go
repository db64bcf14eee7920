package grid

// Stats 网格选中情况的统计结果
type Stats struct {
	Total      int   // 选中格子总数
	PerRow     []int // 每行选中数
	PerColumn  []int // 每列选中数
	LongestRun []int // 每行最长连续选中段长度
}

// ComputeStats 统计网格当前的选中情况
// 始终满足 Total == sum(PerRow) == sum(PerColumn)
func ComputeStats(g *Grid) Stats {
	stats := Stats{
		PerRow:     make([]int, g.rows),
		PerColumn:  make([]int, g.columns),
		LongestRun: make([]int, g.rows),
	}

	for row := 0; row < g.rows; row++ {
		cells := g.cells[row*g.columns : (row+1)*g.columns]
		for col, selected := range cells {
			if selected {
				stats.PerRow[row]++
				stats.PerColumn[col]++
			}
		}
		stats.Total += stats.PerRow[row]
		stats.LongestRun[row] = LongestRun(cells)
	}
	return stats
}

// LongestRun 返回一行中最长连续 true 段的长度
// 不跨行，没有选中时返回 0
func LongestRun(row []bool) int {
	longest := 0
	current := 0
	for _, selected := range row {
		if !selected {
			if current > longest {
				longest = current
			}
			current = 0
			continue
		}
		current++
	}
	// 以最后一个格子结尾的连续段
	if current > longest {
		longest = current
	}
	return longest
}
