package grid

import "testing"

func TestLongestRun(t *testing.T) {
	tests := []struct {
		name string
		row  []bool
		want int
	}{
		{name: "中间最长", row: []bool{true, true, false, true, true, true, false}, want: 3},
		{name: "全部未选中", row: []bool{false, false, false}, want: 0},
		{name: "全部选中", row: []bool{true, true, true, true}, want: 4},
		{name: "结尾最长", row: []bool{true, false, true, true}, want: 2},
		{name: "开头最长", row: []bool{true, true, false, true}, want: 2},
		{name: "空行", row: nil, want: 0},
		{name: "单个", row: []bool{false, true, false}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestRun(tt.row); got != tt.want {
				t.Errorf("LongestRun(%v) = %d, want %d", tt.row, got, tt.want)
			}
		})
	}
}

// TestComputeStatsCenterClick 空网格点击 (5,5) 后的统计
func TestComputeStatsCenterClick(t *testing.T) {
	g := NewGrid(10, 10)
	g.HandleClick(5, 5)
	stats := ComputeStats(g)

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	for i := 0; i < 10; i++ {
		wantRow := 0
		switch i {
		case 5:
			wantRow = 3
		case 4, 6:
			wantRow = 1
		}
		if stats.PerRow[i] != wantRow {
			t.Errorf("PerRow[%d] = %d, want %d", i, stats.PerRow[i], wantRow)
		}
		// 列分布与行分布对称
		if stats.PerColumn[i] != wantRow {
			t.Errorf("PerColumn[%d] = %d, want %d", i, stats.PerColumn[i], wantRow)
		}
	}
	if stats.LongestRun[5] != 3 {
		t.Errorf("LongestRun[5] = %d, want 3", stats.LongestRun[5])
	}
	if stats.LongestRun[4] != 1 {
		t.Errorf("LongestRun[4] = %d, want 1", stats.LongestRun[4])
	}
}

// TestComputeStatsSumsAgree 任意点击序列后，总数等于行合计等于列合计
func TestComputeStatsSumsAgree(t *testing.T) {
	g := NewGrid(10, 10)
	clicks := [][2]int{{0, 0}, {5, 5}, {5, 6}, {9, 9}, {3, 7}, {0, 0}, {4, 4}, {9, 0}, {2, 9}}

	for _, c := range clicks {
		g.HandleClick(c[0], c[1])
		stats := ComputeStats(g)

		rowSum, colSum := 0, 0
		for _, n := range stats.PerRow {
			rowSum += n
		}
		for _, n := range stats.PerColumn {
			colSum += n
		}
		if stats.Total != rowSum || stats.Total != colSum {
			t.Fatalf("after click %v: Total=%d, rowSum=%d, colSum=%d", c, stats.Total, rowSum, colSum)
		}
		if stats.Total != countSelected(g) {
			t.Fatalf("after click %v: Total=%d, actual=%d", c, stats.Total, countSelected(g))
		}
	}
}

func TestComputeStatsNonSquare(t *testing.T) {
	g := NewGrid(2, 5)
	g.HandleClick(0, 2)
	stats := ComputeStats(g)

	if len(stats.PerRow) != 2 || len(stats.PerColumn) != 5 || len(stats.LongestRun) != 2 {
		t.Fatalf("stats sizes = %d/%d/%d, want 2/5/2",
			len(stats.PerRow), len(stats.PerColumn), len(stats.LongestRun))
	}
	if stats.PerRow[0] != 3 || stats.PerRow[1] != 1 {
		t.Errorf("PerRow = %v, want [3 1]", stats.PerRow)
	}
	if stats.PerColumn[2] != 2 {
		t.Errorf("PerColumn[2] = %d, want 2", stats.PerColumn[2])
	}
}
