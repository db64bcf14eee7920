package grid

import (
	"testing"

	"github.com/decker502/gridtoggle/pkg/utils"
)

// countSelected 统计网格中选中的格子数
func countSelected(g *Grid) int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

func TestNewGrid(t *testing.T) {
	g := NewGrid(10, 10)
	if g.Rows() != 10 || g.Columns() != 10 {
		t.Fatalf("NewGrid(10, 10) size = %dx%d", g.Rows(), g.Columns())
	}
	if n := countSelected(g); n != 0 {
		t.Errorf("new grid has %d selected cells, want 0", n)
	}
}

func TestNewGridInvalidSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 10) should panic")
		}
	}()
	NewGrid(0, 10)
}

func TestToggle(t *testing.T) {
	g := NewGrid(3, 4)
	g.Toggle(1, 2)
	if !g.Selected(1, 2) {
		t.Error("Toggle(1, 2) should select the cell")
	}
	if n := countSelected(g); n != 1 {
		t.Errorf("Toggle touched %d cells, want 1", n)
	}
	g.Toggle(1, 2)
	if g.Selected(1, 2) {
		t.Error("second Toggle(1, 2) should clear the cell")
	}
}

func TestToggleOutOfRangePanics(t *testing.T) {
	g := NewGrid(10, 10)
	defer func() {
		if recover() == nil {
			t.Error("Toggle(10, 0) should panic")
		}
	}()
	g.Toggle(10, 0)
}

// TestHandleClickFlipCount 角落 3 个，边 4 个，内部 5 个
func TestHandleClickFlipCount(t *testing.T) {
	tests := []struct {
		name string
		row  int
		col  int
		want int
	}{
		{name: "左上角", row: 0, col: 0, want: 3},
		{name: "右上角", row: 0, col: 9, want: 3},
		{name: "左下角", row: 9, col: 0, want: 3},
		{name: "右下角", row: 9, col: 9, want: 3},
		{name: "上边", row: 0, col: 4, want: 4},
		{name: "左边", row: 6, col: 0, want: 4},
		{name: "右边", row: 3, col: 9, want: 4},
		{name: "下边", row: 9, col: 1, want: 4},
		{name: "内部", row: 5, col: 5, want: 5},
		{name: "行落在间隙", row: utils.MarginHit, col: 3, want: 0},
		{name: "列落在间隙", row: 3, col: utils.MarginHit, want: 0},
		{name: "越界", row: 10, col: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 10)
			got := g.HandleClick(tt.row, tt.col)
			if got != tt.want {
				t.Errorf("HandleClick(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
			}
			if n := countSelected(g); n != tt.want {
				t.Errorf("HandleClick(%d, %d) selected %d cells, want %d", tt.row, tt.col, n, tt.want)
			}
		})
	}
}

// TestHandleClickPlusShape 只翻转十字形，不翻转对角
func TestHandleClickPlusShape(t *testing.T) {
	g := NewGrid(10, 10)
	g.HandleClick(5, 5)

	want := map[[2]int]bool{
		{5, 5}: true, {4, 5}: true, {6, 5}: true, {5, 4}: true, {5, 6}: true,
	}
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if got := g.Selected(row, col); got != want[[2]int{row, col}] {
				t.Errorf("cell (%d, %d) selected = %v, want %v", row, col, got, want[[2]int{row, col}])
			}
		}
	}
}

// TestHandleClickTwiceRestores 连续点击同一格两次恢复原状态
func TestHandleClickTwiceRestores(t *testing.T) {
	g := NewGrid(10, 10)
	g.HandleClick(2, 3)
	g.HandleClick(0, 0)
	g.HandleClick(9, 4)

	before := append([]bool(nil), g.cells...)
	for _, pos := range [][2]int{{0, 0}, {2, 4}, {5, 5}, {9, 9}, {3, 0}} {
		g.HandleClick(pos[0], pos[1])
		g.HandleClick(pos[0], pos[1])
		for i := range before {
			if g.cells[i] != before[i] {
				t.Fatalf("double click at %v changed cell %d", pos, i)
			}
		}
	}
}

func TestRowReturnsCopy(t *testing.T) {
	g := NewGrid(2, 3)
	g.Toggle(1, 1)
	row := g.Row(1)
	if len(row) != 3 || row[0] || !row[1] || row[2] {
		t.Fatalf("Row(1) = %v, want [false true false]", row)
	}
	row[0] = true
	if g.Selected(1, 0) {
		t.Error("modifying Row() result changed the grid")
	}
}
